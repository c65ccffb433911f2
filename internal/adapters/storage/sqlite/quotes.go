package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jsamuelsen/feeling-quotes/internal/domain"
)

const (
	selectRandomQuery = `
SELECT id, text, author, feeling
FROM quotes
ORDER BY RANDOM()
LIMIT 1;
`

	selectRandomByFeelingQuery = `
SELECT id, text, author, feeling
FROM quotes
WHERE feeling = ?
ORDER BY RANDOM()
LIMIT 1;
`

	insertQuery = `
INSERT INTO quotes (text, author, feeling)
VALUES (?, ?, ?);
`

	countQuery = `SELECT COUNT(*) FROM quotes;`
)

// RandomQuote returns one quote picked uniformly at random.
func (s *Store) RandomQuote(ctx context.Context) (q *domain.Quote, err error) {
	ctx, span := s.startSpan(ctx, "RandomQuote")
	defer func() { span.end(ctx, err) }()

	q, err = scanQuote(s.db.QueryRowContext(ctx, selectRandomQuery))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("quotes", "")
	}

	if err != nil {
		return nil, fmt.Errorf("select random quote: %w", classify(err))
	}

	return q, nil
}

// RandomQuoteByFeeling returns one quote picked uniformly among exact feeling matches.
func (s *Store) RandomQuoteByFeeling(ctx context.Context, feeling domain.Feeling) (q *domain.Quote, err error) {
	ctx, span := s.startSpan(ctx, "RandomQuoteByFeeling")
	span.SetAttributes(attribute.String("quote.feeling", feeling.String()))
	defer func() { span.end(ctx, err) }()

	q, err = scanQuote(s.db.QueryRowContext(ctx, selectRandomByFeelingQuery, feeling.String()))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("quotes", fmt.Sprintf("feeling %q", feeling))
	}

	if err != nil {
		return nil, fmt.Errorf("select random quote by feeling: %w", classify(err))
	}

	return q, nil
}

// AddQuote inserts quote and returns its new id. quote.ID is not modified.
func (s *Store) AddQuote(ctx context.Context, quote *domain.Quote) (id int64, err error) {
	ctx, span := s.startSpan(ctx, "AddQuote")
	defer func() { span.end(ctx, err) }()

	res, err := s.db.ExecContext(ctx, insertQuery, quote.Text, quote.Author, quote.Feeling.String())
	if err != nil {
		return 0, fmt.Errorf("insert quote: %w", classify(err))
	}

	id, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read inserted quote id: %w", classify(err))
	}

	span.SetAttributes(attribute.Int64("quote.id", id))

	return id, nil
}

// CountQuotes returns the number of stored quotes.
func (s *Store) CountQuotes(ctx context.Context) (n int64, err error) {
	ctx, span := s.startSpan(ctx, "CountQuotes")
	defer func() { span.end(ctx, err) }()

	if err = s.db.QueryRowContext(ctx, countQuery).Scan(&n); err != nil {
		return 0, fmt.Errorf("count quotes: %w", classify(err))
	}

	return n, nil
}

// SeedQuotes inserts quotes in one transaction; either all rows land or none do.
func (s *Store) SeedQuotes(ctx context.Context, quotes []domain.Quote) (err error) {
	ctx, span := s.startSpan(ctx, "SeedQuotes")
	span.SetAttributes(attribute.Int("quote.count", len(quotes)))
	defer func() { span.end(ctx, err) }()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", classify(err))
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, insertQuery)
	if err != nil {
		return fmt.Errorf("prepare seed insert: %w", classify(err))
	}
	defer func() { _ = stmt.Close() }()

	for i := range quotes {
		q := &quotes[i]
		if _, err = stmt.ExecContext(ctx, q.Text, q.Author, q.Feeling.String()); err != nil {
			return fmt.Errorf("insert seed quote %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", classify(err))
	}

	return nil
}

func scanQuote(row *sql.Row) (*domain.Quote, error) {
	var (
		q       domain.Quote
		feeling string
	)

	if err := row.Scan(&q.ID, &q.Text, &q.Author, &feeling); err != nil {
		return nil, err
	}

	q.Feeling = domain.Feeling(feeling)

	return &q, nil
}
