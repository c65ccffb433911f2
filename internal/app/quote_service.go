// Package app contains application services that orchestrate use cases.
// This is the application layer - it coordinates domain rules and the
// store through ports, and knows nothing about HTTP.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/feeling-quotes/internal/domain"
	"github.com/jsamuelsen/feeling-quotes/internal/platform/telemetry"
	"github.com/jsamuelsen/feeling-quotes/internal/ports"
)

// QuoteService orchestrates quote-related use cases.
// It depends on port interfaces, not concrete implementations.
type QuoteService struct {
	repo     ports.QuoteRepository
	metrics  *telemetry.QuoteMetrics
	executor *Executor
	logger   *slog.Logger
	seeds    func() []domain.Quote
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	// Repository is required.
	Repository ports.QuoteRepository

	// Metrics is optional; nil disables counting.
	Metrics *telemetry.QuoteMetrics

	// Logger defaults to slog.Default() when nil.
	Logger *slog.Logger

	// Seeds supplies the first-run quote set. Defaults to domain.SeedQuotes.
	Seeds func() []domain.Quote
}

// NewQuoteService creates a new quote service with the provided dependencies.
// Panics if Repository is nil.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Repository == nil {
		panic("QuoteService: Repository is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	seeds := cfg.Seeds
	if seeds == nil {
		seeds = domain.SeedQuotes
	}

	logger = logger.With(slog.String("component", "app.QuoteService"))

	return &QuoteService{
		repo:     cfg.Repository,
		metrics:  cfg.Metrics,
		executor: NewExecutor(logger),
		logger:   logger,
		seeds:    seeds,
	}
}

// Bootstrap inserts the seed set if and only if the store is empty.
// It returns how many quotes were seeded. Not safe against two processes
// bootstrapping the same empty store at once.
func (s *QuoteService) Bootstrap(ctx context.Context) (int, error) {
	n, err := s.repo.CountQuotes(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting quotes: %w", err)
	}

	if n > 0 {
		s.logger.InfoContext(ctx, "quote store already populated, skipping seed",
			slog.Int64("quotes", n),
		)
		return 0, nil
	}

	seeds := s.seeds()
	if err := s.repo.SeedQuotes(ctx, seeds); err != nil {
		return 0, fmt.Errorf("seeding quotes: %w", err)
	}

	s.metrics.QuotesSeeded(len(seeds))
	s.logger.InfoContext(ctx, "seeded empty quote store", slog.Int("quotes", len(seeds)))

	return len(seeds), nil
}

// GetRandomQuote returns one quote drawn from the whole store.
// An empty store yields a domain not-found error.
func (s *QuoteService) GetRandomQuote(ctx context.Context) (*domain.Quote, error) {
	quote, err := s.repo.RandomQuote(ctx)
	if err != nil {
		return nil, s.lookupFailed(ctx, telemetry.LookupRandom, err)
	}

	s.metrics.QuoteServed(telemetry.LookupRandom)
	s.logger.DebugContext(ctx, "served random quote", slog.Int64("quote_id", quote.ID))

	return quote, nil
}

// GetRandomQuoteByFeeling returns one quote whose feeling matches exactly.
// An empty feeling is rejected before the store is touched.
func (s *QuoteService) GetRandomQuoteByFeeling(ctx context.Context, feeling domain.Feeling) (*domain.Quote, error) {
	if feeling.IsZero() {
		return nil, domain.NewValidationError("feeling", "is required")
	}

	quote, err := s.repo.RandomQuoteByFeeling(ctx, feeling)
	if err != nil {
		return nil, s.lookupFailed(ctx, telemetry.LookupByFeeling, err)
	}

	s.metrics.QuoteServed(telemetry.LookupByFeeling)
	s.logger.DebugContext(ctx, "served quote for feeling",
		slog.Int64("quote_id", quote.ID),
		slog.String("feeling", feeling.String()),
	)

	return quote, nil
}

// AddQuote stores a new quote and returns it with its assigned id.
// A blank author is replaced with domain.DefaultAuthor.
func (s *QuoteService) AddQuote(ctx context.Context, text, author string, feeling domain.Feeling) (*domain.Quote, error) {
	quote := domain.NewQuote(text, author, feeling)

	id, err := Execute(ctx, s.executor, Operation[*domain.Quote, int64]{
		Name: "AddQuote",
		Validate: func(_ context.Context, q *domain.Quote) error {
			return q.Validate()
		},
		Perform: s.repo.AddQuote,
		Verify: func(_ context.Context, _ *domain.Quote, id int64) error {
			if id <= 0 {
				return fmt.Errorf("store returned invalid id %d", id)
			}
			return nil
		},
	}, quote)
	if err != nil {
		return nil, err
	}

	quote.ID = id
	s.metrics.QuoteAdded()
	s.logger.InfoContext(ctx, "added quote",
		slog.Int64("quote_id", id),
		slog.String("feeling", feeling.String()),
	)

	return quote, nil
}

// lookupFailed records and logs a failed lookup, passing err through.
func (s *QuoteService) lookupFailed(ctx context.Context, lookup string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		s.metrics.QuoteNotFound(lookup)
		s.logger.DebugContext(ctx, "no quote matched", slog.String("lookup", lookup))
		return err
	}

	s.logger.ErrorContext(ctx, "quote lookup failed",
		slog.String("lookup", lookup),
		slog.Any("error", err),
	)

	return err
}
