// Package sqlite provides the SQLite-backed quote store.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	msqlite "modernc.org/sqlite" // also registers the "sqlite" driver
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/jsamuelsen/feeling-quotes/internal/domain"
	"github.com/jsamuelsen/feeling-quotes/internal/platform/logging"
)

const (
	driverName = "sqlite"

	// memoryPath opens a private in-memory database.
	memoryPath = ":memory:"

	instrumentationName = "github.com/jsamuelsen/feeling-quotes/sqlite"
)

//go:embed schema.sql
var schema string

// Config controls how the store opens its database file.
type Config struct {
	// Path is the database file, or ":memory:" for a throwaway store.
	Path string

	// BusyTimeout is how long a writer waits on a locked database.
	BusyTimeout time.Duration

	// MaxOpenConns caps the connection pool. Zero leaves the driver default.
	MaxOpenConns int
}

// Store persists quotes in SQLite. It is safe for concurrent use.
type Store struct {
	db     *sql.DB
	tracer trace.Tracer
}

// Open opens the database, applies pragmas and ensures the schema exists.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	db, err := sql.Open(driverName, dsn(path, cfg.BusyTimeout))
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	switch {
	case path == memoryPath:
		// Every new connection to :memory: would see an empty database.
		db.SetMaxOpenConns(1)
	case cfg.MaxOpenConns > 0:
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &Store{
		db:     db,
		tracer: otel.Tracer(instrumentationName),
	}, nil
}

// dsn builds a modernc DSN carrying the connection pragmas.
func dsn(path string, busyTimeout time.Duration) string {
	pragmas := []string{
		fmt.Sprintf("_pragma=busy_timeout(%d)", busyTimeout.Milliseconds()),
	}
	if path != memoryPath {
		path = filepath.Clean(path)
		pragmas = append(pragmas, "_pragma=journal_mode(WAL)", "_pragma=synchronous(NORMAL)")
	}

	return "file:" + path + "?" + strings.Join(pragmas, "&")
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "sqlite"
}

// Check implements ports.HealthChecker by pinging the database.
func (s *Store) Check(ctx context.Context) error {
	return classify(s.db.PingContext(ctx))
}

// classify turns lock contention that outlasted the busy timeout into a
// domain unavailable error. Other errors are returned unchanged.
func classify(err error) error {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	switch sqliteErr.Code() & 0xff {
	case sqlite3lib.SQLITE_BUSY, sqlite3lib.SQLITE_LOCKED:
		return domain.NewUnavailableError("sqlite", err)
	default:
		return err
	}
}

// opSpan is the span of one store operation plus what its trace log needs.
type opSpan struct {
	trace.Span
	op    string
	start time.Time
}

// startSpan starts a client span for one store operation.
func (s *Store) startSpan(ctx context.Context, op string) (context.Context, *opSpan) {
	ctx, span := s.tracer.Start(ctx, "sqlite."+op, trace.WithSpanKind(trace.SpanKindClient))

	return ctx, &opSpan{Span: span, op: op, start: time.Now()}
}

// end records err on the span, if any, ends it and logs the operation at TRACE.
func (o *opSpan) end(ctx context.Context, err error) {
	if err != nil {
		o.RecordError(err)
		o.SetStatus(codes.Error, err.Error())
	}

	o.End()

	logging.FromContext(ctx).Log(ctx, logging.LevelTrace, "sqlite query",
		slog.String("op", o.op),
		slog.Duration("duration", time.Since(o.start)),
		slog.Any("error", err),
	)
}
