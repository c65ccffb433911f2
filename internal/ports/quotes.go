// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never driver rows or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrUnavailable, etc.)
package ports

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --config ../../.mockery.yaml

import (
	"context"

	"github.com/jsamuelsen/feeling-quotes/internal/domain"
)

// QuoteRepository persists quotes and draws random ones back out.
//
// Example usage in application layer:
//
//	type QuoteService struct {
//	    repo ports.QuoteRepository
//	}
type QuoteRepository interface {
	// RandomQuote returns one quote chosen uniformly from the whole store.
	// Returns domain.ErrNotFound if the store is empty.
	RandomQuote(ctx context.Context) (*domain.Quote, error)

	// RandomQuoteByFeeling returns one quote chosen uniformly among those whose
	// feeling equals the given value exactly (case-sensitive).
	// Returns domain.ErrNotFound if none match.
	RandomQuoteByFeeling(ctx context.Context, feeling domain.Feeling) (*domain.Quote, error)

	// AddQuote inserts a validated quote and returns the id the store assigned.
	AddQuote(ctx context.Context, quote *domain.Quote) (int64, error)

	// CountQuotes returns the number of stored quotes.
	CountQuotes(ctx context.Context) (int64, error)

	// SeedQuotes inserts all quotes in a single transaction.
	SeedQuotes(ctx context.Context, quotes []domain.Quote) error
}
