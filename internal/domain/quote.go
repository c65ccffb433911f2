// Package domain contains core business entities and rules.
package domain

import "strings"

// DefaultAuthor is the sentinel author stored when a quote is added without one.
const DefaultAuthor = "Unknown"

// Feeling is a free-form label describing the emotional state a quote is meant for.
// It is deliberately an open string type: any non-empty value is accepted.
type Feeling string

// String returns the feeling label.
func (f Feeling) String() string {
	return string(f)
}

// IsZero reports whether the feeling is empty.
func (f Feeling) IsZero() bool {
	return f == ""
}

// Quote represents a short piece of encouragement tagged with a feeling.
// This is a domain entity - it has no knowledge of external systems.
type Quote struct {
	// ID is assigned by the store on insert and never changes.
	ID int64

	// Text is the body of the quote.
	Text string

	// Author is who said or wrote the quote. Never empty once resolved.
	Author string

	// Feeling is the category the quote is served for.
	Feeling Feeling
}

// NewQuote builds an unsaved quote, resolving a missing author to DefaultAuthor.
// The result is not validated; call Validate before persisting it.
func NewQuote(text, author string, feeling Feeling) *Quote {
	return &Quote{
		Text:    text,
		Author:  ResolveAuthor(author),
		Feeling: feeling,
	}
}

// ResolveAuthor returns author, or DefaultAuthor when author is blank.
func ResolveAuthor(author string) string {
	if strings.TrimSpace(author) == "" {
		return DefaultAuthor
	}

	return author
}

// Validate checks the invariants every stored quote must satisfy.
func (q *Quote) Validate() error {
	if q.Text == "" {
		return NewValidationError("text", "is required")
	}

	if q.Feeling.IsZero() {
		return NewValidationError("feeling", "is required")
	}

	if q.Author == "" {
		return NewValidationError("author", "must be resolved before saving")
	}

	return nil
}
