package dto

import "github.com/jsamuelsen/feeling-quotes/internal/domain"

// MessageQuoteAdded is returned in the body of a successful add.
const MessageQuoteAdded = "Quote added successfully"

// AddQuoteRequest is the body of POST /quotes.
// Author is optional; a blank author is stored as "Unknown".
type AddQuoteRequest struct {
	Text    string `json:"text" validate:"required"`
	Author  string `json:"author"`
	Feeling string `json:"feeling" validate:"required"`
}

// AddQuoteResponse is returned after a quote is stored.
type AddQuoteResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// QuoteResponse is the API representation of a stored quote.
type QuoteResponse struct {
	ID      int64  `json:"id"`
	Text    string `json:"text"`
	Author  string `json:"author"`
	Feeling string `json:"feeling"`
}

// QuoteFromDomain converts a domain quote to its API representation.
func QuoteFromDomain(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:      q.ID,
		Text:    q.Text,
		Author:  q.Author,
		Feeling: q.Feeling.String(),
	}
}
