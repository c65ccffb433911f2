package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrValidation,
		ErrUnavailable,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b,
					"sentinels should be distinct: %v vs %v", a, b)
			}
		}
	}
}

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name        string
		entity      string
		criteria    string
		expectedMsg string
	}{
		{
			name:        "with criteria",
			entity:      "quotes",
			criteria:    `feeling "sad"`,
			expectedMsg: `no quotes found for feeling "sad"`,
		},
		{
			name:        "entity only",
			entity:      "quotes",
			criteria:    "",
			expectedMsg: "no quotes found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewNotFoundError(tt.entity, tt.criteria)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrNotFound)

			var notFound *NotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, tt.entity, notFound.Entity)
			assert.Equal(t, tt.criteria, notFound.Criteria)
		})
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		message     string
		expectedMsg string
	}{
		{
			name:        "with field",
			field:       "text",
			message:     "is required",
			expectedMsg: "validation failed for text: is required",
		},
		{
			name:        "without field",
			field:       "",
			message:     "bad input",
			expectedMsg: "validation failed: bad input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrValidation)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestUnavailableError(t *testing.T) {
	cause := errors.New("database is locked")

	err := NewUnavailableError("sqlite", cause)
	assert.Equal(t, `service "sqlite" unavailable: database is locked`, err.Error())
	require.ErrorIs(t, err, ErrUnavailable)
	require.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("insert quote: %w", err)
	assert.True(t, IsUnavailable(wrapped))

	var unavailable *UnavailableError
	require.ErrorAs(t, wrapped, &unavailable)
	assert.Equal(t, "sqlite", unavailable.Service)

	err = NewUnavailableError("sqlite", nil)
	assert.Equal(t, `service "sqlite" unavailable`, err.Error())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		check    func(error) bool
		expected bool
	}{
		{"IsNotFound with sentinel", ErrNotFound, IsNotFound, true},
		{"IsNotFound with wrapped", fmt.Errorf("wrapped: %w", ErrNotFound), IsNotFound, true},
		{"IsNotFound with typed", NewNotFoundError("quotes", ""), IsNotFound, true},
		{"IsNotFound with other", ErrValidation, IsNotFound, false},
		{"IsValidation with sentinel", ErrValidation, IsValidation, true},
		{"IsValidation with wrapped typed", fmt.Errorf("add: %w", NewValidationError("text", "x")), IsValidation, true},
		{"IsValidation with nil", nil, IsValidation, false},
		{"IsUnavailable with sentinel", ErrUnavailable, IsUnavailable, true},
		{"IsUnavailable with other", ErrNotFound, IsUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.check(tt.err))
		})
	}
}
