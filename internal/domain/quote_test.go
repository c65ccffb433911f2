package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAuthor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty falls back", "", DefaultAuthor},
		{"whitespace falls back", "   ", DefaultAuthor},
		{"explicit author kept", "Marcus Aurelius", "Marcus Aurelius"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveAuthor(tt.input))
		})
	}
}

func TestNewQuote(t *testing.T) {
	q := NewQuote("Keep going.", "", "tired")

	assert.Zero(t, q.ID)
	assert.Equal(t, "Keep going.", q.Text)
	assert.Equal(t, DefaultAuthor, q.Author)
	assert.Equal(t, Feeling("tired"), q.Feeling)
}

func TestQuote_Validate(t *testing.T) {
	tests := []struct {
		name      string
		quote     Quote
		wantField string
	}{
		{
			name:  "valid",
			quote: Quote{Text: "t", Author: "a", Feeling: "sad"},
		},
		{
			name:      "missing text",
			quote:     Quote{Author: "a", Feeling: "sad"},
			wantField: "text",
		},
		{
			name:      "missing feeling",
			quote:     Quote{Text: "t", Author: "a"},
			wantField: "feeling",
		},
		{
			name:      "unresolved author",
			quote:     Quote{Text: "t", Feeling: "sad"},
			wantField: "author",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.quote.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestFeeling(t *testing.T) {
	assert.True(t, Feeling("").IsZero())
	assert.False(t, Feeling("Sad").IsZero())
	assert.Equal(t, "Sad", Feeling("Sad").String())
}

func TestSeedQuotes(t *testing.T) {
	seeds := SeedQuotes()
	require.Len(t, seeds, 50)

	feelings := make(map[Feeling]int)
	for _, q := range seeds {
		require.NoError(t, q.Validate(), "seed quote %q", q.Text)
		assert.Zero(t, q.ID)
		feelings[q.Feeling]++
	}

	assert.Len(t, feelings, 12)
	assert.Equal(t, 5, feelings["sad"])
	assert.Equal(t, 3, feelings["exhausted"])
}

func TestSeedQuotes_ReturnsCopy(t *testing.T) {
	first := SeedQuotes()
	first[0].Text = "changed"

	second := SeedQuotes()
	assert.NotEqual(t, "changed", second[0].Text)
}
