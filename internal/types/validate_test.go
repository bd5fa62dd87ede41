package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInsertStop(t *testing.T) {
	t.Run("valid with defaults", func(t *testing.T) {
		got, err := ValidateInsertStop(InsertStop{
			Name:        "Mercado da Ribeira",
			Category:    "Market",
			Description: "A food hall locals still shop at in the mornings",
		})
		require.NoError(t, err)
		assert.Nil(t, got.ImageURL)
		assert.Equal(t, 0, got.WalkingTimeMinutes)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := ValidateInsertStop(InsertStop{
			Category:    "Market",
			Description: "desc",
		})
		require.Error(t, err)

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "stop", vErr.Entity)
		assert.Equal(t, []string{"name"}, vErr.Fields)
	})

	t.Run("all required fields reported", func(t *testing.T) {
		_, err := ValidateInsertStop(InsertStop{})
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.ElementsMatch(t, []string{"name", "category", "description"}, vErr.Fields)
	})
}

func TestValidateInsertItinerary(t *testing.T) {
	valid := InsertItinerary{
		Title:           "Alfama After Dark",
		Description:     "Fado bars and miradouros",
		DurationMinutes: 180,
		Location:        "Lisbon",
		Stops:           []int{1, 2, 3},
	}

	t.Run("valid", func(t *testing.T) {
		got, err := ValidateInsertItinerary(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, got)
	})

	t.Run("empty stops slice is allowed", func(t *testing.T) {
		p := valid
		p.Stops = []int{}
		_, err := ValidateInsertItinerary(p)
		assert.NoError(t, err)
	})

	t.Run("nil stops is not", func(t *testing.T) {
		p := valid
		p.Stops = nil
		_, err := ValidateInsertItinerary(p)
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, []string{"stops"}, vErr.Fields)
	})

	t.Run("missing location", func(t *testing.T) {
		p := valid
		p.Location = ""
		_, err := ValidateInsertItinerary(p)
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, []string{"location"}, vErr.Fields)
	})
}

func TestValidateInsertGroundingChunk(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		_, err := ValidateInsertGroundingChunk(InsertGroundingChunk{
			Title:   "Local guide",
			URL:     "https://example.com",
			Snippet: "A walking guide",
		})
		assert.NoError(t, err)
	})

	t.Run("missing url and snippet", func(t *testing.T) {
		_, err := ValidateInsertGroundingChunk(InsertGroundingChunk{Title: "only title"})
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.ElementsMatch(t, []string{"url", "snippet"}, vErr.Fields)
	})
}

func TestValidateInsertUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		_, err := ValidateInsertUser(InsertUser{Username: "wanderer", Password: "pw"})
		assert.NoError(t, err)
	})

	t.Run("missing username", func(t *testing.T) {
		_, err := ValidateInsertUser(InsertUser{Password: "pw"})
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, []string{"username"}, vErr.Fields)
	})
}
