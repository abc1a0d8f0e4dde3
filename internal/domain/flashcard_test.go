package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/flashforge-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlashcard(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	card := domain.NewFlashcard("  What is Go?  ", "\tA language.\n", now)

	_, err := uuid.Parse(card.ID)
	require.NoError(t, err, "ID should be a UUID")
	assert.Equal(t, "What is Go?", card.Question)
	assert.Equal(t, "A language.", card.Answer)
	assert.Equal(t, now, card.CreatedAt)
	assert.True(t, card.UpdatedAt.IsZero())
	assert.NoError(t, card.Validate())

	other := domain.NewFlashcard("q", "a", now)
	assert.NotEqual(t, card.ID, other.ID, "IDs should be unique")
}

func TestFlashcardJSON(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	card := domain.Flashcard{ID: "abc", Question: "q", Answer: "a", CreatedAt: now}

	data, err := json.Marshal(card)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "abc", fields["id"])
	assert.Equal(t, "2024-03-01T12:00:00Z", fields["created_at"])
	assert.NotContains(t, fields, "updated_at")
}

func TestUpdateFlashcard(t *testing.T) {
	now := time.Date(2024, 3, 2, 8, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		id       string
		question string
		answer   string
		wantErr  error
	}{
		{name: "valid", id: "card-1", question: " New question ", answer: "New answer"},
		{name: "missing id", id: "", question: "q", answer: "a", wantErr: domain.ErrMissingFields},
		{name: "blank question", id: "card-1", question: "   ", answer: "a", wantErr: domain.ErrMissingFields},
		{name: "blank answer", id: "card-1", question: "q", answer: "", wantErr: domain.ErrMissingFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := domain.UpdateFlashcard(tt.id, tt.question, tt.answer, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "card-1", card.ID)
			assert.Equal(t, "New question", card.Question)
			assert.Equal(t, "New answer", card.Answer)
			assert.Equal(t, now, card.UpdatedAt)
		})
	}
}

func TestFlashcardValidate(t *testing.T) {
	assert.ErrorIs(t, domain.Flashcard{Question: "q", Answer: "a"}.Validate(), domain.ErrMissingFields)
	assert.NoError(t, domain.Flashcard{ID: "1", Question: "q", Answer: "a"}.Validate())
}
