package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Flashcard is a question/answer pair with identity and timestamp metadata.
// Records are never mutated in place; an edit produces a new value with the
// same ID.
type Flashcard struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// NewFlashcard creates a card with a fresh identifier. Question and answer are
// trimmed. now supplies the creation timestamp.
func NewFlashcard(question, answer string, now time.Time) Flashcard {
	return Flashcard{
		ID:        uuid.New().String(),
		Question:  strings.TrimSpace(question),
		Answer:    strings.TrimSpace(answer),
		CreatedAt: now.UTC(),
	}
}

// UpdateFlashcard returns a new record carrying id and the supplied text with
// a refreshed UpdatedAt. All three fields must be non-empty after trimming.
func UpdateFlashcard(id, question, answer string, now time.Time) (Flashcard, error) {
	id = strings.TrimSpace(id)
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if id == "" || question == "" || answer == "" {
		return Flashcard{}, ErrMissingFields
	}

	return Flashcard{
		ID:        id,
		Question:  question,
		Answer:    answer,
		UpdatedAt: now.UTC(),
	}, nil
}

// Validate reports whether the card has an id, question, and answer.
func (f Flashcard) Validate() error {
	if strings.TrimSpace(f.ID) == "" ||
		strings.TrimSpace(f.Question) == "" ||
		strings.TrimSpace(f.Answer) == "" {
		return ErrMissingFields
	}
	return nil
}
