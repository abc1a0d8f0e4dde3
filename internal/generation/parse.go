package generation

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/phrazzld/flashforge-api/internal/domain"
)

// ExtractCardArray isolates the candidate JSON array in a model reply: the
// text from the first '[' through the last ']'. Prose before and after the
// array is tolerated. The second result is false when no such span exists.
func ExtractCardArray(text string) (string, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

// parseCards decodes raw as a JSON array and keeps the entries that match the
// card schema and have non-blank text. Non-conforming entries are dropped.
func parseCards(raw string, now time.Time) ([]domain.Flashcard, error) {
	var entries []any
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("invalid card JSON: %w", err)
	}

	cards := make([]domain.Flashcard, 0, len(entries))
	for _, entry := range entries {
		if err := cardSchema.Validate(entry); err != nil {
			continue
		}
		fields := entry.(map[string]any)
		question := strings.TrimSpace(fields["question"].(string))
		answer := strings.TrimSpace(fields["answer"].(string))
		if question == "" || answer == "" {
			continue
		}
		cards = append(cards, domain.NewFlashcard(question, answer, now))
	}
	return cards, nil
}
