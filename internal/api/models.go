package api

import (
	"encoding/json"
	"fmt"

	"github.com/phrazzld/flashforge-api/internal/domain"
	"github.com/phrazzld/flashforge-api/internal/export"
)

// ExportRequest is the body of POST /api/export-flashcards. Records are
// exported as the client holds them.
type ExportRequest struct {
	Flashcards []export.Record `json:"flashcards"`
	Format     string          `json:"format"`
}

// UpdateRequest is the body of PUT /api/update-flashcard. Clients may send
// the id as a string or a number.
type UpdateRequest struct {
	ID       any    `json:"id"       validate:"required"`
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer"   validate:"required"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// GenerateResponse is returned by a successful generation request.
type GenerateResponse struct {
	Success    bool               `json:"success"`
	Flashcards []domain.Flashcard `json:"flashcards"`
	Count      int                `json:"count"`
	Message    string             `json:"message"`
}

// UpdateResponse is returned by a successful update.
type UpdateResponse struct {
	Success   bool             `json:"success"`
	Flashcard domain.Flashcard `json:"flashcard"`
	Message   string           `json:"message"`
}

// CardID returns the id as text. Numbers keep their literal form.
func (r UpdateRequest) CardID() string {
	switch v := r.ID.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
