package api

import (
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/phrazzld/flashforge-api/internal/api/shared"
	"github.com/phrazzld/flashforge-api/internal/domain"
	"github.com/phrazzld/flashforge-api/internal/platform/logger"
	"github.com/phrazzld/flashforge-api/internal/redact"
	"github.com/phrazzld/flashforge-api/internal/service"
)

// multipartMemory is how much of a multipart body is buffered in memory
// before parts spill to temporary files.
const multipartMemory = 8 << 20

// FlashcardHandler serves the flashcard endpoints.
type FlashcardHandler struct {
	service        service.FlashcardService
	maxUploadBytes int64
	logger         *slog.Logger
}

// NewFlashcardHandler creates a new FlashcardHandler. maxUploadBytes bounds
// every request body.
func NewFlashcardHandler(
	flashcardService service.FlashcardService,
	maxUploadBytes int64,
	logger *slog.Logger,
) *FlashcardHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for FlashcardHandler")
	}

	return &FlashcardHandler{
		service:        flashcardService,
		maxUploadBytes: maxUploadBytes,
		logger:         logger.With(slog.String("component", "flashcard_handler")),
	}
}

// Health handles GET /api/health.
func (h *FlashcardHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Message: "Flashcard API is running",
	})
}

// GenerateFlashcards handles POST /api/generate-flashcards.
// It accepts a multipart or urlencoded form with an optional text_input
// field and an optional file upload.
func (h *FlashcardHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		if shared.IsBodyTooLarge(err) {
			shared.RespondWithErrorAndLog(w, r, http.StatusRequestEntityTooLarge, "Request body too large", err)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid form data", err)
		return
	}
	if r.MultipartForm != nil {
		defer func() {
			if err := r.MultipartForm.RemoveAll(); err != nil {
				log.Warn("failed to remove multipart temp files", slog.String("error", redact.Error(err)))
			}
		}()
	}

	req := service.GenerateRequest{TextInput: r.PostFormValue("text_input")}

	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer closeFile(log, file)
		if header.Filename != "" {
			req.File = &service.FileInput{Name: header.Filename, Body: file}
		}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid file upload", err)
		return
	}

	result, err := h.service.Generate(r.Context(), req)
	if err != nil {
		if status := MapErrorToStatusCode(err); status != http.StatusInternalServerError {
			shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate flashcards: "+errorDetail(err), err)
		return
	}

	if result.UsedFallback() {
		log.Info("served fallback flashcards", slog.String("reason", string(result.FallbackReason)))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateResponse{
		Success:    true,
		Flashcards: result.Cards,
		Count:      len(result.Cards),
		Message:    fmt.Sprintf("Successfully generated %d flashcards", len(result.Cards)),
	})
}

// ExportFlashcards handles POST /api/export-flashcards.
func (h *FlashcardHandler) ExportFlashcards(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	var req ExportRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.respondDecodeError(w, r, err)
		return
	}

	result, err := h.service.Export(r.Context(), req.Flashcards, req.Format)
	if err != nil {
		if status := MapErrorToStatusCode(err); status != http.StatusInternalServerError {
			shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Export failed: "+errorDetail(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// UpdateFlashcard handles PUT /api/update-flashcard.
func (h *FlashcardHandler) UpdateFlashcard(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	var req UpdateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.respondDecodeError(w, r, err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(domain.ErrMissingFields), err)
		return
	}

	card, err := h.service.Update(r.Context(), req.CardID(), req.Question, req.Answer)
	if err != nil {
		if status := MapErrorToStatusCode(err); status != http.StatusInternalServerError {
			shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Update failed: "+errorDetail(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UpdateResponse{
		Success:   true,
		Flashcard: card,
		Message:   "Flashcard updated successfully",
	})
}

func (h *FlashcardHandler) respondDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	if shared.IsBodyTooLarge(err) {
		shared.RespondWithErrorAndLog(w, r, http.StatusRequestEntityTooLarge, "Request body too large", err)
		return
	}
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
}

// errorDetail returns the redacted cause of an unexpected service failure
// for inclusion in a 500 response.
func errorDetail(err error) string {
	var svcErr *service.FlashcardServiceError
	if errors.As(err, &svcErr) && svcErr.Err != nil {
		return redact.Error(svcErr.Err)
	}
	return redact.Error(err)
}

func closeFile(log *slog.Logger, f multipart.File) {
	if err := f.Close(); err != nil {
		log.Warn("failed to close uploaded file", slog.String("error", redact.Error(err)))
	}
}
