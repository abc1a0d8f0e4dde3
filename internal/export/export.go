package export

import (
	"errors"
	"fmt"
	"time"
)

// Format names an export encoding.
type Format string

// Supported formats.
const (
	FormatJSON    Format = "json"
	FormatCSV     Format = "csv"
	FormatAnki    Format = "anki"
	FormatQuizlet Format = "quizlet"
	FormatXLSX    Format = "xlsx"
)

// MIME types returned with each payload.
const (
	MIMEJSON = "application/json"
	MIMECSV  = "text/csv"
	MIMEText = "text/plain"
	MIMEXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

const stampLayout = "20060102_150405"

var (
	// ErrUnsupportedFormat is returned for a format name outside the supported set.
	ErrUnsupportedFormat = errors.New("unsupported export format")

	// ErrNoFlashcards is returned when there is nothing to export.
	ErrNoFlashcards = errors.New("no flashcards to export")
)

// Record is one flashcard as the client holds it.
type Record = map[string]any

// Result is a serialized export. Binary formats are base64 encoded in Data.
type Result struct {
	Success  bool   `json:"success"`
	Data     string `json:"data"`
	Filename string `json:"filename"`
	MIMEType string `json:"mime_type"`
}

// ParseFormat checks a format name. Names match exactly; an empty name
// selects FormatJSON.
func ParseFormat(name string) (Format, error) {
	f := Format(name)
	switch f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatCSV, FormatAnki, FormatQuizlet, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Export serializes records in the named format. now stamps the suggested
// filename.
func Export(records []Record, format string, now time.Time) (Result, error) {
	if len(records) == 0 {
		return Result{}, ErrNoFlashcards
	}
	f, err := ParseFormat(format)
	if err != nil {
		return Result{}, err
	}

	stamp := now.Format(stampLayout)
	var (
		data     string
		filename string
		mimeType string
	)

	switch f {
	case FormatJSON:
		data, err = encodeJSON(records)
		filename, mimeType = "flashcards_"+stamp+".json", MIMEJSON
	case FormatCSV:
		data, err = encodeCSV(records)
		filename, mimeType = "flashcards_"+stamp+".csv", MIMECSV
	case FormatAnki:
		data = encodeTabSeparated(records)
		filename, mimeType = "flashcards_"+stamp+".txt", MIMEText
	case FormatQuizlet:
		data = encodeTabSeparated(records)
		filename, mimeType = "flashcards_quizlet_"+stamp+".txt", MIMEText
	case FormatXLSX:
		data, err = encodeXLSX(records)
		filename, mimeType = "flashcards_"+stamp+".xlsx", MIMEXLSX
	}
	if err != nil {
		return Result{}, fmt.Errorf("failed to encode %s export: %w", f, err)
	}

	return Result{
		Success:  true,
		Data:     data,
		Filename: filename,
		MIMEType: mimeType,
	}, nil
}
