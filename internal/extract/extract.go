package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Kind identifies a supported document type by its file extension.
type Kind string

// Supported document kinds.
const (
	KindText Kind = "txt"
	KindPDF  Kind = "pdf"
)

var (
	// ErrUnsupportedKind is returned when File is asked to read a kind it does not know.
	ErrUnsupportedKind = errors.New("unsupported document kind")

	// ErrInvalidUTF8 is returned when a text document is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("file is not valid UTF-8")
)

// ExtractionError reports a failure to read text out of a document.
type ExtractionError struct {
	Kind Kind
	Err  error
}

func (e *ExtractionError) Error() string {
	label := "text file"
	if e.Kind == KindPDF {
		label = "PDF"
	}
	return fmt.Sprintf("error extracting text from %s: %v", label, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// KindFromFilename returns the document kind for name's extension
// (case-insensitive) and whether it is supported.
func KindFromFilename(name string) (Kind, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	switch Kind(ext) {
	case KindText, KindPDF:
		return Kind(ext), true
	default:
		return "", false
	}
}

// File extracts the body text of the document at path. Failures are returned
// as *ExtractionError.
func File(path string, kind Kind) (string, error) {
	switch kind {
	case KindText:
		return textFile(path)
	case KindPDF:
		return pdfFile(path)
	default:
		return "", &ExtractionError{Kind: kind, Err: fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)}
	}
}
