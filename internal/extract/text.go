package extract

import (
	"os"
	"unicode/utf8"
)

func textFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Kind: KindText, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &ExtractionError{Kind: KindText, Err: ErrInvalidUTF8}
	}
	return string(data), nil
}
