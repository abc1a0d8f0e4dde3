package domain

import (
	"strings"
	"unicode/utf8"
)

// MinContentLength is the minimum number of characters, after trimming, that
// content must contain before generation is attempted.
const MinContentLength = 50

// BuildContent joins pasted text and extracted file text with a blank line.
// Either part may be empty; the pasted text is trimmed first.
func BuildContent(textInput, fileText string) string {
	content := strings.TrimSpace(textInput)
	if fileText == "" {
		return content
	}
	if content == "" {
		return fileText
	}
	return content + "\n\n" + fileText
}

// ValidateContent checks that content is present and long enough.
func ValidateContent(content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return ErrNoContent
	}
	if utf8.RuneCountInString(trimmed) < MinContentLength {
		return ErrContentTooShort
	}
	return nil
}
