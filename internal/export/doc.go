// Package export serializes client-supplied flashcard records into
// downloadable encodings: JSON, CSV, Anki and Quizlet tab-separated text, and
// an XLSX workbook.
//
// Records are plain maps because the client is the system of record; a
// record missing a field exports that field as an empty string.
package export
