// Package extract turns uploaded documents into plain body text.
//
// Two document kinds are supported: UTF-8 plain text and PDF. Extraction is
// read-only; callers own the file and are responsible for removing it.
package extract
