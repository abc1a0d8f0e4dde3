// Package domain contains the flashcard entity and the content rules shared by
// the generation, export, and update use cases. It has no knowledge of HTTP,
// files, or language models.
package domain
