// Package service contains the flashcard use cases. It coordinates upload
// storage, text extraction, content validation, generation and export so
// the HTTP layer only translates requests and responses.
package service
