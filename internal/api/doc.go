// Package api handles incoming HTTP requests, request validation and
// response formatting. It adapts the flashcard service to the JSON and
// multipart surface used by the web client.
package api
