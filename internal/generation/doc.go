// Package generation turns a content string into flashcards.
//
// A Generator renders a prompt, asks a Completer (a remote language model
// adapter from internal/platform) for a completion, and parses a JSON array of
// question/answer objects out of the reply. Every failure on that path is
// classified as a DegradeReason and resolved by the deterministic Fallback
// generator, so Generate always returns between MinCards and MaxCards cards and
// never an error.
package generation
