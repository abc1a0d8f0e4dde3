// Package gemini implements generation.Completer with Google's genai SDK.
//
// Requests ask for an application/json response so the model replies with a
// bare card array, which the generation package parses like any other
// completion.
package gemini
