// Package openaicompat implements generation.Completer with the OpenAI Go SDK
// against any OpenAI-compatible /v1/completions endpoint, including Together's
// OpenAI-compatible API, vLLM, and Ollama.
package openaicompat
