// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, an optional .env file, and an
// optional config.yaml). It provides type-safe access to the settings needed
// by the HTTP server, the upload store, and the LLM inference adapters while
// keeping configuration details separate from business logic.
package config
