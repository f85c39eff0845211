// Package logger provides structured logging for cfwkv.
//
// This package wraps log/slog:
//
//   - logger.go: Logger interface, configuration and level handling
//   - context.go: Context-aware logging with request IDs
//   - redact.go: Sensitive data redaction
//
// The CLI writes its logs to stderr so that stdout carries only the
// rendered API response.
package logger
