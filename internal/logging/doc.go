// Package logging provides structured logging utilities for the curator application.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - PII sanitization (sender address anonymization)
//   - Consistent attribute naming across the codebase
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "fetchNewsletterEmails")
//	logger.Info("fetch completed",
//	    logging.Status("success"))
//
// Sanitize sensitive data before logging:
//
//	logger.Info("scanning source",
//	    logging.SenderHash(source.Identifier))
//
// # Security Considerations
//
// This package is designed with security in mind:
//   - Newsletter sender addresses are hashed to prevent PII leakage while allowing correlation
//   - OAuth tokens are never logged directly
package logging
