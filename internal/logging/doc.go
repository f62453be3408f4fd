// Package logging provides structured logging utilities for workspace-mcp.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package.
// All output goes to stderr, keeping stdout clean for the stdio MCP transport.
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "gmail.send")
//	logger.Info("email sent",
//	    logging.Status("success"))
//
// Sanitize sensitive data before logging:
//
//	logger.Info("user operation",
//	    slog.String("account", logging.AnonymizeEmail(email)))
//
// # Security Considerations
//
//   - User emails are hashed to prevent PII leakage while allowing correlation
//   - Tokens and passphrases are never logged
package logging
