// Package errors provides the classified error primitives used across texpress.
//
// Every failure that should end the process (bad configuration, a missing
// preprint, an unsupported host platform) travels up as a ClassifiedError. Only
// the CLI boundary turns it into a diagnostic and an exit code, so tests can
// observe the same failures without terminating.
//
// Key features:
//   - ErrorCategory: Broad error classification (config, not_found, build, etc.)
//   - ErrorSeverity: Impact level (fatal, error, warning, info)
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - CLIErrorAdapter: diagnostic formatting and exit codes
//
// Example usage:
//
//	err := errors.NotFoundError("preprint not found").
//		WithContext("path", artifactPath).
//		Build()
package errors
