// Package error provides structured error handling for the numx foundation.
//
// Package: error
// Title: numx Error Handling Framework
// Description: This package implements a structured error type with error codes,
//              severities, contextual details and stack traces. Every foundation
//              package reports failures through it so callers can branch on
//              codes instead of parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-08-02 v0.2.0: Reduced code table to numeric, validation and harness codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes with categories
// - Stack trace capture for debugging
// - Severity levels that drive log levels in core/log
//
// Usage:
//   import mdwerror "github.com/msto63/numx/foundation/core/error"
//
//   err := mdwerror.New("base must be positive").
//     WithCode(mdwerror.CodeInvalidInput).
//     WithDetail("base", -8)
//
//   if mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
//     // handle domain errors
//   }
package error
