// Package log provides structured logging for numx.
//
// Package: log
// Title: numx Structured Logging
// Description: Leveled, structured logging with JSON and text output and
//              integration with core/error, so an error's severity picks the
//              level it is logged at.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-08-02 v0.2.0: Reduced to JSON/text output, dropped async buffering
//
// Usage:
//   import mdwlog "github.com/msto63/numx/foundation/core/log"
//
//   logger := mdwlog.New().
//     WithLevel(mdwlog.LevelDebug).
//     WithFormat(mdwlog.FormatText).
//     WithName("harness")
//
//   logger.Info("case passed", mdwlog.String("case", "abs"), mdwlog.Float64("got", 1.2))
//   logger.LogError(err)
package log
