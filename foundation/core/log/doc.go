// File: doc.go
// Title: Core Logging Package Documentation
// Description: Structured, leveled logging for the sable toolchain.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-18 v0.2.0: Run IDs replace request/user IDs, deterministic field order,
//                      synchronous writes only
//
// Usage:
//   import mdwlog "github.com/msto63/sable/foundation/core/log"
//
//   logger := mdwlog.New().
//     WithLevel(mdwlog.LevelDebug).
//     WithFormat(mdwlog.FormatText).
//     WithField("component", "parser")
//
//   logger.Info("parsed token file", mdwlog.Fields{"forms": 3})
//   logger.LogError(err) // level follows the mdwerror severity
//
//   timer := logger.StartTimer("parse")
//   defer timer.Stop()

// Package log provides structured logging with JSON, text, console and
// logfmt output, per-logger context fields and operation timers.
package log
