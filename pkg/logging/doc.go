// Package logging provides structured logging utilities for the bypass tool.
//
// # Overview
//
// This package wraps the standard library slog package with the defaults used
// by every command: JSON records on stderr, module/version attributes on each
// record, and source location when running at debug level.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLoggerWithLevel("bypass", version, "info")
//	    slog.Info("resolved product.json", "path", path)
//	}
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity when no explicit level
// is passed:
//
//	LOG_LEVEL=debug bypass run
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "version updated",
//	    "module": "bypass",
//	    "version": "v1.0.0",
//	    "old": "1.0.0",
//	    "new": "1.5.4"
//	}
//
// User-facing progress lines are written by pkg/report; every reported event
// is mirrored here so that log collection sees the same timeline.
package logging
