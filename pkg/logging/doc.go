// Package logging provides structured logging utilities for the API impact
// heatmap server and CLI.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// so the server and the CLI emit the same record shape. It supports
// environment-based log level configuration, module/version context
// injection, and source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: per-request and per-build diagnostics with source location
//   - INFO: startup, catalog load, and index build summaries (default)
//   - WARN/WARNING: recoverable problems such as an unreadable optional source
//   - ERROR: failures requiring attention
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("heatmapd", version)
//	    slog.Info("index built", "apis", idx.Len())
//	}
//
// Setting an explicit level from a CLI flag:
//
//	logging.SetDefaultStructuredLoggerWithLevel("heatmap", version, cmd.String("log-level"))
//
// # Environment Configuration
//
//	LOG_LEVEL=debug heatmapd
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "similarity index built",
//	    "module": "heatmapd",
//	    "version": "v1.0.0",
//	    "apis": 30
//	}
package logging
