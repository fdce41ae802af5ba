// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package logging provides structured logging for Aleutian components.
//
// The package is a thin construction layer over Go's standard library
// slog package. It exists so every component builds its logger the
// same way: severity filter, output format, and a "service" attribute
// stamped on every record.
//
// # Basic Usage
//
// Library consumers normally inject their own *slog.Logger. When none
// is injected, components fall back to the package default:
//
//	logger := logging.Default()
//	logger.Info("parse complete", "statements", n)
//
// A custom configuration:
//
//	logger := logging.New(logging.Config{
//	    Level:   logging.LevelDebug,
//	    Service: "pgbridge",
//	    JSON:    true,
//	})
//
// # Log Levels
//
// Four levels are supported, matching slog conventions:
//
//   - Debug: Development troubleshooting, verbose output
//   - Info: Normal operations (request start/end, state changes)
//   - Warn: Recoverable issues (retry attempts, degraded mode)
//   - Error: Operation failures (but system continues)
//
// # Thread Safety
//
// The returned *slog.Logger is safe for concurrent use.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// =============================================================================
// Log Levels
// =============================================================================

// Level represents log severity levels.
//
// Levels follow the slog convention and are ordered by severity:
// Debug < Info < Warn < Error
//
// Setting a minimum level filters out all logs below that level.
// For example, LevelWarn filters out Debug and Info messages.
type Level int

const (
	// LevelDebug is for development troubleshooting.
	// Use for verbose output that helps trace execution flow.
	LevelDebug Level = iota

	// LevelInfo is for normal operational messages.
	// Use for significant events that confirm correct operation.
	LevelInfo

	// LevelWarn is for potentially problematic situations.
	// Use when something unexpected happened but the system can continue.
	LevelWarn

	// LevelError is for error conditions.
	// Use when an operation failed but the system continues.
	LevelError
)

// String returns the human-readable name of the level.
//
// Returns "DEBUG", "INFO", "WARN", "ERROR", or "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// toSlogLevel converts our Level to slog.Level.
//
// This internal method bridges our Level type to the standard library.
func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// =============================================================================
// Configuration
// =============================================================================

// Config configures logger construction.
//
// All fields have sensible defaults. A zero-value Config creates
// a logger that writes Info+ messages to stderr in text format.
type Config struct {
	// Level sets the minimum log level.
	//
	// Messages below this level are discarded.
	// Default: LevelInfo
	Level Level

	// Service identifies the component generating logs.
	//
	// This value is included in every log entry as the "service" attribute,
	// making it easy to filter logs by component in aggregated systems.
	//
	// Default: "" (no service attribute)
	Service string

	// JSON enables JSON output format.
	//
	// When true, logs are formatted as JSON objects (machine-parseable).
	// When false, logs are formatted as human-readable text.
	//
	// Default: false (text format)
	JSON bool

	// Output is the destination for log records.
	//
	// Default: os.Stderr
	Output io.Writer
}

// =============================================================================
// Construction
// =============================================================================

// New creates a *slog.Logger with the given configuration.
//
// Parameters:
//   - config: Logger configuration (see Config for options)
//
// Returns:
//   - *slog.Logger: Configured logger ready for use
func New(config Config) *slog.Logger {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level: config.Level.toSlogLevel(),
	}

	var handler slog.Handler
	if config.JSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	if config.Service != "" {
		handler = handler.WithAttrs([]slog.Attr{
			slog.String("service", config.Service),
		})
	}

	return slog.New(handler)
}

var (
	defaultOnce   sync.Once
	defaultLogger *slog.Logger
)

// Default returns the shared default logger.
//
// The default configuration:
//   - Level: Info
//   - Output: stderr
//   - Format: text (human-readable)
//   - Service: "pgbridge"
//
// The same instance is returned on every call.
func Default() *slog.Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(Config{
			Level:   LevelInfo,
			Service: "pgbridge",
		})
	})
	return defaultLogger
}

// Discard returns a logger that drops every record. Intended for
// tests that exercise failure paths without polluting test output.
func Discard() *slog.Logger {
	return New(Config{Level: LevelError, Output: io.Discard})
}
