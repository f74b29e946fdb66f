// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger writing to w. When w is a
// terminal, it uses slog.TextHandler for human-readable output; otherwise
// slog.JSONHandler, so piped runs (CI, scripts) stay machine-parseable.
//
// SLACKWIRE_LOG_LEVEL=debug lowers the level, which makes "check" log
// every record that failed to decode.
func NewCommandLogger(w io.Writer) *slog.Logger {
	options := &slog.HandlerOptions{Level: levelFromEnvironment()}
	if IsTerminal(w) {
		return slog.New(slog.NewTextHandler(w, options))
	}
	return slog.New(slog.NewJSONHandler(w, options))
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

func levelFromEnvironment() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(os.Getenv("SLACKWIRE_LOG_LEVEL"))); err != nil {
		return slog.LevelInfo
	}
	return level
}
