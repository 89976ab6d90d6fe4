/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"io"
	"log/slog"
	"strings"
)

// newLogger builds a logger writing to w. Unknown levels fall back to info;
// any format other than "json" yields text output.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(formatStr) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
