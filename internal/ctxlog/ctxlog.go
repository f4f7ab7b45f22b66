// Copyright (c) marcwadey 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

type loggerKey struct{}

// LevelVar controls the level of the default logger and may be adjusted at
// runtime.
var LevelVar = &slog.LevelVar{}

// DefaultLogger pretty-prints to stderr at the level given by LevelVar.
var DefaultLogger = slog.New(NewPretty(
	&slog.HandlerOptions{Level: LevelVar},
	WithWriter(os.Stderr),
	WithAutoColor(),
))

func init() {
	LevelVar.Set(levelFromEnv())
}

// New returns a context carrying logger. A nil logger stores the default.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = DefaultLogger
	}

	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger carried by ctx, or the default logger.
func Logger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return DefaultLogger
}

// Debug logs at debug level using the logger carried by ctx.
func Debug(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Debug(msg, args...)
}

// Info logs at info level using the logger carried by ctx.
func Info(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Info(msg, args...)
}

// Warn logs at warn level using the logger carried by ctx.
func Warn(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Warn(msg, args...)
}

// Error logs at error level using the logger carried by ctx.
func Error(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Error(msg, args...)
}

func levelFromEnv() slog.Level {
	exe, _ := os.Executable()
	name := filepath.Base(exe)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	envName := strings.ToUpper(name) + "_LOG_LEVEL"

	switch os.Getenv(envName) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
