package logging

import (
	"context"
	"log/slog"
)

// Nil-safe logging entry points. Components treat their logger as optional
// wiring; a nil logger drops the record.

func Debug(logger *slog.Logger, msg string, args ...any) {
	log(logger, slog.LevelDebug, msg, args...)
}

func Info(logger *slog.Logger, msg string, args ...any) {
	log(logger, slog.LevelInfo, msg, args...)
}

func Warn(logger *slog.Logger, msg string, args ...any) {
	log(logger, slog.LevelWarn, msg, args...)
}

// Error appends err under the "error" key when present.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err)
	}
	log(logger, slog.LevelError, msg, args...)
}

func log(logger *slog.Logger, level slog.Level, msg string, args ...any) {
	if logger == nil {
		return
	}
	logger.Log(context.Background(), level, msg, args...)
}
