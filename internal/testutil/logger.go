package testutil

import (
	"bytes"
	"log/slog"
)

// NewBufferLogger returns a debug-level text logger backed by a buffer so
// tests can assert on every emitted line, mediator debug output included.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), &buf
}
