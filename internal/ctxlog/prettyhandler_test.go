// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyHandler_Handle(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(NewPrettyHandler(&slog.HandlerOptions{Level: slog.LevelDebug},
		WithDestinationWriter(&buf),
	))

	logger.Info("process started", "pid", 42)

	out := buf.String()
	require.True(t, strings.HasSuffix(out, "\n"))
	assert.Contains(t, out, "INFO:")
	assert.Contains(t, out, "process started")
	assert.Contains(t, out, `"pid": 42`)
	assert.NotContains(t, out, "\033[", "colour must be off unless requested")
}

func TestPrettyHandler_EmptyAttrs(t *testing.T) {
	tests := []struct {
		name      string
		opts      []Option
		wantBrace bool
	}{
		{name: "omitted by default"},
		{name: "printed when requested", opts: []Option{WithOutputEmptyAttrs()}, wantBrace: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			opts := append([]Option{WithDestinationWriter(&buf)}, tt.opts...)
			slog.New(NewPrettyHandler(nil, opts...)).Warn("no attributes")

			assert.Equal(t, tt.wantBrace, strings.Contains(buf.String(), "{}"))
		})
	}
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h := NewPrettyHandler(&slog.HandlerOptions{Level: slog.LevelWarn})

	assert.False(t, h.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, h.Enabled(t.Context(), slog.LevelError))
}

func TestPrettyHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(NewPrettyHandler(nil, WithDestinationWriter(&buf))).
		With("command", "echo hi").
		WithGroup("proc")

	logger.Warn("finished", "exitCode", 1)

	out := buf.String()
	assert.Contains(t, out, `"command": "echo hi"`)
	assert.Contains(t, out, `"proc"`)
	assert.Contains(t, out, `"exitCode": 1`)
}
