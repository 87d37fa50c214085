package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbeaudouin05/envpage/api/config"
)

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		level    string
		enabled  []slog.Level
		disabled []slog.Level
	}{
		{"debug", []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelError}, nil},
		{"info", []slog.Level{slog.LevelInfo, slog.LevelWarn}, []slog.Level{slog.LevelDebug}},
		{"warn", []slog.Level{slog.LevelWarn, slog.LevelError}, []slog.Level{slog.LevelDebug, slog.LevelInfo}},
		{"error", []slog.Level{slog.LevelError}, []slog.Level{slog.LevelInfo, slog.LevelWarn}},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := newLogger(&bytes.Buffer{}, &config.Config{LogLevel: tt.level, LogFormat: "json"})
			for _, l := range tt.enabled {
				assert.True(t, logger.Enabled(context.Background(), l), "want %s enabled", l)
			}
			for _, l := range tt.disabled {
				assert.False(t, logger.Enabled(context.Background(), l), "want %s disabled", l)
			}
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, &config.Config{LogLevel: "info", LogFormat: "json"}).Info("hello", "k", "v")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "envpage", line["service"])
	assert.Equal(t, "v", line["k"])
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, &config.Config{LogLevel: "info", LogFormat: "text"}).Info("hello")

	out := buf.String()
	assert.Contains(t, out, "msg=hello")
	assert.Contains(t, out, "service=envpage")
	assert.False(t, json.Valid(buf.Bytes()))
}
