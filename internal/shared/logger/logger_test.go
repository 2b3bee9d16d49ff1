package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scamguard-vn/scamguard/internal/shared/config"
)

func TestConditionalSourceHandler(t *testing.T) {
	defaultLevels := []slog.Level{slog.LevelWarn, slog.LevelError}

	tests := []struct {
		name             string
		level            slog.Level
		showSourceLevels []slog.Level
		shouldHaveSource bool
	}{
		{"info is quiet by default", slog.LevelInfo, defaultLevels, false},
		{"warn carries source", slog.LevelWarn, defaultLevels, true},
		{"error carries source", slog.LevelError, defaultLevels, true},
		{"info carries source in debug mode", slog.LevelInfo, []slog.Level{slog.LevelDebug, slog.LevelInfo}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			log := slog.New(NewConditionalSourceHandler(base, tt.showSourceLevels...))

			log.Log(context.Background(), tt.level, "report created")

			assert.Equal(t, tt.shouldHaveSource, bytes.Contains(buf.Bytes(), []byte("source=")), buf.String())
		})
	}
}

func TestConditionalSourceHandler_PreservesAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	log := slog.New(NewConditionalSourceHandler(base, slog.LevelError)).
		With("session_id", "s1").
		WithGroup("chat")

	log.Info("message stored", "is_user", true)

	out := buf.String()
	assert.Contains(t, out, "session_id=s1")
	assert.Contains(t, out, "chat.is_user=true")
	assert.NotContains(t, out, "source=")
}

func TestConditionalSourceHandler_Enabled(t *testing.T) {
	base := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo})
	handler := NewConditionalSourceHandler(base, slog.LevelError)

	assert.True(t, handler.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, handler.Enabled(context.Background(), slog.LevelDebug))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestInit_JSONToFile(t *testing.T) {
	previous := Logger
	t.Cleanup(func() {
		Logger = previous
		if previous != nil {
			slog.SetDefault(previous)
		}
	})

	path := filepath.Join(t.TempDir(), "app.log")
	err := Init(&config.LoggerConfig{Level: "info", Format: "json", OutputPath: path}, false)
	require.NoError(t, err)

	NewLogger().Named("seed").Infow("seed completed", "reports", 3)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"seed completed"`)
	assert.Contains(t, string(data), `"logger":"seed"`)
	assert.Contains(t, string(data), `"reports":3`)
}
