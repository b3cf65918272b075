package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dungen.yaml")
	content := `
log_level: debug
log_file: logs/dungen.log
telemetry:
  enabled: true
bsp:
  width: 80
  min_room_width: 5
scatter:
  desired_room_count: 12
batch_workers: 8
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "logs/dungen.log", cfg.LogFile)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Empty(t, cfg.Telemetry.Endpoint)
	assert.Equal(t, 80, cfg.BSP.Width)
	assert.Equal(t, 50, cfg.BSP.Height, "unset keys keep defaults")
	assert.Equal(t, 5, cfg.BSP.MinRoomWidth)
	assert.Equal(t, 12, cfg.Scatter.DesiredRoomCount)
	assert.Equal(t, 30, cfg.Scatter.Width)
	assert.Equal(t, 8, cfg.BatchWorkers)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("bsp: [unclosed"), 0o644))
	_, err := Load(bad)
	assert.Error(t, err)

	workers := filepath.Join(dir, "workers.yaml")
	require.NoError(t, os.WriteFile(workers, []byte("batch_workers: 0\n"), 0o644))
	_, err = Load(workers)
	assert.Error(t, err)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, Config{LogLevel: tt.level}.SlogLevel())
		})
	}
}
