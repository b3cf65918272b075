// Package config loads dungen settings from YAML.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds CLI and generator defaults.
type Config struct {
	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
	LogFile  string `yaml:"log_file"`  // optional; one summary entry per generation

	// Tracing
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Generator defaults, applied when a flag is not given
	BSP     BSPDefaults     `yaml:"bsp"`
	Scatter ScatterDefaults `yaml:"scatter"`

	// Batch generation
	BatchWorkers int `yaml:"batch_workers"`
}

// TelemetryConfig controls OpenTelemetry export.
type TelemetryConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"` // empty: OTEL_EXPORTER_OTLP_ENDPOINT
}

// BSPDefaults are the default BSP tuning values.
type BSPDefaults struct {
	Width            int `yaml:"width"`
	Height           int `yaml:"height"`
	MinPartitionSize int `yaml:"min_partition_size"`
	MinRoomWidth     int `yaml:"min_room_width"`
	MinRoomHeight    int `yaml:"min_room_height"`
}

// ScatterDefaults are the default random placement values.
type ScatterDefaults struct {
	Width            int `yaml:"width"`
	Height           int `yaml:"height"`
	DesiredRoomCount int `yaml:"desired_room_count"`
}

// Default returns Config with sensible defaults.
func Default() Config {
	return Config{
		LogLevel: "info",
		BSP: BSPDefaults{
			Width:            50,
			Height:           50,
			MinPartitionSize: 6,
			MinRoomWidth:     3,
			MinRoomHeight:    3,
		},
		Scatter: ScatterDefaults{
			Width:            30,
			Height:           30,
			DesiredRoomCount: 5,
		},
		BatchWorkers: 4,
	}
}

// Load loads config from a YAML file over the defaults.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.BatchWorkers <= 0 {
		return cfg, fmt.Errorf("config %s: batch_workers must be positive, got %d", path, cfg.BatchWorkers)
	}

	return cfg, nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
