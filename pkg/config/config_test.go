package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if c.Columns() != 14 || c.Rows() != 14 {
		t.Errorf("expected 14x14 grid, got %dx%d", c.Columns(), c.Rows())
	}
	if c.SpawnCells != 13 {
		t.Errorf("spawn bound should stay at 13, got %d", c.SpawnCells)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero block", func(c *Config) { c.BlockSize = 0 }},
		{"tiny window", func(c *Config) { c.WindowWidth = 10 }},
		{"no spawn cells", func(c *Config) { c.SpawnCells = 0 }},
		{"food outside window", func(c *Config) { c.WindowHeight = 600 }},
		{"spawn grid too wide", func(c *Config) { c.SpawnCells = 15 }},
		{"negative tolerance", func(c *Config) { c.Tolerance = -1 }},
		{"empty snake", func(c *Config) { c.StartLength = 0 }},
		{"zero interval", func(c *Config) { c.MoveInterval = 0 }},
		{"zero tick", func(c *Config) { c.TickResolution = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("SNAKE_BLOCK_SIZE", "20")
	t.Setenv("SNAKE_SPAWN_CELLS", "14")
	t.Setenv("SNAKE_MOVE_INTERVAL", "500ms")
	t.Setenv("SNAKE_COLLISIONS", "true")
	t.Setenv("SNAKE_SEED", "42")
	t.Setenv("SNAKE_DB_PATH", "")

	c, err := FromEnv(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if c.BlockSize != 20 || c.SpawnCells != 14 {
		t.Errorf("unexpected geometry: block=%v cells=%d", c.BlockSize, c.SpawnCells)
	}
	if c.MoveInterval != 500*time.Millisecond {
		t.Errorf("expected 500ms interval, got %v", c.MoveInterval)
	}
	if !c.CollisionChecks || c.Seed != 42 {
		t.Errorf("expected collisions on and seed 42, got %v %d", c.CollisionChecks, c.Seed)
	}
	if c.DBPath != "" {
		t.Errorf("expected empty DB path to disable history, got %q", c.DBPath)
	}
}

func TestFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.env")
	if err := os.WriteFile(path, []byte("SNAKE_TOLERANCE=0\nSNAKE_WINDOW_WIDTH=660\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Unsetenv("SNAKE_TOLERANCE")
		os.Unsetenv("SNAKE_WINDOW_WIDTH")
	})

	c, err := FromEnv(path)
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if c.Tolerance != 0 || c.WindowWidth != 660 {
		t.Errorf("env file not applied: tolerance=%v width=%d", c.Tolerance, c.WindowWidth)
	}
}

func TestFromEnvMalformed(t *testing.T) {
	t.Setenv("SNAKE_TICK", "fast")
	if _, err := FromEnv(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("expected error for malformed SNAKE_TICK")
	}
}
