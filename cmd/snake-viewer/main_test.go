package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/softsnake/config"
	"github.com/lixenwraith/softsnake/snake"
)

func TestRun_ReturnsSetupErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.toml")
	if err := os.WriteFile(path, []byte("[body]\nsegment_count = 1\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv(config.EnvPrefix+"SEGMENTS", "")
	prev := *configPath
	*configPath = path
	t.Cleanup(func() { *configPath = prev })

	if err := run(); !errors.Is(err, snake.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig before any window opens, got %v", err)
	}
}
