package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadWithoutPath(t *testing.T) {
	t.Setenv("GAME_CONFIG", "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := `
world:
  seed: 42
  round_ticks: 5
  denominations:
    - {name: bead, value: 1}
    - {name: shell, value: 20}
storage:
  driver: badger
  path: /tmp/w
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.World.Seed)
	assert.Equal(t, uint64(5), cfg.World.RoundTicks)
	assert.Equal(t, 100, cfg.World.TickMS)
	assert.Len(t, cfg.World.Denominations, 2)
	assert.Equal(t, "badger", cfg.Storage.Driver)
	assert.Equal(t, "world", cfg.Storage.SnapshotName)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.yaml")
	require.NoError(t, os.WriteFile(path, []byte("world:\n  seed: 9\n"), 0o644))
	t.Setenv("GAME_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(9), cfg.World.Seed)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"tick", func(c *Config) { c.World.TickMS = 0 }, "tick_ms"},
		{"round", func(c *Config) { c.World.RoundTicks = 0 }, "round_ticks"},
		{"empty denominations", func(c *Config) { c.World.Denominations = nil }, "empty"},
		{"duplicate denomination", func(c *Config) {
			c.World.Denominations = append(c.World.Denominations, Denomination{Name: "x", Value: 1})
		}, "duplicated"},
		{"bad value", func(c *Config) { c.World.Denominations[0].Value = -1 }, "positive"},
		{"driver", func(c *Config) { c.Storage.Driver = "floppy" }, "floppy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestPortFallback(t *testing.T) {
	s := ServerConfig{}
	t.Setenv("GAME_REST_PORT", "9090")
	assert.Equal(t, 9090, s.GetRESTPort())
	t.Setenv("GAME_REST_PORT", "junk")
	assert.Equal(t, 8088, s.GetRESTPort())
	s.RESTPort = 7000
	assert.Equal(t, 7000, s.GetRESTPort())
	assert.Equal(t, 2112, s.GetMetricsPort())
}
