package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-equity/equity"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, equity.DefaultTrials, cfg.Simulation.Trials)
	assert.Equal(t, "warn", cfg.Output.LogLevel)
	assert.Nil(t, cfg.Simulation.Seed)
}

func TestLoadZeroSeed(t *testing.T) {
	cfg, err := Load(writeConfig(t, `simulation { seed = 0 }`))
	require.NoError(t, err)
	require.NotNil(t, cfg.Simulation.Seed)
	assert.Zero(t, *cfg.Simulation.Seed)
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
simulation {
  trials  = 50000
  workers = 4
  seed    = 42
}

output {
  no_color   = true
  categories = true
  log_level  = "debug"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50000, cfg.Simulation.Trials)
	assert.Equal(t, 4, cfg.Simulation.Workers)
	require.NotNil(t, cfg.Simulation.Seed)
	assert.Equal(t, int64(42), *cfg.Simulation.Seed)
	assert.True(t, cfg.Output.NoColor)
	assert.True(t, cfg.Output.Categories)
	assert.Equal(t, "debug", cfg.Output.LogLevel)
}

func TestLoadPartialFileAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
simulation {
  seed = 7
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, equity.DefaultTrials, cfg.Simulation.Trials)
	require.NotNil(t, cfg.Simulation.Seed)
	assert.Equal(t, int64(7), *cfg.Simulation.Seed)
	require.NotNil(t, cfg.Output)
	assert.Equal(t, "warn", cfg.Output.LogLevel)
	assert.False(t, cfg.Output.NoColor)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax error", `simulation { trials = `},
		{"unknown attribute", `simulation { rounds = 5 }`},
		{"negative workers", `simulation { workers = -2 }`},
		{"negative trials", `simulation { trials = -10 }`},
		{"bad log level", `output { log_level = "loud" }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
