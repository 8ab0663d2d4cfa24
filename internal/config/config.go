package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/holdem-equity/equity"
)

// DefaultFile is the configuration file read when none is given.
const DefaultFile = "holdem-equity.hcl"

// Config represents the complete configuration file. Both blocks are
// optional; Load always returns them populated.
type Config struct {
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Output     *OutputSettings     `hcl:"output,block"`
}

// SimulationSettings contains Monte Carlo settings
type SimulationSettings struct {
	Trials  int `hcl:"trials,optional"`
	Workers int `hcl:"workers,optional"`
	// Seed is nil when unset, meaning a fresh time-based seed per run.
	Seed *int64 `hcl:"seed,optional"`
}

// OutputSettings contains report and logging settings
type OutputSettings struct {
	NoColor    bool   `hcl:"no_color,optional"`
	Categories bool   `hcl:"categories,optional"`
	LogLevel   string `hcl:"log_level,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Simulation: &SimulationSettings{
			Trials:  equity.DefaultTrials,
			Workers: 0,
		},
		Output: &OutputSettings{
			LogLevel: "warn",
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := Default()

	if config.Simulation == nil {
		config.Simulation = defaults.Simulation
	}
	if config.Output == nil {
		config.Output = defaults.Output
	}
	if config.Simulation.Trials == 0 {
		config.Simulation.Trials = defaults.Simulation.Trials
	}
	if config.Output.LogLevel == "" {
		config.Output.LogLevel = defaults.Output.LogLevel
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", filename, err)
	}

	return &config, nil
}

// Validate checks values that have no sensible interpretation.
func (c *Config) Validate() error {
	if c.Simulation.Trials < 0 {
		return fmt.Errorf("simulation.trials must be positive, got %d", c.Simulation.Trials)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("simulation.workers must not be negative, got %d", c.Simulation.Workers)
	}
	switch c.Output.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("output.log_level must be one of debug, info, warn, error; got %q", c.Output.LogLevel)
	}
	return nil
}
