package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-equity/equity"
	"github.com/lox/holdem-equity/internal/config"
	"github.com/lox/holdem-equity/internal/report"
	"github.com/lox/holdem-equity/poker"
)

// SimulateCmd estimates win rates for two sets of hole cards.
// Unset flags fall back to the config file.
type SimulateCmd struct {
	Player1    string `arg:"" help:"Player 1 hole cards (e.g. AhKh)"`
	Player2    string `arg:"" help:"Player 2 hole cards (e.g. QsQd)"`
	Trials     *int   `short:"n" help:"Number of Monte Carlo trials (default 10000)"`
	Workers    *int   `short:"w" help:"Parallel workers (0 = number of CPUs, at most 8)"`
	Seed       *int64 `short:"s" help:"Random seed for reproducible results (default time based)"`
	Categories *bool  `short:"c" negatable:"" help:"Show the best-hand category breakdown"`
	Color      *bool  `negatable:"" help:"Colored output (--no-color for plain text)"`
	JSON       string `name:"json" type:"path" help:"Also write a JSON summary to this file"`
}

func (c *SimulateCmd) Run(globals *Globals) error {
	cfg, err := config.Load(globals.Config)
	if err != nil {
		return err
	}

	level := cfg.Output.LogLevel
	if globals.LogLevel != "" {
		level = globals.LogLevel
	}
	logger := newLogger(os.Stderr, level)

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	return c.run(ctx, os.Stdout, cfg, logger)
}

// settings merges command-line flags over the loaded configuration.
func (c *SimulateCmd) settings(cfg *config.Config) (equity.Config, report.Options) {
	sim := equity.Config{
		Trials:  cfg.Simulation.Trials,
		Workers: cfg.Simulation.Workers,
		Seed:    cfg.Simulation.Seed,
	}
	if c.Trials != nil {
		sim.Trials = *c.Trials
	}
	if c.Workers != nil {
		sim.Workers = *c.Workers
	}
	if c.Seed != nil {
		sim.Seed = c.Seed
	}

	opts := report.Options{
		Categories: cfg.Output.Categories,
		NoColor:    cfg.Output.NoColor,
	}
	if c.Categories != nil {
		opts.Categories = *c.Categories
	}
	if c.Color != nil {
		opts.NoColor = !*c.Color
	}
	return sim, opts
}

func (c *SimulateCmd) run(ctx context.Context, w io.Writer, cfg *config.Config, logger *log.Logger) error {
	player1, err := parseHole(c.Player1)
	if err != nil {
		return fmt.Errorf("player 1: %w", err)
	}
	player2, err := parseHole(c.Player2)
	if err != nil {
		return fmt.Errorf("player 2: %w", err)
	}

	simConfig, opts := c.settings(cfg)
	simConfig.Logger = logger

	result, err := equity.New(simConfig).Run(ctx, player1, player2)
	if err != nil {
		return err
	}
	if err := report.Render(w, result, opts); err != nil {
		return err
	}

	if c.JSON != "" {
		if err := report.WriteJSON(c.JSON, result); err != nil {
			return err
		}
		logger.Info("Wrote summary", "file", c.JSON)
	}
	return nil
}

// parseHole accepts two cards with or without a separating space.
func parseHole(s string) ([2]poker.Card, error) {
	cards, err := poker.ParseCards(s)
	if err != nil {
		return [2]poker.Card{}, err
	}
	texts := make([]string, len(cards))
	for i, card := range cards {
		texts[i] = card.String()
	}
	return equity.ParseHole(texts)
}
