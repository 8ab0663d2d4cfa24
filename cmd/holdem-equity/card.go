package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/holdem-equity/internal/randutil"
	"github.com/lox/holdem-equity/poker"
)

// CardCmd prints random card codes. Cards are drawn independently, so
// repeats are possible.
type CardCmd struct {
	Count int    `short:"n" default:"1" help:"Number of cards to print"`
	Seed  *int64 `short:"s" help:"Random seed for reproducible output"`
}

func (c *CardCmd) Run(globals *Globals) error {
	return c.run(os.Stdout)
}

func (c *CardCmd) run(w io.Writer) error {
	if c.Count <= 0 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}

	seed := randutil.Seed()
	if c.Seed != nil {
		seed = *c.Seed
	}
	rng := randutil.New(seed)

	for i := 0; i < c.Count; i++ {
		if _, err := fmt.Fprintln(w, poker.GenerateRandomCard(rng)); err != nil {
			return err
		}
	}
	return nil
}
