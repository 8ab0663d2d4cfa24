package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/holdem-equity/poker"
)

// EvalCmd scores five cards directly, or picks the best five of six or seven.
type EvalCmd struct {
	Cards string `arg:"" help:"Five to seven cards (e.g. AsKsQsJsTs or 'Ah Kd 7c 7d 2s 9h Jc')"`
}

func (c *EvalCmd) Run(globals *Globals) error {
	return c.run(os.Stdout)
}

func (c *EvalCmd) run(w io.Writer) error {
	cards, err := poker.ParseCards(c.Cards)
	if err != nil {
		return err
	}
	if len(cards) < poker.HandSize || len(cards) > 7 {
		return fmt.Errorf("expected 5 to 7 cards, got %d", len(cards))
	}
	if set := poker.NewCardSet(cards...); set.Len() != len(cards) {
		return fmt.Errorf("duplicate card in %s", poker.FormatCards(cards))
	}

	hand, evaluation, err := poker.BestHand(cards)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s  %s  rank %d\n", hand, evaluation, evaluation.Category)
	return err
}
