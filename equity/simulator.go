// Package equity estimates heads-up Texas Hold'em win rates by Monte Carlo
// simulation: each trial deals five random community cards, finds each
// player's best five-card hand from their seven cards and tallies the result.
package equity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-equity/internal/randutil"
	"github.com/lox/holdem-equity/poker"
)

// DefaultTrials is the trial count used when none is configured.
const DefaultTrials = 10000

// maxWorkers caps the automatic worker count.
const maxWorkers = 8

var (
	// ErrInvalidTrials is returned when the trial count is not positive.
	ErrInvalidTrials = errors.New("trials must be positive")
	// ErrInvalidCard is returned for a hole card outside the 52-card deck.
	ErrInvalidCard = errors.New("invalid hole card")
	// ErrDuplicateCard is returned when the same card is dealt twice.
	ErrDuplicateCard = errors.New("duplicate hole card")
)

// Config holds configuration for running simulations
type Config struct {
	Trials int
	// Workers is the number of parallel workers. Zero or less uses
	// runtime.NumCPU, capped at 8.
	Workers int
	// Seed makes runs reproducible for a given worker count. Nil picks a
	// time-based seed; the seed used is reported in the Result.
	Seed   *int64
	Logger *log.Logger
	Clock  quartz.Clock
	// NewSource builds the card source for one worker. Defaults to a
	// poker.RandomSource seeded with the worker seed.
	NewSource func(seed int64) poker.CardSource
}

// Result is the outcome of a completed simulation run.
type Result struct {
	State
	Player1 [2]poker.Card
	Player2 [2]poker.Card
	// Categories counts the category of each player's best hand per trial.
	Categories [2]CategoryCounts
	Seed       int64
	Workers    int
	Elapsed    time.Duration
}

// Simulator runs Monte Carlo equity simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.NewSource == nil {
		config.NewSource = func(seed int64) poker.CardSource {
			return poker.NewRandomSource(randutil.New(seed))
		}
	}
	return &Simulator{config: config}
}

// partial is the trial-local tally of one worker.
type partial struct {
	state      State
	categories [2]CategoryCounts
}

// Run simulates heads-up trials between two sets of hole cards. Rates are
// only available once every trial has completed; a cancelled context aborts
// the run and returns the context error.
func (s *Simulator) Run(ctx context.Context, player1, player2 [2]poker.Card) (*Result, error) {
	if s.config.Trials <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTrials, s.config.Trials)
	}
	if err := validateHoles(player1, player2); err != nil {
		return nil, err
	}

	seed := randutil.Seed()
	if s.config.Seed != nil {
		seed = *s.config.Seed
	}
	workers := resolveWorkers(s.config.Workers, s.config.Trials)
	logger := s.config.Logger

	logger.Debug("Starting simulation",
		"player1", poker.FormatCards(player1[:]),
		"player2", poker.FormatCards(player2[:]),
		"trials", s.config.Trials,
		"workers", workers,
		"seed", seed)

	start := s.config.Clock.Now()

	partials := make([]partial, workers)
	g, gctx := errgroup.WithContext(ctx)
	perWorker := s.config.Trials / workers
	remainder := s.config.Trials % workers

	for w := 0; w < workers; w++ {
		trials := perWorker
		if w < remainder {
			trials++ // Distribute remainder trials
		}
		source := s.config.NewSource(randutil.Derive(seed, w))

		g.Go(func() error {
			p, err := runWorker(gctx, player1, player2, trials, source)
			if err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}
			partials[w] = p
			logger.Debug("Worker finished", "worker", w, "trials", trials)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("Simulation aborted", "error", err)
		return nil, err
	}

	result := &Result{
		Player1: player1,
		Player2: player2,
		Seed:    seed,
		Workers: workers,
	}
	for _, p := range partials {
		result.State.Merge(p.state)
		result.Categories[0].Merge(p.categories[0])
		result.Categories[1].Merge(p.categories[1])
	}
	result.Elapsed = s.config.Clock.Since(start)

	if result.Trials != s.config.Trials {
		return nil, fmt.Errorf("ran %d trials, expected %d", result.Trials, s.config.Trials)
	}

	logger.Info("Simulation complete",
		"trials", result.Trials,
		"player1", result.Player1WinRate(),
		"player2", result.Player2WinRate(),
		"ties", result.TieRate(),
		"elapsed", result.Elapsed)

	return result, nil
}

// runWorker plays trials using only worker-local state.
func runWorker(ctx context.Context, player1, player2 [2]poker.Card, trials int, source poker.CardSource) (partial, error) {
	var p partial
	holes := poker.NewCardSet(player1[0], player1[1], player2[0], player2[1])

	for i := 0; i < trials; i++ {
		if err := ctx.Err(); err != nil {
			return p, err
		}

		deal := Deal{Player1: player1, Player2: player2}
		excluded := holes
		for j := range deal.Community {
			card := source.DealRandomCard(excluded)
			deal.Community[j] = card
			excluded.Add(card)
		}

		outcome, err := PlayTrial(deal)
		if err != nil {
			return p, fmt.Errorf("trial %d: %w", i, err)
		}

		p.state.Record(outcome.Comparison)
		p.categories[0][outcome.Player1.Category]++
		p.categories[1][outcome.Player2.Category]++
	}

	return p, nil
}

// resolveWorkers picks the worker count for a run.
func resolveWorkers(requested, trials int) int {
	workers := requested
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers > maxWorkers {
			workers = maxWorkers
		}
	}
	if workers > trials {
		workers = trials
	}
	return workers
}

func validateHoles(player1, player2 [2]poker.Card) error {
	for i, hole := range [][2]poker.Card{player1, player2} {
		for _, card := range hole {
			if !card.Valid() {
				return fmt.Errorf("player %d: %w: %v", i+1, ErrInvalidCard, card)
			}
		}
		if hole[0] == hole[1] {
			return fmt.Errorf("player %d: %w: %s", i+1, ErrDuplicateCard, hole[0])
		}
	}

	// Both players holding the same two cards is allowed and always ties;
	// any other overlap is an impossible deal.
	same := poker.NewCardSet(player1[:]...) == poker.NewCardSet(player2[:]...)
	if !same {
		p1 := poker.NewCardSet(player1[:]...)
		for _, card := range player2 {
			if p1.Contains(card) {
				return fmt.Errorf("%w: %s held by both players", ErrDuplicateCard, card)
			}
		}
	}
	return nil
}

// Simulate parses two pairs of hole cards, runs trials and returns the
// formatted outcome percentages.
func Simulate(ctx context.Context, player1, player2 []string, trials int) (Rates, error) {
	p1, err := ParseHole(player1)
	if err != nil {
		return Rates{}, fmt.Errorf("player 1: %w", err)
	}
	p2, err := ParseHole(player2)
	if err != nil {
		return Rates{}, fmt.Errorf("player 2: %w", err)
	}

	result, err := New(Config{Trials: trials}).Run(ctx, p1, p2)
	if err != nil {
		return Rates{}, err
	}
	return result.Rates(), nil
}

// ParseHole parses exactly two hole cards in short form.
func ParseHole(cards []string) ([2]poker.Card, error) {
	var hole [2]poker.Card
	if len(cards) != 2 {
		return hole, fmt.Errorf("hole must contain exactly 2 cards, got %d", len(cards))
	}
	for i, text := range cards {
		card, err := poker.ParseCard(text)
		if err != nil {
			return hole, err
		}
		hole[i] = card
	}
	return hole, nil
}
