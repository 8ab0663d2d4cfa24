package report

import (
	"encoding/json"
	"fmt"

	"github.com/lox/holdem-equity/equity"
	"github.com/lox/holdem-equity/internal/fileutil"
	"github.com/lox/holdem-equity/poker"
)

// Summary is the machine-readable form of a simulation result.
type Summary struct {
	Player1    string            `json:"player1"`
	Player2    string            `json:"player2"`
	Trials     int               `json:"trials"`
	Rates      equity.Rates      `json:"rates"`
	Equity     float64           `json:"player1_equity"`
	Interval   [2]float64        `json:"player1_equity_ci95"`
	Categories map[string][2]int `json:"categories,omitempty"`
	Seed       int64             `json:"seed"`
	Workers    int               `json:"workers"`
	ElapsedMS  int64             `json:"elapsed_ms"`
}

// NewSummary flattens a result. Categories no hand made are left out.
func NewSummary(result *equity.Result) Summary {
	lower, upper := result.ConfidenceInterval()
	summary := Summary{
		Player1:   poker.FormatCards(result.Player1[:]),
		Player2:   poker.FormatCards(result.Player2[:]),
		Trials:    result.Trials,
		Rates:     result.Rates(),
		Equity:    result.Player1Equity(),
		Interval:  [2]float64{lower, upper},
		Seed:      result.Seed,
		Workers:   result.Workers,
		ElapsedMS: result.Elapsed.Milliseconds(),
	}
	for _, category := range poker.Categories {
		counts := [2]int{result.Categories[0][category], result.Categories[1][category]}
		if counts == [2]int{} {
			continue
		}
		if summary.Categories == nil {
			summary.Categories = make(map[string][2]int)
		}
		summary.Categories[category.String()] = counts
	}
	return summary
}

// WriteJSON writes the result summary to filename, replacing it atomically.
func WriteJSON(filename string, result *equity.Result) error {
	data, err := json.MarshalIndent(NewSummary(result), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	data = append(data, '\n')
	return fileutil.WriteFileAtomic(filename, data, 0o644)
}
