package equity

import (
	"fmt"
	"math"

	"github.com/lox/holdem-equity/poker"
)

// State holds the outcome counters of one simulation run.
type State struct {
	Player1Wins int
	Player2Wins int
	Ties        int
	Trials      int
}

// Record tallies one trial given the result of comparing player 1's best
// hand against player 2's.
func (s *State) Record(comparison int) {
	switch {
	case comparison > 0:
		s.Player1Wins++
	case comparison < 0:
		s.Player2Wins++
	default:
		s.Ties++
	}
	s.Trials++
}

// Merge adds the counters of other into s.
func (s *State) Merge(other State) {
	s.Player1Wins += other.Player1Wins
	s.Player2Wins += other.Player2Wins
	s.Ties += other.Ties
	s.Trials += other.Trials
}

// Player1WinRate returns the fraction of trials won by player 1 (0.0 to 1.0)
func (s State) Player1WinRate() float64 {
	return s.rate(s.Player1Wins)
}

// Player2WinRate returns the fraction of trials won by player 2 (0.0 to 1.0)
func (s State) Player2WinRate() float64 {
	return s.rate(s.Player2Wins)
}

// TieRate returns the fraction of trials that tied (0.0 to 1.0)
func (s State) TieRate() float64 {
	return s.rate(s.Ties)
}

// Player1Equity returns player 1's share of the pot: wins count 1.0, ties 0.5.
func (s State) Player1Equity() float64 {
	if s.Trials == 0 {
		return 0.0
	}
	return (float64(s.Player1Wins) + float64(s.Ties)*0.5) / float64(s.Trials)
}

// ConfidenceInterval returns the 95% confidence interval for player 1's equity
func (s State) ConfidenceInterval() (lower, upper float64) {
	if s.Trials == 0 {
		return 0.0, 0.0
	}

	equity := s.Player1Equity()
	se := math.Sqrt((equity * (1.0 - equity)) / float64(s.Trials))
	margin := 1.96 * se

	return math.Max(0.0, equity-margin), math.Min(1.0, equity+margin)
}

// Rates returns the three outcome rates as formatted percentages.
func (s State) Rates() Rates {
	return FormatRates(s.Player1Wins, s.Player2Wins, s.Ties, s.Trials)
}

func (s State) rate(n int) float64 {
	if s.Trials == 0 {
		return 0.0
	}
	return float64(n) / float64(s.Trials)
}

// Rates holds outcome percentages formatted with one fractional digit.
type Rates struct {
	Player1Win string `json:"player1WinRate"`
	Player2Win string `json:"player2WinRate"`
	Tie        string `json:"tieRate"`
}

// FormatRates converts outcome counts into percentages with one fractional
// digit. Each rate is rounded to the nearest tenth of a percent on its own,
// halves rounding up, so when the counts add up to trials the three values
// sum to within 0.1 of 100.0.
func FormatRates(player1Wins, player2Wins, ties, trials int) Rates {
	if trials <= 0 {
		return Rates{Player1Win: "0.0", Player2Win: "0.0", Tie: "0.0"}
	}
	return Rates{
		Player1Win: formatTenths(roundTenths(player1Wins, trials)),
		Player2Win: formatTenths(roundTenths(player2Wins, trials)),
		Tie:        formatTenths(roundTenths(ties, trials)),
	}
}

// roundTenths returns count/trials in tenths of a percent, rounded half up.
func roundTenths(count, trials int) int {
	return (count*2000 + trials) / (2 * trials)
}

func formatTenths(n int) string {
	return fmt.Sprintf("%d.%d", n/10, n%10)
}

// CategoryCounts counts best-hand categories, indexed by poker.Category.
type CategoryCounts [poker.HighCard + 1]int

// Total returns the number of hands counted.
func (c CategoryCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Merge adds the counts of other into c.
func (c *CategoryCounts) Merge(other CategoryCounts) {
	for i, n := range other {
		c[i] += n
	}
}
