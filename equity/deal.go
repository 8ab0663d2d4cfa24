package equity

import (
	"fmt"

	"github.com/lox/holdem-equity/poker"
)

// Deal is the set of cards for one trial.
type Deal struct {
	Player1   [2]poker.Card
	Player2   [2]poker.Card
	Community [5]poker.Card
}

// Pools returns each player's seven available cards: hole cards first,
// then the community cards.
func (d Deal) Pools() (player1, player2 [7]poker.Card) {
	copy(player1[:2], d.Player1[:])
	copy(player1[2:], d.Community[:])
	copy(player2[:2], d.Player2[:])
	copy(player2[2:], d.Community[:])
	return player1, player2
}

// Outcome is the showdown result of one trial.
type Outcome struct {
	Player1Hand poker.Hand
	Player2Hand poker.Hand
	Player1     poker.Evaluation
	Player2     poker.Evaluation
	// Comparison is positive when player 1 wins, negative when player 2
	// wins and zero on a tie.
	Comparison int
}

// PlayTrial finds both players' best hands for a deal and compares them.
func PlayTrial(deal Deal) (Outcome, error) {
	pool1, pool2 := deal.Pools()

	hand1, eval1, err := poker.BestHand(pool1[:])
	if err != nil {
		return Outcome{}, fmt.Errorf("player 1 best hand: %w", err)
	}
	hand2, eval2, err := poker.BestHand(pool2[:])
	if err != nil {
		return Outcome{}, fmt.Errorf("player 2 best hand: %w", err)
	}

	return Outcome{
		Player1Hand: hand1,
		Player2Hand: hand2,
		Player1:     eval1,
		Player2:     eval2,
		Comparison:  poker.Compare(eval1, eval2),
	}, nil
}
