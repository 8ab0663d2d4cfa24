package poker

import (
	"errors"
	"fmt"
)

// ErrEmptyHandSet is returned when best-hand selection has no candidates.
var ErrEmptyHandSet = errors.New("no hands to select from")

// SelectBest returns the strongest hand and its evaluation. When two hands
// tie the earlier one is kept.
func SelectBest(hands []Hand) (Hand, Evaluation, error) {
	if len(hands) == 0 {
		return Hand{}, Evaluation{}, ErrEmptyHandSet
	}

	best := hands[0]
	bestEval := Evaluate(best)
	for _, hand := range hands[1:] {
		eval := Evaluate(hand)
		if Compare(eval, bestEval) > 0 {
			best, bestEval = hand, eval
		}
	}
	return best, bestEval, nil
}

// BestHand returns the strongest five-card hand that can be formed from cards.
func BestHand(cards []Card) (Hand, Evaluation, error) {
	if len(cards) < HandSize {
		return Hand{}, Evaluation{}, fmt.Errorf("need at least %d cards, got %d: %w", HandSize, len(cards), ErrEmptyHandSet)
	}
	return SelectBest(Hands(cards))
}
