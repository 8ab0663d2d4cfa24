package poker

import (
	"math/rand/v2"
)

// CardSource deals cards uniformly at random from the deck.
type CardSource interface {
	// DealRandomCard returns a card that is not a member of excluding.
	DealRandomCard(excluding CardSet) Card
}

// resampleLimit is the excluded-set size below which rejection sampling
// is used. Above it the eligible cards are enumerated and sampled directly.
const resampleLimit = 26

// RandomSource is a CardSource backed by an explicit RNG. It is not safe
// for concurrent use; give each worker its own source.
type RandomSource struct {
	rng  *rand.Rand
	deck []Card
}

// NewRandomSource creates a card source drawing from rng.
func NewRandomSource(rng *rand.Rand) *RandomSource {
	return &RandomSource{rng: rng, deck: Deck()}
}

// DealRandomCard draws uniformly from the 52-card deck minus excluding.
// It panics if every card is excluded.
func (s *RandomSource) DealRandomCard(excluding CardSet) Card {
	n := excluding.Len()
	if n >= len(s.deck) {
		panic("poker: no cards left to deal")
	}

	if n < resampleLimit {
		for {
			card := s.deck[s.rng.IntN(len(s.deck))]
			if !excluding.Contains(card) {
				return card
			}
		}
	}

	pick := s.rng.IntN(len(s.deck) - n)
	for _, card := range s.deck {
		if excluding.Contains(card) {
			continue
		}
		if pick == 0 {
			return card
		}
		pick--
	}
	panic("unreachable")
}

// GenerateRandomCard returns the short form of a uniformly random card.
func GenerateRandomCard(rng *rand.Rand) string {
	suit := Suit(rng.IntN(4))
	rank := Two + Rank(rng.IntN(13))
	return NewCard(rank, suit).String()
}
