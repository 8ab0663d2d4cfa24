package poker

import "math/bits"

// CardSet is a set of cards stored as a 52-bit bitset.
// Each card maps to bit suit*13 + (rank-2).
type CardSet uint64

// NewCardSet creates a CardSet from a slice of cards
func NewCardSet(cards ...Card) CardSet {
	var cs CardSet
	for _, card := range cards {
		cs.Add(card)
	}
	return cs
}

// Add adds a card to the set
func (cs *CardSet) Add(card Card) {
	*cs |= 1 << card.index()
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(card Card) bool {
	return cs&(1<<card.index()) != 0
}

// Len returns the number of cards in the set.
func (cs CardSet) Len() int {
	return bits.OnesCount64(uint64(cs))
}

// Cards returns the members of the set in deck order.
func (cs CardSet) Cards() []Card {
	cards := make([]Card, 0, cs.Len())
	for _, card := range Deck() {
		if cs.Contains(card) {
			cards = append(cards, card)
		}
	}
	return cards
}
