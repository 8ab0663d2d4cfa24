package poker

import (
	"fmt"
	"sort"
	"strings"
)

// HandSize is the number of cards in an evaluated hand.
const HandSize = 5

// Hand is an unordered set of five distinct cards.
type Hand [HandSize]Card

// String returns the hand as concatenated short card forms.
func (h Hand) String() string {
	return FormatCards(h[:])
}

// Category is the class of a poker hand. Lower values are stronger.
type Category uint8

const (
	StraightFlush Category = iota + 1
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	OnePair
	HighCard
)

// Categories lists every category from strongest to weakest.
var Categories = []Category{
	StraightFlush, FourOfAKind, FullHouse, Flush, Straight,
	ThreeOfAKind, TwoPair, OnePair, HighCard,
}

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case StraightFlush:
		return "Straight Flush"
	case FourOfAKind:
		return "Four of a Kind"
	case FullHouse:
		return "Full House"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case TwoPair:
		return "Two Pair"
	case OnePair:
		return "One Pair"
	case HighCard:
		return "High Card"
	default:
		return "Unknown"
	}
}

// Evaluation is the comparable strength of a five-card hand.
//
// Tiebreak holds the five rank values ordered by descending occurrence count
// and then by descending rank, so two evaluations of the same category
// compare lexicographically. In a wheel (A-2-3-4-5) the ace plays low and
// the key is 5,4,3,2,1.
type Evaluation struct {
	Category Category
	Tiebreak [HandSize]Rank
}

// String returns a description such as "Two Pair (A A 2 2 3)".
func (e Evaluation) String() string {
	parts := make([]string, len(e.Tiebreak))
	for i, r := range e.Tiebreak {
		parts[i] = r.String()
	}
	return fmt.Sprintf("%s (%s)", e.Category, strings.Join(parts, " "))
}

// Evaluate scores a five-card hand.
func Evaluate(hand Hand) Evaluation {
	var counts [Ace + 1]int
	flush := true
	for i, card := range hand {
		counts[card.Rank]++
		if i > 0 && card.Suit != hand[0].Suit {
			flush = false
		}
	}

	var key [HandSize]Rank
	for i, card := range hand {
		key[i] = card.Rank
	}
	sort.Slice(key[:], func(i, j int) bool {
		ci, cj := counts[key[i]], counts[key[j]]
		if ci != cj {
			return ci > cj
		}
		return key[i] > key[j]
	})

	var quads, trips, pairs int
	for rank := Two; rank <= Ace; rank++ {
		switch counts[rank] {
		case 4:
			quads++
		case 3:
			trips++
		case 2:
			pairs++
		}
	}

	straight := false
	if quads == 0 && trips == 0 && pairs == 0 {
		switch {
		case key[0]-key[4] == 4:
			straight = true
		case key == [HandSize]Rank{Ace, Five, Four, Three, Two}:
			straight = true
			key = [HandSize]Rank{Five, Four, Three, Two, aceLow}
		}
	}

	var category Category
	switch {
	case flush && straight:
		category = StraightFlush
	case quads > 0:
		category = FourOfAKind
	case trips > 0 && pairs > 0:
		category = FullHouse
	case flush:
		category = Flush
	case straight:
		category = Straight
	case trips > 0:
		category = ThreeOfAKind
	case pairs >= 2:
		category = TwoPair
	case pairs == 1:
		category = OnePair
	default:
		category = HighCard
	}

	return Evaluation{Category: category, Tiebreak: key}
}

// Compare compares two evaluations and returns:
// a positive number if a is stronger than b,
// a negative number if b is stronger than a,
// and 0 if they tie exactly.
func Compare(a, b Evaluation) int {
	if a.Category != b.Category {
		if a.Category < b.Category {
			return 1
		}
		return -1
	}
	for i := range a.Tiebreak {
		if a.Tiebreak[i] > b.Tiebreak[i] {
			return 1
		}
		if a.Tiebreak[i] < b.Tiebreak[i] {
			return -1
		}
	}
	return 0
}

// Beats reports whether e is strictly stronger than other.
func (e Evaluation) Beats(other Evaluation) bool {
	return Compare(e, other) > 0
}
