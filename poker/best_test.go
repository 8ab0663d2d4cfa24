package poker

import (
	"errors"
	"math/rand/v2"
	"testing"

	refpoker "github.com/paulhankin/poker"
)

func TestSelectBestEmpty(t *testing.T) {
	t.Parallel()
	if _, _, err := SelectBest(nil); !errors.Is(err, ErrEmptyHandSet) {
		t.Errorf("SelectBest(nil) error = %v, want ErrEmptyHandSet", err)
	}
	if _, _, err := BestHand(MustParseCards("AhKd")); !errors.Is(err, ErrEmptyHandSet) {
		t.Errorf("BestHand with two cards error = %v, want ErrEmptyHandSet", err)
	}
}

func TestSelectBestKeepsEarlierOnTie(t *testing.T) {
	t.Parallel()
	first := hand("AhKdQcJs9h")
	second := hand("AsKcQdJh9c")
	weaker := hand("AcKhQsJd8c")

	best, eval, err := SelectBest([]Hand{weaker, first, second})
	if err != nil {
		t.Fatalf("SelectBest returned error: %v", err)
	}
	if best != first {
		t.Errorf("SelectBest = %s, want earlier tied hand %s", best, first)
	}
	if eval != Evaluate(first) {
		t.Errorf("returned evaluation does not match the selected hand")
	}
}

func TestBestHandFromSeven(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		cards    string
		category Category
	}{
		{"flush over straight", "9h8h7h6c5h2hKd", Flush},
		{"full house from two trips", "AhAdAc2h2d2cKs", FullHouse},
		{"wheel", "Ah2c3d4s5hKcKd", Straight},
		{"board plays", "2c3dAhKdQcJsTh", Straight},
		{"quads", "9c9d9h9sAhKdQc", FourOfAKind},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, eval, err := BestHand(MustParseCards(tc.cards))
			if err != nil {
				t.Fatalf("BestHand returned error: %v", err)
			}
			if eval.Category != tc.category {
				t.Errorf("BestHand(%s) category = %s, want %s", tc.cards, eval.Category, tc.category)
			}
		})
	}
}

func TestBestHandTiebreakDetails(t *testing.T) {
	t.Parallel()

	// Two trips: the higher trips make the full house with the lower as the pair.
	_, eval, err := BestHand(MustParseCards("AhAdAc2h2d2cKs"))
	if err != nil {
		t.Fatal(err)
	}
	if want := [HandSize]Rank{Ace, Ace, Ace, Two, Two}; eval.Tiebreak != want {
		t.Errorf("tiebreak = %v, want %v", eval.Tiebreak, want)
	}

	// Quads pick the best kicker.
	_, eval, err = BestHand(MustParseCards("9c9d9h9sAhKdQc"))
	if err != nil {
		t.Fatal(err)
	}
	if want := [HandSize]Rank{Nine, Nine, Nine, Nine, Ace}; eval.Tiebreak != want {
		t.Errorf("tiebreak = %v, want %v", eval.Tiebreak, want)
	}
}

func TestSelectBestDominatesAllCombinations(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(21, 42))
	deck := Deck()

	for i := 0; i < 300; i++ {
		rng.Shuffle(len(deck), func(a, b int) { deck[a], deck[b] = deck[b], deck[a] })
		hands := Hands(deck[:7])

		_, bestEval, err := SelectBest(hands)
		if err != nil {
			t.Fatal(err)
		}
		for _, h := range hands {
			if Compare(bestEval, Evaluate(h)) < 0 {
				t.Fatalf("%s beats selected best %v", h, bestEval)
			}
		}
	}
}

// TestAgreesWithReferenceEvaluator checks seven-card comparisons against an
// independent evaluator.
func TestAgreesWithReferenceEvaluator(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(8, 13))
	deck := Deck()

	for i := 0; i < 2000; i++ {
		rng.Shuffle(len(deck), func(a, b int) { deck[a], deck[b] = deck[b], deck[a] })
		board := deck[:5]
		pool1 := append(append([]Card(nil), deck[5:7]...), board...)
		pool2 := append(append([]Card(nil), deck[7:9]...), board...)

		_, eval1, err := BestHand(pool1)
		if err != nil {
			t.Fatal(err)
		}
		_, eval2, err := BestHand(pool2)
		if err != nil {
			t.Fatal(err)
		}

		got := sign(Compare(eval1, eval2))
		want := sign(int(referenceEval(t, pool1)) - int(referenceEval(t, pool2)))
		if got != want {
			t.Fatalf("%s (%v) vs %s (%v): got %d, reference %d",
				FormatCards(pool1), eval1, FormatCards(pool2), eval2, got, want)
		}
	}
}

func referenceEval(t *testing.T, cards []Card) int16 {
	t.Helper()
	var ref [7]refpoker.Card
	for i, c := range cards {
		rank := int(c.Rank)
		if c.Rank == Ace {
			rank = 1
		}
		rc, err := refpoker.MakeCard(refpoker.Suit(c.Suit), refpoker.Rank(rank))
		if err != nil {
			t.Fatalf("reference card for %s: %v", c, err)
		}
		ref[i] = rc
	}
	return refpoker.Eval7(&ref)
}
