package rank

import (
	"github.com/KelvinUbaechu/PokerProject/internal/analysis"
	"github.com/KelvinUbaechu/PokerProject/internal/deck"
)

// RequiredHandSize is the number of cards a hand needs for poker semantics
const RequiredHandSize = 5

// InvalidStraightStarters are the faces a five-card straight cannot start
// on: a run starting at Jack, Queen or King would wrap past the Ace.
func InvalidStraightStarters() []deck.Face {
	return []deck.Face{deck.Jack, deck.Queen, deck.King}
}

// RoyalFaces are the faces a royal flush must hold
func RoyalFaces() []deck.Face {
	return []deck.Face{deck.Ten, deck.Jack, deck.Queen, deck.King, deck.Ace}
}

// NullRank is returned when a hand matches none of the candidate ranks.
// With the default catalog this never happens for five-card hands, since
// HighCard accepts any of them.
var NullRank = Rank{Name: "None", Value: 0}

// The ten standard ranks, ordered by value. The catalog is built once at
// init and read-only afterwards, so concurrent classification needs no
// synchronization.
var (
	HighCard = Rank{
		Name:  "High Card",
		Value: 1,
		Validators: []Validator{
			LengthIs(RequiredHandSize),
		},
	}

	Pair = Rank{
		Name:  "Pair",
		Value: 2,
		Validators: []Validator{
			LengthIs(RequiredHandSize),
			FaceFrequency(map[int]int{2: 1}),
		},
	}

	TwoPair = Rank{
		Name:  "Two Pair",
		Value: 3,
		Validators: []Validator{
			LengthIs(RequiredHandSize),
			FaceFrequency(map[int]int{2: 2}),
		},
	}

	ThreeOfAKind = Rank{
		Name:  "Three of a Kind",
		Value: 4,
		Validators: []Validator{
			LengthIs(RequiredHandSize),
			FaceFrequency(map[int]int{3: 1}),
		},
	}

	Straight = Rank{
		Name:  "Straight",
		Value: 5,
		Validators: []Validator{
			LengthIs(RequiredHandSize),
			Sequence(InvalidStraightStarters()...),
		},
	}

	Flush = Rank{
		Name:  "Flush",
		Value: 6,
		Validators: []Validator{
			LengthIs(RequiredHandSize),
			SuitFrequency(map[int]int{RequiredHandSize: 1}),
		},
	}

	FullHouse = Rank{
		Name:  "Full House",
		Value: 7,
		Validators: []Validator{
			LengthIs(RequiredHandSize),
			FaceFrequency(map[int]int{3: 1, 2: 1}),
		},
	}

	FourOfAKind = Rank{
		Name:  "Four of a Kind",
		Value: 8,
		Validators: []Validator{
			LengthIs(RequiredHandSize),
			FaceFrequency(map[int]int{4: 1}),
		},
	}

	StraightFlush = Rank{
		Name:  "Straight Flush",
		Value: 9,
		Validators: []Validator{
			LengthIs(RequiredHandSize),
			Sequence(InvalidStraightStarters()...),
			SuitFrequency(map[int]int{RequiredHandSize: 1}),
		},
	}

	RoyalFlush = Rank{
		Name:  "Royal Flush",
		Value: 10,
		Validators: []Validator{
			LengthIs(RequiredHandSize),
			Sequence(InvalidStraightStarters()...),
			SuitFrequency(map[int]int{RequiredHandSize: 1}),
			ContainsFaces(RoyalFaces()...),
		},
	}
)

// DefaultRanks returns the standard catalog in descending value order, the
// order Classify expects. Higher ranks come first because a more specific
// rank's validators can be a strict superset of a less specific one's: a
// straight flush also passes the flush and straight validators.
func DefaultRanks() []Rank {
	return []Rank{
		RoyalFlush,
		StraightFlush,
		FourOfAKind,
		FullHouse,
		Flush,
		Straight,
		ThreeOfAKind,
		TwoPair,
		Pair,
		HighCard,
	}
}

// Classify returns the first rank the hand satisfies, testing candidates in
// the order given. With no explicit candidates the default catalog is used.
// NullRank is returned when nothing matches.
func Classify(hand analysis.Hand, ranks ...Rank) Rank {
	if len(ranks) == 0 {
		ranks = DefaultRanks()
	}
	for _, r := range ranks {
		if r.Matches(hand) {
			return r
		}
	}
	return NullRank
}
