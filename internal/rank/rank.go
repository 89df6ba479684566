// Package rank classifies five-card hands into poker ranks and orders hands
// of equal rank. Rank definitions are data: each rank carries a set of
// declarative validators evaluated by a single interpreter, so custom rank
// sets can be built and tested in isolation.
package rank

import (
	"fmt"

	"github.com/KelvinUbaechu/PokerProject/internal/analysis"
	"github.com/KelvinUbaechu/PokerProject/internal/deck"
)

type validatorKind int

const (
	kindLength validatorKind = iota
	kindFaceFrequency
	kindSuitFrequency
	kindSequence
	kindContainsFaces
)

// Validator is one declarative requirement a candidate hand must satisfy.
// Build validators with LengthIs, FaceFrequency, SuitFrequency, Sequence and
// ContainsFaces; a Rank holds the conjunction of its validators.
type Validator struct {
	kind    validatorKind
	length  int
	freq    map[int]int
	invalid map[deck.Face]bool
	faces   []deck.Face
}

// LengthIs requires the hand to hold exactly n cards
func LengthIs(n int) Validator {
	return Validator{kind: kindLength, length: n}
}

// FaceFrequency requires, for each group-size key, exactly that many face
// groups of that size. {3:1, 2:1} is one triple and one pair.
func FaceFrequency(required map[int]int) Validator {
	return Validator{kind: kindFaceFrequency, freq: required}
}

// SuitFrequency is FaceFrequency applied to suit groups. {5:1} is a flush.
func SuitFrequency(required map[int]int) Validator {
	return Validator{kind: kindSuitFrequency, freq: required}
}

// Sequence requires the hand's faces to form an unbroken run of consecutive
// faces of the hand's length, under the most-frequent-starter rule. Starters
// in the invalid set are never considered.
func Sequence(invalidStarters ...deck.Face) Validator {
	invalid := make(map[deck.Face]bool, len(invalidStarters))
	for _, f := range invalidStarters {
		invalid[f] = true
	}
	return Validator{kind: kindSequence, invalid: invalid}
}

// ContainsFaces requires every listed face to be present in the hand
func ContainsFaces(faces ...deck.Face) Validator {
	return Validator{kind: kindContainsFaces, faces: faces}
}

// validate interprets the validator against a hand
func (v Validator) validate(hand analysis.Hand) bool {
	switch v.kind {
	case kindLength:
		return len(hand) == v.length

	case kindFaceFrequency:
		for size, want := range v.freq {
			if len(hand.FacesWithFrequency(size)) != want {
				return false
			}
		}
		return true

	case kindSuitFrequency:
		for size, want := range v.freq {
			if len(hand.SuitsWithFrequency(size)) != want {
				return false
			}
		}
		return true

	case kindSequence:
		faces := hand.Faces()
		starter, ok := analysis.MostFrequentStarter(faces, len(hand), v.invalid)
		if !ok {
			return false
		}
		present := make(map[deck.Face]bool, len(faces))
		for _, f := range faces {
			present[f] = true
		}
		for range hand {
			if !present[starter] {
				return false
			}
			starter = deck.NextFace(starter)
		}
		return true

	case kindContainsFaces:
		present := make(map[deck.Face]bool, len(hand))
		for _, f := range hand.Faces() {
			present[f] = true
		}
		for _, f := range v.faces {
			if !present[f] {
				return false
			}
		}
		return true

	default:
		return false
	}
}

// Rank is a named poker rank with a strict total-order value. The catalog in
// catalog.go defines the ten standard ranks; value 0 is reserved for the
// null rank.
type Rank struct {
	Name       string
	Value      int
	Validators []Validator
}

// Matches reports whether the hand satisfies every validator of the rank
func (r Rank) Matches(hand analysis.Hand) bool {
	for _, v := range r.Validators {
		if !v.validate(hand) {
			return false
		}
	}
	return true
}

// Equal reports whether two ranks have the same value
func (r Rank) Equal(other Rank) bool {
	return r.Value == other.Value
}

// Beats reports whether r outranks other
func (r Rank) Beats(other Rank) bool {
	return r.Value > other.Value
}

// IsNull reports whether the rank is the null rank
func (r Rank) IsNull() bool {
	return r.Value == 0
}

func (r Rank) String() string {
	return fmt.Sprintf("%s (%d)", r.Name, r.Value)
}
