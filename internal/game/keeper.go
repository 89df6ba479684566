// Package game orchestrates five-card draw rounds: dealing, discard/draw
// cycles and winner selection. The poker decisions themselves live in the
// analysis and rank packages; everything here is glue around them.
package game

import (
	"github.com/KelvinUbaechu/PokerProject/internal/analysis"
	"github.com/KelvinUbaechu/PokerProject/internal/deck"
)

// Keeper selects the cards worth keeping out of a hand. Everything a keeper
// does not return is a discard candidate.
type Keeper func(cards []deck.Card) []deck.Card

// Threshold is a minimum group-size requirement that is either a fixed
// number or computed from the hand at the call site.
type Threshold struct {
	fixed   int
	compute func(cards []deck.Card) int
}

// FixedThreshold returns a threshold that always resolves to n
func FixedThreshold(n int) Threshold {
	return Threshold{fixed: n}
}

// ComputedThreshold returns a threshold resolved against the hand
func ComputedThreshold(fn func(cards []deck.Card) int) Threshold {
	return Threshold{compute: fn}
}

func (t Threshold) resolve(cards []deck.Card) int {
	if t.compute != nil {
		return t.compute(cards)
	}
	return t.fixed
}

// SequenceTargets returns a keeper chasing a straight: it keeps one
// representative card for each face of the sequence that covers the most of
// the hand's faces.
func SequenceTargets(length int, invalidStarters []deck.Face) Keeper {
	invalid := make(map[deck.Face]bool, len(invalidStarters))
	for _, f := range invalidStarters {
		invalid[f] = true
	}

	return func(cards []deck.Card) []deck.Card {
		hand := analysis.NewHand(cards...)
		targets, ok := analysis.SequenceIncludingMostFaces(hand.Faces(), length, invalid)
		if !ok {
			return nil
		}
		return analysis.FirstCardsWithFaces(cards, targets)
	}
}

// FaceFrequencyTargets returns a keeper chasing pairs and better: it keeps
// every face group at least as large as the threshold, scanning groups from
// strongest to weakest.
func FaceFrequencyTargets(minFrequency Threshold) Keeper {
	return func(cards []deck.Card) []deck.Card {
		hand := analysis.NewHand(cards...)
		minSize := minFrequency.resolve(cards)

		var keeps []deck.Card
		for _, group := range analysis.GroupsBySizeThenValue(hand.GroupsByFace(), true) {
			if group.Size() < minSize {
				break
			}
			keeps = append(keeps, group.Cards...)
		}
		return keeps
	}
}

// SuitFrequencyTargets is FaceFrequencyTargets over suit groups
func SuitFrequencyTargets(minFrequency Threshold) Keeper {
	return func(cards []deck.Card) []deck.Card {
		hand := analysis.NewHand(cards...)
		minSize := minFrequency.resolve(cards)

		var keeps []deck.Card
		for _, group := range analysis.GroupsBySizeThenValue(hand.GroupsBySuit(), true) {
			if group.Size() < minSize {
				break
			}
			keeps = append(keeps, group.Cards...)
		}
		return keeps
	}
}

// MostFrequentFaceTargets keeps the cards of the single largest face group
func MostFrequentFaceTargets(cards []deck.Card) []deck.Card {
	hand := analysis.NewHand(cards...)
	groups := analysis.GroupsBySizeThenValue(hand.GroupsByFace(), true)
	if len(groups) == 0 {
		return nil
	}
	return groups[0].Cards
}

// MostFrequentSuitTargets keeps the cards of the single largest suit group
func MostFrequentSuitTargets(cards []deck.Card) []deck.Card {
	hand := analysis.NewHand(cards...)
	groups := analysis.GroupsBySizeThenValue(hand.GroupsBySuit(), true)
	if len(groups) == 0 {
		return nil
	}
	return groups[0].Cards
}
