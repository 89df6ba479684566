package game

import (
	"slices"

	"github.com/KelvinUbaechu/PokerProject/internal/analysis"
	"github.com/KelvinUbaechu/PokerProject/internal/deck"
	"github.com/KelvinUbaechu/PokerProject/internal/rank"
)

// Draw rules for a standard round
const (
	MaxDiscards        = 3
	MinFrequencyToKeep = 2
)

// Discarder pairs a keeper with the round's discard limit
type Discarder struct {
	MaxDiscards int
	Keep        Keeper
}

// TargetCards returns the keeper's picks with the hand pre-sorted strongest
// first, so keepers that truncate see the best cards first.
func (d Discarder) TargetCards(cards []deck.Card) []deck.Card {
	sorted := analysis.NewHand(cards...).SortedByValue(true)
	return d.Keep(sorted)
}

// IrrelevantCards returns the cards the keeper passed over, in hand order
func (d Discarder) IrrelevantCards(cards []deck.Card) []deck.Card {
	keeps := d.Keep(cards)
	var irrelevant []deck.Card
	for _, c := range cards {
		if !slices.Contains(keeps, c) {
			irrelevant = append(irrelevant, c)
		}
	}
	return irrelevant
}

// Discards returns up to MaxDiscards of the cards not worth keeping
func (d Discarder) Discards(cards []deck.Card) []deck.Card {
	irrelevant := d.IrrelevantCards(cards)
	if len(irrelevant) > d.MaxDiscards {
		irrelevant = irrelevant[:d.MaxDiscards]
	}
	return irrelevant
}

// NewFrequencyDiscarder chases pairs and better
func NewFrequencyDiscarder() Discarder {
	return Discarder{
		MaxDiscards: MaxDiscards,
		Keep:        FaceFrequencyTargets(FixedThreshold(MinFrequencyToKeep)),
	}
}

// NewFlushDiscarder chases the dominant suit
func NewFlushDiscarder() Discarder {
	return Discarder{
		MaxDiscards: MaxDiscards,
		Keep:        MostFrequentSuitTargets,
	}
}

// NewStraightDiscarder chases the best straight draw
func NewStraightDiscarder() Discarder {
	return Discarder{
		MaxDiscards: MaxDiscards,
		Keep:        SequenceTargets(rank.RequiredHandSize, rank.InvalidStraightStarters()),
	}
}
