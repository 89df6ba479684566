// Package analysis derives face/suit groupings and straight candidates from
// collections of cards. It underpins both rank classification and the
// tie-break logic in the rank package, and the discard heuristics in game.
package analysis

import (
	"slices"

	"github.com/KelvinUbaechu/PokerProject/internal/deck"
)

// Hand is an ordered collection of cards. Order reflects dealing history,
// not strength, and duplicates are structurally permitted even though a
// standard deck never produces them.
type Hand []deck.Card

// NewHand creates a hand from the given cards
func NewHand(cards ...deck.Card) Hand {
	return slices.Clone(cards)
}

// Add appends cards to the hand
func (h *Hand) Add(cards ...deck.Card) {
	*h = append(*h, cards...)
}

// Remove removes the first occurrence of card from the hand.
// It returns false if the card was not present.
func (h *Hand) Remove(card deck.Card) bool {
	for i, c := range *h {
		if c == card {
			*h = slices.Delete(*h, i, i+1)
			return true
		}
	}
	return false
}

// Clear empties the hand
func (h *Hand) Clear() {
	*h = (*h)[:0]
}

// Update replaces the hand's contents with the given cards
func (h *Hand) Update(cards []deck.Card) {
	h.Clear()
	h.Add(cards...)
}

// Contains reports whether the hand holds the exact card
func (h Hand) Contains(card deck.Card) bool {
	return slices.Contains(h, card)
}

// Faces returns the faces of the cards, in hand order
func (h Hand) Faces() []deck.Face {
	faces := make([]deck.Face, len(h))
	for i, c := range h {
		faces[i] = c.Face
	}
	return faces
}

// Suits returns the suits of the cards, in hand order
func (h Hand) Suits() []deck.Suit {
	suits := make([]deck.Suit, len(h))
	for i, c := range h {
		suits[i] = c.Suit
	}
	return suits
}

// CardsWithFace returns the cards sharing the given face, in hand order
func (h Hand) CardsWithFace(face deck.Face) []deck.Card {
	var cards []deck.Card
	for _, c := range h {
		if c.Face == face {
			cards = append(cards, c)
		}
	}
	return cards
}

// CardsWithSuit returns the cards sharing the given suit, in hand order
func (h Hand) CardsWithSuit(suit deck.Suit) []deck.Card {
	var cards []deck.Card
	for _, c := range h {
		if c.Suit == suit {
			cards = append(cards, c)
		}
	}
	return cards
}

// GroupsByFace partitions the hand into face groups. Cards keep their hand
// order within each group.
func (h Hand) GroupsByFace() map[deck.Face][]deck.Card {
	groups := make(map[deck.Face][]deck.Card)
	for _, c := range h {
		groups[c.Face] = append(groups[c.Face], c)
	}
	return groups
}

// GroupsBySuit partitions the hand into suit groups. Cards keep their hand
// order within each group.
func (h Hand) GroupsBySuit() map[deck.Suit][]deck.Card {
	groups := make(map[deck.Suit][]deck.Card)
	for _, c := range h {
		groups[c.Suit] = append(groups[c.Suit], c)
	}
	return groups
}

// FacesWithFrequency returns the faces whose group size equals frequency,
// ordered by ascending face value for determinism.
func (h Hand) FacesWithFrequency(frequency int) []deck.Face {
	var faces []deck.Face
	for face, group := range h.GroupsByFace() {
		if len(group) == frequency {
			faces = append(faces, face)
		}
	}
	slices.Sort(faces)
	return faces
}

// SuitsWithFrequency returns the suits whose group size equals frequency,
// ordered by suit for determinism.
func (h Hand) SuitsWithFrequency(frequency int) []deck.Suit {
	var suits []deck.Suit
	for suit, group := range h.GroupsBySuit() {
		if len(group) == frequency {
			suits = append(suits, suit)
		}
	}
	slices.Sort(suits)
	return suits
}

// MaxFaceFrequency returns the size of the largest face group, 0 for an
// empty hand.
func (h Hand) MaxFaceFrequency() int {
	max := 0
	for _, group := range h.GroupsByFace() {
		if len(group) > max {
			max = len(group)
		}
	}
	return max
}

// MinFaceFrequency returns the size of the smallest face group, 0 for an
// empty hand.
func (h Hand) MinFaceFrequency() int {
	min := 0
	for _, group := range h.GroupsByFace() {
		if min == 0 || len(group) < min {
			min = len(group)
		}
	}
	return min
}

// MaxSuitFrequency returns the size of the largest suit group, 0 for an
// empty hand.
func (h Hand) MaxSuitFrequency() int {
	max := 0
	for _, group := range h.GroupsBySuit() {
		if len(group) > max {
			max = len(group)
		}
	}
	return max
}

// MinSuitFrequency returns the size of the smallest suit group, 0 for an
// empty hand.
func (h Hand) MinSuitFrequency() int {
	min := 0
	for _, group := range h.GroupsBySuit() {
		if min == 0 || len(group) < min {
			min = len(group)
		}
	}
	return min
}

// SortedByValue returns the hand's cards sorted by face value. Sorting is
// stable so cards of equal value keep their hand order.
func (h Hand) SortedByValue(descending bool) []deck.Card {
	cards := slices.Clone([]deck.Card(h))
	slices.SortStableFunc(cards, func(a, b deck.Card) int {
		if descending {
			return b.Value() - a.Value()
		}
		return a.Value() - b.Value()
	})
	return cards
}
