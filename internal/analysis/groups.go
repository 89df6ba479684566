package analysis

import (
	"slices"

	"github.com/KelvinUbaechu/PokerProject/internal/deck"
)

// Group pairs a grouping key (a face or a suit) with the cards sharing it.
type Group[K ~int] struct {
	Key   K
	Cards []deck.Card
}

// Size returns the number of cards in the group
func (g Group[K]) Size() int {
	return len(g.Cards)
}

// highValue returns the greatest card value in the group, 0 when empty
func (g Group[K]) highValue() int {
	high := 0
	for _, c := range g.Cards {
		if c.Value() > high {
			high = c.Value()
		}
	}
	return high
}

// GroupsBySizeThenValue flattens a grouping map into (key, cards) pairs
// ordered primarily by group size, secondarily by the greatest card value
// in the group. The descending form is the canonical tie-break ordering for
// face-frequency ranks: ties in size break toward the higher face. A final
// key on the grouping key itself keeps the order deterministic for suit
// groups, where size and high value can coincide.
func GroupsBySizeThenValue[K ~int](groups map[K][]deck.Card, descending bool) []Group[K] {
	items := make([]Group[K], 0, len(groups))
	for key, cards := range groups {
		items = append(items, Group[K]{Key: key, Cards: cards})
	}

	slices.SortFunc(items, func(a, b Group[K]) int {
		cmp := a.Size() - b.Size()
		if cmp == 0 {
			cmp = a.highValue() - b.highValue()
		}
		if cmp == 0 {
			cmp = int(a.Key) - int(b.Key)
		}
		if descending {
			return -cmp
		}
		return cmp
	})
	return items
}

// FirstCardsWithFaces scans cards in order and returns at most one
// representative card per requested face, first occurrence winning.
func FirstCardsWithFaces(cards []deck.Card, faces []deck.Face) []deck.Card {
	wanted := make(map[deck.Face]bool, len(faces))
	for _, f := range faces {
		wanted[f] = true
	}

	var firsts []deck.Card
	used := make(map[deck.Face]bool)
	for _, c := range cards {
		if wanted[c.Face] && !used[c.Face] {
			firsts = append(firsts, c)
			used[c.Face] = true
		}
	}
	return firsts
}

// FirstCardsWithSuits scans cards in order and returns at most one
// representative card per requested suit, first occurrence winning.
func FirstCardsWithSuits(cards []deck.Card, suits []deck.Suit) []deck.Card {
	wanted := make(map[deck.Suit]bool, len(suits))
	for _, s := range suits {
		wanted[s] = true
	}

	var firsts []deck.Card
	used := make(map[deck.Suit]bool)
	for _, c := range cards {
		if wanted[c.Suit] && !used[c.Suit] {
			firsts = append(firsts, c)
			used[c.Suit] = true
		}
	}
	return firsts
}
