package tui

import (
	"strings"

	"github.com/KelvinUbaechu/PokerProject/internal/deck"
)

// RenderCard renders a single card with suit-appropriate coloring
func RenderCard(c deck.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

// RenderHand renders a hand as a space-separated row of cards
func RenderHand(cards []deck.Card) string {
	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = RenderCard(c)
	}
	return strings.Join(rendered, " ")
}
