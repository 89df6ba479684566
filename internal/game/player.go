package game

import (
	"github.com/KelvinUbaechu/PokerProject/internal/analysis"
	"github.com/KelvinUbaechu/PokerProject/internal/deck"
)

// Agent decides which cards a player discards on their turn
type Agent interface {
	// SelectDiscards returns the cards to give up, at most maxDiscards of
	// them. The returned cards must come from hand.
	SelectDiscards(hand []deck.Card, maxDiscards int) []deck.Card
}

// DiscarderAgent adapts a Discarder strategy into an Agent for
// computer-controlled players.
type DiscarderAgent struct {
	Discarder Discarder
}

// SelectDiscards applies the wrapped discard strategy
func (a DiscarderAgent) SelectDiscards(hand []deck.Card, maxDiscards int) []deck.Card {
	d := a.Discarder
	if maxDiscards < d.MaxDiscards {
		d.MaxDiscards = maxDiscards
	}
	return d.Discards(hand)
}

// Player is a seat at the table: a name, a hand and the agent driving it
type Player struct {
	Name  string
	Hand  analysis.Hand
	Agent Agent
}

// NewPlayer creates a player with an empty hand
func NewPlayer(name string, agent Agent) *Player {
	return &Player{Name: name, Agent: agent}
}

// AddCards deals cards into the player's hand
func (p *Player) AddCards(cards ...deck.Card) {
	p.Hand.Add(cards...)
}

// Discard asks the player's agent for discards, removes them from the hand
// and returns them.
func (p *Player) Discard(maxDiscards int) []deck.Card {
	discards := p.Agent.SelectDiscards(p.Hand, maxDiscards)

	removed := make([]deck.Card, 0, len(discards))
	for _, c := range discards {
		if p.Hand.Remove(c) {
			removed = append(removed, c)
		}
	}
	return removed
}
