package game

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/KelvinUbaechu/PokerProject/internal/deck"
	"github.com/KelvinUbaechu/PokerProject/internal/rank"
)

// HandSize is the number of cards every player holds
const HandSize = rank.RequiredHandSize

var errDeckExhausted = errors.New("deck exhausted")

// Game runs draw-poker rounds for a fixed set of players
type Game struct {
	players     []*Player
	deck        *deck.Deck
	rounds      int
	maxDiscards int
	logger      *log.Logger
}

// Result summarises a finished game
type Result struct {
	Winners     []*Player
	WinningRank rank.Rank
}

// New creates a game over the given players and deck
func New(players []*Player, d *deck.Deck, rounds, maxDiscards int, logger *log.Logger) (*Game, error) {
	if len(players) == 0 {
		return nil, errors.New("game needs at least one player")
	}
	return &Game{
		players:     players,
		deck:        d,
		rounds:      rounds,
		maxDiscards: maxDiscards,
		logger:      logger,
	}, nil
}

// Players returns the seated players
func (g *Game) Players() []*Player {
	return g.players
}

// FillHands tops every player's hand back up to HandSize
func (g *Game) FillHands() error {
	for _, p := range g.players {
		if err := g.fillHand(p); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) fillHand(p *Player) error {
	for len(p.Hand) < HandSize {
		card, ok := g.deck.Deal()
		if !ok {
			return fmt.Errorf("dealing to %s: %w", p.Name, errDeckExhausted)
		}
		p.AddCards(card)
	}
	return nil
}

// ExecuteRounds runs every discard/draw round. Each player in turn discards
// through their agent then draws back up to a full hand.
func (g *Game) ExecuteRounds() error {
	for round := 1; round <= g.rounds; round++ {
		g.logger.Debug("Starting discard round", "round", round)
		for _, p := range g.players {
			discarded := p.Discard(g.maxDiscards)
			g.logger.Debug("Player discarded",
				"player", p.Name,
				"count", len(discarded),
				"cards", fmt.Sprint(discarded))

			if err := g.fillHand(p); err != nil {
				return err
			}

			current := rank.Classify(p.Hand)
			g.logger.Debug("Player drew back to full hand",
				"player", p.Name,
				"rank", current.Name)
		}
	}
	return nil
}

// FindWinners returns every player tied for the best hand
func (g *Game) FindWinners() []*Player {
	incumbent := g.players[0]
	winners := []*Player{incumbent}

	for _, challenger := range g.players[1:] {
		switch rank.Compare(incumbent.Hand, challenger.Hand) {
		case rank.Equal:
			winners = append(winners, challenger)
		case rank.Lesser:
			incumbent = challenger
			winners = []*Player{incumbent}
		}
	}
	return winners
}

// Run plays one complete game: deal, discard rounds, showdown
func (g *Game) Run() (*Result, error) {
	if err := g.FillHands(); err != nil {
		return nil, err
	}
	if err := g.ExecuteRounds(); err != nil {
		return nil, err
	}

	winners := g.FindWinners()
	winningRank := rank.Classify(winners[0].Hand)
	g.logger.Info("Showdown complete",
		"winners", len(winners),
		"rank", winningRank.Name)

	return &Result{Winners: winners, WinningRank: winningRank}, nil
}

// Reset clears all hands and restores a full shuffled deck for a rematch
func (g *Game) Reset() {
	for _, p := range g.players {
		p.Hand.Clear()
	}
	g.deck.Reset()
}
