package main

import (
	"fmt"

	"github.com/KelvinUbaechu/PokerProject/internal/analysis"
	"github.com/KelvinUbaechu/PokerProject/internal/deck"
	"github.com/KelvinUbaechu/PokerProject/internal/rank"
	"github.com/KelvinUbaechu/PokerProject/internal/tui"
)

// EvalCmd classifies a hand given as compact card codes
type EvalCmd struct {
	Hand string `arg:"" help:"Five cards as compact codes, e.g. AsKsQsJsTs"`
}

func (c *EvalCmd) Run() error {
	cards, err := deck.ParseCards(c.Hand)
	if err != nil {
		return err
	}

	hand := analysis.NewHand(cards...)
	result := rank.Classify(hand)
	if result.IsNull() {
		return fmt.Errorf("hand %s matches no rank (expected 5 cards, got %d)", c.Hand, len(cards))
	}

	fmt.Printf("%s  %s\n", tui.RenderHand(cards), tui.RankStyle.Render(result.Name))
	return nil
}

// CompareCmd compares two hands
type CompareCmd struct {
	Incumbent  string `arg:"" help:"First hand as compact codes"`
	Challenger string `arg:"" help:"Second hand as compact codes"`
}

func (c *CompareCmd) Run() error {
	incumbentCards, err := deck.ParseCards(c.Incumbent)
	if err != nil {
		return err
	}
	challengerCards, err := deck.ParseCards(c.Challenger)
	if err != nil {
		return err
	}

	incumbent := analysis.NewHand(incumbentCards...)
	challenger := analysis.NewHand(challengerCards...)

	fmt.Printf("%s  %s\n", tui.RenderHand(incumbentCards), rank.Classify(incumbent).Name)
	fmt.Printf("%s  %s\n", tui.RenderHand(challengerCards), rank.Classify(challenger).Name)

	switch rank.Compare(incumbent, challenger) {
	case rank.Greater:
		fmt.Println("first hand wins")
	case rank.Lesser:
		fmt.Println("second hand wins")
	default:
		fmt.Println("split")
	}
	return nil
}
