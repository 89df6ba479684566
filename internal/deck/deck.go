package deck

import (
	rand "math/rand/v2"
)

// Size is the number of cards in a standard deck
const Size = 52

// Deck represents a standard 52-card deck
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a new shuffled deck using the provided random source
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, Size),
		rng:   rng,
	}
	d.fill()
	d.Shuffle()
	return d
}

func (d *Deck) fill() {
	d.cards = d.cards[:0]
	for suit := Spades; suit <= Diamonds; suit++ {
		for face := Two; face <= Ace; face++ {
			d.cards = append(d.cards, NewCard(face, suit))
		}
	}
}

// Shuffle randomizes the order of the remaining cards using Fisher-Yates
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top card from the deck
func (d *Deck) Deal() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, true
}

// DealN deals up to n cards from the deck
func (d *Deck) DealN(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}

	cards := make([]Card, 0, n)
	for range n {
		card, ok := d.Deal()
		if !ok {
			break
		}
		cards = append(cards, card)
	}
	return cards
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Reset restores the deck to a full 52 cards and shuffles it
func (d *Deck) Reset() {
	d.fill()
	d.Shuffle()
}
