package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit. Suits are categorical: no suit outranks
// another anywhere in the engine.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Clovers
	Diamonds
)

// String returns the glyph for a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Clovers:
		return "♣"
	case Diamonds:
		return "♦"
	default:
		return "?"
	}
}

// Name returns the full suit name (e.g., "Hearts")
func (s Suit) Name() string {
	switch s {
	case Spades:
		return "Spades"
	case Hearts:
		return "Hearts"
	case Clovers:
		return "Clovers"
	case Diamonds:
		return "Diamonds"
	default:
		return "Unknown"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Face represents a card face. The underlying value is the face's poker
// value: Two=2 through Ace=14. Ace is highest by raw value but acts as the
// lowest sequence anchor for wheel straights, see the analysis package.
type Face int

const (
	Two Face = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// MinFaceValue and MaxFaceValue bound the face domain.
const (
	MinFaceValue = int(Two)
	MaxFaceValue = int(Ace)
)

// Value returns the numeric value of the face (2-14)
func (f Face) Value() int {
	return int(f)
}

// String returns the short representation of a face
func (f Face) String() string {
	switch f {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Name returns the full face name (e.g., "King")
func (f Face) Name() string {
	switch f {
	case Two:
		return "Two"
	case Three:
		return "Three"
	case Four:
		return "Four"
	case Five:
		return "Five"
	case Six:
		return "Six"
	case Seven:
		return "Seven"
	case Eight:
		return "Eight"
	case Nine:
		return "Nine"
	case Ten:
		return "Ten"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	default:
		return "Unknown"
	}
}

// FaceFromValue returns the face with the given numeric value.
// ok is false when the value falls outside 2-14.
func FaceFromValue(value int) (Face, bool) {
	if value < MinFaceValue || value > MaxFaceValue {
		return 0, false
	}
	return Face(value), true
}

// NextFace returns the face after f, wrapping from Ace back to Two.
// The cyclic adjacency is what allows the wheel (A-2-3-4-5) straight.
func NextFace(f Face) Face {
	if f >= Ace {
		return Two
	}
	return f + 1
}

// PreviousFace returns the face before f, wrapping from Two back to Ace.
func PreviousFace(f Face) Face {
	if f <= Two {
		return Ace
	}
	return f - 1
}

// Card represents a playing card. Cards are immutable value types: ordering
// is defined solely by face value, equality by the (Face, Suit) pair.
type Card struct {
	Face Face
	Suit Suit
}

// NewCard creates a new card
func NewCard(face Face, suit Suit) Card {
	return Card{Face: face, Suit: suit}
}

// Value returns the numeric value of the card for comparison.
// Suit never breaks ties.
func (c Card) Value() int {
	return c.Face.Value()
}

// String returns the compact representation of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Face, c.Suit)
}

// Name returns the long representation of a card (e.g., "Ace of Spades")
func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", c.Face.Name(), c.Suit.Name())
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// ParseCard parses a two-character card code like "As" or "th".
// Suit characters: s=Spades, h=Hearts, c=Clovers, d=Diamonds.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q: want 2 characters", s)
	}

	var face Face
	switch strings.ToUpper(s[:1]) {
	case "2":
		face = Two
	case "3":
		face = Three
	case "4":
		face = Four
	case "5":
		face = Five
	case "6":
		face = Six
	case "7":
		face = Seven
	case "8":
		face = Eight
	case "9":
		face = Nine
	case "T":
		face = Ten
	case "J":
		face = Jack
	case "Q":
		face = Queen
	case "K":
		face = King
	case "A":
		face = Ace
	default:
		return Card{}, fmt.Errorf("invalid face %q in card %q", s[:1], s)
	}

	var suit Suit
	switch strings.ToLower(s[1:]) {
	case "s":
		suit = Spades
	case "h":
		suit = Hearts
	case "c":
		suit = Clovers
	case "d":
		suit = Diamonds
	default:
		return Card{}, fmt.Errorf("invalid suit %q in card %q", s[1:], s)
	}

	return Card{Face: face, Suit: suit}, nil
}

// ParseCards parses a run of card codes like "AsKsQsJsTs"
func ParseCards(s string) ([]Card, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid cards %q: odd length", s)
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses card codes and panics on invalid input.
// Intended for tests and fixtures.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}
