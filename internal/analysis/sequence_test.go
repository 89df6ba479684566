package analysis

import (
	"testing"

	"github.com/KelvinUbaechu/PokerProject/internal/deck"
)

func invalidStarters(faces ...deck.Face) map[deck.Face]bool {
	m := make(map[deck.Face]bool, len(faces))
	for _, f := range faces {
		m[f] = true
	}
	return m
}

var noInvalid = map[deck.Face]bool{}

func TestStarterPrecedenceDiffersFromRawValue(t *testing.T) {
	// raw value: Ace is the highest face
	max, _ := MaxFace([]deck.Face{deck.Ace, deck.King, deck.Two})
	if max != deck.Ace {
		t.Errorf("MaxFace = %s, want Ace", max)
	}

	// starter precedence: Ace sits below Two
	if !StarterLesser(deck.Ace, deck.Two) {
		t.Error("Ace should have lesser starter precedence than Two")
	}
	if !StarterGreater(deck.Ten, deck.Two) {
		t.Error("Ten should have greater starter precedence than Two")
	}
	if StarterGreater(deck.Ace, deck.Ace) {
		t.Error("a starter never outranks itself")
	}

	minStarter, _ := MinStarter([]deck.Face{deck.Two, deck.Ace, deck.Ten})
	if minStarter != deck.Ace {
		t.Errorf("MinStarter = %s, want Ace", minStarter)
	}
	maxStarter, _ := MaxStarter([]deck.Face{deck.Two, deck.Ace, deck.Ten})
	if maxStarter != deck.Ten {
		t.Errorf("MaxStarter = %s, want Ten", maxStarter)
	}
}

func TestSortedStarters(t *testing.T) {
	starters := []deck.Face{deck.King, deck.Ace, deck.Five, deck.Two}
	sorted := SortedStarters(starters, false)

	want := []deck.Face{deck.Ace, deck.Two, deck.Five, deck.King}
	for i := range want {
		if sorted[i] != want[i] {
			t.Errorf("sorted[%d] = %s, want %s", i, sorted[i], want[i])
		}
	}
}

func TestSequenceOfStarterWrapsThroughAce(t *testing.T) {
	sequence := SequenceOfStarter(deck.King, 4)
	want := []deck.Face{deck.King, deck.Ace, deck.Two, deck.Three}
	for i := range want {
		if sequence[i] != want[i] {
			t.Errorf("sequence[%d] = %s, want %s", i, sequence[i], want[i])
		}
	}
}

func TestStartersIncludingFace(t *testing.T) {
	// walking back from Ten: Ten, Nine, Eight, Seven, Six
	starters := StartersIncludingFace(deck.Ten, 5, noInvalid)
	for _, f := range []deck.Face{deck.Ten, deck.Nine, deck.Eight, deck.Seven, deck.Six} {
		if !starters[f] {
			t.Errorf("starter %s missing", f)
		}
	}
	if len(starters) != 5 {
		t.Errorf("got %d starters, want 5", len(starters))
	}

	// invalid faces are visited but not collected
	starters = StartersIncludingFace(deck.Ace, 5, invalidStarters(deck.Jack, deck.Queen, deck.King))
	if len(starters) != 2 || !starters[deck.Ace] || !starters[deck.Ten] {
		t.Errorf("starters for Ace = %v, want {A, T}", starters)
	}
}

func TestStartersIncludingFaceStopsOnCycle(t *testing.T) {
	// a 20-long walk revisits faces; the cycle guard stops at 13
	starters := StartersIncludingFace(deck.Five, 20, noInvalid)
	if len(starters) != 13 {
		t.Errorf("got %d starters, want all 13 faces", len(starters))
	}
}

func TestMostFrequentStarter(t *testing.T) {
	invalid := invalidStarters(deck.Jack, deck.Queen, deck.King)

	tests := []struct {
		name    string
		cards   string
		starter deck.Face
	}{
		{"broadway", "TsJhQcKdAs", deck.Ten},
		{"wheel", "As2h3c4d5s", deck.Ace},
		{"six high", "2s3h4c5d6s", deck.Two},
		{"king high", "9sThJcQdKs", deck.Nine},
		// the wheel draw covers A,2,3,4 — one more face than the 2-start run
		{"broken draw", "2s3h4cKdAs", deck.Ace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := NewHand(deck.MustParseCards(tt.cards)...)
			starter, ok := MostFrequentStarter(hand.Faces(), 5, invalid)
			if !ok {
				t.Fatal("expected a starter")
			}
			if starter != tt.starter {
				t.Errorf("starter = %s, want %s", starter, tt.starter)
			}
		})
	}
}

func TestMostFrequentStarterEmptyFaces(t *testing.T) {
	if _, ok := MostFrequentStarter(nil, 5, noInvalid); ok {
		t.Error("no faces should yield no starter")
	}
}

func TestSequenceIncludingMostFaces(t *testing.T) {
	hand := NewHand(deck.MustParseCards("4s5h6cKdKs")...)
	sequence, ok := SequenceIncludingMostFaces(hand.Faces(), 5, invalidStarters(deck.Jack, deck.Queen, deck.King))
	if !ok {
		t.Fatal("expected a sequence")
	}

	// best cover starts at Four and includes 4, 5, 6
	if sequence[0] != deck.Four || len(sequence) != 5 {
		t.Errorf("sequence = %v, want 4-8 run", sequence)
	}
}
