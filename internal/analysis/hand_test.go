package analysis

import (
	"testing"

	"github.com/KelvinUbaechu/PokerProject/internal/deck"
)

func TestGroupsByFacePreservesHandOrder(t *testing.T) {
	hand := NewHand(deck.MustParseCards("KsAs2hKh2cKd")...)

	groups := hand.GroupsByFace()
	if len(groups) != 3 {
		t.Fatalf("expected 3 face groups, got %d", len(groups))
	}

	kings := groups[deck.King]
	want := deck.MustParseCards("KsKhKd")
	if len(kings) != 3 {
		t.Fatalf("expected 3 kings, got %d", len(kings))
	}
	for i := range kings {
		if kings[i] != want[i] {
			t.Errorf("kings[%d] = %s, want %s (hand order)", i, kings[i], want[i])
		}
	}
}

func TestFrequencyRoundTrip(t *testing.T) {
	// summing group sizes over all frequencies recovers the card count
	hands := []Hand{
		NewHand(deck.MustParseCards("AsAhKsKh2c")...),
		NewHand(deck.MustParseCards("2s3s4s5s6s")...),
		NewHand(deck.MustParseCards("QsQhQcQd7s")...),
		NewHand(),
	}

	for _, hand := range hands {
		total := 0
		for freq := 1; freq <= len(hand); freq++ {
			total += len(hand.FacesWithFrequency(freq)) * freq
		}
		if total != len(hand) {
			t.Errorf("face frequency groups cover %d cards, hand has %d", total, len(hand))
		}

		total = 0
		for freq := 1; freq <= len(hand); freq++ {
			total += len(hand.SuitsWithFrequency(freq)) * freq
		}
		if total != len(hand) {
			t.Errorf("suit frequency groups cover %d cards, hand has %d", total, len(hand))
		}
	}
}

func TestFacesWithFrequency(t *testing.T) {
	hand := NewHand(deck.MustParseCards("AsAhKsKh2c")...)

	pairs := hand.FacesWithFrequency(2)
	if len(pairs) != 2 || pairs[0] != deck.King || pairs[1] != deck.Ace {
		t.Errorf("FacesWithFrequency(2) = %v, want [K A]", pairs)
	}

	singles := hand.FacesWithFrequency(1)
	if len(singles) != 1 || singles[0] != deck.Two {
		t.Errorf("FacesWithFrequency(1) = %v, want [2]", singles)
	}

	if got := hand.FacesWithFrequency(3); len(got) != 0 {
		t.Errorf("FacesWithFrequency(3) = %v, want empty", got)
	}
}

func TestSuitsWithFrequency(t *testing.T) {
	hand := NewHand(deck.MustParseCards("2s5s9sKh3h")...)

	if got := hand.SuitsWithFrequency(3); len(got) != 1 || got[0] != deck.Spades {
		t.Errorf("SuitsWithFrequency(3) = %v, want [Spades]", got)
	}
	if got := hand.SuitsWithFrequency(2); len(got) != 1 || got[0] != deck.Hearts {
		t.Errorf("SuitsWithFrequency(2) = %v, want [Hearts]", got)
	}
}

func TestFrequencyExtremes(t *testing.T) {
	hand := NewHand(deck.MustParseCards("AsAhAcKs2d")...)

	if got := hand.MaxFaceFrequency(); got != 3 {
		t.Errorf("MaxFaceFrequency() = %d, want 3", got)
	}
	if got := hand.MinFaceFrequency(); got != 1 {
		t.Errorf("MinFaceFrequency() = %d, want 1", got)
	}
	if got := hand.MaxSuitFrequency(); got != 2 {
		t.Errorf("MaxSuitFrequency() = %d, want 2", got)
	}

	var empty Hand
	if got := empty.MaxFaceFrequency(); got != 0 {
		t.Errorf("empty MaxFaceFrequency() = %d, want 0", got)
	}
	if got := empty.MinSuitFrequency(); got != 0 {
		t.Errorf("empty MinSuitFrequency() = %d, want 0", got)
	}
}

func TestRemove(t *testing.T) {
	hand := NewHand(deck.MustParseCards("AsKs2h")...)

	if !hand.Remove(deck.NewCard(deck.King, deck.Spades)) {
		t.Fatal("Remove should find the king of spades")
	}
	if len(hand) != 2 {
		t.Errorf("hand has %d cards after removal", len(hand))
	}
	if hand.Remove(deck.NewCard(deck.King, deck.Spades)) {
		t.Error("Remove should fail for an absent card")
	}

	// only the first occurrence of a duplicate goes
	dup := NewHand(deck.MustParseCards("AsAs2h")...)
	dup.Remove(deck.NewCard(deck.Ace, deck.Spades))
	if len(dup) != 2 {
		t.Errorf("duplicate removal took %d cards", 3-len(dup))
	}
}

func TestSortedByValue(t *testing.T) {
	hand := NewHand(deck.MustParseCards("2hKs9dAc5s")...)

	descending := hand.SortedByValue(true)
	wantDesc := []deck.Face{deck.Ace, deck.King, deck.Nine, deck.Five, deck.Two}
	for i, c := range descending {
		if c.Face != wantDesc[i] {
			t.Errorf("descending[%d] = %s, want %s", i, c.Face, wantDesc[i])
		}
	}

	ascending := hand.SortedByValue(false)
	for i, c := range ascending {
		if c.Face != wantDesc[len(wantDesc)-1-i] {
			t.Errorf("ascending[%d] = %s", i, c.Face)
		}
	}

	// the hand itself is untouched
	if hand[0].Face != deck.Two {
		t.Error("SortedByValue must not mutate the hand")
	}
}
