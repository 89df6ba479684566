package deck

import "testing"

func TestNextFaceWrapsAroundAce(t *testing.T) {
	tests := []struct {
		face Face
		next Face
	}{
		{Two, Three},
		{Nine, Ten},
		{Ten, Jack},
		{King, Ace},
		{Ace, Two},
	}

	for _, tt := range tests {
		if got := NextFace(tt.face); got != tt.next {
			t.Errorf("NextFace(%s) = %s, want %s", tt.face, got, tt.next)
		}
	}
}

func TestPreviousFaceWrapsAroundTwo(t *testing.T) {
	tests := []struct {
		face Face
		prev Face
	}{
		{Three, Two},
		{Two, Ace},
		{Ace, King},
		{Jack, Ten},
	}

	for _, tt := range tests {
		if got := PreviousFace(tt.face); got != tt.prev {
			t.Errorf("PreviousFace(%s) = %s, want %s", tt.face, got, tt.prev)
		}
	}
}

func TestFaceCycleRoundTrips(t *testing.T) {
	for face := Two; face <= Ace; face++ {
		if got := PreviousFace(NextFace(face)); got != face {
			t.Errorf("PreviousFace(NextFace(%s)) = %s", face, got)
		}
	}
}

func TestFaceFromValue(t *testing.T) {
	for value := MinFaceValue; value <= MaxFaceValue; value++ {
		face, ok := FaceFromValue(value)
		if !ok {
			t.Fatalf("FaceFromValue(%d) not ok", value)
		}
		if face.Value() != value {
			t.Errorf("FaceFromValue(%d).Value() = %d", value, face.Value())
		}
	}

	for _, value := range []int{0, 1, 15, -3} {
		if _, ok := FaceFromValue(value); ok {
			t.Errorf("FaceFromValue(%d) should not be ok", value)
		}
	}
}

func TestCardOrderingIgnoresSuit(t *testing.T) {
	aceSpades := NewCard(Ace, Spades)
	aceHearts := NewCard(Ace, Hearts)
	kingSpades := NewCard(King, Spades)

	if aceSpades.Value() != aceHearts.Value() {
		t.Error("suit should not affect card value")
	}
	if aceSpades.Value() <= kingSpades.Value() {
		t.Error("ace should outrank king")
	}

	// equality requires the exact pair
	if aceSpades == aceHearts {
		t.Error("cards with different suits should not be equal")
	}
	if aceSpades != NewCard(Ace, Spades) {
		t.Error("cards with same face and suit should be equal")
	}
}

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "royal flush",
			input: "AsKsQsJsTs",
			expected: []Card{
				{Face: Ace, Suit: Spades},
				{Face: King, Suit: Spades},
				{Face: Queen, Suit: Spades},
				{Face: Jack, Suit: Spades},
				{Face: Ten, Suit: Spades},
			},
		},
		{
			name:  "mixed suits",
			input: "AhKdQcJs9s",
			expected: []Card{
				{Face: Ace, Suit: Hearts},
				{Face: King, Suit: Diamonds},
				{Face: Queen, Suit: Clovers},
				{Face: Jack, Suit: Spades},
				{Face: Nine, Suit: Spades},
			},
		},
		{
			name:  "case insensitive",
			input: "asKHqDjc",
			expected: []Card{
				{Face: Ace, Suit: Spades},
				{Face: King, Suit: Hearts},
				{Face: Queen, Suit: Diamonds},
				{Face: Jack, Suit: Clovers},
			},
		},
		{
			name:    "invalid face",
			input:   "XsKs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "AsKx",
			wantErr: true,
		},
		{
			name:    "odd length",
			input:   "AsK",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCards() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !cardsEqual(got, tt.expected) {
				t.Errorf("ParseCards() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustParseCardsPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseCards() should panic on invalid input")
		}
	}()
	MustParseCards("invalid")
}

func TestCardStrings(t *testing.T) {
	card := NewCard(King, Hearts)
	if got := card.String(); got != "K♥" {
		t.Errorf("String() = %q", got)
	}
	if got := card.Name(); got != "King of Hearts" {
		t.Errorf("Name() = %q", got)
	}
	if !card.IsRed() {
		t.Error("hearts should be red")
	}
	if NewCard(Two, Clovers).IsRed() {
		t.Error("clovers should be black")
	}
}

func cardsEqual(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
