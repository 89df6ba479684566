package analysis

import (
	"slices"

	"github.com/KelvinUbaechu/PokerProject/internal/deck"
)

// Two orderings exist over faces and they must never be conflated:
//
//   - raw value order: Two lowest, Ace highest. Used for kickers, flush
//     tie-breaks and group sorting.
//   - starter precedence: the ordering of straight starters, where Ace sits
//     below Two so that the wheel (A-2-3-4-5) is the lowest straight. All
//     other faces keep their natural value.

// SortedFaces returns the faces ordered by raw value
func SortedFaces(faces []deck.Face, descending bool) []deck.Face {
	sorted := slices.Clone(faces)
	slices.SortStableFunc(sorted, func(a, b deck.Face) int {
		if descending {
			return b.Value() - a.Value()
		}
		return a.Value() - b.Value()
	})
	return sorted
}

// MaxFace returns the face with the greatest raw value.
// ok is false for an empty slice.
func MaxFace(faces []deck.Face) (deck.Face, bool) {
	if len(faces) == 0 {
		return 0, false
	}
	return slices.Max(faces), true
}

// MinFace returns the face with the smallest raw value.
// ok is false for an empty slice.
func MinFace(faces []deck.Face) (deck.Face, bool) {
	if len(faces) == 0 {
		return 0, false
	}
	return slices.Min(faces), true
}

// starterKey maps a face to its starter precedence. Ace is pushed below Two.
func starterKey(f deck.Face) int {
	if f == deck.Ace {
		return deck.MinFaceValue - 1
	}
	return f.Value()
}

// SortedStarters returns the faces ordered by starter precedence
func SortedStarters(starters []deck.Face, descending bool) []deck.Face {
	sorted := slices.Clone(starters)
	slices.SortStableFunc(sorted, func(a, b deck.Face) int {
		if descending {
			return starterKey(b) - starterKey(a)
		}
		return starterKey(a) - starterKey(b)
	})
	return sorted
}

// StarterGreater reports whether a has greater starter precedence than b
func StarterGreater(a, b deck.Face) bool {
	return starterKey(a) > starterKey(b)
}

// StarterLesser reports whether a has lesser starter precedence than b
func StarterLesser(a, b deck.Face) bool {
	return starterKey(a) < starterKey(b)
}

// MaxStarter returns the starter with greatest precedence.
// ok is false for an empty slice.
func MaxStarter(starters []deck.Face) (deck.Face, bool) {
	if len(starters) == 0 {
		return 0, false
	}
	max := starters[0]
	for _, s := range starters[1:] {
		if StarterGreater(s, max) {
			max = s
		}
	}
	return max, true
}

// MinStarter returns the starter with least precedence.
// ok is false for an empty slice.
func MinStarter(starters []deck.Face) (deck.Face, bool) {
	if len(starters) == 0 {
		return 0, false
	}
	min := starters[0]
	for _, s := range starters[1:] {
		if StarterLesser(s, min) {
			min = s
		}
	}
	return min, true
}

// SequenceOfStarter returns the run of length consecutive faces that the
// starter begins, following the cyclic face order.
func SequenceOfStarter(starter deck.Face, length int) []deck.Face {
	sequence := make([]deck.Face, 0, length)
	face := starter
	for range length {
		sequence = append(sequence, face)
		face = deck.NextFace(face)
	}
	return sequence
}

// StartersIncludingFace returns the set of starters whose sequence of the
// given length would include face. Starters in the invalid set are skipped;
// the walk stops early once a starter repeats, which can only happen when
// length exceeds the 13 faces.
func StartersIncludingFace(face deck.Face, length int, invalid map[deck.Face]bool) map[deck.Face]bool {
	starters := make(map[deck.Face]bool)
	starter := face

	for range length {
		if starters[starter] {
			break
		}
		if !invalid[starter] {
			starters[starter] = true
		}
		starter = deck.PreviousFace(starter)
	}
	return starters
}

// StarterCounts tallies, for each candidate starter, how many of the distinct
// input faces its sequence of the given length would include.
func StarterCounts(faces []deck.Face, length int, invalid map[deck.Face]bool) map[deck.Face]int {
	counts := make(map[deck.Face]int)
	seen := make(map[deck.Face]bool)

	for _, face := range faces {
		if seen[face] {
			continue
		}
		seen[face] = true
		for starter := range StartersIncludingFace(face, length, invalid) {
			counts[starter]++
		}
	}
	return counts
}

// MostFrequentStarter returns the starter whose sequence of the given length
// includes the most of the provided faces. Ties go to the starter with
// greatest precedence. ok is false when no candidate exists, for example
// when faces is empty or every candidate is invalid.
func MostFrequentStarter(faces []deck.Face, length int, invalid map[deck.Face]bool) (deck.Face, bool) {
	counts := StarterCounts(faces, length, invalid)
	if len(counts) == 0 {
		return 0, false
	}

	maxCount := 0
	for _, count := range counts {
		if count > maxCount {
			maxCount = count
		}
	}

	var best []deck.Face
	for starter, count := range counts {
		if count == maxCount {
			best = append(best, starter)
		}
	}
	return MaxStarter(best)
}

// SequenceIncludingMostFaces returns the sequence of the given length whose
// starter covers the most of the provided faces. ok is false when no starter
// is available.
func SequenceIncludingMostFaces(faces []deck.Face, length int, invalid map[deck.Face]bool) ([]deck.Face, bool) {
	starter, ok := MostFrequentStarter(faces, length, invalid)
	if !ok {
		return nil, false
	}
	return SequenceOfStarter(starter, length), true
}
