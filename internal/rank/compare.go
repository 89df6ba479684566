package rank

import (
	"github.com/KelvinUbaechu/PokerProject/internal/analysis"
	"github.com/KelvinUbaechu/PokerProject/internal/deck"
)

// Comparison is the three-valued result of comparing hands, groups or
// lengths.
type Comparison int

const (
	Lesser  Comparison = -1
	Equal   Comparison = 0
	Greater Comparison = 1
)

func (c Comparison) String() string {
	switch c {
	case Greater:
		return "greater"
	case Lesser:
		return "lesser"
	default:
		return "equal"
	}
}

// Invert flips Greater and Lesser
func (c Comparison) Invert() Comparison {
	return -c
}

// Rank categories decide which tie-break applies when two hands share a
// rank. Anything outside the frequency and sequential sets, which is only
// Flush in the default catalog, falls through to raw value comparison.
var (
	faceFrequencyRanks = rankValueSet(HighCard, Pair, TwoPair, ThreeOfAKind, FullHouse, FourOfAKind)
	sequentialRanks    = rankValueSet(Straight, StraightFlush, RoyalFlush)
)

func rankValueSet(ranks ...Rank) map[int]bool {
	set := make(map[int]bool, len(ranks))
	for _, r := range ranks {
		set[r.Value] = true
	}
	return set
}

// Compare orders two hands. The higher-ranked hand wins outright; hands of
// equal rank are tie-broken by their rank's category. Candidate ranks may be
// supplied for classification, defaulting to the standard catalog.
func Compare(incumbent, challenger analysis.Hand, ranks ...Rank) Comparison {
	incumbentRank := Classify(incumbent, ranks...)
	challengerRank := Classify(challenger, ranks...)

	if incumbentRank.Beats(challengerRank) {
		return Greater
	}
	if challengerRank.Beats(incumbentRank) {
		return Lesser
	}

	switch {
	case faceFrequencyRanks[incumbentRank.Value]:
		return compareByFaceFrequency(incumbent, challenger)
	case sequentialRanks[incumbentRank.Value]:
		return compareByStarter(incumbent, challenger)
	default:
		return compareByValue(incumbent, challenger)
	}
}

// compareGroups orders two (face, cards) groups: primarily by group size,
// secondarily by face value.
func compareGroups(a, b analysis.Group[deck.Face]) Comparison {
	if a.Size() != b.Size() {
		return compareInts(a.Size(), b.Size())
	}
	return compareInts(a.Key.Value(), b.Key.Value())
}

// compareLength orders by count alone. Degenerate final tie-break: hands of
// equal rank share a group structure, so in practice this never
// discriminates.
func compareLength(a, b int) Comparison {
	return compareInts(a, b)
}

func compareInts(a, b int) Comparison {
	switch {
	case a > b:
		return Greater
	case a < b:
		return Lesser
	default:
		return Equal
	}
}

// compareByFaceFrequency walks both hands' face groups in descending
// (size, value) order; the first differing pair decides.
func compareByFaceFrequency(incumbent, challenger analysis.Hand) Comparison {
	incumbentGroups := analysis.GroupsBySizeThenValue(incumbent.GroupsByFace(), true)
	challengerGroups := analysis.GroupsBySizeThenValue(challenger.GroupsByFace(), true)

	pairs := min(len(incumbentGroups), len(challengerGroups))
	for i := range pairs {
		if result := compareGroups(incumbentGroups[i], challengerGroups[i]); result != Equal {
			return result
		}
	}
	return compareLength(len(incumbentGroups), len(challengerGroups))
}

// compareByStarter orders sequential hands by their most frequent straight
// starter under starter precedence. Royal flushes share a starter and
// compare equal.
func compareByStarter(incumbent, challenger analysis.Hand) Comparison {
	invalid := make(map[deck.Face]bool)
	for _, f := range InvalidStraightStarters() {
		invalid[f] = true
	}

	incumbentStarter, incOK := analysis.MostFrequentStarter(incumbent.Faces(), RequiredHandSize, invalid)
	challengerStarter, chaOK := analysis.MostFrequentStarter(challenger.Faces(), RequiredHandSize, invalid)
	if !incOK || !chaOK {
		return compareInts(boolToInt(incOK), boolToInt(chaOK))
	}

	switch {
	case incumbentStarter == challengerStarter:
		return Equal
	case analysis.StarterGreater(incumbentStarter, challengerStarter):
		return Greater
	default:
		return Lesser
	}
}

// compareByValue orders hands card by card after sorting both descending by
// raw value; exhaustion without a difference falls back to length.
func compareByValue(incumbent, challenger analysis.Hand) Comparison {
	sortedIncumbent := incumbent.SortedByValue(true)
	sortedChallenger := challenger.SortedByValue(true)

	pairs := min(len(sortedIncumbent), len(sortedChallenger))
	for i := range pairs {
		if result := compareInts(sortedIncumbent[i].Value(), sortedChallenger[i].Value()); result != Equal {
			return result
		}
	}
	return compareLength(len(incumbent), len(challenger))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
