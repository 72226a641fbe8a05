// Package degree models the circular 12-point chromatic degree space
// that connection logic runs over.
package degree

import (
	"github.com/kentays/jazz-lines/util"
)

// ScaleOrder is the canonical ascending chromatic ordering. A label's
// position in this slice is its semitone offset from the tonic, so index
// lookup doubles as semitone lookup.
var ScaleOrder = []string{"1", "b2", "2", "b3", "3", "4", "b5", "5", "b6", "6", "b7", "7"}

// chord tones are 1, 3, 5 and 7
var chordToneIndexes = map[int]bool{0: true, 4: true, 7: true, 11: true}

var labelToIndex = buildLabelIndex()

func buildLabelIndex() map[string]int {
	m := make(map[string]int, len(ScaleOrder))
	for i, label := range ScaleOrder {
		m[label] = i
	}
	return m
}

// Index resolves a degree label to its position 0..11, reporting whether
// the label is a member of the canonical space.
func Index(label string) (int, bool) {
	idx, ok := labelToIndex[label]
	return idx, ok
}

// IsChordTone reports whether the degree at idx is one of {1, 3, 5, 7}.
// Classification goes through the nearest-chord-tone lookups below; this
// predicate is for presentation-layer callers marking the ring.
func IsChordTone(idx int) bool {
	return chordToneIndexes[idx%12]
}

// CircularDistance is the shortest way around the 12-point ring between
// a and b, direction-agnostic. Range 0..6.
func CircularDistance(a int, b int) int {
	d := util.Abs(a - b)
	return util.Min(d, 12-d)
}

// ForwardDistance is the number of ascending steps from a to b.
// Range 0..11; it disambiguates up from down when the circular distance
// alone cannot (e.g. a tritone).
func ForwardDistance(a int, b int) int {
	return ((b - a) % 12 + 12) % 12
}

// NearestChordToneAbove scans upward from idx and returns the index of
// the first chord tone hit. The scan covers a full octave so it cannot
// miss; -1 is only possible with an empty chord-tone set.
func NearestChordToneAbove(idx int) int {
	for i := 1; i <= 12; i++ {
		candidate := (idx + i) % 12
		if chordToneIndexes[candidate] {
			return candidate
		}
	}
	return -1
}

// NearestChordToneBelow is the downward counterpart of
// NearestChordToneAbove.
func NearestChordToneBelow(idx int) int {
	for i := 1; i <= 12; i++ {
		candidate := ((idx-i)%12 + 12) % 12
		if chordToneIndexes[candidate] {
			return candidate
		}
	}
	return -1
}
