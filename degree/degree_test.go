package degree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexFollowsChromaticOrder(t *testing.T) {
	assert := assert.New(t)

	assert.Len(ScaleOrder, 12)
	for i, label := range ScaleOrder {
		idx, ok := Index(label)
		assert.True(ok)
		assert.Equal(i, idx)
	}

	_, ok := Index("#4")
	assert.False(ok)
	_, ok = Index("8")
	assert.False(ok)
}

func TestCircularDistanceIsSymmetricAndBounded(t *testing.T) {
	assert := assert.New(t)
	for a := 0; a < 12; a++ {
		for b := 0; b < 12; b++ {
			d := CircularDistance(a, b)
			assert.Equal(d, CircularDistance(b, a))
			assert.GreaterOrEqual(d, 0)
			assert.LessOrEqual(d, 6)
		}
	}
	assert.Equal(0, CircularDistance(3, 3))
	assert.Equal(1, CircularDistance(11, 0))
	assert.Equal(6, CircularDistance(0, 6))
}

func TestForwardDistancesAroundTheRingSumToTwelve(t *testing.T) {
	assert := assert.New(t)
	for a := 0; a < 12; a++ {
		for b := 0; b < 12; b++ {
			if a == b {
				assert.Equal(0, ForwardDistance(a, b))
				continue
			}
			assert.Equal(12, ForwardDistance(a, b)+ForwardDistance(b, a))
		}
	}
	assert.Equal(1, ForwardDistance(11, 0))
	assert.Equal(11, ForwardDistance(0, 11))
}

func TestNearestChordTones(t *testing.T) {
	cases := []struct {
		idx   int
		above int
		below int
	}{
		{0, 4, 11},  // 1 -> up to 3, down to 7
		{4, 7, 0},   // 3 -> up to 5, down to 1
		{7, 11, 4},  // 5 -> up to 7, down to 3
		{11, 0, 7},  // 7 -> up to 1, down to 5
		{2, 4, 0},   // 2 sits between 1 and 3
		{8, 11, 7},  // b6 sits between 5 and 7
		{10, 11, 7}, // b7 is a half step under 7
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("from %v", ScaleOrder[c.idx]), func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(c.above, NearestChordToneAbove(c.idx))
			assert.Equal(c.below, NearestChordToneBelow(c.idx))
		})
	}
}

func TestChordTonesAreOneThreeFiveSeven(t *testing.T) {
	assert := assert.New(t)
	var tones []string
	for i := range ScaleOrder {
		if IsChordTone(i) {
			tones = append(tones, ScaleOrder[i])
		}
	}
	assert.Equal([]string{"1", "3", "5", "7"}, tones)
}
