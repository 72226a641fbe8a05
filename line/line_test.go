package line

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kentays/jazz-lines/model"
	"github.com/kentays/jazz-lines/note"
)

func mustNotes(texts ...string) []model.Note {
	notes, err := note.ParseAll(texts)
	if err != nil {
		panic(err.Error())
	}
	return notes
}

func TestBuildDerivesIntervalsAndDegrees(t *testing.T) {
	assert := assert.New(t)

	notes := mustNotes("G3", "A3", "B3", "D4", "C4")
	l, err := Build(notes, -1)
	assert.NoError(err)

	assert.Equal(5, l.Length())
	assert.Equal([]int{2, 2, 3, -2}, l.Intervals)
	assert.Equal("5", l.StartDegree)
	assert.Equal("1", l.EndDegree)
	assert.Equal(-1, l.TripletStartIndex)
	assert.NotEmpty(l.ID)
}

func TestBuildAssignsDistinctIds(t *testing.T) {
	notes := mustNotes("C4", "D4")
	a, _ := Build(notes, -1)
	b, _ := Build(notes, -1)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNineNoteLinesDefaultTripletToLastThree(t *testing.T) {
	assert := assert.New(t)

	nine := mustNotes("C4", "D4", "E4", "F4", "G4", "A4", "B4", "C5", "D5")
	l, err := Build(nine, -1)
	assert.NoError(err)
	assert.Equal(6, l.TripletStartIndex)

	// an explicit index wins over the default
	l, err = Build(nine, 2)
	assert.NoError(err)
	assert.Equal(2, l.TripletStartIndex)

	// other lengths stay unset
	l, err = Build(nine[:8], -1)
	assert.NoError(err)
	assert.Equal(-1, l.TripletStartIndex)

	// the builder does not clamp
	l, err = Build(nine[:4], 9)
	assert.NoError(err)
	assert.Equal(9, l.TripletStartIndex)
}

func TestBuildFailsOnZeroNotes(t *testing.T) {
	_, err := Build(nil, -1)
	assert.ErrorIs(t, err, ErrNoNotes)
}

func TestRebuildKeepsIdentityAndMetadata(t *testing.T) {
	assert := assert.New(t)

	l, _ := Build(mustNotes("C4", "E4", "G4"), -1)
	l.Tags = []string{"ii-V major"}
	l.LibraryID = "default"
	l.Comment = "opener"

	updated, err := Rebuild(l, mustNotes("D4", "F4", "A4", "C5"), -1)
	assert.NoError(err)
	assert.Equal(l.ID, updated.ID)
	assert.Equal(l.Tags, updated.Tags)
	assert.Equal(l.LibraryID, updated.LibraryID)
	assert.Equal(l.Comment, updated.Comment)
	assert.Equal("2", updated.StartDegree)
	assert.Equal("1", updated.EndDegree)
	assert.Equal([]int{3, 4, 3}, updated.Intervals)
}

func TestClampTripletIndex(t *testing.T) {
	cases := []struct {
		current, delta, noteCount, want int
	}{
		{-1, 1, 9, 0},
		{0, 1, 9, 1},
		{6, 1, 9, 6},  // cannot move past noteCount-3
		{0, -1, 9, -1},
		{-1, -1, 9, -1}, // stays at "no triplet"
		{5, 4, 9, 6},
		{0, 1, 2, -1}, // too few notes for any triplet
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%v%+v over %v notes", c.current, c.delta, c.noteCount), func(t *testing.T) {
			assert.Equal(t, c.want, ClampTripletIndex(c.current, c.delta, c.noteCount))
		})
	}
}

func TestCanConnect(t *testing.T) {
	lineEndingOn := func(text string) model.Line {
		l, err := Build(mustNotes("C4", text), -1)
		if err != nil {
			panic(err.Error())
		}
		return l
	}
	lineStartingOn := func(text string) model.Line {
		l, err := Build(mustNotes(text, "C4"), -1)
		if err != nil {
			panic(err.Error())
		}
		return l
	}

	assert := assert.New(t)
	g := lineEndingOn("G4") // ends on 5

	assert.True(CanConnect(g, lineStartingOn("G4")))  // tied
	assert.True(CanConnect(g, lineStartingOn("Ab4"))) // half step up
	assert.True(CanConnect(g, lineStartingOn("Gb4"))) // half step down
	assert.True(CanConnect(g, lineStartingOn("A4")))  // whole step up
	assert.True(CanConnect(g, lineStartingOn("F4")))  // whole step down
	assert.True(CanConnect(g, lineStartingOn("B4")))  // chord tone above
	assert.True(CanConnect(g, lineStartingOn("E4")))  // chord tone below

	assert.False(CanConnect(g, lineStartingOn("C4")))  // 1 is neither step nor nearest
	assert.False(CanConnect(g, lineStartingOn("Bb4"))) // b7 is neither
	assert.False(CanConnect(g, lineStartingOn("F#4"))) // sharp spelling never resolves
}
