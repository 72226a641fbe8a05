package library

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kentays/jazz-lines/line"
	"github.com/kentays/jazz-lines/model"
	"github.com/kentays/jazz-lines/note"
)

func buildLine(t *testing.T, texts ...string) model.Line {
	t.Helper()
	notes, err := note.ParseAll(texts)
	if err != nil {
		t.Fatal(err.Error())
	}
	l, err := line.Build(notes, -1)
	if err != nil {
		t.Fatal(err.Error())
	}
	return l
}

func TestAddDefaultsToUserLibrary(t *testing.T) {
	assert := assert.New(t)

	reg := NewRegistry()
	l := reg.Add(buildLine(t, "C4", "D4"))

	assert.Equal("user", l.LibraryID)
	assert.True(reg.Enabled("user"))
	assert.Len(reg.Candidates(), 1)
}

func TestUnknownLibrariesReadAsDisabled(t *testing.T) {
	reg := NewRegistry()
	assert.False(t, reg.Enabled("nope"))
}

func TestSetEnabledRejectsUnknownLibraries(t *testing.T) {
	reg := NewRegistry()
	assert.Error(t, reg.SetEnabled("nope", true))
}

func TestCandidatesKeepLibraryInsertionOrder(t *testing.T) {
	assert := assert.New(t)

	reg := NewRegistry()
	a := buildLine(t, "C4", "D4")
	a.LibraryID = "default"
	b := buildLine(t, "E4", "F4")
	b.LibraryID = "user"
	c := buildLine(t, "G4", "A4")
	c.LibraryID = "default"

	reg.Add(a)
	reg.Add(b)
	reg.Add(c)

	// grouped by library in first-seen order, insertion order within
	assert.Equal([]model.Line{a, c, b}, reg.Candidates())
}

func TestFind(t *testing.T) {
	assert := assert.New(t)

	reg := NewRegistry()
	l := reg.Add(buildLine(t, "C4", "D4"))

	got, ok := reg.Find(l.ID)
	assert.True(ok)
	assert.Equal(l, got)

	_, ok = reg.Find("missing")
	assert.False(ok)
}

func TestReplaceLineRewritesLibraryAndSequence(t *testing.T) {
	assert := assert.New(t)

	reg := NewRegistry()
	l := reg.Add(buildLine(t, "C4", "D4"))
	other := reg.Add(buildLine(t, "E4", "F4"))

	// the sequence holds the line twice
	seq := model.Sequence{l, other, l}

	updated, err := line.Rebuild(l, mustParse(t, "C4", "E4", "G4"), -1)
	assert.NoError(err)

	seq = reg.ReplaceLine(updated, seq)

	assert.Equal(model.Sequence{updated, other, updated}, seq)
	got, ok := reg.Find(l.ID)
	assert.True(ok)
	assert.Equal(updated, got)
	assert.Equal([]int{4, 3}, got.Intervals)
}

func mustParse(t *testing.T, texts ...string) []model.Note {
	t.Helper()
	notes, err := note.ParseAll(texts)
	if err != nil {
		t.Fatal(err.Error())
	}
	return notes
}
