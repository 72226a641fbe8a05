// Package line builds Line values from parsed notes and owns the small
// pieces of line-local policy: triplet-index defaulting and clamping,
// and the pairwise connection predicate.
package line

import (
	"errors"

	"github.com/google/uuid"
	"github.com/kentays/jazz-lines/degree"
	"github.com/kentays/jazz-lines/model"
	"github.com/kentays/jazz-lines/note"
)

var ErrNoNotes = errors.New("cannot build a line from zero notes")

// Build assembles notes into a Line with derived intervals and start/end
// degrees and a fresh ID. tripletStartIndex -1 means "unset"; for the
// common 9-note shape it defaults to 6 so the last three notes group.
// Other values pass through unclamped — mutators clamp, the builder
// does not.
func Build(notes []model.Note, tripletStartIndex int) (model.Line, error) {
	if len(notes) == 0 {
		return model.Line{}, ErrNoNotes
	}

	startDegree, err := note.ToDegree(notes[0])
	if err != nil {
		return model.Line{}, err
	}
	endDegree, err := note.ToDegree(notes[len(notes)-1])
	if err != nil {
		return model.Line{}, err
	}

	if tripletStartIndex == -1 && len(notes) == 9 {
		tripletStartIndex = 6
	}

	return model.Line{
		ID:                uuid.New().String(),
		Notes:             notes,
		Intervals:         note.Intervals(notes),
		StartDegree:       startDegree,
		EndDegree:         endDegree,
		TripletStartIndex: tripletStartIndex,
		LibraryID:         "",
	}, nil
}

// Rebuild re-derives a line from replacement notes, keeping the identity
// and caller-attached metadata of the original.
func Rebuild(original model.Line, notes []model.Note, tripletStartIndex int) (model.Line, error) {
	updated, err := Build(notes, tripletStartIndex)
	if err != nil {
		return model.Line{}, err
	}
	updated.ID = original.ID
	updated.Tags = original.Tags
	updated.LibraryID = original.LibraryID
	updated.Comment = original.Comment
	return updated, nil
}

// ClampTripletIndex applies delta to a triplet start index and clamps the
// result so a 3-note group still fits, or -1 for "no triplet". The
// triplet adjusters live in the presentation layer; both the
// sequence-local and the library-persistent one go through here rather
// than carrying their own bounds logic.
func ClampTripletIndex(current int, delta int, noteCount int) int {
	next := current + delta
	max := noteCount - 3
	if max < 0 {
		return -1
	}
	if next < -1 {
		return -1
	}
	if next > max {
		return max
	}
	return next
}

// CanConnect reports whether b may legally follow a: tied, a half or
// whole step away, or sitting on the nearest chord tone in either
// direction. Lines whose degrees fall outside the canonical space never
// connect.
func CanConnect(a model.Line, b model.Line) bool {
	end, ok := degree.Index(a.EndDegree)
	if !ok {
		return false
	}
	start, ok := degree.Index(b.StartDegree)
	if !ok {
		return false
	}

	if start == end {
		return true
	}
	switch degree.CircularDistance(end, start) {
	case 1, 2:
		return true
	}
	return start == degree.NearestChordToneAbove(end) ||
		start == degree.NearestChordToneBelow(end)
}
