// Package note parses pitch text and derives midi numbers, diatonic
// degree labels and interval runs for line building.
package note

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/kentays/jazz-lines/model"
)

var ErrParse = errors.New("malformed note")

// MinMidi is the lowest midi number with a note-text spelling: the
// octave grammar is a single digit, so octave -1 (keys 0..11) cannot be
// written back out as parseable text.
const MinMidi = 12

// one letter, at most one accidental, one octave digit
var notePattern = regexp.MustCompile(`^([A-G])([#b])?([0-9])$`)

var letterSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

var letterPositions = map[byte]int{
	'C': 1, 'D': 2, 'E': 3, 'F': 4, 'G': 5, 'A': 6, 'B': 7,
}

// flat spellings, lining up with the flat-based degree space
var pitchClassNames = [12]string{
	"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B",
}

// Parse reads note text like "C4", "Eb3" or "F#5" into a Note with its
// derived midi number.
func Parse(text string) (model.Note, error) {
	m := notePattern.FindStringSubmatch(text)
	if m == nil {
		return model.Note{}, fmt.Errorf("%w: %q", ErrParse, text)
	}

	letter := m[1][0]
	accidental := model.AccidentalNone
	switch m[2] {
	case "#":
		accidental = model.AccidentalSharp
	case "b":
		accidental = model.AccidentalFlat
	}
	octave := int(m[3][0] - '0')

	midi := (octave+1)*12 + letterSemitones[letter] + accidental.Offset()
	return model.Note{
		Letter:     letter,
		Accidental: accidental,
		Octave:     octave,
		Midi:       uint8(midi),
	}, nil
}

// ToDegree labels a note by its diatonic position (C=1..B=7) with the
// accidental marker prefixed, e.g. Eb -> "b3". The label is spelled from
// the note as written, not folded into the chromatic degree space.
func ToDegree(n model.Note) (string, error) {
	pos, ok := letterPositions[n.Letter]
	if !ok {
		return "", fmt.Errorf("unknown note letter: %q", string(n.Letter))
	}
	return fmt.Sprintf("%v%v", n.Accidental.String(), pos), nil
}

// FromMidi spells a midi number as a Note, preferring flats for the
// black keys. Keys below MinMidi spell with octave -1, which Parse will
// not read back; ingest boundaries filter those before building lines.
func FromMidi(midi uint8) model.Note {
	pc := int(midi) % 12
	name := pitchClassNames[pc]
	accidental := model.AccidentalNone
	if len(name) > 1 {
		accidental = model.AccidentalFlat
	}
	return model.Note{
		Letter:     name[0],
		Accidental: accidental,
		Octave:     int(midi)/12 - 1,
		Midi:       midi,
	}
}

// Intervals computes the signed semitone deltas between consecutive
// notes. Empty and singleton inputs yield an empty result.
func Intervals(notes []model.Note) []int {
	if len(notes) < 2 {
		return nil
	}
	res := make([]int, 0, len(notes)-1)
	for i := 1; i < len(notes); i++ {
		res = append(res, int(notes[i].Midi)-int(notes[i-1].Midi))
	}
	return res
}

// ParseAll parses a slice of note texts, failing on the first bad one.
func ParseAll(texts []string) ([]model.Note, error) {
	var res []model.Note
	for _, t := range texts {
		n, err := Parse(t)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}
