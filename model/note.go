package model

import "strconv"

// Accidental is a single chromatic alteration on a note letter.
type Accidental uint8

const (
	AccidentalNone Accidental = iota
	AccidentalSharp
	AccidentalFlat
)

// Offset returns the semitone adjustment for the accidental.
func (a Accidental) Offset() int {
	switch a {
	case AccidentalSharp:
		return 1
	case AccidentalFlat:
		return -1
	}
	return 0
}

func (a Accidental) String() string {
	switch a {
	case AccidentalSharp:
		return "#"
	case AccidentalFlat:
		return "b"
	}
	return ""
}

// Note is a single parsed pitch. It is immutable once constructed;
// editing octave or accidental means re-parsing, never mutating.
type Note struct {
	Letter     byte       `json:"letter"`
	Accidental Accidental `json:"accidental"`
	Octave     int        `json:"octave"`
	Midi       uint8      `json:"midi"`
}

func (n Note) String() string {
	return string(n.Letter) + n.Accidental.String() + strconv.Itoa(n.Octave)
}
