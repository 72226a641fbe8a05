// Package smfio renders sequences of lines to standard MIDI files and
// pulls monophonic note runs back out of them.
package smfio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/kentays/jazz-lines/constants"
	"github.com/kentays/jazz-lines/model"
	"github.com/kentays/jazz-lines/note"
)

const (
	eighthTicks  = constants.ExportPPQ / 2
	tripletTicks = constants.ExportPPQ / 3
	velocity     = 100
)

// WriteSequence renders lines back to back on an eighth-note grid, with
// each line's triplet group squeezed into the space of two eighths.
func WriteSequence(seq model.Sequence, w io.Writer) error {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.ExportPPQ)

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(120))

	for _, l := range seq {
		for i, n := range l.Notes {
			tr.Add(0, midi.NoteOn(0, n.Midi, velocity))
			tr.Add(noteTicks(l, i), midi.NoteOff(0, n.Midi))
		}
	}
	tr.Close(0)

	if err := s.Add(tr); err != nil {
		return fmt.Errorf("add track: %w", err)
	}
	_, err := s.WriteTo(w)
	return err
}

// WriteSequenceFile is WriteSequence to a file path.
func WriteSequenceFile(seq model.Sequence, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteSequence(seq, f)
}

func noteTicks(l model.Line, i int) uint32 {
	if l.TripletStartIndex >= 0 &&
		i >= l.TripletStartIndex && i < l.TripletStartIndex+3 {
		return tripletTicks
	}
	return eighthTicks
}

// ReadNotes extracts the note-on run from a midi file in onset order,
// spelled with flats. Keys below C0 are skipped: their octave has no
// note-text spelling, so a line holding one could never be re-parsed.
// The smf reader can panic on hostile input, so that is fenced off here
// the same way parse errors are.
func ReadNotes(path string) (res []model.Note, e error) {
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading midi file: %w", err)
	}
	s, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("parsing midi file: %w", err)
	}
	return notesFrom(s), nil
}

type onset struct {
	ticks int64
	key   uint8
}

func notesFrom(s *smf.SMF) []model.Note {
	var onsets []onset
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, vel uint8
			// velocity 0 is a running-status note off, not an onset
			if event.Message.GetNoteOn(&channel, &key, &vel) && vel > 0 && key >= note.MinMidi {
				onsets = append(onsets, onset{ticks: absTicks, key: key})
			}
		}
	}
	sort.SliceStable(onsets, func(i, j int) bool {
		return onsets[i].ticks < onsets[j].ticks
	})

	var res []model.Note
	for _, o := range onsets {
		res = append(res, note.FromMidi(o.key))
	}
	return res
}
