// Package capture turns live midi input into lines: notes accumulate as
// they are played, and a silence gap closes the line off.
package capture

import (
	"fmt"
	"sync"
	"time"

	"github.com/bep/debounce"
	"gitlab.com/gomidi/midi/v2"

	"github.com/kentays/jazz-lines/constants"
	"github.com/kentays/jazz-lines/line"
	"github.com/kentays/jazz-lines/model"
	"github.com/kentays/jazz-lines/note"
)

// Handler receives each finished line.
type Handler func(model.Line)

type collector struct {
	mu     sync.Mutex
	notes  []model.Note
	onLine Handler
}

func (c *collector) add(key uint8) {
	// keys under C0 have no parseable spelling and could never be
	// stored, so they never enter a line
	if key < note.MinMidi {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notes = append(c.notes, note.FromMidi(key))
}

func (c *collector) flush() {
	c.mu.Lock()
	notes := c.notes
	c.notes = nil
	c.mu.Unlock()

	if len(notes) == 0 {
		return
	}
	l, err := line.Build(notes, -1)
	if err != nil {
		fmt.Printf("Dropping captured run because: %v\n", err)
		return
	}
	c.onLine(l)
}

// Run listens on the given midi in port and hands each gap-delimited
// line to onLine. The returned stop function flushes any half-played
// line before closing the port.
func Run(portNum int, onLine Handler) (func(), error) {
	in, err := midi.InPort(portNum)
	if err != nil {
		return nil, fmt.Errorf("no midi in port %v: %w", portNum, err)
	}

	c := &collector{onLine: onLine}
	deb := debounce.New(constants.CaptureGapMillis * time.Millisecond)

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		if msg.GetNoteStart(&ch, &key, &vel) {
			c.add(key)
			deb(c.flush)
		}
	})
	if err != nil {
		return nil, err
	}

	return func() {
		stop()
		c.flush()
	}, nil
}
