// Package library is the bookkeeping layer around the core: named,
// independently toggleable collections of lines, plus by-ID replacement
// so an edited line propagates into every sequence that holds it.
package library

import (
	"fmt"
	"sync"

	"github.com/kentays/jazz-lines/constants"
	"github.com/kentays/jazz-lines/model"
)

type Library struct {
	Name    string
	Enabled bool
	Lines   []model.Line
}

// Registry holds every known library. The core itself stays stateless;
// a Registry is the application-state struct the presentation layer owns
// and passes into classification per call.
type Registry struct {
	mu    sync.RWMutex
	libs  map[string]*Library
	order []string
}

func NewRegistry() *Registry {
	return &Registry{libs: make(map[string]*Library)}
}

// Ensure creates the named library if it does not exist yet. New
// libraries start enabled.
func (r *Registry) Ensure(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLocked(name)
}

func (r *Registry) ensureLocked(name string) *Library {
	if lib, ok := r.libs[name]; ok {
		return lib
	}
	lib := &Library{Name: name, Enabled: true}
	r.libs[name] = lib
	r.order = append(r.order, name)
	return lib
}

// Add appends a line to its library, defaulting to the user library when
// the line carries none.
func (r *Registry) Add(l model.Line) model.Line {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l.LibraryID == "" {
		l.LibraryID = constants.DefaultLibrary
	}
	lib := r.ensureLocked(l.LibraryID)
	lib.Lines = append(lib.Lines, l)
	return l
}

// SetEnabled toggles a library; unknown names are an error rather than a
// silent create.
func (r *Registry) SetEnabled(name string, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lib, ok := r.libs[name]
	if !ok {
		return fmt.Errorf("no such library: %q", name)
	}
	lib.Enabled = enabled
	return nil
}

// Enabled reports whether a library is enabled. Unknown libraries read
// as disabled, which keeps their lines out of classification.
func (r *Registry) Enabled(name model.LibraryID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lib, ok := r.libs[name]
	return ok && lib.Enabled
}

// Candidates returns every line across all libraries in insertion order.
// Disabled libraries are included; the classifier applies the enabled
// filter itself.
func (r *Registry) Candidates() []model.Line {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var res []model.Line
	for _, name := range r.order {
		res = append(res, r.libs[name].Lines...)
	}
	return res
}

// Find looks a line up by ID.
func (r *Registry) Find(id string) (model.Line, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.order {
		for _, l := range r.libs[name].Lines {
			if l.ID == id {
				return l, true
			}
		}
	}
	return model.Line{}, false
}

// ReplaceLine swaps every occurrence of updated.ID — in its library and
// in the given sequence — for the updated value, returning the rewritten
// sequence. Matching is by ID, so it survives a save/load round trip.
func (r *Registry) ReplaceLine(updated model.Line, seq model.Sequence) model.Sequence {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, name := range r.order {
		lib := r.libs[name]
		for i, l := range lib.Lines {
			if l.ID == updated.ID {
				lib.Lines[i] = updated
			}
		}
	}

	res := make(model.Sequence, len(seq))
	for i, l := range seq {
		if l.ID == updated.ID {
			res[i] = updated
		} else {
			res[i] = l
		}
	}
	return res
}

// Overviews summarizes each library for listing endpoints.
func (r *Registry) Overviews() []model.LibraryOverview {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var res []model.LibraryOverview
	for _, name := range r.order {
		lib := r.libs[name]
		res = append(res, model.LibraryOverview{
			Name:     name,
			Enabled:  lib.Enabled,
			NumLines: len(lib.Lines),
		})
	}
	return res
}
