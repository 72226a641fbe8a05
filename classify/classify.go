// Package classify buckets candidate lines by their music-theoretic
// relationship to the end of the current sequence.
package classify

import (
	"github.com/kentays/jazz-lines/degree"
	"github.com/kentays/jazz-lines/model"
)

const (
	BucketTied          = "Tied"
	BucketHalfStepUp    = "Half-step up"
	BucketHalfStepDown  = "Half-step down"
	BucketWholeStepUp   = "Whole-step up"
	BucketWholeStepDown = "Whole-step down"
	BucketChordToneUp   = "Chord-tone up"
	BucketChordToneDown = "Chord-tone down"
)

// BucketOrder is the fixed display order for post-selection buckets.
// Empty buckets are shown, not dropped.
var BucketOrder = []string{
	BucketTied,
	BucketHalfStepUp,
	BucketHalfStepDown,
	BucketWholeStepUp,
	BucketWholeStepDown,
	BucketChordToneUp,
	BucketChordToneDown,
}

type Options struct {
	// AllowDuplicates keeps candidates that already appear in the
	// current sequence.
	AllowDuplicates bool
	// ConnectAnywhere forces start-degree grouping even when the
	// sequence has a last line.
	ConnectAnywhere bool
	// Enabled filters candidates by library; nil means every library
	// is enabled.
	Enabled func(model.LibraryID) bool
}

// Result is an ordered partition: Order lists bucket names for display,
// Buckets holds the member lines in library insertion order.
type Result struct {
	Order   []string
	Buckets map[string][]model.Line
}

// Classify partitions candidates relative to endDegree, the end degree
// of the last line in the current sequence. An empty endDegree (or the
// ConnectAnywhere option) means no line has been picked yet, and
// candidates group purely by start degree. Candidates from disabled
// libraries are dropped, as are ones already in the sequence unless
// duplicates are allowed.
func Classify(endDegree string, candidates []model.Line, current model.Sequence, opts Options) Result {
	eligible := filter(candidates, current, opts)

	if endDegree == "" || opts.ConnectAnywhere {
		return groupByStartDegree(eligible)
	}

	res := Result{
		Order:   BucketOrder,
		Buckets: make(map[string][]model.Line, len(BucketOrder)),
	}
	for _, name := range BucketOrder {
		res.Buckets[name] = []model.Line{}
	}

	endIdx, ok := degree.Index(endDegree)
	if !ok {
		// nothing can relate to an unresolvable end degree
		return res
	}

	for _, cand := range eligible {
		name, ok := bucketFor(endIdx, cand)
		if !ok {
			continue
		}
		res.Buckets[name] = append(res.Buckets[name], cand)
	}
	return res
}

// bucketFor names the relationship bucket for a candidate, or reports
// false when the candidate is not surfaced at all: an unresolvable start
// degree, or a start that is neither a step nor the nearest chord tone
// in either direction.
func bucketFor(endIdx int, cand model.Line) (string, bool) {
	s, ok := degree.Index(cand.StartDegree)
	if !ok {
		return "", false
	}
	if s == endIdx {
		return BucketTied, true
	}

	fwd := degree.ForwardDistance(endIdx, s)
	switch degree.CircularDistance(endIdx, s) {
	case 1:
		if fwd == 1 {
			return BucketHalfStepUp, true
		}
		return BucketHalfStepDown, true
	case 2:
		if fwd == 2 {
			return BucketWholeStepUp, true
		}
		return BucketWholeStepDown, true
	}

	if s == degree.NearestChordToneAbove(endIdx) {
		return BucketChordToneUp, true
	}
	if s == degree.NearestChordToneBelow(endIdx) {
		return BucketChordToneDown, true
	}
	return "", false
}

func filter(candidates []model.Line, current model.Sequence, opts Options) []model.Line {
	inSequence := make(map[string]bool, len(current))
	for _, l := range current {
		inSequence[l.ID] = true
	}

	var res []model.Line
	for _, cand := range candidates {
		if opts.Enabled != nil && !opts.Enabled(cand.LibraryID) {
			continue
		}
		if !opts.AllowDuplicates && inSequence[cand.ID] {
			continue
		}
		res = append(res, cand)
	}
	return res
}

// groupByStartDegree is the no-sequence-yet mode: one bucket per
// distinct start degree, canonical members first in chromatic order,
// then any stray labels in the order they were encountered.
func groupByStartDegree(eligible []model.Line) Result {
	buckets := make(map[string][]model.Line)
	var strays []string
	for _, cand := range eligible {
		if _, seen := buckets[cand.StartDegree]; !seen {
			if _, ok := degree.Index(cand.StartDegree); !ok {
				strays = append(strays, cand.StartDegree)
			}
		}
		buckets[cand.StartDegree] = append(buckets[cand.StartDegree], cand)
	}

	var order []string
	for _, label := range degree.ScaleOrder {
		if _, ok := buckets[label]; ok {
			order = append(order, label)
		}
	}
	order = append(order, strays...)

	return Result{Order: order, Buckets: buckets}
}
