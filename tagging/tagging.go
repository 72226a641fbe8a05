// Package tagging groups lines by harmonic function, matched from their
// free-text tags. It only affects how a bucket is displayed, never which
// lines are eligible to connect.
package tagging

import (
	"strings"

	"github.com/kentays/jazz-lines/model"
)

const FunctionOther = "Other"

type rule struct {
	name string
	// a line matches when any keyword appears in its lower-cased tag
	// text; when requires is set, that word must appear too
	keywords []string
	requires string
}

// rules are checked in order and the first match wins, so the more
// specific qualities sit above plain "dominant".
var rules = []rule{
	{name: "ii-V minor", keywords: []string{"ii-v", "2-5", "iiv"}, requires: "minor"},
	{name: "ii-V major", keywords: []string{"ii-v", "2-5", "iiv"}},
	{name: "Static minor", keywords: []string{"static minor", "minor"}},
	{name: "Altered dominant", keywords: []string{"alt"}},
	{name: "Phrygian dominant", keywords: []string{"phrygian"}},
	{name: "Tritone sub", keywords: []string{"tritone"}},
	{name: "Half/whole diminished", keywords: []string{"dim"}},
	{name: "Dominant 7", keywords: []string{"dominant", "dom7", "dom 7"}},
}

// FunctionOrder is the display order of function groups, rule order
// followed by the catch-all.
var FunctionOrder = functionOrder()

func functionOrder() []string {
	var res []string
	for _, r := range rules {
		res = append(res, r.name)
	}
	return append(res, FunctionOther)
}

type Result struct {
	Order  []string
	Groups map[string][]model.Line
}

// ByFunction partitions lines into harmonic-function groups. Lines whose
// tags match no rule fall to Other; that is also where untagged lines
// land. Empty groups are dropped from Order.
func ByFunction(lines []model.Line) Result {
	groups := make(map[string][]model.Line)
	for _, l := range lines {
		name := functionFor(l)
		groups[name] = append(groups[name], l)
	}

	var order []string
	for _, name := range FunctionOrder {
		if len(groups[name]) > 0 {
			order = append(order, name)
		}
	}
	return Result{Order: order, Groups: groups}
}

func functionFor(l model.Line) string {
	text := strings.ToLower(strings.Join(l.Tags, " "))
	for _, r := range rules {
		if r.requires != "" && !strings.Contains(text, r.requires) {
			continue
		}
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return r.name
			}
		}
	}
	return FunctionOther
}
