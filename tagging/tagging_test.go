package tagging

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kentays/jazz-lines/model"
)

func taggedLine(tags ...string) model.Line {
	return model.Line{ID: fmt.Sprintf("%v", tags), Tags: tags}
}

func TestMatchesFunctionKeywords(t *testing.T) {
	cases := []struct {
		tags []string
		want string
	}{
		{[]string{"ii-V major"}, "ii-V major"},
		{[]string{"ii-V minor"}, "ii-V minor"},
		{[]string{"minor ii-v lick"}, "ii-V minor"},
		{[]string{"2-5-1"}, "ii-V major"},
		{[]string{"static minor"}, "Static minor"},
		{[]string{"minor vamp"}, "Static minor"},
		{[]string{"altered dominant"}, "Altered dominant"},
		{[]string{"alt scale"}, "Altered dominant"},
		{[]string{"phrygian dominant"}, "Phrygian dominant"},
		{[]string{"tritone sub"}, "Tritone sub"},
		{[]string{"half-whole diminished"}, "Half/whole diminished"},
		{[]string{"dim run"}, "Half/whole diminished"},
		{[]string{"dominant 7"}, "Dominant 7"},
		{[]string{"Dom7 bebop"}, "Dominant 7"},
		{[]string{"bird blues"}, "Other"},
		{nil, "Other"},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%v -> %v", c.tags, c.want), func(t *testing.T) {
			res := ByFunction([]model.Line{taggedLine(c.tags...)})
			assert.Equal(t, []string{c.want}, res.Order)
		})
	}
}

func TestFirstMatchingRuleWins(t *testing.T) {
	// "altered dominant" mentions dominant, but the altered rule sits
	// above plain dominant in the list
	res := ByFunction([]model.Line{taggedLine("altered dominant 7")})
	assert.Equal(t, []string{"Altered dominant"}, res.Order)
}

func TestGroupsKeepLineOrderAndDropEmptyGroups(t *testing.T) {
	assert := assert.New(t)

	a := taggedLine("ii-V major", "bright")
	b := taggedLine("dominant 7")
	c := taggedLine("ii-V major")
	d := taggedLine("free text nobody curated")

	res := ByFunction([]model.Line{a, b, c, d})

	assert.Equal([]string{"ii-V major", "Dominant 7", FunctionOther}, res.Order)
	assert.Equal([]model.Line{a, c}, res.Groups["ii-V major"])
	assert.Equal([]model.Line{b}, res.Groups["Dominant 7"])
	assert.Equal([]model.Line{d}, res.Groups[FunctionOther])
}

func TestMatchingIsCaseInsensitive(t *testing.T) {
	res := ByFunction([]model.Line{taggedLine("II-V MAJOR")})
	assert.Equal(t, []string{"ii-V major"}, res.Order)
}
