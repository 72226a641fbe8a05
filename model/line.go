package model

type LibraryID = string

// Sequence is an ordered performance of lines. Lines are held by value;
// the same line may appear more than once when duplicates are allowed.
type Sequence = []Line

// Line is an ordered note run plus derived metadata. It is treated as an
// immutable value: edits produce a replacement Line carrying the same ID,
// and holders swap old for new by ID lookup.
type Line struct {
	ID                string    `json:"id"`
	Notes             []Note    `json:"notes"`
	Intervals         []int     `json:"intervals"`
	StartDegree       string    `json:"start_degree"`
	EndDegree         string    `json:"end_degree"`
	TripletStartIndex int       `json:"triplet_start_index"`
	Tags              []string  `json:"tags"`
	LibraryID         LibraryID `json:"library_id"`
	Comment           string    `json:"comment,omitempty"`
}

// Length is the note count.
func (l Line) Length() int {
	return len(l.Notes)
}
