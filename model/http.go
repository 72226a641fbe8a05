package model

type ClassifyRequestBody struct {
	EndDegree       string   `json:"end_degree"`
	SequenceIds     []string `json:"sequence_ids"`
	AllowDuplicates bool     `json:"allow_duplicates"`
	ConnectAnywhere bool     `json:"connect_anywhere"`
}

type BucketGroup struct {
	Name  string `json:"name"`
	Lines []Line `json:"lines"`
}

type ClassifyResponse struct {
	Buckets []BucketGroup `json:"buckets"`
}

type CategorizeRequestBody struct {
	LineIds []string `json:"line_ids"`
}

type CategorizeResponse struct {
	Groups []BucketGroup `json:"groups"`
}

type CreateLineRequestBody struct {
	Notes             []string `json:"notes"`
	TripletStartIndex *int     `json:"triplet_start_index,omitempty"`
	Tags              []string `json:"tags,omitempty"`
	Library           string   `json:"library,omitempty"`
	Comment           string   `json:"comment,omitempty"`
}

type LibraryOverview struct {
	Name     string `json:"name"`
	Enabled  bool   `json:"enabled"`
	NumLines int    `json:"num_lines"`
}

type ToggleLibraryRequestBody struct {
	Enabled bool `json:"enabled"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
