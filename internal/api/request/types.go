package request

// Cell is one step of a submitted tile path
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SubmitWord is the body for POST /sessions/{id}/words
type SubmitWord struct {
	Path []Cell `json:"path"`
}
