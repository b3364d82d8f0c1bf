package model

// RankedItem is one recommended item: its meta row plus the computed
// weighted score.
type RankedItem struct {
	Meta  Row `json:"meta"`
	Score int `json:"score"`
}

// Recommendation is the result of ranking a dataset against a need profile.
type Recommendation struct {
	Need    string       `json:"need"`
	Items   []RankedItem `json:"items"`
	Total   int          `json:"total"` // rows considered (after zero-hit filtering)
	Took    int64        `json:"took"`  // milliseconds
	QueryID string       `json:"query_id"`
}
