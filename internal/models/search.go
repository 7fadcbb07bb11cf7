package models

// SearchFilters narrows a text search. All fields are optional; MaxResults is
// capped at the upstream hard limit of 20.
type SearchFilters struct {
	Center     *GeoPoint
	Radius     float64
	Categories []string
	MaxResults int
}

// QueryResult is the per-query breakdown entry of a bulk search.
type QueryResult struct {
	Query  string           `json:"query"`
	Places []CanonicalPlace `json:"places"`
	Count  int              `json:"count"`
	Error  string           `json:"error,omitempty"`
}
