package models

// ScoreboardResponse is the raw body returned by the stats scoreboard endpoint.
type ScoreboardResponse struct {
	Resource   string         `json:"resource"`
	Parameters map[string]any `json:"parameters"`
	ResultSets []ResultSet    `json:"resultSets"`
}

type ResultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}
