package domain

import "time"

// RunSummary records one conversion for later lookup.
type RunSummary struct {
	ID          string    `json:"id"`
	RunID       string    `json:"run_id"`
	Mode        string    `json:"mode"`
	NetworkName string    `json:"network_name"`
	Nodes       int       `json:"nodes"`
	Edges       int       `json:"edges"`
	Relations   int       `json:"relations"`
	Rules       []string  `json:"rules"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
