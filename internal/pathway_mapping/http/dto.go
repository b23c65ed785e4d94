package http

import (
	"time"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/domain"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/ingest/mapper"
)

// NetworkResponse is the rendered network body. The run id travels in
// the X-Run-Id header so the body depends only on the request.
type NetworkResponse struct {
	Mode      string          `json:"mode"`
	Name      string          `json:"name"`
	Stats     mapper.Stats    `json:"stats"`
	Relations int             `json:"relations,omitempty"`
	Rules     []string        `json:"rules,omitempty"`
	Network   *domain.Network `json:"network"`
}

// cachedRun is one cached conversion: the rendered body plus the counts
// needed to record a new run when it is served again.
type cachedRun struct {
	Mode      string   `json:"mode"`
	Name      string   `json:"name"`
	Nodes     int      `json:"nodes"`
	Edges     int      `json:"edges"`
	Relations int      `json:"relations,omitempty"`
	Rules     []string `json:"rules,omitempty"`
	Format    string   `json:"format"`
	Body      []byte   `json:"body"`
}

func (r cachedRun) summary(runID string) *domain.RunSummary {
	return &domain.RunSummary{
		RunID:       runID,
		Mode:        r.Mode,
		NetworkName: r.Name,
		Nodes:       r.Nodes,
		Edges:       r.Edges,
		Relations:   r.Relations,
		Rules:       r.Rules,
	}
}

type RuleResponse struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Directed bool   `json:"directed"`
}

type Neo4jPushResponse struct {
	RunID    string    `json:"run_id"`
	Name     string    `json:"name"`
	Nodes    int       `json:"nodes"`
	Edges    int       `json:"edges"`
	PushedAt time.Time `json:"pushed_at"`
}
