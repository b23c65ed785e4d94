package http

import (
	"context"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/domain"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/graph/export"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/repository"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/style"
)

// SummaryStore persists run summaries.
type SummaryStore interface {
	CreateOrUpdate(ctx context.Context, s *domain.RunSummary) error
	GetByRunID(ctx context.Context, runID string) (*domain.RunSummary, error)
}

// NetworkStore persists serialized networks per run.
type NetworkStore interface {
	Save(ctx context.Context, runID, format string, payload []byte) error
	Load(ctx context.Context, runID string) ([]byte, string, error)
}

// Deps wires the handler. Nil stores and a nil Neo4j runner switch the
// matching features off.
type Deps struct {
	Cache        *repository.ResultCache
	Summaries    SummaryStore
	Networks     NetworkStore
	Styles       *style.Cache
	Neo4j        export.Runner
	DefaultRules []string
	MaxUpload    int64
}

// Handler handles HTTP requests for BioPAX conversions
type Handler struct {
	cache        *repository.ResultCache
	summaries    SummaryStore
	networks     NetworkStore
	styles       *style.Cache
	neo4j        export.Runner
	defaultRules []string
	maxUpload    int64
}

const defaultMaxUpload = 32 << 20

func New(d Deps) *Handler {
	h := &Handler{
		cache:        d.Cache,
		summaries:    d.Summaries,
		networks:     d.Networks,
		styles:       d.Styles,
		neo4j:        d.Neo4j,
		defaultRules: d.DefaultRules,
		maxUpload:    d.MaxUpload,
	}
	if h.styles == nil {
		h.styles = style.NewCache()
	}
	if h.maxUpload <= 0 {
		h.maxUpload = defaultMaxUpload
	}
	return h
}
