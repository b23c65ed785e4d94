package service

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/logger"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/biopax"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/domain"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/ingest/mapper"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/ingest/parser"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/sif"
	_ "github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/sif/rules"
)

type Mode string

const (
	ModeDefault Mode = "default"
	ModeSIF     Mode = "sif"

	DefaultNetworkName = "BioPAX_Network"
	maxModelName       = 100
)

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ModeDefault):
		return ModeDefault, nil
	case string(ModeSIF):
		return ModeSIF, nil
	}
	return "", fmt.Errorf("unknown mode %q (want default or sif)", s)
}

func (m Mode) suffix() string {
	if m == ModeSIF {
		return " (SIF)"
	}
	return " (Default)"
}

type Options struct {
	Name  string
	Mode  Mode
	Rules []string
}

type Result struct {
	RunID     string          `json:"run_id" yaml:"run_id"`
	Mode      Mode            `json:"mode" yaml:"mode"`
	Network   *domain.Network `json:"network" yaml:"network"`
	Stats     mapper.Stats    `json:"stats" yaml:"stats"`
	Relations int             `json:"relations" yaml:"relations"`
	Rules     []string        `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// Read parses a BioPAX stream. ctx is checked before reading starts.
func Read(ctx context.Context, r io.Reader) (*biopax.Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return parser.Read(r)
}

// Run reads r and builds the network for opts.Mode.
func Run(ctx context.Context, r io.Reader, opts Options) (*Result, error) {
	m, err := Read(ctx, r)
	if err != nil {
		return nil, err
	}
	if opts.Mode == ModeSIF {
		return BuildSIFNetwork(ctx, m, opts.Name, opts.Rules)
	}
	return BuildNetwork(ctx, m, opts.Name)
}

// BuildNetwork maps every entity of m to a node and every participation
// to an edge.
func BuildNetwork(ctx context.Context, m *biopax.Model, name string) (*Result, error) {
	net := domain.NewNetwork()
	stats, err := mapper.New(m).Build(ctx, net, NetworkName(name, m, ModeDefault))
	if err != nil {
		return nil, err
	}
	logger.Info("default network built", "name", net.Name(), "nodes", stats.Nodes, "edges", stats.Edges)
	return &Result{
		RunID:   uuid.NewString(),
		Mode:    ModeDefault,
		Network: net,
		Stats:   stats,
	}, nil
}

// ConvertToSIF normalizes m in place, infers relations with the named
// rules (all when empty) and writes them to w. It returns the number of
// relations written.
func ConvertToSIF(ctx context.Context, m *biopax.Model, ruleNames []string, w io.Writer) (int, error) {
	rules, err := sif.Select(ruleNames...)
	if err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("relation projection: %w", err)
	}
	rels, err := sif.Project(m, rules)
	if err != nil {
		return 0, err
	}
	if err := sif.Write(w, rels); err != nil {
		return 0, err
	}
	return len(rels), nil
}

// BuildSIFNetwork projects m to binary relations and reads them back as a
// network. Nodes whose id names an entity or entity reference of m get
// that element's attributes.
func BuildSIFNetwork(ctx context.Context, m *biopax.Model, name string, ruleNames []string) (*Result, error) {
	var buf bytes.Buffer
	count, err := ConvertToSIF(ctx, m, ruleNames, &buf)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("sif network: %w", err)
	}

	net := domain.NewNetwork()
	nodes, err := sif.ParseSIF(&buf, net)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, domain.ErrEmptyResult
	}

	mp := mapper.New(m)
	for _, node := range nodes {
		id, _ := node.Row.GetString(mapper.AttrName)
		e := m.Get(id)
		if e == nil || !(e.Class.IsEntity() || e.Class.IsEntityReference()) {
			continue
		}
		mp.Annotate(e, node)
	}

	row := net.Attributes()
	row.SetString(mapper.AttrName, NetworkName(name, m, ModeSIF))
	row.SetString(mapper.AttrNetworkType, mapper.NetworkSIF)
	row.SetString(mapper.AttrQuickFind, mapper.AttrName)

	logger.Info("sif network built", "name", net.Name(), "nodes", len(nodes), "relations", count)
	return &Result{
		RunID:     uuid.NewString(),
		Mode:      ModeSIF,
		Network:   net,
		Stats:     mapper.Stats{Nodes: len(net.Nodes), Edges: len(net.Edges)},
		Relations: count,
		Rules:     ruleNamesOf(ruleNames),
	}, nil
}

// NetworkName prefers the caller's name, then the model's own name cut to
// 100 characters, then DefaultNetworkName, and appends the mode suffix.
func NetworkName(input string, m *biopax.Model, mode Mode) string {
	name := strings.TrimSpace(input)
	if name == "" && m != nil {
		name = biopax.ModelName(m)
		if r := []rune(name); len(r) > maxModelName {
			name = string(r[:maxModelName])
		}
	}
	if name == "" {
		name = DefaultNetworkName
	}
	return html.UnescapeString(name + mode.suffix())
}

func ruleNamesOf(names []string) []string {
	rules, err := sif.Select(names...)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.Name())
	}
	return out
}
