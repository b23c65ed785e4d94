package sif

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/domain"
)

const (
	AttrDataSource  = "datasource"
	AttrPublication = "publication"
	AttrPathway     = "pathway"

	maxLine = 1 << 20
)

// ParseSIF reads lines written by Write back into g. Every distinct
// participant id becomes a node whose name is the id; every line becomes a
// directed edge. The created nodes are returned in creation order.
func ParseSIF(r io.Reader, g domain.Graph) ([]*domain.Node, error) {
	var nodes []*domain.Node
	byID := map[string]*domain.Node{}
	nodeFor := func(id string) *domain.Node {
		if n, ok := byID[id]; ok {
			return n
		}
		n := g.AddNode()
		n.Row.SetString("name", id)
		byID[id] = n
		nodes = append(nodes, n)
		return n
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		parts := strings.Split(text, "\t")
		if len(parts) < 6 {
			return nodes, fmt.Errorf("bad SIF entry at line %d: %q", line, text)
		}
		src, dst := nodeFor(parts[0]), nodeFor(parts[2])
		edge := g.AddEdge(src, dst, true)
		edge.Row.SetString("interaction", parts[1])
		edge.Row.SetString("name", fmt.Sprintf("%s (%s) %s", parts[0], parts[1], parts[2]))
		setList(edge.Row, AttrDataSource, parts[3])
		setList(edge.Row, AttrPublication, parts[4])
		setList(edge.Row, AttrPathway, parts[5])
	}
	if err := sc.Err(); err != nil {
		return nodes, fmt.Errorf("read SIF: %w", err)
	}
	return nodes, nil
}

func setList(row *domain.Row, k, field string) {
	if field == "" {
		return
	}
	row.SetList(k, strings.Split(field, ";"))
}
