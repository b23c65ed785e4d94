package domain

import "fmt"

type Node struct {
	ID     string `json:"id" yaml:"id"`
	Row    *Row   `json:"attributes" yaml:"attributes"`
	Hidden *Row   `json:"hidden,omitempty" yaml:"hidden,omitempty"`
}

type Edge struct {
	ID       string `json:"id" yaml:"id"`
	Source   string `json:"source" yaml:"source"`
	Target   string `json:"target" yaml:"target"`
	Directed bool   `json:"directed" yaml:"directed"`
	Row      *Row   `json:"attributes" yaml:"attributes"`
}

// Graph is the construction surface the mappers write through. Normal and
// hidden attributes live in separate rows.
type Graph interface {
	AddNode() *Node
	AddEdge(source, target *Node, directed bool) *Edge
	Attributes() *Row
	HiddenAttributes() *Row
}

// Network is the in-memory Graph.
type Network struct {
	Row    *Row    `json:"attributes" yaml:"attributes"`
	Hidden *Row    `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Nodes  []*Node `json:"nodes" yaml:"nodes"`
	Edges  []*Edge `json:"edges" yaml:"edges"`

	// adjacency for lookups
	byID map[string]*Node
	Out  map[string][]*Edge `json:"-" yaml:"-"`
	In   map[string][]*Edge `json:"-" yaml:"-"`
}

var _ Graph = (*Network)(nil)

func NewNetwork() *Network {
	return &Network{
		Row:    NewRow(),
		Hidden: NewRow(),
		Nodes:  []*Node{},
		Edges:  []*Edge{},
		byID:   map[string]*Node{},
		Out:    map[string][]*Edge{},
		In:     map[string][]*Edge{},
	}
}

func (n *Network) AddNode() *Node {
	node := &Node{
		ID:     fmt.Sprintf("n%d", len(n.Nodes)),
		Row:    NewRow(),
		Hidden: NewRow(),
	}
	n.Nodes = append(n.Nodes, node)
	n.byID[node.ID] = node
	return node
}

func (n *Network) AddEdge(source, target *Node, directed bool) *Edge {
	e := &Edge{
		ID:       fmt.Sprintf("e%d", len(n.Edges)),
		Source:   source.ID,
		Target:   target.ID,
		Directed: directed,
		Row:      NewRow(),
	}
	n.Edges = append(n.Edges, e)
	n.Out[e.Source] = append(n.Out[e.Source], e)
	n.In[e.Target] = append(n.In[e.Target], e)
	return e
}

func (n *Network) Attributes() *Row { return n.Row }

func (n *Network) HiddenAttributes() *Row { return n.Hidden }

func (n *Network) Node(id string) (*Node, bool) {
	node, ok := n.byID[id]
	return node, ok
}

// Name is the network's name attribute.
func (n *Network) Name() string {
	s, _ := n.Row.GetString("name")
	return s
}
