package mapper

import (
	"fmt"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/domain"
)

// IdentityIndex joins source element URIs to emitted nodes.
type IdentityIndex struct {
	nodes map[string]*domain.Node
}

func NewIdentityIndex() *IdentityIndex {
	return &IdentityIndex{nodes: map[string]*domain.Node{}}
}

func (x *IdentityIndex) NodeFor(uri string) (*domain.Node, bool) {
	n, ok := x.nodes[uri]
	return n, ok
}

// Bind records the node of uri. Binding a uri twice is a bug in the caller
// and panics.
func (x *IdentityIndex) Bind(uri string, n *domain.Node) {
	if _, dup := x.nodes[uri]; dup {
		panic(fmt.Sprintf("mapper: %s is already bound to a node", uri))
	}
	x.nodes[uri] = n
}

func (x *IdentityIndex) Len() int { return len(x.nodes) }
