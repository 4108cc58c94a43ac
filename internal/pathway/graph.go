package pathway

import (
	"fmt"
	"slices"
)

// Graph is an immutable decision tree built once from NodeSpecs. Nodes live
// in an arena and reference each other by index.
type Graph struct {
	nodes []Node
	byKey map[string]NodeID
	start NodeID
}

// Build resolves specs into a Graph rooted at start. It fails if any
// reference dangles, the graph has a cycle, or a node is unreachable.
func Build(start string, specs []NodeSpec) (*Graph, error) {
	if err := validateSpecs(start, specs); err != nil {
		return nil, err
	}

	g := &Graph{
		nodes: make([]Node, len(specs)),
		byKey: make(map[string]NodeID, len(specs)),
	}
	for i, s := range specs {
		g.byKey[s.Key] = NodeID(i)
	}
	for i, s := range specs {
		n := Node{
			ID:       NodeID(i),
			Key:      s.Key,
			Question: s.Question,
			Options:  slices.Clone(s.Options),
			next:     make([]NodeID, len(s.Options)),
		}
		for j, o := range s.Options {
			n.next[j] = noNode
			if !o.Terminal() {
				n.next[j] = g.byKey[o.Next]
			}
		}
		g.nodes[i] = n
	}
	g.start = g.byKey[start]
	return g, nil
}

// MustBuild is like Build but panics on invalid data. Intended for
// package-level trees.
func MustBuild(start string, specs []NodeSpec) *Graph {
	g, err := Build(start, specs)
	if err != nil {
		panic(err)
	}
	return g
}

// Start returns the root node.
func (g *Graph) Start() Node {
	return g.node(g.start)
}

// Node returns the node with the given key.
func (g *Graph) Node(key string) (Node, error) {
	id, ok := g.byKey[key]
	if !ok {
		return Node{}, fmt.Errorf("pathway node not found: %q", key)
	}
	return g.node(id), nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Nodes returns all nodes in authoring order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	for i := range g.nodes {
		out[i] = g.node(NodeID(i))
	}
	return out
}

// Outcomes returns every diagnosis reachable in the tree, in authoring order
// and without duplicates.
func (g *Graph) Outcomes() []string {
	seen := make(map[string]bool)
	var out []string
	for _, n := range g.nodes {
		for _, o := range n.Options {
			if o.Diagnosis != "" && !seen[o.Diagnosis] {
				seen[o.Diagnosis] = true
				out = append(out, o.Diagnosis)
			}
		}
	}
	return out
}

func (g *Graph) node(id NodeID) Node {
	n := g.nodes[id]
	n.Options = slices.Clone(n.Options)
	return n
}
