package pathway

import (
	"errors"
	"slices"
)

// ErrNoSuchOption is returned by ChooseIndex for an out-of-range index.
var ErrNoSuchOption = errors.New("no such option at current node")

// Navigator walks a Graph one choice at a time and records the path taken.
// It is not safe for concurrent use; each walk owns its own Navigator.
type Navigator struct {
	g         *Graph
	current   NodeID
	path      []string
	diagnosis string
	info      string
	diagnosed bool
	finished  bool
}

// NewNavigator starts a walk at the graph's start node.
func NewNavigator(g *Graph) *Navigator {
	n := &Navigator{g: g}
	n.Reset()
	return n
}

// Reset returns to the start node and clears any outcome.
func (n *Navigator) Reset() {
	n.current = n.g.start
	n.path = []string{n.g.nodes[n.g.start].Key}
	n.diagnosis = ""
	n.info = ""
	n.diagnosed = false
	n.finished = false
}

// Choose applies opt. A next key moves the walk and extends the path; a
// diagnosis records the outcome. Both may happen in one step. The option is
// not checked against the current node; a next key unknown to the graph
// leaves the position unchanged.
func (n *Navigator) Choose(opt Option) {
	if !opt.Terminal() {
		if id, ok := n.g.byKey[opt.Next]; ok {
			n.current = id
			n.path = append(n.path, opt.Next)
		}
	}
	if opt.Diagnosis != "" {
		n.diagnosis = opt.Diagnosis
		n.info = opt.Info
		n.diagnosed = true
		n.finished = opt.Terminal()
	}
}

// ChooseIndex applies the i-th option of the current node.
func (n *Navigator) ChooseIndex(i int) error {
	opts := n.g.nodes[n.current].Options
	if i < 0 || i >= len(opts) {
		return ErrNoSuchOption
	}
	n.Choose(opts[i])
	return nil
}

// Current returns the node being displayed.
func (n *Navigator) Current() Node {
	return n.g.node(n.current)
}

// Path returns the keys visited so far, starting with the start node.
func (n *Navigator) Path() []string {
	return slices.Clone(n.path)
}

// Diagnosis returns the recorded outcome, if any.
func (n *Navigator) Diagnosis() (string, bool) {
	return n.diagnosis, n.diagnosed
}

// Info returns the note attached to the recorded outcome.
func (n *Navigator) Info() string {
	return n.info
}

// Terminal reports whether the current node offers no further transitions.
func (n *Navigator) Terminal() bool {
	return n.g.nodes[n.current].Terminal()
}

// Done reports whether the last choice ended the walk with a diagnosis. An
// option that records a diagnosis and also moves on leaves the walk open.
func (n *Navigator) Done() bool {
	return n.finished
}
