package pathway

// NodeID indexes a node within a Graph.
type NodeID int

// noNode marks a terminal option.
const noNode NodeID = -1

// Option is one answer offered by a node. An empty Next means the option
// ends the walk; Diagnosis and Info annotate the outcome and may accompany a
// transition.
type Option struct {
	Text      string
	Next      string
	Diagnosis string
	Info      string
}

// Terminal reports whether the option has no next node.
func (o Option) Terminal() bool {
	return o.Next == ""
}

// NodeSpec is the authoring form of a node, keyed by string.
type NodeSpec struct {
	Key      string
	Question string
	Options  []Option
}

// Node is a resolved node in a built Graph.
type Node struct {
	ID       NodeID
	Key      string
	Question string
	Options  []Option

	next []NodeID // resolved Options[i].Next, noNode when terminal
}

// Terminal reports whether every option of n ends the walk.
func (n Node) Terminal() bool {
	for _, id := range n.next {
		if id != noNode {
			return false
		}
	}
	return true
}
