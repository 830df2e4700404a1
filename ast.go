package peg

// Node is the default AST node shape: the same id and span as the Match
// it was built from, its children (owned), and a non-owning back
// reference to its parent, nil at the root.
type Node struct {
	ID       int
	Span     Span
	Children []*Node
	Parent   *Node
}

// NodeFactory builds the AST node for one Match, given its already-built
// children. A custom factory may look at m.ID to decide how to build the
// *Node (for example which children to keep), or reject the tree by
// returning a non-nil error.
type NodeFactory func(m Match, children []*Node) (*Node, error)

// DefaultFactory builds a generic Node for every match id, copying its
// span from the match directly.
func DefaultFactory(m Match, children []*Node) (*Node, error) {
	return &Node{ID: m.ID, Span: m.Span, Children: children}, nil
}

// Project walks a Match tree bottom-up and builds the corresponding AST,
// using factory (DefaultFactory if nil) to construct each node. Parent
// links are filled in after each node's factory call returns.
func Project(m Match, factory NodeFactory) (*Node, error) {
	if factory == nil {
		factory = DefaultFactory
	}
	children := make([]*Node, 0, len(m.Children))
	for _, cm := range m.Children {
		cn, err := Project(cm, factory)
		if err != nil {
			return nil, err
		}
		children = append(children, cn)
	}
	node, err := factory(m, children)
	if err != nil {
		return nil, err
	}
	for _, c := range children {
		c.Parent = node
	}
	return node, nil
}

// ProjectAll projects every top-level match in matches, in order.
func ProjectAll(matches []Match, factory NodeFactory) ([]*Node, error) {
	nodes := make([]*Node, 0, len(matches))
	for _, m := range matches {
		n, err := Project(m, factory)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
