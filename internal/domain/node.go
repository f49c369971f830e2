package domain

// Node is one entry of a classification tree. Code is derived from the
// node's position; ID is the position-independent identity.
//
// A Node that has been returned from an engine operation is treated as
// immutable: operations copy the nodes they change and share the rest.
type Node struct {
	ID       string
	Name     string
	Type     string
	Code     string
	HierID   *int
	ParentID *int
	Depth    *int
	Children []*Node
}

// RootCode is the code of the tree root.
const RootCode = "1"

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// ShallowCopy returns a copy of n with its own Children slice. The children
// themselves are shared.
func (n *Node) ShallowCopy() *Node {
	cp := *n
	if n.Children != nil {
		cp.Children = make([]*Node, len(n.Children))
		copy(cp.Children, n.Children)
	}
	return &cp
}

// DeepCopy returns a fully independent copy of the subtree rooted at n.
func (n *Node) DeepCopy() *Node {
	if n == nil {
		return nil
	}
	cp := *n
	cp.HierID = copyIntPtr(n.HierID)
	cp.ParentID = copyIntPtr(n.ParentID)
	cp.Depth = copyIntPtr(n.Depth)
	if n.Children != nil {
		cp.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			cp.Children[i] = c.DeepCopy()
		}
	}
	return &cp
}
