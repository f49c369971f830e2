package testutil

import (
	"strconv"

	"github.com/alexanderramin/codetree/internal/domain"
	"github.com/google/uuid"
)

// NodeOption configures a node built by NewTestNode.
type NodeOption func(*domain.Node)

func WithCode(code string) NodeOption {
	return func(n *domain.Node) {
		n.Code = code
	}
}

func WithType(t string) NodeOption {
	return func(n *domain.Node) {
		n.Type = t
	}
}

func WithID(id string) NodeOption {
	return func(n *domain.Node) {
		n.ID = id
	}
}

func WithHierID(id int) NodeOption {
	return func(n *domain.Node) {
		n.HierID = &id
	}
}

func WithParentID(id int) NodeOption {
	return func(n *domain.Node) {
		n.ParentID = &id
	}
}

func WithDepth(d int) NodeOption {
	return func(n *domain.Node) {
		n.Depth = &d
	}
}

func WithChildren(children ...*domain.Node) NodeOption {
	return func(n *domain.Node) {
		n.Children = append(n.Children, children...)
	}
}

// NewTestNode builds a node with a fresh UUID and the "business_line" type.
func NewTestNode(name string, opts ...NodeOption) *domain.Node {
	n := &domain.Node{
		ID:   uuid.New().String(),
		Name: name,
		Type: "business_line",
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NewTestTree assigns positional codes, depths (root at 0) and numeric
// parent ids to a freshly built tree in place and returns it.
func NewTestTree(root *domain.Node) *domain.Node {
	number(root, nil, domain.RootCode, 0)
	return root
}

func number(n, parent *domain.Node, code string, depth int) {
	n.Code = code
	n.Depth = domain.IntPtr(depth)
	n.ParentID = nil
	if parent != nil && parent.HierID != nil {
		n.ParentID = domain.IntPtr(*parent.HierID)
	}
	for i, c := range n.Children {
		number(c, n, code+"."+strconv.Itoa(i+1), depth+1)
	}
}

// ScenarioTree returns
//
//	1     A
//	1.1   B
//	1.2   C
//	1.2.1 D
func ScenarioTree() *domain.Node {
	return NewTestTree(NewTestNode("A", WithHierID(100), WithType("root"), WithChildren(
		NewTestNode("B", WithHierID(110)),
		NewTestNode("C", WithHierID(120), WithChildren(
			NewTestNode("D", WithHierID(121), WithType("desk")),
		)),
	)))
}

// OrgTree returns a three-level business-line hierarchy with ten nodes.
//
//	1       Group
//	1.1     Retail
//	1.1.1   Cards
//	1.1.2   Mortgages
//	1.2     Markets
//	1.2.1   Rates
//	1.2.1.1 Swaps
//	1.2.2   Equities
//	1.3     Operations
//	1.3.1   Payments
func OrgTree() *domain.Node {
	return NewTestTree(NewTestNode("Group", WithHierID(1), WithType("group"), WithChildren(
		NewTestNode("Retail", WithHierID(10), WithChildren(
			NewTestNode("Cards", WithHierID(11), WithType("desk")),
			NewTestNode("Mortgages", WithHierID(12), WithType("desk")),
		)),
		NewTestNode("Markets", WithHierID(20), WithChildren(
			NewTestNode("Rates", WithHierID(21), WithType("desk"), WithChildren(
				NewTestNode("Swaps", WithHierID(211), WithType("book")),
			)),
			NewTestNode("Equities", WithHierID(22), WithType("desk")),
		)),
		NewTestNode("Operations", WithHierID(30), WithChildren(
			NewTestNode("Payments", WithHierID(31), WithType("desk")),
		)),
	)))
}

// Names returns the names of n's children in order.
func Names(n *domain.Node) []string {
	names := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		names = append(names, c.Name)
	}
	return names
}
