package tree

import "github.com/alexanderramin/codetree/internal/domain"

// RecomputeCodes assigns "1" to the root and <parent>.<i> (1-based) to every
// child, walking depth-first. Subtrees whose codes are already correct are
// returned as-is, so a second call yields the identical tree.
func RecomputeCodes(root *domain.Node) *domain.Node {
	if root == nil {
		return nil
	}
	return assignCodes(root, domain.RootCode)
}

func assignCodes(n *domain.Node, code string) *domain.Node {
	var children []*domain.Node
	for i, c := range n.Children {
		updated := assignCodes(c, ChildCode(code, i))
		if updated != c && children == nil {
			children = make([]*domain.Node, len(n.Children))
			copy(children, n.Children)
		}
		if children != nil {
			children[i] = updated
		}
	}
	if n.Code == code && children == nil {
		return n
	}
	cp := *n
	cp.Code = code
	if children != nil {
		cp.Children = children
	}
	return &cp
}
