package tree

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/codetree/internal/domain"
	"github.com/google/uuid"
)

// NewChild returns a fresh leaf with a new identity key. Its code is
// assigned when it is inserted.
func NewChild(name, typ string) *domain.Node {
	return &domain.Node{
		ID:   uuid.New().String(),
		Name: name,
		Type: typ,
	}
}

// Rename returns a tree in which the node with the given code carries the
// new name. Codes, structure and every other node are unchanged.
func Rename(root *domain.Node, code, name string) (*domain.Node, error) {
	updated, ok := rebuild(root, byCode(code), func(n *domain.Node) *domain.Node {
		cp := n.ShallowCopy()
		cp.Name = name
		return cp
	})
	if !ok {
		return nil, fmt.Errorf("rename: node %q: %w", code, ErrNotFound)
	}
	return updated, nil
}

// Remove detaches the subtree rooted at code. It returns the remaining tree
// and the detached subtree, whose codes are left as they were.
func Remove(root *domain.Node, code string) (*domain.Node, *domain.Node, error) {
	if root == nil {
		return nil, nil, fmt.Errorf("remove: node %q: %w", code, ErrNotFound)
	}
	if root.Code == code {
		return nil, nil, fmt.Errorf("remove: %w", ErrRootImmovable)
	}
	updated, removed := detach(root, code)
	if removed == nil {
		return nil, nil, fmt.Errorf("remove: node %q: %w", code, ErrNotFound)
	}
	return updated, removed, nil
}

// Insert appends subtree as the last child of the node with parentCode and
// recomputes every code.
func Insert(root *domain.Node, parentCode string, subtree *domain.Node) (*domain.Node, error) {
	if subtree == nil {
		return nil, errors.New("insert: nil subtree")
	}
	updated, ok := attach(root, byCode(parentCode), subtree)
	if !ok {
		return nil, fmt.Errorf("insert: parent %q: %w", parentCode, ErrInvalidDestination)
	}
	return RecomputeCodes(updated), nil
}

func byCode(code string) func(*domain.Node) bool {
	return func(n *domain.Node) bool { return n.Code == code }
}

// rebuild copies the path from n down to the first node accepted by match
// and substitutes fn's result for it. Nodes off that path are shared.
func rebuild(n *domain.Node, match func(*domain.Node) bool, fn func(*domain.Node) *domain.Node) (*domain.Node, bool) {
	if n == nil {
		return nil, false
	}
	if match(n) {
		return fn(n), true
	}
	for i, c := range n.Children {
		if updated, ok := rebuild(c, match, fn); ok {
			cp := n.ShallowCopy()
			cp.Children[i] = updated
			return cp, true
		}
	}
	return n, false
}

func detach(n *domain.Node, code string) (*domain.Node, *domain.Node) {
	for i, c := range n.Children {
		if c.Code == code {
			cp := n.ShallowCopy()
			cp.Children = append(cp.Children[:i], cp.Children[i+1:]...)
			if len(cp.Children) == 0 {
				cp.Children = nil
			}
			return cp, c
		}
		if updated, removed := detach(c, code); removed != nil {
			cp := n.ShallowCopy()
			cp.Children[i] = updated
			return cp, removed
		}
	}
	return n, nil
}

func attach(root *domain.Node, match func(*domain.Node) bool, subtree *domain.Node) (*domain.Node, bool) {
	return rebuild(root, match, func(parent *domain.Node) *domain.Node {
		cp := parent.ShallowCopy()
		cp.Children = append(cp.Children, adopt(subtree, parent))
		return cp
	})
}

// adopt returns a copy of subtree that records parent as its parent: the
// numeric parent id follows the parent's hierarchy id and depths are
// re-derived when the parent knows its own.
func adopt(subtree, parent *domain.Node) *domain.Node {
	var cp *domain.Node
	if parent.Depth != nil {
		cp = withDepth(subtree, *parent.Depth+1)
	} else {
		cp = subtree.ShallowCopy()
	}
	cp.ParentID = nil
	if parent.HierID != nil {
		cp.ParentID = domain.IntPtr(*parent.HierID)
	}
	return cp
}

func withDepth(n *domain.Node, depth int) *domain.Node {
	cp := n.ShallowCopy()
	cp.Depth = domain.IntPtr(depth)
	for i, c := range cp.Children {
		cp.Children[i] = withDepth(c, depth+1)
	}
	return cp
}
