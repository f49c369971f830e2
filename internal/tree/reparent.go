package tree

import (
	"fmt"

	"github.com/alexanderramin/codetree/internal/domain"
)

// Reparent relocates the subtree at nodeCode so that it carries destCode.
// A single-segment destination places the node directly under the root;
// otherwise the parent is the node whose code is destCode minus its last
// segment. The node is appended as that parent's last child and its code is
// set to destCode as given, with its descendants re-derived beneath it.
// Siblings are not renumbered; run RecomputeCodes to bring codes back in
// line with positions.
//
// The operation is rejected with ErrDuplicateCode when destCode, or any code
// beneath it, is already held by another node.
func Reparent(root *domain.Node, nodeCode, destCode string) (*domain.Node, error) {
	segs, err := ParseCode(destCode)
	if err != nil {
		return nil, fmt.Errorf("reparent: %w", err)
	}
	node, err := FindByCode(root, nodeCode)
	if err != nil {
		return nil, fmt.Errorf("reparent: %w", err)
	}
	if node == root {
		return nil, fmt.Errorf("reparent: %w", ErrRootImmovable)
	}

	parentCode, nested := ParentCode(destCode)
	if nested && find(node, byCode(parentCode)) != nil {
		return nil, fmt.Errorf("reparent %q to %q: %w", nodeCode, destCode, ErrCycle)
	}

	detached, removed, err := Remove(root, nodeCode)
	if err != nil {
		return nil, fmt.Errorf("reparent: %w", err)
	}

	parent := detached
	if len(segs) > 1 {
		parent, err = FindByCode(detached, parentCode)
		if err != nil {
			return nil, fmt.Errorf("reparent: parent %q: %w", parentCode, ErrInvalidDestination)
		}
	}

	if taken := find(detached, func(n *domain.Node) bool { return IsWithin(n.Code, destCode) }); taken != nil {
		return nil, fmt.Errorf("reparent: %q held by %q: %w", destCode, taken.Name, ErrDuplicateCode)
	}

	relocated := assignCodes(adopt(removed, parent), destCode)
	updated, _ := rebuild(detached, func(n *domain.Node) bool { return n == parent }, func(p *domain.Node) *domain.Node {
		cp := p.ShallowCopy()
		cp.Children = append(cp.Children, relocated)
		return cp
	})
	return updated, nil
}
