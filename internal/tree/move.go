package tree

import (
	"fmt"

	"github.com/alexanderramin/codetree/internal/domain"
)

// Move detaches the subtree at nodeCode, appends it as the last child of
// the node at newParentCode and recomputes every code.
//
// Moving the root fails with ErrRootImmovable, moving a node beneath itself
// or one of its descendants fails with ErrCycle, and an unknown parent fails
// with ErrInvalidDestination. On failure the input tree is untouched.
func Move(root *domain.Node, nodeCode, newParentCode string) (*domain.Node, error) {
	node, err := FindByCode(root, nodeCode)
	if err != nil {
		return nil, fmt.Errorf("move: %w", err)
	}
	if node == root {
		return nil, fmt.Errorf("move: %w", ErrRootImmovable)
	}
	if find(node, byCode(newParentCode)) != nil {
		return nil, fmt.Errorf("move %q under %q: %w", nodeCode, newParentCode, ErrCycle)
	}
	if _, err := FindByCode(root, newParentCode); err != nil {
		return nil, fmt.Errorf("move: parent %q: %w", newParentCode, ErrInvalidDestination)
	}

	detached, removed, err := Remove(root, nodeCode)
	if err != nil {
		return nil, fmt.Errorf("move: %w", err)
	}
	attached, ok := attach(detached, byCode(newParentCode), removed)
	if !ok {
		return nil, fmt.Errorf("move: parent %q: %w", newParentCode, ErrInvalidDestination)
	}
	return RecomputeCodes(attached), nil
}
