package tree

import (
	"fmt"

	"github.com/alexanderramin/codetree/internal/domain"
)

// FindByCode returns the first node, in depth-first order, whose code
// matches. Codes are unique in a consistent tree.
func FindByCode(root *domain.Node, code string) (*domain.Node, error) {
	if n := find(root, func(n *domain.Node) bool { return n.Code == code }); n != nil {
		return n, nil
	}
	return nil, fmt.Errorf("node %q: %w", code, ErrNotFound)
}

// FindByKey returns the node whose stable identity key matches. Unlike the
// code, the key survives moves, so callers holding a reference across a
// structural change re-resolve it here.
func FindByKey(root *domain.Node, key string) (*domain.Node, error) {
	if key == "" {
		return nil, fmt.Errorf("empty key: %w", ErrNotFound)
	}
	if n := find(root, func(n *domain.Node) bool { return n.ID == key }); n != nil {
		return n, nil
	}
	return nil, fmt.Errorf("key %q: %w", key, ErrNotFound)
}

// AncestorPath returns the codes from the root down to and including the
// node with the given code.
func AncestorPath(root *domain.Node, code string) ([]string, error) {
	var path []string
	if !collectPath(root, code, &path) {
		return nil, fmt.Errorf("node %q: %w", code, ErrNotFound)
	}
	return path, nil
}

func collectPath(n *domain.Node, code string, path *[]string) bool {
	if n == nil {
		return false
	}
	*path = append(*path, n.Code)
	if n.Code == code {
		return true
	}
	for _, c := range n.Children {
		if collectPath(c, code, path) {
			return true
		}
	}
	*path = (*path)[:len(*path)-1]
	return false
}

// Visitor is called for each node in pre-order with its parent (nil for the
// root) and its 0-based level. Returning false skips the node's children.
type Visitor func(n, parent *domain.Node, level int) bool

// Walk visits every node of the tree in depth-first pre-order.
func Walk(root *domain.Node, fn Visitor) {
	walk(root, nil, 0, fn)
}

func walk(n, parent *domain.Node, level int, fn Visitor) {
	if n == nil {
		return
	}
	if !fn(n, parent, level) {
		return
	}
	for _, c := range n.Children {
		walk(c, n, level+1, fn)
	}
}

// Count returns the number of nodes in the tree.
func Count(root *domain.Node) int {
	total := 0
	Walk(root, func(*domain.Node, *domain.Node, int) bool {
		total++
		return true
	})
	return total
}

func find(n *domain.Node, match func(*domain.Node) bool) *domain.Node {
	if n == nil {
		return nil
	}
	if match(n) {
		return n
	}
	for _, c := range n.Children {
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}
