package tree

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/codetree/internal/domain"
)

// Validate checks the structural code invariants of a tree and returns every
// violation found: the root code must be "1", each child's code must be
// <parent code>.<1-based index>, and codes and identity keys must be unique.
func Validate(root *domain.Node) []error {
	if root == nil {
		return []error{errors.New("tree is empty")}
	}
	var errs []error
	if root.Code != domain.RootCode {
		errs = append(errs, fmt.Errorf("root %q has code %q, want %q: %w",
			root.Name, root.Code, domain.RootCode, ErrCodeMismatch))
	}

	codes := make(map[string]bool)
	ids := make(map[string]bool)
	var visit func(n *domain.Node, want string)
	visit = func(n *domain.Node, want string) {
		if n != root && n.Code != want {
			errs = append(errs, fmt.Errorf("node %q has code %q, position gives %q: %w",
				n.Name, n.Code, want, ErrCodeMismatch))
		}
		if codes[n.Code] {
			errs = append(errs, fmt.Errorf("node %q: code %q: %w", n.Name, n.Code, ErrDuplicateCode))
		}
		codes[n.Code] = true
		if n.ID != "" {
			if ids[n.ID] {
				errs = append(errs, fmt.Errorf("node %q: duplicate key %q", n.Name, n.ID))
			}
			ids[n.ID] = true
		}
		for i, c := range n.Children {
			visit(c, ChildCode(n.Code, i))
		}
	}
	visit(root, domain.RootCode)
	return errs
}
