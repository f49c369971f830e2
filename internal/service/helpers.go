package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/codetree/internal/domain"
	"github.com/alexanderramin/codetree/internal/tree"
)

// ErrAmbiguousRef is returned when an id prefix matches more than one node.
var ErrAmbiguousRef = errors.New("ambiguous node reference")

// minPrefixLen is the shortest id prefix accepted as a reference.
const minPrefixLen = 4

// Resolve finds the node a reference points at. A reference that parses as
// a dotted code is looked up by code; anything else must be a full id or an
// id prefix of at least four characters matching exactly one node.
func Resolve(root *domain.Node, ref string) (*domain.Node, error) {
	if _, err := tree.ParseCode(ref); err == nil {
		return tree.FindByCode(root, ref)
	}
	if n, err := tree.FindByKey(root, ref); err == nil {
		return n, nil
	}
	if len(ref) < minPrefixLen {
		return nil, fmt.Errorf("node %q: %w", ref, tree.ErrNotFound)
	}

	var matches []*domain.Node
	tree.Walk(root, func(n, _ *domain.Node, _ int) bool {
		if strings.HasPrefix(n.ID, ref) {
			matches = append(matches, n)
		}
		return true
	})
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("node %q: %w", ref, tree.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("node %q matches %d nodes: %w", ref, len(matches), ErrAmbiguousRef)
	}
}

// changedCodes counts nodes present in both trees whose code differs.
func changedCodes(before, after *domain.Node) int {
	old := make(map[string]string)
	tree.Walk(before, func(n, _ *domain.Node, _ int) bool {
		old[n.ID] = n.Code
		return true
	})
	changed := 0
	tree.Walk(after, func(n, _ *domain.Node, _ int) bool {
		if code, ok := old[n.ID]; ok && code != n.Code {
			changed++
		}
		return true
	})
	return changed
}

// formatValidationErrors folds a validation report into one error.
func formatValidationErrors(what string, errs []error) error {
	msg := fmt.Sprintf("%s validation failed (%d errors):", what, len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
