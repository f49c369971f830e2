package snapshot

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/codetree/internal/tree"
)

// ValidateRecord checks a decoded snapshot before conversion and returns
// every problem found. Only structural fields are checked: codes must parse,
// the node_key and code aliases must agree, and explicit ids must be unique.
func ValidateRecord(rec *NodeRecord) []error {
	if rec == nil || (rec.Name == "" && len(rec.Children) == 0 && rec.NodeKey == nil && rec.Code == "") {
		return []error{errors.New("snapshot has no root node")}
	}
	var errs []error
	ids := make(map[string]bool)
	var visit func(r *NodeRecord, path string)
	visit = func(r *NodeRecord, path string) {
		if r == nil {
			errs = append(errs, fmt.Errorf("%s: null node", path))
			return
		}
		if r.NodeKey != nil && r.Code != "" && *r.NodeKey != r.Code {
			errs = append(errs, fmt.Errorf("%s: node_key %q disagrees with code %q", path, *r.NodeKey, r.Code))
		}
		if code := recordCode(r); code != "" {
			if _, err := tree.ParseCode(code); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", path, err))
			}
		}
		if r.ID != "" {
			if ids[r.ID] {
				errs = append(errs, fmt.Errorf("%s: duplicate id %q", path, r.ID))
			}
			ids[r.ID] = true
		}
		for i, c := range r.Children {
			visit(c, fmt.Sprintf("%s.children[%d]", path, i))
		}
	}
	visit(rec, "tree")
	return errs
}

func recordCode(r *NodeRecord) string {
	if r.NodeKey != nil && *r.NodeKey != "" {
		return *r.NodeKey
	}
	return r.Code
}
