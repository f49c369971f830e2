package tree

import (
	"strings"

	"github.com/alexanderramin/codetree/internal/domain"
	"github.com/sahilm/fuzzy"
)

const (
	// DefaultSeparator joins ancestor names in index labels.
	DefaultSeparator = " → "

	// DefaultSearchLimit caps the number of search hits.
	DefaultSearchLimit = 10
)

// IndexEntry is one searchable row of the label index.
type IndexEntry struct {
	ID    string
	Code  string
	Label string
}

// BuildIndex flattens the tree into one entry per node, in depth-first
// order. Each label is the breadcrumb of names from the root down to the
// node, joined by sep (DefaultSeparator when empty). The index is derived
// from the tree it is given and is not cached.
func BuildIndex(root *domain.Node, sep string) []IndexEntry {
	if root == nil {
		return nil
	}
	if sep == "" {
		sep = DefaultSeparator
	}
	var entries []IndexEntry
	var visit func(n *domain.Node, parentLabel string, top bool)
	visit = func(n *domain.Node, parentLabel string, top bool) {
		label := n.Name
		if !top {
			label = parentLabel + sep + n.Name
		}
		entries = append(entries, IndexEntry{ID: n.ID, Code: n.Code, Label: label})
		for _, c := range n.Children {
			visit(c, label, false)
		}
	}
	visit(root, "", true)
	return entries
}

// Search returns entries whose label contains query, ignoring case, in
// index order. A blank query matches nothing. At most limit entries are
// returned (DefaultSearchLimit when limit <= 0).
func Search(entries []IndexEntry, query string, limit int) []IndexEntry {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	q := strings.ToLower(query)
	var hits []IndexEntry
	for _, e := range entries {
		if !strings.Contains(strings.ToLower(e.Label), q) {
			continue
		}
		hits = append(hits, e)
		if len(hits) == limit {
			break
		}
	}
	return hits
}

// FuzzySearch ranks entries by how well their labels match query as a
// character subsequence, best first.
func FuzzySearch(entries []IndexEntry, query string, limit int) []IndexEntry {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	matches := fuzzy.FindFrom(query, labelSource(entries))
	hits := make([]IndexEntry, 0, min(limit, len(matches)))
	for _, m := range matches {
		if len(hits) == limit {
			break
		}
		hits = append(hits, entries[m.Index])
	}
	return hits
}

type labelSource []IndexEntry

func (s labelSource) String(i int) string { return s[i].Label }
func (s labelSource) Len() int            { return len(s) }
