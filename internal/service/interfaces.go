package service

import (
	"context"
	"io"

	"github.com/alexanderramin/codetree/internal/domain"
	"github.com/alexanderramin/codetree/internal/snapshot"
	"github.com/alexanderramin/codetree/internal/tree"
)

// SnapshotService reads and writes tree snapshot files.
type SnapshotService interface {
	Load(ctx context.Context, path string) (*domain.Node, error)
	Decode(ctx context.Context, r io.Reader, format snapshot.Format) (*domain.Node, error)
	Save(ctx context.Context, path string, root *domain.Node) error
	Encode(ctx context.Context, w io.Writer, root *domain.Node, format snapshot.Format) error
}

// QueryService answers read-only questions about a tree. Node references
// may be dotted codes, full ids or unique id prefixes.
type QueryService interface {
	Find(ctx context.Context, root *domain.Node, ref string) (*domain.Node, error)
	Path(ctx context.Context, root *domain.Node, ref string) ([]*domain.Node, error)
	Index(ctx context.Context, root *domain.Node, sep string) []tree.IndexEntry
	Search(ctx context.Context, root *domain.Node, req SearchRequest) ([]tree.IndexEntry, error)
	Validate(ctx context.Context, root *domain.Node) []error
}

// EditService applies structural changes. Every call returns a new root and
// leaves the input tree untouched.
type EditService interface {
	Rename(ctx context.Context, root *domain.Node, ref, name string) (*EditResult, error)
	Move(ctx context.Context, root *domain.Node, ref, parentRef string) (*EditResult, error)
	Reparent(ctx context.Context, root *domain.Node, ref, destCode string) (*EditResult, error)
	Add(ctx context.Context, root *domain.Node, parentRef, name, typ string) (*EditResult, error)
	Remove(ctx context.Context, root *domain.Node, ref string) (*EditResult, error)
	Recode(ctx context.Context, root *domain.Node) (*EditResult, error)
}

// SearchRequest parameterizes QueryService.Search. Zero values fall back to
// the engine defaults.
type SearchRequest struct {
	Query     string
	Limit     int
	Separator string
	Fuzzy     bool
}

// EditResult holds the outcome of one edit.
type EditResult struct {
	Root *domain.Node
	// Node is the affected node as it appears in Root, or the detached
	// subtree for Remove. Nil for Recode.
	Node *domain.Node
	// OldCode is the node's code before the edit.
	OldCode string
	// Changed counts nodes whose code differs between the old and new tree.
	Changed int
}
