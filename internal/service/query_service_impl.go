package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/codetree/internal/domain"
	"github.com/alexanderramin/codetree/internal/tree"
)

type queryService struct {
	observer UseCaseObserver
}

func NewQueryService(observers ...UseCaseObserver) QueryService {
	return &queryService{observer: useCaseObserverOrNoop(observers)}
}

func (s *queryService) Find(ctx context.Context, root *domain.Node, ref string) (*domain.Node, error) {
	return Resolve(root, ref)
}

// Path returns the nodes from the root down to ref, inclusive.
func (s *queryService) Path(ctx context.Context, root *domain.Node, ref string) ([]*domain.Node, error) {
	target, err := Resolve(root, ref)
	if err != nil {
		return nil, err
	}
	codes, err := tree.AncestorPath(root, target.Code)
	if err != nil {
		return nil, err
	}
	path := make([]*domain.Node, 0, len(codes))
	for _, code := range codes {
		n, err := tree.FindByCode(root, code)
		if err != nil {
			return nil, fmt.Errorf("resolving ancestor: %w", err)
		}
		path = append(path, n)
	}
	return path, nil
}

func (s *queryService) Index(ctx context.Context, root *domain.Node, sep string) []tree.IndexEntry {
	if sep == "" {
		sep = tree.DefaultSeparator
	}
	return tree.BuildIndex(root, sep)
}

func (s *queryService) Search(ctx context.Context, root *domain.Node, req SearchRequest) (hits []tree.IndexEntry, err error) {
	startedAt := time.Now()
	fields := map[string]any{"query": req.Query, "fuzzy": req.Fuzzy}
	defer func() { observe(ctx, s.observer, "search", startedAt, fields, err) }()

	if strings.TrimSpace(req.Query) == "" {
		return nil, fmt.Errorf("search query is empty")
	}
	limit := req.Limit
	if limit <= 0 {
		limit = tree.DefaultSearchLimit
	}

	entries := s.Index(ctx, root, req.Separator)
	if req.Fuzzy {
		hits = tree.FuzzySearch(entries, req.Query, limit)
	} else {
		hits = tree.Search(entries, req.Query, limit)
	}
	fields["hits"] = len(hits)
	return hits, nil
}

func (s *queryService) Validate(ctx context.Context, root *domain.Node) []error {
	errs := tree.Validate(root)
	observe(ctx, s.observer, "validate", time.Now(), map[string]any{"problems": len(errs)}, nil)
	return errs
}
