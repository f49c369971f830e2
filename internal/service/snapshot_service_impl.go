package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/codetree/internal/domain"
	"github.com/alexanderramin/codetree/internal/snapshot"
	"github.com/alexanderramin/codetree/internal/tree"
)

type snapshotService struct {
	observer UseCaseObserver
}

func NewSnapshotService(observers ...UseCaseObserver) SnapshotService {
	return &snapshotService{observer: useCaseObserverOrNoop(observers)}
}

func (s *snapshotService) Load(ctx context.Context, path string) (root *domain.Node, err error) {
	startedAt := time.Now()
	fields := map[string]any{"path": path}
	defer func() { observe(ctx, s.observer, "load-snapshot", startedAt, fields, err) }()

	rec, err := snapshot.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	root, err = s.convert(rec)
	if err != nil {
		return nil, err
	}
	fields["node_count"] = tree.Count(root)
	return root, nil
}

func (s *snapshotService) Decode(ctx context.Context, r io.Reader, format snapshot.Format) (root *domain.Node, err error) {
	startedAt := time.Now()
	fields := map[string]any{"format": string(format)}
	defer func() { observe(ctx, s.observer, "decode-snapshot", startedAt, fields, err) }()

	rec, err := snapshot.Decode(r, format)
	if err != nil {
		return nil, err
	}
	root, err = s.convert(rec)
	if err != nil {
		return nil, err
	}
	fields["node_count"] = tree.Count(root)
	return root, nil
}

func (s *snapshotService) convert(rec *snapshot.NodeRecord) (*domain.Node, error) {
	if errs := snapshot.ValidateRecord(rec); len(errs) > 0 {
		return nil, formatValidationErrors("snapshot", errs)
	}
	return snapshot.Convert(rec), nil
}

func (s *snapshotService) Save(ctx context.Context, path string, root *domain.Node) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"path": path, "node_count": tree.Count(root)}
	defer func() { observe(ctx, s.observer, "save-snapshot", startedAt, fields, err) }()

	if root == nil {
		return fmt.Errorf("saving snapshot: empty tree")
	}
	if err := snapshot.Save(path, snapshot.FromDomain(root)); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

func (s *snapshotService) Encode(_ context.Context, w io.Writer, root *domain.Node, format snapshot.Format) error {
	if root == nil {
		return fmt.Errorf("encoding snapshot: empty tree")
	}
	return snapshot.Encode(w, snapshot.FromDomain(root), format)
}
