package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/codetree/internal/domain"
	"github.com/alexanderramin/codetree/internal/tree"
)

type editService struct {
	observer UseCaseObserver
}

func NewEditService(observers ...UseCaseObserver) EditService {
	return &editService{observer: useCaseObserverOrNoop(observers)}
}

func (s *editService) Rename(ctx context.Context, root *domain.Node, ref, name string) (res *EditResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"ref": ref}
	defer func() { observe(ctx, s.observer, "rename", startedAt, fields, err) }()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("new name is empty")
	}
	target, err := Resolve(root, ref)
	if err != nil {
		return nil, err
	}
	fields["code"] = target.Code

	next, err := tree.Rename(root, target.Code, name)
	if err != nil {
		return nil, err
	}
	return s.result(root, next, target)
}

func (s *editService) Move(ctx context.Context, root *domain.Node, ref, parentRef string) (res *EditResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"ref": ref, "parent": parentRef}
	defer func() { observe(ctx, s.observer, "move", startedAt, fields, err) }()

	target, err := Resolve(root, ref)
	if err != nil {
		return nil, err
	}
	parent, err := Resolve(root, parentRef)
	if err != nil {
		return nil, fmt.Errorf("new parent: %w: %w", tree.ErrInvalidDestination, err)
	}

	next, err := tree.Move(root, target.Code, parent.Code)
	if err != nil {
		return nil, err
	}
	res, err = s.result(root, next, target)
	if err == nil {
		fields["new_code"] = res.Node.Code
		fields["changed"] = res.Changed
	}
	return res, err
}

func (s *editService) Reparent(ctx context.Context, root *domain.Node, ref, destCode string) (res *EditResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"ref": ref, "dest": destCode}
	defer func() { observe(ctx, s.observer, "reparent", startedAt, fields, err) }()

	target, err := Resolve(root, ref)
	if err != nil {
		return nil, err
	}
	next, err := tree.Reparent(root, target.Code, destCode)
	if err != nil {
		return nil, err
	}
	res, err = s.result(root, next, target)
	if err == nil {
		fields["changed"] = res.Changed
	}
	return res, err
}

func (s *editService) Add(ctx context.Context, root *domain.Node, parentRef, name, typ string) (res *EditResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"parent": parentRef, "type": typ}
	defer func() { observe(ctx, s.observer, "add", startedAt, fields, err) }()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("node name is empty")
	}
	parent, err := Resolve(root, parentRef)
	if err != nil {
		return nil, fmt.Errorf("parent: %w: %w", tree.ErrInvalidDestination, err)
	}

	child := tree.NewChild(name, typ)
	next, err := tree.Insert(root, parent.Code, child)
	if err != nil {
		return nil, err
	}
	res, err = s.result(root, next, child)
	if err == nil {
		fields["code"] = res.Node.Code
	}
	return res, err
}

func (s *editService) Remove(ctx context.Context, root *domain.Node, ref string) (res *EditResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"ref": ref}
	defer func() { observe(ctx, s.observer, "remove", startedAt, fields, err) }()

	target, err := Resolve(root, ref)
	if err != nil {
		return nil, err
	}
	rest, removed, err := tree.Remove(root, target.Code)
	if err != nil {
		return nil, err
	}
	next := tree.RecomputeCodes(rest)
	fields["removed"] = tree.Count(removed)
	return &EditResult{
		Root:    next,
		Node:    removed,
		OldCode: target.Code,
		Changed: changedCodes(root, next),
	}, nil
}

func (s *editService) Recode(ctx context.Context, root *domain.Node) (res *EditResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "recode", startedAt, fields, err) }()

	if root == nil {
		return nil, fmt.Errorf("recode: empty tree")
	}
	next := tree.RecomputeCodes(root)
	res = &EditResult{Root: next, Changed: changedCodes(root, next)}
	fields["changed"] = res.Changed
	return res, nil
}

// result re-resolves the edited node in the new tree by its stable id.
func (s *editService) result(before, after, target *domain.Node) (*EditResult, error) {
	node, err := tree.FindByKey(after, target.ID)
	if err != nil {
		return nil, fmt.Errorf("locating edited node: %w", err)
	}
	return &EditResult{
		Root:    after,
		Node:    node,
		OldCode: target.Code,
		Changed: changedCodes(before, after),
	}, nil
}
