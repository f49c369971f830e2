package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/codetree/internal/testutil"
	"github.com/alexanderramin/codetree/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEditService(t *testing.T) (EditService, *recordingObserver) {
	t.Helper()
	obs := &recordingObserver{}
	return NewEditService(obs), obs
}

func TestEditService_Rename(t *testing.T) {
	svc, obs := setupEditService(t)
	root := testutil.OrgTree()

	res, err := svc.Rename(context.Background(), root, "1.2.1", "  Rates & Credit ")
	require.NoError(t, err)

	assert.Equal(t, "Rates & Credit", res.Node.Name)
	assert.Equal(t, "1.2.1", res.Node.Code)
	assert.Equal(t, "1.2.1", res.OldCode)
	assert.Zero(t, res.Changed)
	assert.Equal(t, "Rates", root.Children[1].Children[0].Name, "input tree untouched")

	ev := obs.last(t)
	assert.Equal(t, "rename", ev.Name)
	assert.True(t, ev.Success)
}

func TestEditService_RenameRejectsBlankName(t *testing.T) {
	svc, obs := setupEditService(t)

	_, err := svc.Rename(context.Background(), testutil.OrgTree(), "1.1", "   ")
	require.Error(t, err)
	assert.False(t, obs.last(t).Success)
}

func TestEditService_MoveByIDReResolvesNode(t *testing.T) {
	svc, obs := setupEditService(t)
	root := testutil.OrgTree()
	retail := root.Children[0]

	res, err := svc.Move(context.Background(), root, retail.ID, "1.3")
	require.NoError(t, err)

	assert.Equal(t, retail.ID, res.Node.ID)
	assert.Equal(t, "1.2.2", res.Node.Code)
	assert.Equal(t, "1.1", res.OldCode)
	assert.Equal(t, 9, res.Changed)
	assert.Empty(t, tree.Validate(res.Root))
	assert.Equal(t, "1.2.2", obs.last(t).Fields["new_code"])
}

func TestEditService_MoveUnknownParent(t *testing.T) {
	svc, _ := setupEditService(t)

	_, err := svc.Move(context.Background(), testutil.OrgTree(), "1.1", "1.9")
	assert.ErrorIs(t, err, tree.ErrInvalidDestination)
	assert.ErrorIs(t, err, tree.ErrNotFound)
}

func TestEditService_MoveIntoDescendant(t *testing.T) {
	svc, _ := setupEditService(t)

	_, err := svc.Move(context.Background(), testutil.OrgTree(), "1.2", "1.2.1.1")
	assert.ErrorIs(t, err, tree.ErrCycle)
}

func TestEditService_Reparent(t *testing.T) {
	svc, _ := setupEditService(t)
	root := testutil.OrgTree()

	res, err := svc.Reparent(context.Background(), root, "1.2.2", "1.1.3")
	require.NoError(t, err)

	assert.Equal(t, "Equities", res.Node.Name)
	assert.Equal(t, "1.1.3", res.Node.Code)
	assert.Equal(t, []string{"Cards", "Mortgages", "Equities"}, testutil.Names(res.Root.Children[0]))
	assert.Equal(t, 1, res.Changed)
}

func TestEditService_ReparentTakenCode(t *testing.T) {
	svc, _ := setupEditService(t)

	_, err := svc.Reparent(context.Background(), testutil.OrgTree(), "1.2.2", "1.1.1")
	assert.ErrorIs(t, err, tree.ErrDuplicateCode)
}

func TestEditService_Add(t *testing.T) {
	svc, _ := setupEditService(t)
	root := testutil.OrgTree()

	res, err := svc.Add(context.Background(), root, "1.3", "Custody", "desk")
	require.NoError(t, err)

	assert.Equal(t, "1.3.2", res.Node.Code)
	assert.Equal(t, "desk", res.Node.Type)
	assert.NotEmpty(t, res.Node.ID)
	require.NotNil(t, res.Node.ParentID)
	assert.Equal(t, 30, *res.Node.ParentID)
	assert.Equal(t, tree.Count(root)+1, tree.Count(res.Root))
}

func TestEditService_AddUnknownParent(t *testing.T) {
	svc, _ := setupEditService(t)

	_, err := svc.Add(context.Background(), testutil.OrgTree(), "1.7", "X", "desk")
	assert.ErrorIs(t, err, tree.ErrInvalidDestination)
}

func TestEditService_Remove(t *testing.T) {
	svc, obs := setupEditService(t)
	root := testutil.OrgTree()

	res, err := svc.Remove(context.Background(), root, "1.1")
	require.NoError(t, err)

	assert.Equal(t, "Retail", res.Node.Name)
	assert.Equal(t, tree.Count(root)-3, tree.Count(res.Root))
	assert.Equal(t, "Markets", res.Root.Children[0].Name)
	assert.Equal(t, "1.1", res.Root.Children[0].Code)
	assert.Empty(t, tree.Validate(res.Root))
	assert.Equal(t, 3, obs.last(t).Fields["removed"])
}

func TestEditService_RemoveRoot(t *testing.T) {
	svc, _ := setupEditService(t)

	_, err := svc.Remove(context.Background(), testutil.OrgTree(), "1")
	assert.ErrorIs(t, err, tree.ErrRootImmovable)
}

func TestEditService_Recode(t *testing.T) {
	svc, _ := setupEditService(t)
	root := testutil.OrgTree()
	drifted, err := tree.Reparent(root, "1.1.2", "1.3.5")
	require.NoError(t, err)

	res, err := svc.Recode(context.Background(), drifted)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Changed)
	assert.Empty(t, tree.Validate(res.Root))

	again, err := svc.Recode(context.Background(), res.Root)
	require.NoError(t, err)
	assert.Zero(t, again.Changed)
	assert.Same(t, res.Root, again.Root)
}
