package tree

import (
	"testing"

	"github.com/alexanderramin/codetree/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove_Scenario(t *testing.T) {
	root := testutil.ScenarioTree()

	moved, err := Move(root, "1.2.1", "1.1")
	require.NoError(t, err)

	b, err := FindByCode(moved, "1.1")
	require.NoError(t, err)
	assert.Equal(t, "B", b.Name)
	require.Len(t, b.Children, 1)
	assert.Equal(t, "D", b.Children[0].Name)
	assert.Equal(t, "1.1.1", b.Children[0].Code)

	c, err := FindByCode(moved, "1.2")
	require.NoError(t, err)
	assert.Equal(t, "C", c.Name)
	assert.Empty(t, c.Children)
}

func TestMove_UpdatesParentIDAndDepth(t *testing.T) {
	root := testutil.OrgTree()

	moved, err := Move(root, "1.2.1", "1.3.1")
	require.NoError(t, err)

	rates, err := FindByCode(moved, "1.3.1.1")
	require.NoError(t, err)
	assert.Equal(t, "Rates", rates.Name)
	require.NotNil(t, rates.ParentID)
	assert.Equal(t, 31, *rates.ParentID)
	assert.Equal(t, 3, *rates.Depth)
	assert.Equal(t, 4, *rates.Children[0].Depth)
}

func TestMove_RecodesDescendantsAndSiblings(t *testing.T) {
	root := testutil.OrgTree()

	moved, err := Move(root, "1.2.1", "1.3")
	require.NoError(t, err)

	rates, err := FindByCode(moved, "1.3.2")
	require.NoError(t, err)
	assert.Equal(t, "Rates", rates.Name)
	assert.Equal(t, "1.3.2.1", rates.Children[0].Code)
	assert.Equal(t, "Swaps", rates.Children[0].Name)

	equities, err := FindByCode(moved, "1.2.1")
	require.NoError(t, err)
	assert.Equal(t, "Equities", equities.Name)
	assert.Empty(t, Validate(moved))
}

func TestMove_SameParentMovesToEnd(t *testing.T) {
	root := testutil.OrgTree()

	moved, err := Move(root, "1.1", "1")
	require.NoError(t, err)

	assert.Equal(t, []string{"Markets", "Operations", "Retail"}, testutil.Names(moved))
	assert.Equal(t, "1.3.2", moved.Children[2].Children[1].Code)
	assert.Empty(t, Validate(moved))
}

func TestMove_LeavesInputUntouched(t *testing.T) {
	root := testutil.OrgTree()
	before := root.DeepCopy()

	_, err := Move(root, "1.1.2", "1.2.1.1")
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(before, root))
}

func TestMove_UnderItselfRejected(t *testing.T) {
	root := testutil.OrgTree()

	moved, err := Move(root, "1.2", "1.2")
	assert.Nil(t, moved)
	assert.ErrorIs(t, err, ErrCycle)
}

func TestMove_UnderDescendantRejected(t *testing.T) {
	root := testutil.OrgTree()
	before := root.DeepCopy()

	moved, err := Move(root, "1.2", "1.2.1.1")
	assert.Nil(t, moved)
	assert.ErrorIs(t, err, ErrCycle)
	assert.Empty(t, cmp.Diff(before, root))
}

func TestMove_RootRejected(t *testing.T) {
	_, err := Move(testutil.OrgTree(), "1", "1.1")
	assert.ErrorIs(t, err, ErrRootImmovable)
}

func TestMove_UnknownNode(t *testing.T) {
	_, err := Move(testutil.OrgTree(), "1.9", "1.1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMove_UnknownParentDoesNotDropSubtree(t *testing.T) {
	root := testutil.OrgTree()

	moved, err := Move(root, "1.2.1", "4.4")
	assert.Nil(t, moved)
	assert.ErrorIs(t, err, ErrInvalidDestination)
	assert.Equal(t, 10, Count(root))
}
