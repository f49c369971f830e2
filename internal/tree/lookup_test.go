package tree

import (
	"testing"

	"github.com/alexanderramin/codetree/internal/domain"
	"github.com/alexanderramin/codetree/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByCode_Root(t *testing.T) {
	root := testutil.ScenarioTree()

	n, err := FindByCode(root, "1")
	require.NoError(t, err)
	assert.Same(t, root, n)
}

func TestFindByCode_Nested(t *testing.T) {
	root := testutil.ScenarioTree()

	n, err := FindByCode(root, "1.2.1")
	require.NoError(t, err)
	assert.Equal(t, "D", n.Name)
}

func TestFindByCode_NotFound(t *testing.T) {
	root := testutil.ScenarioTree()

	n, err := FindByCode(root, "9.9")
	assert.Nil(t, n)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindByCode_NilRoot(t *testing.T) {
	_, err := FindByCode(nil, "1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindByKey(t *testing.T) {
	root := testutil.OrgTree()
	swaps := root.Children[1].Children[0].Children[0]

	n, err := FindByKey(root, swaps.ID)
	require.NoError(t, err)
	assert.Equal(t, "1.2.1.1", n.Code)
}

func TestFindByKey_SurvivesMove(t *testing.T) {
	root := testutil.OrgTree()
	rates := root.Children[1].Children[0]

	moved, err := Move(root, "1.2.1", "1.3")
	require.NoError(t, err)

	n, err := FindByKey(moved, rates.ID)
	require.NoError(t, err)
	assert.Equal(t, "1.3.2", n.Code)
	assert.Equal(t, "Rates", n.Name)
}

func TestFindByKey_NotFound(t *testing.T) {
	root := testutil.ScenarioTree()

	_, err := FindByKey(root, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = FindByKey(root, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAncestorPath(t *testing.T) {
	root := testutil.OrgTree()

	path, err := AncestorPath(root, "1.2.1.1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "1.2", "1.2.1", "1.2.1.1"}, path)
}

func TestAncestorPath_Root(t *testing.T) {
	path, err := AncestorPath(testutil.OrgTree(), "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, path)
}

func TestAncestorPath_AfterSiblingBranch(t *testing.T) {
	// The search backtracks out of 1.1 and 1.2 before reaching 1.3.1.
	path, err := AncestorPath(testutil.OrgTree(), "1.3.1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "1.3", "1.3.1"}, path)
}

func TestAncestorPath_NotFound(t *testing.T) {
	path, err := AncestorPath(testutil.OrgTree(), "1.4")
	assert.Nil(t, path)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWalk_PreOrderWithParentsAndLevels(t *testing.T) {
	root := testutil.ScenarioTree()

	var visited []string
	parents := map[string]string{}
	levels := map[string]int{}
	Walk(root, func(n, parent *domain.Node, level int) bool {
		visited = append(visited, n.Name)
		if parent != nil {
			parents[n.Name] = parent.Name
		}
		levels[n.Name] = level
		return true
	})

	assert.Equal(t, []string{"A", "B", "C", "D"}, visited)
	assert.Equal(t, "C", parents["D"])
	assert.Equal(t, 2, levels["D"])
	assert.Equal(t, 0, levels["A"])
}

func TestWalk_SkipChildren(t *testing.T) {
	root := testutil.ScenarioTree()

	var visited []string
	Walk(root, func(n, _ *domain.Node, _ int) bool {
		visited = append(visited, n.Name)
		return n.Name != "C"
	})

	assert.Equal(t, []string{"A", "B", "C"}, visited)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 4, Count(testutil.ScenarioTree()))
	assert.Equal(t, 10, Count(testutil.OrgTree()))
	assert.Equal(t, 0, Count(nil))
}
