package tree

import (
	"testing"

	"github.com/alexanderramin/codetree/internal/domain"
	"github.com/alexanderramin/codetree/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func scrambledTree() *domain.Node {
	return testutil.NewTestNode("Root", testutil.WithCode("7"), testutil.WithChildren(
		testutil.NewTestNode("X", testutil.WithCode("3.3"), testutil.WithChildren(
			testutil.NewTestNode("X1", testutil.WithCode("3.3.9")),
		)),
		testutil.NewTestNode("Y", testutil.WithCode("3.3")),
		testutil.NewTestNode("Z"),
	))
}

func TestRecomputeCodes_AssignsFromPosition(t *testing.T) {
	recoded := RecomputeCodes(scrambledTree())

	assert.Equal(t, "1", recoded.Code)
	assert.Equal(t, "1.1", recoded.Children[0].Code)
	assert.Equal(t, "1.1.1", recoded.Children[0].Children[0].Code)
	assert.Equal(t, "1.2", recoded.Children[1].Code)
	assert.Equal(t, "1.3", recoded.Children[2].Code)
	assert.Empty(t, Validate(recoded))
}

func TestRecomputeCodes_Idempotent(t *testing.T) {
	once := RecomputeCodes(scrambledTree())
	twice := RecomputeCodes(once)

	assert.Empty(t, cmp.Diff(once, twice))
	assert.Same(t, once, twice)
}

func TestRecomputeCodes_ConsistentTreeShared(t *testing.T) {
	root := testutil.OrgTree()
	assert.Same(t, root, RecomputeCodes(root))
}

func TestRecomputeCodes_LeavesInputUntouched(t *testing.T) {
	root := scrambledTree()
	before := root.DeepCopy()

	RecomputeCodes(root)

	assert.Empty(t, cmp.Diff(before, root))
}

func TestRecomputeCodes_Nil(t *testing.T) {
	assert.Nil(t, RecomputeCodes(nil))
}
