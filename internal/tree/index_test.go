package tree

import (
	"testing"

	"github.com/alexanderramin/codetree/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codesOf(entries []IndexEntry) []string {
	codes := make([]string, 0, len(entries))
	for _, e := range entries {
		codes = append(codes, e.Code)
	}
	return codes
}

func TestBuildIndex_Breadcrumbs(t *testing.T) {
	root := testutil.ScenarioTree()

	entries := BuildIndex(root, "")

	require.Len(t, entries, 4)
	assert.Equal(t, IndexEntry{ID: root.ID, Code: "1", Label: "A"}, entries[0])
	assert.Equal(t, "A → B", entries[1].Label)
	assert.Equal(t, "A → C", entries[2].Label)
	assert.Equal(t, "A → C → D", entries[3].Label)
	assert.Equal(t, "1.2.1", entries[3].Code)
}

func TestBuildIndex_CustomSeparator(t *testing.T) {
	entries := BuildIndex(testutil.ScenarioTree(), " / ")
	assert.Equal(t, "A / C / D", entries[3].Label)
}

func TestBuildIndex_ReflectsLatestTree(t *testing.T) {
	root := testutil.ScenarioTree()
	moved, err := Move(root, "1.2.1", "1.1")
	require.NoError(t, err)
	renamed, err := Rename(moved, "1.1", "Bravo")
	require.NoError(t, err)

	entries := BuildIndex(renamed, "")

	assert.Equal(t, []string{"1", "1.1", "1.1.1", "1.2"}, codesOf(entries))
	assert.Equal(t, "A → Bravo → D", entries[2].Label)
}

func TestBuildIndex_Nil(t *testing.T) {
	assert.Nil(t, BuildIndex(nil, ""))
}

func TestSearch_CaseInsensitiveContainment(t *testing.T) {
	entries := BuildIndex(testutil.OrgTree(), "")

	hits := Search(entries, "RATES", 0)

	assert.Equal(t, []string{"1.2.1", "1.2.1.1"}, codesOf(hits))
}

func TestSearch_MatchesAncestorNames(t *testing.T) {
	entries := BuildIndex(testutil.OrgTree(), "")

	hits := Search(entries, "retail", 0)

	assert.Equal(t, []string{"1.1", "1.1.1", "1.1.2"}, codesOf(hits))
}

func TestSearch_BlankQuery(t *testing.T) {
	entries := BuildIndex(testutil.OrgTree(), "")

	assert.Nil(t, Search(entries, "", 5))
	assert.Nil(t, Search(entries, "   ", 5))
}

func TestSearch_Limit(t *testing.T) {
	entries := BuildIndex(testutil.OrgTree(), "")

	hits := Search(entries, "group", 3)
	assert.Equal(t, []string{"1", "1.1", "1.1.1"}, codesOf(hits))

	assert.Len(t, Search(entries, "group", 0), DefaultSearchLimit)
}

func TestSearch_NoMatch(t *testing.T) {
	entries := BuildIndex(testutil.OrgTree(), "")
	assert.Empty(t, Search(entries, "zzz", 0))
}

func TestFuzzySearch_Subsequence(t *testing.T) {
	entries := BuildIndex(testutil.OrgTree(), "")

	hits := FuzzySearch(entries, "Swp", 0)

	require.Len(t, hits, 1)
	assert.Equal(t, "1.2.1.1", hits[0].Code)
}

func TestFuzzySearch_Limit(t *testing.T) {
	entries := BuildIndex(testutil.OrgTree(), "")

	assert.Len(t, FuzzySearch(entries, "Group", 2), 2)
}

func TestFuzzySearch_BlankQuery(t *testing.T) {
	entries := BuildIndex(testutil.OrgTree(), "")
	assert.Nil(t, FuzzySearch(entries, " ", 0))
}
