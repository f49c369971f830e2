package formatter

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/alexanderramin/codetree/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences for stripping before golden comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes from a string so golden files
// are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// goldenTest compares got against a golden file in testdata/<name>.golden.
// Set GOLDEN_UPDATE=1 to regenerate golden files.
func goldenTest(t *testing.T, name, got string) {
	t.Helper()

	goldenPath := filepath.Join("testdata", name+".golden")
	stripped := stripANSI(got)

	if os.Getenv("GOLDEN_UPDATE") == "1" {
		require.NoError(t, os.MkdirAll("testdata", 0755))
		require.NoError(t, os.WriteFile(goldenPath, []byte(stripped), 0644))
		t.Logf("updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if os.IsNotExist(err) {
		t.Fatalf("golden file %s does not exist; run with GOLDEN_UPDATE=1 to create it", goldenPath)
	}
	require.NoError(t, err)

	assert.Equal(t, string(expected), stripped,
		"output does not match golden file %s; run with GOLDEN_UPDATE=1 to update", goldenPath)
}

func TestRenderNodeTree_Golden_Scenario(t *testing.T) {
	goldenTest(t, "tree_scenario", RenderNodeTree(testutil.ScenarioTree(), TreeOptions{}))
}

func TestRenderNodeTree_Golden_Org(t *testing.T) {
	goldenTest(t, "tree_org", RenderNodeTree(testutil.OrgTree(), TreeOptions{}))
}
