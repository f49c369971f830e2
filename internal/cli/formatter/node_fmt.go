package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/codetree/internal/domain"
	"github.com/alexanderramin/codetree/internal/tree"
)

// FormatNodeDetail renders the inspect view of a node: identifiers, its
// breadcrumb and a table of its direct children.
func FormatNodeDetail(n *domain.Node, path []*domain.Node, sep string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n\n", Bold(n.Name), TypeStyle(n.Type).Render(n.Type)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("CODE   "), n.Code))
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("ID     "), TruncID(n.ID)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("HIER ID"), OptionalInt(n.HierID)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("PARENT "), OptionalInt(n.ParentID)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("DEPTH  "), OptionalInt(n.Depth)))
	if len(path) > 1 {
		b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("PATH   "), FormatBreadcrumb(path[:len(path)-1], sep)))
	}

	if len(n.Children) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Children"))
		b.WriteString("\n")
		rows := make([][]string, 0, len(n.Children))
		for _, c := range n.Children {
			rows = append(rows, []string{
				c.Code,
				c.Name,
				c.Type,
				fmt.Sprintf("%d", tree.Count(c)-1),
			})
		}
		b.WriteString(RenderTable([]string{"CODE", "NAME", "TYPE", "BELOW"}, rows))
	}

	return RenderBox("Node", b.String())
}

// FormatBreadcrumb joins node names from the root down.
func FormatBreadcrumb(path []*domain.Node, sep string) string {
	if sep == "" {
		sep = tree.DefaultSeparator
	}
	names := make([]string, len(path))
	for i, n := range path {
		names[i] = n.Name
	}
	return strings.Join(names, Dim(sep))
}

// FormatPathCodes lists each ancestor on its own line as "code  name".
func FormatPathCodes(path []*domain.Node) string {
	var b strings.Builder
	for _, n := range path {
		b.WriteString(fmt.Sprintf("%s  %s\n", Dim(n.Code), n.Name))
	}
	return b.String()
}

// FormatIndex renders index or search entries as a CODE / LABEL table.
func FormatIndex(entries []tree.IndexEntry) string {
	if len(entries) == 0 {
		return Dim("No matches.") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Code, e.Label})
	}
	return RenderTable([]string{"CODE", "LABEL"}, rows)
}

// FormatValidation renders a structural validation report.
func FormatValidation(errs []error, nodeCount int) string {
	if len(errs) == 0 {
		return Success(fmt.Sprintf("Tree is consistent (%s)", Plural(nodeCount, "node"))) + "\n"
	}
	var b strings.Builder
	b.WriteString(Failure(fmt.Sprintf("%s found", Plural(len(errs), "problem"))) + "\n")
	for _, err := range errs {
		b.WriteString("  - " + err.Error() + "\n")
	}
	return b.String()
}

// EditSummary describes one applied edit for display.
type EditSummary struct {
	Action  string
	Name    string
	OldCode string
	NewCode string
	Changed int
}

// FormatEditSummary renders a one-line description of an applied edit.
func FormatEditSummary(s EditSummary) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render("✔ "))
	b.WriteString(s.Action)
	if s.Name != "" {
		b.WriteString(" " + Bold(s.Name))
	}
	switch {
	case s.OldCode != "" && s.NewCode != "" && s.OldCode != s.NewCode:
		b.WriteString(fmt.Sprintf(" %s → %s", Dim(s.OldCode), s.NewCode))
	case s.NewCode != "":
		b.WriteString(" " + Dim(s.NewCode))
	case s.OldCode != "":
		b.WriteString(" " + Dim(s.OldCode))
	}
	if s.Changed > 0 {
		b.WriteString(Dim(fmt.Sprintf(" (%s recoded)", Plural(s.Changed, "node"))))
	}
	b.WriteString("\n")
	return b.String()
}
