package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/codetree/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// TreeItem represents a single node in a tree display.
type TreeItem struct {
	Title string
	Code  string
	Level int
	// Lineage records, for each ancestor below the root, whether it was the
	// last of its siblings. It decides between "│  " and blank indentation.
	Lineage []bool
	IsLast  bool
	Marked  bool
	Hidden  int // collapsed descendants beyond the depth limit
	Detail  string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeBlank  = "   "
)

// TreeOptions controls RenderNodeTree.
type TreeOptions struct {
	// MaxDepth limits the levels shown below the root; 0 shows everything.
	MaxDepth int
	// Mark highlights the node with this id.
	Mark string
}

// TreeItems flattens a node tree into display rows in depth-first order.
func TreeItems(root *domain.Node, opts TreeOptions) []TreeItem {
	if root == nil {
		return nil
	}
	var items []TreeItem
	var visit func(n *domain.Node, level int, lineage []bool, isLast bool)
	visit = func(n *domain.Node, level int, lineage []bool, isLast bool) {
		item := TreeItem{
			Title:   n.Name,
			Code:    n.Code,
			Level:   level,
			Lineage: lineage,
			IsLast:  isLast,
			Marked:  opts.Mark != "" && n.ID == opts.Mark,
			Detail:  n.Type,
		}
		if opts.MaxDepth > 0 && level == opts.MaxDepth {
			item.Hidden = countDescendants(n)
			items = append(items, item)
			return
		}
		items = append(items, item)

		var childLineage []bool
		if level > 0 {
			childLineage = append(append([]bool(nil), lineage...), isLast)
		}
		for i, c := range n.Children {
			visit(c, level+1, childLineage, i == len(n.Children)-1)
		}
	}
	visit(root, 0, nil, true)
	return items
}

func countDescendants(n *domain.Node) int {
	total := 0
	for _, c := range n.Children {
		total += 1 + countDescendants(c)
	}
	return total
}

// RenderNodeTree renders a node tree with box-drawing connectors.
func RenderNodeTree(root *domain.Node, opts TreeOptions) string {
	return RenderTree(TreeItems(root, opts))
}

// RenderTree renders TreeItems as an indented tree. Each row shows the dim
// code before the title; marked rows get an amber ▶ prefix and type badges
// are right-aligned.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		badge   string
	}

	lines := make([]lineInfo, len(items))
	maxContentWidth := 0

	// Pass 1: build each line's content and track max visible width.
	for idx, item := range items {
		var prefix strings.Builder
		if item.Level > 0 {
			for _, last := range item.Lineage {
				if last {
					prefix.WriteString(treeBlank)
				} else {
					prefix.WriteString(treePipe)
				}
			}
			if item.IsLast {
				prefix.WriteString(treeCorner)
			} else {
				prefix.WriteString(treeBranch)
			}
		}

		title := item.Title
		if item.Code != "" {
			title = StyleDim.Render(item.Code+" ") + title
		}
		marker := ""
		if item.Marked {
			marker = StyleYellowBold.Render("▶ ")
			title = StyleYellowBold.Render(title)
		}
		if item.Hidden > 0 {
			title += StyleDim.Render(fmt.Sprintf(" (+%d)", item.Hidden))
		}

		content := prefix.String() + marker + title
		lines[idx].content = content
		if item.Detail != "" {
			lines[idx].badge = TypeStyle(item.Detail).Render(fmt.Sprintf("[ %s ]", item.Detail))
		}
		maxContentWidth = max(maxContentWidth, lipgloss.Width(content))
	}

	// Pass 2: render with right-aligned badges.
	var b strings.Builder
	for _, li := range lines {
		if li.badge == "" {
			b.WriteString(li.content + "\n")
			continue
		}
		pad := max(maxContentWidth-lipgloss.Width(li.content), 0)
		b.WriteString(li.content + strings.Repeat(" ", pad) + "  " + li.badge + "\n")
	}
	return b.String()
}
