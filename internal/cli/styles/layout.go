package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/bnema/viewspace/internal/domain/entity"
)

// LayoutRenderer draws a split tree as an indented outline.
type LayoutRenderer struct {
	theme *Theme
}

// NewLayoutRenderer creates a new layout renderer with the given theme.
func NewLayoutRenderer(theme *Theme) *LayoutRenderer {
	return &LayoutRenderer{theme: theme}
}

// Render draws root. active is marked; label, when non-nil, adds text after
// each view space ID (typically the document name).
func (r *LayoutRenderer) Render(root *entity.LayoutNode, active entity.ViewSpaceID, label func(entity.ViewSpaceID) string) string {
	if root == nil {
		return r.theme.Subtle.Render("(empty layout)")
	}
	t := r.subtree(root, active, label)
	t.Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(lipgloss.NewStyle().Foreground(r.theme.Border).MarginRight(1))
	return t.String()
}

func (r *LayoutRenderer) subtree(n *entity.LayoutNode, active entity.ViewSpaceID, label func(entity.ViewSpaceID) string) *tree.Tree {
	t := tree.Root(r.nodeText(n, active, label))
	for _, child := range n.Children {
		if child.IsLeaf() {
			t.Child(r.nodeText(child, active, label))
			continue
		}
		t.Child(r.subtree(child, active, label))
	}
	return t
}

func (r *LayoutRenderer) nodeText(n *entity.LayoutNode, active entity.ViewSpaceID, label func(entity.ViewSpaceID) string) string {
	share := ""
	if !n.IsRoot() {
		share = r.theme.Subtle.Render(fmt.Sprintf("%3.0f%%", n.Share()*100)) + " "
	}

	if n.IsSplitter() {
		return share + r.theme.Title.Render(IconPane+" "+n.Orientation.String())
	}

	text := string(n.ViewSpace)
	if label != nil {
		if l := label(n.ViewSpace); l != "" {
			text += " " + r.theme.Subtle.Render(l)
		}
	}
	if n.ViewSpace == active {
		return share + r.theme.Highlight.Render("*") + " " + r.theme.Highlight.Render(text)
	}
	return share + "  " + r.theme.Normal.Render(text)
}
