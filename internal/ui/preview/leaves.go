package preview

import (
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/daviddossett/targeted-selection/internal/domain/design"
	"github.com/daviddossett/targeted-selection/internal/ui/palette"
)

var upper = cases.Upper(language.English)

// surface applies the colours and weight shared by every leaf.
func (r *Renderer) surface(style design.Style) lipgloss.Style {
	s := r.lg.NewStyle()
	if bg, ok := style.Get(design.StyleBackgroundColor); ok {
		s = s.Background(palette.Color(bg))
	}
	if fg, ok := style.Get(design.StyleColor); ok {
		s = s.Foreground(palette.Color(fg))
	}
	if bold(style) {
		s = s.Bold(true)
	}
	return s
}

func (r *Renderer) button(resolved design.Resolved, width int) string {
	style := r.surface(resolved.Style)
	pad := padding(resolved.Style)
	pad.Top, pad.Bottom = 0, 0
	if pad.Horizontal() == 0 {
		pad.Left, pad.Right = 1, 1
	}
	style = style.Padding(0, pad.Right, 0, pad.Left)

	label := resolved.Properties.String("text")
	label = truncateText(label, width-pad.Horizontal()-2)
	if pill(resolved.Style) {
		label = "(" + label + ")"
	}
	if bordered(resolved.Style) {
		style = style.Border(lipgloss.NormalBorder()).BorderForeground(palette.Color(resolved.Style[design.StyleColor]))
	}
	return style.Render(label)
}

func (r *Renderer) text(resolved design.Resolved, width int) string {
	style := r.surface(resolved.Style)
	content := resolved.Properties.String("content")

	switch resolved.Properties.String("element") {
	case "h1":
		style = style.Bold(true)
		content = upper.String(content)
	case "h2", "h3", "h4":
		style = style.Bold(true)
	case "blockquote":
		style = style.Italic(true).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			PaddingLeft(1)
		width -= 2
	case "pre":
		return style.Render(truncateLines(content, width))
	case "span":
	}
	return style.Render(wrapText(content, width))
}

func (r *Renderer) card(node design.ResolvedNode, state design.EditorState, width int) string {
	resolved := node.Resolved
	pad := padding(resolved.Style)
	style := r.surface(resolved.Style).
		Border(lipgloss.RoundedBorder()).
		Padding(pad.Top, pad.Right, pad.Bottom, pad.Left)
	inner := width - pad.Horizontal() - 2

	parts := make([]string, 0, len(node.Children)+1)
	if title := resolved.Properties.String("title"); title != "" {
		parts = append(parts, r.lg.NewStyle().Bold(true).Render(truncateText(title, inner)))
	}
	parts = append(parts, r.layout(resolved.Style, r.children(node, state, inner))...)
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (r *Renderer) container(node design.ResolvedNode, state design.EditorState, width int) string {
	resolved := node.Resolved
	pad := padding(resolved.Style)
	style := r.surface(resolved.Style).Padding(pad.Top, pad.Right, pad.Bottom, pad.Left)
	inner := width - pad.Horizontal()

	parts := make([]string, 0, 2)
	if title := resolved.Properties.String("title"); title != "" {
		parts = append(parts, r.lg.NewStyle().Bold(true).Underline(true).Render(truncateText(title, inner)))
	}
	parts = append(parts, r.layout(resolved.Style, r.children(node, state, inner))...)
	if len(parts) == 0 {
		return style.Render("")
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// layout arranges children along the flex direction with the gap between
// them. A row falls back to a column when it would overflow.
func (r *Renderer) layout(style design.Style, children []string) []string {
	if len(children) == 0 {
		return nil
	}
	gapValue := style[design.StyleGap]
	if direction, _ := style.Get(design.StyleFlexDirection); direction == "row" {
		gap := columns(gapValue)
		spaced := make([]string, 0, len(children)*2)
		for i, child := range children {
			if i > 0 && gap > 0 {
				spaced = append(spaced, r.lg.NewStyle().Width(gap).Render(""))
			}
			spaced = append(spaced, child)
		}
		return []string{lipgloss.JoinHorizontal(lipgloss.Top, spaced...)}
	}

	gap := rows(gapValue)
	if gap == 0 {
		return children
	}
	spaced := make([]string, 0, len(children)*2)
	for i, child := range children {
		if i > 0 {
			spaced = append(spaced, make([]string, gap)...)
		}
		spaced = append(spaced, child)
	}
	return spaced
}
