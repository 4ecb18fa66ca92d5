package preview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/daviddossett/targeted-selection/internal/domain/design"
	"github.com/daviddossett/targeted-selection/internal/ui/palette"
)

const (
	selectedColor = "#0070f3"
	idleColor     = "#aaaaaa"
	errorColor    = "#ef4444"
)

var (
	badgeSelected = palette.Token("bg", "blue", palette.Shade500)
	badgeHover    = palette.Token("bg", "green", palette.Shade500)

	dashedBorder = lipgloss.Border{
		Top:         "╌",
		Bottom:      "╌",
		Left:        "╎",
		Right:       "╎",
		TopLeft:     "┌",
		TopRight:    "┐",
		BottomLeft:  "└",
		BottomRight: "┘",
	}
)

type outlineKind int

const (
	outlineNone outlineKind = iota
	outlineIdle
	outlineHover
	outlineSelected
)

type decoration struct {
	kind  outlineKind
	badge string
}

// decoration picks the affordance for a node. Selection wins over hover, and
// hover wins over the idle select-mode outline.
func (r *Renderer) decoration(node design.ResolvedNode, state design.EditorState) decoration {
	id := node.Instance.ID
	label := node.Resolved.Definition.Label
	switch {
	case state.Selected(id):
		return decoration{kind: outlineSelected, badge: SelectionBadge(label, id)}
	case state.Mode.Editing() && state.HoveredInstanceID == id:
		return decoration{kind: outlineHover, badge: label}
	case state.SelectMode:
		return decoration{kind: outlineIdle}
	default:
		return decoration{}
	}
}

// SelectionBadge is the caption shown above the selected instance.
func SelectionBadge(label, instanceID string) string {
	return label + " - " + instanceID
}

// frame is the horizontal space the outline takes.
func (d decoration) frame() int {
	if d.kind == outlineNone {
		return 0
	}
	return 2
}

func (d decoration) apply(lg *lipgloss.Renderer, body string, width int) string {
	var style lipgloss.Style
	var badgeBg string
	switch d.kind {
	case outlineSelected:
		style = lg.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color(selectedColor))
		badgeBg = badgeSelected
	case outlineHover:
		style = lg.NewStyle().Border(dashedBorder).BorderForeground(palette.Color("bg-emerald-500"))
		badgeBg = badgeHover
	case outlineIdle:
		style = lg.NewStyle().Border(dashedBorder).BorderForeground(lipgloss.Color(idleColor)).Faint(true)
	default:
		return body
	}

	framed := style.Render(body)
	if d.badge == "" {
		return framed
	}
	badge := lg.NewStyle().
		Background(palette.Color(badgeBg)).
		Foreground(lipgloss.Color("#ffffff")).
		Padding(0, 1).
		Render(truncateText(d.badge, width-2))
	return lipgloss.JoinVertical(lipgloss.Left, badge, framed)
}
