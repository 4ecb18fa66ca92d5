// Package preview draws a resolved instance tree in the terminal with
// lipgloss. Each component type has a leaf renderer; selection, hover and
// select-mode affordances are drawn as outlines around the leaf.
package preview

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/daviddossett/targeted-selection/internal/domain/design"
	"github.com/daviddossett/targeted-selection/internal/ports"
)

const (
	// DefaultWidth is used when Options.Width is unset.
	DefaultWidth = 80
	minWidth     = 12
)

// ColorMode controls colour output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// DetectProfile picks a colour profile for w according to mode.
func DetectProfile(mode ColorMode, w io.Writer) termenv.Profile {
	switch mode {
	case ColorAlways:
		return termenv.TrueColor
	case ColorNever:
		return termenv.Ascii
	default:
		return termenv.NewOutput(w).EnvColorProfile()
	}
}

// Options configures a Renderer.
type Options struct {
	Width   int
	Profile termenv.Profile
}

// Renderer implements ports.Renderer.
type Renderer struct {
	width int
	lg    *lipgloss.Renderer
}

var _ ports.Renderer = (*Renderer)(nil)

// New creates a Renderer.
func New(opts Options) *Renderer {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	lg := lipgloss.NewRenderer(io.Discard)
	lg.SetColorProfile(opts.Profile)
	return &Renderer{width: max(width, minWidth), lg: lg}
}

// Width returns the maximum line width of rendered output.
func (r *Renderer) Width() int {
	return r.width
}

// Render draws every root top to bottom.
func (r *Renderer) Render(nodes []design.ResolvedNode, state design.EditorState) string {
	if len(nodes) == 0 {
		return r.lg.NewStyle().Faint(true).Render("(empty document)")
	}
	blocks := make([]string, 0, len(nodes))
	for _, node := range nodes {
		blocks = append(blocks, r.node(node, state, r.width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// RenderInstance draws a single subtree.
func (r *Renderer) RenderInstance(node design.ResolvedNode, state design.EditorState) string {
	return r.node(node, state, r.width)
}

func (r *Renderer) node(node design.ResolvedNode, state design.EditorState, width int) string {
	if node.Err != nil {
		return r.placeholder(node, width)
	}

	decor := r.decoration(node, state)
	m := margin(node.Resolved.Style)
	inner := width - decor.frame() - m.Horizontal()

	var body string
	switch node.Resolved.Definition.Type {
	case design.ComponentButton:
		body = r.button(node.Resolved, inner)
	case design.ComponentText:
		body = r.text(node.Resolved, inner)
	case design.ComponentCard:
		body = r.card(node, state, inner)
	case design.ComponentContainer:
		body = r.container(node, state, inner)
	default:
		body = r.lg.NewStyle().Foreground(lipgloss.Color(errorColor)).
			Render("Unknown component type: " + string(node.Resolved.Definition.Type))
	}

	body = decor.apply(r.lg, body, width-m.Horizontal())
	if !m.IsZero() {
		body = r.lg.NewStyle().Margin(m.Top, m.Right, m.Bottom, m.Left).Render(body)
	}
	return body
}

func (r *Renderer) placeholder(node design.ResolvedNode, width int) string {
	message := node.Err.Error()
	if node.NotFound() {
		message = "Component not found: " + node.Instance.ComponentID
	}
	return r.lg.NewStyle().
		Foreground(lipgloss.Color(errorColor)).
		Italic(true).
		Render(truncateText(message, width))
}

func (r *Renderer) children(node design.ResolvedNode, state design.EditorState, width int) []string {
	out := make([]string, 0, len(node.Children))
	for _, child := range node.Children {
		out = append(out, r.node(child, state, width))
	}
	return out
}
