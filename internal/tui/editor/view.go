package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Keyboard shortcuts"),
			m.help.FullHelpView(m.keys.FullHelp()),
		)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderer.Render(m.session.ResolveTree(), m.session.State()))
	b.WriteString("\n")
	b.WriteString(m.renderSelection())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

func (m Model) renderHeader() string {
	state := m.session.State()
	mode := modeStyle.Render(string(state.Mode))
	if state.SelectMode {
		mode += mutedStyle.Render(" · selecting")
	}
	cursor := ""
	if id := m.CursorID(); id != "" {
		cursor = mutedStyle.Render("  cursor ") + cursorStyle.Render(id)
	}
	return fmt.Sprintf("%s  %s  %s%s",
		titleStyle.Render("App Builder"),
		mode,
		mutedStyle.Render(fmt.Sprintf("rev %d", m.session.Revision())),
		cursor,
	)
}

func (m Model) renderSelection() string {
	summary, ok := m.session.Selection().Get()
	if !ok {
		return mutedStyle.Render("Nothing selected")
	}

	lines := []string{sectionStyle.Render(fmt.Sprintf("%s - %s", summary.Resolved.Definition.Label, summary.Instance.ID))}
	if summary.Overrides.Empty() {
		lines = append(lines, mutedStyle.Render("No overrides; inherits every value from "+summary.Instance.ComponentID))
		return strings.Join(lines, "\n")
	}
	for _, key := range summary.Overrides.Styles {
		lines = append(lines, overrideStyle.Render(fmt.Sprintf("  style %s = %s", key, summary.Instance.InstanceStyles[key])))
	}
	for _, key := range summary.Overrides.Properties {
		lines = append(lines, overrideStyle.Render(fmt.Sprintf("  property %s = %s", key, summary.Instance.Properties[key])))
	}
	for _, key := range summary.Overrides.Orphaned {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("  property %s (not declared by %s)", key, summary.Instance.ComponentID)))
	}
	return strings.Join(lines, "\n")
}

