package editor

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/daviddossett/targeted-selection/internal/domain/design"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case mutationMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("%s failed: %v", msg.action, msg.err)
			m.status = ""
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("%s (revision %d)", msg.action, m.session.Revision())
		m.refreshOrder()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("Copied resolved style of '%s' to clipboard.", msg.instanceID)
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Clear, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Select):
		return m.selectCursor()
	case key.Matches(msg, m.keys.Clear):
		_, _ = m.session.Select("")
		m.status = ""
	case key.Matches(msg, m.keys.EditMode):
		state := m.session.ToggleEditMode()
		m.status = fmt.Sprintf("mode: %s", state.Mode)
	case key.Matches(msg, m.keys.SelectMode):
		state := m.session.ToggleSelectMode()
		m.status = fmt.Sprintf("select mode: %s", lo.Ternary(state.SelectMode, "on", "off"))
	case key.Matches(msg, m.keys.Level):
		return m.toggleLevel()
	case key.Matches(msg, m.keys.Reset):
		return m, m.onSelection("reset overrides", m.session.ResetAllOverrides)
	case key.Matches(msg, m.keys.Push):
		return m, m.onSelection("push overrides", m.session.PushOverridesToComponent)
	case key.Matches(msg, m.keys.Accent):
		return m, m.nextAccent()
	case key.Matches(msg, m.keys.Copy):
		return m, m.copySelection()
	}
	return m, nil
}

func (m Model) selectCursor() (tea.Model, tea.Cmd) {
	id := m.CursorID()
	state, err := m.session.UpdateState(func(st design.EditorState) design.EditorState { return st.Click(id) })
	switch {
	case err != nil:
		m.errMsg = err.Error()
	case !state.Mode.Editing():
		m.status = "press e to start editing"
	default:
		m.errMsg = ""
		m.status = fmt.Sprintf("selected %s", id)
	}
	return m, nil
}

func (m Model) toggleLevel() (tea.Model, tea.Cmd) {
	state := m.session.State()
	if !state.Mode.Editing() {
		m.status = "press e to start editing"
		return m, nil
	}
	next := lo.Ternary(state.Mode == design.ModeInstance, design.ModeComponent, design.ModeInstance)
	m.session.SetMode(next)
	m.status = fmt.Sprintf("mode: %s", next)
	return m, nil
}

// onSelection runs action against the selected instance.
func (m Model) onSelection(action string, run func(context.Context, string) error) tea.Cmd {
	id := m.session.State().SelectedInstanceID
	ctx := m.ctx
	return func() tea.Msg {
		if id == "" {
			return mutationMsg{action: action, err: fmt.Errorf("no instance selected")}
		}
		return mutationMsg{action: action, err: run(ctx, id)}
	}
}

// nextAccent cycles the primary accent through the accent catalogue.
func (m Model) nextAccent() tea.Cmd {
	session := m.session
	ctx := m.ctx
	return func() tea.Msg {
		options := design.AccentColorOptions()
		current := session.Snapshot().Theme.PrimaryAccent
		_, index, found := lo.FindIndexOf(options, func(opt design.ThemeOption) bool { return opt.Value == current })
		next := options[0]
		if found {
			next = options[(index+1)%len(options)]
		}
		err := session.UpdateThemeSetting(ctx, design.ThemePrimaryAccent, next.Value)
		return mutationMsg{action: "accent " + next.Label, err: err}
	}
}

func (m Model) copySelection() tea.Cmd {
	summary, ok := m.session.Selection().Get()
	write := m.copy
	return func() tea.Msg {
		if !ok {
			return copiedMsg{err: fmt.Errorf("no instance selected")}
		}
		return copiedMsg{instanceID: summary.Instance.ID, err: write(formatStyle(summary.Resolved.Style))}
	}
}

// formatStyle renders a style map as "key: value" lines in schema order.
func formatStyle(style design.Style) string {
	lines := lo.FilterMap(style.Keys(), func(k design.StyleKey, _ int) (string, bool) {
		value, ok := style.Get(k)
		return fmt.Sprintf("%s: %s;", k, value), ok
	})
	return strings.Join(lines, "\n")
}
