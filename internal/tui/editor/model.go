// Package editor is the interactive terminal editor: a live preview of the
// document with keyboard selection, mode switching and override actions
// driven through an editor session.
package editor

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	appeditor "github.com/daviddossett/targeted-selection/internal/application/editor"
	"github.com/daviddossett/targeted-selection/internal/domain/design"
	"github.com/daviddossett/targeted-selection/internal/ports"
)

// Model is the bubbletea model of the editor.
type Model struct {
	ctx      context.Context
	session  *appeditor.Session
	renderer ports.Renderer

	keys KeyMap
	help help.Model

	order  []string
	cursor int

	showHelp bool
	status   string
	errMsg   string

	width  int
	height int

	copy func(string) error
}

// Option customises a Model.
type Option func(*Model)

// WithClipboard replaces the clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) {
		m.copy = write
	}
}

// WithContext sets the context passed to session mutations.
func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		m.ctx = ctx
	}
}

// NewModel creates an editor model over session.
func NewModel(session *appeditor.Session, renderer ports.Renderer, opts ...Option) Model {
	m := Model{
		ctx:      context.Background(),
		session:  session,
		renderer: renderer,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		width:    80,
		height:   24,
		copy:     clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.refreshOrder()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// refreshOrder recomputes the navigation order after the tree changes.
func (m *Model) refreshOrder() {
	m.order = design.InstanceIDs(m.session.Snapshot().App.Instances)
	if m.cursor >= len(m.order) {
		m.cursor = len(m.order) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// CursorID returns the instance under the cursor, or "" for an empty tree.
func (m Model) CursorID() string {
	if m.cursor < 0 || m.cursor >= len(m.order) {
		return ""
	}
	return m.order[m.cursor]
}

func (m *Model) moveCursor(delta int) {
	if len(m.order) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.order)) % len(m.order)
	id := m.CursorID()
	_, _ = m.session.UpdateState(func(st design.EditorState) design.EditorState { return st.Hover(id) })
}
