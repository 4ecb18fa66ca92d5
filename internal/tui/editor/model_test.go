package editor

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appeditor "github.com/daviddossett/targeted-selection/internal/application/editor"
	"github.com/daviddossett/targeted-selection/internal/domain/design"
	"github.com/daviddossett/targeted-selection/internal/ui/preview"
)

func newTestModel(t *testing.T, opts ...Option) (Model, *appeditor.Session) {
	t.Helper()
	session := appeditor.NewSession(design.DefaultDocument(), nil, nil)
	renderer := preview.New(preview.Options{Width: 80, Profile: termenv.Ascii})
	return NewModel(session, renderer, opts...), session
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends msg and feeds any resulting command message back once.
func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	if cmd != nil {
		if result := cmd(); result != nil {
			if _, quit := result.(tea.QuitMsg); !quit {
				next, _ = model.Update(result)
				model = next.(Model)
			}
		}
	}
	return model
}

func TestNavigationFollowsPreOrder(t *testing.T) {
	t.Parallel()

	m, session := newTestModel(t)
	require.Equal(t, "root", m.CursorID())

	m = press(t, m, runes("e"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "card1", m.CursorID())
	assert.Equal(t, "card1", session.State().HoveredInstanceID)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "button2", m.CursorID())
}

func TestSelectRequiresEditMode(t *testing.T) {
	t.Parallel()

	m, session := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, session.State().SelectedInstanceID)
	assert.Contains(t, m.status, "press e")

	m = press(t, m, runes("e"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "root", session.State().SelectedInstanceID)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, session.State().SelectedInstanceID)
}

func TestPushAndResetFromKeyboard(t *testing.T) {
	t.Parallel()

	m, session := newTestModel(t)
	m = press(t, m, runes("e"))
	for i := 0; i < 6; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	require.Equal(t, "button2", m.CursorID())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = press(t, m, runes("p"))
	assert.Empty(t, m.errMsg)
	assert.Contains(t, m.status, "push overrides")

	definition, err := session.Snapshot().ComponentByID("button")
	require.NoError(t, err)
	assert.Equal(t, "#10b981", definition.DefaultStyles[design.StyleBackgroundColor])

	m = press(t, m, runes("r"))
	assert.Empty(t, m.errMsg)
	assert.Equal(t, uint64(2), session.Revision())
}

func TestMutationWithoutSelectionReportsError(t *testing.T) {
	t.Parallel()

	m, session := newTestModel(t)
	m = press(t, m, runes("r"))
	assert.Contains(t, m.errMsg, "no instance selected")
	assert.Equal(t, uint64(0), session.Revision())
}

func TestLevelToggle(t *testing.T) {
	t.Parallel()

	m, session := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, design.ModePreview, session.State().Mode)

	m = press(t, m, runes("e"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, design.ModeComponent, session.State().Mode)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, design.ModeInstance, session.State().Mode)
	_ = m
}

func TestAccentCycle(t *testing.T) {
	t.Parallel()

	m, session := newTestModel(t)
	m = press(t, m, runes("a"))
	assert.Empty(t, m.errMsg)
	assert.Equal(t, "#6366f1", session.Snapshot().Theme.PrimaryAccent)

	resolved, err := session.Resolve("button1")
	require.NoError(t, err)
	assert.Equal(t, "#6366f1", resolved.Style[design.StyleBackgroundColor])
}

func TestCopySelection(t *testing.T) {
	t.Parallel()

	var copied string
	m, _ := newTestModel(t, WithClipboard(func(s string) error {
		copied = s
		return nil
	}))

	m = press(t, m, runes("y"))
	assert.Contains(t, m.errMsg, "no instance selected")

	m = press(t, m, runes("e"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = press(t, m, runes("y"))
	assert.Empty(t, m.errMsg)
	assert.Contains(t, m.status, "'root'")
	assert.Contains(t, copied, "display: flex;")
}

func TestCopyFailure(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, WithClipboard(func(string) error { return errors.New("no clipboard") }))
	m = press(t, m, runes("e"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = press(t, m, runes("y"))
	assert.Contains(t, m.errMsg, "no clipboard")
}

func TestHelpOverlay(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	m = press(t, m, runes("?"))
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Keyboard shortcuts")

	m = press(t, m, runes("e"))
	assert.True(t, m.showHelp)

	m = press(t, m, runes("?"))
	assert.False(t, m.showHelp)
}

func TestQuit(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestViewShowsSelectionOverrides(t *testing.T) {
	t.Parallel()

	m, session := newTestModel(t)
	session.ToggleEditMode()
	_, err := session.Select("button2")
	require.NoError(t, err)

	view := m.View()
	assert.Contains(t, view, "Button - button2")
	assert.Contains(t, view, "style backgroundColor = #10b981")
	assert.Contains(t, view, "(Custom Button)")
}

func TestFormatStyle(t *testing.T) {
	t.Parallel()

	out := formatStyle(design.Style{
		design.StyleColor:           "#000",
		design.StyleBackgroundColor: "#fff",
		design.StylePadding:         "",
	})
	assert.Equal(t, "backgroundColor: #fff;\ncolor: #000;", out)
}
