package editor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/daviddossett/targeted-selection/internal/domain/design"
)

func TestEditStyleRoutesByMode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name           string
		mode           design.EditorMode
		wantButton1    string
		wantDefinition string
	}{
		{name: "instance mode writes override", mode: design.ModeInstance, wantButton1: "#000000", wantDefinition: "#ffffff"},
		{name: "component mode writes definition", mode: design.ModeComponent, wantButton1: "#000000", wantDefinition: "#000000"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			session, _ := newTestSession()
			session.SetMode(tc.mode)
			_, err := session.Select("button1")
			require.NoError(t, err)

			require.NoError(t, session.EditStyle(context.Background(), design.StyleColor, "#000000"))

			doc := session.Snapshot()
			resolved, err := doc.Resolve("button1")
			require.NoError(t, err)
			require.Equal(t, tc.wantButton1, resolved.Style[design.StyleColor])

			definition, err := doc.ComponentByID("button")
			require.NoError(t, err)
			require.Equal(t, tc.wantDefinition, definition.DefaultStyles[design.StyleColor])
		})
	}
}

func TestEditPropertyInComponentMode(t *testing.T) {
	t.Parallel()

	session, _ := newTestSession()
	session.SetMode(design.ModeComponent)
	_, err := session.Select("text2")
	require.NoError(t, err)

	require.NoError(t, session.EditProperty(context.Background(), "element", design.StringValue("h2")))

	definition, err := session.Snapshot().ComponentByID("text")
	require.NoError(t, err)
	require.Equal(t, "h2", definition.Properties.String("element"))
}

func TestEditRequiresEditingModeAndSelection(t *testing.T) {
	t.Parallel()

	session, _ := newTestSession()
	err := session.EditStyle(context.Background(), design.StyleColor, "#000000")
	require.True(t, design.HasCode(err, design.ErrCodeValidation))

	session.ToggleEditMode()
	err = session.EditStyle(context.Background(), design.StyleColor, "#000000")
	require.True(t, design.HasCode(err, design.ErrCodeValidation))
	require.Equal(t, uint64(0), session.Revision())
}

func TestSelectUnknownInstance(t *testing.T) {
	t.Parallel()

	session, _ := newTestSession()
	state, err := session.Select("nope")
	require.True(t, design.IsInstanceNotFound(err))
	require.Empty(t, state.SelectedInstanceID)

	state, err = session.Select("card1")
	require.NoError(t, err)
	require.True(t, state.Selected("card1"))

	state, err = session.Select("")
	require.NoError(t, err)
	require.Empty(t, state.SelectedInstanceID)
}

func TestToggleEditModeStartsSelecting(t *testing.T) {
	t.Parallel()

	session, _ := newTestSession()
	state := session.ToggleEditMode()
	require.Equal(t, design.ModeInstance, state.Mode)
	require.True(t, state.SelectMode)

	state = session.ToggleSelectMode()
	require.False(t, state.SelectMode)

	state = session.ToggleEditMode()
	require.Equal(t, design.NewEditorState(), state)
}

func TestSelectionSummary(t *testing.T) {
	t.Parallel()

	session, _ := newTestSession()
	require.True(t, session.Selection().IsAbsent())

	_, err := session.Select("button2")
	require.NoError(t, err)

	summary, ok := session.Selection().Get()
	require.True(t, ok)
	require.Equal(t, "button2", summary.Instance.ID)
	require.Equal(t, "#10b981", summary.Resolved.Style[design.StyleBackgroundColor])
	require.ElementsMatch(t, []design.StyleKey{design.StyleBackgroundColor, design.StyleBorderRadius}, summary.Overrides.Styles)
}

func TestSelectionChangeWaitsForRoutedEdit(t *testing.T) {
	t.Parallel()

	session, _ := newTestSession()
	session.SetMode(design.ModeInstance)
	_, err := session.Select("button1")
	require.NoError(t, err)

	reselected := make(chan struct{})
	_, err = session.apply(context.Background(), func(doc design.Document, state design.EditorState) ([]Operation, error) {
		go func() {
			_, _ = session.Select("text1")
			close(reselected)
		}()
		require.Never(t, func() bool {
			select {
			case <-reselected:
				return true
			default:
				return false
			}
		}, 50*time.Millisecond, 5*time.Millisecond)

		instance, err := target(doc, state)
		if err != nil {
			return nil, err
		}
		return []Operation{SetStyle(instance.ID, design.StyleColor, "#000000")}, nil
	}, false)
	require.NoError(t, err)
	<-reselected

	resolved, err := session.Snapshot().Resolve("button1")
	require.NoError(t, err)
	require.Equal(t, "#000000", resolved.Style[design.StyleColor])
	require.Equal(t, "text1", session.State().SelectedInstanceID)
}
