package editor

import (
	"context"

	"github.com/samber/mo"

	"github.com/daviddossett/targeted-selection/internal/domain/design"
)

func someText(v string) mo.Option[string] { return mo.Some(v) }

func someProperty(v design.PropertyValue) mo.Option[design.PropertyValue] { return mo.Some(v) }

// UpdateState applies a pure transition to the editor state and returns the
// result. Selecting an unknown instance is rejected.
func (s *Session) UpdateState(transition func(design.EditorState) design.EditorState) (design.EditorState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := transition(s.state)
	if next.SelectedInstanceID != "" && next.SelectedInstanceID != s.state.SelectedInstanceID {
		if _, err := s.doc.Instance(next.SelectedInstanceID); err != nil {
			return s.state, err
		}
	}
	s.state = next
	return next, nil
}

// Select selects an instance by id. "" clears the selection.
func (s *Session) Select(id string) (design.EditorState, error) {
	return s.UpdateState(func(st design.EditorState) design.EditorState { return st.Select(id) })
}

// SetMode switches the edit level.
func (s *Session) SetMode(mode design.EditorMode) design.EditorState {
	state, _ := s.UpdateState(func(st design.EditorState) design.EditorState { return st.SetMode(mode) })
	return state
}

// ToggleSelectMode flips pointer selection.
func (s *Session) ToggleSelectMode() design.EditorState {
	state, _ := s.UpdateState(design.EditorState.ToggleSelectMode)
	return state
}

// ToggleEditMode switches between preview and instance editing.
func (s *Session) ToggleEditMode() design.EditorState {
	state, _ := s.UpdateState(design.EditorState.ToggleEditMode)
	return state
}

// target returns the selected instance when the mode allows editing.
func target(doc design.Document, state design.EditorState) (design.ComponentInstance, error) {
	if !state.Mode.Editing() {
		return design.ComponentInstance{}, &design.DomainError{
			Code:    design.ErrCodeValidation,
			Message: "editor is in preview mode",
		}
	}
	if state.SelectedInstanceID == "" {
		return design.ComponentInstance{}, &design.DomainError{
			Code:    design.ErrCodeValidation,
			Message: "no instance selected",
		}
	}
	return doc.Instance(state.SelectedInstanceID)
}

// EditStyle applies a style edit to the selection. Instance mode writes an
// override; component mode changes the definition default shared by every
// instance of that component. The selection and mode are read under the same
// lock as the edit, so a concurrent Select or SetMode cannot redirect it.
func (s *Session) EditStyle(ctx context.Context, key design.StyleKey, value string) error {
	_, err := s.apply(ctx, func(doc design.Document, state design.EditorState) ([]Operation, error) {
		instance, err := target(doc, state)
		if err != nil {
			return nil, err
		}
		if state.Mode == design.ModeComponent {
			return []Operation{{Kind: OpUpdateComponentStyle, Component: instance.ComponentID, Key: string(key), Text: someText(value)}}, nil
		}
		return []Operation{SetStyle(instance.ID, key, value)}, nil
	}, false)
	return err
}

// EditProperty applies a property edit to the selection, routed like EditStyle.
func (s *Session) EditProperty(ctx context.Context, key string, value design.PropertyValue) error {
	_, err := s.apply(ctx, func(doc design.Document, state design.EditorState) ([]Operation, error) {
		instance, err := target(doc, state)
		if err != nil {
			return nil, err
		}
		if state.Mode == design.ModeComponent {
			return []Operation{{Kind: OpUpdateComponentProperty, Component: instance.ComponentID, Key: key, Property: someProperty(value)}}, nil
		}
		return []Operation{SetProperty(instance.ID, key, value)}, nil
	}, false)
	return err
}

// SelectionSummary describes the selected instance and its overrides.
type SelectionSummary struct {
	Instance  design.ComponentInstance
	Resolved  design.Resolved
	Overrides design.Overrides
}

// Selection returns details for the current selection, or None when nothing
// is selected or the selection no longer resolves.
func (s *Session) Selection() mo.Option[SelectionSummary] {
	s.mu.RLock()
	state, doc := s.state, s.doc
	s.mu.RUnlock()

	if state.SelectedInstanceID == "" {
		return mo.None[SelectionSummary]()
	}
	instance, err := doc.Instance(state.SelectedInstanceID)
	if err != nil {
		return mo.None[SelectionSummary]()
	}
	resolved, err := doc.ResolveThemed(instance.ID)
	if err != nil {
		return mo.None[SelectionSummary]()
	}
	overrides, _ := doc.OverrideSummary(instance.ID)
	return mo.Some(SelectionSummary{Instance: instance, Resolved: resolved, Overrides: overrides})
}
