package design

// EditorMode selects which level of the document edits target.
type EditorMode string

const (
	ModePreview   EditorMode = "preview"
	ModeInstance  EditorMode = "instance"
	ModeComponent EditorMode = "component"
)

// ParseEditorMode validates a mode name.
func ParseEditorMode(name string) (EditorMode, error) {
	switch mode := EditorMode(name); mode {
	case ModePreview, ModeInstance, ModeComponent:
		return mode, nil
	default:
		return "", newTypeError("preview|instance|component", name)
	}
}

// Editing reports whether the mode accepts edits.
func (m EditorMode) Editing() bool {
	return m == ModeInstance || m == ModeComponent
}

// EditorState is the transient UI state around a document: the selected
// instance, the edit level and whether pointer selection is active. It is a
// value type; every transition returns a new state.
type EditorState struct {
	SelectedInstanceID string
	HoveredInstanceID  string
	Mode               EditorMode
	SelectMode         bool
}

// NewEditorState returns the initial state: preview mode, nothing selected.
func NewEditorState() EditorState {
	return EditorState{Mode: ModePreview}
}

// Select sets or clears (with "") the selected instance. Selecting does not
// leave select mode, so several instances can be picked in a row.
func (s EditorState) Select(id string) EditorState {
	s.SelectedInstanceID = id
	return s
}

// Click selects id when editing and is ignored in preview mode.
func (s EditorState) Click(id string) EditorState {
	if !s.Mode.Editing() {
		return s
	}
	return s.Select(id)
}

// Hover marks id as hovered when editing. An empty id clears the hover.
func (s EditorState) Hover(id string) EditorState {
	if id != "" && !s.Mode.Editing() {
		return s
	}
	s.HoveredInstanceID = id
	return s
}

// SetMode switches the edit level.
func (s EditorState) SetMode(mode EditorMode) EditorState {
	s.Mode = mode
	if !mode.Editing() {
		s.HoveredInstanceID = ""
	}
	return s
}

// ToggleSelectMode flips select mode. Entering it clears the selection.
func (s EditorState) ToggleSelectMode() EditorState {
	if !s.SelectMode && s.SelectedInstanceID != "" {
		s.SelectedInstanceID = ""
	}
	s.SelectMode = !s.SelectMode
	return s
}

// ToggleEditMode enters instance editing with select mode on, or returns to
// preview clearing selection and select mode.
func (s EditorState) ToggleEditMode() EditorState {
	if s.Mode.Editing() {
		return EditorState{Mode: ModePreview}
	}
	s.Mode = ModeInstance
	s.SelectMode = true
	return s
}

// Selected reports whether id is the selected instance.
func (s EditorState) Selected(id string) bool {
	return id != "" && s.SelectedInstanceID == id
}
