package design

// ComponentType is the closed set of leaf renderers.
type ComponentType string

const (
	ComponentButton    ComponentType = "button"
	ComponentText      ComponentType = "text"
	ComponentCard      ComponentType = "card"
	ComponentContainer ComponentType = "container"
)

// ComponentTypes lists every supported type.
func ComponentTypes() []ComponentType {
	return []ComponentType{ComponentButton, ComponentText, ComponentCard, ComponentContainer}
}

// Valid reports whether t is one of the supported component types.
func (t ComponentType) Valid() bool {
	switch t {
	case ComponentButton, ComponentText, ComponentCard, ComponentContainer:
		return true
	default:
		return false
	}
}

// ParseComponentType validates a type tag.
func ParseComponentType(name string) (ComponentType, error) {
	t := ComponentType(name)
	if !t.Valid() {
		return "", newTypeError("button|text|card|container", name)
	}
	return t, nil
}

// ComponentDefinition is a reusable template shared by many instances.
type ComponentDefinition struct {
	ID            string
	Type          ComponentType
	Label         string
	DefaultStyles Style
	Properties    Properties
}

// Clone returns a deep copy of the definition.
func (d ComponentDefinition) Clone() ComponentDefinition {
	return ComponentDefinition{
		ID:            d.ID,
		Type:          d.Type,
		Label:         d.Label,
		DefaultStyles: d.DefaultStyles.Clone(),
		Properties:    d.Properties.Clone(),
	}
}

// Validate checks the definition's own invariants.
func (d ComponentDefinition) Validate() error {
	if d.ID == "" {
		return newValidationError("component definition requires an id", nil)
	}
	if !d.Type.Valid() {
		return newTypeError("button|text|card|container", string(d.Type)).WithContext(map[string]interface{}{"component_id": d.ID})
	}
	for key := range d.DefaultStyles {
		if !key.Valid() {
			return newValidationError("unknown style key", map[string]interface{}{"component_id": d.ID, "key": string(key)})
		}
	}
	return nil
}

// AppDefinition is the document root: the definition catalogue plus the
// instance forest.
type AppDefinition struct {
	Components []ComponentDefinition
	Instances  []ComponentInstance
}

// Component looks up a definition by id. This is the only way instances
// reach their template.
func (a AppDefinition) Component(id string) (ComponentDefinition, bool) {
	for _, component := range a.Components {
		if component.ID == id {
			return component, true
		}
	}
	return ComponentDefinition{}, false
}

func (a AppDefinition) componentIndex(id string) int {
	for i := range a.Components {
		if a.Components[i].ID == id {
			return i
		}
	}
	return -1
}

// replaceComponent returns a new catalogue with the definition at index i
// replaced. Other definitions are shared.
func (a AppDefinition) replaceComponent(i int, def ComponentDefinition) []ComponentDefinition {
	next := make([]ComponentDefinition, len(a.Components))
	copy(next, a.Components)
	next[i] = def
	return next
}
