package editor

import (
	"fmt"

	"github.com/samber/mo"

	"github.com/daviddossett/targeted-selection/internal/domain/design"
	"github.com/daviddossett/targeted-selection/internal/ports"
)

// OperationKind names one document mutation.
type OperationKind string

const (
	OpSetStyle                OperationKind = "set-style"
	OpResetStyle              OperationKind = "reset-style"
	OpSetProperty             OperationKind = "set-property"
	OpUnsetProperty           OperationKind = "unset-property"
	OpReset                   OperationKind = "reset"
	OpPush                    OperationKind = "push"
	OpUpdateComponentStyle    OperationKind = "update-component-style"
	OpUpdateComponentProperty OperationKind = "update-component-property"
	OpUpdateComponentLabel    OperationKind = "update-component-label"
	OpTheme                   OperationKind = "theme"
)

// Operation is a single mutation request. Text carries style, label and theme
// values; Property carries property values. An absent value on set-style or
// set-property is the tombstone that clears the override.
type Operation struct {
	Kind      OperationKind
	Instance  string
	Component string
	Key       string
	Text      mo.Option[string]
	Property  mo.Option[design.PropertyValue]
}

// SetStyle builds a set-style operation.
func SetStyle(instanceID string, key design.StyleKey, value string) Operation {
	return Operation{Kind: OpSetStyle, Instance: instanceID, Key: string(key), Text: mo.Some(value)}
}

// SetProperty builds a set-property operation.
func SetProperty(instanceID, key string, value design.PropertyValue) Operation {
	return Operation{Kind: OpSetProperty, Instance: instanceID, Key: key, Property: mo.Some(value)}
}

// UpdateTheme builds a theme operation.
func UpdateTheme(key design.ThemeKey, value string) Operation {
	return Operation{Kind: OpTheme, Key: string(key), Text: mo.Some(value)}
}

// outcome is what one applied operation reports to subscribers.
type outcome struct {
	eventType string
	payload   map[string]interface{}
}

func (op Operation) fields() map[string]interface{} {
	fields := map[string]interface{}{"op": string(op.Kind)}
	if op.Instance != "" {
		fields["instance_id"] = op.Instance
	}
	if op.Component != "" {
		fields["component_id"] = op.Component
	}
	if op.Key != "" {
		fields["key"] = op.Key
	}
	return fields
}

// applyOperation runs op against doc. It never mutates doc.
func applyOperation(doc design.Document, op Operation) (design.Document, outcome, error) {
	payload := op.fields()

	switch op.Kind {
	case OpSetStyle, OpResetStyle:
		key, err := design.ParseStyleKey(op.Key)
		if err != nil {
			return doc, outcome{}, err
		}
		value := ""
		if op.Kind == OpSetStyle {
			value = op.Text.OrEmpty()
		}
		next, err := doc.SetInstanceStyle(op.Instance, key, value)
		if err != nil {
			return doc, outcome{}, err
		}
		payload["value"] = value
		payload["cleared"] = value == ""
		return next, outcome{ports.EventInstanceStyleChanged, payload}, nil

	case OpSetProperty, OpUnsetProperty:
		value := design.Unset
		if v, ok := op.Property.Get(); ok && op.Kind == OpSetProperty {
			value = design.Set(v)
		}
		next, err := doc.SetInstanceProperty(op.Instance, op.Key, value)
		if err != nil {
			return doc, outcome{}, err
		}
		if value != nil {
			payload["value"] = value.Interface()
		}
		payload["cleared"] = value == nil
		return next, outcome{ports.EventInstancePropertyChanged, payload}, nil

	case OpReset:
		next, err := doc.ResetAllOverrides(op.Instance)
		if err != nil {
			return doc, outcome{}, err
		}
		return next, outcome{ports.EventOverridesReset, payload}, nil

	case OpPush:
		instance, err := doc.Instance(op.Instance)
		if err != nil {
			return doc, outcome{}, err
		}
		summary, _ := doc.OverrideSummary(op.Instance)
		next, err := doc.PushOverridesToComponent(op.Instance)
		if err != nil {
			return doc, outcome{}, err
		}
		payload["component_id"] = instance.ComponentID
		payload["styles"] = len(summary.Styles)
		payload["properties"] = len(summary.Properties) + len(summary.Orphaned)
		return next, outcome{ports.EventOverridesPushed, payload}, nil

	case OpUpdateComponentStyle:
		key, err := design.ParseStyleKey(op.Key)
		if err != nil {
			return doc, outcome{}, err
		}
		value := op.Text.OrEmpty()
		next, err := doc.UpdateComponentStyle(op.Component, key, value)
		if err != nil {
			return doc, outcome{}, err
		}
		payload["value"] = value
		payload["dependents"] = len(next.InstancesOf(op.Component))
		return next, outcome{ports.EventComponentUpdated, payload}, nil

	case OpUpdateComponentProperty:
		value, ok := op.Property.Get()
		if !ok {
			return doc, outcome{}, missingValue(op)
		}
		next, err := doc.UpdateComponentProperty(op.Component, op.Key, value)
		if err != nil {
			return doc, outcome{}, err
		}
		payload["value"] = value.Interface()
		payload["dependents"] = len(next.InstancesOf(op.Component))
		return next, outcome{ports.EventComponentUpdated, payload}, nil

	case OpUpdateComponentLabel:
		label, ok := op.Text.Get()
		if !ok {
			return doc, outcome{}, missingValue(op)
		}
		next, err := doc.UpdateComponentLabel(op.Component, label)
		if err != nil {
			return doc, outcome{}, err
		}
		payload["value"] = label
		return next, outcome{ports.EventComponentUpdated, payload}, nil

	case OpTheme:
		key, err := design.ParseThemeKey(op.Key)
		if err != nil {
			return doc, outcome{}, err
		}
		value, ok := op.Text.Get()
		if !ok {
			return doc, outcome{}, missingValue(op)
		}
		next, change, err := doc.UpdateThemeSetting(key, value)
		if err != nil {
			return doc, outcome{}, err
		}
		payload["old_value"] = change.OldValue
		payload["value"] = change.NewValue
		payload["rebound"] = change.Rebound
		return next, outcome{ports.EventThemeUpdated, payload}, nil

	default:
		return doc, outcome{}, &design.DomainError{
			Code:    design.ErrCodeValidation,
			Message: fmt.Sprintf("unknown operation %q", op.Kind),
			Context: payload,
		}
	}
}

func missingValue(op Operation) error {
	return &design.DomainError{
		Code:    design.ErrCodeValidation,
		Message: fmt.Sprintf("%s requires a value", op.Kind),
		Context: op.fields(),
	}
}
