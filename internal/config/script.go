package config

import (
	"fmt"

	"github.com/spf13/afero"

	apperrors "github.com/daviddossett/targeted-selection/pkg/errors"
)

// Script operation names.
const (
	OpSetStyle                = "set-style"
	OpSetProperty             = "set-property"
	OpUnsetProperty           = "unset-property"
	OpReset                   = "reset"
	OpPush                    = "push"
	OpUpdateComponentStyle    = "update-component-style"
	OpUpdateComponentProperty = "update-component-property"
	OpUpdateComponentLabel    = "update-component-label"
	OpTheme                   = "theme"
)

// ScriptFile is a batch of edits applied in order through an editor session.
type ScriptFile struct {
	Ops []ScriptOp `yaml:"ops" toml:"ops" json:"ops" validate:"required,min=1,dive" jsonschema:"description=Operations applied in order. The first failure stops the script."`
}

// ScriptOp is one edit. Which of Instance, Component and Key are required
// depends on Op.
type ScriptOp struct {
	Op        string      `yaml:"op" toml:"op" json:"op" validate:"required,oneof=set-style set-property unset-property reset push update-component-style update-component-property update-component-label theme" jsonschema:"enum=set-style,enum=set-property,enum=unset-property,enum=reset,enum=push,enum=update-component-style,enum=update-component-property,enum=update-component-label,enum=theme"`
	Instance  string      `yaml:"instance,omitempty" toml:"instance,omitempty" json:"instance,omitempty"`
	Component string      `yaml:"component,omitempty" toml:"component,omitempty" json:"component,omitempty"`
	Key       string      `yaml:"key,omitempty" toml:"key,omitempty" json:"key,omitempty"`
	Value     interface{} `yaml:"value,omitempty" toml:"value,omitempty" json:"value,omitempty" jsonschema:"description=String for styles and theme slots. String, number or boolean for properties."`
}

// ParseScript reads and validates an edit script.
func ParseScript(fsys afero.Fs, path string) (*ScriptFile, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, apperrors.NewValidationError("path", err.Error(), err)
	}
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}

	var script ScriptFile
	if err := decodeStrict(data, format, path, &script); err != nil {
		return nil, err
	}
	if err := ValidateScript(&script); err != nil {
		return nil, err
	}
	return &script, nil
}

// ValidateScript checks every operation carries the fields it needs.
func ValidateScript(script *ScriptFile) error {
	if script == nil {
		return apperrors.NewValidationError("ops", "script is nil", nil)
	}
	v := validatorInstance()
	if err := v.Struct(script); err != nil {
		return convertValidationError(err)
	}

	for i, op := range script.Ops {
		field := func(name string) string { return fieldFor("ops", i, name) }
		missing := func(name string) error {
			return apperrors.NewValidationError(field(name), fmt.Sprintf("%s is required for %s", name, op.Op), nil)
		}

		switch op.Op {
		case OpSetStyle, OpSetProperty, OpUnsetProperty:
			if op.Instance == "" {
				return missing("instance")
			}
			if op.Key == "" {
				return missing("key")
			}
		case OpReset, OpPush:
			if op.Instance == "" {
				return missing("instance")
			}
		case OpUpdateComponentStyle, OpUpdateComponentProperty, OpUpdateComponentLabel:
			if op.Component == "" {
				return missing("component")
			}
			if op.Op != OpUpdateComponentLabel && op.Key == "" {
				return missing("key")
			}
		case OpTheme:
			if err := v.Var(op.Key, "required,theme_key"); err != nil {
				return apperrors.NewValidationError(field("key"), fmt.Sprintf("unknown theme key %q", op.Key), err)
			}
		}

		switch op.Op {
		case OpSetStyle, OpUpdateComponentStyle:
			if err := v.Var(op.Key, "style_key"); err != nil {
				return apperrors.NewValidationError(field("key"), fmt.Sprintf("unknown style key %q", op.Key), err)
			}
			if _, ok := op.Value.(string); op.Value != nil && !ok {
				return apperrors.NewValidationError(field("value"), "style values must be strings", nil)
			}
		case OpTheme, OpUpdateComponentLabel:
			if _, ok := op.Value.(string); !ok {
				return apperrors.NewValidationError(field("value"), fmt.Sprintf("%s requires a string value", op.Op), nil)
			}
		case OpSetProperty, OpUpdateComponentProperty:
			if op.Value == nil {
				return missing("value")
			}
		}
	}
	return nil
}
