package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/daviddossett/targeted-selection/pkg/errors"
)

// ValidateDocument performs schema and cross-field validation: tags first,
// then identifier uniqueness across definitions and the whole instance tree.
// Dangling componentId references are allowed; they resolve to a placeholder.
func ValidateDocument(file *DocumentFile) error {
	if file == nil {
		return apperrors.NewValidationError("document", "document is nil", nil)
	}

	if err := validatorInstance().Struct(file); err != nil {
		return convertValidationError(err)
	}

	componentIndex := make(map[string]int, len(file.Components))
	for i, component := range file.Components {
		if first, exists := componentIndex[component.ID]; exists {
			return apperrors.NewValidationError(
				fieldFor("components", i, "id"),
				fmt.Sprintf("duplicate component id %q (first declared at components[%d])", component.ID, first),
				nil,
			)
		}
		componentIndex[component.ID] = i
	}

	seen := make(map[string]string)
	return checkInstanceIDs(file.Instances, "instances", seen)
}

func checkInstanceIDs(instances []InstanceFile, prefix string, seen map[string]string) error {
	for i, instance := range instances {
		path := fmt.Sprintf("%s[%d]", prefix, i)
		if first, exists := seen[instance.ID]; exists {
			return apperrors.NewValidationError(
				path+".id",
				fmt.Sprintf("duplicate instance id %q (first declared at %s)", instance.ID, first),
				nil,
			)
		}
		seen[instance.ID] = path
		if err := checkInstanceIDs(instance.Children, path+".children", seen); err != nil {
			return err
		}
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := fieldPath(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		if value, ok := ve.Value().(string); ok && value != "" {
			msg = fmt.Sprintf("%s (got %q)", msg, value)
		}
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("document", err.Error(), err)
}

// fieldPath drops the root struct name from the namespace, e.g.
// "DocumentFile.components[0].type" becomes "components[0].type".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func fieldFor(collection string, index int, field string) string {
	return fmt.Sprintf("%s[%d].%s", collection, index, field)
}
