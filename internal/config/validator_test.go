package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/daviddossett/targeted-selection/pkg/errors"
)

func validFile() *DocumentFile {
	return &DocumentFile{
		Version: "1.0.0",
		Components: []ComponentFile{
			{ID: "btn", Type: "button", DefaultStyles: map[string]string{"backgroundColor": "#fff"}},
			{ID: "txt", Type: "text"},
		},
		Instances: []InstanceFile{
			{ID: "root", ComponentID: "btn", Children: []InstanceFile{{ID: "leaf", ComponentID: "txt"}}},
		},
	}
}

func TestValidateDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*DocumentFile)
		field  string
	}{
		{name: "valid", mutate: func(*DocumentFile) {}},
		{
			name:   "bad version",
			mutate: func(f *DocumentFile) { f.Version = "one" },
			field:  "version",
		},
		{
			name:   "no components",
			mutate: func(f *DocumentFile) { f.Components = nil },
			field:  "components",
		},
		{
			name:   "unknown type",
			mutate: func(f *DocumentFile) { f.Components[1].Type = "image" },
			field:  "components[1].type",
		},
		{
			name:   "bad component id",
			mutate: func(f *DocumentFile) { f.Components[0].ID = "has space" },
			field:  "components[0].id",
		},
		{
			name:   "unknown style key",
			mutate: func(f *DocumentFile) { f.Components[0].DefaultStyles["zIndex"] = "3" },
			field:  "components[0].defaultStyles[zIndex]",
		},
		{
			name:   "nested unknown style key",
			mutate: func(f *DocumentFile) { f.Instances[0].Children[0].InstanceStyles = map[string]string{"float": "left"} },
			field:  "instances[0].children[0].instanceStyles[float]",
		},
		{
			name:   "duplicate component",
			mutate: func(f *DocumentFile) { f.Components[1].ID = "btn" },
			field:  "components[1].id",
		},
		{
			name: "duplicate instance across depths",
			mutate: func(f *DocumentFile) {
				f.Instances = append(f.Instances, InstanceFile{ID: "leaf", ComponentID: "btn"})
			},
			field: "instances[1].id",
		},
		{
			name:   "missing component reference",
			mutate: func(f *DocumentFile) { f.Instances[0].ComponentID = "" },
			field:  "instances[0].componentId",
		},
		{
			name:   "dangling reference is allowed",
			mutate: func(f *DocumentFile) { f.Instances[0].ComponentID = "ghost" },
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			file := validFile()
			tt.mutate(file)

			err := ValidateDocument(file)
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestValidateDocumentNil(t *testing.T) {
	t.Parallel()

	require.Error(t, ValidateDocument(nil))
}

func TestValidatorRegistersDomainTags(t *testing.T) {
	t.Parallel()

	v := GetValidator()
	require.NoError(t, v.Var("card", "component_type"))
	require.Error(t, v.Var("image", "component_type"))
	require.NoError(t, v.Var("gridTemplateColumns", "style_key"))
	require.Error(t, v.Var("zIndex", "style_key"))
	require.NoError(t, v.Var("buttonShadow", "theme_key"))
	require.Error(t, v.Var("accent", "theme_key"))
}
