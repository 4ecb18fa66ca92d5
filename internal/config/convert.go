package config

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/daviddossett/targeted-selection/internal/domain/design"
	apperrors "github.com/daviddossett/targeted-selection/pkg/errors"
)

// CurrentVersion is written into encoded documents.
const CurrentVersion = "1.0.0"

// ToDomain converts a validated file into the document aggregate. Theme slots
// that are missing fall back to design.DefaultTheme. Parent ids are derived
// from nesting.
func ToDomain(file *DocumentFile) (design.Document, error) {
	if file == nil {
		return design.Document{}, apperrors.NewValidationError("document", "document is nil", nil)
	}

	components := make([]design.ComponentDefinition, 0, len(file.Components))
	for i, component := range file.Components {
		properties, err := toProperties(component.Properties, fieldFor("components", i, "properties"))
		if err != nil {
			return design.Document{}, err
		}
		components = append(components, design.ComponentDefinition{
			ID:            component.ID,
			Type:          design.ComponentType(component.Type),
			Label:         lo.Ternary(component.Label == "", component.ID, component.Label),
			DefaultStyles: toStyle(component.DefaultStyles),
			Properties:    properties,
		})
	}

	instances, err := toInstances(file.Instances, "", "instances")
	if err != nil {
		return design.Document{}, err
	}

	doc := design.NewDocument(design.AppDefinition{Components: components, Instances: instances}, themeFromFile(file.Theme))
	if err := doc.Validate(); err != nil {
		return design.Document{}, err
	}
	return doc, nil
}

func toInstances(files []InstanceFile, parentID, prefix string) ([]design.ComponentInstance, error) {
	if len(files) == 0 {
		return nil, nil
	}
	instances := make([]design.ComponentInstance, 0, len(files))
	for i, file := range files {
		path := fmt.Sprintf("%s[%d]", prefix, i)
		properties, err := toProperties(file.Properties, path+".properties")
		if err != nil {
			return nil, err
		}
		children, err := toInstances(file.Children, file.ID, path+".children")
		if err != nil {
			return nil, err
		}
		instances = append(instances, design.ComponentInstance{
			ID:             file.ID,
			ComponentID:    file.ComponentID,
			ParentID:       parentID,
			InstanceStyles: toStyle(file.InstanceStyles),
			Properties:     properties,
			Children:       children,
		})
	}
	return instances, nil
}

func toStyle(raw map[string]string) design.Style {
	style := make(design.Style, len(raw))
	for key, value := range raw {
		style[design.StyleKey(key)] = value
	}
	return style
}

func toProperties(raw map[string]interface{}, field string) (design.Properties, error) {
	properties := make(design.Properties, len(raw))
	for _, key := range sortedKeys(raw) {
		value, err := design.PropertyFromAny(raw[key])
		if err != nil {
			return nil, apperrors.NewValidationError(field+"."+key, "property values must be strings, numbers or booleans", err)
		}
		properties[key] = value
	}
	return properties, nil
}

func sortedKeys(raw map[string]interface{}) []string {
	keys := lo.Keys(raw)
	sort.Strings(keys)
	return keys
}

func themeFromFile(file *ThemeFile) design.ThemeSettings {
	theme := design.DefaultTheme()
	if file == nil {
		return theme
	}
	pick := func(value, fallback string) string {
		return lo.Ternary(value == "", fallback, value)
	}
	return design.ThemeSettings{
		PrimaryAccent:       pick(file.PrimaryAccent, theme.PrimaryAccent),
		SecondaryAccent:     pick(file.SecondaryAccent, theme.SecondaryAccent),
		PrimaryBackground:   pick(file.PrimaryBackground, theme.PrimaryBackground),
		SecondaryBackground: pick(file.SecondaryBackground, theme.SecondaryBackground),
		PrimaryText:         pick(file.PrimaryText, theme.PrimaryText),
		SecondaryText:       pick(file.SecondaryText, theme.SecondaryText),
		FontFamily:          pick(file.FontFamily, theme.FontFamily),
		BorderRadius:        pick(file.BorderRadius, theme.BorderRadius),
		CardShadow:          pick(file.CardShadow, theme.CardShadow),
		ButtonShadow:        pick(file.ButtonShadow, theme.ButtonShadow),
	}
}

// FromDomain converts the aggregate into its file representation.
func FromDomain(doc design.Document) *DocumentFile {
	theme := doc.Theme
	return &DocumentFile{
		Version: CurrentVersion,
		Theme: &ThemeFile{
			PrimaryAccent:       theme.PrimaryAccent,
			SecondaryAccent:     theme.SecondaryAccent,
			PrimaryBackground:   theme.PrimaryBackground,
			SecondaryBackground: theme.SecondaryBackground,
			PrimaryText:         theme.PrimaryText,
			SecondaryText:       theme.SecondaryText,
			FontFamily:          theme.FontFamily,
			BorderRadius:        theme.BorderRadius,
			CardShadow:          theme.CardShadow,
			ButtonShadow:        theme.ButtonShadow,
		},
		Components: lo.Map(doc.App.Components, func(component design.ComponentDefinition, _ int) ComponentFile {
			return ComponentFile{
				ID:            component.ID,
				Type:          string(component.Type),
				Label:         component.Label,
				DefaultStyles: fromStyle(component.DefaultStyles),
				Properties:    fromProperties(component.Properties),
			}
		}),
		Instances: fromInstances(doc.App.Instances),
	}
}

func fromInstances(instances []design.ComponentInstance) []InstanceFile {
	if len(instances) == 0 {
		return nil
	}
	return lo.Map(instances, func(instance design.ComponentInstance, _ int) InstanceFile {
		return InstanceFile{
			ID:             instance.ID,
			ComponentID:    instance.ComponentID,
			ParentID:       instance.ParentID,
			InstanceStyles: fromStyle(instance.InstanceStyles),
			Properties:     fromProperties(instance.Properties),
			Children:       fromInstances(instance.Children),
		}
	})
}

func fromStyle(style design.Style) map[string]string {
	if len(style) == 0 {
		return nil
	}
	out := make(map[string]string, len(style))
	for key, value := range style {
		if value == "" {
			continue
		}
		out[string(key)] = value
	}
	return out
}

func fromProperties(properties design.Properties) map[string]interface{} {
	if len(properties) == 0 {
		return nil
	}
	return properties.Map()
}
