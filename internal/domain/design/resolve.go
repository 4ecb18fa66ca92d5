package design

import "strings"

// Resolved is the render-ready output for one instance.
type Resolved struct {
	InstanceID string
	Definition ComponentDefinition
	Style      Style
	Properties Properties
}

// ResolveStyles merges definition defaults with the instance's non-empty
// overrides and then applies shorthand normalisation. The caller must have
// already looked up the definition.
func ResolveStyles(instance ComponentInstance, definition ComponentDefinition) Style {
	merged := definition.DefaultStyles.Clone()
	if len(instance.InstanceStyles) > 0 {
		merged = MergeStyles(merged, instance.InstanceStyles)
	}
	return NormalizeShorthands(merged)
}

// ResolveProperties surfaces exactly the definition's property keys, taking
// the instance value where one is present.
func ResolveProperties(instance ComponentInstance, definition ComponentDefinition) Properties {
	resolved := make(Properties, len(definition.Properties))
	for key, fallback := range definition.Properties {
		if value, ok := instance.Properties[key]; ok {
			resolved[key] = value
			continue
		}
		resolved[key] = fallback
	}
	return resolved
}

// TokenClass classifies a colour value.
type TokenClass int

const (
	// TokenConcrete is a literal colour (hex, rgb(), named) used as-is.
	TokenConcrete TokenClass = iota
	// TokenBackground is a symbolic "bg-*" class.
	TokenBackground
	// TokenText is a symbolic "text-*" class.
	TokenText
)

// ClassifyColorToken classifies a style value by prefix convention.
func ClassifyColorToken(value string) TokenClass {
	v := strings.TrimSpace(value)
	switch {
	case strings.HasPrefix(v, "bg-"):
		return TokenBackground
	case strings.HasPrefix(v, "text-"):
		return TokenText
	default:
		return TokenConcrete
	}
}

type themeBinding struct {
	key  StyleKey
	slot ThemeKey
}

var typeFallbacks = map[ComponentType][]themeBinding{
	ComponentButton: {
		{StyleBackgroundColor, ThemePrimaryAccent},
		{StyleColor, ThemePrimaryText},
		{StyleBoxShadow, ThemeButtonShadow},
	},
	ComponentCard: {
		{StyleBackgroundColor, ThemePrimaryBackground},
		{StyleBoxShadow, ThemeCardShadow},
	},
	ComponentContainer: {
		{StyleBackgroundColor, ThemeSecondaryBackground},
	},
	ComponentText: {
		{StyleColor, ThemePrimaryText},
	},
}

var commonFallbacks = []themeBinding{
	{StyleFontFamily, ThemeFontFamily},
	{StyleBorderRadius, ThemeBorderRadius},
}

// ApplyThemeFallback fills attributes that are absent or empty after the
// definition/instance merge. It never replaces an explicit value.
func ApplyThemeFallback(style Style, componentType ComponentType, theme ThemeSettings) Style {
	out := style.Clone()
	bindings := append(append([]themeBinding(nil), typeFallbacks[componentType]...), commonFallbacks...)
	for _, binding := range bindings {
		if _, ok := out.Get(binding.key); ok {
			continue
		}
		value, _ := theme.Get(binding.slot)
		if value == "" {
			continue
		}
		out[binding.key] = value
	}
	return out
}

// ResolvedNode is one entry of a whole-tree resolution. Exactly one of
// Resolved and Err is meaningful.
type ResolvedNode struct {
	Instance ComponentInstance
	Depth    int
	ParentID string
	Resolved Resolved
	Err      error
	Children []ResolvedNode
}

// NotFound reports whether the node's definition could not be found.
func (n ResolvedNode) NotFound() bool {
	return IsComponentNotFound(n.Err)
}
