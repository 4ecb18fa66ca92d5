package design

// ThemeKey names one slot of the global theme.
type ThemeKey string

const (
	ThemePrimaryAccent       ThemeKey = "primaryAccent"
	ThemeSecondaryAccent     ThemeKey = "secondaryAccent"
	ThemePrimaryBackground   ThemeKey = "primaryBackground"
	ThemeSecondaryBackground ThemeKey = "secondaryBackground"
	ThemePrimaryText         ThemeKey = "primaryText"
	ThemeSecondaryText       ThemeKey = "secondaryText"
	ThemeFontFamily          ThemeKey = "fontFamily"
	ThemeBorderRadius        ThemeKey = "borderRadius"
	ThemeCardShadow          ThemeKey = "cardShadow"
	ThemeButtonShadow        ThemeKey = "buttonShadow"
)

// ThemeKeys lists every slot in display order.
func ThemeKeys() []ThemeKey {
	return []ThemeKey{
		ThemePrimaryAccent,
		ThemeSecondaryAccent,
		ThemePrimaryBackground,
		ThemeSecondaryBackground,
		ThemePrimaryText,
		ThemeSecondaryText,
		ThemeFontFamily,
		ThemeBorderRadius,
		ThemeCardShadow,
		ThemeButtonShadow,
	}
}

// ParseThemeKey validates a theme slot name.
func ParseThemeKey(name string) (ThemeKey, error) {
	for _, key := range ThemeKeys() {
		if string(key) == name {
			return key, nil
		}
	}
	return "", newValidationError("unknown theme key", map[string]interface{}{"key": name})
}

// ThemeSettings is the single process-wide theme record.
type ThemeSettings struct {
	PrimaryAccent       string
	SecondaryAccent     string
	PrimaryBackground   string
	SecondaryBackground string
	PrimaryText         string
	SecondaryText       string
	FontFamily          string
	BorderRadius        string
	CardShadow          string
	ButtonShadow        string
}

// DefaultTheme returns the seed theme.
func DefaultTheme() ThemeSettings {
	return ThemeSettings{
		PrimaryAccent:       "#3b82f6",
		SecondaryAccent:     "#10b981",
		PrimaryBackground:   "#ffffff",
		SecondaryBackground: "#f3f4f6",
		PrimaryText:         "#111827",
		SecondaryText:       "#6b7280",
		FontFamily:          "Inter, system-ui, sans-serif",
		BorderRadius:        "0.375rem",
		CardShadow:          "0 1px 3px 0 rgba(0, 0, 0, 0.1), 0 1px 2px 0 rgba(0, 0, 0, 0.06)",
		ButtonShadow:        "0 1px 2px 0 rgba(0, 0, 0, 0.05)",
	}
}

// Get returns the value of a slot.
func (t ThemeSettings) Get(key ThemeKey) (string, bool) {
	switch key {
	case ThemePrimaryAccent:
		return t.PrimaryAccent, true
	case ThemeSecondaryAccent:
		return t.SecondaryAccent, true
	case ThemePrimaryBackground:
		return t.PrimaryBackground, true
	case ThemeSecondaryBackground:
		return t.SecondaryBackground, true
	case ThemePrimaryText:
		return t.PrimaryText, true
	case ThemeSecondaryText:
		return t.SecondaryText, true
	case ThemeFontFamily:
		return t.FontFamily, true
	case ThemeBorderRadius:
		return t.BorderRadius, true
	case ThemeCardShadow:
		return t.CardShadow, true
	case ThemeButtonShadow:
		return t.ButtonShadow, true
	default:
		return "", false
	}
}

// With returns a copy of the theme with one slot replaced.
func (t ThemeSettings) With(key ThemeKey, value string) (ThemeSettings, error) {
	switch key {
	case ThemePrimaryAccent:
		t.PrimaryAccent = value
	case ThemeSecondaryAccent:
		t.SecondaryAccent = value
	case ThemePrimaryBackground:
		t.PrimaryBackground = value
	case ThemeSecondaryBackground:
		t.SecondaryBackground = value
	case ThemePrimaryText:
		t.PrimaryText = value
	case ThemeSecondaryText:
		t.SecondaryText = value
	case ThemeFontFamily:
		t.FontFamily = value
	case ThemeBorderRadius:
		t.BorderRadius = value
	case ThemeCardShadow:
		t.CardShadow = value
	case ThemeButtonShadow:
		t.ButtonShadow = value
	default:
		return t, newValidationError("unknown theme key", map[string]interface{}{"key": string(key)})
	}
	return t, nil
}

// ThemeOption is one entry of a theme picker catalogue.
type ThemeOption struct {
	Value string
	Label string
	Token string
}

// AccentColorOptions lists the accent colours offered for the accent slots.
func AccentColorOptions() []ThemeOption {
	return []ThemeOption{
		{Value: "#3b82f6", Label: "Blue 500", Token: "bg-blue-500"},
		{Value: "#6366f1", Label: "Indigo 500", Token: "bg-indigo-500"},
		{Value: "#8b5cf6", Label: "Purple 500", Token: "bg-purple-500"},
		{Value: "#ec4899", Label: "Pink 500", Token: "bg-pink-500"},
		{Value: "#ef4444", Label: "Red 500", Token: "bg-red-500"},
		{Value: "#f97316", Label: "Orange 500", Token: "bg-orange-500"},
		{Value: "#eab308", Label: "Yellow 500", Token: "bg-yellow-500"},
		{Value: "#22c55e", Label: "Green 500", Token: "bg-green-500"},
		{Value: "#10b981", Label: "Emerald 500", Token: "bg-emerald-500"},
		{Value: "#14b8a6", Label: "Teal 500", Token: "bg-teal-500"},
	}
}

// FontOptions lists the font stacks offered for the fontFamily slot.
func FontOptions() []ThemeOption {
	return []ThemeOption{
		{Value: "Inter, system-ui, sans-serif", Label: "Inter (Modern)"},
		{Value: "ui-serif, Georgia, Cambria, Times New Roman, Times, serif", Label: "Serif (Traditional)"},
		{Value: "ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, monospace", Label: "Monospace (Code)"},
		{Value: "Helvetica, Arial, sans-serif", Label: "Helvetica (Classic)"},
		{Value: `system-ui, -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif`, Label: "System UI (Native)"},
	}
}

// RadiusOptions lists the radii offered for the borderRadius slot.
func RadiusOptions() []ThemeOption {
	return []ThemeOption{
		{Value: "0", Label: "None - Square corners"},
		{Value: "0.125rem", Label: "Extra Small - 2px"},
		{Value: "0.25rem", Label: "Small - 4px"},
		{Value: "0.375rem", Label: "Medium - 6px (Default)"},
		{Value: "0.5rem", Label: "Large - 8px"},
		{Value: "0.75rem", Label: "Extra Large - 12px"},
		{Value: "1rem", Label: "XXL - 16px"},
		{Value: "9999px", Label: "Full - Rounded"},
	}
}

// ThemeOptions returns the picker catalogue for a slot, or nil when the slot
// accepts free-form values.
func ThemeOptions(key ThemeKey) []ThemeOption {
	switch key {
	case ThemePrimaryAccent, ThemeSecondaryAccent:
		return AccentColorOptions()
	case ThemeFontFamily:
		return FontOptions()
	case ThemeBorderRadius:
		return RadiusOptions()
	default:
		return nil
	}
}
