package design

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveStylesPrecedence(t *testing.T) {
	t.Parallel()

	definition := ComponentDefinition{
		ID:            "btn",
		Type:          ComponentButton,
		DefaultStyles: Style{StyleBackgroundColor: "#3b82f6", StylePadding: "0.5rem", StyleColor: "#fff"},
	}
	instance := ComponentInstance{
		ID:             "i1",
		ComponentID:    "btn",
		InstanceStyles: Style{StyleBackgroundColor: "#10b981", StyleColor: ""},
	}

	resolved := ResolveStyles(instance, definition)
	for _, key := range StyleKeys() {
		if override, ok := instance.InstanceStyles.Get(key); ok {
			require.Equal(t, override, resolved[key], key)
			continue
		}
		require.Equal(t, definition.DefaultStyles[key], resolved[key], key)
	}
}

func TestResolveStylesShorthandSuppression(t *testing.T) {
	t.Parallel()

	definition := ComponentDefinition{ID: "text", Type: ComponentText, DefaultStyles: Style{StyleMargin: "0", StylePadding: "1rem"}}
	instance := ComponentInstance{ID: "t1", ComponentID: "text", InstanceStyles: Style{StyleMarginTop: "8px"}}

	resolved := ResolveStyles(instance, definition)
	require.NotContains(t, resolved, StyleMargin)
	require.Equal(t, "8px", resolved[StyleMarginTop])
	require.Equal(t, "1rem", resolved[StylePadding])
}

func TestResolvePropertiesSurfacesDefinitionKeysOnly(t *testing.T) {
	t.Parallel()

	definition := ComponentDefinition{
		ID:         "btn",
		Properties: Properties{"text": StringValue("Click me"), "onClick": StringValue("noop")},
	}
	instance := ComponentInstance{
		ID:         "i1",
		Properties: Properties{"text": StringValue(""), "variant": StringValue("ghost")},
	}

	resolved := ResolveProperties(instance, definition)
	require.Equal(t, Properties{"text": StringValue(""), "onClick": StringValue("noop")}, resolved)
}

func TestClassifyColorToken(t *testing.T) {
	t.Parallel()

	require.Equal(t, TokenBackground, ClassifyColorToken("bg-blue-500"))
	require.Equal(t, TokenText, ClassifyColorToken(" text-gray-900"))
	require.Equal(t, TokenConcrete, ClassifyColorToken("#3b82f6"))
	require.Equal(t, TokenConcrete, ClassifyColorToken("rgb(0,0,0)"))
}

func TestApplyThemeFallback(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()

	tests := []struct {
		name   string
		style  Style
		typ    ComponentType
		expect Style
	}{
		{
			name:  "button fills accent, text and shadow",
			style: Style{StylePadding: "1rem"},
			typ:   ComponentButton,
			expect: Style{
				StylePadding:         "1rem",
				StyleBackgroundColor: theme.PrimaryAccent,
				StyleColor:           theme.PrimaryText,
				StyleBoxShadow:       theme.ButtonShadow,
				StyleFontFamily:      theme.FontFamily,
				StyleBorderRadius:    theme.BorderRadius,
			},
		},
		{
			name:  "explicit values are never replaced",
			style: Style{StyleBackgroundColor: "#000", StyleColor: "text-white", StyleBoxShadow: "none", StyleFontFamily: "mono", StyleBorderRadius: "0"},
			typ:   ComponentButton,
			expect: Style{
				StyleBackgroundColor: "#000",
				StyleColor:           "text-white",
				StyleBoxShadow:       "none",
				StyleFontFamily:      "mono",
				StyleBorderRadius:    "0",
			},
		},
		{
			name:  "token of the other class is still an explicit value",
			style: Style{StyleBackgroundColor: "text-gray-900", StyleColor: "bg-red-500"},
			typ:   ComponentButton,
			expect: Style{
				StyleBackgroundColor: "text-gray-900",
				StyleColor:           "bg-red-500",
				StyleBoxShadow:       theme.ButtonShadow,
				StyleFontFamily:      theme.FontFamily,
				StyleBorderRadius:    theme.BorderRadius,
			},
		},
		{
			name:  "container only receives background variant",
			style: Style{StyleBackgroundColor: ""},
			typ:   ComponentContainer,
			expect: Style{
				StyleBackgroundColor: theme.SecondaryBackground,
				StyleFontFamily:      theme.FontFamily,
				StyleBorderRadius:    theme.BorderRadius,
			},
		},
		{
			name:  "text receives colour",
			style: Style{},
			typ:   ComponentText,
			expect: Style{
				StyleColor:        theme.PrimaryText,
				StyleFontFamily:   theme.FontFamily,
				StyleBorderRadius: theme.BorderRadius,
			},
		},
		{
			name:  "card receives background and shadow",
			style: Style{},
			typ:   ComponentCard,
			expect: Style{
				StyleBackgroundColor: theme.PrimaryBackground,
				StyleBoxShadow:       theme.CardShadow,
				StyleFontFamily:      theme.FontFamily,
				StyleBorderRadius:    theme.BorderRadius,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			before := tt.style.Clone()
			require.Equal(t, tt.expect, ApplyThemeFallback(tt.style, tt.typ, theme))
			require.Equal(t, before, tt.style)
		})
	}
}

func TestApplyThemeFallbackSkipsEmptySlots(t *testing.T) {
	t.Parallel()

	got := ApplyThemeFallback(Style{}, ComponentText, ThemeSettings{})
	require.Empty(t, got)
}
