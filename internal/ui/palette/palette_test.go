package palette

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	cases := []struct {
		token string
		want  string
		ok    bool
	}{
		{token: "bg-blue-500", want: "#3b82f6", ok: true},
		{token: "text-gray-900", want: "#111827", ok: true},
		{token: "bg-gray-50", want: "#f9fafb", ok: true},
		{token: "bg-emerald-500", want: "#10b981", ok: true},
		{token: "text-white", want: "#ffffff", ok: true},
		{token: "bg-emerald-100", ok: false},
		{token: "bg-blue-550", ok: false},
		{token: "bg-magenta-500", ok: false},
		{token: "#3b82f6", ok: false},
		{token: "bg-", ok: false},
	}

	for _, tc := range cases {
		got, ok := Lookup(tc.token)
		require.Equal(t, tc.ok, ok, tc.token)
		require.Equal(t, tc.want, got, tc.token)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#3b82f6", Resolve(" bg-blue-500 "))
	require.Equal(t, "#abcdef", Resolve("#ABCDEF"))
	require.Equal(t, "#fff", Resolve("#fff"))
	require.Equal(t, "#ffffff", Resolve("white"))
	require.Equal(t, "", Resolve("rgba(0,0,0,0.1)"))
	require.Equal(t, "", Resolve("#12345"))
}

func TestColor(t *testing.T) {
	t.Parallel()

	require.Equal(t, lipgloss.Color("#ef4444"), Color("bg-red-500"))
	require.Equal(t, lipgloss.NoColor{}, Color("none"))
}

func TestShadeRoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []string{"50", "100", "500", "900"} {
		shade, ok := ParseShade(n)
		require.True(t, ok, n)
		require.Equal(t, Token("bg", "gray", shade), "bg-gray-"+n)
	}
	_, ok := ParseShade("1000")
	require.False(t, ok)
}

func TestFamilies(t *testing.T) {
	t.Parallel()

	names := Families()
	require.Contains(t, names, "slate")
	require.IsIncreasing(t, names)

	shades, ok := Family("zinc")
	require.True(t, ok)
	require.Equal(t, "#18181b", shades.Color(Shade900))
	require.Equal(t, "", shades.Color(Shade(12)))
}
