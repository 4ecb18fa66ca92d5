package preview

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daviddossett/targeted-selection/internal/domain/design"
)

func TestLengthRem(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{in: "1rem", want: 1, ok: true},
		{in: "0.5rem", want: 0.5, ok: true},
		{in: "16px", want: 1, ok: true},
		{in: "2em", want: 2, ok: true},
		{in: "0", want: 0, ok: true},
		{in: "100%", ok: false},
		{in: "auto", ok: false},
		{in: "wide", ok: false},
	}

	for _, tc := range cases {
		got, ok := lengthRem(tc.in)
		require.Equal(t, tc.ok, ok, tc.in)
		require.InDelta(t, tc.want, got, 0.0001, tc.in)
	}
}

func TestBoxSpacingShorthandAndLonghands(t *testing.T) {
	t.Parallel()

	require.Equal(t, Spacing{Top: 0, Right: 2, Bottom: 0, Left: 2}, padding(design.Style{design.StylePadding: "0.5rem 1rem"}))
	require.Equal(t, Spacing{Top: 1, Right: 2, Bottom: 1, Left: 2}, padding(design.Style{design.StylePadding: "1rem"}))
	require.Equal(t, Spacing{Top: 2, Right: 4, Bottom: 0, Left: 0}, padding(design.Style{
		design.StylePaddingTop:   "3rem",
		design.StylePaddingRight: "5rem",
	}))
	require.Equal(t, Spacing{Top: 1, Right: 1, Bottom: 1, Left: 1}, margin(design.Style{
		design.StyleMargin:     "1rem 8px 1rem",
		design.StyleMarginLeft: "0.5rem",
	}))
}

func TestStyleFlags(t *testing.T) {
	t.Parallel()

	require.True(t, bold(design.Style{design.StyleFontWeight: "700"}))
	require.True(t, bold(design.Style{design.StyleFontWeight: "bold"}))
	require.False(t, bold(design.Style{design.StyleFontWeight: "500"}))

	require.True(t, pill(design.Style{design.StyleBorderRadius: "9999px"}))
	require.False(t, pill(design.Style{design.StyleBorderRadius: "0.375rem"}))

	require.True(t, bordered(design.Style{design.StyleBorder: "1px solid #000"}))
	require.False(t, bordered(design.Style{design.StyleBorder: "none"}))
}

func TestInsetsClampOutOfRangeLengths(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		rows    int
		columns int
	}{
		{in: "1e30rem", rows: maxInsetRows, columns: maxInsetColumn},
		{in: "1e300px", rows: maxInsetRows, columns: maxInsetColumn},
		{in: "-1e30rem", rows: 0, columns: 0},
		{in: "NaNrem", rows: 0, columns: 0},
		{in: "Infpx", rows: 0, columns: 0},
		{in: "-Inf", rows: 0, columns: 0},
		{in: "1.5rem", rows: 1, columns: 3},
	}

	for _, tc := range cases {
		require.Equal(t, tc.rows, rows(tc.in), tc.in)
		require.Equal(t, tc.columns, columns(tc.in), tc.in)
	}
}
