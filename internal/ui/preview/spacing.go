package preview

import (
	"math"
	"strconv"
	"strings"

	"github.com/daviddossett/targeted-selection/internal/domain/design"
)

// Spacing is a box-model inset in terminal cells, ordered like CSS: top,
// right, bottom, left.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// IsZero returns true if all sides are zero.
func (s Spacing) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}

// Horizontal returns left + right.
func (s Spacing) Horizontal() int {
	return s.Left + s.Right
}

const (
	remPerRow      = 1.0
	columnsPerRem  = 2.0
	maxInsetRows   = 2
	maxInsetColumn = 4
	pxPerRem       = 16.0
)

// lengthRem converts a CSS length to rem. Unitless numbers and px are
// divided by 16; percentages and keywords are not lengths.
func lengthRem(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" || value == "auto" || strings.HasSuffix(value, "%") {
		return 0, false
	}
	unit := 1.0 / pxPerRem
	number := value
	switch {
	case strings.HasSuffix(value, "rem"):
		unit, number = 1, strings.TrimSuffix(value, "rem")
	case strings.HasSuffix(value, "em"):
		unit, number = 1, strings.TrimSuffix(value, "em")
	case strings.HasSuffix(value, "px"):
		number = strings.TrimSuffix(value, "px")
	}
	n, err := strconv.ParseFloat(number, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n * unit, true
}

// rows and columns clamp before converting so huge lengths cannot overflow int.
func rows(value string) int {
	rem, ok := lengthRem(value)
	if !ok || !(rem > 0) {
		return 0
	}
	if rem >= maxInsetRows*remPerRow {
		return maxInsetRows
	}
	return int(rem / remPerRow)
}

func columns(value string) int {
	rem, ok := lengthRem(value)
	if !ok || !(rem > 0) {
		return 0
	}
	if rem*columnsPerRem >= maxInsetColumn {
		return maxInsetColumn
	}
	return int(math.Round(rem * columnsPerRem))
}

// boxSpacing reads a shorthand such as "0.5rem 1rem" and then applies any
// longhand sides present in style.
func boxSpacing(style design.Style, shorthand, top, right, bottom, left design.StyleKey) Spacing {
	var raw [4]string
	if value, ok := style.Get(shorthand); ok {
		parts := strings.Fields(value)
		switch len(parts) {
		case 1:
			raw = [4]string{parts[0], parts[0], parts[0], parts[0]}
		case 2:
			raw = [4]string{parts[0], parts[1], parts[0], parts[1]}
		case 3:
			raw = [4]string{parts[0], parts[1], parts[2], parts[1]}
		case 4:
			raw = [4]string{parts[0], parts[1], parts[2], parts[3]}
		}
	}
	for i, key := range []design.StyleKey{top, right, bottom, left} {
		if value, ok := style.Get(key); ok {
			raw[i] = value
		}
	}
	return Spacing{
		Top:    rows(raw[0]),
		Right:  columns(raw[1]),
		Bottom: rows(raw[2]),
		Left:   columns(raw[3]),
	}
}

func padding(style design.Style) Spacing {
	return boxSpacing(style, design.StylePadding, design.StylePaddingTop, design.StylePaddingRight, design.StylePaddingBottom, design.StylePaddingLeft)
}

func margin(style design.Style) Spacing {
	return boxSpacing(style, design.StyleMargin, design.StyleMarginTop, design.StyleMarginRight, design.StyleMarginBottom, design.StyleMarginLeft)
}

// bold reports whether a font weight renders bold in a terminal.
func bold(style design.Style) bool {
	weight, ok := style.Get(design.StyleFontWeight)
	if !ok {
		return false
	}
	if weight == "bold" || weight == "bolder" {
		return true
	}
	n, err := strconv.Atoi(weight)
	return err == nil && n >= 600
}

// pill reports whether the radius renders as a fully rounded shape.
func pill(style design.Style) bool {
	radius, ok := style.Get(design.StyleBorderRadius)
	if !ok {
		return false
	}
	rem, ok := lengthRem(radius)
	return ok && rem >= 1
}

// bordered reports whether a CSS border declaration draws anything.
func bordered(style design.Style) bool {
	value, ok := style.Get(design.StyleBorder)
	if !ok {
		return false
	}
	value = strings.TrimSpace(value)
	return value != "none" && value != "0"
}
