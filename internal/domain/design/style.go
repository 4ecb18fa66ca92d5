package design

import (
	"sort"
)

// StyleKey names one attribute of the flat style schema. The set is closed;
// ParseStyleKey rejects anything outside it.
type StyleKey string

const (
	StyleBackgroundColor     StyleKey = "backgroundColor"
	StyleColor               StyleKey = "color"
	StyleBorderRadius        StyleKey = "borderRadius"
	StylePadding             StyleKey = "padding"
	StylePaddingTop          StyleKey = "paddingTop"
	StylePaddingRight        StyleKey = "paddingRight"
	StylePaddingBottom       StyleKey = "paddingBottom"
	StylePaddingLeft         StyleKey = "paddingLeft"
	StyleMargin              StyleKey = "margin"
	StyleMarginTop           StyleKey = "marginTop"
	StyleMarginRight         StyleKey = "marginRight"
	StyleMarginBottom        StyleKey = "marginBottom"
	StyleMarginLeft          StyleKey = "marginLeft"
	StyleFontSize            StyleKey = "fontSize"
	StyleFontWeight          StyleKey = "fontWeight"
	StyleFontFamily          StyleKey = "fontFamily"
	StyleWidth               StyleKey = "width"
	StyleHeight              StyleKey = "height"
	StyleMaxWidth            StyleKey = "maxWidth"
	StyleDisplay             StyleKey = "display"
	StyleFlexDirection       StyleKey = "flexDirection"
	StyleJustifyContent      StyleKey = "justifyContent"
	StyleAlignItems          StyleKey = "alignItems"
	StyleGap                 StyleKey = "gap"
	StyleBorder              StyleKey = "border"
	StyleBoxShadow           StyleKey = "boxShadow"
	StyleCursor              StyleKey = "cursor"
	StyleLineHeight          StyleKey = "lineHeight"
	StyleGridTemplateColumns StyleKey = "gridTemplateColumns"
)

var styleKeys = []StyleKey{
	StyleBackgroundColor,
	StyleColor,
	StyleBorderRadius,
	StylePadding,
	StylePaddingTop,
	StylePaddingRight,
	StylePaddingBottom,
	StylePaddingLeft,
	StyleMargin,
	StyleMarginTop,
	StyleMarginRight,
	StyleMarginBottom,
	StyleMarginLeft,
	StyleFontSize,
	StyleFontWeight,
	StyleFontFamily,
	StyleWidth,
	StyleHeight,
	StyleMaxWidth,
	StyleDisplay,
	StyleFlexDirection,
	StyleJustifyContent,
	StyleAlignItems,
	StyleGap,
	StyleBorder,
	StyleBoxShadow,
	StyleCursor,
	StyleLineHeight,
	StyleGridTemplateColumns,
}

var styleKeyIndex = func() map[StyleKey]struct{} {
	index := make(map[StyleKey]struct{}, len(styleKeys))
	for _, key := range styleKeys {
		index[key] = struct{}{}
	}
	return index
}()

// shorthandLonghands maps each box-model shorthand to its four sides.
var shorthandLonghands = map[StyleKey][4]StyleKey{
	StyleMargin:  {StyleMarginTop, StyleMarginRight, StyleMarginBottom, StyleMarginLeft},
	StylePadding: {StylePaddingTop, StylePaddingRight, StylePaddingBottom, StylePaddingLeft},
}

// StyleKeys returns every key in schema order.
func StyleKeys() []StyleKey {
	return append([]StyleKey(nil), styleKeys...)
}

// ParseStyleKey validates a style attribute name.
func ParseStyleKey(name string) (StyleKey, error) {
	key := StyleKey(name)
	if _, ok := styleKeyIndex[key]; !ok {
		return "", newValidationError("unknown style key", map[string]interface{}{"key": name})
	}
	return key, nil
}

// Valid reports whether k belongs to the style schema.
func (k StyleKey) Valid() bool {
	_, ok := styleKeyIndex[k]
	return ok
}

func (k StyleKey) String() string {
	return string(k)
}

// Style is a flat map of style attributes. Definitions carry complete
// baselines; instances carry sparse overrides where "" is the tombstone.
type Style map[StyleKey]string

// Clone returns an independent copy. A nil style clones to an empty map.
func (s Style) Clone() Style {
	clone := make(Style, len(s))
	for k, v := range s {
		clone[k] = v
	}
	return clone
}

// Get returns the value for key and whether it is set to a non-empty value.
func (s Style) Get(key StyleKey) (string, bool) {
	value, ok := s[key]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// Keys returns the keys present in schema order.
func (s Style) Keys() []StyleKey {
	keys := make([]StyleKey, 0, len(s))
	for _, key := range styleKeys {
		if _, ok := s[key]; ok {
			keys = append(keys, key)
		}
	}
	extras := make([]StyleKey, 0)
	for key := range s {
		if !key.Valid() {
			extras = append(extras, key)
		}
	}
	sort.Slice(extras, func(i, j int) bool { return extras[i] < extras[j] })
	return append(keys, extras...)
}

// Equal reports whether both styles hold the same non-empty values.
func (s Style) Equal(other Style) bool {
	for k, v := range s {
		if v == "" {
			continue
		}
		if other[k] != v {
			return false
		}
	}
	for k, v := range other {
		if v == "" {
			continue
		}
		if s[k] != v {
			return false
		}
	}
	return true
}

// MergeStyles overlays every non-empty override value onto a copy of base.
// Overrides win per key; base is never modified.
func MergeStyles(base, overrides Style) Style {
	merged := base.Clone()
	for key, value := range overrides {
		if value == "" {
			continue
		}
		merged[key] = value
	}
	return merged
}

// NormalizeShorthands drops a margin or padding shorthand whenever any of its
// longhand sides is also set. Longhands always win. The input is not modified.
func NormalizeShorthands(style Style) Style {
	normalized := style.Clone()
	for shorthand, sides := range shorthandLonghands {
		if _, ok := normalized.Get(shorthand); !ok {
			continue
		}
		for _, side := range sides {
			if _, ok := normalized.Get(side); ok {
				delete(normalized, shorthand)
				break
			}
		}
	}
	return normalized
}
