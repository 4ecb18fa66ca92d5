// Package palette resolves symbolic colour tokens such as "bg-blue-500" or
// "text-gray-900" to concrete hex values.
package palette

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const shadeCount = 10

// Shade indexes a 50..900 colour scale.
type Shade int

const (
	Shade50 Shade = iota
	Shade100
	Shade200
	Shade300
	Shade400
	Shade500
	Shade600
	Shade700
	Shade800
	Shade900
)

// ParseShade converts the numeric suffix of a token ("50", "500") to a Shade.
func ParseShade(value string) (Shade, bool) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	switch {
	case n == 50:
		return Shade50, true
	case n >= 100 && n <= 900 && n%100 == 0:
		return Shade(n / 100), true
	default:
		return 0, false
	}
}

// Number returns the Tailwind-style number of the shade.
func (s Shade) Number() int {
	if s == Shade50 {
		return 50
	}
	return int(s) * 100
}

// Shades is one colour family from lightest to darkest. Missing shades are "".
type Shades [shadeCount]string

// Color returns the hex value at shade, or "" when the family lacks it.
func (s Shades) Color(shade Shade) string {
	if shade < 0 || int(shade) >= shadeCount {
		return ""
	}
	return s[shade]
}

func only500(hex string) Shades {
	var s Shades
	s[Shade500] = hex
	return s
}

var families = map[string]Shades{
	"gray":    {"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280", "#4b5563", "#374151", "#1f2937", "#111827"},
	"red":     {"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d"},
	"blue":    {"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a"},
	"green":   {"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d"},
	"purple":  {"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7", "#9333ea", "#7e22ce", "#6b21a8", "#581c87"},
	"yellow":  {"#fefce8", "#fef9c3", "#fef08a", "#fde047", "#facc15", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12"},
	"slate":   {"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a"},
	"zinc":    {"#fafafa", "#f4f4f5", "#e4e4e7", "#d4d4d8", "#a1a1aa", "#71717a", "#52525b", "#3f3f46", "#27272a", "#18181b"},
	"emerald": only500("#10b981"),
	"indigo":  only500("#6366f1"),
	"pink":    only500("#ec4899"),
	"orange":  only500("#f97316"),
	"teal":    only500("#14b8a6"),
}

var named = map[string]string{
	"white":       "#ffffff",
	"black":       "#000000",
	"transparent": "",
}

// Families lists the known family names alphabetically.
func Families() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Family returns the shades of a family.
func Family(name string) (Shades, bool) {
	s, ok := families[name]
	return s, ok
}

// Lookup resolves a "bg-*" or "text-*" token. The boolean is false for
// anything that is not a known token.
func Lookup(token string) (string, bool) {
	token = strings.TrimSpace(token)
	var rest string
	switch {
	case strings.HasPrefix(token, "bg-"):
		rest = strings.TrimPrefix(token, "bg-")
	case strings.HasPrefix(token, "text-"):
		rest = strings.TrimPrefix(token, "text-")
	default:
		return "", false
	}

	if hex, ok := named[rest]; ok {
		return hex, true
	}

	idx := strings.LastIndex(rest, "-")
	if idx <= 0 {
		return "", false
	}
	shades, ok := families[rest[:idx]]
	if !ok {
		return "", false
	}
	shade, ok := ParseShade(rest[idx+1:])
	if !ok {
		return "", false
	}
	hex := shades.Color(shade)
	return hex, hex != ""
}

// Resolve maps a style colour value to something a terminal can draw: tokens
// go through Lookup, hex literals pass through, anything else (rgb(), named
// CSS colours, gradients) yields "".
func Resolve(value string) string {
	value = strings.TrimSpace(value)
	if hex, ok := Lookup(value); ok {
		return hex
	}
	if isHex(value) {
		return strings.ToLower(value)
	}
	if hex, ok := named[strings.ToLower(value)]; ok {
		return hex
	}
	return ""
}

// Color is Resolve wrapped for lipgloss. The zero colour means "no colour".
func Color(value string) lipgloss.TerminalColor {
	hex := Resolve(value)
	if hex == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}

// Token builds a token name, e.g. Token("bg", "blue", Shade500) == "bg-blue-500".
func Token(prefix, family string, shade Shade) string {
	return fmt.Sprintf("%s-%s-%d", prefix, family, shade.Number())
}

func isHex(value string) bool {
	if !strings.HasPrefix(value, "#") {
		return false
	}
	digits := value[1:]
	if len(digits) != 3 && len(digits) != 6 {
		return false
	}
	_, err := strconv.ParseUint(digits, 16, 32)
	return err == nil
}
