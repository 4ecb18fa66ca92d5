package main

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/daviddossett/targeted-selection/internal/domain/design"
)

var titleCaser = cases.Title(language.English)

// typeLabel renders a component type for display, e.g. "Button".
func typeLabel(t design.ComponentType) string {
	return titleCaser.String(string(t))
}

func valueOrFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// styleLines lists a style in schema order as "key: value".
func styleLines(style design.Style) []string {
	lines := make([]string, 0, len(style))
	for _, key := range style.Keys() {
		if value, ok := style.Get(key); ok {
			lines = append(lines, fmt.Sprintf("%s: %s", key, value))
		}
	}
	return lines
}

// propertyLines lists properties in key order as "key: value".
func propertyLines(props design.Properties) []string {
	lines := make([]string, 0, len(props))
	for _, key := range props.Keys() {
		lines = append(lines, fmt.Sprintf("%s: %s", key, props[key].String()))
	}
	return lines
}

// snapshotText renders a resolved tree as stable, line-oriented text so two
// snapshots can be diffed.
func snapshotText(theme design.ThemeSettings, nodes []design.ResolvedNode) []byte {
	var b strings.Builder
	b.WriteString("theme:\n")
	for _, key := range design.ThemeKeys() {
		value, _ := theme.Get(key)
		fmt.Fprintf(&b, "  %s: %s\n", key, value)
	}
	writeSnapshotNodes(&b, nodes)
	return []byte(b.String())
}

func writeSnapshotNodes(b *strings.Builder, nodes []design.ResolvedNode) {
	for _, node := range nodes {
		indent := strings.Repeat("  ", node.Depth)
		if node.Err != nil {
			fmt.Fprintf(b, "%s%s -> %s (missing)\n", indent, node.Instance.ID, node.Instance.ComponentID)
			writeSnapshotNodes(b, node.Children)
			continue
		}
		fmt.Fprintf(b, "%s%s -> %s\n", indent, node.Instance.ID, node.Resolved.Definition.ID)
		for _, line := range styleLines(node.Resolved.Style) {
			fmt.Fprintf(b, "%s  style %s\n", indent, line)
		}
		for _, line := range propertyLines(node.Resolved.Properties) {
			fmt.Fprintf(b, "%s  prop %s\n", indent, line)
		}
		writeSnapshotNodes(b, node.Children)
	}
}

// documentHint turns a load or lookup failure into a suggestion.
func documentHint(err error, doc design.Document) string {
	switch {
	case design.IsInstanceNotFound(err):
		return didYouMean(lookupKey(err, "instance_id"), design.InstanceIDs(doc.App.Instances), "Run 'appbuilder tree' to list instance ids.")
	case design.IsComponentNotFound(err):
		return "The instance references a definition that does not exist; add it under components or point the instance at another definition."
	case design.HasCode(err, design.ErrCodeNotFound):
		return "Check the --document path or document.path setting."
	case design.HasCode(err, design.ErrCodeValidation), design.HasCode(err, design.ErrCodeDuplicate):
		return "Fix the document and retry; 'appbuilder schema' prints the expected shape."
	default:
		return ""
	}
}

func lookupKey(err error, key string) string {
	var domainErr *design.DomainError
	if !errors.As(err, &domainErr) || domainErr.Context == nil {
		return ""
	}
	value, _ := domainErr.Context[key].(string)
	return value
}
