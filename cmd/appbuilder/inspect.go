package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/daviddossett/targeted-selection/internal/domain/design"
	"github.com/daviddossett/targeted-selection/internal/ui/preview"
)

type inspectOptions struct {
	markdown bool
}

func newInspectCmd(app *AppContext, rootFlags *rootFlags) *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <instance-id>",
		Short: "Print a report on an instance: path, overrides, resolved values and shared definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.inspect")

			doc, source, err := app.OpenDocument(ctx, rootFlags.documentPath)
			if err != nil {
				return newCommandError("inspect", fmt.Sprintf("loading %s", source), err, documentHint(err, doc))
			}

			report, err := inspectReport(doc, args[0])
			if err != nil {
				return newCommandError("inspect", fmt.Sprintf("inspecting instance %q", args[0]), err, documentHint(err, doc))
			}

			if opts.markdown {
				fmt.Fprint(cmd.OutOrStdout(), report)
				return nil
			}

			style := glamour.WithAutoStyle()
			if preview.ColorMode(app.Settings.PreviewColor) == preview.ColorNever || !isTerminal(cmd.OutOrStdout()) {
				style = glamour.WithStandardStyle("notty")
			}
			renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(app.Settings.PreviewWidth))
			if err != nil {
				return newCommandError("inspect", "preparing markdown renderer", err, "Retry with --markdown.")
			}
			out, err := renderer.Render(report)
			if err != nil {
				logger.Warn(ctx, "markdown rendering failed, printing source", "error", err)
				out = report
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.markdown, "markdown", false, "Print the report as Markdown source")

	return cmd
}

// inspectReport builds the Markdown report for one instance. A dangling
// definition reference still yields a report describing the instance.
func inspectReport(doc design.Document, instanceID string) (string, error) {
	instance, err := doc.Instance(instanceID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", instance.ID)
	fmt.Fprintf(&b, "Path: %s\n\n", strings.Join(design.InstancePath(doc.App.Instances, instance.ID), " › "))

	resolved, err := doc.ResolveThemed(instance.ID)
	if err != nil {
		if !design.IsComponentNotFound(err) {
			return "", err
		}
		fmt.Fprintf(&b, "**Component not found: %s**\n", instance.ComponentID)
		return b.String(), nil
	}
	definition := resolved.Definition
	fmt.Fprintf(&b, "Component: **%s** (`%s`, %s)\n\n", definition.Label, definition.ID, typeLabel(definition.Type))

	overrides, _ := doc.OverrideSummary(instance.ID)
	b.WriteString("## Overrides\n\n")
	if overrides.Empty() {
		b.WriteString("None. The instance follows its definition.\n\n")
	} else {
		for _, key := range overrides.Styles {
			value, _ := instance.InstanceStyles.Get(key)
			fmt.Fprintf(&b, "- style `%s`: `%s` (default `%s`)\n", key, value, valueOrFallback(definition.DefaultStyles[key], "unset"))
		}
		for _, key := range overrides.Properties {
			fmt.Fprintf(&b, "- property `%s`: `%s` (default `%s`)\n", key, instance.Properties[key].String(), definition.Properties[key].String())
		}
		for _, key := range overrides.Orphaned {
			fmt.Fprintf(&b, "- property `%s` is not declared by the definition and is ignored\n", key)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Resolved styles\n\n| Key | Value |\n| --- | --- |\n")
	for _, key := range resolved.Style.Keys() {
		if value, ok := resolved.Style.Get(key); ok {
			fmt.Fprintf(&b, "| %s | %s |\n", key, escapeCell(value))
		}
	}

	b.WriteString("\n## Resolved properties\n\n")
	if len(resolved.Properties) == 0 {
		b.WriteString("None.\n")
	}
	for _, key := range resolved.Properties.Keys() {
		fmt.Fprintf(&b, "- `%s`: %s\n", key, resolved.Properties[key].String())
	}

	shared := doc.InstancesOf(definition.ID)
	fmt.Fprintf(&b, "\n## Shared definition\n\n`%s` is used by %d instance(s): %s. Pushing overrides or editing the definition affects all of them.\n",
		definition.ID, len(shared), strings.Join(shared, ", "))
	return b.String(), nil
}

func escapeCell(value string) string {
	return strings.ReplaceAll(value, "|", `\|`)
}
