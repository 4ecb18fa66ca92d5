package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/daviddossett/targeted-selection/internal/domain/design"
)

type resolveOptions struct {
	jsonOutput bool
	raw        bool
}

func newResolveCmd(app *AppContext, rootFlags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <instance-id>",
		Short: "Show the effective style and properties of an instance",
		Long:  "Merge definition defaults with the instance's overrides and, unless --raw is set, fill remaining colour, font and radius slots from the theme.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, app, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the resolved instance as JSON")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Skip the theme fallback pass")

	return cmd
}

func runResolve(cmd *cobra.Command, app *AppContext, rootFlags *rootFlags, instanceID string, opts *resolveOptions) error {
	ctx, logger := app.CommandContext(cmd, "command.resolve")

	doc, source, err := app.OpenDocument(ctx, rootFlags.documentPath)
	if err != nil {
		return newCommandError("resolve", fmt.Sprintf("loading %s", source), err, documentHint(err, doc))
	}

	resolve := doc.ResolveThemed
	if opts.raw {
		resolve = doc.Resolve
	}
	resolved, err := resolve(instanceID)
	if err != nil {
		logger.Warn(ctx, "instance did not resolve", "instance_id", instanceID, "error", err)
		return newCommandError("resolve", fmt.Sprintf("resolving instance %q", instanceID), err, documentHint(err, doc))
	}

	logger.Debug(ctx, "instance resolved", "instance_id", instanceID, "component_id", resolved.Definition.ID)
	if opts.jsonOutput {
		return renderResolveJSON(cmd.OutOrStdout(), resolved)
	}
	renderResolveText(cmd.OutOrStdout(), doc, resolved)
	return nil
}

func renderResolveText(w io.Writer, doc design.Document, resolved design.Resolved) {
	definition := resolved.Definition
	fmt.Fprintf(w, "Instance:  %s\n", resolved.InstanceID)
	fmt.Fprintf(w, "Component: %s (%s, %s)\n", definition.Label, definition.ID, typeLabel(definition.Type))

	overrides, _ := doc.OverrideSummary(resolved.InstanceID)
	overridden := make(map[string]bool)
	for _, key := range overrides.Styles {
		overridden["style:"+string(key)] = true
	}
	for _, key := range overrides.Properties {
		overridden["prop:"+key] = true
	}

	fmt.Fprintln(w, "\nStyles:")
	for _, key := range resolved.Style.Keys() {
		value, ok := resolved.Style.Get(key)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %s: %s%s\n", key, value, marker(overridden["style:"+string(key)]))
	}

	fmt.Fprintln(w, "\nProperties:")
	if len(resolved.Properties) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, key := range resolved.Properties.Keys() {
		fmt.Fprintf(w, "  %s: %s%s\n", key, resolved.Properties[key].String(), marker(overridden["prop:"+key]))
	}

	if len(overrides.Orphaned) > 0 {
		fmt.Fprintf(w, "\nIgnored instance properties: %v\n", overrides.Orphaned)
	}
}

func marker(overridden bool) string {
	if overridden {
		return "  (overridden)"
	}
	return ""
}

type resolveJSONPayload struct {
	InstanceID  string                 `json:"instance_id"`
	ComponentID string                 `json:"component_id"`
	Type        design.ComponentType   `json:"type"`
	Label       string                 `json:"label"`
	Style       map[string]string      `json:"style"`
	Properties  map[string]interface{} `json:"properties"`
}

func renderResolveJSON(w io.Writer, resolved design.Resolved) error {
	style := make(map[string]string, len(resolved.Style))
	for _, key := range resolved.Style.Keys() {
		if value, ok := resolved.Style.Get(key); ok {
			style[string(key)] = value
		}
	}
	payload := resolveJSONPayload{
		InstanceID:  resolved.InstanceID,
		ComponentID: resolved.Definition.ID,
		Type:        resolved.Definition.Type,
		Label:       resolved.Definition.Label,
		Style:       style,
		Properties:  resolved.Properties.Map(),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
