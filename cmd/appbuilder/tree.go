package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daviddossett/targeted-selection/internal/domain/design"
)

type treeOptions struct {
	overridesOnly bool
}

func newTreeCmd(app *AppContext, rootFlags *rootFlags) *cobra.Command {
	opts := &treeOptions{}

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "List the instance tree with definitions and override markers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.tree")

			doc, source, err := app.OpenDocument(ctx, rootFlags.documentPath)
			if err != nil {
				return newCommandError("list instances", fmt.Sprintf("loading %s", source), err, documentHint(err, doc))
			}

			count := renderTree(cmd.OutOrStdout(), doc, opts.overridesOnly)
			logger.Debug(ctx, "tree listed", "instances", count, "source", source)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.overridesOnly, "overrides", false, "Only list instances carrying overrides")

	return cmd
}

// renderTree writes one line per instance and returns how many were written.
// Instances with overrides are marked with '*'.
func renderTree(w io.Writer, doc design.Document, overridesOnly bool) int {
	count := 0
	design.WalkInstances(doc.App.Instances, func(instance design.ComponentInstance, depth int, _ string) bool {
		if overridesOnly && !instance.HasOverrides() {
			return true
		}
		count++

		indent := strings.Repeat("  ", depth)
		if overridesOnly {
			indent = ""
		}
		mark := " "
		if instance.HasOverrides() {
			mark = "*"
		}

		definition, ok := doc.App.Component(instance.ComponentID)
		if !ok {
			fmt.Fprintf(w, "%s%s%s  [Component not found: %s]\n", mark, indent, instance.ID, instance.ComponentID)
			return true
		}
		fmt.Fprintf(w, "%s%s%s  %s (%s)\n", mark, indent, instance.ID, definition.Label, typeLabel(definition.Type))
		return true
	})
	if count == 0 {
		fmt.Fprintln(w, "(no instances)")
	}
	return count
}
