package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daviddossett/targeted-selection/internal/config"
	"github.com/daviddossett/targeted-selection/internal/domain/design"
	"github.com/daviddossett/targeted-selection/pkg/diff"
	apperrors "github.com/daviddossett/targeted-selection/pkg/errors"
)

type editOptions struct {
	scriptPath string
	showDiff   bool
	outPath    string
	dryRun     bool
}

func newEditCmd(app *AppContext, rootFlags *rootFlags) *cobra.Command {
	opts := &editOptions{}

	cmd := &cobra.Command{
		Use:   "edit --script <ops.yaml>",
		Short: "Apply an edit script to a document",
		Long: `Apply a list of edits (set-style, set-property, unset-property, reset, push,
update-component-style, update-component-property, update-component-label, theme)
to a document. Scripts are all-or-nothing: the first failing operation leaves the
document untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, app, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.scriptPath, "script", "s", "", "Edit script (YAML, TOML or JSON)")
	cmd.Flags().BoolVar(&opts.showDiff, "diff", false, "Print a unified diff of the resolved tree before and after")
	cmd.Flags().StringVarP(&opts.outPath, "out", "o", "", "Write the edited document to this path (format from extension)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Apply the script without writing --out")
	_ = cmd.MarkFlagRequired("script")

	return cmd
}

func runEdit(cmd *cobra.Command, app *AppContext, rootFlags *rootFlags, opts *editOptions) error {
	ctx, logger := app.CommandContext(cmd, "command.edit")

	session, source, err := app.OpenSession(ctx, rootFlags.documentPath)
	if err != nil {
		return newCommandError("edit", fmt.Sprintf("loading %s", source), err, documentHint(err, design.Document{}))
	}

	script, err := config.ParseScript(app.fs, opts.scriptPath)
	if err != nil {
		return newCommandError("edit", fmt.Sprintf("reading script %s", opts.scriptPath), err, "Run 'appbuilder schema script' to see the expected shape.")
	}

	before := session.Snapshot()
	beforeText := snapshotText(before.Theme, before.ResolveTree(false))

	applied, err := session.ApplyScript(ctx, script)
	if err != nil {
		logger.Error(ctx, "edit script rejected", "script", opts.scriptPath, "error", err)
		return newCommandError("edit", fmt.Sprintf("applying %s", opts.scriptPath), err, scriptHint(err, before))
	}
	after := session.Snapshot()
	logger.Info(ctx, "edit script applied", "script", opts.scriptPath, "operations", applied, "revision", session.Revision())

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Applied %d operation(s) from %s (revision %d)\n", applied, opts.scriptPath, session.Revision())

	if opts.showDiff {
		afterText := snapshotText(after.Theme, after.ResolveTree(false))
		delta := diff.GenerateUnifiedDiff(beforeText, afterText, source, source+" (edited)")
		if delta == "" {
			fmt.Fprintln(out, "No resolved changes.")
		} else {
			fmt.Fprint(out, delta)
		}
	}

	if opts.outPath == "" {
		return nil
	}
	if opts.dryRun {
		fmt.Fprintf(out, "Dry run: not writing %s\n", opts.outPath)
		return nil
	}
	if err := app.Store.Save(ctx, opts.outPath, after); err != nil {
		return newCommandError("edit", fmt.Sprintf("writing %s", opts.outPath), err, "Use a .yaml, .toml or .json path in a writable directory.")
	}
	fmt.Fprintf(out, "Wrote %s\n", opts.outPath)
	return nil
}

// scriptHint points at the failing operation and, for unknown ids, the
// closest existing one.
func scriptHint(err error, doc design.Document) string {
	var scriptErr *apperrors.ScriptError
	prefix := ""
	if errors.As(err, &scriptErr) {
		prefix = fmt.Sprintf("Operation #%d (%s) failed; no changes were applied. ", scriptErr.Index+1, scriptErr.Op)
	}
	switch {
	case design.IsComponentNotFound(err):
		ids := make([]string, 0, len(doc.App.Components))
		for _, def := range doc.App.Components {
			ids = append(ids, def.ID)
		}
		return prefix + didYouMean(lookupKey(err, "component_id"), ids, "Check the component ids in the document.")
	case design.IsInstanceNotFound(err):
		return prefix + documentHint(err, doc)
	default:
		return strings.TrimSpace(prefix)
	}
}
