package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daviddossett/targeted-selection/internal/domain/design"
)

type previewOptions struct {
	width    int
	selected string
	mode     string
}

func newPreviewCmd(app *AppContext, rootFlags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview [instance-id]",
		Short: "Render the document, or one subtree, as a terminal preview",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := ""
			if len(args) == 1 {
				root = args[0]
			}
			return runPreview(cmd, app, rootFlags, root, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Preview width in columns (default: terminal width capped by preview.width)")
	cmd.Flags().StringVar(&opts.selected, "select", "", "Outline the given instance as selected")
	cmd.Flags().StringVar(&opts.mode, "mode", string(design.ModeInstance), "Editor mode used with --select (preview, instance, component)")

	return cmd
}

func runPreview(cmd *cobra.Command, app *AppContext, rootFlags *rootFlags, rootID string, opts *previewOptions) error {
	ctx, logger := app.CommandContext(cmd, "command.preview")

	session, source, err := app.OpenSession(ctx, rootFlags.documentPath)
	if err != nil {
		return newCommandError("preview", fmt.Sprintf("loading %s", source), err, documentHint(err, design.Document{}))
	}
	doc := session.Snapshot()

	if opts.selected != "" {
		mode, err := design.ParseEditorMode(opts.mode)
		if err != nil {
			return newCommandError("preview", "parsing --mode", err, "Use preview, instance or component.")
		}
		session.SetMode(mode)
		if _, err := session.Select(opts.selected); err != nil {
			return newCommandError("preview", fmt.Sprintf("selecting %q", opts.selected), err, documentHint(err, doc))
		}
	}

	renderer := app.Renderer(cmd.OutOrStdout(), opts.width)
	nodes := session.ResolveTree()

	if rootID == "" {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(nodes, session.State()))
		logger.Debug(ctx, "document previewed", "width", renderer.Width())
		return nil
	}

	node, ok := findNode(nodes, rootID)
	if !ok {
		err := fmt.Errorf("instance %q not found", rootID)
		return newCommandError("preview", fmt.Sprintf("locating instance %q", rootID), err,
			didYouMean(rootID, design.InstanceIDs(doc.App.Instances), "Run 'appbuilder tree' to list instance ids."))
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderInstance(node, session.State()))
	logger.Debug(ctx, "instance previewed", "instance_id", rootID, "width", renderer.Width())
	return nil
}

func findNode(nodes []design.ResolvedNode, id string) (design.ResolvedNode, bool) {
	for _, node := range nodes {
		if node.Instance.ID == id {
			return node, true
		}
		if found, ok := findNode(node.Children, id); ok {
			return found, true
		}
	}
	return design.ResolvedNode{}, false
}
