package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/daviddossett/targeted-selection/internal/domain/design"
	tuieditor "github.com/daviddossett/targeted-selection/internal/tui/editor"
)

type editTUIOptions struct {
	outPath string
	width   int
}

func newEditTUICmd(app *AppContext, rootFlags *rootFlags) *cobra.Command {
	opts := &editTUIOptions{}

	cmd := &cobra.Command{
		Use:   "edit-tui",
		Short: "Select instances and edit them interactively",
		Long: `Launch the interactive editor: move between instances, select one, switch between
instance and component level, reset or push overrides and cycle the accent colour.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.edit-tui")

			session, source, err := app.OpenSession(ctx, rootFlags.documentPath)
			if err != nil {
				return newCommandError("open editor", fmt.Sprintf("loading %s", source), err, documentHint(err, design.Document{}))
			}

			modelOpts := []tuieditor.Option{tuieditor.WithContext(ctx)}
			if app.clipboard != nil {
				modelOpts = append(modelOpts, tuieditor.WithClipboard(app.clipboard))
			}
			model := tuieditor.NewModel(session, app.Renderer(cmd.OutOrStdout(), opts.width), modelOpts...)

			logger.Info(ctx, "launching editor", "source", source)
			program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := program.Run(); err != nil {
				logger.Error(ctx, "editor execution failed", "error", err)
				return fmt.Errorf("failed to run editor: %w", err)
			}
			logger.Info(ctx, "editor closed", "revision", session.Revision())

			if opts.outPath == "" {
				if session.Revision() > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%d change(s) discarded; pass --out to keep them.\n", session.Revision())
				}
				return nil
			}
			if err := app.Store.Save(ctx, opts.outPath, session.Snapshot()); err != nil {
				return newCommandError("open editor", fmt.Sprintf("writing %s", opts.outPath), err, "Use a .yaml, .toml or .json path in a writable directory.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", opts.outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.outPath, "out", "o", "", "Write the document to this path when the editor exits")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Preview width in columns")

	return cmd
}
