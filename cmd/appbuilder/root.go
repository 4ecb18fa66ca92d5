package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath   string
	documentPath string
	logLevel     string
}

func newRootCmd(app *AppContext) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "appbuilder",
		Short:         "Inspect and edit component-based app designs from the terminal",
		Long:          "appbuilder resolves, previews and edits design documents: a tree of component instances sharing\ndefinitions, with per-instance overrides and a global theme.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.Init(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Settings file (default ./appbuilder.toml or the user config dir)")
	cmd.PersistentFlags().StringVarP(&flags.documentPath, "document", "d", "", "Design document (YAML, TOML or JSON); defaults to document.path or the built-in template")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override log.level for this run")

	cmd.AddCommand(newResolveCmd(app, flags))
	cmd.AddCommand(newTreeCmd(app, flags))
	cmd.AddCommand(newPreviewCmd(app, flags))
	cmd.AddCommand(newInspectCmd(app, flags))
	cmd.AddCommand(newFindCmd(app, flags))
	cmd.AddCommand(newEditCmd(app, flags))
	cmd.AddCommand(newThemeCmd(app, flags))
	cmd.AddCommand(newEditTUICmd(app, flags))
	cmd.AddCommand(newSchemaCmd())
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
