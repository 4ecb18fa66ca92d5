package main

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/daviddossett/targeted-selection/internal/settings"
)

func newConfigCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config [key]",
		Short: "Show effective settings, their environment variables and defaults",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return settingKeys(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintf(out, "Settings file: %s\n\n", valueOrFallback(app.Settings.File, "(none)"))
				for _, line := range settings.Describe(app.Viper) {
					fmt.Fprintln(out, line)
				}
				return nil
			}

			key := args[0]
			if !lo.Contains(settingKeys(), key) {
				err := fmt.Errorf("unknown key %q", key)
				return newCommandError("read setting", "looking up key", err,
					didYouMean(key, settingKeys(), "Run 'appbuilder config' to list keys."))
			}
			fmt.Fprintln(out, app.Viper.Get(key))
			return nil
		},
	}

	return cmd
}

func settingKeys() []string {
	return lo.Map(settings.Defaults, func(field settings.Field, _ int) string { return field.Key })
}
