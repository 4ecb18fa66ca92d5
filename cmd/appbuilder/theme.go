package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/daviddossett/targeted-selection/internal/domain/design"
	"github.com/daviddossett/targeted-selection/internal/ports"
)

// themePrompt asks for a new value of a theme slot. options is empty for
// free-form slots.
type themePrompt func(key design.ThemeKey, current string, options []design.ThemeOption) (string, error)

var errNotInteractive = errors.New("no value given and stdin is not a terminal")

func huhThemePrompt(key design.ThemeKey, current string, options []design.ThemeOption) (string, error) {
	if !isTerminal(os.Stdin) {
		return "", errNotInteractive
	}

	choice := current
	title := fmt.Sprintf("New value for %s", key)
	var field huh.Field
	if len(options) > 0 {
		field = huh.NewSelect[string]().
			Title(title).
			Options(lo.Map(options, func(opt design.ThemeOption, _ int) huh.Option[string] {
				return huh.NewOption(fmt.Sprintf("%s (%s)", opt.Label, opt.Value), opt.Value)
			})...).
			Value(&choice)
	} else {
		field = huh.NewInput().
			Title(title).
			Placeholder(current).
			Value(&choice)
	}

	if err := huh.NewForm(huh.NewGroup(field)).Run(); err != nil {
		return "", err
	}
	return choice, nil
}

func newThemeCmd(app *AppContext, rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change global theme settings",
	}

	cmd.AddCommand(newThemeShowCmd(app, rootFlags))
	cmd.AddCommand(newThemeSetCmd(app, rootFlags))

	return cmd
}

func newThemeShowCmd(app *AppContext, rootFlags *rootFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print every theme slot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _ := app.CommandContext(cmd, "command.theme.show")

			doc, source, err := app.OpenDocument(ctx, rootFlags.documentPath)
			if err != nil {
				return newCommandError("show theme", fmt.Sprintf("loading %s", source), err, documentHint(err, doc))
			}
			if jsonOutput {
				return renderThemeJSON(cmd.OutOrStdout(), doc.Theme)
			}
			renderThemeText(cmd.OutOrStdout(), doc.Theme)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the theme as JSON")

	return cmd
}

type themeSetOptions struct {
	list    bool
	outPath string
}

func newThemeSetCmd(app *AppContext, rootFlags *rootFlags) *cobra.Command {
	opts := &themeSetOptions{}

	cmd := &cobra.Command{
		Use:   "set <key> [value]",
		Short: "Change one theme slot and rebind definitions using its old value",
		Long: `Change one theme slot. Definitions whose default backgroundColor or color equals
the slot's previous value are rewritten to the new value. Without a value an
interactive picker offers the catalogue for accent, font and radius slots.`,
		Args: cobra.RangeArgs(1, 2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return lo.Map(design.ThemeKeys(), func(k design.ThemeKey, _ int) string { return string(k) }), cobra.ShellCompDirectiveNoFileComp
			}
			key, err := design.ParseThemeKey(args[0])
			if err != nil {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return lo.Map(design.ThemeOptions(key), func(opt design.ThemeOption, _ int) string { return opt.Value }), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemeSet(cmd, app, rootFlags, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.list, "list", false, "List the catalogue of suggested values for the key")
	cmd.Flags().StringVarP(&opts.outPath, "out", "o", "", "Write the edited document to this path")

	return cmd
}

func runThemeSet(cmd *cobra.Command, app *AppContext, rootFlags *rootFlags, args []string, opts *themeSetOptions) error {
	ctx, logger := app.CommandContext(cmd, "command.theme.set")
	out := cmd.OutOrStdout()

	key, err := design.ParseThemeKey(args[0])
	if err != nil {
		names := lo.Map(design.ThemeKeys(), func(k design.ThemeKey, _ int) string { return string(k) })
		return newCommandError("set theme", fmt.Sprintf("parsing key %q", args[0]), err,
			didYouMean(args[0], names, "Run 'appbuilder theme show' to list theme keys."))
	}
	options := design.ThemeOptions(key)

	if opts.list {
		if len(options) == 0 {
			fmt.Fprintf(out, "%s accepts any value.\n", key)
			return nil
		}
		for _, opt := range options {
			fmt.Fprintf(out, "%-10s %s\n", opt.Value, opt.Label)
		}
		return nil
	}

	session, source, err := app.OpenSession(ctx, rootFlags.documentPath)
	if err != nil {
		return newCommandError("set theme", fmt.Sprintf("loading %s", source), err, documentHint(err, design.Document{}))
	}
	current, _ := session.Snapshot().Theme.Get(key)

	var value string
	if len(args) == 2 {
		value = args[1]
	} else {
		value, err = app.prompt(key, current, options)
		if err != nil {
			return newCommandError("set theme", fmt.Sprintf("choosing a value for %s", key), err, "Pass the value as the second argument.")
		}
	}

	rebound, err := updateTheme(ctx, app.Events, session, key, value)
	if err != nil {
		return newCommandError("set theme", fmt.Sprintf("updating %s", key), err, "")
	}
	logger.Info(ctx, "theme updated", "theme_key", string(key), "rebound", len(rebound))

	fmt.Fprintf(out, "%s: %s -> %s\n", key, current, value)
	if len(rebound) > 0 {
		fmt.Fprintf(out, "Rebound definitions: %v\n", rebound)
	}
	if value != "" && len(options) > 0 && !lo.ContainsBy(options, func(opt design.ThemeOption) bool { return opt.Value == value }) {
		fmt.Fprintf(out, "Note: %q is not in the %s catalogue (see --list).\n", value, key)
	}

	if opts.outPath == "" {
		return nil
	}
	if err := app.Store.Save(ctx, opts.outPath, session.Snapshot()); err != nil {
		return newCommandError("set theme", fmt.Sprintf("writing %s", opts.outPath), err, "Use a .yaml, .toml or .json path in a writable directory.")
	}
	fmt.Fprintf(out, "Wrote %s\n", opts.outPath)
	return nil
}

// updateTheme applies the change and collects the rebound definition ids
// from the theme.updated event.
func updateTheme(ctx context.Context, publisher ports.EventPublisher, session themeUpdater, key design.ThemeKey, value string) ([]string, error) {
	var rebound []string
	if publisher != nil {
		sub, err := publisher.Subscribe(ports.EventThemeUpdated, func(_ context.Context, event ports.DomainEvent) error {
			if payload, ok := event.Payload().(map[string]interface{}); ok {
				rebound, _ = payload["rebound"].([]string)
			}
			return nil
		})
		if err == nil {
			defer sub.Unsubscribe()
		}
	}
	if err := session.UpdateThemeSetting(ctx, key, value); err != nil {
		return nil, err
	}
	return rebound, nil
}

type themeUpdater interface {
	UpdateThemeSetting(ctx context.Context, key design.ThemeKey, value string) error
}

func renderThemeText(w io.Writer, theme design.ThemeSettings) {
	width := lo.Max(lo.Map(design.ThemeKeys(), func(k design.ThemeKey, _ int) int { return len(k) }))
	for _, key := range design.ThemeKeys() {
		value, _ := theme.Get(key)
		fmt.Fprintf(w, "%-*s  %s\n", width, key, value)
	}
}

func renderThemeJSON(w io.Writer, theme design.ThemeSettings) error {
	payload := make(map[string]string, len(design.ThemeKeys()))
	for _, key := range design.ThemeKeys() {
		value, _ := theme.Get(key)
		payload[string(key)] = value
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
