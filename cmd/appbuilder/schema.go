package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daviddossett/targeted-selection/internal/config"
)

func newSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "schema [document|script]",
		Short:     "Print the JSON schema of design documents or edit scripts",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{config.SchemaDocument, config.SchemaScript},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := config.SchemaDocument
			if len(args) == 1 {
				kind = args[0]
			}

			schema, ok := config.JSONSchema(kind)
			if !ok {
				err := fmt.Errorf("unknown schema %q", kind)
				return newCommandError("print schema", "selecting schema", err,
					didYouMean(kind, []string{config.SchemaDocument, config.SchemaScript}, "Use 'document' or 'script'."))
			}

			data, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return newCommandError("print schema", "encoding schema", err, "")
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	return cmd
}
