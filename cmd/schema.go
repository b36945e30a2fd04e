package cmd

import (
	"av1an-args/internal/args"

	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	var format string

	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the option table",
		Long:  `schema prints every option with its type, value set and default in document order.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeFormatted(cmd.OutOrStdout(), format, args.Default().Describe())
		},
	}

	schemaCmd.Flags().StringVarP(&format, "format", "F", "json", "output format (json or yaml)")

	return schemaCmd
}
