package cmd

import (
	"fmt"

	"av1an-args/internal/args"

	"github.com/spf13/cobra"
)

func newDefaultsCmd() *cobra.Command {
	var format string

	defaultsCmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print the configuration an empty invocation resolves to",
		Long: `defaults resolves an invocation without options. This fails while any
option is required without a default; --chunk-method currently is.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := args.ResolveDefaults()
			if err != nil {
				return fmt.Errorf("failed to resolve defaults: %w", err)
			}
			return writeFormatted(cmd.OutOrStdout(), format, args.Serialize(cfg))
		},
	}

	defaultsCmd.Flags().StringVarP(&format, "format", "F", "json", "output format (json or yaml)")

	return defaultsCmd
}
