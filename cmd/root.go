package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"av1an-args/internal/args"
	"av1an-args/internal/logging"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// Exit codes
const (
	exitFailure = 1
	exitUsage   = 2
)

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	logging.Init(false)

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("av1an-args failed")
		os.Exit(exitCode(err))
	}
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "av1an-args",
		Short: "Option surface of the av1an encoding pipeline",
		Long: `av1an-args resolves av1an command-line options into a typed configuration
and prints it as a structured document for the encoding pipeline.

Every option has a declared type, value set and default. Options that are
not given receive their default; --chunk-method is required.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.InitWriter(cmd.ErrOrStderr(), verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "verbose output on stderr")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newDefaultsCmd())
	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	})

	return rootCmd
}

func exitCode(err error) int {
	var argErr *args.Error
	if errors.As(err, &argErr) {
		return exitUsage
	}
	return exitFailure
}

// writeFormatted prints v as indented JSON or YAML.
func writeFormatted(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q (want json or yaml)", format)
	}
}
