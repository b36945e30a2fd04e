package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"av1an-args/internal/args"
	"av1an-args/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newParseCmd() *cobra.Command {
	schema := args.Default()

	parseCmd := &cobra.Command{
		Use:   "parse [OPTIONS]",
		Short: "Resolve av1an options and print the configuration as JSON",
		Long: `parse resolves the given av1an options and prints the configuration as one
JSON object on stdout. Every declared option appears in the object; unset
optional options are null.

Example:
  av1an-args parse -i in.mkv -m hybrid -o out.mkv`,
		// Tokens go to the schema resolver untouched.
		DisableFlagParsing: true,
		RunE:               runParse,
	}

	// Registered for help output only.
	parseCmd.Flags().AddFlagSet(schema.FlagSet())

	return parseCmd
}

func runParse(cmd *cobra.Command, tokens []string) error {
	// cobra leaves the persistent flags in place for commands that parse
	// their own, so they are parsed again here next to the schema's.
	local := pflag.NewFlagSet("parse", pflag.ContinueOnError)
	verbose := local.Bool("verbose", false, "verbose output on stderr")
	local.BoolP("help", "h", false, "help for parse")

	cfg, err := args.Default().ResolveWith(tokens, local)
	if errors.Is(err, pflag.ErrHelp) {
		return cmd.Help()
	}
	if *verbose {
		logging.InitWriter(cmd.ErrOrStderr(), true)
	}
	logger := logging.WithComponent("parse")
	if err != nil {
		return fmt.Errorf("failed to resolve options: %w", err)
	}

	if cfg.QuantizerUnused() {
		logger.Debug().Msg("min_q/max_q have no effect without target_quality")
	}

	data, err := json.Marshal(args.Serialize(cfg))
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	logger.Debug().
		Strs("tokens", tokens).
		Str("chunk_method", cfg.ChunkMethod).
		Str("encoder", cfg.Encoder).
		Msg("options resolved")

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
	return err
}
