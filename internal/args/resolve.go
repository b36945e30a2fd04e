package args

import (
	"errors"
	"fmt"
	"strings"

	"av1an-args/internal/config"

	"github.com/spf13/pflag"
)

var errNoDefault = errors.New("option is required")

// Resolve turns invocation tokens (without the program name) into a
// Config using the av1an schema.
func Resolve(tokens []string) (config.Config, error) {
	return defaultSchema.Resolve(tokens)
}

// ResolveDefaults resolves an empty invocation. It fails while any option
// is required without a default, as chunk_method is.
func ResolveDefaults() (config.Config, error) {
	return defaultSchema.ResolveDefaults()
}

// ResolveDefaults is Resolve with no tokens.
func (s *Schema) ResolveDefaults() (config.Config, error) {
	return s.Resolve(nil)
}

// Resolve parses tokens against the schema, fills defaults and runs the
// schema's validation, if any. No Config is returned on error.
func (s *Schema) Resolve(tokens []string) (config.Config, error) {
	return s.ResolveWith(tokens, nil)
}

// ResolveWith is Resolve with the flags of extra parsed alongside the
// schema's, so a command can keep its own switches (--verbose, --help) in
// the same token list without mistaking option values for them. Names in
// extra must not collide with the schema. If extra has a "help" flag and
// it is set, ResolveWith stops after parsing and returns pflag.ErrHelp.
func (s *Schema) ResolveWith(tokens []string, extra *pflag.FlagSet) (config.Config, error) {
	var cfg config.Config
	fs, values := s.flagSet(&cfg)
	if extra != nil {
		fs.AddFlagSet(extra)
	}
	if err := fs.Parse(tokens); err != nil {
		return config.Config{}, parseFailure(err, tokens)
	}
	if extra != nil {
		if help := extra.Lookup("help"); help != nil && help.Changed {
			return config.Config{}, pflag.ErrHelp
		}
	}
	// No positional arguments are declared.
	if rest := fs.Args(); len(rest) > 0 {
		return config.Config{}, unknownOption(rest[0])
	}
	if err := s.fill(&cfg, values); err != nil {
		return config.Config{}, err
	}
	if s.validate != nil {
		if err := s.validate(&cfg); err != nil {
			return config.Config{}, constraintFailure(err)
		}
	}
	return cfg, nil
}

// fill applies defaults to every option the tokens did not supply.
func (s *Schema) fill(cfg *config.Config, values []*optionValue) error {
	for idx, opt := range s.options {
		if values[idx].set {
			continue
		}
		if opt.Required {
			return missingValue(opt.Flag(), errNoDefault)
		}
		def, ok := opt.Default.Get()
		if !ok {
			continue
		}
		v, err := opt.parse(def)
		if err != nil {
			return fmt.Errorf("default for %s: %w", opt.Flag(), err)
		}
		if err := opt.assign(cfg, v); err != nil {
			return fmt.Errorf("default for %s: %w", opt.Flag(), err)
		}
	}
	return nil
}

func constraintFailure(err error) error {
	var ce *config.ConstraintError
	if errors.As(err, &ce) {
		return invalidValue("--"+strings.ReplaceAll(ce.Option, "_", "-"), "", err)
	}
	return invalidValue("configuration", "", err)
}
