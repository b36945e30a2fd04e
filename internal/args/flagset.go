package args

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"av1an-args/internal/config"

	"github.com/spf13/pflag"
)

// flagPresent is the value pflag passes to Set for a flag written without
// one. argv elements cannot contain NUL, so no token can spell it.
const flagPresent = "\x00"

var (
	errFlagValue     = errors.New("flag takes no value")
	errSuppliedTwice = errors.New("supplied more than once")
	errNoValue       = errors.New("expects a value")
)

// optionValue is the pflag.Value behind every schema option. Set converts
// the raw text, checks the choice set and, when cfg is non-nil, stores the
// result in the bound Config field.
type optionValue struct {
	opt  Option
	cfg  *config.Config
	bare string // value pflag passes for a flag given alone
	raw  string
	set  bool
}

func (v *optionValue) String() string {
	if v.opt.Kind == KindFlag {
		return strconv.FormatBool(v.set)
	}
	return v.raw
}

func (v *optionValue) Set(raw string) error {
	if v.set {
		return errSuppliedTwice
	}
	if v.opt.Kind == KindFlag {
		if raw != v.bare {
			return errFlagValue
		}
		raw = ""
	}

	val, err := v.opt.parse(raw)
	if err != nil {
		return err
	}
	if v.cfg != nil {
		if err := v.opt.assign(v.cfg, val); err != nil {
			return err
		}
	}
	v.raw, v.set = raw, true
	return nil
}

func (v *optionValue) Type() string {
	if v.opt.Kind == KindFlag {
		return "bool"
	}
	return v.opt.Kind.String()
}

// flagSet builds a pflag set over the schema, one optionValue per option in
// schema order. With a nil cfg the set only renders help.
func (s *Schema) flagSet(cfg *config.Config) (*pflag.FlagSet, []*optionValue) {
	fs := pflag.NewFlagSet("av1an", pflag.ContinueOnError)
	fs.SortFlags = false

	bare := "true"
	if cfg != nil {
		bare = flagPresent
		fs.SetOutput(io.Discard)
		fs.Usage = func() {}
	}

	values := make([]*optionValue, len(s.options))
	for i, opt := range s.options {
		v := &optionValue{opt: opt, cfg: cfg, bare: bare}
		if opt.TakesValue() {
			v.raw = opt.Default.Or("")
		}
		values[i] = v

		var short string
		if opt.Short != 0 {
			short = string(opt.Short)
		}
		f := fs.VarPF(v, opt.Long, short, usageText(opt))
		if !opt.TakesValue() {
			f.NoOptDefVal = bare
		}
	}
	return fs, values
}

// parseFailure maps pflag's typed errors onto the resolver taxonomy.
func parseFailure(err error, tokens []string) error {
	var (
		invalid  *pflag.InvalidValueError
		required *pflag.ValueRequiredError
		unknown  *pflag.NotExistError
		syntax   *pflag.InvalidSyntaxError
	)
	switch {
	case errors.As(err, &invalid):
		value := invalid.GetValue()
		if value == flagPresent {
			value = ""
		}
		return invalidValue("--"+invalid.GetFlag().Name, value, invalid.Unwrap())
	case errors.As(err, &required):
		return missingValue(written(required.GetSpecifiedName(), required.GetSpecifiedShortnames()), errNoValue)
	case errors.As(err, &unknown):
		return unknownOption(written(unknown.GetSpecifiedName(), unknown.GetSpecifiedShortnames()))
	case errors.As(err, &syntax):
		return unknownOption(syntax.GetSpecifiedFlag())
	case errors.Is(err, pflag.ErrHelp):
		return unknownOption(helpToken(tokens))
	default:
		return unknownOption(err.Error())
	}
}

// written restores the dashes pflag strips from a reported flag name.
func written(name, shorthands string) string {
	if shorthands != "" {
		return "-" + name
	}
	return "--" + name
}

// helpToken reports which undeclared help spelling pflag stopped at.
func helpToken(tokens []string) string {
	for _, tok := range tokens {
		if tok == "--" {
			break
		}
		if tok == "--help" || strings.HasPrefix(tok, "--help=") {
			return "--help"
		}
	}
	return "-h"
}
