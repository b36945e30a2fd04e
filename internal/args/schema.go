package args

import (
	"fmt"
	"slices"

	"av1an-args/internal/config"
)

// Schema is a validated option table with lookup indexes.
// It is read-only after NewSchema and safe for concurrent use.
type Schema struct {
	options  []Option
	byLong   map[string]int
	byShort  map[rune]int
	validate func(c *config.Config) error
}

var defaultSchema = MustNewSchema(Options()).WithValidation((*config.Config).Validate)

// Default returns the av1an schema.
func Default() *Schema {
	return defaultSchema
}

// MustNewSchema is like NewSchema but panics on an inconsistent table.
func MustNewSchema(options []Option) *Schema {
	s, err := NewSchema(options)
	if err != nil {
		panic(err)
	}
	return s
}

// NewSchema checks the option table and indexes it.
func NewSchema(options []Option) (*Schema, error) {
	s := &Schema{
		options: cloneOptions(options),
		byLong:  make(map[string]int, len(options)),
		byShort: make(map[rune]int),
	}

	names := make(map[string]bool, len(options))
	for i, opt := range s.options {
		if opt.Name == "" || opt.Long == "" {
			return nil, fmt.Errorf("option %d: name and long form are required", i)
		}
		if names[opt.Name] {
			return nil, fmt.Errorf("option %s: duplicate name", opt.Name)
		}
		names[opt.Name] = true

		if _, dup := s.byLong[opt.Long]; dup {
			return nil, fmt.Errorf("option %s: duplicate long form --%s", opt.Name, opt.Long)
		}
		s.byLong[opt.Long] = i

		if opt.Short != 0 {
			if _, dup := s.byShort[opt.Short]; dup {
				return nil, fmt.Errorf("option %s: duplicate short form -%c", opt.Name, opt.Short)
			}
			s.byShort[opt.Short] = i
		}

		if err := checkOption(opt); err != nil {
			return nil, fmt.Errorf("option %s: %w", opt.Name, err)
		}
	}
	return s, nil
}

// WithValidation returns a copy of s that runs fn on every resolved
// Config. A failing fn turns into an InvalidValue error.
func (s *Schema) WithValidation(fn func(c *config.Config) error) *Schema {
	clone := *s
	clone.validate = fn
	return &clone
}

func checkOption(opt Option) error {
	if opt.field == nil {
		return fmt.Errorf("no config field bound")
	}
	if opt.Required && opt.Default.IsSet() {
		return fmt.Errorf("required option cannot have a default")
	}
	if opt.Kind == KindFlag && (opt.Required || opt.Default.IsSet() || len(opt.Choices) > 0) {
		return fmt.Errorf("flags take no default, choices or required marker")
	}
	if len(opt.Choices) > 0 && opt.Kind != KindString {
		return fmt.Errorf("choices are only supported for string options")
	}

	// A scratch assignment catches a kind that does not fit the bound field.
	var scratch config.Config
	sample := map[Kind]string{KindUint: "1", KindUint8: "1", KindFloat: "1"}[opt.Kind]
	v, err := opt.Kind.convert(sample)
	if err != nil {
		return err
	}
	if err := opt.assign(&scratch, v); err != nil {
		return err
	}

	if def, ok := opt.Default.Get(); ok {
		if _, err := opt.parse(def); err != nil {
			return fmt.Errorf("default %q: %w", def, err)
		}
	}
	return nil
}

// Options returns a copy of the schema's options in document order.
func (s *Schema) Options() []Option {
	return cloneOptions(s.options)
}

// Lookup finds an option by its document name.
func (s *Schema) Lookup(name string) (Option, bool) {
	for _, opt := range s.options {
		if opt.Name == name {
			opt.Choices = slices.Clone(opt.Choices)
			return opt, true
		}
	}
	return Option{}, false
}

// cloneOptions copies options deeply enough that callers cannot reach
// the schema's choice sets.
func cloneOptions(options []Option) []Option {
	out := slices.Clone(options)
	for i := range out {
		out[i].Choices = slices.Clone(out[i].Choices)
	}
	return out
}

// parse converts raw to the option's value and checks the choice set.
func (o Option) parse(raw string) (any, error) {
	v, err := o.Kind.convert(raw)
	if err != nil {
		return nil, err
	}
	if len(o.Choices) > 0 && !slices.Contains(o.Choices, raw) {
		return nil, fmt.Errorf("must be one of %v", o.Choices)
	}
	return v, nil
}

// assign stores v into the Config field bound to o.
func (o Option) assign(c *config.Config, v any) error {
	var ok bool
	switch p := o.field(c).(type) {
	case *string:
		ok = store(p, v)
	case *bool:
		ok = store(p, v)
	case *uint:
		ok = store(p, v)
	case *float64:
		ok = store(p, v)
	case *config.Opt[string]:
		ok = storeOpt(p, v)
	case *config.Opt[uint]:
		ok = storeOpt(p, v)
	case *config.Opt[uint8]:
		ok = storeOpt(p, v)
	case *config.Opt[float64]:
		ok = storeOpt(p, v)
	default:
		return fmt.Errorf("unsupported field type %T", p)
	}
	if !ok {
		return fmt.Errorf("%s value %T does not fit field", o.Kind, v)
	}
	return nil
}

// value reads the field bound to o as a document value:
// nil for an unset optional, otherwise string, bool, uint64 or float64.
func (o Option) value(c *config.Config) any {
	switch p := o.field(c).(type) {
	case *string:
		return *p
	case *bool:
		return *p
	case *uint:
		return uint64(*p)
	case *float64:
		return *p
	case *config.Opt[string]:
		if v, ok := p.Get(); ok {
			return v
		}
	case *config.Opt[uint]:
		if v, ok := p.Get(); ok {
			return uint64(v)
		}
	case *config.Opt[uint8]:
		if v, ok := p.Get(); ok {
			return uint64(v)
		}
	case *config.Opt[float64]:
		if v, ok := p.Get(); ok {
			return v
		}
	}
	return nil
}

func store[T any](dst *T, v any) bool {
	x, ok := v.(T)
	if ok {
		*dst = x
	}
	return ok
}

func storeOpt[T any](dst *config.Opt[T], v any) bool {
	x, ok := v.(T)
	if ok {
		*dst = config.Some(x)
	}
	return ok
}
