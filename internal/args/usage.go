package args

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// FlagSet returns a pflag.FlagSet mirroring the schema for help output.
// Setting its flags checks values but touches no Config.
func (s *Schema) FlagSet() *pflag.FlagSet {
	fs, _ := s.flagSet(nil)
	return fs
}

func usageText(opt Option) string {
	usage := opt.Usage
	if len(opt.Choices) > 0 {
		usage += fmt.Sprintf(" [possible values: %s]", strings.Join(opt.Choices, ", "))
	}
	if opt.Required {
		usage += " (required)"
	}
	return usage
}

// Spec is the exported description of one option.
type Spec struct {
	Name     string   `json:"name" yaml:"name"`
	Long     string   `json:"long" yaml:"long"`
	Short    string   `json:"short,omitempty" yaml:"short,omitempty"`
	Kind     Kind     `json:"kind" yaml:"kind"`
	Choices  []string `json:"choices,omitempty" yaml:"choices,omitempty"`
	Default  *string  `json:"default" yaml:"default"`
	Required bool     `json:"required" yaml:"required"`
	Usage    string   `json:"usage" yaml:"usage"`
}

// Describe lists the schema in document order.
func (s *Schema) Describe() []Spec {
	specs := make([]Spec, 0, len(s.options))
	for _, opt := range s.options {
		spec := Spec{
			Name:     opt.Name,
			Long:     opt.Long,
			Kind:     opt.Kind,
			Choices:  slices.Clone(opt.Choices),
			Required: opt.Required,
			Usage:    opt.Usage,
		}
		if opt.Short != 0 {
			spec.Short = string(opt.Short)
		}
		if def, ok := opt.Default.Get(); ok {
			spec.Default = &def
		}
		specs = append(specs, spec)
	}
	return specs
}
