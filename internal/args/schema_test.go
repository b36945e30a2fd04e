package args

import (
	"strings"
	"testing"

	"av1an-args/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOption(name string, kind Kind) Option {
	return Option{
		Name:  name,
		Long:  strings.ReplaceAll(name, "_", "-"),
		Kind:  kind,
		field: func(c *config.Config) any { return &c.ChunkMethod },
	}
}

func TestNewSchemaRejectsInconsistentTables(t *testing.T) {
	flag := testOption("quiet", KindFlag)
	flag.field = func(c *config.Config) any { return &c.Quiet }

	withShort := func(o Option, r rune) Option { o.Short = r; return o }
	withDefault := func(o Option, d string) Option { o.Default = config.Some(d); return o }

	cases := map[string][]Option{
		"duplicate name":      {testOption("a", KindString), testOption("a", KindString)},
		"duplicate long":      {testOption("a", KindString), func() Option { o := testOption("b", KindString); o.Long = "a"; return o }()},
		"duplicate short":     {withShort(testOption("a", KindString), 'c'), withShort(testOption("b", KindString), 'c')},
		"missing long":        {{Name: "a", Kind: KindString, field: testOption("a", KindString).field}},
		"missing field":       {{Name: "a", Long: "a", Kind: KindString}},
		"required default":    {func() Option { o := withDefault(testOption("a", KindString), "x"); o.Required = true; return o }()},
		"kind field mismatch": {testOption("a", KindUint)},
		"flag with default":   {withDefault(flag, "true")},
		"bad default":         {func() Option { o := withDefault(testOption("a", KindString), "x"); o.Choices = []string{"y"}; return o }()},
		"choices on number": {func() Option {
			o := testOption("a", KindUint)
			o.field = func(c *config.Config) any { return &c.Workers }
			o.Choices = []string{"1"}
			return o
		}()},
	}
	for name, options := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewSchema(options)
			require.Error(t, err)
		})
	}
}

func TestNewSchemaCustomTable(t *testing.T) {
	encoder := testOption("encoder", KindString)
	encoder.field = func(c *config.Config) any { return &c.Encoder }
	encoder.Short = 'e'
	encoder.Choices = []string{"aom", "x265"}
	encoder.Default = config.Some("x265")

	schema, err := NewSchema([]Option{encoder})
	require.NoError(t, err)

	cfg, err := schema.ResolveDefaults()
	require.NoError(t, err)
	assert.Equal(t, "x265", cfg.Encoder)

	cfg, err = schema.Resolve([]string{"-e", "aom"})
	require.NoError(t, err)
	assert.Equal(t, "aom", cfg.Encoder)
}

func TestSchemaWithValidation(t *testing.T) {
	encoder := testOption("encoder", KindString)
	encoder.field = func(c *config.Config) any { return &c.Encoder }
	encoder.Default = config.Some("x265")

	plain := MustNewSchema([]Option{encoder})
	calls := 0
	checked := plain.WithValidation(func(c *config.Config) error {
		calls++
		if c.Encoder == "aom" {
			return &config.ConstraintError{Constraint: "no-aom", Option: "encoder", Msg: "aom is disabled"}
		}
		return nil
	})

	_, err := plain.Resolve([]string{"--encoder", "aom"})
	require.NoError(t, err)
	assert.Zero(t, calls, "WithValidation must not change the receiver")

	_, err = checked.Resolve(nil)
	require.NoError(t, err)

	_, err = checked.Resolve([]string{"--encoder", "aom"})
	require.ErrorIs(t, err, ErrInvalidValue)
	require.EqualError(t, err, "invalid value for --encoder: encoder: aom is disabled")
	assert.Equal(t, 2, calls)

	// The default schema carries the av1an cross-option checks.
	_, err = Resolve([]string{"-m", "hybrid", "--probing-rate", "0"})
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestSchemaChoicesAreNotShared(t *testing.T) {
	table := Options()
	schema := MustNewSchema(table)

	// Mutating the input table after NewSchema has no effect.
	for i := range table {
		if table[i].Name == "encoder" {
			table[i].Choices[0] = "x"
		}
	}
	for _, spec := range schema.Describe() {
		if len(spec.Choices) > 0 {
			spec.Choices[0] = "x"
		}
	}
	for _, opt := range schema.Options() {
		if len(opt.Choices) > 0 {
			opt.Choices[0] = "x"
		}
	}
	concat, ok := schema.Lookup("concat")
	require.True(t, ok)
	concat.Choices[0] = "x"

	_, err := schema.Resolve([]string{"-m", "hybrid", "-e", "x"})
	require.ErrorIs(t, err, ErrInvalidValue)

	cfg, err := schema.Resolve([]string{"-m", "hybrid", "-e", "aom", "--concat", "ffmpeg", "--split-method", "pyscene"})
	require.NoError(t, err)
	assert.Equal(t, "aom", cfg.Encoder)
	assert.Equal(t, "ffmpeg", cfg.Concat)

	for _, opt := range Options() {
		if len(opt.Choices) > 0 {
			assert.NotEqual(t, "x", opt.Choices[0], opt.Name)
		}
	}
}

func TestDefaultSchemaTable(t *testing.T) {
	schema := Default()

	var required []string
	for _, opt := range schema.Options() {
		assert.Equal(t, strings.ReplaceAll(opt.Name, "_", "-"), opt.Long, "long form of %s", opt.Name)
		assert.NotEmpty(t, opt.Usage, opt.Name)
		if opt.Required {
			required = append(required, opt.Name)
		}
	}
	assert.Equal(t, []string{"chunk_method"}, required)

	concat, ok := schema.Lookup("concat")
	require.True(t, ok)
	assert.Zero(t, concat.Short, "-c belongs to --config")

	cfgFile, ok := schema.Lookup("config")
	require.True(t, ok)
	assert.Equal(t, 'c', cfgFile.Short)

	_, ok = schema.Lookup("nope")
	assert.False(t, ok)
}

func TestFlagSetMirrorsSchema(t *testing.T) {
	fs := Default().FlagSet()

	for _, opt := range Default().Options() {
		f := fs.Lookup(opt.Long)
		require.NotNil(t, f, opt.Long)
		if opt.Short != 0 {
			assert.Equal(t, string(opt.Short), f.Shorthand, opt.Long)
		}
		if def, ok := opt.Default.Get(); ok {
			assert.Equal(t, def, f.DefValue, opt.Long)
		}
	}

	usage := fs.FlagUsages()
	assert.Contains(t, usage, "--chunk-method string")
	assert.Contains(t, usage, "(required)")
	assert.Contains(t, usage, "[possible values: aom, rav1e, libvpx, svt-av1, svt-vp9, x264, x265]")
	assert.Contains(t, usage, "--vmaf-res string")
	assert.Contains(t, usage, "-q, --quiet ")
	assert.NotContains(t, usage, "--quiet[=")

	require.NoError(t, fs.Set("encoder", "x264"))
	require.Error(t, fs.Set("encoder", "x265"), "set twice")
	require.Error(t, fs.Set("concat", "copy"))
	require.NoError(t, fs.Set("quiet", "true"))
}

func TestDescribe(t *testing.T) {
	specs := Default().Describe()
	require.Len(t, specs, 38)

	first := specs[0]
	assert.Equal(t, "input", first.Name)
	assert.Equal(t, "i", first.Short)
	assert.Equal(t, KindPath, first.Kind)
	assert.Nil(t, first.Default)

	for _, spec := range specs {
		if spec.Name == "audio_params" {
			require.NotNil(t, spec.Default)
			assert.Equal(t, "-c:a copy", *spec.Default)
		}
	}
}
