package args

import "av1an-args/internal/config"

// Option declares one command-line option and the Config field it fills.
type Option struct {
	Name     string // document key, e.g. "temp_dir"
	Long     string // long flag without dashes, e.g. "temp-dir"
	Short    rune   // 0 when the option has no short form
	Kind     Kind
	Choices  []string // allowed values, empty = unrestricted
	Default  config.Opt[string]
	Required bool
	Usage    string

	// field returns a pointer into c for the value of this option.
	field func(c *config.Config) any
}

var (
	concatMethods  = []string{config.ConcatFFmpeg, config.ConcatMkvmerge, config.ConcatIVF}
	splitMethods   = []string{config.SplitFFmpeg, config.SplitPyscene, config.SplitAOMKeyframes}
	encoders       = []string{config.EncoderAOM, config.EncoderRav1e, config.EncoderLibvpx, config.EncoderSVTAV1, config.EncoderSVTVP9, config.EncoderX264, config.EncoderX265}
	qualityMethods = []string{config.TargetQualityPerFrame, config.TargetQualityPerShot}
)

// Options returns the av1an option table in document order.
// Every call returns a table the caller may modify.
func Options() []Option {
	return cloneOptions([]Option{
		{Name: "input", Long: "input", Short: 'i', Kind: KindPath,
			Usage: "Input file or vapoursynth (.py, .vpy) script",
			field: func(c *config.Config) any { return &c.Input }},
		{Name: "temp_dir", Long: "temp-dir", Kind: KindPath,
			Usage: "Temporary directory to use",
			field: func(c *config.Config) any { return &c.TempDir }},
		{Name: "output", Long: "output", Short: 'o', Kind: KindPath,
			Usage: "Specify output file",
			field: func(c *config.Config) any { return &c.Output }},
		{Name: "concat", Long: "concat", Kind: KindString, Choices: concatMethods, Default: config.Some(config.ConcatFFmpeg),
			Usage: "Concatenation method to use for splits",
			field: func(c *config.Config) any { return &c.Concat }},
		{Name: "quiet", Long: "quiet", Short: 'q', Kind: KindFlag,
			Usage: "Disable printing progress to terminal",
			field: func(c *config.Config) any { return &c.Quiet }},
		{Name: "log", Long: "log", Short: 'l', Kind: KindString,
			Usage: "Enable logging",
			field: func(c *config.Config) any { return &c.Log }},
		{Name: "resume", Long: "resume", Short: 'r', Kind: KindFlag,
			Usage: "Resume previous session",
			field: func(c *config.Config) any { return &c.Resume }},
		{Name: "keep", Long: "keep", Kind: KindFlag,
			Usage: "Keep temporary folder after encode",
			field: func(c *config.Config) any { return &c.Keep }},
		{Name: "config", Long: "config", Short: 'c', Kind: KindPath,
			Usage: "Path to config file (creates if it does not exist)",
			field: func(c *config.Config) any { return &c.File }},
		{Name: "webm", Long: "webm", Kind: KindFlag,
			Usage: "Output to webm",
			field: func(c *config.Config) any { return &c.WebM }},

		{Name: "chunk_method", Long: "chunk-method", Short: 'm', Kind: KindString, Required: true,
			Usage: "Method for creating chunks",
			field: func(c *config.Config) any { return &c.ChunkMethod }},
		{Name: "scenes", Long: "scenes", Short: 's', Kind: KindPath,
			Usage: "File location for scenes",
			field: func(c *config.Config) any { return &c.Scenes }},
		{Name: "split_method", Long: "split-method", Kind: KindString, Choices: splitMethods, Default: config.Some(config.SplitPyscene),
			Usage: "Specify splitting method",
			field: func(c *config.Config) any { return &c.SplitMethod }},
		{Name: "extra_split", Long: "extra-split", Short: 'x', Kind: KindUint, Default: config.Some("240"),
			Usage: "Number of frames after which make split",
			field: func(c *config.Config) any { return &c.ExtraSplit }},
		{Name: "threshold", Long: "threshold", Kind: KindFloat, Default: config.Some("35.0"),
			Usage: "PySceneDetect threshold",
			field: func(c *config.Config) any { return &c.Threshold }},
		{Name: "min_scene_len", Long: "min-scene-len", Kind: KindUint, Default: config.Some("60"),
			Usage: "Minimum number of frames in a split",
			field: func(c *config.Config) any { return &c.MinSceneLen }},
		{Name: "reuse_first_pass", Long: "reuse-first-pass", Kind: KindFlag,
			Usage: "Reuse the first pass from aom_keyframes split on the chunks",
			field: func(c *config.Config) any { return &c.ReuseFirstPass }},

		{Name: "passes", Long: "passes", Short: 'p', Kind: KindUint8,
			Usage: "Specify encoding passes",
			field: func(c *config.Config) any { return &c.Passes }},
		{Name: "video_params", Long: "video-params", Short: 'v', Kind: KindString,
			Usage: "Parameters passed to the encoder",
			field: func(c *config.Config) any { return &c.VideoParams }},
		{Name: "encoder", Long: "encoder", Short: 'e', Kind: KindString, Choices: encoders, Default: config.Some(config.EncoderAOM),
			Usage: "Encoder to use",
			field: func(c *config.Config) any { return &c.Encoder }},
		{Name: "workers", Long: "workers", Short: 'w', Kind: KindUint, Default: config.Some("0"),
			Usage: "Number of workers (0 = auto-detect)",
			field: func(c *config.Config) any { return &c.Workers }},
		{Name: "no_check", Long: "no-check", Kind: KindFlag,
			Usage: "Do not check encodings",
			field: func(c *config.Config) any { return &c.NoCheck }},
		{Name: "force", Long: "force", Kind: KindFlag,
			Usage: "Force encoding if input args seen as invalid",
			field: func(c *config.Config) any { return &c.Force }},
		{Name: "ffmpeg", Long: "ffmpeg", Short: 'f', Kind: KindString, Default: config.Some(""),
			Usage: "FFmpeg commands",
			field: func(c *config.Config) any { return &c.FFmpeg }},
		{Name: "audio_params", Long: "audio-params", Short: 'a', Kind: KindString, Default: config.Some("-c:a copy"),
			Usage: "FFmpeg audio parameters",
			field: func(c *config.Config) any { return &c.AudioParams }},
		{Name: "pix_format", Long: "pix-format", Kind: KindString, Default: config.Some("yuv420p10le"),
			Usage: "FFmpeg pixel format",
			field: func(c *config.Config) any { return &c.PixFormat }},

		{Name: "vmaf", Long: "vmaf", Kind: KindFlag,
			Usage: "Calculate VMAF after encode",
			field: func(c *config.Config) any { return &c.VMAF }},
		{Name: "vmaf_path", Long: "vmaf-path", Kind: KindPath,
			Usage: "Path to VMAF models",
			field: func(c *config.Config) any { return &c.VMAFPath }},
		{Name: "vmaf_res", Long: "vmaf-res", Kind: KindString, Default: config.Some("1920x1080"),
			Usage: "Resolution used in VMAF calculation",
			field: func(c *config.Config) any { return &c.VMAFRes }},
		{Name: "vmaf_threads", Long: "vmaf-threads", Kind: KindUint,
			Usage: "Number of threads to use for VMAF calculation",
			field: func(c *config.Config) any { return &c.VMAFThreads }},

		{Name: "target_quality", Long: "target-quality", Short: 't', Kind: KindFloat,
			Usage: "VMAF value to target",
			field: func(c *config.Config) any { return &c.TargetQuality }},
		{Name: "target_quality_method", Long: "target-quality-method", Kind: KindString, Choices: qualityMethods, Default: config.Some(config.TargetQualityPerShot),
			Usage: "Method selection for target quality",
			field: func(c *config.Config) any { return &c.TargetQualityMethod }},
		{Name: "probes", Long: "probes", Kind: KindUint, Default: config.Some("4"),
			Usage: "Number of probes to make for target quality",
			field: func(c *config.Config) any { return &c.Probes }},
		{Name: "min_q", Long: "min-q", Kind: KindUint8,
			Usage: "Min q for target quality",
			field: func(c *config.Config) any { return &c.MinQ }},
		{Name: "max_q", Long: "max-q", Kind: KindUint8,
			Usage: "Max q for target quality",
			field: func(c *config.Config) any { return &c.MaxQ }},
		{Name: "vmaf_plots", Long: "vmaf-plots", Kind: KindFlag,
			Usage: "Make plots of probes in temp folder",
			field: func(c *config.Config) any { return &c.VMAFPlots }},
		{Name: "probing_rate", Long: "probing-rate", Kind: KindUint, Default: config.Some("4"),
			Usage: "Framerate for probes, 1 = original",
			field: func(c *config.Config) any { return &c.ProbingRate }},
		{Name: "vmaf_filter", Long: "vmaf-filter", Kind: KindString,
			Usage: "Filter applied to source at VMAF calculation, use if you crop source",
			field: func(c *config.Config) any { return &c.VMAFFilter }},
	})
}

// TakesValue reports whether the option consumes a value token.
func (o Option) TakesValue() bool {
	return o.Kind != KindFlag
}

// Flag returns the long form as written on the command line.
func (o Option) Flag() string {
	return "--" + o.Long
}
