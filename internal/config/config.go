package config

// Concatenation methods
const (
	ConcatFFmpeg   = "ffmpeg"
	ConcatMkvmerge = "mkvmerge"
	ConcatIVF      = "ivf"
)

// Split methods
const (
	SplitFFmpeg       = "ffmpeg"
	SplitPyscene      = "pyscene"
	SplitAOMKeyframes = "aom_keyframess"
)

// Encoders
const (
	EncoderAOM    = "aom"
	EncoderRav1e  = "rav1e"
	EncoderLibvpx = "libvpx"
	EncoderSVTAV1 = "svt-av1"
	EncoderSVTVP9 = "svt-vp9"
	EncoderX264   = "x264"
	EncoderX265   = "x265"
)

// Target quality methods
const (
	TargetQualityPerFrame = "per_frame"
	TargetQualityPerShot  = "per_shot"
)

// Config holds the resolved options of one encoding invocation.
// It is a plain value: copies share nothing.
type Config struct {
	// Paths
	Input   Opt[string]
	TempDir Opt[string]
	Output  Opt[string]

	// Session settings
	Concat string
	Quiet  bool
	Log    Opt[string]
	Resume bool
	Keep   bool
	File   Opt[string] // --config
	WebM   bool

	// Chunking and scene splitting
	ChunkMethod    string
	Scenes         Opt[string]
	SplitMethod    string
	ExtraSplit     uint
	Threshold      float64
	MinSceneLen    uint
	ReuseFirstPass bool

	// Encoder settings
	Passes      Opt[uint8]
	VideoParams Opt[string]
	Encoder     string
	Workers     uint // 0 = auto-detect
	NoCheck     bool
	Force       bool
	FFmpeg      string
	AudioParams string
	PixFormat   string

	// VMAF settings
	VMAF        bool
	VMAFPath    Opt[string]
	VMAFRes     string
	VMAFThreads Opt[uint]

	// Target quality settings
	TargetQuality       Opt[float64]
	TargetQualityMethod string
	Probes              uint
	MinQ                Opt[uint8]
	MaxQ                Opt[uint8]
	VMAFPlots           bool
	ProbingRate         uint
	VMAFFilter          Opt[string]
}
