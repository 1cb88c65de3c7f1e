package spec

const (
	// === IDENTITY & VERSIONING ===
	VersionV1  = "1.0.0"
	PluginName = "bass"

	// Host plugin ordering; higher wins when several plugins claim an extension.
	Priority = 55

	// === OUTPUT FORMAT (fixed by the engine init) ===
	SampleRate    = 44100
	Channels      = 2
	BitsPerSample = 16
	FrameBytes    = Channels * BitsPerSample / 8

	// === OPUS EXPORT (HDX frame file) ===
	OpusSampleRate = 48000
	FrameSize      = 20 // ms
	FrameMagicV1   = "HDXF01"

	// === OPTION KEYS ===
	OptionInterpolation   = "interpolation"
	OptionModPlaybackMode = "mod_playback_mode"
	OptionRamping         = "ramping"
	OptionSurround        = "surround"

	// === COMMENT KEYS ===
	CommentTitle   = "title"
	CommentMessage = "comment"
)

// Extensions handled by the plugin, lowercase without the dot.
var Extensions = []string{"it", "mo3", "mod", "mtm", "s3m", "umx", "xm"}

// Options lists the option keys in the order the host shows them.
var Options = []string{
	OptionInterpolation,
	OptionModPlaybackMode,
	OptionRamping,
	OptionSurround,
}
