package audioengine

import (
	"fmt"

	"hardixmod/pkg/bass"
)

// Interpolation selects the sample interpolation used while mixing.
type Interpolation int

const (
	InterpolationOff Interpolation = iota
	InterpolationLinear
	InterpolationSinc
)

var interpolations = []Interpolation{InterpolationOff, InterpolationLinear, InterpolationSinc}

func (i Interpolation) String() string {
	switch i {
	case InterpolationOff:
		return "off"
	case InterpolationLinear:
		return "linear"
	case InterpolationSinc:
		return "sinc"
	}
	return fmt.Sprintf("interpolation(%d)", int(i))
}

func (i Interpolation) Flags() uint32 {
	switch i {
	case InterpolationOff:
		return bass.MusicNonInter
	case InterpolationSinc:
		return bass.MusicSincInter
	}
	return 0
}

// PlaybackMode selects tracker compatibility for MOD files.
type PlaybackMode int

const (
	PlaybackNormal PlaybackMode = iota
	PlaybackFT2
	PlaybackPT1
)

var playbackModes = []PlaybackMode{PlaybackNormal, PlaybackFT2, PlaybackPT1}

func (m PlaybackMode) String() string {
	switch m {
	case PlaybackNormal:
		return "normal"
	case PlaybackFT2:
		return "ft2"
	case PlaybackPT1:
		return "pt1"
	}
	return fmt.Sprintf("playback(%d)", int(m))
}

func (m PlaybackMode) Flags() uint32 {
	switch m {
	case PlaybackFT2:
		return bass.MusicFT2Mod
	case PlaybackPT1:
		return bass.MusicPT1Mod
	}
	return 0
}

// Ramping selects volume ramping to avoid clicks.
type Ramping int

const (
	RampingOff Ramping = iota
	RampingNormal
	RampingSensitive
)

var rampings = []Ramping{RampingOff, RampingNormal, RampingSensitive}

func (r Ramping) String() string {
	switch r {
	case RampingOff:
		return "off"
	case RampingNormal:
		return "normal"
	case RampingSensitive:
		return "sensitive"
	}
	return fmt.Sprintf("ramping(%d)", int(r))
}

func (r Ramping) Flags() uint32 {
	switch r {
	case RampingNormal:
		return bass.MusicRamp
	case RampingSensitive:
		return bass.MusicRamps
	}
	return 0
}

// Surround selects the surround sound mode.
type Surround int

const (
	SurroundOff Surround = iota
	SurroundMode1
	SurroundMode2
)

var surrounds = []Surround{SurroundOff, SurroundMode1, SurroundMode2}

func (s Surround) String() string {
	switch s {
	case SurroundOff:
		return "off"
	case SurroundMode1:
		return "mode1"
	case SurroundMode2:
		return "mode2"
	}
	return fmt.Sprintf("surround(%d)", int(s))
}

func (s Surround) Flags() uint32 {
	switch s {
	case SurroundMode1:
		return bass.MusicSurround
	case SurroundMode2:
		return bass.MusicSurround2
	}
	return 0
}

// ownedFlags are the channel flags controlled by Options. Flag pushes on an
// open channel touch only these bits.
const ownedFlags = bass.MusicNonInter | bass.MusicSincInter |
	bass.MusicRamp | bass.MusicRamps |
	bass.MusicSurround | bass.MusicSurround2 |
	bass.MusicFT2Mod | bass.MusicPT1Mod

// Options is the playback configuration applied to every stream.
type Options struct {
	Interpolation Interpolation
	PlaybackMode  PlaybackMode
	Ramping       Ramping
	Surround      Surround
}

func DefaultOptions() Options {
	return Options{
		Interpolation: InterpolationLinear,
		PlaybackMode:  PlaybackNormal,
		Ramping:       RampingNormal,
		Surround:      SurroundOff,
	}
}

// Flags derives the BASS music flags for o.
func (o Options) Flags() uint32 {
	return o.Interpolation.Flags() |
		o.PlaybackMode.Flags() |
		o.Ramping.Flags() |
		o.Surround.Flags()
}

// parseEnum matches s exactly against the names of values.
func parseEnum[T fmt.Stringer](s string, values []T) (T, bool) {
	for _, v := range values {
		if v.String() == s {
			return v, true
		}
	}
	var zero T
	return zero, false
}
