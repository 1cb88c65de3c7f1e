package audioengine

import (
	"errors"
	"syscall"
	"testing"

	"hardixmod/pkg/bass"
	"hardixmod/pkg/ip"
	"hardixmod/pkg/spec"
)

var optionValues = map[string][]string{
	spec.OptionInterpolation:   {"off", "linear", "sinc"},
	spec.OptionModPlaybackMode: {"normal", "ft2", "pt1"},
	spec.OptionRamping:         {"off", "normal", "sensitive"},
	spec.OptionSurround:        {"off", "mode1", "mode2"},
}

func TestDefaultOptions(t *testing.T) {
	p, _ := newTestPlugin(t)

	want := map[string]string{
		spec.OptionInterpolation:   "linear",
		spec.OptionModPlaybackMode: "normal",
		spec.OptionRamping:         "normal",
		spec.OptionSurround:        "off",
	}
	for key, v := range want {
		got, err := p.Option(key)
		if err != nil || got != v {
			t.Errorf("Option(%s) = %q, %v; want %q", key, got, err, v)
		}
	}
	if p.Flags() != bass.MusicRamp {
		t.Errorf("default flags = %#x, want %#x", p.Flags(), bass.MusicRamp)
	}
}

func TestOptionRoundTrip(t *testing.T) {
	p, _ := newTestPlugin(t)

	for key, values := range optionValues {
		for _, v := range values {
			if err := p.SetOption(key, v); err != nil {
				t.Fatalf("SetOption(%s, %s): %v", key, v, err)
			}
			got, err := p.Option(key)
			if err != nil {
				t.Fatalf("Option(%s): %v", key, err)
			}
			if got != v {
				t.Errorf("Option(%s) = %q after setting %q", key, got, v)
			}
			if p.Flags() != p.Options().Flags() {
				t.Errorf("cached flags %#x out of date (want %#x)", p.Flags(), p.Options().Flags())
			}
		}
	}
}

func TestSetOptionRejectsUnknownValue(t *testing.T) {
	p, _ := newTestPlugin(t)
	p.SetOption(spec.OptionSurround, "mode2")
	before := p.Flags()

	for key := range optionValues {
		for _, bad := range []string{"", "Off", "sinc ", "bogus"} {
			prev, _ := p.Option(key)
			err := p.SetOption(key, bad)
			if !errors.Is(err, syscall.EINVAL) || ip.KindOf(err) != ip.KindErrno {
				t.Errorf("SetOption(%s, %q) err = %v, want EINVAL", key, bad, err)
			}
			if got, _ := p.Option(key); got != prev {
				t.Errorf("SetOption(%s, %q) changed value %q -> %q", key, bad, prev, got)
			}
		}
	}
	if p.Flags() != before {
		t.Errorf("flags changed by rejected values: %#x -> %#x", before, p.Flags())
	}
}

func TestUnknownOptionKey(t *testing.T) {
	p, _ := newTestPlugin(t)

	if _, err := p.Option("volume"); !errors.Is(err, ip.ErrNotOption) {
		t.Errorf("Option(volume) err = %v", err)
	}
	if err := p.SetOption("volume", "off"); !errors.Is(err, ip.ErrNotOption) {
		t.Errorf("SetOption(volume) err = %v", err)
	}
}

func TestFlagsAreOrOfFields(t *testing.T) {
	for _, i := range interpolations {
		for _, m := range playbackModes {
			for _, r := range rampings {
				for _, s := range surrounds {
					o := Options{Interpolation: i, PlaybackMode: m, Ramping: r, Surround: s}
					want := s.Flags() | r.Flags() | m.Flags() | i.Flags()
					if got := o.Flags(); got != want {
						t.Errorf("%+v: Flags = %#x, want %#x", o, got, want)
					}
					if o.Flags()&^ownedFlags != 0 {
						t.Errorf("%+v: flags %#x outside the owned mask", o, o.Flags())
					}
				}
			}
		}
	}
}

func TestFieldFlags(t *testing.T) {
	tests := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"interpolation off", InterpolationOff.Flags(), bass.MusicNonInter},
		{"interpolation linear", InterpolationLinear.Flags(), 0},
		{"interpolation sinc", InterpolationSinc.Flags(), bass.MusicSincInter},
		{"mode normal", PlaybackNormal.Flags(), 0},
		{"mode ft2", PlaybackFT2.Flags(), bass.MusicFT2Mod},
		{"mode pt1", PlaybackPT1.Flags(), bass.MusicPT1Mod},
		{"ramping off", RampingOff.Flags(), 0},
		{"ramping normal", RampingNormal.Flags(), bass.MusicRamp},
		{"ramping sensitive", RampingSensitive.Flags(), bass.MusicRamps},
		{"surround off", SurroundOff.Flags(), 0},
		{"surround mode1", SurroundMode1.Flags(), bass.MusicSurround},
		{"surround mode2", SurroundMode2.Flags(), bass.MusicSurround2},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: %#x, want %#x", tt.name, tt.got, tt.want)
		}
	}
}
