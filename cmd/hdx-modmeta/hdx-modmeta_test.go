package main

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"hardixmod/pkg/spec"
)

func tone(seconds int) []int16 {
	pcm := make([]int16, seconds*spec.SampleRate*spec.Channels)
	for i := range pcm {
		pcm[i] = int16(8000 * math.Sin(float64(i/spec.Channels)*2*math.Pi*440/spec.SampleRate))
	}
	return pcm
}

func TestFingerprintInto(t *testing.T) {
	var info ModuleInfo
	fingerprintInto(&info, tone(12))

	if !strings.HasPrefix(info.Fingerprint, "HDXM-V1-") {
		t.Errorf("fingerprint = %q", info.Fingerprint)
	}
	if len(info.Segments) != 3 {
		t.Fatalf("%d segments for 12 seconds, want 3", len(info.Segments))
	}
	for i, seg := range info.Segments {
		if len(seg) != 8 {
			t.Errorf("segment %d = %q", i, seg)
		}
	}

	out, err := json.Marshal(info)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), `"segments":["`+info.Segments[0]) {
		t.Errorf("json dump without segments: %s", out)
	}

	fingerprintInto(&info, tone(3))
	if len(info.Segments) != 1 {
		t.Errorf("refingerprint kept %d segments", len(info.Segments))
	}
}
