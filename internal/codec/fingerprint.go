package codec

import (
	"crypto/sha256"
	"fmt"

	"hardixmod/pkg/spec"
)

type landmark struct {
	time int
	peak int
}

const (
	landmarkWindow = 1024
	landmarkStride = 512
	landmarkFloor  = 500
	segmentSeconds = 5
)

// GenerateFingerprint hashes amplitude landmarks of interleaved stereo PCM.
// It returns the global fingerprint and 4 bytes per 5 second segment.
func GenerateFingerprint(pcm []int16) (string, []byte) {
	const segment = spec.SampleRate * spec.Channels * segmentSeconds

	var all []landmark
	var segments []byte
	for s := 0; s < len(pcm); s += segment {
		part := pcm[s:min(s+segment, len(pcm))]
		h := sha256.New()

		for i := 0; i+landmarkWindow < len(part); i += landmarkStride {
			var best int32
			peak := 0
			for j := 0; j < landmarkWindow; j++ {
				v := int32(part[i+j])
				if v < 0 {
					v = -v
				}
				if v > best {
					best, peak = v, j
				}
			}
			if best > landmarkFloor {
				lm := landmark{time: i / landmarkStride, peak: peak}
				all = append(all, lm)
				fmt.Fprintf(h, "%d-%d", lm.time, lm.peak)
			}
		}
		segments = append(segments, h.Sum(nil)[:4]...)
	}

	global := sha256.New()
	for _, lm := range all {
		fmt.Fprintf(global, "%d|%d", lm.time, lm.peak)
	}
	return fmt.Sprintf("HDXM-V1-%x", global.Sum(nil)[:12]), segments
}
