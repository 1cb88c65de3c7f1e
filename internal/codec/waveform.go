package codec

import "math"

const waveformPoints = 1000

// GenerateWaveformData reduces PCM to at most 1000 RMS levels scaled to a
// byte each.
func GenerateWaveformData(pcm []int16) []byte {
	if len(pcm) == 0 {
		return nil
	}
	step := (len(pcm) + waveformPoints - 1) / waveformPoints

	waveform := make([]byte, 0, waveformPoints)
	for i := 0; i < len(pcm); i += step {
		end := min(i+step, len(pcm))
		var sum float64
		for _, v := range pcm[i:end] {
			sum += float64(v) * float64(v)
		}

		rms := math.Sqrt(sum / float64(end-i))
		waveform = append(waveform, uint8(math.Min((rms/32768.0)*255.0*5.0, 255.0)))
	}
	return waveform
}
