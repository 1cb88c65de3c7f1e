package audioengine

import "encoding/binary"

// ApplyQuickGain scales samples in place, clipping to the int16 range.
func ApplyQuickGain(samples []int16, factor float64) {
	for i := range samples {
		val := float64(samples[i]) * factor
		if val > 32767 {
			val = 32767
		} else if val < -32768 {
			val = -32768
		}
		samples[i] = int16(val)
	}
}

// PCM16 converts raw 16-bit PCM bytes to samples, appending to dst.
func PCM16(dst []int16, raw []byte, order binary.ByteOrder) []int16 {
	for i := 0; i+2 <= len(raw); i += 2 {
		dst = append(dst, int16(order.Uint16(raw[i:])))
	}
	return dst
}
