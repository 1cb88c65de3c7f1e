package codec

import (
	"encoding/binary"
	"fmt"

	"hardixmod/pkg/audioengine"
	"hardixmod/pkg/ip"
)

// ReadPCM decodes s to the end as interleaved 16-bit samples.
func ReadPCM(s ip.Stream) ([]int16, error) {
	sf := s.Format()
	if sf.Bits != 16 || !sf.Signed {
		return nil, fmt.Errorf("codec: unsupported sample format %d-bit", sf.Bits)
	}
	var order binary.ByteOrder = binary.LittleEndian
	if sf.BigEndian {
		order = binary.BigEndian
	}

	buf := make([]byte, sf.SecondSize())
	var pcm []int16
	for {
		n, err := s.Read(buf)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return pcm, nil
		}
		pcm = audioengine.PCM16(pcm, buf[:n], order)
	}
}

// Mono averages interleaved stereo into one channel.
func Mono(pcm []int16) []int16 {
	out := make([]int16, len(pcm)/2)
	for i := range out {
		out[i] = int16((int32(pcm[2*i]) + int32(pcm[2*i+1])) / 2)
	}
	return out
}
