package codec

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"hardixmod/pkg/audioengine"
	"hardixmod/pkg/ip"
)

const wavFormatPCM = 1

// WriteWAV renders s into a 16-bit PCM WAV file, scaling by gain when it is
// not 1. It returns the number of frames written.
func WriteWAV(s ip.Stream, w io.WriteSeeker, gain float64) (int, error) {
	sf := s.Format()
	if sf.Bits != 16 || !sf.Signed {
		return 0, fmt.Errorf("codec: unsupported sample format %d-bit", sf.Bits)
	}
	var order binary.ByteOrder = binary.LittleEndian
	if sf.BigEndian {
		order = binary.BigEndian
	}

	enc := wav.NewEncoder(w, sf.Rate, sf.Bits, sf.Channels, wavFormatPCM)
	intBuf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: sf.Channels, SampleRate: sf.Rate},
		SourceBitDepth: sf.Bits,
	}

	raw := make([]byte, sf.SecondSize())
	var samples []int16
	frames := 0
	for {
		n, err := s.Read(raw)
		if err != nil {
			return frames, err
		}
		if n == 0 {
			break
		}

		samples = audioengine.PCM16(samples[:0], raw[:n], order)
		if gain != 1 {
			audioengine.ApplyQuickGain(samples, gain)
		}

		intBuf.Data = intBuf.Data[:0]
		for _, v := range samples {
			intBuf.Data = append(intBuf.Data, int(v))
		}
		if err := enc.Write(intBuf); err != nil {
			return frames, fmt.Errorf("codec: wav write: %w", err)
		}
		frames += len(samples) / sf.Channels
	}

	if err := enc.Close(); err != nil {
		return frames, fmt.Errorf("codec: wav close: %w", err)
	}
	return frames, nil
}
