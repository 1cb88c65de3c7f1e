package audioengine

import (
	"encoding/binary"
	"fmt"

	"github.com/faiface/beep"

	"hardixmod/pkg/ip"
)

// Streamer plays a 16-bit stereo ip.Stream through beep.
type Streamer struct {
	src   ip.Stream
	order binary.ByteOrder
	raw   []byte
	err   error
}

// NewStreamer wraps src. src must produce 16-bit signed stereo PCM.
func NewStreamer(src ip.Stream) (*Streamer, error) {
	sf := src.Format()
	if sf.Bits != 16 || sf.Channels != 2 || !sf.Signed {
		return nil, fmt.Errorf("streamer: unsupported sample format %d-bit x%d", sf.Bits, sf.Channels)
	}

	var order binary.ByteOrder = binary.LittleEndian
	if sf.BigEndian {
		order = binary.BigEndian
	}
	return &Streamer{src: src, order: order}, nil
}

// Format returns the beep format matching the source stream.
func (l *Streamer) Format() beep.Format {
	sf := l.src.Format()
	return beep.Format{
		SampleRate:  beep.SampleRate(sf.Rate),
		NumChannels: sf.Channels,
		Precision:   sf.Bits / 8,
	}
}

func (l *Streamer) Stream(samples [][2]float64) (int, bool) {
	if l.err != nil {
		return 0, false
	}

	need := len(samples) * 4
	if cap(l.raw) < need {
		l.raw = make([]byte, need)
	}

	filled := 0
	for filled < len(samples) {
		buf := l.raw[:(len(samples)-filled)*4]
		n, err := l.src.Read(buf)
		if err != nil {
			l.err = err
			break
		}
		if n == 0 {
			break
		}

		// the engine hands out whole frames; a trailing partial frame is dropped
		for i := 0; i+4 <= n; i += 4 {
			samples[filled][0] = float64(int16(l.order.Uint16(buf[i:]))) / 32768.0
			samples[filled][1] = float64(int16(l.order.Uint16(buf[i+2:]))) / 32768.0
			filled++
		}
	}

	return filled, filled > 0
}

func (l *Streamer) Err() error { return l.err }
