package codec

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/faiface/beep"
	"github.com/hraban/opus"

	"hardixmod/pkg/audioengine"
	"hardixmod/pkg/ip"
	"hardixmod/pkg/spec"
)

const (
	resampleQuality = 4
	maxOpusPacket   = 1500
)

// ErrBadFrameFile is returned when a frame file does not start with the
// HDX frame magic.
var ErrBadFrameFile = errors.New("codec: not an HDX frame file")

// EncoderResult carries one encoded frame or the error that ended encoding.
type EncoderResult struct {
	Frame []byte
	Error error
}

// EncodeOpusFrames resamples s to 48 kHz and sends 20ms Opus frames to
// results. The last frame is padded with silence. It returns the encoded
// duration in seconds; results is not closed.
func EncodeOpusFrames(s ip.Stream, results chan<- EncoderResult) (float64, error) {
	src, err := audioengine.NewStreamer(s)
	if err != nil {
		return 0, err
	}
	resampled := beep.Resample(resampleQuality, src.Format().SampleRate, spec.OpusSampleRate, src)

	enc, err := opus.NewEncoder(spec.OpusSampleRate, spec.Channels, opus.AppAudio)
	if err != nil {
		return 0, err
	}

	frameSamples := spec.OpusSampleRate * spec.FrameSize / 1000
	samples := make([][2]float64, frameSamples)
	pcmBuf := make([]int16, frameSamples*spec.Channels)
	opusBuf := make([]byte, maxOpusPacket)

	total := 0
	for {
		filled := 0
		for filled < frameSamples {
			n, ok := resampled.Stream(samples[filled:])
			filled += n
			if !ok {
				break
			}
		}
		if err := src.Err(); err != nil {
			results <- EncoderResult{Error: err}
			return 0, err
		}
		if filled == 0 {
			break
		}

		for i := range samples {
			l, r := 0.0, 0.0
			if i < filled {
				l, r = samples[i][0], samples[i][1]
			}
			pcmBuf[2*i] = toInt16(l)
			pcmBuf[2*i+1] = toInt16(r)
		}

		n, err := enc.Encode(pcmBuf, opusBuf)
		if err != nil {
			results <- EncoderResult{Error: err}
			return 0, err
		}
		frame := make([]byte, n)
		copy(frame, opusBuf[:n])
		results <- EncoderResult{Frame: frame}
		total += filled

		if filled < frameSamples {
			break
		}
	}

	return float64(total) / spec.OpusSampleRate, nil
}

func toInt16(v float64) int16 {
	v = math.Round(v * 32767)
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}

// WriteOpusFile encodes s and writes the frames to w as an HDX frame file:
// the magic, then each frame prefixed by its big-endian uint16 length.
func WriteOpusFile(w io.Writer, s ip.Stream) (float64, error) {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(spec.FrameMagicV1); err != nil {
		return 0, err
	}

	results := make(chan EncoderResult, 64)
	type outcome struct {
		duration float64
		err      error
	}
	done := make(chan outcome, 1)
	go func() {
		d, err := EncodeOpusFrames(s, results)
		close(results)
		done <- outcome{d, err}
	}()

	var writeErr error
	for res := range results {
		if res.Error != nil || writeErr != nil {
			continue
		}
		writeErr = WriteFrame(bw, res.Frame)
	}

	out := <-done
	if out.err != nil {
		return 0, out.err
	}
	if writeErr != nil {
		return 0, writeErr
	}
	return out.duration, bw.Flush()
}

// WriteFrame writes one length-prefixed frame.
func WriteFrame(w io.Writer, frame []byte) error {
	if len(frame) > math.MaxUint16 {
		return fmt.Errorf("codec: frame of %d bytes too large", len(frame))
	}
	var hdr [2]byte
	binary.BigEndian.PutUint16(hdr[:], uint16(len(frame)))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	_, err := w.Write(frame)
	return err
}

// ReadOpusFile reads back the frames of an HDX frame file.
func ReadOpusFile(r io.Reader) ([][]byte, error) {
	magic := make([]byte, len(spec.FrameMagicV1))
	if _, err := io.ReadFull(r, magic); err != nil || !bytes.Equal(magic, []byte(spec.FrameMagicV1)) {
		return nil, ErrBadFrameFile
	}

	var frames [][]byte
	var hdr [2]byte
	for {
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			if err == io.EOF {
				return frames, nil
			}
			return nil, fmt.Errorf("codec: frame header: %w", err)
		}
		frame := make([]byte, binary.BigEndian.Uint16(hdr[:]))
		if _, err := io.ReadFull(r, frame); err != nil {
			return nil, fmt.Errorf("codec: frame body: %w", err)
		}
		frames = append(frames, frame)
	}
}

// DecodeOpusFrames turns frames back into interleaved 48 kHz stereo PCM.
func DecodeOpusFrames(frames [][]byte) ([]int16, error) {
	dec, err := opus.NewDecoder(spec.OpusSampleRate, spec.Channels)
	if err != nil {
		return nil, err
	}

	frameSamples := spec.OpusSampleRate * spec.FrameSize / 1000
	out := make([]int16, frameSamples*spec.Channels)
	var pcm []int16
	for _, frame := range frames {
		n, err := dec.Decode(frame, out)
		if err != nil {
			return nil, err
		}
		pcm = append(pcm, out[:n*spec.Channels]...)
	}
	return pcm, nil
}

// VerifyOpusFile reads and decodes a whole HDX frame file and reports its
// frame count and decoded duration in seconds.
func VerifyOpusFile(r io.Reader) (int, float64, error) {
	frames, err := ReadOpusFile(r)
	if err != nil {
		return 0, 0, err
	}
	pcm, err := DecodeOpusFrames(frames)
	if err != nil {
		return len(frames), 0, fmt.Errorf("codec: decode: %w", err)
	}
	return len(frames), float64(len(pcm)/spec.Channels) / spec.OpusSampleRate, nil
}
