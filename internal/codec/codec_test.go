package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-audio/wav"

	"hardixmod/pkg/ip"
	"hardixmod/pkg/spec"
)

// pcmStream is an ip.Stream over little-endian 44.1 kHz stereo samples.
type pcmStream struct {
	data []byte
	err  error
}

func newPCMStream(samples []int16) *pcmStream {
	data := make([]byte, 2*len(samples))
	for i, v := range samples {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(v))
	}
	return &pcmStream{data: data}
}

func (p *pcmStream) Format() ip.SampleFormat {
	return ip.SampleFormat{Bits: 16, Rate: spec.SampleRate, Channels: spec.Channels, Signed: true}
}
func (p *pcmStream) ChannelMap() ip.ChannelMap { return ip.StereoMap() }
func (p *pcmStream) Read(buf []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	n := copy(buf, p.data)
	p.data = p.data[n:]
	return n, nil
}
func (p *pcmStream) Seek(float64) error             { return ip.ErrFunctionNotSupported }
func (p *pcmStream) Comments() ([]ip.Comment, error) { return []ip.Comment{}, nil }
func (p *pcmStream) Duration() (int, error)          { return 0, ip.ErrFunctionNotSupported }
func (p *pcmStream) Bitrate() (int, error)           { return 0, ip.ErrFunctionNotSupported }
func (p *pcmStream) CurrentBitrate() (int, error)    { return 0, ip.ErrFunctionNotSupported }
func (p *pcmStream) Codec() string                   { return "xm" }
func (p *pcmStream) CodecProfile() string            { return "" }
func (p *pcmStream) Close() error                    { return nil }

// sine returns seconds of a 440 Hz tone on both channels.
func sine(seconds float64) []int16 {
	frames := int(seconds * spec.SampleRate)
	out := make([]int16, 0, frames*2)
	for i := 0; i < frames; i++ {
		v := int16(8000 * math.Sin(2*math.Pi*440*float64(i)/spec.SampleRate))
		out = append(out, v, v)
	}
	return out
}

func TestWriteWAVRoundTrip(t *testing.T) {
	samples := sine(1.5)
	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	frames, err := WriteWAV(newPCMStream(samples), f, 2)
	f.Close()
	if err != nil {
		t.Fatalf("WriteWAV: %v", err)
	}
	if frames != len(samples)/2 {
		t.Errorf("frames = %d, want %d", frames, len(samples)/2)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()
	dec := wav.NewDecoder(in)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dec.SampleRate != spec.SampleRate || dec.NumChans != spec.Channels || dec.BitDepth != 16 {
		t.Errorf("header = %d Hz x%d %d-bit", dec.SampleRate, dec.NumChans, dec.BitDepth)
	}
	if len(buf.Data) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(buf.Data), len(samples))
	}
	for i := range samples {
		if buf.Data[i] != 2*int(samples[i]) {
			t.Fatalf("sample %d = %d, want %d", i, buf.Data[i], 2*int(samples[i]))
		}
	}
}

func TestWriteWAVReadError(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	s := &pcmStream{err: ip.ErrInternal}
	if _, err := WriteWAV(s, f, 1); !errors.Is(err, ip.ErrInternal) {
		t.Errorf("WriteWAV = %v", err)
	}
}

func TestReadPCMAndMono(t *testing.T) {
	pcm, err := ReadPCM(newPCMStream([]int16{100, 300, -4, -8, 7}))
	if err != nil {
		t.Fatal(err)
	}
	if len(pcm) != 5 {
		t.Fatalf("ReadPCM = %v", pcm)
	}
	mono := Mono(pcm)
	if len(mono) != 2 || mono[0] != 200 || mono[1] != -6 {
		t.Errorf("Mono = %v", mono)
	}
}

func TestGenerateWaveformData(t *testing.T) {
	if GenerateWaveformData(nil) != nil {
		t.Error("empty input produced levels")
	}

	levels := GenerateWaveformData(sine(3))
	if len(levels) == 0 || len(levels) > waveformPoints {
		t.Fatalf("got %d levels", len(levels))
	}
	for i, l := range levels {
		if l == 0 {
			t.Fatalf("level %d is silent", i)
		}
	}

	silent := GenerateWaveformData(make([]int16, 10))
	if len(silent) != 10 || silent[0] != 0 {
		t.Errorf("silent = %v", silent)
	}
}

func TestGenerateFingerprint(t *testing.T) {
	pcm := sine(6)
	fp, segments := GenerateFingerprint(pcm)
	fp2, _ := GenerateFingerprint(sine(6))
	if fp != fp2 {
		t.Error("fingerprint is not deterministic")
	}
	if len(segments) != 8 {
		t.Errorf("segments = %d bytes, want 8", len(segments))
	}

	quiet, _ := GenerateFingerprint(make([]int16, len(pcm)))
	if quiet == fp {
		t.Error("silence and tone share a fingerprint")
	}
}

func TestGenerateSpectrogram(t *testing.T) {
	data, err := GenerateSpectrogram(sine(2))
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != spectrogramWidth || b.Dy() != spectrogramHeight {
		t.Errorf("bounds = %v", b)
	}
}

func TestRenderWaveform(t *testing.T) {
	data, err := RenderWaveform([]byte{0, 128, 255}, 64)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 64 {
		t.Errorf("bounds = %v", b)
	}
	if _, _, _, a := img.At(2, 0).RGBA(); a == 0 {
		t.Error("transparent pixel")
	}
}

func TestFrameFile(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(spec.FrameMagicV1)
	for _, f := range [][]byte{{1, 2, 3}, {}, bytes.Repeat([]byte{9}, 300)} {
		if err := WriteFrame(&buf, f); err != nil {
			t.Fatal(err)
		}
	}

	frames, err := ReadOpusFile(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 3 || len(frames[0]) != 3 || len(frames[1]) != 0 || len(frames[2]) != 300 {
		t.Errorf("frames = %v", frames)
	}

	if _, err := ReadOpusFile(bytes.NewReader([]byte("RIFF1234"))); !errors.Is(err, ErrBadFrameFile) {
		t.Errorf("bad magic: %v", err)
	}
	truncated := append([]byte(spec.FrameMagicV1), 0, 10, 1)
	if _, err := ReadOpusFile(bytes.NewReader(truncated)); err == nil {
		t.Error("truncated frame accepted")
	}
}

func TestOpusRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	duration, err := WriteOpusFile(&buf, newPCMStream(sine(1)))
	if err != nil {
		t.Fatalf("WriteOpusFile: %v", err)
	}
	if math.Abs(duration-1) > 0.05 {
		t.Errorf("duration = %v", duration)
	}

	frames, err := ReadOpusFile(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) < 49 || len(frames) > 51 {
		t.Errorf("%d frames for one second", len(frames))
	}

	pcm, err := DecodeOpusFrames(frames)
	if err != nil {
		t.Fatal(err)
	}
	if len(pcm) != len(frames)*960*spec.Channels {
		t.Errorf("decoded %d samples", len(pcm))
	}
}

func TestVerifyOpusFile(t *testing.T) {
	var buf bytes.Buffer
	if _, err := WriteOpusFile(&buf, newPCMStream(sine(2))); err != nil {
		t.Fatalf("WriteOpusFile: %v", err)
	}

	frames, seconds, err := VerifyOpusFile(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if frames < 99 || frames > 101 {
		t.Errorf("%d frames for two seconds", frames)
	}
	if want := float64(frames) * 0.02; math.Abs(seconds-want) > 1e-9 {
		t.Errorf("seconds = %v, want %v", seconds, want)
	}

	if _, _, err := VerifyOpusFile(strings.NewReader("RIFF....")); !errors.Is(err, ErrBadFrameFile) {
		t.Errorf("foreign file: %v", err)
	}
}
