// Package ip describes the input-plugin contract a player host uses to decode
// audio files: plugin capabilities, open streams, their PCM format and the
// error kinds every operation reports.
package ip

import "encoding/binary"

// Info is what a plugin advertises to the host.
type Info struct {
	Name       string
	Priority   int
	Extensions []string
	MimeTypes  []string
	Options    []string
}

// Plugin opens decode streams and exposes the plugin's options.
type Plugin interface {
	Info() Info
	Open(path string) (Stream, error)
	Option(key string) (string, error)
	SetOption(key, value string) error
}

// Stream is one decoding session bound to one file. The host serialises all
// calls on a stream and closes every stream it opened exactly once.
type Stream interface {
	Format() SampleFormat
	ChannelMap() ChannelMap

	// Read fills buf with interleaved PCM and returns the byte count.
	// It returns 0, nil at the end of the track.
	Read(buf []byte) (int, error)
	Seek(seconds float64) error

	Comments() ([]Comment, error)
	Duration() (int, error)
	Bitrate() (int, error)
	CurrentBitrate() (int, error)
	Codec() string
	CodecProfile() string

	Close() error
}

// SampleFormat describes interleaved PCM produced by a Stream.
type SampleFormat struct {
	Bits      int
	Rate      int
	Channels  int
	Signed    bool
	BigEndian bool
}

// FrameSize is the byte size of one sample for every channel.
func (f SampleFormat) FrameSize() int {
	return f.Bits / 8 * f.Channels
}

// SecondSize is the byte size of one second of audio.
func (f SampleFormat) SecondSize() int {
	return f.FrameSize() * f.Rate
}

// HostBigEndian reports whether the running machine stores integers
// big-endian.
func HostBigEndian() bool {
	return binary.NativeEndian.Uint16([]byte{0x00, 0x01}) == 1
}

// ChannelPosition names a speaker position.
type ChannelPosition int

const (
	ChannelInvalid ChannelPosition = iota
	ChannelMono
	ChannelFrontLeft
	ChannelFrontRight
	ChannelFrontCenter
	ChannelRearLeft
	ChannelRearRight
	ChannelLFE
)

// ChannelMap assigns a position to each interleaved channel.
type ChannelMap []ChannelPosition

// StereoMap is the standard two-channel layout.
func StereoMap() ChannelMap {
	return ChannelMap{ChannelFrontLeft, ChannelFrontRight}
}

// Comment is one tag read from a file.
type Comment struct {
	Key   string
	Value string
}
