package audioengine

import (
	"errors"

	"hardixmod/pkg/bass"
	"hardixmod/pkg/ip"
	"hardixmod/pkg/spec"
)

// Stream is one open module. It is not safe for concurrent use.
type Stream struct {
	plugin *Plugin
	handle bass.Handle

	// flags is the music flag set last applied to the channel.
	flags uint32
	open  bool
}

// Format is 16-bit signed stereo at 44100 Hz in host byte order.
func (s *Stream) Format() ip.SampleFormat {
	return ip.SampleFormat{
		Bits:      spec.BitsPerSample,
		Rate:      spec.SampleRate,
		Channels:  spec.Channels,
		Signed:    true,
		BigEndian: ip.HostBigEndian(),
	}
}

func (s *Stream) ChannelMap() ip.ChannelMap {
	return ip.StereoMap()
}

// Close frees the channel. Closing twice is a no-op.
func (s *Stream) Close() error {
	if !s.open {
		return nil
	}
	s.open = false
	s.plugin.backend.MusicFree(s.handle)
	s.handle = 0
	return nil
}

// Read decodes into buf. At the end of the track it returns 0, nil.
// Option changes made since the last read are pushed to the channel after
// a successful read. An empty buf reads nothing and does not touch the
// channel, so callers must not take its 0 as the end of the track.
func (s *Stream) Read(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	b := s.plugin.backend

	n, err := b.ChannelGetData(s.handle, buf)
	if err != nil {
		var code bass.ErrorCode
		if errors.As(err, &code) && code == bass.ErrorEnded {
			return 0, nil
		}
		debugf("can't read data (%v)", err)
		return 0, ip.Wrap(ip.KindInternal, err)
	}

	if flags := s.plugin.flags.Load(); flags != s.flags {
		s.flags = flags
		b.ChannelFlags(s.handle, flags, ownedFlags)
	}
	return n, nil
}

// Seek moves to seconds from the start of the track.
func (s *Stream) Seek(seconds float64) error {
	b := s.plugin.backend

	pos, err := b.ChannelSeconds2Bytes(s.handle, seconds)
	if err == nil {
		err = b.ChannelSetPosition(s.handle, pos, bass.PosByte)
	}
	if err != nil {
		debugf("can't seek (%v)", err)
		return ip.Wrap(ip.KindFunctionNotSupported, err)
	}
	return nil
}

// Comments returns the module title and embedded message, in that order,
// skipping whichever is missing or empty.
func (s *Stream) Comments() ([]ip.Comment, error) {
	b := s.plugin.backend
	comments := []ip.Comment{}

	if v := b.ChannelGetTags(s.handle, bass.TagMusicName); v != "" {
		comments = append(comments, ip.Comment{Key: spec.CommentTitle, Value: v})
	}
	if v := b.ChannelGetTags(s.handle, bass.TagMusicMessage); v != "" {
		comments = append(comments, ip.Comment{Key: spec.CommentMessage, Value: v})
	}
	return comments, nil
}

// Duration returns the prescanned track length in whole seconds.
func (s *Stream) Duration() (int, error) {
	b := s.plugin.backend

	length, err := b.ChannelGetLength(s.handle, bass.PosByte)
	if err != nil {
		debugf("can't get duration (%v)", err)
		return 0, ip.Wrap(ip.KindFunctionNotSupported, err)
	}
	seconds := b.ChannelBytes2Seconds(s.handle, length)
	if seconds < 0 {
		debugf("can't get duration")
		return 0, ip.ErrFunctionNotSupported
	}
	return int(seconds), nil
}

// Bitrate is meaningless for tracker modules.
func (s *Stream) Bitrate() (int, error) {
	return 0, ip.ErrFunctionNotSupported
}

func (s *Stream) CurrentBitrate() (int, error) {
	return 0, ip.ErrFunctionNotSupported
}

// Codec names the module format, or returns "" when the engine reports a
// type without a short name (UMX containers included).
func (s *Stream) Codec() string {
	info, err := s.plugin.backend.ChannelGetInfo(s.handle)
	if err != nil {
		return ""
	}
	if info.CType&bass.CTypeMusicMO3 != 0 {
		return "mo3"
	}
	switch info.CType {
	case bass.CTypeMusicIT:
		return "it"
	case bass.CTypeMusicMOD:
		return "mod"
	case bass.CTypeMusicMTM:
		return "mtm"
	case bass.CTypeMusicS3M:
		return "s3m"
	case bass.CTypeMusicXM:
		return "xm"
	}
	return ""
}

func (s *Stream) CodecProfile() string {
	return ""
}
