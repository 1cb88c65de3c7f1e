//go:build !darwin && !linux

package bass

// DefaultLibrary is empty where the runtime loader is unavailable.
var DefaultLibrary = ""

// Library is a placeholder; Open always fails on this platform.
type Library struct{}

func Open(path string) (*Library, error) {
	return nil, ErrUnsupportedPlatform
}

func (l *Library) Version() uint32 { return 0 }

func (l *Library) SetConfig(option, value uint32) error { return ErrUnsupportedPlatform }

func (l *Library) Init(device int32, freq, flags uint32) error { return ErrUnsupportedPlatform }

func (l *Library) MusicLoad(path string, flags, freq uint32) (Handle, error) {
	return 0, ErrUnsupportedPlatform
}

func (l *Library) MusicFree(h Handle) error { return ErrUnsupportedPlatform }

func (l *Library) ChannelGetData(h Handle, buf []byte) (int, error) {
	return 0, ErrUnsupportedPlatform
}

func (l *Library) ChannelFlags(h Handle, flags, mask uint32) (uint32, error) {
	return 0, ErrUnsupportedPlatform
}

func (l *Library) ChannelSeconds2Bytes(h Handle, seconds float64) (uint64, error) {
	return 0, ErrUnsupportedPlatform
}

func (l *Library) ChannelSetPosition(h Handle, pos uint64, mode uint32) error {
	return ErrUnsupportedPlatform
}

func (l *Library) ChannelGetTags(h Handle, tags uint32) string { return "" }

func (l *Library) ChannelGetLength(h Handle, mode uint32) (uint64, error) {
	return 0, ErrUnsupportedPlatform
}

func (l *Library) ChannelBytes2Seconds(h Handle, pos uint64) float64 { return -1 }

func (l *Library) ChannelGetInfo(h Handle) (ChannelInfo, error) {
	return ChannelInfo{}, ErrUnsupportedPlatform
}
