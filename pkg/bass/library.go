//go:build darwin || linux

package bass

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

// DefaultLibrary is the file name passed to dlopen when no path is
// configured.
var DefaultLibrary = defaultLibrary()

func defaultLibrary() string {
	if runtime.GOOS == "darwin" {
		return "libbass.dylib"
	}
	return "libbass.so"
}

// Library is a loaded libbass. Its methods are the subset of the BASS API
// the module decoder needs; failing calls return the engine's ErrorCode.
type Library struct {
	handle uintptr

	getVersion           func() uint32
	errorGetCode         func() int32
	setConfig            func(option, value uint32) int32
	init                 func(device int32, freq, flags uint32, win, dsguid uintptr) int32
	musicLoad            func(mem int32, file string, offset uint64, length, flags, freq uint32) uint32
	musicFree            func(handle uint32) int32
	channelGetData       func(handle uint32, buffer unsafe.Pointer, length uint32) uint32
	channelFlags         func(handle, flags, mask uint32) uint32
	channelSeconds2Bytes func(handle uint32, pos float64) uint64
	channelSetPosition   func(handle uint32, pos uint64, mode uint32) int32
	channelGetTags       func(handle, tags uint32) string
	channelGetLength     func(handle, mode uint32) uint64
	channelBytes2Seconds func(handle uint32, pos uint64) float64
	channelGetInfo       func(handle uint32, info *ChannelInfo) int32
}

// Open loads the shared library at path (DefaultLibrary when empty) and
// resolves every symbol up front.
func Open(path string) (*Library, error) {
	if path == "" {
		path = DefaultLibrary
	}

	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("bass: load %s: %w", path, err)
	}

	l := &Library{handle: h}
	syms := []struct {
		fptr any
		name string
	}{
		{&l.getVersion, "BASS_GetVersion"},
		{&l.errorGetCode, "BASS_ErrorGetCode"},
		{&l.setConfig, "BASS_SetConfig"},
		{&l.init, "BASS_Init"},
		{&l.musicLoad, "BASS_MusicLoad"},
		{&l.musicFree, "BASS_MusicFree"},
		{&l.channelGetData, "BASS_ChannelGetData"},
		{&l.channelFlags, "BASS_ChannelFlags"},
		{&l.channelSeconds2Bytes, "BASS_ChannelSeconds2Bytes"},
		{&l.channelSetPosition, "BASS_ChannelSetPosition"},
		{&l.channelGetTags, "BASS_ChannelGetTags"},
		{&l.channelGetLength, "BASS_ChannelGetLength"},
		{&l.channelBytes2Seconds, "BASS_ChannelBytes2Seconds"},
		{&l.channelGetInfo, "BASS_ChannelGetInfo"},
	}
	for _, s := range syms {
		sym, err := purego.Dlsym(h, s.name)
		if err != nil {
			purego.Dlclose(h)
			return nil, fmt.Errorf("bass: resolve %s in %s: %w", s.name, path, err)
		}
		purego.RegisterFunc(s.fptr, sym)
	}
	return l, nil
}

func (l *Library) lastError() error {
	return ErrorCode(l.errorGetCode())
}

// Version returns BASS_GetVersion.
func (l *Library) Version() uint32 {
	return l.getVersion()
}

func (l *Library) SetConfig(option, value uint32) error {
	if l.setConfig(option, value) == 0 {
		return l.lastError()
	}
	return nil
}

// Init initialises an output device. Device 0 is the no-sound device.
func (l *Library) Init(device int32, freq, flags uint32) error {
	if l.init(device, freq, flags, 0, 0) == 0 {
		return l.lastError()
	}
	return nil
}

// MusicLoad loads a module file. freq 0 renders at the device rate.
func (l *Library) MusicLoad(path string, flags, freq uint32) (Handle, error) {
	h := l.musicLoad(0, path, 0, 0, flags, freq)
	if h == 0 {
		return 0, l.lastError()
	}
	return Handle(h), nil
}

func (l *Library) MusicFree(h Handle) error {
	if l.musicFree(uint32(h)) == 0 {
		return l.lastError()
	}
	return nil
}

// ChannelGetData decodes up to len(buf) bytes of sample data, at most
// MaxDataLength per call. An empty buf decodes nothing and returns 0, nil;
// that is not the end of the track, which is reported as ErrorEnded.
func (l *Library) ChannelGetData(h Handle, buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	n := l.channelGetData(uint32(h), unsafe.Pointer(&buf[0]), DataLength(len(buf)))
	if n == ^uint32(0) {
		return 0, l.lastError()
	}
	return int(n), nil
}

// ChannelFlags modifies the flags selected by mask and returns the new
// flag set.
func (l *Library) ChannelFlags(h Handle, flags, mask uint32) (uint32, error) {
	r := l.channelFlags(uint32(h), flags, mask)
	if r == ^uint32(0) {
		return 0, l.lastError()
	}
	return r, nil
}

func (l *Library) ChannelSeconds2Bytes(h Handle, seconds float64) (uint64, error) {
	r := l.channelSeconds2Bytes(uint32(h), seconds)
	if r == ^uint64(0) {
		return 0, l.lastError()
	}
	return r, nil
}

func (l *Library) ChannelSetPosition(h Handle, pos uint64, mode uint32) error {
	if l.channelSetPosition(uint32(h), pos, mode) == 0 {
		return l.lastError()
	}
	return nil
}

// ChannelGetTags returns the requested tag, or "" when the file has none.
func (l *Library) ChannelGetTags(h Handle, tags uint32) string {
	return l.channelGetTags(uint32(h), tags)
}

func (l *Library) ChannelGetLength(h Handle, mode uint32) (uint64, error) {
	r := l.channelGetLength(uint32(h), mode)
	if r == ^uint64(0) {
		return 0, l.lastError()
	}
	return r, nil
}

// ChannelBytes2Seconds converts a byte position to seconds. A negative
// result means the conversion failed.
func (l *Library) ChannelBytes2Seconds(h Handle, pos uint64) float64 {
	return l.channelBytes2Seconds(uint32(h), pos)
}

func (l *Library) ChannelGetInfo(h Handle) (ChannelInfo, error) {
	var info ChannelInfo
	if l.channelGetInfo(uint32(h), &info) == 0 {
		return ChannelInfo{}, l.lastError()
	}
	return info, nil
}
