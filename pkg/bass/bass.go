// Package bass exposes the parts of the BASS audio library used to render
// tracker modules. The shared library is loaded at run time, so nothing
// from the proprietary SDK is needed to build.
package bass

import (
	"errors"
	"fmt"
)

// Version is the BASS API version (HIWORD of BASS_GetVersion) these bindings
// are written against.
const Version = 0x0204

// Handle is a music/channel handle (HMUSIC).
type Handle uint32

// ErrUnsupportedPlatform is returned when the runtime loader is not
// available on the current OS.
var ErrUnsupportedPlatform = errors.New("bass: runtime loading is not supported on this platform")

// BASS_SetConfig options.
const (
	ConfigUpdatePeriod uint32 = 0
)

// Music flags for BASS_MusicLoad and BASS_ChannelFlags.
const (
	MusicMono      uint32 = 0x2
	MusicLoop      uint32 = 0x4
	MusicFloat     uint32 = 0x100
	MusicRamp      uint32 = 0x200
	MusicRamps     uint32 = 0x400
	MusicSurround  uint32 = 0x800
	MusicSurround2 uint32 = 0x1000
	MusicFT2Mod    uint32 = 0x2000
	MusicPT1Mod    uint32 = 0x4000
	MusicPosReset  uint32 = 0x8000
	MusicNonInter  uint32 = 0x10000
	MusicPrescan   uint32 = 0x20000
	MusicStopBack  uint32 = 0x80000
	MusicNoSample  uint32 = 0x100000
	MusicDecode    uint32 = 0x200000
	MusicSincInter uint32 = 0x800000
)

// Channel types reported in ChannelInfo.CType. MO3 is a flag combined with
// the type of the module it was packed from.
const (
	CTypeMusicMOD uint32 = 0x20000
	CTypeMusicMTM uint32 = 0x20001
	CTypeMusicS3M uint32 = 0x20002
	CTypeMusicXM  uint32 = 0x20003
	CTypeMusicIT  uint32 = 0x20004
	CTypeMusicMO3 uint32 = 0x00100
)

// BASS_ChannelGetTags tag types.
const (
	TagMusicName    uint32 = 0x10000
	TagMusicMessage uint32 = 0x10001
)

// BASS_ChannelGetLength / SetPosition modes.
const (
	PosByte uint32 = 0
)

// BASS_ChannelGetData length: the top nibble carries BASS_DATA_* flags, so
// a plain byte request must stay below it.
const MaxDataLength = 0x0FFFFFFF

// ChannelInfo mirrors BASS_CHANNELINFO.
type ChannelInfo struct {
	Freq     uint32
	Chans    uint32
	Flags    uint32
	CType    uint32
	OrigRes  uint32
	Plugin   uint32
	Sample   uint32
	Filename uintptr
}

// ErrorCode is a BASS_ErrorGetCode value. It is returned as the error of
// every failing call.
type ErrorCode int32

const (
	ErrorOK       ErrorCode = 0
	ErrorMem      ErrorCode = 1
	ErrorFileOpen ErrorCode = 2
	ErrorDriver   ErrorCode = 3
	ErrorHandle   ErrorCode = 5
	ErrorFormat   ErrorCode = 6
	ErrorPosition ErrorCode = 7
	ErrorInit     ErrorCode = 8
	ErrorAlready  ErrorCode = 14
	ErrorIllType  ErrorCode = 19
	ErrorIllParam ErrorCode = 20
	ErrorDevice   ErrorCode = 23
	ErrorNotAvail ErrorCode = 37
	ErrorDecode   ErrorCode = 38
	ErrorFileForm ErrorCode = 41
	ErrorVersion  ErrorCode = 43
	ErrorCodec    ErrorCode = 44
	ErrorEnded    ErrorCode = 45
	ErrorBusy     ErrorCode = 46
	ErrorUnknown  ErrorCode = -1
)

var errorNames = map[ErrorCode]string{
	ErrorOK:       "ok",
	ErrorMem:      "memory error",
	ErrorFileOpen: "can't open the file",
	ErrorDriver:   "can't find a free/valid driver",
	ErrorHandle:   "invalid handle",
	ErrorFormat:   "unsupported sample format",
	ErrorPosition: "invalid position",
	ErrorInit:     "BASS_Init has not been successfully called",
	ErrorAlready:  "already initialized",
	ErrorIllType:  "an illegal type was specified",
	ErrorIllParam: "an illegal parameter was specified",
	ErrorDevice:   "illegal device number",
	ErrorNotAvail: "requested data/action is not available",
	ErrorDecode:   "the channel is a decoding channel",
	ErrorFileForm: "unsupported file format",
	ErrorVersion:  "invalid BASS version",
	ErrorCodec:    "codec is not available/supported",
	ErrorEnded:    "the channel/file has ended",
	ErrorBusy:     "the device is busy",
	ErrorUnknown:  "some other mystery problem",
}

func (c ErrorCode) Error() string {
	if name, ok := errorNames[c]; ok {
		return fmt.Sprintf("bass: %s (%d)", name, int32(c))
	}
	return fmt.Sprintf("bass: error %d", int32(c))
}

// HiWord returns the upper 16 bits of v.
func HiWord(v uint32) uint32 {
	return v >> 16
}

// DataLength converts a buffer length to a BASS_ChannelGetData byte count,
// capped at MaxDataLength so no BASS_DATA_* flag bit is set.
func DataLength(n int) uint32 {
	if n <= 0 {
		return 0
	}
	if n > MaxDataLength {
		return MaxDataLength
	}
	return uint32(n)
}
