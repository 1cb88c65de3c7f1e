package audioengine

import (
	"errors"
	"sync"
	"syscall"

	"hardixmod/pkg/bass"
	"hardixmod/pkg/ip"
	"hardixmod/pkg/spec"
)

// Backend is the engine surface the decoder drives. *bass.Library
// implements it.
type Backend interface {
	Version() uint32
	SetConfig(option, value uint32) error
	Init(device int32, freq, flags uint32) error

	MusicLoad(path string, flags, freq uint32) (bass.Handle, error)
	MusicFree(h bass.Handle) error

	ChannelGetData(h bass.Handle, buf []byte) (int, error)
	ChannelFlags(h bass.Handle, flags, mask uint32) (uint32, error)
	ChannelSeconds2Bytes(h bass.Handle, seconds float64) (uint64, error)
	ChannelSetPosition(h bass.Handle, pos uint64, mode uint32) error
	ChannelGetTags(h bass.Handle, tags uint32) string
	ChannelGetLength(h bass.Handle, mode uint32) (uint64, error)
	ChannelBytes2Seconds(h bass.Handle, pos uint64) float64
	ChannelGetInfo(h bass.Handle) (bass.ChannelInfo, error)
}

// Engine initialises the backend once. A failed Init is retried on the next
// call; a successful one is never repeated.
type Engine struct {
	backend Backend

	mu    sync.Mutex
	ready bool
}

func NewEngine(backend Backend) *Engine {
	return &Engine{backend: backend}
}

// Init checks the library version and opens the no-sound device at the
// fixed output rate.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ready {
		return nil
	}

	if v := bass.HiWord(e.backend.Version()); v != bass.Version {
		debugf("an incorrect version of BASS was loaded (%x instead of %x)", v, bass.Version)
		return ip.ErrInternal
	}

	e.backend.SetConfig(bass.ConfigUpdatePeriod, 0)

	if err := e.backend.Init(0, spec.SampleRate, 0); err != nil {
		var code bass.ErrorCode
		if errors.As(err, &code) && code == bass.ErrorMem {
			return ip.Errno(syscall.ENOMEM)
		}
		debugf("can't initialize device (%v)", err)
		return ip.Wrap(ip.KindInternal, err)
	}

	e.ready = true
	return nil
}

// Ready reports whether Init has succeeded.
func (e *Engine) Ready() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ready
}
