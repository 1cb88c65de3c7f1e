// Package audioengine decodes tracker modules through the BASS engine and
// presents them to a host as ip streams.
package audioengine

import (
	"errors"
	"sync"
	"sync/atomic"
	"syscall"

	"hardixmod/pkg/bass"
	"hardixmod/pkg/ip"
	"hardixmod/pkg/spec"
)

// Plugin is the module input plugin. Option changes apply to every stream
// it has opened, including ones already playing.
type Plugin struct {
	backend Backend
	engine  *Engine

	mu   sync.Mutex
	opts Options

	// flags caches opts.Flags() for the read path.
	flags atomic.Uint32
}

func New(backend Backend, opts Options) *Plugin {
	p := &Plugin{
		backend: backend,
		engine:  NewEngine(backend),
		opts:    opts,
	}
	p.flags.Store(opts.Flags())
	return p
}

func (p *Plugin) Info() ip.Info {
	return ip.Info{
		Name:       spec.PluginName,
		Priority:   spec.Priority,
		Extensions: append([]string(nil), spec.Extensions...),
		Options:    append([]string(nil), spec.Options...),
	}
}

// Options returns the current configuration.
func (p *Plugin) Options() Options {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.opts
}

// Flags returns the music flags derived from the current configuration.
func (p *Plugin) Flags() uint32 {
	return p.flags.Load()
}

func (p *Plugin) ensureInitialized() error {
	if p.engine.Ready() {
		return nil
	}
	if err := p.engine.Init(); err != nil {
		return err
	}

	p.mu.Lock()
	p.flags.Store(p.opts.Flags())
	p.mu.Unlock()
	return nil
}

// Open implements ip.Plugin.
func (p *Plugin) Open(path string) (ip.Stream, error) {
	s, err := p.OpenStream(path)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// OpenStream loads path as a decode-only, prescanned channel that stops at
// the end of the track.
func (p *Plugin) OpenStream(path string) (*Stream, error) {
	if err := p.ensureInitialized(); err != nil {
		return nil, err
	}

	flags := p.flags.Load()
	h, err := p.backend.MusicLoad(path, flags|bass.MusicStopBack|bass.MusicDecode|bass.MusicPrescan, 0)
	if err != nil {
		return nil, classifyLoadError(err)
	}

	return &Stream{
		plugin: p,
		handle: h,
		flags:  flags,
		open:   true,
	}, nil
}

func classifyLoadError(err error) error {
	var code bass.ErrorCode
	if !errors.As(err, &code) {
		debugf("can't play the file (%v)", err)
		return ip.Wrap(ip.KindInternal, err)
	}
	switch code {
	case bass.ErrorFileOpen:
		return ip.Errno(syscall.ENOENT)
	case bass.ErrorMem:
		return ip.Errno(syscall.ENOMEM)
	case bass.ErrorFileForm:
		return ip.Wrap(ip.KindUnsupportedFileType, err)
	}
	debugf("can't play the file (%d)", int32(code))
	return ip.Wrap(ip.KindInternal, err)
}

// Option returns the current value name of key.
func (p *Plugin) Option(key string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch key {
	case spec.OptionInterpolation:
		return p.opts.Interpolation.String(), nil
	case spec.OptionModPlaybackMode:
		return p.opts.PlaybackMode.String(), nil
	case spec.OptionRamping:
		return p.opts.Ramping.String(), nil
	case spec.OptionSurround:
		return p.opts.Surround.String(), nil
	}
	return "", ip.ErrNotOption
}

// SetOption sets key to the value named value. Names match exactly; an
// unknown name leaves the option unchanged and fails with EINVAL.
func (p *Plugin) SetOption(key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	opts := p.opts
	var ok bool
	switch key {
	case spec.OptionInterpolation:
		opts.Interpolation, ok = parseEnum(value, interpolations)
	case spec.OptionModPlaybackMode:
		opts.PlaybackMode, ok = parseEnum(value, playbackModes)
	case spec.OptionRamping:
		opts.Ramping, ok = parseEnum(value, rampings)
	case spec.OptionSurround:
		opts.Surround, ok = parseEnum(value, surrounds)
	default:
		return ip.ErrNotOption
	}
	if !ok {
		return ip.Errno(syscall.EINVAL)
	}

	p.opts = opts
	p.flags.Store(opts.Flags())
	return nil
}
