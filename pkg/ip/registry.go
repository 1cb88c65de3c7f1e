package ip

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Registry holds the plugins known to a host.
type Registry struct {
	mu      sync.RWMutex
	plugins []Plugin
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds p, keeping the list ordered by descending priority.
// Plugins with equal priority keep registration order.
func (r *Registry) Register(p Plugin) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.plugins = append(r.plugins, p)
	sort.SliceStable(r.plugins, func(i, j int) bool {
		return r.plugins[i].Info().Priority > r.plugins[j].Info().Priority
	})
}

// Plugins returns all registered plugins, highest priority first.
func (r *Registry) Plugins() []Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Plugin, len(r.plugins))
	copy(out, r.plugins)
	return out
}

// ForExtension returns the plugins claiming ext (with or without the dot,
// any case), highest priority first.
func (r *Registry) ForExtension(ext string) []Plugin {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Plugin
	for _, p := range r.plugins {
		for _, e := range p.Info().Extensions {
			if e == ext {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// ForFile returns the plugins for path's extension.
func (r *Registry) ForFile(path string) []Plugin {
	return r.ForExtension(filepath.Ext(path))
}

// Open tries each plugin for path in priority order and returns the first
// stream that opens. A file whose extension nobody claims fails with
// ErrUnrecognizedFileType; an unsupported format moves on to the next
// plugin.
func (r *Registry) Open(path string) (Stream, Plugin, error) {
	candidates := r.ForFile(path)
	if len(candidates) == 0 {
		return nil, nil, ErrUnrecognizedFileType
	}

	var lastErr error
	for _, p := range candidates {
		s, err := p.Open(path)
		if err == nil {
			return s, p, nil
		}
		lastErr = err
		if KindOf(err) != KindUnsupportedFileType {
			break
		}
	}
	return nil, nil, lastErr
}
