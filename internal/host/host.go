// Package host wires configuration, the BASS library and the plugin
// registry together for the command line tools.
package host

import (
	"os"
	"path/filepath"

	"hardixmod/internal/config"
	"hardixmod/pkg/audioengine"
	"hardixmod/pkg/bass"
	"hardixmod/pkg/ip"
)

const configFile = ".hdx-mod.yaml"

type Host struct {
	Config   config.Config
	Plugin   *audioengine.Plugin
	Registry *ip.Registry
}

// DefaultConfigPath returns ~/.hdx-mod.yaml, or "" when it does not exist.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, configFile)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// Open loads the config at configPath, loads the BASS library it names and
// builds the host around it.
func Open(configPath string) (*Host, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	lib, err := bass.Open(cfg.Library)
	if err != nil {
		return nil, err
	}
	return New(cfg, lib)
}

// New builds a host on backend with cfg applied over the default options.
func New(cfg config.Config, backend audioengine.Backend) (*Host, error) {
	p := audioengine.New(backend, audioengine.DefaultOptions())
	if err := cfg.Apply(p); err != nil {
		return nil, err
	}

	reg := ip.NewRegistry()
	reg.Register(p)
	return &Host{Config: cfg, Plugin: p, Registry: reg}, nil
}

// Reload applies cfg to the live plugin. Open streams pick the change up on
// their next read.
func (h *Host) Reload(cfg config.Config) error {
	h.Config = cfg
	return cfg.Apply(h.Plugin)
}

// OpenFile opens path through the registry.
func (h *Host) OpenFile(path string) (ip.Stream, error) {
	s, _, err := h.Registry.Open(path)
	return s, err
}
