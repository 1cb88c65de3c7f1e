// Package config loads adapter options from a YAML file with an
// environment overlay and applies them to a plugin.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"hardixmod/pkg/spec"
)

// Config holds the user-facing adapter settings. Empty option fields leave
// the plugin's current value alone.
type Config struct {
	Library         string `yaml:"library" env:"HDX_BASS_LIBRARY"`
	Interpolation   string `yaml:"interpolation" env:"HDX_MOD_INTERPOLATION"`
	ModPlaybackMode string `yaml:"mod_playback_mode" env:"HDX_MOD_PLAYBACK_MODE"`
	Ramping         string `yaml:"ramping" env:"HDX_MOD_RAMPING"`
	Surround        string `yaml:"surround" env:"HDX_MOD_SURROUND"`
}

// Option is one key=value pair destined for SetOption.
type Option struct {
	Key   string
	Value string
}

// Setter is satisfied by ip.Plugin.
type Setter interface {
	SetOption(key, value string) error
}

// Load reads path, if given, then overlays the environment.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: environment: %w", err)
	}
	return cfg, nil
}

// Options lists the set option values in the plugin's key order.
func (c Config) Options() []Option {
	all := []Option{
		{Key: spec.OptionInterpolation, Value: c.Interpolation},
		{Key: spec.OptionModPlaybackMode, Value: c.ModPlaybackMode},
		{Key: spec.OptionRamping, Value: c.Ramping},
		{Key: spec.OptionSurround, Value: c.Surround},
	}
	out := all[:0]
	for _, kv := range all {
		if kv.Value != "" {
			out = append(out, kv)
		}
	}
	return out
}

// Apply sets every configured option on s. A rejected value does not stop
// the remaining options from being applied.
func (c Config) Apply(s Setter) error {
	var errs []error
	for _, kv := range c.Options() {
		if err := s.SetOption(kv.Key, kv.Value); err != nil {
			errs = append(errs, fmt.Errorf("config: %s=%q: %w", kv.Key, kv.Value, err))
		}
	}
	return errors.Join(errs...)
}
