package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"hardixmod/pkg/ip"
	"hardixmod/pkg/spec"
)

func writeFile(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "mod.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "library: /opt/bass/libbass.so\ninterpolation: sinc\nsurround: mode2\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{Library: "/opt/bass/libbass.so", Interpolation: "sinc", Surround: "mode2"}
	if cfg != want {
		t.Errorf("Load = %+v, want %+v", cfg, want)
	}
}

func TestLoadEnvironmentWins(t *testing.T) {
	path := writeFile(t, t.TempDir(), "interpolation: sinc\nramping: off\n")
	t.Setenv("HDX_MOD_INTERPOLATION", "linear")
	t.Setenv("HDX_MOD_PLAYBACK_MODE", "ft2")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Interpolation != "linear" || cfg.ModPlaybackMode != "ft2" || cfg.Ramping != "off" {
		t.Errorf("Load = %+v", cfg)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv("HDX_BASS_LIBRARY", "libbass.so")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Library != "libbass.so" || len(cfg.Options()) != 0 {
		t.Errorf("Load = %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: %v", err)
	}

	bad := writeFile(t, dir, "interpolation: [sinc\n")
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "unmarshal") {
		t.Errorf("bad yaml: %v", err)
	}
}

// recorder accepts the values the bass plugin accepts for surround only.
type recorder struct {
	set map[string]string
}

func (r *recorder) SetOption(key, value string) error {
	if key == spec.OptionSurround && value == "mode9" {
		return ip.Errno(syscall.EINVAL)
	}
	r.set[key] = value
	return nil
}

func TestApply(t *testing.T) {
	r := &recorder{set: map[string]string{}}
	cfg := Config{Interpolation: "off", Ramping: "sensitive", Surround: "mode9"}

	err := cfg.Apply(r)
	if !errors.Is(err, ip.Errno(syscall.EINVAL)) {
		t.Fatalf("Apply = %v, want EINVAL", err)
	}
	if !strings.Contains(err.Error(), `surround="mode9"`) {
		t.Errorf("error %q does not name the option", err)
	}
	if r.set[spec.OptionInterpolation] != "off" || r.set[spec.OptionRamping] != "sensitive" {
		t.Errorf("applied = %v", r.set)
	}
	if _, ok := r.set[spec.OptionModPlaybackMode]; ok {
		t.Error("empty option was applied")
	}
}

func TestWatchReloads(t *testing.T) {
	path := writeFile(t, t.TempDir(), "interpolation: linear\n")
	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("interpolation: sinc\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Configs:
		if cfg.Interpolation != "sinc" {
			t.Errorf("reloaded %+v", cfg)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
}

func TestWatchCloseTwice(t *testing.T) {
	w, err := Watch(writeFile(t, t.TempDir(), ""))
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	w.Close()
	if _, ok := <-w.Configs; ok {
		t.Error("Configs still open after Close")
	}
}
