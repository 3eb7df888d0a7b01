package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/vimmapper/internal/config/loader"
	"github.com/dshills/vimmapper/internal/declaration"
)

// memFS is an in-memory file system for testing.
type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(data), nil
}

func (m memFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m[path]; !ok {
		return nil, fs.ErrNotExist
	}
	return os.Stat(os.DevNull)
}

// staticEnv is an environment layer with fixed values.
type staticEnv map[string]any

func (e staticEnv) Load() (map[string]any, error) {
	return map[string]any(e), nil
}

var _ loader.Loader = staticEnv(nil)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", WithFileSystem(memFS{}), WithEnv(staticEnv{}))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadLayers(t *testing.T) {
	fsys := memFS{"/etc/vm.toml": `
declaration = "/decl/maps.yaml"
output = "/out/maps.vim"
log_level = "debug"
timeout = 3

[watch]
debounce = "1s"
`}
	env := staticEnv{
		"output": "/env/maps.vim",
		"watch":  map[string]any{"debounce": "50ms"},
	}

	cfg, err := Load("/etc/vm.toml", WithFileSystem(fsys), WithEnv(env))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := &Config{
		Declaration: "/decl/maps.yaml",
		Output:      "/env/maps.vim",
		LogLevel:    "debug",
		Timeout:     3 * time.Second,
		Watch:       WatchConfig{Debounce: 50 * time.Millisecond},
		Source:      "/etc/vm.toml",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("VIMMAPPER_FORMAT", "toml")
	t.Setenv("VIMMAPPER_TIMEOUT", "750ms")

	cfg, err := Load("", WithFileSystem(memFS{}))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Format != "toml" || cfg.Timeout != 750*time.Millisecond {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.DeclarationFormat() != declaration.FormatTOML {
		t.Errorf("DeclarationFormat() = %q", cfg.DeclarationFormat())
	}
}

func TestLoadEmptyEnvironmentFallsBack(t *testing.T) {
	t.Setenv("VIMMAPPER_LOG_LEVEL", "")
	t.Setenv("VIMMAPPER_TIMEOUT", "")
	fsys := memFS{"/c.toml": "log_level = \"warn\"\ntimeout = \"2s\"\n"}

	cfg, err := Load("/c.toml", WithFileSystem(fsys))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != "warn" || cfg.Timeout != 2*time.Second {
		t.Errorf("cfg = %+v, want file values", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		env     staticEnv
		wantErr error
	}{
		{name: "unknown key", file: `colour = "red"`, wantErr: ErrUnknownSetting},
		{name: "unknown watch key", file: "[watch]\ninterval = \"1s\"", wantErr: ErrUnknownSetting},
		{name: "wrong type", file: `output = 3`, wantErr: ErrInvalidValue},
		{name: "bad duration", file: `timeout = "soon"`, wantErr: ErrInvalidValue},
		{name: "watch not a table", file: `watch = "fast"`, wantErr: ErrInvalidValue},
		{name: "bad env duration", env: staticEnv{"timeout": "x"}, wantErr: ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := memFS{"/c.toml": tt.file}
			_, err := Load("/c.toml", WithFileSystem(fsys), WithEnv(tt.env))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("error type = %T, want *ValidationError", err)
			}
		})
	}

	_, err := Load("/missing.toml", WithFileSystem(memFS{}), WithEnv(staticEnv{}))
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("explicit missing file error = %v, want ErrFileNotFound", err)
	}

	_, err = Load("/bad.toml", WithFileSystem(memFS{"/bad.toml": "output = "}), WithEnv(staticEnv{}))
	var pe *loader.ParseError
	if !errors.As(err, &pe) {
		t.Errorf("syntax error = %v, want *loader.ParseError", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		key    string
	}{
		{name: "empty declaration", mutate: func(c *Config) { c.Declaration = "" }, key: "declaration"},
		{name: "empty output", mutate: func(c *Config) { c.Output = "" }, key: "output"},
		{name: "bad format", mutate: func(c *Config) { c.Format = "xml" }, key: "format"},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, key: "log_level"},
		{name: "zero timeout", mutate: func(c *Config) { c.Timeout = 0 }, key: "timeout"},
		{name: "negative debounce", mutate: func(c *Config) { c.Watch.Debounce = -time.Second }, key: "watch.debounce"},
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Key != tt.key {
				t.Errorf("Validate() error = %v, want key %s", err, tt.key)
			}
		})
	}
}

func TestValidateFormatMessage(t *testing.T) {
	cfg := Default()
	cfg.Format = "xml"

	var ve *ValidationError
	if !errors.As(cfg.Validate(), &ve) {
		t.Fatal("Validate() did not return a ValidationError")
	}
	if want := "must be one of lua, yaml, toml, json"; ve.Message != want {
		t.Errorf("Message = %q, want %q", ve.Message, want)
	}
}

func TestFinalizeExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Default()
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if want := filepath.Join(home, ".config/nvim/managed_mappings.lua"); cfg.Declaration != want {
		t.Errorf("Declaration = %q, want %q", cfg.Declaration, want)
	}
	if want := filepath.Join(home, ".config/nvim/managed_mappings.vim"); cfg.Output != want {
		t.Errorf("Output = %q, want %q", cfg.Output, want)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := DefaultPath(); got != "/xdg/vimmapper/config.toml" {
		t.Errorf("DefaultPath() = %q", got)
	}
	t.Setenv("XDG_CONFIG_HOME", "")
	if got := DefaultPath(); got != "~/.config/vimmapper/config.toml" {
		t.Errorf("DefaultPath() = %q", got)
	}

	if got, _ := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome(abs) = %q", got)
	}
	if got, _ := ExpandHome("~user/x"); got != "~user/x" {
		t.Errorf("ExpandHome(~user) = %q", got)
	}
}
