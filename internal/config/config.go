package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dshills/vimmapper/internal/config/loader"
	"github.com/dshills/vimmapper/internal/declaration"
)

// Default settings.
const (
	DefaultDeclaration = "~/.config/nvim/managed_mappings.lua"
	DefaultOutput      = "~/.config/nvim/managed_mappings.vim"
	DefaultLogLevel    = "info"
	DefaultTimeout     = 5 * time.Second
	DefaultDebounce    = 200 * time.Millisecond
)

// Config holds the resolved settings.
type Config struct {
	// Declaration is the declaration file to compile.
	Declaration string
	// Output is the Vim script file written by compile.
	Output string
	// Format forces the declaration format; empty detects it from the extension.
	Format string
	// LogLevel is a logrus level name.
	LogLevel string
	// Timeout bounds Lua evaluation.
	Timeout time.Duration
	// Watch configures the watch command.
	Watch WatchConfig

	// Source is the configuration file that was read, or "".
	Source string
}

// WatchConfig configures recompilation on change.
type WatchConfig struct {
	// Debounce is the quiet period before a change triggers compilation.
	Debounce time.Duration
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Declaration: DefaultDeclaration,
		Output:      DefaultOutput,
		LogLevel:    DefaultLogLevel,
		Timeout:     DefaultTimeout,
		Watch: WatchConfig{
			Debounce: DefaultDebounce,
		},
	}
}

type options struct {
	fs  loader.FileSystem
	env loader.Loader
}

// Option configures Load.
type Option func(*options)

// WithFileSystem reads the configuration file through fsys.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// WithEnv replaces the environment layer.
func WithEnv(env loader.Loader) Option {
	return func(o *options) {
		o.env = env
	}
}

// Load resolves defaults, the configuration file at path and the
// environment. An empty path selects DefaultPath, which may be absent; an
// explicit path must exist.
func Load(path string, opts ...Option) (*Config, error) {
	o := options{
		fs:  loader.DefaultFS(),
		env: loader.NewEnvLoader(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	path, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}

	file := loader.NewTOMLLoaderWithFS(o.fs, path)
	exists := file.Exists()
	if explicit && !exists {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	merged := make(map[string]any)
	for _, layer := range []loader.Loader{file, o.env} {
		m, err := layer.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, m)
	}

	cfg := Default()
	if err := cfg.apply(merged); err != nil {
		return nil, err
	}
	if exists {
		cfg.Source = path
	}
	return cfg, nil
}

// apply copies settings from a merged layer map.
func (c *Config) apply(m map[string]any) error {
	for _, key := range slices.Sorted(maps.Keys(m)) {
		val := m[key]
		var err error
		switch key {
		case "declaration":
			c.Declaration, err = asString(key, val)
		case "output":
			c.Output, err = asString(key, val)
		case "format":
			c.Format, err = asString(key, val)
		case "log_level":
			c.LogLevel, err = asString(key, val)
		case "timeout":
			c.Timeout, err = asDuration(key, val)
		case "watch":
			err = c.applyWatch(val)
		default:
			err = &ValidationError{Key: key, Message: "unknown setting", Err: ErrUnknownSetting}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) applyWatch(val any) error {
	w, ok := val.(map[string]any)
	if !ok {
		return invalid("watch", "must be a table", val)
	}
	for _, key := range slices.Sorted(maps.Keys(w)) {
		switch key {
		case "debounce":
			d, err := asDuration("watch.debounce", w[key])
			if err != nil {
				return err
			}
			c.Watch.Debounce = d
		default:
			return &ValidationError{Key: "watch." + key, Message: "unknown setting", Err: ErrUnknownSetting}
		}
	}
	return nil
}

func asString(key string, val any) (string, error) {
	s, ok := val.(string)
	if !ok {
		return "", invalid(key, fmt.Sprintf("must be a string, got %T", val), val)
	}
	return s, nil
}

func asDuration(key string, val any) (time.Duration, error) {
	switch v := val.(type) {
	case string:
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, invalid(key, "must be a duration such as 500ms or 5s", val)
		}
		return d, nil
	case int64:
		return time.Duration(v) * time.Second, nil
	case time.Duration:
		return v, nil
	default:
		return 0, invalid(key, fmt.Sprintf("must be a duration, got %T", val), val)
	}
}

// Finalize expands ~ in file paths and validates the settings.
func (c *Config) Finalize() error {
	var err error
	if c.Declaration, err = ExpandHome(c.Declaration); err != nil {
		return err
	}
	if c.Output, err = ExpandHome(c.Output); err != nil {
		return err
	}
	return c.Validate()
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if c.Declaration == "" {
		return invalid("declaration", "must not be empty", nil)
	}
	if c.Output == "" {
		return invalid("output", "must not be empty", nil)
	}
	if c.Format != "" {
		if _, err := declaration.ParseFormat(c.Format); err != nil {
			return invalid("format", "must be one of "+strings.Join(declaration.FormatNames(), ", "), c.Format)
		}
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return invalid("log_level", "unknown log level", c.LogLevel)
	}
	if c.Timeout <= 0 {
		return invalid("timeout", "must be positive", c.Timeout)
	}
	if c.Watch.Debounce <= 0 {
		return invalid("watch.debounce", "must be positive", c.Watch.Debounce)
	}
	return nil
}

// DeclarationFormat returns the forced format, or "" to detect it.
func (c *Config) DeclarationFormat() declaration.Format {
	if c.Format == "" {
		return ""
	}
	f, _ := declaration.ParseFormat(c.Format)
	return f
}
