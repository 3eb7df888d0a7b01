package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dshills/vimmapper/internal/compiler"
	"github.com/dshills/vimmapper/internal/config"
)

// setup resolves the configuration for cmd and builds a compiler.
func setup(cmd *cobra.Command, g *globalFlags) (*compiler.Compiler, *config.Config, *logrus.Logger, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	flags := cmd.Flags()
	overrides := []struct {
		name  string
		value string
		dst   *string
	}{
		{"declaration", g.declaration, &cfg.Declaration},
		{"output", g.output, &cfg.Output},
		{"format", g.format, &cfg.Format},
		{"log-level", g.logLevel, &cfg.LogLevel},
	}
	for _, o := range overrides {
		if flags.Changed(o.name) {
			*o.dst = o.value
		}
	}

	if err := cfg.Finalize(); err != nil {
		return nil, nil, nil, err
	}

	log := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if cfg.Source != "" {
		log.WithField("config", cfg.Source).Debug("loaded configuration")
	}

	return compiler.New(cfg, log), cfg, log, nil
}

// newLogger writes text logs to w, coloured only when w is a terminal.
func newLogger(w io.Writer, level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)

	if lvl, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	}

	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:      color,
		DisableColors:    !color,
		DisableTimestamp: !color,
		FullTimestamp:    true,
	})

	return log
}
