// Package compiler runs a compilation: reset the tree, evaluate the
// declaration, render Vim script and write it to the output file.
package compiler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dshills/vimmapper/internal/config"
	"github.com/dshills/vimmapper/internal/declaration"
	"github.com/dshills/vimmapper/internal/mapping"
	"github.com/dshills/vimmapper/internal/output"
	"github.com/dshills/vimmapper/internal/watch"
)

// Result describes one compilation.
type Result struct {
	// Declaration is the file that was evaluated.
	Declaration string
	// Text is the rendered Vim script.
	Text string
	// Stats summarizes the compiled tree.
	Stats mapping.Stats
	// Bindings lists every key binding in render order.
	Bindings []mapping.Binding
	// Commands lists every editor command in render order.
	Commands []mapping.UserCommand
	// Output is set by Run once the text has been written.
	Output *output.Result
}

// Compiler compiles the configured declaration. It is safe for concurrent
// use; compilations are serialized.
type Compiler struct {
	cfg    *config.Config
	log    logrus.FieldLogger
	loader *declaration.Loader

	mu   sync.Mutex
	tree *mapping.Tree
}

// Option configures a Compiler.
type Option func(*compilerOptions)

type compilerOptions struct {
	fs declaration.FileSystem
}

// WithFileSystem reads declarations through fsys.
func WithFileSystem(fsys declaration.FileSystem) Option {
	return func(o *compilerOptions) {
		o.fs = fsys
	}
}

// New creates a compiler for cfg. Output from Lua print calls is logged at
// info level.
func New(cfg *config.Config, log logrus.FieldLogger, opts ...Option) *Compiler {
	var o compilerOptions
	for _, opt := range opts {
		opt(&o)
	}

	c := &Compiler{
		cfg:  cfg,
		log:  log,
		tree: mapping.New(),
	}

	loaderOpts := []declaration.Option{
		declaration.WithTimeout(cfg.Timeout),
		declaration.WithFormat(cfg.DeclarationFormat()),
		declaration.WithPrinter(func(line string) {
			c.log.WithField("declaration", cfg.Declaration).Info(line)
		}),
	}
	if o.fs != nil {
		loaderOpts = append(loaderOpts, declaration.WithFileSystem(o.fs))
	}
	c.loader = declaration.NewLoader(loaderOpts...)

	return c
}

// Compile evaluates the declaration into a fresh tree and renders it.
func (c *Compiler) Compile(ctx context.Context) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.compile(ctx)
}

func (c *Compiler) compile(ctx context.Context) (*Result, error) {
	path := c.cfg.Declaration
	c.tree.Reset()

	if err := c.loader.Load(ctx, path, c.tree); err != nil {
		return nil, fmt.Errorf("compiling %s: %w", path, err)
	}

	return &Result{
		Declaration: path,
		Text:        c.tree.Render(),
		Stats:       c.tree.Stats(),
		Bindings:    c.tree.Bindings(),
		Commands:    c.tree.Commands(),
	}, nil
}

// Run compiles the declaration and writes the result to the output file.
// Nothing is written when compilation fails.
func (c *Compiler) Run(ctx context.Context) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := time.Now()
	res, err := c.compile(ctx)
	if err != nil {
		return nil, err
	}

	written, err := output.Write(c.cfg.Output, []byte(res.Text))
	if err != nil {
		return nil, err
	}
	res.Output = &written

	c.log.WithFields(logrus.Fields{
		"declaration": res.Declaration,
		"output":      written.Path,
		"bindings":    res.Stats.Normal + res.Stats.Visual,
		"commands":    res.Stats.Commands,
		"changed":     written.Changed,
		"elapsed":     time.Since(start).Round(time.Millisecond),
	}).Info("compiled")

	return res, nil
}

// Watch runs once, then recompiles whenever the declaration changes until
// ctx is done. Failed compilations are logged and watching continues.
func (c *Compiler) Watch(ctx context.Context) error {
	if _, err := c.Run(ctx); err != nil {
		c.log.WithError(err).Error("initial compilation failed")
	}

	return watch.Run(ctx, c.cfg.Declaration, c.cfg.Watch.Debounce, c.log,
		func(ctx context.Context, _ watch.Event) error {
			_, err := c.Run(ctx)
			return err
		})
}
