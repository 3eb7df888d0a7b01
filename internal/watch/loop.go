package watch

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Handler is called once per debounced change.
type Handler func(ctx context.Context, ev Event) error

// Loop delivers events from src to fn until ctx is done or src closes.
// Errors from fn and from src are logged and the loop continues.
func Loop(ctx context.Context, src Source, log logrus.FieldLogger, fn Handler) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-src.Events():
			if !ok {
				return nil
			}
			log.WithFields(logrus.Fields{"path": ev.Path, "op": ev.Op}).Debug("declaration changed")
			if err := fn(ctx, ev); err != nil {
				log.WithError(err).WithField("path", ev.Path).Error("recompilation failed")
			}

		case err, ok := <-src.Errors():
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watcher error")
		}
	}
}

// Run watches path, debounced by delay, and calls fn for every change
// until ctx is done.
func Run(ctx context.Context, path string, delay time.Duration, log logrus.FieldLogger, fn Handler) error {
	fw, err := NewFileWatcher(path)
	if err != nil {
		return err
	}
	d := NewDebouncer(fw, delay)
	defer d.Close()

	log.WithFields(logrus.Fields{"path": fw.Path(), "debounce": delay}).Info("watching declaration")
	return Loop(ctx, d, log, fn)
}
