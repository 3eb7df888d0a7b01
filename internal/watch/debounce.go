package watch

import (
	"sync"
	"time"
)

// DefaultDelay is used when a Debouncer is created with a non-positive delay.
const DefaultDelay = 200 * time.Millisecond

// Debouncer wraps a Source with event debouncing.
// Multiple rapid changes to the same file are coalesced into one event.
type Debouncer struct {
	inner Source
	delay time.Duration

	mu       sync.Mutex
	pending  map[string]*pendingEvent
	events   chan Event
	errors   chan error
	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
	firing   sync.WaitGroup
}

// pendingEvent tracks a debounced event.
type pendingEvent struct {
	event Event
	timer *time.Timer
}

// NewDebouncer creates a debouncing wrapper around inner.
// Operations on the same path within delay of each other are merged.
func NewDebouncer(inner Source, delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}

	d := &Debouncer{
		inner:   inner,
		delay:   delay,
		pending: make(map[string]*pendingEvent),
		events:  make(chan Event, 16),
		errors:  make(chan error, 16),
		closeCh: make(chan struct{}),
	}

	d.closedWg.Add(1)
	go d.processLoop()

	return d
}

// Events returns the debounced event channel.
func (d *Debouncer) Events() <-chan Event {
	return d.events
}

// Errors returns the error channel.
func (d *Debouncer) Errors() <-chan error {
	return d.errors
}

// Close stops the debouncer and the wrapped source.
func (d *Debouncer) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.closeCh)

	for path, p := range d.pending {
		p.timer.Stop()
		delete(d.pending, path)
	}
	d.mu.Unlock()

	d.closedWg.Wait()
	d.firing.Wait()

	close(d.events)
	close(d.errors)

	return d.inner.Close()
}

// processLoop handles incoming events from the inner source.
func (d *Debouncer) processLoop() {
	defer d.closedWg.Done()

	for {
		select {
		case <-d.closeCh:
			return

		case event, ok := <-d.inner.Events():
			if !ok {
				return
			}
			d.handleEvent(event)

		case err, ok := <-d.inner.Errors():
			if !ok {
				return
			}
			select {
			case d.errors <- err:
			default:
			}
		}
	}
}

// handleEvent starts or extends the quiet period for the event's path.
func (d *Debouncer) handleEvent(event Event) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	if p, exists := d.pending[event.Path]; exists {
		p.event.Op |= event.Op
		p.event.Timestamp = event.Timestamp
		p.timer.Reset(d.delay)
		return
	}

	p := &pendingEvent{event: event}
	p.timer = time.AfterFunc(d.delay, func() {
		d.fire(event.Path)
	})
	d.pending[event.Path] = p
}

// fire sends a pending event and removes it from the map.
func (d *Debouncer) fire(path string) {
	d.mu.Lock()
	p, exists := d.pending[path]
	if !exists || d.closed {
		d.mu.Unlock()
		return
	}
	delete(d.pending, path)
	event := p.event
	d.firing.Add(1)
	d.mu.Unlock()
	defer d.firing.Done()

	select {
	case d.events <- event:
	case <-d.closeCh:
	}
}

var _ Source = (*Debouncer)(nil)
