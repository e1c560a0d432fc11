package fs

import (
	"sync"
	"time"

	"github.com/aretw0/steering/pkg/core"
)

// debouncer coalesces bursts of filesystem events for the same path.
// Editors often emit several writes for one logical save; only the last
// event within the window is delivered.
type debouncer struct {
	window time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	wg      sync.WaitGroup
	stopped bool
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{
		window: window,
		timers: make(map[string]*time.Timer),
	}
}

// add schedules fn for the event, resetting any pending timer for the same
// path. Events arriving after stopAndWait are dropped.
func (d *debouncer) add(event core.Event, fn func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if timer, ok := d.timers[event.Path]; ok {
		if timer.Stop() {
			d.wg.Done()
		}
	}

	d.wg.Add(1)
	d.timers[event.Path] = time.AfterFunc(d.window, func() {
		defer d.wg.Done()

		d.mu.Lock()
		delete(d.timers, event.Path)
		stopped := d.stopped
		d.mu.Unlock()

		if !stopped {
			fn(event)
		}
	})
}

// stopAndWait stops accepting new events and waits for in-flight timers to
// finish, up to timeout.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for path, timer := range d.timers {
		if timer.Stop() {
			d.wg.Done()
		}
		delete(d.timers, path)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
