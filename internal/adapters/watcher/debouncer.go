package watcher

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid file system events into batched invalidation
// cycles. Paths added within the window are deduplicated and delivered
// together once the window closes. Deliveries are serialized: when a batch
// callback outlasts the window, the next batch waits for it instead of
// running concurrently.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[string]struct{}
	timer    *time.Timer
	window   time.Duration
	callback func(paths []string)

	// deliverMu admits one callback at a time.
	deliverMu sync.Mutex
}

// NewDebouncer creates a debouncer with the given window and callback.
func NewDebouncer(window time.Duration, callback func(paths []string)) *Debouncer {
	return &Debouncer{
		pending:  make(map[string]struct{}),
		window:   window,
		callback: callback,
	}
}

// Add records a changed path and restarts the debounce window.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[path] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire delivers the pending batch when the window expires.
func (d *Debouncer) fire() {
	d.mu.Lock()
	if len(d.pending) == 0 {
		d.timer = nil
		d.mu.Unlock()
		return
	}

	paths := d.drainLocked()
	d.timer = nil
	d.mu.Unlock()

	d.deliver(paths)
}

// Flush delivers all pending paths immediately and synchronously. Meant for
// shutdown: it waits for any in-flight delivery and completes the final
// batch before returning.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	paths := d.drainLocked()
	d.mu.Unlock()

	d.deliver(paths)
}

// deliver hands one batch to the callback. The delivery lock keeps batches
// strictly sequential so an invalidation cycle never races the one before it.
func (d *Debouncer) deliver(paths []string) {
	d.deliverMu.Lock()
	defer d.deliverMu.Unlock()

	if len(paths) > 0 && d.callback != nil {
		d.callback(paths)
	}
}

func (d *Debouncer) drainLocked() []string {
	paths := make([]string, 0, len(d.pending))
	for path := range d.pending {
		paths = append(paths, path)
	}
	d.pending = make(map[string]struct{})
	return paths
}
