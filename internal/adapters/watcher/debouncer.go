// Package watcher implements change notification for the drop root.
package watcher

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid file system events into a single callback
// invocation once the window elapses with no further triggers. It gives
// in-flight writes time to settle before a merge starts reading them.
type Debouncer struct {
	mu       sync.Mutex
	pending  bool
	timer    *time.Timer
	window   time.Duration
	callback func()
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func()) *Debouncer {
	return &Debouncer{
		window:   window,
		callback: callback,
	}
}

// Trigger marks a change and resets the timer.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = true

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire is called when the debounce window expires.
func (d *Debouncer) fire() {
	d.mu.Lock()

	// Protects against a race with Flush or Stop.
	if !d.pending {
		d.timer = nil
		d.mu.Unlock()
		return
	}

	d.pending = false
	d.timer = nil
	d.mu.Unlock()

	// Call the callback asynchronously to match Flush behavior.
	if d.callback != nil {
		go d.callback()
	}
}

// Flush immediately invokes the callback if a trigger is pending. This
// method blocks until the callback completes, making it suitable for
// one-shot scenarios where work must finish before proceeding. The
// notifier's stop path uses Stop instead: suspending discards a pending
// trigger rather than racing a final merge against the shutdown.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// Timer already fired, let it complete rather than firing twice.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}

	pending := d.pending
	d.pending = false
	d.mu.Unlock()

	if pending && d.callback != nil {
		d.callback()
	}
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
