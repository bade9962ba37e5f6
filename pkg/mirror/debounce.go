package mirror

import (
	"sync"
	"time"
)

// DefaultDebounce is the delay applied to target root changes and change
// notifications.
const DefaultDebounce = 500 * time.Millisecond

// Debouncer runs the latest requested task once its delay has passed
// without a newer request. Each request bumps a generation counter; a
// pending task whose generation is stale does nothing.
type Debouncer struct {
	delay time.Duration

	mu         sync.Mutex
	generation uint64
	timer      *time.Timer
}

// NewDebouncer creates a debouncer. A negative delay is treated as zero.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay < 0 {
		delay = 0
	}
	return &Debouncer{delay: delay}
}

// Trigger cancels any pending task and schedules fn
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.generation++
	current := d.generation
	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		stale := current != d.generation
		d.mu.Unlock()
		if stale {
			return
		}
		fn()
	})
}

// Stop cancels any pending task
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
