package mirror

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_CollapsesBurst(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var runs atomic.Int32
	var mu sync.Mutex
	last := -1

	for i := 0; i < 10; i++ {
		i := i
		d.Trigger(func() {
			runs.Add(1)
			mu.Lock()
			last = i
			mu.Unlock()
		})
	}

	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 9, last)
}

func TestDebouncer_SeparateBurstsRunSeparately(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	var runs atomic.Int32

	d.Trigger(func() { runs.Add(1) })
	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)

	d.Trigger(func() { runs.Add(1) })
	assert.Eventually(t, func() bool { return runs.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestDebouncer_Stop(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var runs atomic.Int32

	d.Trigger(func() { runs.Add(1) })
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, runs.Load())
}

func TestNewDebouncer_NegativeDelay(t *testing.T) {
	d := NewDebouncer(-time.Second)
	var runs atomic.Int32

	d.Trigger(func() { runs.Add(1) })
	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
}
