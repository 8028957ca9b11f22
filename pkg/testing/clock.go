package testing

import (
	"sync"
	"time"

	"github.com/go-drift/inkwell/pkg/animation"
)

// FakeClock provides controllable time for deterministic animation tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// frameInterval approximates a 60fps display refresh.
const frameInterval = 16 * time.Millisecond

// Pump advances the clock by total in display-refresh steps, stepping all
// active tickers after each advance, the way a host frame loop would.
func Pump(clock *FakeClock, total time.Duration) {
	for total > 0 {
		step := frameInterval
		if step > total {
			step = total
		}
		clock.Advance(step)
		animation.StepTickers()
		total -= step
	}
}
