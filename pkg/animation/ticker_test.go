package animation_test

import (
	"testing"
	"time"

	"github.com/go-drift/inkwell/pkg/animation"
	inktest "github.com/go-drift/inkwell/pkg/testing"
)

// TestTicker_StartStop verifies activation state transitions.
func TestTicker_StartStop(t *testing.T) {
	clock := inktest.NewFakeClock()
	defer animation.SetClock(animation.SetClock(clock))

	ticker := animation.NewTicker(func(time.Duration) {})

	if ticker.IsActive() {
		t.Error("new ticker should be inactive")
	}

	ticker.Start()
	if !ticker.IsActive() {
		t.Error("ticker should be active after Start")
	}
	if !animation.HasActiveTickers() {
		t.Error("registry should report an active ticker")
	}

	ticker.Stop()
	if ticker.IsActive() {
		t.Error("ticker should be inactive after Stop")
	}
	if animation.HasActiveTickers() {
		t.Error("registry should be empty after Stop")
	}
}

// TestTicker_CallbackElapsed verifies the callback receives time elapsed
// since Start.
func TestTicker_CallbackElapsed(t *testing.T) {
	clock := inktest.NewFakeClock()
	defer animation.SetClock(animation.SetClock(clock))

	var got time.Duration
	ticker := animation.NewTicker(func(elapsed time.Duration) {
		got = elapsed
	})
	ticker.Start()
	defer ticker.Stop()

	clock.Advance(48 * time.Millisecond)
	animation.StepTickers()

	if got != 48*time.Millisecond {
		t.Errorf("expected elapsed 48ms, got %v", got)
	}
}

// TestTicker_StoppedNotStepped verifies a stopped ticker no longer ticks.
func TestTicker_StoppedNotStepped(t *testing.T) {
	clock := inktest.NewFakeClock()
	defer animation.SetClock(animation.SetClock(clock))

	calls := 0
	ticker := animation.NewTicker(func(time.Duration) { calls++ })
	ticker.Start()
	ticker.Stop()

	clock.Advance(16 * time.Millisecond)
	animation.StepTickers()

	if calls != 0 {
		t.Errorf("stopped ticker ticked %d times", calls)
	}
}

// TestTicker_DoubleStart verifies Start while active keeps the original
// start time.
func TestTicker_DoubleStart(t *testing.T) {
	clock := inktest.NewFakeClock()
	defer animation.SetClock(animation.SetClock(clock))

	ticker := animation.NewTicker(func(time.Duration) {})
	ticker.Start()
	defer ticker.Stop()

	clock.Advance(100 * time.Millisecond)
	ticker.Start()

	if ticker.Elapsed() != 100*time.Millisecond {
		t.Errorf("expected elapsed 100ms, got %v", ticker.Elapsed())
	}
}
