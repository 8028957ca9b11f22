// Package ripple implements the touch-feedback splash engine: concurrent
// expanding circles that track the press lifecycle and composite onto a
// masked surface.
package ripple

import (
	"time"

	"github.com/go-drift/inkwell/pkg/animation"
	"github.com/go-drift/inkwell/pkg/graphics"
)

const (
	// MinDuration is the floor applied to non-positive or very short
	// configured durations so a ripple is always visible.
	MinDuration = 80 * time.Millisecond

	// ReleaseFade bounds how long a released ripple keeps fading. A quick
	// tap still shows a full splash, just compressed into this window.
	ReleaseFade = 180 * time.Millisecond
)

// Ripple is one splash animation anchored at a press origin.
//
// The animation math is pure: [Ripple.At] maps elapsed time to expansion
// progress and opacity without touching clocks or canvases, so it can be
// tested without a display loop.
type Ripple struct {
	// Origin is the press location the splash expands from.
	Origin graphics.Offset
	// Start is when the splash began.
	Start time.Time
	// Duration is the nominal full expand-and-fade time.
	Duration time.Duration

	released        bool
	releaseElapsed  time.Duration
	releaseProgress float64
	releaseOpacity  float64
	fadeWindow      time.Duration
}

// New creates a ripple at the given origin. Durations at or below
// [MinDuration] are clamped up rather than rejected.
func New(origin graphics.Offset, start time.Time, duration time.Duration) *Ripple {
	if duration < MinDuration {
		duration = MinDuration
	}
	return &Ripple{
		Origin:   origin,
		Start:    start,
		Duration: duration,
	}
}

// Release accelerates the remaining fade so the splash completes within
// [ReleaseFade] (or sooner, if less of the nominal duration remains).
// Releasing twice is a no-op.
func (r *Ripple) Release(elapsed time.Duration) {
	if r.released {
		return
	}
	if elapsed < 0 {
		elapsed = 0
	}
	r.released = true
	r.releaseElapsed = elapsed
	r.releaseProgress, r.releaseOpacity = r.base(elapsed)

	remaining := r.Duration - elapsed
	if remaining > ReleaseFade {
		remaining = ReleaseFade
	}
	if remaining < 0 {
		remaining = 0
	}
	r.fadeWindow = remaining
}

// Released reports whether the press driving this ripple has ended.
func (r *Ripple) Released() bool {
	return r.released
}

// base returns the unreleased expand/fade values at elapsed.
func (r *Ripple) base(elapsed time.Duration) (progress, opacity float64) {
	t := float64(elapsed) / float64(r.Duration)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	progress = animation.EaseOut(t)
	opacity = 1 - t*t
	return progress, opacity
}

// At returns the expansion progress (0 to 1 of the final radius) and
// opacity (0 to 1 multiplier on the ripple tint) at the given elapsed time,
// plus whether the animation has finished.
func (r *Ripple) At(elapsed time.Duration) (progress, opacity float64, done bool) {
	if !r.released {
		progress, opacity = r.base(elapsed)
		return progress, opacity, elapsed >= r.Duration
	}

	sinceRelease := elapsed - r.releaseElapsed
	if sinceRelease < 0 {
		sinceRelease = 0
	}
	if r.fadeWindow <= 0 {
		return r.releaseProgress, 0, true
	}
	ft := float64(sinceRelease) / float64(r.fadeWindow)
	if ft >= 1 {
		return 1, 0, true
	}
	// The released splash finishes its expansion within the fade window
	// while the remaining opacity drains linearly.
	progress = r.releaseProgress + (1-r.releaseProgress)*animation.EaseOut(ft)
	opacity = r.releaseOpacity * (1 - ft)
	return progress, opacity, false
}
