package ripple

import (
	"time"

	"github.com/go-drift/inkwell/pkg/animation"
	"github.com/go-drift/inkwell/pkg/graphics"
	"github.com/go-drift/inkwell/pkg/surface"
)

// backgroundPulse is the length and peak opacity of the optional background
// tint that swells under the ripple while a press is held.
const (
	backgroundPulseDuration = 200 * time.Millisecond
	backgroundPulsePeak     = 0.12
)

// Engine owns the set of concurrently running ripples. A held ripple is
// keyed by the pointer ID of the press that spawned it; releasing detaches
// that association, so hosts that reuse pointer IDs (a mouse, single-touch
// screens) can re-press while the previous splash is still fading. Each
// ripple animates independently; rapid re-taps overlap without interfering.
//
// The engine registers an [animation.Ticker] while any ripple is active, so
// hosts that pump [animation.StepTickers] per frame get ripple advancement
// for free. Not safe for concurrent use.
type Engine struct {
	surface *surface.Surface

	ripples []*engineRipple

	enabled           bool
	scaleRatio        float64
	duration          time.Duration
	backgroundEnabled bool

	background     *animation.AnimationController
	backgroundTint *animation.Tween[float64]
	ticker         *animation.Ticker

	// OnFrame, if set, is called after each tick so the host can request a
	// repaint.
	OnFrame func()
}

type engineRipple struct {
	id     int64
	ripple *Ripple
}

// NewEngine creates a ripple engine rendering onto the given surface,
// enabled, with a covering scale ratio of 1 and the default duration.
func NewEngine(surf *surface.Surface) *Engine {
	e := &Engine{
		surface:        surf,
		enabled:        true,
		scaleRatio:     1,
		duration:       300 * time.Millisecond,
		backgroundTint: animation.TweenFloat64(0, backgroundPulsePeak),
	}
	e.background = animation.NewAnimationController(backgroundPulseDuration)
	e.background.Curve = animation.EaseOut
	return e
}

// SetEnabled controls whether presses spawn ripples. Disabling does not
// remove ripples already running.
func (e *Engine) SetEnabled(enabled bool) {
	e.enabled = enabled
}

// SetScaleRatio sets the final ripple size relative to covering the
// surface's bounding diagonal. 1.0 covers exactly; values above overshoot
// and values below undershoot.
func (e *Engine) SetScaleRatio(ratio float64) {
	if ratio <= 0 {
		ratio = 1
	}
	e.scaleRatio = ratio
}

// SetDuration sets the nominal full-animation duration for new ripples.
// Non-positive values are clamped when the ripple starts.
func (e *Engine) SetDuration(d time.Duration) {
	e.duration = d
}

// SetBackgroundEnabled controls the background tint pulse.
func (e *Engine) SetBackgroundEnabled(enabled bool) {
	e.backgroundEnabled = enabled
	if !enabled {
		e.background.Reset()
	}
}

// Start spawns a ripple for the given press. No-op when ripples are
// disabled or the pointer already has a held ripple; fading ripples from
// earlier presses never block a new one.
func (e *Engine) Start(id int64, origin graphics.Offset) {
	if !e.enabled {
		return
	}
	if e.lookup(id) != nil {
		return
	}
	e.ripples = append(e.ripples, &engineRipple{
		id:     id,
		ripple: New(origin, animation.Now(), e.duration),
	})
	if e.backgroundEnabled {
		e.background.Forward()
	}
	e.ensureTicker()
}

// Release accelerates the fade of the press's ripple so it completes
// promptly. Unknown IDs are ignored.
func (e *Engine) Release(id int64) {
	entry := e.lookup(id)
	if entry == nil {
		return
	}
	entry.ripple.Release(animation.Now().Sub(entry.ripple.Start))
	e.releaseBackground()
}

// Abort removes the press's held ripple immediately, within the same event
// turn, leaving no visual artifact. Ripples already released keep fading;
// unknown IDs are ignored.
func (e *Engine) Abort(id int64) {
	for i, entry := range e.ripples {
		if entry.id == id && !entry.ripple.Released() {
			e.ripples = append(e.ripples[:i], e.ripples[i+1:]...)
			break
		}
	}
	e.releaseBackground()
	if len(e.ripples) == 0 && e.ticker != nil {
		e.ticker.Stop()
		e.ticker = nil
	}
}

// releaseBackground reverses the tint pulse once no held ripple remains.
func (e *Engine) releaseBackground() {
	if !e.backgroundEnabled {
		return
	}
	for _, entry := range e.ripples {
		if !entry.ripple.Released() {
			return
		}
	}
	e.background.Reverse()
}

// Tick advances all ripples to the current clock time and drops the ones
// that finished. The ticker stops itself once the active set is empty.
func (e *Engine) Tick() {
	now := animation.Now()
	kept := e.ripples[:0]
	for _, entry := range e.ripples {
		_, _, done := entry.ripple.At(now.Sub(entry.ripple.Start))
		if !done {
			kept = append(kept, entry)
		}
	}
	e.ripples = kept
	if len(e.ripples) == 0 && e.ticker != nil {
		e.ticker.Stop()
		e.ticker = nil
	}
}

func (e *Engine) ensureTicker() {
	if e.ticker != nil {
		return
	}
	e.ticker = animation.NewTicker(func(time.Duration) {
		e.Tick()
		if e.OnFrame != nil {
			e.OnFrame()
		}
	})
	e.ticker.Start()
}

// Active returns the number of live ripples.
func (e *Engine) Active() int {
	return len(e.ripples)
}

// ActiveFor reports whether the pointer currently has a held ripple.
// Fading ripples no longer belong to any pointer.
func (e *Engine) ActiveFor(id int64) bool {
	return e.lookup(id) != nil
}

// lookup returns the held ripple for a pointer ID. The press lifecycle
// moves one way, so once released an entry detaches from its ID and only
// waits to finish fading.
func (e *Engine) lookup(id int64) *engineRipple {
	for _, entry := range e.ripples {
		if entry.id == id && !entry.ripple.Released() {
			return entry
		}
	}
	return nil
}

// MaxRadius returns the final ripple radius for the current surface: the
// half-diagonal of the bounds scaled by the configured ratio, so a ratio of
// 1.0 covers the surface exactly from any origin near its center.
func (e *Engine) MaxRadius() float64 {
	state := e.surface.State()
	return state.Bounds.Size().Diagonal() * 0.5 * e.scaleRatio
}

// Paint draws the background pulse and every live ripple, clipped to the
// surface mask so nothing bleeds outside the rounded shape. Ripples are
// painted in start order for reproducible output.
func (e *Engine) Paint(canvas graphics.Canvas) {
	if len(e.ripples) == 0 && e.background.Value <= 0 {
		return
	}
	state := e.surface.State()
	if state.Bounds.IsEmpty() {
		return
	}
	tint := e.surface.RippleColor()

	e.surface.Clip(canvas)
	defer canvas.Restore()

	if e.backgroundEnabled && e.background.Value > 0 {
		wash := tint.WithOpacity(e.backgroundTint.Transform(e.background))
		canvas.DrawRect(state.Bounds, graphics.FillPaint(wash))
	}

	now := animation.Now()
	maxRadius := e.MaxRadius()
	for _, entry := range e.ripples {
		progress, opacity, done := entry.ripple.At(now.Sub(entry.ripple.Start))
		if done || opacity <= 0 {
			continue
		}
		paint := graphics.FillPaint(tint.WithOpacity(opacity))
		canvas.DrawCircle(entry.ripple.Origin, maxRadius*progress, paint)
	}
}
