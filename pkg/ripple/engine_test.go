package ripple

import (
	"math"
	"testing"
	"time"

	"github.com/go-drift/inkwell/pkg/animation"
	"github.com/go-drift/inkwell/pkg/graphics"
	"github.com/go-drift/inkwell/pkg/surface"
	inktest "github.com/go-drift/inkwell/pkg/testing"
)

// frameSlack is one pump step of headroom for animations whose end falls
// between frames.
const frameSlack = 16 * time.Millisecond

// newTestEngine builds a surface and engine over a 100x40 bounds with a
// visible ripple tint.
func newTestEngine() (*surface.Surface, *Engine) {
	surf := surface.New()
	surf.ApplyBounds(graphics.RectFromLTWH(0, 0, 100, 40))
	surf.SetRippleColor(graphics.ColorWhite.WithOpacity(0.3))
	return surf, NewEngine(surf)
}

// TestEngine_PressReleaseCompletes verifies one press and release produces
// exactly one ripple that finishes within the release fade window.
func TestEngine_PressReleaseCompletes(t *testing.T) {
	clock := inktest.NewFakeClock()
	defer animation.SetClock(animation.SetClock(clock))

	_, engine := newTestEngine()

	engine.Start(1, graphics.Offset{X: 50, Y: 20})
	if engine.Active() != 1 {
		t.Fatalf("expected 1 ripple, got %d", engine.Active())
	}

	inktest.Pump(clock, 96*time.Millisecond)
	engine.Release(1)

	inktest.Pump(clock, ReleaseFade+frameSlack)
	if engine.Active() != 0 {
		t.Errorf("ripple should have finished, %d still active", engine.Active())
	}
	if animation.HasActiveTickers() {
		t.Error("ticker should stop once all ripples finish")
	}
}

// TestEngine_HeldRippleRunsFullDuration verifies a held press completes on
// its nominal duration without a release.
func TestEngine_HeldRippleRunsFullDuration(t *testing.T) {
	clock := inktest.NewFakeClock()
	defer animation.SetClock(animation.SetClock(clock))

	_, engine := newTestEngine()
	engine.SetDuration(200 * time.Millisecond)

	engine.Start(1, graphics.Offset{X: 50, Y: 20})
	inktest.Pump(clock, 200*time.Millisecond+frameSlack)

	if engine.Active() != 0 {
		t.Errorf("held ripple should finish on its own, %d still active", engine.Active())
	}
}

// TestEngine_AbortRemovesImmediately verifies an aborted press leaves no
// fading artifact in the same event turn.
func TestEngine_AbortRemovesImmediately(t *testing.T) {
	clock := inktest.NewFakeClock()
	defer animation.SetClock(animation.SetClock(clock))

	_, engine := newTestEngine()

	engine.Start(1, graphics.Offset{X: 50, Y: 20})
	inktest.Pump(clock, 48*time.Millisecond)

	engine.Abort(1)
	if engine.Active() != 0 {
		t.Fatalf("abort should remove the ripple at once, %d active", engine.Active())
	}
	if animation.HasActiveTickers() {
		t.Error("ticker should stop when the last ripple is aborted")
	}

	canvas := inktest.NewRecordCanvas(graphics.Size{Width: 100, Height: 40})
	engine.Paint(canvas)
	if len(canvas.Ops()) != 0 {
		t.Errorf("aborted ripple should paint nothing, got %v", canvas.Ops())
	}
}

// TestEngine_DisabledSpawnsNothing verifies no ripples appear while the
// engine is disabled, and running ripples survive a disable.
func TestEngine_DisabledSpawnsNothing(t *testing.T) {
	clock := inktest.NewFakeClock()
	defer animation.SetClock(animation.SetClock(clock))

	_, engine := newTestEngine()

	engine.SetEnabled(false)
	engine.Start(1, graphics.Offset{X: 50, Y: 20})
	if engine.Active() != 0 {
		t.Errorf("disabled engine spawned %d ripples", engine.Active())
	}

	engine.SetEnabled(true)
	engine.Start(2, graphics.Offset{X: 50, Y: 20})
	engine.SetEnabled(false)
	if engine.Active() != 1 {
		t.Errorf("disabling should not remove running ripples, got %d", engine.Active())
	}

	engine.Abort(2)
}

// TestEngine_DuplicatePointerIgnored verifies a second Start for a live
// pointer does not stack a second ripple.
func TestEngine_DuplicatePointerIgnored(t *testing.T) {
	clock := inktest.NewFakeClock()
	defer animation.SetClock(animation.SetClock(clock))

	_, engine := newTestEngine()

	engine.Start(1, graphics.Offset{X: 10, Y: 10})
	engine.Start(1, graphics.Offset{X: 90, Y: 30})

	if engine.Active() != 1 {
		t.Errorf("expected 1 ripple, got %d", engine.Active())
	}
	engine.Abort(1)
}

// TestEngine_ConcurrentRipples verifies two overlapping presses animate
// independently: releasing one leaves the other running.
func TestEngine_ConcurrentRipples(t *testing.T) {
	clock := inktest.NewFakeClock()
	defer animation.SetClock(animation.SetClock(clock))

	_, engine := newTestEngine()

	engine.Start(1, graphics.Offset{X: 20, Y: 10})
	inktest.Pump(clock, 48*time.Millisecond)
	engine.Start(2, graphics.Offset{X: 80, Y: 30})
	inktest.Pump(clock, 16*time.Millisecond)

	if engine.Active() != 2 {
		t.Fatalf("expected 2 ripples, got %d", engine.Active())
	}

	// The older ripple has expanded further.
	canvas := inktest.NewRecordCanvas(graphics.Size{Width: 100, Height: 40})
	engine.Paint(canvas)
	circles := canvas.Named("drawCircle")
	if len(circles) != 2 {
		t.Fatalf("expected 2 circles, got %v", canvas.Ops())
	}
	first := circles[0].Params["radius"].(float64)
	second := circles[1].Params["radius"].(float64)
	if first <= second {
		t.Errorf("older ripple should be larger: %v <= %v", first, second)
	}

	engine.Release(1)
	inktest.Pump(clock, ReleaseFade+frameSlack)

	if engine.ActiveFor(1) {
		t.Error("released ripple should be gone")
	}
	if !engine.ActiveFor(2) {
		t.Error("held ripple should still be running")
	}

	engine.Abort(2)
}

// TestEngine_RetapSamePointerOverlaps verifies a rapid re-tap reusing the
// same pointer ID spawns a second ripple while the first is still fading,
// as single-pointer hosts (mice, single-touch screens) do on every re-tap.
func TestEngine_RetapSamePointerOverlaps(t *testing.T) {
	clock := inktest.NewFakeClock()
	defer animation.SetClock(animation.SetClock(clock))

	_, engine := newTestEngine()

	engine.Start(1, graphics.Offset{X: 50, Y: 20})
	inktest.Pump(clock, 32*time.Millisecond)
	engine.Release(1)
	inktest.Pump(clock, 32*time.Millisecond)

	engine.Start(1, graphics.Offset{X: 50, Y: 20})
	if engine.Active() != 2 {
		t.Fatalf("re-tap should overlap two ripples, got %d", engine.Active())
	}
	if !engine.ActiveFor(1) {
		t.Error("the new press should be the pointer's held ripple")
	}

	engine.Release(1)
	inktest.Pump(clock, time.Second)
	if engine.Active() != 0 {
		t.Errorf("both ripples should finish, got %d", engine.Active())
	}
}

// TestEngine_AbortSparesFadingRipple verifies a cancel after a re-tap
// removes only the held ripple; the earlier press already released and its
// fade keeps running.
func TestEngine_AbortSparesFadingRipple(t *testing.T) {
	clock := inktest.NewFakeClock()
	defer animation.SetClock(animation.SetClock(clock))

	_, engine := newTestEngine()

	engine.Start(1, graphics.Offset{X: 50, Y: 20})
	inktest.Pump(clock, 32*time.Millisecond)
	engine.Release(1)
	engine.Start(1, graphics.Offset{X: 50, Y: 20})

	engine.Abort(1)
	if engine.Active() != 1 {
		t.Fatalf("abort should remove only the held ripple, got %d", engine.Active())
	}
	if engine.ActiveFor(1) {
		t.Error("the fading ripple should not belong to the pointer")
	}

	inktest.Pump(clock, time.Second)
	if engine.Active() != 0 {
		t.Errorf("the fading ripple should finish, got %d", engine.Active())
	}
}

// TestEngine_MaxRadiusCoversSurface verifies a centered ripple at scale
// ratio 1 ends at exactly the corner distance, covering the surface.
func TestEngine_MaxRadiusCoversSurface(t *testing.T) {
	surf, engine := newTestEngine()

	center := surf.State().Bounds.Center()
	corner := graphics.Offset{X: 0, Y: 0}
	cornerDistance := center.Distance(corner)

	if got := engine.MaxRadius(); math.Abs(got-cornerDistance) > 1e-9 {
		t.Errorf("expected max radius %v, got %v", cornerDistance, got)
	}

	engine.SetScaleRatio(0.5)
	if got := engine.MaxRadius(); math.Abs(got-cornerDistance*0.5) > 1e-9 {
		t.Errorf("expected halved radius, got %v", got)
	}

	// Non-positive ratios fall back to covering.
	engine.SetScaleRatio(0)
	if got := engine.MaxRadius(); math.Abs(got-cornerDistance) > 1e-9 {
		t.Errorf("expected fallback ratio 1, got %v", got)
	}
}

// TestEngine_MaxRadiusTracksBounds verifies a bounds change immediately
// changes the painted extent, with no stale geometry.
func TestEngine_MaxRadiusTracksBounds(t *testing.T) {
	surf, engine := newTestEngine()

	before := engine.MaxRadius()
	surf.ApplyBounds(graphics.RectFromLTWH(0, 0, 200, 80))
	after := engine.MaxRadius()

	if math.Abs(after-2*before) > 1e-9 {
		t.Errorf("doubling bounds should double the radius: %v -> %v", before, after)
	}
}

// TestEngine_PaintRadius verifies the painted circle radius follows the
// eased expansion of the final radius.
func TestEngine_PaintRadius(t *testing.T) {
	clock := inktest.NewFakeClock()
	defer animation.SetClock(animation.SetClock(clock))

	_, engine := newTestEngine()
	engine.SetDuration(300 * time.Millisecond)

	engine.Start(1, graphics.Offset{X: 50, Y: 20})
	inktest.Pump(clock, 96*time.Millisecond)

	canvas := inktest.NewRecordCanvas(graphics.Size{Width: 100, Height: 40})
	engine.Paint(canvas)

	circles := canvas.Named("drawCircle")
	if len(circles) != 1 {
		t.Fatalf("expected 1 circle, got %v", canvas.Ops())
	}

	expected := engine.MaxRadius() * animation.EaseOut(96.0/300.0)
	got := circles[0].Params["radius"].(float64)
	if math.Abs(got-expected) > 0.01 {
		t.Errorf("expected radius %v, got %v", expected, got)
	}
	if circles[0].Params["cx"].(float64) != 50 || circles[0].Params["cy"].(float64) != 20 {
		t.Errorf("circle should stay anchored at the press origin: %+v", circles[0].Params)
	}

	engine.Abort(1)
}

// TestEngine_PaintClipsToMask verifies ripples draw inside the surface
// clip, between a save and restore.
func TestEngine_PaintClipsToMask(t *testing.T) {
	clock := inktest.NewFakeClock()
	defer animation.SetClock(animation.SetClock(clock))

	surf, engine := newTestEngine()
	surf.ApplyCornerConfig(8, graphics.CornerTopLeft|graphics.CornerTopRight)

	engine.Start(1, graphics.Offset{X: 50, Y: 20})
	inktest.Pump(clock, 48*time.Millisecond)

	canvas := inktest.NewRecordCanvas(graphics.Size{Width: 100, Height: 40})
	engine.Paint(canvas)

	ops := canvas.Ops()
	if len(ops) < 4 || ops[0].Op != "save" || ops[1].Op != "clipRRect" {
		t.Fatalf("expected save+clip first, got %v", ops)
	}
	if ops[len(ops)-1].Op != "restore" {
		t.Fatalf("expected restore last, got %v", ops)
	}

	radius := ops[1].Params["radius"].(map[string]any)
	if radius["topLeft"] != 8.0 || radius["topRight"] != 8.0 {
		t.Errorf("top corners should be rounded: %v", radius)
	}
	if radius["bottomLeft"] != 0.0 || radius["bottomRight"] != 0.0 {
		t.Errorf("bottom corners should be square: %v", radius)
	}

	engine.Abort(1)
}

// TestEngine_PaintIdleEmitsNothing verifies an idle engine stays silent.
func TestEngine_PaintIdleEmitsNothing(t *testing.T) {
	_, engine := newTestEngine()

	canvas := inktest.NewRecordCanvas(graphics.Size{Width: 100, Height: 40})
	engine.Paint(canvas)

	if len(canvas.Ops()) != 0 {
		t.Errorf("idle engine painted %v", canvas.Ops())
	}
}

// TestEngine_BackgroundPulse verifies the optional wash swells on press,
// paints under the circles, and drains after release.
func TestEngine_BackgroundPulse(t *testing.T) {
	clock := inktest.NewFakeClock()
	defer animation.SetClock(animation.SetClock(clock))

	_, engine := newTestEngine()
	engine.SetBackgroundEnabled(true)

	engine.Start(1, graphics.Offset{X: 50, Y: 20})
	inktest.Pump(clock, 48*time.Millisecond)

	canvas := inktest.NewRecordCanvas(graphics.Size{Width: 100, Height: 40})
	engine.Paint(canvas)

	washes := canvas.Named("drawRect")
	if len(washes) != 1 {
		t.Fatalf("expected a background wash, got %v", canvas.Ops())
	}

	// The wash paints before the circles.
	var sawWash bool
	for _, op := range canvas.Ops() {
		if op.Op == "drawRect" {
			sawWash = true
		}
		if op.Op == "drawCircle" && !sawWash {
			t.Fatal("wash should paint under the ripple circles")
		}
	}

	engine.Release(1)
	inktest.Pump(clock, time.Second)

	canvas.Reset()
	engine.Paint(canvas)
	if len(canvas.Ops()) != 0 {
		t.Errorf("expected nothing after the pulse drains, got %v", canvas.Ops())
	}
}
