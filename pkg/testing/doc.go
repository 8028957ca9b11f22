// Package testing provides deterministic test utilities for buttons:
// a fake clock for driving animations without sleeping, an op-recording
// canvas for asserting on painted output, and pointer gesture helpers.
//
// Import it with an alias to avoid shadowing the standard library:
//
//	import inktest "github.com/go-drift/inkwell/pkg/testing"
//
// A typical ripple test wires the clock, presses, pumps frames, and
// inspects the recorded ops:
//
//	clock := inktest.NewFakeClock()
//	defer animation.SetClock(animation.SetClock(clock))
//
//	button := widgets.New(widgets.DefaultConfig())
//	button.SetBounds(graphics.RectFromLTWH(0, 0, 120, 80))
//
//	inktest.Press(button, graphics.Offset{X: 60, Y: 40}, 1)
//	inktest.Pump(clock, 100*time.Millisecond)
//
//	canvas := inktest.NewRecordCanvas(button.Bounds().Size())
//	button.Paint(canvas)
//	circles := canvas.Named("drawCircle")
package testing
