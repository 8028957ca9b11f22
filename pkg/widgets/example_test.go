package widgets_test

import (
	"fmt"
	"time"

	"github.com/go-drift/inkwell/pkg/animation"
	"github.com/go-drift/inkwell/pkg/graphics"
	inktest "github.com/go-drift/inkwell/pkg/testing"
	"github.com/go-drift/inkwell/pkg/theme"
	"github.com/go-drift/inkwell/pkg/widgets"
)

// This example builds an outlined dark button and simulates a tap. In a real
// host the pointer events come from the platform and Paint targets a render
// backend instead of a recording canvas.
func Example() {
	clock := inktest.NewFakeClock()
	defer animation.SetClock(animation.SetClock(clock))

	button := widgets.NewStyled(theme.ButtonStyleOutline, theme.BrightnessDark, "Send")
	button.SetBounds(graphics.RectFromLTWH(0, 0, 120, 90))
	button.OnTap = func() { fmt.Println("tapped") }

	inktest.Tap(button, graphics.Offset{X: 60, Y: 45}, 1)
	inktest.Pump(clock, 48*time.Millisecond)

	canvas := inktest.NewRecordCanvas(graphics.Size{Width: 120, Height: 90})
	button.Paint(canvas)
	fmt.Println("ripples:", len(canvas.Named("drawCircle")))

	// Let the release fade run out.
	inktest.Pump(clock, time.Second)
	fmt.Println("active:", button.Engine().Active())

	// Output:
	// tapped
	// ripples: 1
	// active: 0
}

// This example loads button presets from YAML, the format design tools
// export and the inkwell CLI validates.
func Example_presets() {
	presets, err := theme.ParsePresets([]byte(`
presets:
  - name: primary
    style: fill
    text: Save
    elevation: 2
    ripple:
      duration: 250ms
`))
	if err != nil {
		panic(err)
	}

	button := widgets.NewFromPreset(presets[0])
	fmt.Println(button.Config().Text, button.Config().RippleDuration)

	// Output:
	// Save 250ms
}
