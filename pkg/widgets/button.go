// Package widgets provides the button host: a pressable icon+label control
// composed from the surface, ripple, and gesture layers.
package widgets

import (
	"image"

	"github.com/go-drift/inkwell/pkg/gestures"
	"github.com/go-drift/inkwell/pkg/graphics"
	"github.com/go-drift/inkwell/pkg/ripple"
	"github.com/go-drift/inkwell/pkg/surface"
	"github.com/go-drift/inkwell/pkg/theme"
)

// Layout proportions. The icon sits in the upper band of the button inset
// by a fixed percentage of the bounds; the label centers in the band below.
const (
	iconBandRatio  = 0.62
	iconInsetRatio = 0.16
	labelPadRatio  = 0.04
)

// Button is a themed vertical icon+label control with ripple touch
// feedback on an elevated, rounded surface.
//
// A button owns one [Config], one [surface.Surface], one [ripple.Engine],
// and one [gestures.TouchTracker]. The host embedding the button calls
// [Button.SetBounds] when its geometry changes, [Button.HandlePointer] for
// raw input, and [Button.Paint] each frame (after pumping
// [animation.StepTickers]).
//
// All methods must be called from the host's UI goroutine.
type Button struct {
	config  Config
	surface *surface.Surface
	engine  *ripple.Engine
	tracker *gestures.TouchTracker

	bounds      graphics.Rect
	iconSlot    graphics.Rect
	labelOrigin graphics.Offset
	paintedIcon image.Image

	// OnTap fires when a press ends inside the bounds.
	OnTap func()
}

// New creates a button and applies the given config.
func New(config Config) *Button {
	b := &Button{
		surface: surface.New(),
	}
	b.engine = ripple.NewEngine(b.surface)
	b.tracker = gestures.NewTouchTracker()
	b.tracker.OnPressStart = b.pressStart
	b.tracker.OnPressRelease = b.pressRelease
	b.tracker.OnPressCancel = b.pressCancel
	b.Apply(config)
	return b
}

// NewStyled creates a button from a fill/outline preset and brightness,
// with the given label text.
func NewStyled(style theme.ButtonStyle, brightness theme.Brightness, text string) *Button {
	return New(StyledConfig(style, brightness).WithText(text))
}

// NewFromPreset creates a button from a loaded YAML preset.
func NewFromPreset(preset theme.Preset) *Button {
	return New(ConfigFromPreset(preset))
}

// Config returns the currently applied configuration.
func (b *Button) Config() Config {
	return b.config
}

// Surface exposes the render surface, primarily for tests.
func (b *Button) Surface() *surface.Surface {
	return b.surface
}

// Engine exposes the ripple engine, primarily for tests.
func (b *Button) Engine() *ripple.Engine {
	return b.engine
}

// Tracker exposes the touch tracker, primarily for tests.
func (b *Button) Tracker() *gestures.TouchTracker {
	return b.tracker
}

// Apply pushes every config field to the surface and ripple engine. The
// propagation order is fixed: geometry first, then colors, then ripple
// parameters, so a render issued immediately after Apply sees a fully
// consistent state.
func (b *Button) Apply(config Config) {
	b.config = config

	corners := config.RoundingCorners
	if corners == 0 {
		corners = graphics.CornerAll
	}
	b.surface.ApplyCornerConfig(config.CornerRadius, corners)
	b.surface.ApplyElevation(config.Elevation)
	b.surface.ApplyShadowOffset(config.ShadowOffset)
	b.surface.SetMaskEnabled(config.MaskEnabled)

	b.surface.SetFillColor(config.BackgroundColor)
	borderWidth := config.BorderWidth
	if borderWidth == 0 && config.BorderColor != graphics.ColorTransparent {
		borderWidth = 1
	}
	b.surface.SetBorder(config.BorderColor, borderWidth)
	b.surface.SetRippleColor(config.RippleColor)

	b.engine.SetEnabled(config.RippleEnabled)
	b.engine.SetScaleRatio(config.RippleScaleRatio)
	b.engine.SetDuration(config.RippleDuration)
	b.engine.SetBackgroundEnabled(config.BackgroundAnimationEnabled)

	b.layout()
}

// SetBounds updates the button geometry and relayouts the icon and label.
// Must be called before the first Paint and on every host resize.
func (b *Button) SetBounds(bounds graphics.Rect) {
	b.bounds = bounds
	b.surface.ApplyBounds(bounds)
	b.layout()
}

// Bounds returns the current button bounds.
func (b *Button) Bounds() graphics.Rect {
	return b.bounds
}

// layout recomputes the icon slot and label origin from the bounds using
// the fixed percentage insets, then re-prepares the painted icon.
func (b *Button) layout() {
	if b.bounds.IsEmpty() {
		b.iconSlot = graphics.Rect{}
		b.paintedIcon = nil
		return
	}
	width := b.bounds.Width()
	height := b.bounds.Height()

	inset := width * iconInsetRatio
	band := graphics.Rect{
		Left:   b.bounds.Left,
		Top:    b.bounds.Top,
		Right:  b.bounds.Right,
		Bottom: b.bounds.Top + height*iconBandRatio,
	}
	b.iconSlot = band.Inset(inset, inset)

	textSize := graphics.EstimateTextSize(b.config.Text, b.labelStyle())
	labelBand := graphics.Rect{
		Left:   b.bounds.Left,
		Top:    band.Bottom + height*labelPadRatio,
		Right:  b.bounds.Right,
		Bottom: b.bounds.Bottom,
	}
	b.labelOrigin = graphics.Offset{
		X: labelBand.Center().X - textSize.Width/2,
		Y: labelBand.Center().Y - textSize.Height/2,
	}

	b.prepareIcon()
}

// prepareIcon scales the configured icon into its slot and tints it unless
// the config preserves the original colors.
func (b *Button) prepareIcon() {
	if b.config.Icon == nil || b.iconSlot.IsEmpty() {
		b.paintedIcon = nil
		return
	}
	icon := scaleIcon(b.config.Icon, b.iconSlot)
	if icon != nil && !b.config.PreserveIconColor {
		icon = tintIcon(icon, b.config.ForegroundColor)
	}
	b.paintedIcon = icon
}

func (b *Button) labelStyle() graphics.TextStyle {
	return graphics.TextStyle{
		Color:      b.config.ForegroundColor,
		FontFamily: b.config.FontFamily,
		FontSize:   b.config.FontSize,
		FontWeight: b.config.FontWeight,
	}
}

// HandlePointer forwards a raw pointer event into the touch tracker, which
// drives the ripple engine through its press signals.
func (b *Button) HandlePointer(event gestures.PointerEvent) {
	b.tracker.HandlePointer(event)
}

func (b *Button) pressStart(id int64, position graphics.Offset) {
	b.engine.Start(id, position)
}

func (b *Button) pressRelease(id int64) {
	session := b.tracker.Session(id)
	b.engine.Release(id)
	if b.OnTap != nil && session != nil && b.bounds.Contains(session.Position) {
		b.OnTap()
	}
}

func (b *Button) pressCancel(id int64) {
	b.engine.Abort(id)
}

// Paint draws the button: surface shadow, fill, and border first, then the
// ripple layer clipped to the mask, then the icon and label.
func (b *Button) Paint(canvas graphics.Canvas) {
	if b.bounds.IsEmpty() {
		return
	}
	b.surface.Paint(canvas)
	b.engine.Paint(canvas)

	b.surface.Clip(canvas)
	if b.paintedIcon != nil {
		iconBounds := b.paintedIcon.Bounds()
		position := graphics.Offset{
			X: b.iconSlot.Center().X - float64(iconBounds.Dx())/2,
			Y: b.iconSlot.Center().Y - float64(iconBounds.Dy())/2,
		}
		canvas.DrawImage(b.paintedIcon, position)
	}
	if b.config.Text != "" {
		canvas.DrawText(b.config.Text, b.labelStyle(), b.labelOrigin)
	}
	canvas.Restore()
}
