// Package surface maintains the elevated, shadowed, rounded drawing surface
// that ripples are composited onto.
package surface

import "github.com/go-drift/inkwell/pkg/graphics"

// State is the cached geometry and styling of the surface. Every setter on
// [Surface] recomputes the derived fields before returning, so a render
// that follows any sequence of setters always sees mask and shadow paths
// consistent with the latest bounds and corner configuration.
type State struct {
	Bounds       graphics.Rect
	CornerRadius float64
	Corners      graphics.Corner
	Elevation    float64
	ShadowOffset graphics.Offset
	MaskEnabled  bool

	// Derived.
	Mask   graphics.RRect
	Shadow *graphics.BoxShadow
}

// Surface owns the State and paints the shadow, fill, and border that sit
// behind the ripple layer.
//
// All mutation and painting must happen on the host's render goroutine; a
// multi-threaded host must serialize access itself.
type Surface struct {
	state State

	fillColor   graphics.Color
	borderColor graphics.Color
	borderWidth float64
	shadowColor graphics.Color
	rippleColor graphics.Color
}

// New creates a surface with every corner rounded, masking enabled, and a
// black shadow tint.
func New() *Surface {
	s := &Surface{
		shadowColor: graphics.ColorBlack,
	}
	s.state.Corners = graphics.CornerAll
	s.state.MaskEnabled = true
	s.recompute()
	return s
}

// State returns a copy of the current surface state.
func (s *Surface) State() State {
	return s.state
}

// ApplyBounds updates the surface bounds and recomputes the mask and shadow
// paths. Hosts call this whenever their bounds change, before any
// subsequent ripple render.
func (s *Surface) ApplyBounds(bounds graphics.Rect) {
	s.state.Bounds = bounds
	s.recompute()
}

// ApplyCornerConfig updates the rounding radius and the subset of corners
// it applies to, then recomputes the mask path.
func (s *Surface) ApplyCornerConfig(radius float64, corners graphics.Corner) {
	if radius < 0 {
		radius = 0
	}
	s.state.CornerRadius = radius
	s.state.Corners = corners
	s.recompute()
}

// ApplyElevation updates the shadow intensity. The mask path is untouched.
func (s *Surface) ApplyElevation(elevation float64) {
	s.state.Elevation = elevation
	s.recompute()
}

// ApplyShadowOffset displaces the shadow. The mask path is untouched.
func (s *Surface) ApplyShadowOffset(offset graphics.Offset) {
	s.state.ShadowOffset = offset
	s.recompute()
}

// SetMaskEnabled controls whether ripples and content clip to the rounded
// path. When disabled the full rectangular bounds are used.
func (s *Surface) SetMaskEnabled(enabled bool) {
	s.state.MaskEnabled = enabled
	s.recompute()
}

// SetFillColor updates the surface fill. Geometry is untouched.
func (s *Surface) SetFillColor(color graphics.Color) {
	s.fillColor = color
}

// SetBorder updates the border stroke. Geometry is untouched.
func (s *Surface) SetBorder(color graphics.Color, width float64) {
	s.borderColor = color
	s.borderWidth = width
}

// SetRippleColor updates the tint used by the ripple layer.
func (s *Surface) SetRippleColor(color graphics.Color) {
	s.rippleColor = color
}

// RippleColor returns the current ripple tint.
func (s *Surface) RippleColor() graphics.Color {
	return s.rippleColor
}

// FillColor returns the current surface fill.
func (s *Surface) FillColor() graphics.Color {
	return s.fillColor
}

// recompute rebuilds the derived mask and shadow from the current inputs.
// It runs before any setter returns, so State is never observed stale.
func (s *Surface) recompute() {
	s.state.Mask = graphics.RRectFromRectAndCorners(
		s.state.Bounds, s.state.CornerRadius, s.state.Corners)

	shadow := graphics.BoxShadowForElevation(s.state.Elevation, s.shadowColor)
	if shadow != nil {
		shadow.Offset = shadow.Offset.Add(s.state.ShadowOffset)
	}
	s.state.Shadow = shadow
}

// Paint draws the shadow, fill, and border onto the canvas. Ripples and
// content are painted afterwards, inside Clip.
func (s *Surface) Paint(canvas graphics.Canvas) {
	if s.state.Bounds.IsEmpty() {
		return
	}
	if s.state.Shadow != nil {
		canvas.DrawRRectShadow(s.state.Mask, *s.state.Shadow)
	}
	if s.fillColor != graphics.ColorTransparent {
		canvas.DrawRRect(s.state.Mask, graphics.FillPaint(s.fillColor))
	}
	if s.borderWidth > 0 && s.borderColor != graphics.ColorTransparent {
		canvas.DrawRRect(s.state.Mask, graphics.StrokePaint(s.borderColor, s.borderWidth))
	}
}

// Clip pushes the surface mask onto the canvas clip stack. The caller must
// call Restore after painting clipped content. When masking is disabled the
// clip is the plain rectangular bounds.
func (s *Surface) Clip(canvas graphics.Canvas) {
	canvas.Save()
	if s.state.MaskEnabled {
		canvas.ClipRRect(s.state.Mask)
	} else {
		canvas.ClipRect(s.state.Bounds)
	}
}
