package graphics

// BoxShadow defines a shadow to draw behind a shape.
type BoxShadow struct {
	Color      Color
	Offset     Offset
	BlurRadius float64 // sigma = blurRadius * 0.5
	Spread     float64
}

// Sigma returns the blur sigma for the renderer's mask filter.
// Returns 0 if BlurRadius is negative.
func (s BoxShadow) Sigma() float64 {
	if s.BlurRadius <= 0 {
		return 0
	}
	return s.BlurRadius * 0.5
}

// NewBoxShadow creates a simple drop shadow with the given color and blur radius.
// Offset defaults to (0, 2) for a subtle downward shadow.
func NewBoxShadow(color Color, blurRadius float64) *BoxShadow {
	return &BoxShadow{
		Color:      color,
		Offset:     Offset{X: 0, Y: 2},
		BlurRadius: blurRadius,
	}
}

// Shadow intensity curve. Higher elevation yields a larger, softer, slightly
// lighter shadow, interpolating the classic 5-level material table into a
// continuous function so fractional elevations animate smoothly.
const (
	shadowOffsetBase  = 0.5
	shadowOffsetSlope = 0.5
	shadowBlurBase    = 1.0
	shadowBlurSlope   = 1.6
	shadowSpreadSlope = 0.4
	shadowSpreadKnee  = 2.0
	shadowAlphaBase   = 0.25
	shadowAlphaFade   = 0.01
	shadowAlphaFloor  = 0.12
)

// BoxShadowForElevation maps an elevation value to a drop shadow.
// The mapping is monotonic: larger elevations produce a larger vertical
// offset, a wider blur, and (past a knee) positive spread. Elevation values
// at or below zero produce no shadow.
func BoxShadowForElevation(elevation float64, color Color) *BoxShadow {
	if elevation <= 0 {
		return nil
	}
	alpha := shadowAlphaBase - shadowAlphaFade*elevation
	if alpha < shadowAlphaFloor {
		alpha = shadowAlphaFloor
	}
	spread := shadowSpreadSlope * (elevation - shadowSpreadKnee)
	if spread < 0 {
		spread = 0
	}
	return &BoxShadow{
		Color:      color.WithOpacity(alpha),
		Offset:     Offset{X: 0, Y: shadowOffsetBase + shadowOffsetSlope*elevation},
		BlurRadius: shadowBlurBase + shadowBlurSlope*elevation,
		Spread:     spread,
	}
}
