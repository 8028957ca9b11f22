package graphics

// FontWeight represents a numeric font weight.
type FontWeight int

const (
	FontWeightNormal   FontWeight = 400
	FontWeightSemibold FontWeight = 600
	FontWeightBold     FontWeight = 700
)

// defaultFontSize is used when no font size is specified.
const defaultFontSize = 16

// TextStyle describes how a label should be rendered. Backends resolve
// FontFamily against their own font registry; an empty family selects the
// system default.
type TextStyle struct {
	Color      Color
	FontFamily string
	FontSize   float64
	FontWeight FontWeight
}

// ResolvedSize returns the style's font size, falling back to the default
// when unset.
func (s TextStyle) ResolvedSize() float64 {
	if s.FontSize <= 0 {
		return defaultFontSize
	}
	return s.FontSize
}

// EstimateTextSize approximates the painted size of a single-line label.
// Canvas backends shape text themselves; this estimate only feeds layout,
// using an average glyph advance of 0.6em and a line height of 1.2em.
func EstimateTextSize(text string, style TextStyle) Size {
	size := style.ResolvedSize()
	runes := 0
	for range text {
		runes++
	}
	return Size{
		Width:  float64(runes) * size * 0.6,
		Height: size * 1.2,
	}
}
