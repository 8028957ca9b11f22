// Package theme provides the semantic color schemes and button style
// presets that map a fill/outline design choice onto concrete colors.
package theme

import (
	"fmt"

	"github.com/go-drift/inkwell/pkg/graphics"
)

// Brightness indicates if a theme is light or dark.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

// String returns "light" or "dark".
func (b Brightness) String() string {
	switch b {
	case BrightnessLight:
		return "light"
	case BrightnessDark:
		return "dark"
	default:
		return fmt.Sprintf("Brightness(%d)", int(b))
	}
}

// ColorScheme defines the semantic color palette a button derives its
// preset colors from.
type ColorScheme struct {
	// Primary is the main accent color.
	Primary graphics.Color
	// OnPrimary is the content color drawn on top of Primary.
	OnPrimary graphics.Color
	// Surface is the background color of raised components.
	Surface graphics.Color
	// OnSurface is the content color drawn on top of Surface.
	OnSurface graphics.Color
	// Outline is the stroke color for outlined components.
	Outline graphics.Color
	// Brightness records which palette this scheme belongs to.
	Brightness Brightness
}

// LightColorScheme returns the default light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Primary:    graphics.RGB(0x3B, 0x82, 0xF6),
		OnPrimary:  graphics.ColorWhite,
		Surface:    graphics.ColorWhite,
		OnSurface:  graphics.RGB(0x1F, 0x29, 0x37),
		Outline:    graphics.RGB(0xD1, 0xD5, 0xDB),
		Brightness: BrightnessLight,
	}
}

// DarkColorScheme returns the default dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Primary:    graphics.RGB(0x60, 0xA5, 0xFA),
		OnPrimary:  graphics.RGB(0x11, 0x18, 0x27),
		Surface:    graphics.RGB(0x1F, 0x29, 0x37),
		OnSurface:  graphics.RGB(0xF9, 0xFA, 0xFB),
		Outline:    graphics.RGB(0x4B, 0x55, 0x63),
		Brightness: BrightnessDark,
	}
}

// SchemeFor returns the default palette for a brightness.
func SchemeFor(brightness Brightness) ColorScheme {
	if brightness == BrightnessDark {
		return DarkColorScheme()
	}
	return LightColorScheme()
}

// ButtonStyle selects between the two preset button treatments.
type ButtonStyle int

const (
	// ButtonStyleFill paints a solid primary surface with on-primary
	// content.
	ButtonStyleFill ButtonStyle = iota
	// ButtonStyleOutline paints a surface-colored body with a primary
	// stroke and primary content.
	ButtonStyleOutline
)

// String returns "fill" or "outline".
func (s ButtonStyle) String() string {
	switch s {
	case ButtonStyleFill:
		return "fill"
	case ButtonStyleOutline:
		return "outline"
	default:
		return fmt.Sprintf("ButtonStyle(%d)", int(s))
	}
}

// ButtonColors is a resolved preset: the concrete colors a styled button
// applies to its configuration.
type ButtonColors struct {
	Background graphics.Color
	Foreground graphics.Color
	Border     graphics.Color
	Ripple     graphics.Color
}

// ButtonColorsFor maps a style and scheme to concrete colors. The ripple
// tint is the foreground at a low alpha so the splash reads on both
// treatments.
func ButtonColorsFor(style ButtonStyle, scheme ColorScheme) ButtonColors {
	switch style {
	case ButtonStyleOutline:
		return ButtonColors{
			Background: scheme.Surface,
			Foreground: scheme.Primary,
			Border:     scheme.Primary,
			Ripple:     scheme.Primary.WithOpacity(0.25),
		}
	default:
		return ButtonColors{
			Background: scheme.Primary,
			Foreground: scheme.OnPrimary,
			Border:     graphics.ColorTransparent,
			Ripple:     scheme.OnPrimary.WithOpacity(0.30),
		}
	}
}
