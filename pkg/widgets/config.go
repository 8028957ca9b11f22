package widgets

import (
	"image"
	"time"

	"github.com/go-drift/inkwell/pkg/graphics"
	"github.com/go-drift/inkwell/pkg/theme"
)

// Config is the full option surface of a button. Mutating a Config has no
// effect on a live button until it is passed to [Button.Apply], which
// pushes every field to the surface and ripple engine in a fixed order.
//
// Example using struct literal:
//
//	widgets.Config{
//	    Text:         "Save",
//	    CornerRadius: 12,
//	    Elevation:    2,
//	}
//
// Example using the fluent helpers:
//
//	widgets.DefaultConfig().
//	    WithText("Save").
//	    WithCorners(12, graphics.CornerTopLeft|graphics.CornerTopRight).
//	    WithElevation(2)
type Config struct {
	// Icon is the displayed image. Recolored to ForegroundColor unless
	// PreserveIconColor is set.
	Icon image.Image
	// Text is the label content.
	Text string
	// FontFamily selects the label font; empty uses the system default.
	FontFamily string
	// FontSize is the label font size. Defaults to 16 if zero.
	FontSize float64
	// FontWeight is the label font weight. Defaults to normal if zero.
	FontWeight graphics.FontWeight

	// ForegroundColor recolors the label and (conditionally) the icon.
	ForegroundColor graphics.Color
	// BackgroundColor is the surface fill.
	BackgroundColor graphics.Color
	// BorderColor is the surface stroke.
	BorderColor graphics.Color
	// BorderWidth is the stroke width. Defaults to 1 if zero when a
	// border color is set.
	BorderWidth float64

	// CornerRadius is the rounding radius.
	CornerRadius float64
	// RoundingCorners selects which corners round. Zero rounds all.
	RoundingCorners graphics.Corner
	// Elevation is the shadow intensity proxy.
	Elevation float64
	// ShadowOffset displaces the shadow.
	ShadowOffset graphics.Offset
	// MaskEnabled clips ripples and content to the rounded path.
	MaskEnabled bool

	// RippleEnabled controls whether touches produce ripple feedback.
	RippleEnabled bool
	// RippleScaleRatio is the final ripple size relative to covering the
	// surface. Defaults to 1 if zero.
	RippleScaleRatio float64
	// RippleDuration is the nominal full-animation duration.
	RippleDuration time.Duration
	// RippleColor is the ripple tint.
	RippleColor graphics.Color
	// BackgroundAnimationEnabled pulses the background tint with the
	// ripple.
	BackgroundAnimationEnabled bool
	// PreserveIconColor skips icon recoloring.
	PreserveIconColor bool
}

// DefaultConfig returns a config with every corner rounded, masking and
// ripples enabled, and the light fill preset colors.
func DefaultConfig() Config {
	return StyledConfig(theme.ButtonStyleFill, theme.BrightnessLight)
}

// StyledConfig derives a config from a fill/outline style and the default
// palette for a brightness.
func StyledConfig(style theme.ButtonStyle, brightness theme.Brightness) Config {
	scheme := theme.SchemeFor(brightness)
	colors := theme.ButtonColorsFor(style, scheme)
	cfg := Config{
		FontSize:         16,
		ForegroundColor:  colors.Foreground,
		BackgroundColor:  colors.Background,
		BorderColor:      colors.Border,
		CornerRadius:     8,
		RoundingCorners:  graphics.CornerAll,
		MaskEnabled:      true,
		RippleEnabled:    true,
		RippleScaleRatio: 1,
		RippleDuration:   300 * time.Millisecond,
		RippleColor:      colors.Ripple,
	}
	if colors.Border != graphics.ColorTransparent {
		cfg.BorderWidth = 1
	}
	return cfg
}

// ConfigFromPreset builds a config from a YAML preset, starting from the
// preset's style and brightness and layering its overrides on top.
func ConfigFromPreset(preset theme.Preset) Config {
	cfg := StyledConfig(preset.ParsedStyle(), preset.ParsedBrightness())
	cfg.Text = preset.Text
	if preset.FontSize > 0 {
		cfg.FontSize = preset.FontSize
	}
	if preset.CornerRadius > 0 {
		cfg.CornerRadius = preset.CornerRadius
	}
	if len(preset.Corners) > 0 {
		cfg.RoundingCorners = cornersFromNames(preset.Corners)
	}
	if preset.Elevation > 0 {
		cfg.Elevation = preset.Elevation
	}
	if r := preset.Ripple; r != nil {
		if r.Enabled != nil {
			cfg.RippleEnabled = *r.Enabled
		}
		if r.ScaleRatio > 0 {
			cfg.RippleScaleRatio = r.ScaleRatio
		}
		if r.Duration > 0 {
			cfg.RippleDuration = time.Duration(r.Duration)
		}
		cfg.BackgroundAnimationEnabled = r.Background
	}
	return cfg
}

// cornersFromNames maps validated preset corner names to the bitmask.
func cornersFromNames(names []string) graphics.Corner {
	var corners graphics.Corner
	for _, name := range names {
		switch name {
		case "topLeft":
			corners |= graphics.CornerTopLeft
		case "topRight":
			corners |= graphics.CornerTopRight
		case "bottomRight":
			corners |= graphics.CornerBottomRight
		case "bottomLeft":
			corners |= graphics.CornerBottomLeft
		}
	}
	return corners
}

// WithIcon returns a copy of the config with the given icon.
func (c Config) WithIcon(icon image.Image) Config {
	c.Icon = icon
	return c
}

// WithText returns a copy of the config with the given label text.
func (c Config) WithText(text string) Config {
	c.Text = text
	return c
}

// WithFont returns a copy of the config with the given font family and size.
func (c Config) WithFont(family string, size float64) Config {
	c.FontFamily = family
	c.FontSize = size
	return c
}

// WithColors returns a copy of the config with the given foreground and
// background colors.
func (c Config) WithColors(foreground, background graphics.Color) Config {
	c.ForegroundColor = foreground
	c.BackgroundColor = background
	return c
}

// WithBorder returns a copy of the config with the given border stroke.
func (c Config) WithBorder(color graphics.Color, width float64) Config {
	c.BorderColor = color
	c.BorderWidth = width
	return c
}

// WithCorners returns a copy of the config with the given radius applied to
// the given corner subset.
func (c Config) WithCorners(radius float64, corners graphics.Corner) Config {
	c.CornerRadius = radius
	c.RoundingCorners = corners
	return c
}

// WithElevation returns a copy of the config with the given elevation.
func (c Config) WithElevation(elevation float64) Config {
	c.Elevation = elevation
	return c
}

// WithRipple returns a copy of the config with the given ripple tint,
// scale ratio, and duration.
func (c Config) WithRipple(color graphics.Color, scaleRatio float64, duration time.Duration) Config {
	c.RippleColor = color
	c.RippleScaleRatio = scaleRatio
	c.RippleDuration = duration
	return c
}

// WithRippleEnabled returns a copy of the config with ripples toggled.
func (c Config) WithRippleEnabled(enabled bool) Config {
	c.RippleEnabled = enabled
	return c
}

// WithPreserveIconColor returns a copy of the config with icon recoloring
// toggled off or on.
func (c Config) WithPreserveIconColor(preserve bool) Config {
	c.PreserveIconColor = preserve
	return c
}
