package theme

import (
	"testing"

	"github.com/go-drift/inkwell/pkg/graphics"
)

// TestSchemeFor verifies brightness selects the matching palette.
func TestSchemeFor(t *testing.T) {
	light := SchemeFor(BrightnessLight)
	if light.Brightness != BrightnessLight {
		t.Errorf("expected light scheme, got %v", light.Brightness)
	}

	dark := SchemeFor(BrightnessDark)
	if dark.Brightness != BrightnessDark {
		t.Errorf("expected dark scheme, got %v", dark.Brightness)
	}

	if light.Primary == dark.Primary {
		t.Error("light and dark primaries should differ")
	}
}

// TestButtonColorsFor_Fill verifies the fill treatment: primary body,
// on-primary content, no border.
func TestButtonColorsFor_Fill(t *testing.T) {
	scheme := LightColorScheme()
	colors := ButtonColorsFor(ButtonStyleFill, scheme)

	if colors.Background != scheme.Primary {
		t.Errorf("expected primary background, got 0x%08X", uint32(colors.Background))
	}
	if colors.Foreground != scheme.OnPrimary {
		t.Errorf("expected on-primary foreground, got 0x%08X", uint32(colors.Foreground))
	}
	if colors.Border != graphics.ColorTransparent {
		t.Errorf("fill should have no border, got 0x%08X", uint32(colors.Border))
	}
	if colors.Ripple.Alpha() == 0 || colors.Ripple.Alpha() == 0xFF {
		t.Errorf("ripple tint should be translucent, got alpha 0x%02X", colors.Ripple.Alpha())
	}
}

// TestButtonColorsFor_Outline verifies the outline treatment: surface body
// with a primary stroke and primary content.
func TestButtonColorsFor_Outline(t *testing.T) {
	scheme := DarkColorScheme()
	colors := ButtonColorsFor(ButtonStyleOutline, scheme)

	if colors.Background != scheme.Surface {
		t.Errorf("expected surface background, got 0x%08X", uint32(colors.Background))
	}
	if colors.Foreground != scheme.Primary {
		t.Errorf("expected primary foreground, got 0x%08X", uint32(colors.Foreground))
	}
	if colors.Border != scheme.Primary {
		t.Errorf("expected primary border, got 0x%08X", uint32(colors.Border))
	}
}

// TestStringers verifies the human-readable names.
func TestStringers(t *testing.T) {
	if BrightnessLight.String() != "light" || BrightnessDark.String() != "dark" {
		t.Error("unexpected brightness names")
	}
	if ButtonStyleFill.String() != "fill" || ButtonStyleOutline.String() != "outline" {
		t.Error("unexpected style names")
	}
}
