package theme

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Preset is one named button definition from an inkwell.yaml file. Design
// tools emit presets; applications load them and build buttons without
// hand-writing configuration.
//
// Zero-valued fields fall back to the style's defaults when the preset is
// applied.
type Preset struct {
	// Name identifies the preset; must be unique within a file.
	Name string `yaml:"name"`
	// Style is "fill" or "outline".
	Style string `yaml:"style"`
	// Brightness is "light" or "dark".
	Brightness string `yaml:"brightness"`

	Text     string  `yaml:"text,omitempty"`
	FontSize float64 `yaml:"fontSize,omitempty"`

	CornerRadius float64  `yaml:"cornerRadius,omitempty"`
	Corners      []string `yaml:"corners,omitempty"`
	Elevation    float64  `yaml:"elevation,omitempty"`

	Ripple *RipplePreset `yaml:"ripple,omitempty"`
}

// RipplePreset holds the ripple knobs of a preset.
type RipplePreset struct {
	Enabled    *bool    `yaml:"enabled,omitempty"`
	ScaleRatio float64  `yaml:"scaleRatio,omitempty"`
	Duration   Duration `yaml:"duration,omitempty"`
	Background bool     `yaml:"background,omitempty"`
}

// Duration wraps time.Duration so presets can spell durations as "250ms".
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// PresetFile is the root of an inkwell.yaml document.
type PresetFile struct {
	Presets []Preset `yaml:"presets"`
}

// validCorners are the recognized corner names in preset files.
var validCorners = map[string]struct{}{
	"topLeft":     {},
	"topRight":    {},
	"bottomRight": {},
	"bottomLeft":  {},
}

// Validate checks the preset for unknown style, brightness, or corner
// names. Zero-valued numeric fields are always valid; they mean "use the
// style default".
func (p Preset) Validate() error {
	if p.Name == "" {
		return errors.New("preset has no name")
	}
	switch p.Style {
	case "", "fill", "outline":
	default:
		return fmt.Errorf("preset %q: unknown style %q (use fill or outline)", p.Name, p.Style)
	}
	switch p.Brightness {
	case "", "light", "dark":
	default:
		return fmt.Errorf("preset %q: unknown brightness %q (use light or dark)", p.Name, p.Brightness)
	}
	for _, corner := range p.Corners {
		if _, ok := validCorners[corner]; !ok {
			return fmt.Errorf("preset %q: unknown corner %q", p.Name, corner)
		}
	}
	return nil
}

// ParsedStyle returns the preset's ButtonStyle, defaulting to fill.
func (p Preset) ParsedStyle() ButtonStyle {
	if p.Style == "outline" {
		return ButtonStyleOutline
	}
	return ButtonStyleFill
}

// ParsedBrightness returns the preset's Brightness, defaulting to light.
func (p Preset) ParsedBrightness() Brightness {
	if p.Brightness == "dark" {
		return BrightnessDark
	}
	return BrightnessLight
}

// ParsePresets decodes and validates an inkwell.yaml document.
func ParsePresets(data []byte) ([]Preset, error) {
	var file PresetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}
	seen := make(map[string]struct{}, len(file.Presets))
	for _, preset := range file.Presets {
		if err := preset.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[preset.Name]; dup {
			return nil, fmt.Errorf("duplicate preset name %q", preset.Name)
		}
		seen[preset.Name] = struct{}{}
	}
	return file.Presets, nil
}

// LoadPresets reads and parses presets from a YAML file. A missing file is
// not an error; it yields no presets.
func LoadPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParsePresets(data)
}
