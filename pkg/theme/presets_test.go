package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const samplePresets = `
presets:
  - name: primary
    style: fill
    brightness: light
    text: Save
    cornerRadius: 12
    elevation: 2
    ripple:
      scaleRatio: 1.2
      duration: 250ms
      background: true
  - name: ghost
    style: outline
    brightness: dark
    corners: [topLeft, topRight]
`

// TestParsePresets verifies a well-formed document decodes fully.
func TestParsePresets(t *testing.T) {
	presets, err := ParsePresets([]byte(samplePresets))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(presets))
	}

	primary := presets[0]
	if primary.Name != "primary" || primary.Text != "Save" {
		t.Errorf("unexpected preset: %+v", primary)
	}
	if primary.CornerRadius != 12 || primary.Elevation != 2 {
		t.Errorf("unexpected geometry: %+v", primary)
	}
	if primary.Ripple == nil {
		t.Fatal("expected ripple settings")
	}
	if primary.Ripple.ScaleRatio != 1.2 {
		t.Errorf("expected scale ratio 1.2, got %v", primary.Ripple.ScaleRatio)
	}
	if time.Duration(primary.Ripple.Duration) != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", time.Duration(primary.Ripple.Duration))
	}
	if !primary.Ripple.Background {
		t.Error("expected background pulse enabled")
	}

	ghost := presets[1]
	if ghost.ParsedStyle() != ButtonStyleOutline {
		t.Errorf("expected outline, got %v", ghost.ParsedStyle())
	}
	if ghost.ParsedBrightness() != BrightnessDark {
		t.Errorf("expected dark, got %v", ghost.ParsedBrightness())
	}
	if len(ghost.Corners) != 2 {
		t.Errorf("expected 2 corners, got %v", ghost.Corners)
	}
}

// TestParsePresets_Invalid verifies rejection of bad styles, brightnesses,
// corners, durations, and duplicate names.
func TestParsePresets_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "unknown style",
			yaml:    "presets:\n  - name: x\n    style: gradient\n",
			wantErr: "unknown style",
		},
		{
			name:    "unknown brightness",
			yaml:    "presets:\n  - name: x\n    brightness: dim\n",
			wantErr: "unknown brightness",
		},
		{
			name:    "unknown corner",
			yaml:    "presets:\n  - name: x\n    corners: [middle]\n",
			wantErr: "unknown corner",
		},
		{
			name:    "missing name",
			yaml:    "presets:\n  - style: fill\n",
			wantErr: "no name",
		},
		{
			name:    "bad duration",
			yaml:    "presets:\n  - name: x\n    ripple:\n      duration: fast\n",
			wantErr: "invalid duration",
		},
		{
			name:    "duplicate names",
			yaml:    "presets:\n  - name: x\n  - name: x\n",
			wantErr: "duplicate preset name",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePresets([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

// TestParsePresets_Defaults verifies empty style and brightness fall back
// to fill and light.
func TestParsePresets_Defaults(t *testing.T) {
	presets, err := ParsePresets([]byte("presets:\n  - name: plain\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := presets[0]
	if p.ParsedStyle() != ButtonStyleFill {
		t.Errorf("expected fill default, got %v", p.ParsedStyle())
	}
	if p.ParsedBrightness() != BrightnessLight {
		t.Errorf("expected light default, got %v", p.ParsedBrightness())
	}
}

// TestLoadPresets verifies file loading and the missing-file behavior.
func TestLoadPresets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inkwell.yaml")
	if err := os.WriteFile(path, []byte(samplePresets), 0o644); err != nil {
		t.Fatal(err)
	}

	presets, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(presets) != 2 {
		t.Errorf("expected 2 presets, got %d", len(presets))
	}

	missing, err := LoadPresets(filepath.Join(dir, "absent.yaml"))
	if err != nil {
		t.Errorf("missing file should not error, got %v", err)
	}
	if missing != nil {
		t.Errorf("missing file should yield no presets, got %v", missing)
	}
}
