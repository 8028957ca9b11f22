package cmd

import (
	"fmt"

	"github.com/go-drift/inkwell/cmd/inkwell/internal/config"
	"github.com/go-drift/inkwell/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "validate",
		Short: "Check a preset file",
		Long: `Validate parses a preset file and reports unknown styles,
brightnesses, corner names, and duplicate preset names.

With no argument, validates inkwell.yaml at the project root.`,
		Usage: "inkwell validate [file]",
		Run:   runValidate,
	})
}

func runValidate(args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	resolved, err := config.Resolve(path)
	if err != nil {
		return err
	}

	presets, err := theme.LoadPresets(resolved.PresetPath)
	if err != nil {
		return err
	}
	if len(presets) == 0 {
		fmt.Printf("%s: no presets found\n", resolved.PresetPath)
		return nil
	}

	for _, preset := range presets {
		fmt.Printf("  %-20s %s/%s\n", preset.Name, preset.ParsedStyle(), preset.ParsedBrightness())
	}
	fmt.Printf("%s: %d preset(s) OK\n", resolved.PresetPath, len(presets))
	return nil
}
