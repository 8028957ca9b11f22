// Package config resolves the enclosing Go module and the preset file an
// inkwell CLI invocation operates on.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// DefaultPresetFile is the preset file name looked up when none is given.
const DefaultPresetFile = "inkwell.yaml"

// Resolved contains resolved configuration values for a CLI run.
type Resolved struct {
	Root       string
	ModulePath string
	PresetPath string
}

// Resolve locates the project root and module path, and picks the preset
// file: an explicit path wins, otherwise inkwell.yaml at the root.
func Resolve(presetPath string) (*Resolved, error) {
	root, err := FindProjectRoot()
	if err != nil {
		return nil, err
	}

	modulePath, err := modulePathOf(root)
	if err != nil {
		return nil, err
	}

	if presetPath == "" {
		presetPath = filepath.Join(root, DefaultPresetFile)
	}

	return &Resolved{
		Root:       root,
		ModulePath: modulePath,
		PresetPath: presetPath,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePathOf(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}
