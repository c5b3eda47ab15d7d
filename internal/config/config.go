package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for emojiscan.
// Pointer and nil-slice fields mean "not set" so that precedence can fall
// through to the next layer.
type FileConfig struct {
	Extensions      []string `yaml:"extensions,omitempty"`
	Ranges          []string `yaml:"ranges,omitempty"`
	SkipDirs        []string `yaml:"skip_dirs,omitempty"`
	Include         *string  `yaml:"include,omitempty"`
	Exclude         *string  `yaml:"exclude,omitempty"`
	MaxBytes        *int64   `yaml:"max_bytes,omitempty"`
	DefaultExcludes *bool    `yaml:"default_excludes,omitempty"`
	Gitignore       *bool    `yaml:"gitignore,omitempty"`
	OnError         *string  `yaml:"on_error,omitempty"`
	NoColor         *bool    `yaml:"no_color,omitempty"`
	Baseline        *string  `yaml:"baseline,omitempty"`
}

// ErrNotFound is returned by LoadLocal and LoadGlobal when there is no file
// to load.
var ErrNotFound = errors.New("config not found")

// LocalNames are the repo-local config file names, in lookup order.
var LocalNames = []string{".emojiscan.yml", ".emojiscan.yaml", "emojiscan.yml", "emojiscan.yaml"}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range LocalNames {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, fmt.Errorf("%w in %s", ErrNotFound, root)
}

// GlobalPath returns $XDG_CONFIG_HOME/emojiscan/config.yml, falling back to
// ~/.config. It is empty when neither base can be determined.
func GlobalPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return ""
	}
	return filepath.Join(base, "emojiscan", "config.yml")
}

// LoadGlobal loads the global config file.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	p := GlobalPath()
	if p == "" {
		return cfg, fmt.Errorf("%w: no config dir", ErrNotFound)
	}
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, fmt.Errorf("%w at %s", ErrNotFound, p)
}

// Merge layers c over fallback: any field set in c wins.
func (c FileConfig) Merge(fallback FileConfig) FileConfig {
	out := fallback
	if c.Extensions != nil {
		out.Extensions = c.Extensions
	}
	if c.Ranges != nil {
		out.Ranges = c.Ranges
	}
	if c.SkipDirs != nil {
		out.SkipDirs = c.SkipDirs
	}
	if c.Include != nil {
		out.Include = c.Include
	}
	if c.Exclude != nil {
		out.Exclude = c.Exclude
	}
	if c.MaxBytes != nil {
		out.MaxBytes = c.MaxBytes
	}
	if c.DefaultExcludes != nil {
		out.DefaultExcludes = c.DefaultExcludes
	}
	if c.Gitignore != nil {
		out.Gitignore = c.Gitignore
	}
	if c.OnError != nil {
		out.OnError = c.OnError
	}
	if c.NoColor != nil {
		out.NoColor = c.NoColor
	}
	if c.Baseline != nil {
		out.Baseline = c.Baseline
	}
	return out
}
