package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadOptions decodes defaultsYAML and overlays the options file at path, if
// any. Fields missing from the file keep their default.
func LoadOptions(defaultsYAML []byte, path string) (Options, error) {
	var base Options
	if len(defaultsYAML) > 0 {
		if err := yaml.Unmarshal(defaultsYAML, &base); err != nil {
			return Options{}, fmt.Errorf("defaults: %w", err)
		}
	}
	if path == "" {
		return base, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	var part Options
	if err := yaml.Unmarshal(b, &part); err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return MergeOptions(base, part), nil
}

// MergeOptions returns base with every field set in overlay replaced.
func MergeOptions(base, overlay Options) Options {
	out := base
	if overlay.Format != "" {
		out.Format = overlay.Format
	}
	if overlay.LineNumbers != nil {
		out.LineNumbers = overlay.LineNumbers
	}
	if overlay.Count != nil {
		out.Count = overlay.Count
	}
	return out
}
