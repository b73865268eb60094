package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the resolved invocation: what to look for and where.
type Config struct {
	Query      string
	FilePath   string
	IgnoreCase bool
}

type Format string

const (
	FormatPlain Format = "plain"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Options controls how matches are printed.
type Options struct {
	Format      Format `yaml:"format" json:"format"`
	LineNumbers *bool  `yaml:"line_numbers" json:"line_numbers,omitempty"`
	Count       *bool  `yaml:"count" json:"count,omitempty"`
}

func (o Options) WithLineNumbers() bool { return o.LineNumbers != nil && *o.LineNumbers }

func (o Options) CountOnly() bool { return o.Count != nil && *o.Count }

func (f *Format) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid format node kind: %d", value.Kind)
	}
	*f = Format(strings.ToLower(strings.TrimSpace(value.Value)))
	return nil
}
