package assets

import (
	_ "embed"
)

//go:embed default-options.yaml
var defaultOptions []byte

//go:embed options.schema.json
var optionsSchema []byte

// DefaultOptions returns the built-in output options as YAML.
func DefaultOptions() []byte { return append([]byte(nil), defaultOptions...) }

// OptionsSchema returns the JSON schema every resolved options value must satisfy.
func OptionsSchema() []byte { return append([]byte(nil), optionsSchema...) }
