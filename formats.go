package kasane

import (
	"github.com/yacchi/kasane/format"
	"github.com/yacchi/kasane/format/toml"
	"github.com/yacchi/kasane/format/yaml"
)

// DefaultFormats returns a registry with every supported format:
// JSONC (also used for .json and unknown extensions), YAML and TOML.
func DefaultFormats() *format.Registry {
	r := format.NewRegistry()
	yaml.Register(r)
	toml.Register(r)
	return r
}
