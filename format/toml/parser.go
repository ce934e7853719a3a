// Package toml parses TOML configuration layers using github.com/pelletier/go-toml/v2.
package toml

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/yacchi/kasane/format"
	"github.com/yacchi/kasane/value"
)

// Extensions are the file extensions handled by this package.
var Extensions = []string{".toml"}

var tomlUnmarshal = toml.Unmarshal

// Parse parses TOML data into a canonical configuration map.
// Dates and times become RFC 3339 strings.
func Parse(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	var result map[string]any
	if err := tomlUnmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	out, err := value.CanonicalizeMap(result)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return out, nil
}

// Register adds the TOML parser to r.
func Register(r *format.Registry) {
	r.Register(format.TOML, Parse, Extensions...)
}
