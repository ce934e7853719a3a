// Package yaml parses YAML configuration layers using gopkg.in/yaml.v3.
package yaml

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/yacchi/kasane/format"
	"github.com/yacchi/kasane/value"
)

// Extensions are the file extensions handled by this package.
var Extensions = []string{".yaml", ".yml"}

// Parse parses YAML data into a canonical configuration map.
//
// The root must be a mapping. Empty input, a comment-only document and a
// null root are errors, like any other non-mapping document.
func Parse(data []byte) (map[string]any, error) {
	var root any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if root == nil {
		return nil, errors.New("failed to parse YAML: root must be a mapping, got null")
	}

	c, err := value.Canonicalize(root)
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	obj, ok := c.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("failed to parse YAML: root must be a mapping, got %T", c)
	}
	return obj, nil
}

// Register adds the YAML parser to r.
func Register(r *format.Registry) {
	r.Register(format.YAML, Parse, Extensions...)
}
