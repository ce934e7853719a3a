// Package format maps configuration file formats to parsers.
//
// Every parser turns raw bytes into a canonical map[string]any (see
// value.Canonicalize) whose root is a mapping. The Registry picks a parser
// from a file's extension; relaxed JSON is the fallback for unknown
// extensions.
package format

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/yacchi/kasane/jsonc"
)

// Format identifies a configuration document format.
type Format string

const (
	// JSONC is JSON with "//" and "/* */" comments.
	JSONC Format = "jsonc"

	// JSON is strict JSON. It is parsed by the JSONC parser, which accepts a superset.
	JSON Format = "json"

	// YAML is parsed with gopkg.in/yaml.v3.
	YAML Format = "yaml"

	// TOML is parsed with github.com/pelletier/go-toml/v2.
	TOML Format = "toml"
)

// ParseFunc parses raw bytes into a canonical configuration map.
type ParseFunc func(data []byte) (map[string]any, error)

// Registry associates formats with parsers and file extensions.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	parsers  map[Format]ParseFunc
	byExt    map[string]Format
	fallback Format
}

// NewRegistry creates a registry that knows JSONC and JSON.
// Format packages such as format/yaml add themselves through Register.
func NewRegistry() *Registry {
	r := &Registry{
		parsers:  make(map[Format]ParseFunc),
		byExt:    make(map[string]Format),
		fallback: JSONC,
	}
	r.Register(JSONC, jsonc.Parse, ".jsonc")
	r.Register(JSON, jsonc.Parse, ".json")
	return r
}

// Register adds or replaces the parser for f and maps the given extensions to it.
// Extensions are matched case-insensitively and must include the leading dot.
func (r *Registry) Register(f Format, parse ParseFunc, exts ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.parsers[f] = parse
	for _, ext := range exts {
		r.byExt[strings.ToLower(ext)] = f
	}
}

// ForPath returns the format for path based on its extension.
// Unknown extensions resolve to JSONC.
func (r *Registry) ForPath(path string) Format {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if f, ok := r.byExt[strings.ToLower(filepath.Ext(path))]; ok {
		return f
	}
	return r.fallback
}

// Parse parses data using the parser registered for f.
func (r *Registry) Parse(f Format, data []byte) (map[string]any, error) {
	r.mu.RLock()
	parse, ok := r.parsers[f]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unsupported format %q", f)
	}
	return parse(data)
}

// Formats returns the registered formats.
func (r *Registry) Formats() []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Format, 0, len(r.parsers))
	for f := range r.parsers {
		out = append(out, f)
	}
	return out
}
