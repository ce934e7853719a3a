// Package maputil provides utilities for working with map[string]any data structures.
//
// Paths are dot-separated sequences of mapping keys ("server.tls.enabled").
// Only mappings are traversed; list elements are not addressable.
package maputil

import (
	"strings"

	"github.com/yacchi/kasane/value"
)

// Separator separates the segments of a dotted path.
const Separator = "."

// SplitPath splits a dotted path into its keys.
// The empty path denotes the root and yields no keys.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, Separator)
}

// GetPath retrieves a value at the given dotted path from a nested map.
// Returns the value and true if found, or nil and false if not found.
// The empty path returns data itself.
//
// Example:
//
//	data := map[string]any{
//	    "server": map[string]any{
//	        "host": "localhost",
//	        "port": 8080,
//	    },
//	}
//	value, ok := GetPath(data, "server.host")     // "localhost", true
//	value, ok := GetPath(data, "server.missing")  // nil, false
//	value, ok := GetPath(data, "server.host.x")   // nil, false
func GetPath(data map[string]any, path string) (any, bool) {
	return getByKeys(data, SplitPath(path))
}

// getByKeys traverses the data structure using the given keys.
func getByKeys(data map[string]any, keys []string) (any, bool) {
	var current any = data

	for _, key := range keys {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		val, ok := m[key]
		if !ok {
			return nil, false
		}
		current = val
	}

	return current, true
}

// SetPath sets a value at the given dotted path in a nested map.
// Intermediate maps are created as needed; a non-map value in the way is
// replaced by a new map.
// Returns false if the path is empty.
func SetPath(data map[string]any, path string, value any) bool {
	keys := SplitPath(path)
	if len(keys) == 0 || data == nil {
		return false
	}

	current := data
	for _, key := range keys[:len(keys)-1] {
		if nested, ok := current[key].(map[string]any); ok {
			current = nested
			continue
		}
		nested := make(map[string]any)
		current[key] = nested
		current = nested
	}

	current[keys[len(keys)-1]] = value
	return true
}

// Merge performs a deep merge of src into dst.
// When a key holds a map on both sides the maps are merged recursively, so
// sibling keys of dst survive. In every other case the src value replaces the
// dst value wholesale, including lists and a map replacing a scalar.
// Values taken from src are deep copied, so dst never aliases src.
func Merge(dst, src map[string]any) {
	for key, srcValue := range src {
		dstValue, exists := dst[key]

		if !exists {
			dst[key] = value.DeepCopy(srcValue)
			continue
		}

		dstMap, dstIsMap := dstValue.(map[string]any)
		srcMap, srcIsMap := srcValue.(map[string]any)

		if dstIsMap && srcIsMap {
			Merge(dstMap, srcMap)
		} else {
			dst[key] = value.DeepCopy(srcValue)
		}
	}
}
