package kasane

import (
	"strings"

	"github.com/yacchi/kasane/maputil"
)

// origins tracks which layers wrote each node of the tree.
// The key is the dotted path of the node; the value lists indexes into
// Store.layers in application order.
//
// Keys containing the separator make paths ambiguous; such nodes share the
// origin list of the dotted path they spell.
type origins map[string][]int

// record notes that layer idx wrote every node of src.
// It must be called before src is merged into dst, since it mirrors the merge
// decisions made on dst.
func (o origins) record(dst, src map[string]any, prefix string, idx int) {
	for key, srcValue := range src {
		path := joinPath(prefix, key)
		if n := len(o[path]); n == 0 || o[path][n-1] != idx {
			o[path] = append(o[path], idx)
		}

		dstMap, dstIsMap := dst[key].(map[string]any)
		srcMap, srcIsMap := srcValue.(map[string]any)
		if dstIsMap && srcIsMap {
			o.record(dstMap, srcMap, path, idx)
			continue
		}

		// Wholesale replacement: the old subtree is gone.
		o.drop(path)
		if srcIsMap {
			o.record(nil, srcMap, path, idx)
		}
	}
}

// drop forgets every node below path.
func (o origins) drop(path string) {
	prefix := path + maputil.Separator
	for p := range o {
		if strings.HasPrefix(p, prefix) {
			delete(o, p)
		}
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + maputil.Separator + key
}

// Origin returns the layer that last wrote the node at path.
// For a mapping this is the latest layer that contributed any key below it.
// The root path "" has no origin.
//
// Example:
//
//	if info, ok := store.Origin("server.http_port"); ok {
//	    fmt.Printf("http_port set by %s (%s)\n", info.Name, info.Kind)
//	}
func (s *Store) Origin(path string) (LayerInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.origins[path]
	if len(idx) == 0 {
		return LayerInfo{}, false
	}
	return s.layers[idx[len(idx)-1]], true
}

// Origins returns every layer that wrote the node at path, lowest priority first.
// Layers that wrote a mapping that was later replaced wholesale are not reported
// for the nodes below it.
func (s *Store) Origins(path string) []LayerInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.origins[path]
	if len(idx) == 0 {
		return nil
	}
	out := make([]LayerInfo, len(idx))
	for i, n := range idx {
		out[i] = s.layers[n]
	}
	return out
}
