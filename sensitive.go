package kasane

import (
	"strings"

	"github.com/yacchi/kasane/maputil"
	"github.com/yacchi/kasane/value"
)

// DefaultMaskString replaces sensitive values in masked output.
const DefaultMaskString = "********"

// DefaultSensitivePaths returns the paths masked unless WithSensitive says otherwise.
func DefaultSensitivePaths() []string {
	return []string{"server.token"}
}

// WithSensitive replaces the list of sensitive paths.
// A sensitive path masks its node and everything below it.
func WithSensitive(paths ...string) Option {
	return func(o *storeOptions) {
		o.sensitive = append([]string(nil), paths...)
	}
}

// IsSensitive reports whether the node at path is covered by a sensitive path.
func (s *Store) IsSensitive(path string) bool {
	for _, p := range s.sensitive {
		if path == p || strings.HasPrefix(path, p+maputil.Separator) {
			return true
		}
	}
	return false
}

// MaskedSnapshot is Snapshot with sensitive values replaced by DefaultMaskString.
// Empty strings and nulls are left as they are, so an unset token stays visibly unset.
func (s *Store) MaskedSnapshot() map[string]any {
	tree := s.Snapshot()
	for _, p := range s.sensitive {
		v, ok := maputil.GetPath(tree, p)
		if !ok || v == nil || v == "" {
			continue
		}
		maputil.SetPath(tree, p, DefaultMaskString)
	}
	return tree
}

// GetMasked is Get with sensitive values replaced by DefaultMaskString.
func (s *Store) GetMasked(path string) (value.Value, bool) {
	v, ok := maputil.GetPath(s.MaskedSnapshot(), path)
	if !ok {
		return value.Value{}, false
	}
	return value.FromCanonical(v), true
}
