// Package bytes provides a byte slice based configuration source.
// It is typically used for embedded configuration documents.
package bytes

import (
	"context"

	"github.com/yacchi/kasane/source"
)

// Source loads raw configuration data from a byte slice.
type Source struct {
	data []byte
}

// Ensure Source implements the source.Source interface.
var _ source.Source = (*Source)(nil)

// New creates a source from raw bytes.
// The slice is copied, so later changes by the caller are not observed.
//
// Example:
//
//	data := []byte(`{"server": {"http_port": 8080}}`)
//	src := bytes.New(data)
func New(data []byte) *Source {
	return &Source{
		data: append([]byte(nil), data...),
	}
}

// FromString creates a source from a string.
//
// Example:
//
//	src := bytes.FromString(`{"locale": "tr"} // embedded`)
func FromString(data string) *Source {
	return &Source{data: []byte(data)}
}

// Type returns the source type identifier.
func (s *Source) Type() source.Type {
	return source.TypeBytes
}

// Load implements the source.Source interface.
// Returns a copy of the data to prevent callers from modifying the source.
func (s *Source) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make([]byte, len(s.data))
	copy(result, s.data)
	return result, nil
}
