// Package source provides interfaces and implementations for configuration sources.
// A source represents where configuration data comes from.
// Sources are responsible only for I/O operations; parsing is handled by the format package.
package source

import (
	"context"
	"errors"
)

// ErrNotExist is returned by Load when the source has no data to offer,
// for example a configuration file that does not exist. Callers treat it as
// "nothing to merge" rather than as a failure.
var ErrNotExist = errors.New("source does not exist")

// Type identifies the kind of a source.
type Type string

const (
	// TypeFS identifies file system sources.
	TypeFS Type = "fs"

	// TypeBytes identifies in-memory byte sources.
	TypeBytes Type = "bytes"
)

// Source loads raw configuration data.
// Sources are format-agnostic; they only handle raw bytes.
type Source interface {
	// Load reads the raw configuration data from the source.
	// Returns an error wrapping ErrNotExist when there is nothing to read.
	// The context can be used for cancellation and timeouts.
	Load(ctx context.Context) ([]byte, error)

	// Type returns the source type identifier.
	Type() Type
}

// PathProvider is implemented by sources backed by a file.
type PathProvider interface {
	// Path returns the file path the source reads from.
	Path() string
}
