package kasane

import "fmt"

// LoadError is returned when a layer exists but cannot be read or parsed.
// The store is left unchanged.
type LoadError struct {
	Layer string
	Path  string
	Err   error
}

func (e *LoadError) Error() string {
	if e.Path != "" && e.Path != e.Layer {
		return fmt.Sprintf("failed to load layer %q from %s: %v", e.Layer, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to load layer %q: %v", e.Layer, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// PathNotFoundError is returned when a dotted path does not resolve.
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("path not found: %s", e.Path)
}

// OverrideError reports a recognized command-line token whose value could not
// be used. The token is skipped; other tokens are still applied.
type OverrideError struct {
	Token string
	Flag  string
	Err   error
}

func (e *OverrideError) Error() string {
	return fmt.Sprintf("invalid value for %s in %q: %v", e.Flag, e.Token, e.Err)
}

func (e *OverrideError) Unwrap() error {
	return e.Err
}
