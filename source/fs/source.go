// Package fs provides a file system based configuration source.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yacchi/kasane/source"
)

var (
	userHomeDir = os.UserHomeDir
	osReadFile  = os.ReadFile
	osStat      = os.Stat
)

// Source loads raw configuration data from a file.
type Source struct {
	path         string
	searchPaths  []string
	resolvedPath string // cached path after resolution
}

// Ensure Source implements the source.Source interface.
var _ source.Source = (*Source)(nil)

// Ensure Source implements the source.PathProvider interface.
var _ source.PathProvider = (*Source)(nil)

// Option configures a Source.
type Option func(*Source)

// WithSearchPaths adds additional paths to search for the configuration file.
// During Load, files are searched in order: primary path first, then search paths.
// The first existing regular file is used.
func WithSearchPaths(paths ...string) Option {
	return func(s *Source) {
		s.searchPaths = append(s.searchPaths, paths...)
	}
}

// New creates a source that reads from a file.
// The path can be absolute or relative. Tilde (~) expansion is supported.
//
// Example:
//
//	src := fs.New("~/.berkide/config.jsonc")
//	src := fs.New("/etc/berkide/config.jsonc")
//	src := fs.New("~/.berkide/config.jsonc",
//	    fs.WithSearchPaths("/etc/berkide/config.jsonc"))
func New(path string, opts ...Option) *Source {
	s := &Source{
		path: path,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the primary path as given to New.
func (s *Source) Path() string {
	return s.path
}

// Type returns the source type identifier.
func (s *Source) Type() source.Type {
	return source.TypeFS
}

// Load implements the source.Source interface.
// If search paths are configured, files are searched in order:
// primary path first, then search paths. The first existing file is loaded.
// If none of the paths denotes an existing regular file, the returned error
// wraps source.ErrNotExist.
func (s *Source) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resolvedPath, originalPath, err := s.resolvePath()
	if err != nil {
		return nil, err
	}

	data, err := osReadFile(resolvedPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// Removed between stat and read.
			return nil, fmt.Errorf("file %q: %w", originalPath, source.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read file %q: %w", originalPath, err)
	}

	s.resolvedPath = resolvedPath

	return data, nil
}

// ResolvedPath returns the actual file path being used after resolution.
// This may differ from Path() if a search path was used.
// Returns the expanded primary path if no file has been loaded yet.
func (s *Source) ResolvedPath() string {
	if s.resolvedPath != "" {
		return s.resolvedPath
	}
	expanded, err := expandTilde(s.path)
	if err != nil {
		return s.path
	}
	return expanded
}

// resolvePath finds the first existing regular file from the search paths.
// Returns (expandedPath, originalPath, error).
func (s *Source) resolvePath() (expanded string, original string, err error) {
	allPaths := make([]string, 0, 1+len(s.searchPaths))
	allPaths = append(allPaths, s.path)
	allPaths = append(allPaths, s.searchPaths...)

	for _, p := range allPaths {
		expanded, err := expandTilde(p)
		if err != nil {
			continue
		}
		info, statErr := osStat(expanded)
		if statErr == nil && !info.IsDir() {
			return expanded, p, nil
		}
	}

	return "", s.path, fmt.Errorf("file %q: %w", s.path, source.ErrNotExist)
}

// expandTilde expands tilde (~) in the path.
// Handles both "~" (home directory) and "~/path" (path under home).
func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	homeDir, err := userHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand home directory: %w", err)
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// "~something" is not a home expansion.
	return path, nil
}
