package kasane

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog"

	"github.com/yacchi/kasane/decoder"
	"github.com/yacchi/kasane/format"
	"github.com/yacchi/kasane/maputil"
	"github.com/yacchi/kasane/source"
	"github.com/yacchi/kasane/source/fs"
	"github.com/yacchi/kasane/value"
)

// Store owns the merged configuration tree.
//
// A Store is created once by the application and shared by reference with
// every consumer. All methods are safe for concurrent use: each takes the
// store's lock for its whole duration, so readers observe the tree either
// before or after a merge, never in between.
type Store struct {
	tree      map[string]any
	layers    []LayerInfo
	origins   origins
	sensitive []string
	logger    zerolog.Logger
	formats   *format.Registry
	decoder   decoder.Func

	// mu protects tree, layers and origins
	mu sync.Mutex
}

// Option is a functional option for configuring Store creation.
type Option func(*storeOptions)

// storeOptions holds the options for New.
type storeOptions struct {
	logger    zerolog.Logger
	formats   *format.Registry
	decoder   decoder.Func
	defaults  map[string]any
	sensitive []string
}

// WithLogger sets the logger used to report layer loads and rejected overrides.
// The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *storeOptions) {
		o.logger = l
	}
}

// WithFormats sets the format registry used by LoadLayer.
// The default is DefaultFormats().
func WithFormats(r *format.Registry) Option {
	return func(o *storeOptions) {
		o.formats = r
	}
}

// WithDecoder sets the decoder used by Decode.
// The default is decoder.Mapstructure.
func WithDecoder(d decoder.Func) Option {
	return func(o *storeOptions) {
		o.decoder = d
	}
}

// WithDefaults replaces the built-in default document.
// The data is canonicalized and copied; if it cannot be represented as a
// configuration tree the built-in defaults are used instead.
func WithDefaults(data map[string]any) Option {
	return func(o *storeOptions) {
		o.defaults = data
	}
}

// New creates a Store seeded with the default layer.
//
// Example:
//
//	store := kasane.New(kasane.WithLogger(logger))
//	for _, path := range paths.ConfigFiles() {
//	    if _, err := store.LoadLayer(ctx, path); err != nil {
//	        logger.Warn().Err(err).Msg("skipping configuration file")
//	    }
//	}
//	_ = store.ApplyOverrides(os.Args[1:])
//	port := store.GetInt("server.http_port", 1881)
func New(opts ...Option) *Store {
	options := storeOptions{
		logger:    zerolog.Nop(),
		decoder:   decoder.Mapstructure,
		sensitive: DefaultSensitivePaths(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.formats == nil {
		options.formats = DefaultFormats()
	}

	logger := options.logger.With().Str("component", "config").Logger()

	tree := Defaults()
	if options.defaults != nil {
		custom, err := value.CanonicalizeMap(options.defaults)
		if err != nil {
			logger.Error().Err(err).Msg("invalid custom defaults, using built-in defaults")
		} else {
			tree = custom
		}
	}

	s := &Store{
		tree:      map[string]any{},
		origins:   origins{},
		sensitive: options.sensitive,
		logger:    logger,
		formats:   options.formats,
		decoder:   options.decoder,
	}
	s.mergeLocked(tree, LayerInfo{Name: DefaultsLayer, Kind: KindDefaults})
	return s
}

// mergeLocked records info as a new layer and deep-merges src into the tree.
// The caller must hold s.mu or own s exclusively.
func (s *Store) mergeLocked(src map[string]any, info LayerInfo) {
	s.layers = append(s.layers, info)
	s.origins.record(s.tree, src, "", len(s.layers)-1)
	maputil.Merge(s.tree, src)
}

// LoadLayer reads the file at path and deep-merges it into the tree.
//
// A path that does not denote an existing file yields NotFound and a nil
// error. A file that cannot be read or parsed, or whose top-level value is not
// an object, yields Failed and a *LoadError; the tree is not modified.
// The format is chosen from the file extension (see DefaultFormats).
//
// Call LoadLayer once per file in ascending priority order.
func (s *Store) LoadLayer(ctx context.Context, path string) (LoadResult, error) {
	return s.load(ctx, path, KindFile, fs.New(path), s.formats.ForPath(path))
}

// LoadSource reads src, parses it as f and deep-merges it into the tree.
// It behaves like LoadLayer; a source reporting source.ErrNotExist yields NotFound.
func (s *Store) LoadSource(ctx context.Context, name string, src source.Source, f format.Format) (LoadResult, error) {
	return s.load(ctx, name, KindSource, src, f)
}

// LoadLayers loads each path in order with LoadLayer. Missing files are
// skipped and failures do not stop later layers; all failures are returned
// joined.
func (s *Store) LoadLayers(ctx context.Context, paths ...string) error {
	var errs []error
	for _, path := range paths {
		if _, err := s.LoadLayer(ctx, path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Store) load(ctx context.Context, name string, kind LayerKind, src source.Source, f format.Format) (LoadResult, error) {
	path := ""
	if pp, ok := src.(source.PathProvider); ok {
		path = pp.Path()
	}
	log := s.logger.With().Str("layer", name).Str("format", string(f)).Logger()

	// Reading and parsing happen outside the lock; only the merge needs it.
	data, err := src.Load(ctx)
	if err != nil {
		if errors.Is(err, source.ErrNotExist) {
			log.Debug().Str("path", path).Msg("configuration layer not found, skipping")
			return NotFound, nil
		}
		log.Error().Err(err).Str("path", path).Msg("failed to read configuration layer")
		return Failed, &LoadError{Layer: name, Path: path, Err: err}
	}

	parsed, err := s.formats.Parse(f, data)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to parse configuration layer")
		return Failed, &LoadError{Layer: name, Path: path, Err: err}
	}

	s.mu.Lock()
	s.mergeLocked(parsed, LayerInfo{Name: name, Kind: kind, Path: path, Format: f})
	s.mu.Unlock()

	log.Info().Str("path", path).Msg("loaded configuration layer")
	return Loaded, nil
}

// Merge deep-merges a programmatic layer into the tree.
// The data is canonicalized first; if that fails the tree is not modified.
func (s *Store) Merge(name string, data map[string]any) error {
	canonical, err := value.CanonicalizeMap(data)
	if err != nil {
		return &LoadError{Layer: name, Err: err}
	}

	s.mu.Lock()
	s.mergeLocked(canonical, LayerInfo{Name: name, Kind: KindMap})
	s.mu.Unlock()

	s.logger.Debug().Str("layer", name).Msg("merged configuration layer")
	return nil
}

// Layers returns the layers applied so far, in application order.
func (s *Store) Layers() []LayerInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]LayerInfo(nil), s.layers...)
}

// lookup resolves path under the lock and hands the raw node to fn.
// fn must not retain containers from the tree.
func (s *Store) lookup(path string, fn func(v any, ok bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := maputil.GetPath(s.tree, path)
	fn(v, ok)
}

// Get resolves path to a node of any kind.
// The empty path resolves to the whole tree.
func (s *Store) Get(path string) (value.Value, bool) {
	var (
		out   value.Value
		found bool
	)
	s.lookup(path, func(v any, ok bool) {
		if ok {
			out, found = value.FromCanonical(v), true
		}
	})
	return out, found
}

// Has reports whether path resolves to a node.
func (s *Store) Has(path string) bool {
	var found bool
	s.lookup(path, func(_ any, ok bool) { found = ok })
	return found
}

// GetString returns the string at path, or fallback if the path does not
// resolve or holds another kind.
func (s *Store) GetString(path string, fallback string) string {
	out := fallback
	s.lookup(path, func(v any, ok bool) {
		if str, isStr := v.(string); ok && isStr {
			out = str
		}
	})
	return out
}

// GetInt returns the integer at path, or fallback if the path does not
// resolve, holds another kind (floats included) or does not fit in an int.
func (s *Store) GetInt(path string, fallback int) int {
	i, ok := s.getInt64(path)
	if !ok || i < math.MinInt || i > math.MaxInt {
		return fallback
	}
	return int(i)
}

// GetInt64 is GetInt for int64.
func (s *Store) GetInt64(path string, fallback int64) int64 {
	i, ok := s.getInt64(path)
	if !ok {
		return fallback
	}
	return i
}

func (s *Store) getInt64(path string) (int64, bool) {
	var (
		out   int64
		found bool
	)
	s.lookup(path, func(v any, ok bool) {
		if i, isInt := v.(int64); ok && isInt {
			out, found = i, true
		}
	})
	return out, found
}

// GetFloat returns the number at path, or fallback if the path does not
// resolve or holds a non-number. Integers are widened.
func (s *Store) GetFloat(path string, fallback float64) float64 {
	out := fallback
	s.lookup(path, func(v any, ok bool) {
		if !ok {
			return
		}
		switch n := v.(type) {
		case float64:
			out = n
		case int64:
			out = float64(n)
		}
	})
	return out
}

// GetBool returns the boolean at path, or fallback if the path does not
// resolve or holds another kind.
func (s *Store) GetBool(path string, fallback bool) bool {
	out := fallback
	s.lookup(path, func(v any, ok bool) {
		if b, isBool := v.(bool); ok && isBool {
			out = b
		}
	})
	return out
}

// Snapshot returns a deep copy of the merged tree.
func (s *Store) Snapshot() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return value.DeepCopyMap(s.tree)
}

// MarshalJSON renders the merged tree as JSON with sorted keys.
func (s *Store) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Snapshot())
}

// Decode decodes the subtree at path into target using the store's decoder.
// The empty path decodes the whole tree.
//
// Example:
//
//	var editor struct {
//	    TabWidth int  `json:"tab_width"`
//	    UseTabs  bool `json:"use_tabs"`
//	}
//	err := store.Decode("editor", &editor)
func (s *Store) Decode(path string, target any) error {
	var (
		data  any
		found bool
	)
	s.lookup(path, func(v any, ok bool) {
		if ok {
			data, found = value.DeepCopy(v), true
		}
	})
	if !found {
		return &PathNotFoundError{Path: path}
	}

	if err := s.decoder(data, target); err != nil {
		return fmt.Errorf("failed to decode %q: %w", path, err)
	}
	return nil
}
