package kasane

import "github.com/yacchi/kasane/format"

// LoadResult is the outcome of loading a single layer.
type LoadResult int

const (
	// Failed means the layer could not be read or parsed. The tree is unchanged.
	Failed LoadResult = iota

	// NotFound means the layer's source does not exist. This is not an error:
	// layered discovery tolerates optional files.
	NotFound

	// Loaded means the layer was merged into the tree.
	Loaded
)

func (r LoadResult) String() string {
	switch r {
	case NotFound:
		return "not found"
	case Loaded:
		return "loaded"
	}
	return "failed"
}

// LayerKind describes where a layer came from.
type LayerKind string

const (
	KindDefaults  LayerKind = "defaults"
	KindFile      LayerKind = "file"
	KindSource    LayerKind = "source"
	KindMap       LayerKind = "map"
	KindOverrides LayerKind = "overrides"
)

// Layer names used by the store itself.
const (
	DefaultsLayer  = "defaults"
	OverridesLayer = "overrides"
)

// LayerInfo describes a layer that has been applied to the store.
type LayerInfo struct {
	// Name identifies the layer. File layers are named after their path.
	Name string

	// Kind tells how the layer was applied.
	Kind LayerKind

	// Path is the file the layer was read from. Empty for non-file layers.
	Path string

	// Format is the document format. Empty for defaults, maps and overrides.
	Format format.Format
}
