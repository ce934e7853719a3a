// Package kasane provides the layered configuration store of the berkide editor.
//
// The name comes from the Japanese word 重ね ("layering"). Settings are
// accumulated from sources of increasing priority into one merged tree:
//
//	built-in defaults < configuration files (in load order) < command-line overrides
//
// Files are JSON with comments (see package jsonc), or YAML and TOML when
// their extension says so. Each file is deep-merged into the tree: nested
// objects merge key by key, every other value replaces what was there.
//
// Reads use dotted key paths ("server.tls.enabled") and never fail: a missing
// path or a value of the wrong kind yields the caller's fallback.
//
// Key features:
//   - Atomic layer loads: a broken file leaves the tree untouched
//   - Comment-tolerant JSON that never alters string literals
//   - Type-checked accessors with caller-supplied fallbacks
//   - Deep-copied snapshots safe to hand to scripting bindings
package kasane
