package kasane

import (
	"errors"
	"strconv"
	"strings"

	"github.com/yacchi/kasane/maputil"
)

type argKind int

const (
	argNone argKind = iota
	argString
	argInt
)

// write is one leaf assignment produced by an override token.
type write struct {
	path  string
	value any
}

// overrideRule describes a recognized command-line token.
// Rules with argNone match the flag exactly; the others match "flag=value".
type overrideRule struct {
	flag   string
	arg    argKind
	usage  string
	writes func(v any) []write
}

func set(path string) func(v any) []write {
	return func(v any) []write {
		return []write{{path, v}}
	}
}

func setAnd(path string, extra ...write) func(v any) []write {
	return func(v any) []write {
		return append([]write{{path, v}}, extra...)
	}
}

func fixed(ws ...write) func(any) []write {
	return func(any) []write {
		return ws
	}
}

var overrideRules = []overrideRule{
	{"--remote", argNone, "listen on all interfaces", fixed(write{"server.bind_address", "0.0.0.0"})},
	{"--http-port", argInt, "HTTP port", set("server.http_port")},
	{"--ws-port", argInt, "WebSocket port", set("server.ws_port")},
	{"--port", argInt, "alias for --http-port", set("server.http_port")},
	{"--token", argString, "bearer token required by the server", set("server.token")},
	{"--tls-cert", argString, "TLS certificate file (enables TLS)", setAnd("server.tls.cert", write{"server.tls.enabled", true})},
	{"--tls-key", argString, "TLS private key file (enables TLS)", setAnd("server.tls.key", write{"server.tls.enabled", true})},
	{"--tls-ca", argString, "TLS CA file", set("server.tls.ca")},
	{"--inspect", argNone, "enable the script inspector", fixed(write{"inspector.enabled", true})},
	{"--inspect-brk", argNone, "enable the inspector and break on start", fixed(
		write{"inspector.enabled", true},
		write{"inspector.break_on_start", true},
	)},
	{"--inspect-port", argInt, "inspector port (enables the inspector)", setAnd("inspector.port", write{"inspector.enabled", true})},
	{"--locale", argString, "UI locale", set("locale")},
}

// OverrideFlag describes a command-line token recognized by ApplyOverrides.
type OverrideFlag struct {
	// Name is the flag without leading dashes, e.g. "http-port".
	Name string

	// TakesValue is true for "--name=value" flags and false for switches.
	TakesValue bool

	// Usage is a short help text.
	Usage string
}

// Token renders the flag as ApplyOverrides expects it.
// The value is ignored for switches.
func (f OverrideFlag) Token(value string) string {
	if !f.TakesValue {
		return "--" + f.Name
	}
	return "--" + f.Name + "=" + value
}

// OverrideFlags returns the flags recognized by ApplyOverrides.
func OverrideFlags() []OverrideFlag {
	out := make([]OverrideFlag, 0, len(overrideRules))
	for _, r := range overrideRules {
		out = append(out, OverrideFlag{
			Name:       strings.TrimPrefix(r.flag, "--"),
			TakesValue: r.arg != argNone,
			Usage:      r.usage,
		})
	}
	return out
}

// matchOverride returns the writes for token. ok is false when the token is
// not recognized; err is non-nil when it is recognized but its value is unusable.
func matchOverride(token string) ([]write, bool, error) {
	for _, r := range overrideRules {
		if r.arg == argNone {
			if token == r.flag {
				return r.writes(nil), true, nil
			}
			continue
		}

		raw, found := strings.CutPrefix(token, r.flag+"=")
		if !found {
			continue
		}
		if r.arg == argString {
			return r.writes(raw), true, nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, true, &OverrideError{Token: token, Flag: r.flag, Err: err}
		}
		return r.writes(int64(n)), true, nil
	}
	return nil, false, nil
}

// ApplyOverrides applies command-line tokens as the highest-priority layer.
//
// Tokens are matched against a fixed set of flags (see OverrideFlags) and
// each recognized token writes one or more leaves. Unrecognized tokens are
// ignored. A recognized numeric flag with a malformed value is skipped
// entirely; the remaining tokens are still applied and the rejected ones are
// returned as *OverrideError values joined with errors.Join.
//
// Call ApplyOverrides after all file layers have been loaded.
func (s *Store) ApplyOverrides(tokens []string) error {
	var (
		errs    []error
		pending []write
	)
	for _, token := range tokens {
		ws, ok, err := matchOverride(token)
		if !ok {
			continue
		}
		if err != nil {
			s.logger.Warn().Err(err).Str("token", token).Msg("ignoring invalid override")
			errs = append(errs, err)
			continue
		}
		pending = append(pending, ws...)
	}

	if len(pending) > 0 {
		layer := map[string]any{}
		for _, w := range pending {
			maputil.SetPath(layer, w.path, w.value)
		}

		s.mu.Lock()
		s.mergeLocked(layer, LayerInfo{Name: OverridesLayer, Kind: KindOverrides})
		s.mu.Unlock()

		s.logger.Debug().Int("writes", len(pending)).Msg("applied command-line overrides")
	}

	return errors.Join(errs...)
}
