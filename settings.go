package kasane

import (
	"net"
	"strconv"

	"github.com/yacchi/kasane/value"
)

// TLSSettings is the transport security part of ServerSettings.
type TLSSettings struct {
	Enabled bool   `json:"enabled"`
	Cert    string `json:"cert"`
	Key     string `json:"key"`
	CA      string `json:"ca"`
}

// ServerSettings is the effective configuration of the editor's network server.
type ServerSettings struct {
	BindAddress string      `json:"bind_address"`
	HTTPPort    int         `json:"http_port"`
	WSPort      int         `json:"ws_port"`
	Token       string      `json:"token"`
	RequireAuth bool        `json:"require_auth"`
	TLS         TLSSettings `json:"tls"`
}

// HTTPAddr returns the host:port the HTTP listener binds to.
func (s ServerSettings) HTTPAddr() string {
	return net.JoinHostPort(s.BindAddress, strconv.Itoa(s.HTTPPort))
}

// WSAddr returns the host:port the WebSocket listener binds to.
func (s ServerSettings) WSAddr() string {
	return net.JoinHostPort(s.BindAddress, strconv.Itoa(s.WSPort))
}

// InspectorSettings configures the script debugger endpoint.
type InspectorSettings struct {
	Enabled      bool `json:"enabled"`
	Port         int  `json:"port"`
	BreakOnStart bool `json:"break_on_start"`
}

// Warning is a non-fatal problem found while resolving settings.
type Warning string

const (
	// WarnInsecureRemote is reported when the server listens on every
	// interface without an auth token.
	WarnInsecureRemote Warning = "server binds to all interfaces without a token; set server.token or pass --token=SECRET"

	// WarnIncompleteTLS is reported when TLS is enabled without both a
	// certificate and a key. TLS is then reported as disabled.
	WarnIncompleteTLS Warning = "TLS requires both server.tls.cert and server.tls.key; TLS disabled"
)

// section reads a mapping node under one lock acquisition. Missing or
// non-mapping sections yield a null Value whose fields all miss.
func (s *Store) section(path string) value.Value {
	v, ok := s.Get(path)
	if !ok || v.Kind() != value.KindMap {
		return value.Null()
	}
	return v
}

func fieldString(v value.Value, key, fallback string) string {
	if f, ok := v.Field(key); ok {
		if str, ok := f.AsString(); ok {
			return str
		}
	}
	return fallback
}

func fieldInt(v value.Value, key string, fallback int) int {
	if f, ok := v.Field(key); ok {
		if i, ok := f.AsInt(); ok && int64(int(i)) == i {
			return int(i)
		}
	}
	return fallback
}

func fieldBool(v value.Value, key string, fallback bool) bool {
	if f, ok := v.Field(key); ok {
		if b, ok := f.AsBool(); ok {
			return b
		}
	}
	return fallback
}

// Server resolves the server settings from the "server" section.
//
// Fields that are missing or hold a value of the wrong kind take their
// built-in default. The returned warnings describe insecure or incomplete
// settings and are not logged; reporting them is up to the caller. The tree
// itself is never modified.
func (s *Store) Server() (ServerSettings, []Warning) {
	srv := s.section("server")
	tls, _ := srv.Field("tls")

	settings := ServerSettings{
		BindAddress: fieldString(srv, "bind_address", "127.0.0.1"),
		HTTPPort:    fieldInt(srv, "http_port", 1881),
		WSPort:      fieldInt(srv, "ws_port", 1882),
		Token:       fieldString(srv, "token", ""),
		TLS: TLSSettings{
			Enabled: fieldBool(tls, "enabled", false),
			Cert:    fieldString(tls, "cert", ""),
			Key:     fieldString(tls, "key", ""),
			CA:      fieldString(tls, "ca", "NONE"),
		},
	}
	settings.RequireAuth = settings.Token != ""

	var warnings []Warning
	if (settings.BindAddress == "0.0.0.0" || settings.BindAddress == "::") && settings.Token == "" {
		warnings = append(warnings, WarnInsecureRemote)
	}
	if settings.TLS.Enabled && (settings.TLS.Cert == "" || settings.TLS.Key == "") {
		settings.TLS.Enabled = false
		warnings = append(warnings, WarnIncompleteTLS)
	}
	return settings, warnings
}

// Inspector resolves the debugger settings from the "inspector" section.
func (s *Store) Inspector() InspectorSettings {
	in := s.section("inspector")
	return InspectorSettings{
		Enabled:      fieldBool(in, "enabled", false),
		Port:         fieldInt(in, "port", 9229),
		BreakOnStart: fieldBool(in, "break_on_start", false),
	}
}
