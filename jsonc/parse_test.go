package jsonc

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/tailscale/hujson"
	"pgregory.net/rapid"

	"github.com/yacchi/kasane/value"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want map[string]any
	}{
		{"empty object", "{}", map[string]any{}},
		{
			"comment removal",
			"{\"a\": 1 /* c */, \"b\": 2 // trailing\n}",
			map[string]any{"a": int64(1), "b": int64(2)},
		},
		{
			"numbers",
			`{"i": 1881, "f": 0.5, "e": 1e2, "n": -4}`,
			map[string]any{"i": int64(1881), "f": 0.5, "e": float64(100), "n": int64(-4)},
		},
		{
			"nested",
			`{"server": {"tls": {"enabled": true, "ca": "NONE"}}, "l": [1, "x", null]}`,
			map[string]any{
				"server": map[string]any{"tls": map[string]any{"enabled": true, "ca": "NONE"}},
				"l":      []any{int64(1), "x", nil},
			},
		},
		{"string with comment markers", `{"url": "http://x/*y*/"}`, map[string]any{"url": "http://x/*y*/"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.in))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParse_NotObject(t *testing.T) {
	tests := []struct {
		in   string
		kind string
	}{
		{`[1, 2]`, "array"},
		{`"str"`, "string"},
		{`42`, "number"},
		{`true // c`, "boolean"},
		{`null`, "null"},
		{`/* x */ null`, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			var noe *NotObjectError
			if !errors.As(err, &noe) {
				t.Fatalf("Parse() error = %v, want NotObjectError", err)
			}
			if noe.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", noe.Kind, tt.kind)
			}
		})
	}
}

func TestParse_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"missing brace", `{"a": 1`},
		{"unterminated string", `{"a": "open}`},
		{"trailing comma", `{"a": 1,}`},
		{"bare word", `{"a": yes}`},
		{"trailing data", `{"a": 1} {"b": 2}`},
		{"empty input", ""},
		{"whitespace only", " \n\t"},
		{"comments only", "// nothing\n/* here */"},
		{"invalid utf-8 in string", "{\"a\": \"\xff\"}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("Parse(%q) error = %v, want SyntaxError", tt.in, err)
			}
			if se.Error() == "" {
				t.Error("SyntaxError.Error() is empty")
			}
		})
	}
}

func TestParse_InvalidUTF8Offset(t *testing.T) {
	_, err := Parse([]byte("{\"a\": /* \xfe */ \"x\xffy\"}"))
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("Parse() error = %v, want SyntaxError", err)
	}
	// The comment is stripped first, so the offset points into the string.
	if se.Offset != 9 {
		t.Errorf("Offset = %d, want 9", se.Offset)
	}
}

func TestParse_ValidUTF8(t *testing.T) {
	got, err := Parse([]byte(`{"locale": "türkçe", "emoji": "\u00e7"} // yorum ğ`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got["locale"] != "türkçe" || got["emoji"] != "ç" {
		t.Errorf("Parse() = %#v", got)
	}
}

// commentedDocument draws a flat object and renders it with comments
// between every token.
func commentedDocument(t *rapid.T) (string, map[string]any) {
	comment := func(label string) string {
		switch rapid.IntRange(0, 2).Draw(t, label) {
		case 1:
			return "/*" + rapid.StringMatching(`[a-z "/]{0,8}`).Draw(t, label+"-block") + "*/"
		case 2:
			return "//" + rapid.StringMatching(`[a-z "/*]{0,8}`).Draw(t, label+"-line") + "\n"
		}
		return " "
	}

	want := map[string]any{}
	var sb strings.Builder
	sb.WriteString(comment("open"))
	sb.WriteString("{")

	n := rapid.IntRange(0, 5).Draw(t, "n")
	first := true
	for i := 0; i < n; i++ {
		key := rapid.StringMatching(`[a-z/*"\\]{1,6}`).Draw(t, "key")
		if _, dup := want[key]; dup {
			continue
		}

		var v any
		if rapid.Bool().Draw(t, "isString") {
			v = rapid.StringMatching(`[a-z/*"\\ ]{0,12}`).Draw(t, "str")
		} else {
			v = rapid.Int64Range(-1<<40, 1<<40).Draw(t, "int")
		}
		want[key] = v

		k, _ := json.Marshal(key)
		val, _ := json.Marshal(v)
		if !first {
			sb.WriteString(",")
		}
		first = false
		sb.WriteString(comment("k"))
		sb.Write(k)
		sb.WriteString(comment("colon"))
		sb.WriteString(":")
		sb.WriteString(comment("v"))
		sb.Write(val)
		sb.WriteString(comment("after"))
	}
	sb.WriteString("}")
	sb.WriteString(comment("close"))

	return sb.String(), want
}

func TestParse_CommentedDocuments(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		doc, want := commentedDocument(t)

		got, err := Parse([]byte(doc))
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", doc, err)
		}
		canonical, err := value.CanonicalizeMap(want)
		if err != nil {
			t.Fatalf("CanonicalizeMap() error = %v", err)
		}
		if !reflect.DeepEqual(got, canonical) {
			t.Fatalf("Parse(%q) = %#v, want %#v", doc, got, canonical)
		}
	})
}

// hujson replaces comments with whitespace instead of removing them; decoding
// both outputs must give the same tree.
func TestParse_MatchesHuJSON(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		doc, _ := commentedDocument(t)

		standard, err := hujson.Standardize([]byte(doc))
		if err != nil {
			t.Fatalf("hujson.Standardize(%q) error = %v", doc, err)
		}
		var oracle map[string]any
		dec := json.NewDecoder(strings.NewReader(string(standard)))
		dec.UseNumber()
		if err := dec.Decode(&oracle); err != nil {
			t.Fatalf("decode standardized %q: %v", standard, err)
		}
		want, err := value.CanonicalizeMap(oracle)
		if err != nil {
			t.Fatalf("CanonicalizeMap() error = %v", err)
		}

		got, err := Parse([]byte(doc))
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", doc, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Parse(%q) = %#v, hujson = %#v", doc, got, want)
		}
	})
}
