package kasanetest

import (
	"reflect"
	"testing"

	"github.com/yacchi/kasane/format"
)

// FormatFixtures are documents written in the format under test.
type FormatFixtures struct {
	// Document must parse to Want. It should nest at least one mapping and
	// hold a string, an integer, a float, a boolean and a list.
	Document string
	Want     map[string]any

	// NonMapping is a well-formed document whose root is not a mapping.
	NonMapping string

	// Invalid is a malformed document.
	Invalid string

	// EmptyIsMapping is set for formats whose empty document is a valid
	// empty mapping (TOML). Otherwise empty input must be rejected.
	EmptyIsMapping bool
}

// FormatTester verifies format.ParseFunc implementations.
//
// Example:
//
//	func TestYAML_Compliance(t *testing.T) {
//	    kasanetest.NewFormatTester(t, yaml.Parse, kasanetest.FormatFixtures{
//	        Document:   "a:\n  b: 1\n",
//	        Want:       map[string]any{"a": map[string]any{"b": int64(1)}},
//	        NonMapping: "- 1\n",
//	        Invalid:    "a: [\n",
//	    }).TestAll()
//	}
type FormatTester struct {
	t        *testing.T
	parse    format.ParseFunc
	fixtures FormatFixtures
}

// NewFormatTester creates a FormatTester for parse.
func NewFormatTester(t *testing.T, parse format.ParseFunc, fixtures FormatFixtures) *FormatTester {
	return &FormatTester{t: t, parse: parse, fixtures: fixtures}
}

// TestAll runs all standard compliance tests for format parsers.
func (ft *FormatTester) TestAll() {
	ft.t.Run("EmptyInput", ft.testEmptyInput)
	ft.t.Run("Document", ft.testDocument)
	ft.t.Run("Canonical", ft.testCanonical)
	ft.t.Run("FreshResult", ft.testFreshResult)
	ft.t.Run("NonMapping", ft.testNonMapping)
	ft.t.Run("Invalid", ft.testInvalid)
}

// testEmptyInput verifies empty and whitespace-only input: an empty mapping
// when EmptyIsMapping is set, an error otherwise.
func (ft *FormatTester) testEmptyInput(t *testing.T) {
	for _, in := range []string{"", "  \n\t\n"} {
		got, err := ft.parse([]byte(in))
		if !ft.fixtures.EmptyIsMapping {
			check(t, err != nil, "Parse(%q) = %#v, want error", in, got)
			continue
		}
		requireNoError(t, err, "Parse(%q) error = %v", in, err)
		check(t, got != nil && len(got) == 0, "Parse(%q) = %#v, want empty mapping", in, got)
	}
}

// testDocument verifies the fixture document parses to the expected tree.
func (ft *FormatTester) testDocument(t *testing.T) {
	got, err := ft.parse([]byte(ft.fixtures.Document))
	requireNoError(t, err, "Parse() error = %v", err)
	check(t, reflect.DeepEqual(got, ft.fixtures.Want), "Parse() = %#v, want %#v", got, ft.fixtures.Want)
}

// testCanonical verifies every node uses the canonical Go representation.
func (ft *FormatTester) testCanonical(t *testing.T) {
	got, err := ft.parse([]byte(ft.fixtures.Document))
	requireNoError(t, err, "Parse() error = %v", err)
	p := nonCanonical(got, "$")
	check(t, p == "", "Parse() result is not canonical at %s", p)
}

// testFreshResult verifies two parses of the same input share no containers.
func (ft *FormatTester) testFreshResult(t *testing.T) {
	first, err := ft.parse([]byte(ft.fixtures.Document))
	requireNoError(t, err, "Parse() error = %v", err)
	for k := range first {
		first[k] = "mutated"
	}

	second, err := ft.parse([]byte(ft.fixtures.Document))
	requireNoError(t, err, "second Parse() error = %v", err)
	check(t, reflect.DeepEqual(second, ft.fixtures.Want), "second Parse() = %#v, result was aliased", second)
}

// testNonMapping verifies documents whose root is not a mapping are rejected.
func (ft *FormatTester) testNonMapping(t *testing.T) {
	if ft.fixtures.NonMapping == "" {
		t.Skip("format cannot express a non-mapping root")
	}
	got, err := ft.parse([]byte(ft.fixtures.NonMapping))
	check(t, err != nil, "Parse(%q) = %#v, want error", ft.fixtures.NonMapping, got)
}

// testInvalid verifies malformed documents are rejected.
func (ft *FormatTester) testInvalid(t *testing.T) {
	got, err := ft.parse([]byte(ft.fixtures.Invalid))
	check(t, err != nil, "Parse(%q) = %#v, want error", ft.fixtures.Invalid, got)
}
