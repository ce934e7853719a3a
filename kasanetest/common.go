// Package kasanetest provides compliance testers for kasane extension points:
// configuration sources and format parsers.
package kasanetest

import (
	"fmt"
	"math"
)

// testT is the minimal testing interface used by kasanetest utilities.
type testT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
}

// require fails the test immediately if the condition is false.
func require(t testT, cond bool, format string, args ...any) {
	t.Helper()
	if !cond {
		t.Fatalf(format, args...)
	}
}

// requireNoError fails the test immediately if err is not nil.
func requireNoError(t testT, err error, format string, args ...any) {
	t.Helper()
	if err != nil {
		t.Fatalf(format, args...)
	}
}

// check reports an error if the condition is false, but continues the test.
func check(t testT, cond bool, format string, args ...any) {
	t.Helper()
	if !cond {
		t.Errorf(format, args...)
	}
}

// nonCanonical returns the path of the first node of v that is not in
// canonical form, or "" if the whole tree is canonical.
func nonCanonical(v any, path string) string {
	switch n := v.(type) {
	case nil, bool, int64, string:
		return ""
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return path
		}
		return ""
	case []any:
		for i, item := range n {
			if p := nonCanonical(item, fmt.Sprintf("%s[%d]", path, i)); p != "" {
				return p
			}
		}
		return ""
	case map[string]any:
		for k, item := range n {
			if p := nonCanonical(item, path+"."+k); p != "" {
				return p
			}
		}
		return ""
	}
	return fmt.Sprintf("%s (%T)", path, v)
}
