package jsonc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/yacchi/kasane/value"
)

// NotObjectError is returned when a document's top-level value is not an object.
type NotObjectError struct {
	Kind string
}

func (e *NotObjectError) Error() string {
	return fmt.Sprintf("root must be an object, got %s", e.Kind)
}

// SyntaxError reports malformed JSON after comments were removed.
// Offset is a byte offset into the normalized text.
type SyntaxError struct {
	Offset int64
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %v", e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Parse normalizes data and decodes it as a JSON object.
//
// The top-level value must be an object: a top-level null or any other
// value returns *NotObjectError, and empty or comment-only input returns
// *SyntaxError. Text that is not valid UTF-8 is rejected rather than
// replaced. Numbers without fraction or exponent become int64 when they fit;
// see value.Canonicalize for the full mapping.
func Parse(data []byte) (map[string]any, error) {
	normalized := Normalize(data)
	if off := invalidUTF8(normalized); off >= 0 {
		return nil, &SyntaxError{Offset: int64(off), Err: errors.New("invalid UTF-8")}
	}

	dec := json.NewDecoder(bytes.NewReader(normalized))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, wrapSyntax(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &SyntaxError{
			Offset: dec.InputOffset(),
			Err:    errors.New("unexpected data after top-level value"),
		}
	}

	obj, ok := root.(map[string]any)
	if !ok {
		return nil, &NotObjectError{Kind: kindOf(root)}
	}

	return value.CanonicalizeMap(obj)
}

// invalidUTF8 returns the offset of the first invalid UTF-8 sequence, or -1.
func invalidUTF8(b []byte) int {
	if utf8.Valid(b) {
		return -1
	}
	for off := 0; off < len(b); {
		r, size := utf8.DecodeRune(b[off:])
		if r == utf8.RuneError && size == 1 {
			return off
		}
		off += size
	}
	return -1
}

func wrapSyntax(err error) error {
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return &SyntaxError{Offset: se.Offset, Err: err}
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return &SyntaxError{Err: io.ErrUnexpectedEOF}
	}
	return fmt.Errorf("failed to parse JSONC: %w", err)
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	}
	return fmt.Sprintf("%T", v)
}
