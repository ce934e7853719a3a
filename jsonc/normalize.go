// Package jsonc turns JSON with comments into strict JSON.
//
// The accepted dialect is the JSON grammar plus "//" line comments and
// "/* */" block comments outside string literals. Normalize removes the
// comments and leaves every other byte, including all string literal content,
// exactly as it was. Parse normalizes and decodes a configuration document.
package jsonc

// Normalize removes comments from src and returns strict JSON text.
//
// The scan keeps a single piece of state: whether it is inside a string
// literal. Inside a literal every byte is copied, and a backslash is copied
// together with the byte following it so that an escaped quote never ends the
// literal. Outside a literal, "//" drops everything up to (not including) the
// next newline and "/*" drops everything through the matching "*/" or to the
// end of input. A "/" at the very end of input is kept.
//
// Normalize never fails: an unterminated string is copied as is and left for
// the JSON decoder to reject. The output is never longer than the input, and
// normalizing twice gives the same result as normalizing once.
func Normalize(src []byte) []byte {
	out := make([]byte, 0, len(src))
	n := len(src)

	for i := 0; i < n; {
		c := src[i]
		switch {
		case c == '"':
			out = append(out, c)
			i++
			for i < n && src[i] != '"' {
				if src[i] == '\\' && i+1 < n {
					out = append(out, src[i], src[i+1])
					i += 2
					continue
				}
				out = append(out, src[i])
				i++
			}
			if i < n {
				out = append(out, '"')
				i++
			}

		case c == '/' && i+1 < n && src[i+1] == '/':
			for i < n && src[i] != '\n' {
				i++
			}

		case c == '/' && i+1 < n && src[i+1] == '*':
			i += 2
			for i+1 < n && !(src[i] == '*' && src[i+1] == '/') {
				i++
			}
			if i+1 < n {
				i += 2
			} else {
				i = n
			}

		default:
			out = append(out, c)
			i++
		}
	}

	return out
}

// NormalizeString is Normalize for strings.
func NormalizeString(src string) string {
	return string(Normalize([]byte(src)))
}
