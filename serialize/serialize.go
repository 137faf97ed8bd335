// Package serialize re-renders a domtree.Node's raw bytes, either
// compacted or indented, without re-parsing them into Go values first.
package serialize

import "github.com/dhawalhost/skippath/domtree"

// Pretty re-indents n's raw bytes using indent as the per-level unit.
func Pretty(n *domtree.Node, indent string) []byte {
	return reindent(n.Raw(), indent)
}

// Ugly strips every byte of insignificant whitespace from n's raw bytes.
func Ugly(n *domtree.Node) []byte {
	return compact(n.Raw())
}

func reindent(data []byte, indent string) []byte {
	out := make([]byte, 0, len(data)+len(data)/4)
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(data); i++ {
		b := data[i]

		if inString {
			out = append(out, b)
			switch {
			case escaped:
				escaped = false
			case b == '\\':
				escaped = true
			case b == '"':
				inString = false
			}
			continue
		}

		switch b {
		case '"':
			out = append(out, b)
			inString = true
		case '{', '[':
			out = append(out, b)
			depth++
			if i+1 < len(data) && isClosing(data[i+1]) {
				continue
			}
			out = appendNewlineIndent(out, indent, depth)
		case '}', ']':
			depth--
			out = trimTrailingWhitespace(out)
			if len(out) > 0 && out[len(out)-1] != '{' && out[len(out)-1] != '[' {
				out = appendNewlineIndent(out, indent, depth)
			}
			out = append(out, b)
		case ',':
			out = append(out, b)
			out = appendNewlineIndent(out, indent, depth)
		case ':':
			out = append(out, b, ' ')
		case ' ', '\t', '\n', '\r':
			// drop existing insignificant whitespace; it gets re-added above
		default:
			out = append(out, b)
		}
	}
	return out
}

func isClosing(b byte) bool { return b == '}' || b == ']' }

func appendNewlineIndent(out []byte, indent string, depth int) []byte {
	out = append(out, '\n')
	for i := 0; i < depth; i++ {
		out = append(out, indent...)
	}
	return out
}

// trimTrailingWhitespace removes a full trailing indent run, not just
// one byte, so a closing bracket lands at the right depth instead of
// stacking whitespace under the newline appendNewlineIndent just wrote.
func trimTrailingWhitespace(out []byte) []byte {
	j := len(out)
	for j > 0 {
		c := out[j-1]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			j--
			continue
		}
		break
	}
	return out[:j]
}

func compact(data []byte) []byte {
	out := make([]byte, 0, len(data))
	inString := false
	escaped := false
	for _, b := range data {
		if inString {
			out = append(out, b)
			switch {
			case escaped:
				escaped = false
			case b == '\\':
				escaped = true
			case b == '"':
				inString = false
			}
			continue
		}
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '"':
			inString = true
			out = append(out, b)
		default:
			out = append(out, b)
		}
	}
	return out
}
