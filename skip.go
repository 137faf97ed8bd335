package skippath

// This file implements the value skipper: advancing past exactly one
// JSON value of any kind.

var numberStopSet = []byte{']', '}', ','}

// skipOne skips exactly one JSON value starting at the scanner's current
// position (after whitespace) and returns the offset of its first byte.
// On failure it records an error and returns (0, false).
func (s *Scanner) skipOne() (start int, ok bool) {
	c, ok := s.advance()
	if !ok {
		return 0, false
	}
	start = s.pos - 1

	switch {
	case c == '"':
		status, next := skipString(s.data, s.pos)
		s.pos = next
		if status == stringMalformed {
			s.setError(InvalidChar)
			return 0, false
		}
	case c == '{':
		next, done := skipContainer(s.data, s.pos, '{', '}')
		s.pos = next
		if !done {
			s.setError(InvalidChar)
			return 0, false
		}
	case c == '[':
		next, done := skipContainer(s.data, s.pos, '[', ']')
		s.pos = next
		if !done {
			s.setError(InvalidChar)
			return 0, false
		}
	case c == 't' || c == 'f' || c == 'n':
		next, done := skipLiteral(s.data, s.pos, c)
		s.pos = next
		if !done {
			s.setError(InvalidChar)
			return 0, false
		}
	case isDigitOrMinus(c):
		s.skipNumber()
	default:
		s.setError(InvalidChar)
		return 0, false
	}
	return start, true
}

// skipNumber advances to the next delimiter in {']', '}', ','} without
// validating the number's well-formedness. The lenient extraction accepts
// any maximal run up to the next top-level delimiter, leaving real
// validation to a downstream parser.
func (s *Scanner) skipNumber() {
	_, next, ok := getNextToken(s.data, s.pos, numberStopSet)
	if !ok {
		// Number runs to EOF with no trailing delimiter (e.g. a bare
		// number as the entire input): that is a valid terminal state,
		// not an error. Advance to the logical end of the input,
		// ignoring any trailing padding bytes.
		s.pos = s.n
		return
	}
	// getNextToken leaves pos one past the delimiter; back up so the
	// delimiter itself is not consumed as part of the number.
	s.pos = next - 1
}

func isDigitOrMinus(c byte) bool {
	return c == '-' || (c >= '0' && c <= '9')
}
