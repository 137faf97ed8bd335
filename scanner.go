package skippath

// Scanner holds the mutable state of one pass over a byte buffer: the
// input, its logical length, the cursor, a sticky error, and a reusable
// key-unescape buffer. A Scanner is not safe for concurrent use; share
// the input buffer across goroutines, not the Scanner.
type Scanner struct {
	data   []byte
	n      int // logical length L; may be < len(data) when padded
	pos    int
	padded bool
	err    *Error
	kbuf   []byte
}

// NewScanner returns a Scanner over data using only the safe, bounds-
// checked primitives. Use this unless you have a specific reason to pad
// the buffer yourself.
func NewScanner(data []byte) *Scanner {
	return &Scanner{data: data, n: len(data)}
}

// NewPaddedScanner copies data into an internally padded buffer so the
// scanner's fast whitespace-skip path can read one word past the logical
// end without a bounds check. Prefer NewScanner unless profiling shows
// the copy pays for itself.
func NewPaddedScanner(data []byte) *Scanner {
	buf := make([]byte, len(data)+wordLength)
	copy(buf, data)
	return &Scanner{data: buf, n: len(data), padded: true}
}

// Reset rebinds s to a new input buffer and clears any sticky error,
// letting a caller reuse one Scanner (and its kbuf) across many calls
// instead of allocating a fresh one each time.
func (s *Scanner) Reset(data []byte) {
	s.data = data
	s.n = len(data)
	s.pos = 0
	s.padded = false
	s.err = nil
}

// Pos returns the scanner's current cursor position.
func (s *Scanner) Pos() int { return s.pos }

// Err returns the sticky error recorded by the scanner, or nil.
func (s *Scanner) Err() error {
	if s.err == nil {
		return nil
	}
	return s.err
}

func (s *Scanner) hasError() bool { return s.err != nil }

// setError records kind as the scanner's sticky error, unless one is
// already recorded. The first error wins and later calls are no-ops.
func (s *Scanner) setError(kind Kind) {
	if s.err != nil {
		return
	}
	s.err = &Error{Kind: kind, Offset: s.pos}
}

// safeBound is the length skipSpaceSafe and friends must clamp to.
func (s *Scanner) safeBound() []byte {
	if s.padded {
		return s.data[:s.n]
	}
	return s.data
}

// peek returns the next non-space byte without moving the cursor.
func (s *Scanner) peek() (byte, bool) {
	if s.hasError() {
		return 0, false
	}
	c, _, ok := skipSpaceSafe(s.safeBound(), s.pos)
	if !ok {
		s.setError(InvalidChar)
		return 0, false
	}
	return c, true
}

// advance skips whitespace and consumes the next byte, returning it.
func (s *Scanner) advance() (byte, bool) {
	if s.hasError() {
		return 0, false
	}
	var c byte
	var next int
	var ok bool
	if s.padded {
		c, next, ok = skipSpaceFast(s.data, s.pos)
	} else {
		c, next, ok = skipSpaceSafe(s.data, s.pos)
	}
	if !ok {
		s.setError(InvalidChar)
		return 0, false
	}
	s.pos = next
	return c, true
}

// consume advances past whitespace and requires the next byte to equal c.
func (s *Scanner) consume(c byte) bool {
	got, ok := s.advance()
	if !ok {
		return false
	}
	if got != c {
		s.setError(InvalidChar)
		return false
	}
	return true
}
