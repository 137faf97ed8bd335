package skippath

// This file implements the path driver: walking a compiled [Path]'s
// segments against a Scanner, descending into objects and arrays without
// ever materializing a parse tree.

// evalPath is the driver's recursive core. segs[i:] are the remaining
// segments to satisfy; the scanner's cursor must already sit just before
// the first byte of the value those segments apply to (whitespace not yet
// skipped). On reaching the end of segs it skips exactly one value and
// records it as a match.
func (s *Scanner) evalPath(segs []Segment, i int, out *[]Match) {
	if s.hasError() {
		return
	}
	if i == len(segs) {
		start, ok := s.skipOne()
		if !ok {
			return
		}
		*out = append(*out, Match{Offset: start, Length: s.pos - start})
		return
	}
	switch segs[i].Kind {
	case SegKey:
		s.evalKey(segs, i, out)
	case SegIndex:
		s.evalIndex(segs, i, out)
	case SegWildcard:
		s.evalWildcard(segs, i, out)
	default:
		s.setError(UnsupportedJsonPath)
	}
}

func (s *Scanner) evalKey(segs []Segment, i int, out *[]Match) {
	c, ok := s.advance()
	if !ok {
		return
	}
	if c != '{' {
		s.setError(MismatchType)
		return
	}
	if !s.advanceKey(segs[i].Key) {
		return
	}
	s.evalPath(segs, i+1, out)
}

func (s *Scanner) evalIndex(segs []Segment, i int, out *[]Match) {
	c, ok := s.advance()
	if !ok {
		return
	}
	if c != '[' {
		s.setError(MismatchType)
		return
	}
	if segs[i].Index < 0 {
		s.setError(UnsupportedJsonPath)
		return
	}
	if !s.advanceIndex(segs[i].Index) {
		return
	}
	s.evalPath(segs, i+1, out)
}

// advanceKey walks an object's members looking for key, leaving the
// cursor just before the matched member's value on success. Precondition:
// the caller already consumed the object's opening '{'.
func (s *Scanner) advanceKey(key string) bool {
	c, ok := s.advance()
	if !ok {
		return false
	}
	for {
		if c == '}' {
			s.setError(UnknownObjKey)
			return false
		}
		if c != '"' {
			s.setError(InvalidChar)
			return false
		}
		matched := s.matchKey(key)
		if s.hasError() {
			return false
		}
		if !s.consume(':') {
			return false
		}
		if matched {
			return true
		}
		if _, ok := s.skipOne(); !ok {
			return false
		}
		c, ok = s.advance()
		if !ok {
			return false
		}
		if c == '}' {
			s.setError(UnknownObjKey)
			return false
		}
		if c != ',' {
			s.setError(InvalidChar)
			return false
		}
		c, ok = s.advance()
		if !ok {
			return false
		}
	}
}

// evalWildcard dispatches on the current container's kind. A wildcard
// fans out over every member or element and applies the remaining
// segments to each independently, collecting every branch that matches
// instead of stopping at the first.
func (s *Scanner) evalWildcard(segs []Segment, i int, out *[]Match) {
	c, ok := s.advance()
	if !ok {
		return
	}
	switch c {
	case '{':
		s.wildcardObject(segs, i, out)
	case '[':
		s.wildcardArray(segs, i, out)
	default:
		s.setError(UnmatchedTypeInJsonPath)
	}
}

func (s *Scanner) wildcardObject(segs []Segment, i int, out *[]Match) {
	c, ok := s.advance()
	if !ok {
		return
	}
	if c == '}' {
		return
	}
	for {
		if c != '"' {
			s.setError(InvalidChar)
			return
		}
		status, next := skipString(s.data, s.pos)
		if status == stringMalformed {
			s.setError(InvalidChar)
			return
		}
		s.pos = next
		if !s.consume(':') {
			return
		}
		if !s.evalChildSlice(segs, i+1, out) {
			return
		}
		c, ok = s.advance()
		if !ok {
			return
		}
		if c == '}' {
			return
		}
		if c != ',' {
			s.setError(InvalidChar)
			return
		}
		c, ok = s.advance()
		if !ok {
			return
		}
	}
}

func (s *Scanner) wildcardArray(segs []Segment, i int, out *[]Match) {
	c, ok := s.advance()
	if !ok {
		return
	}
	if c == ']' {
		return
	}
	s.pos-- // back up onto the first element's leading byte
	for {
		if !s.evalChildSlice(segs, i+1, out) {
			return
		}
		c, ok = s.advance()
		if !ok {
			return
		}
		if c == ']' {
			return
		}
		if c != ',' {
			s.setError(InvalidChar)
			return
		}
	}
}

// evalChildSlice fully skips the value sitting at the cursor, then, if
// there are remaining segments, evaluates them against that value in
// isolation, using a fresh Scanner bounded to exactly that value's bytes.
// A sibling failing the remaining segments (a key it lacks, an index it is
// too short for) is fatal for the whole wildcard, the same as any other
// scan error: the sub-scanner's error is recorded on s, with its offset
// rebased into s's coordinates, and evalChildSlice returns false so the
// caller stops fanning out immediately. It also returns false when
// skipping the value itself failed.
func (s *Scanner) evalChildSlice(segs []Segment, i int, out *[]Match) bool {
	valStart, ok := s.skipOne()
	if !ok {
		return false
	}
	valEnd := s.pos
	if i == len(segs) {
		*out = append(*out, Match{Offset: valStart, Length: valEnd - valStart})
		return true
	}
	sub := NewScanner(s.data[valStart:valEnd])
	var subOut []Match
	sub.evalPath(segs, i, &subOut)
	if err := sub.Err(); err != nil {
		kind := None
		if e, ok := err.(*Error); ok {
			kind = e.Kind
		}
		s.err = &Error{Kind: kind, Offset: valStart + sub.Pos()}
		return false
	}
	for _, m := range subOut {
		*out = append(*out, Match{Offset: valStart + m.Offset, Length: m.Length})
	}
	return true
}
