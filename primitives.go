package skippath

import "math/bits"

// This file implements word-at-a-time byte classification: 8-byte lanes
// classified with the classic SWAR (SIMD-within-a-register) bit tricks,
// instead of real platform SIMD. See DESIGN.md for why no amd64/arm64
// assembly backend ships here. Every routine below follows the same
// block-processing shape: bulk-classify a lane, then extract the answer
// with a bit scan, falling back to loading a zero-padded partial lane only
// at the very end of the buffer.

const (
	oddBits    = 0xAAAAAAAAAAAAAAAA
	loBit      = 0x0101010101010101
	hiBit      = 0x8080808080808080
	wordLength = 8
)

// loadWord reads up to 8 bytes from buf starting at pos into the low bytes
// of a little-endian uint64, zero-filling any bytes past len(buf). n is the
// number of real bytes read (8 unless buf runs out first).
func loadWord(buf []byte, pos int) (word uint64, n int) {
	remaining := len(buf) - pos
	if remaining >= wordLength {
		b := buf[pos : pos+wordLength]
		return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
			uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56, wordLength
	}
	if remaining <= 0 {
		return 0, 0
	}
	var b [wordLength]byte
	copy(b[:], buf[pos:])
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56, remaining
}

// eqMask returns a mask with 0x80 set in every byte lane of word that
// equals c, using the standard branch-free "haszero" trick applied to
// word^broadcast(c).
func eqMask(word uint64, c byte) uint64 {
	bc := uint64(c) * loBit
	x := word ^ bc
	return (x - loBit) &^ x & hiBit
}

// anyMaskOf ORs together eqMask for every byte in set (set must have at
// most 8 members).
func anyMaskOf(word uint64, set []byte) uint64 {
	var m uint64
	for _, c := range set {
		m |= eqMask(word, c)
	}
	return m
}

// firstSetLane returns the byte index (0..7) of the lowest set 0x80 lane in
// mask, or -1 if mask is zero.
func firstSetLane(mask uint64) int {
	if mask == 0 {
		return -1
	}
	return bits.TrailingZeros64(mask) / 8
}

// laneBit returns the single-lane mask (0x80 in lane i, zero elsewhere).
func laneBit(i int) uint64 {
	return uint64(0x80) << (uint(i) * 8)
}

// laneMaskFor returns a mask with 0x80 set in the low n lanes, used to
// ignore zero-filled tail bytes beyond the real data when n < wordLength.
func laneMaskFor(n int) uint64 {
	if n >= wordLength {
		return hiBit
	}
	return hiBit >> ((wordLength - n) * 8)
}

// getEscaped computes which bytes are the second byte of a \x escape.
// Given the backslash-byte mask of the current lane and a carry bit from the
// previous lane (1 if the lane boundary split an escape sequence), it
// returns the mask of bytes that are themselves the second byte of a \x
// escape, and updates the carry for the next lane.
func getEscaped(backslash uint64, prevEscaped *uint64) uint64 {
	// The carry trick needs one bit per byte, so gather the 0x80 lane bits
	// into the low 8 bits first and spread the result back out afterwards.
	var bs uint64
	for i := 0; i < wordLength; i++ {
		if backslash&laneBit(i) != 0 {
			bs |= 1 << uint(i)
		}
	}
	withPrevBackslash := bs &^ *prevEscaped
	escaped := (((withPrevBackslash << 1) | oddBits) - withPrevBackslash) ^ oddBits
	escapedWithPrev := escaped ^ (bs | *prevEscaped)
	*prevEscaped = (escaped & bs) >> (wordLength - 1) & 1
	var out uint64
	for i := 0; i < wordLength; i++ {
		if escapedWithPrev&(1<<uint(i)) != 0 {
			out |= laneBit(i)
		}
	}
	return out
}

var spaceBytes = [4]byte{' ', '\t', '\n', '\r'}

// skipSpaceSafe advances pos past any run of {space, tab, LF, CR},
// clamping at len(data). It returns the first non-space byte found and the
// position one past it, or ok=false if data is exhausted without finding a
// non-space byte.
func skipSpaceSafe(data []byte, pos int) (c byte, next int, ok bool) {
	for {
		word, n := loadWord(data, pos)
		if n == 0 {
			return 0, pos, false
		}
		notWs := (^anyMaskOf(word, spaceBytes[:])) & laneMaskFor(n)
		if notWs != 0 {
			lane := firstSetLane(notWs)
			return data[pos+lane], pos + lane + 1, true
		}
		if n < wordLength {
			return 0, pos + n, false
		}
		pos += wordLength
	}
}

// skipSpaceFast is the unsafe-padding counterpart of skipSpaceSafe: it
// assumes data is padded by at least one wordLength block of non-matching
// bytes past the caller's logical length, so it never needs the partial-
// lane bookkeeping skipSpaceSafe does. Callers that cannot guarantee
// padding must use skipSpaceSafe.
func skipSpaceFast(data []byte, pos int) (c byte, next int, ok bool) {
	for {
		if pos+wordLength > len(data) {
			return skipSpaceSafe(data, pos)
		}
		b := data[pos : pos+wordLength]
		word := uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
			uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
		notWs := (^anyMaskOf(word, spaceBytes[:])) & hiBit
		if notWs != 0 {
			lane := firstSetLane(notWs)
			return data[pos+lane], pos + lane + 1, true
		}
		pos += wordLength
	}
}

// getNextToken advances pos to the first byte in stopSet (at most 8
// members), passing over every other byte, whitespace or not. On return the found byte sits at
// data[pos-1].
func getNextToken(data []byte, pos int, stopSet []byte) (c byte, next int, ok bool) {
	for {
		word, n := loadWord(data, pos)
		if n == 0 {
			return 0, pos, false
		}
		mask := anyMaskOf(word, stopSet) & laneMaskFor(n)
		if mask != 0 {
			lane := firstSetLane(mask)
			return data[pos+lane], pos + lane + 1, true
		}
		if n < wordLength {
			return 0, pos + n, false
		}
		pos += wordLength
	}
}

// skipStringStatus is the status code skipString returns.
type skipStringStatus int

const (
	stringMalformed skipStringStatus = 0
	stringClean     skipStringStatus = 1
	stringEscaped   skipStringStatus = 2
)

// skipString advances pos past the closing quote of a JSON string.
// Precondition: data[pos-1] == '"'. It returns a status distinguishing an
// unterminated/invalid string (0) from a clean string with no escapes (1)
// from a string containing at least one escape (2); the distinction lets
// matchKey skip the unescape step entirely on the common, escape-free key.
func skipString(data []byte, pos int) (status skipStringStatus, next int) {
	var prevEscaped uint64
	sawEscape := false
	for {
		word, n := loadWord(data, pos)
		if n == 0 {
			return stringMalformed, pos
		}
		lanes := laneMaskFor(n)
		quoteMask := eqMask(word, '"') & lanes
		backslashMask := eqMask(word, '\\') & lanes
		escapedMask := getEscaped(backslashMask, &prevEscaped) & lanes
		if backslashMask != 0 {
			sawEscape = true
		}
		realQuote := quoteMask &^ escapedMask
		if realQuote != 0 {
			lane := firstSetLane(realQuote)
			if sawEscape {
				return stringEscaped, pos + lane + 1
			}
			return stringClean, pos + lane + 1
		}
		if n < wordLength {
			return stringMalformed, pos + n
		}
		pos += wordLength
	}
}

// literalSpellings maps the first byte of a JSON literal to its full
// spelling.
var literalSpellings = map[byte]string{
	't': "true",
	'f': "false",
	'n': "null",
}

// skipLiteral advances pos past exactly one of true/false/null.
// Precondition: data[pos-1] == first and first is 't', 'f', or 'n'.
func skipLiteral(data []byte, pos int, first byte) (next int, ok bool) {
	word, ok2 := literalSpellings[first]
	if !ok2 {
		return pos, false
	}
	start := pos - 1
	if start+len(word) > len(data) {
		return pos, false
	}
	if string(data[start:start+len(word)]) != word {
		return pos, false
	}
	return start + len(word), true
}

// skipContainer advances pos past the matching close byte for open,
// respecting nesting and treating braces/brackets inside strings as
// ordinary characters. Precondition: data[pos-1] == open.
func skipContainer(data []byte, pos int, open, close byte) (next int, ok bool) {
	depth := 1
	inString := false
	var prevEscaped uint64
	for {
		word, n := loadWord(data, pos)
		if n == 0 {
			return pos, false
		}
		lanes := laneMaskFor(n)
		quoteMask := eqMask(word, '"') & lanes
		backslashMask := eqMask(word, '\\') & lanes
		escapedMask := getEscaped(backslashMask, &prevEscaped) & lanes
		realQuote := quoteMask &^ escapedMask

		if realQuote == 0 && !inString {
			// No string activity anywhere in this lane: every open/close
			// byte here is unambiguously structural, so resolve the whole
			// lane in bulk instead of per byte.
			combined := (eqMask(word, open) | eqMask(word, close)) & lanes
			closed := false
			closeAt := 0
			for combined != 0 {
				lane := firstSetLane(combined)
				if data[pos+lane] == open {
					depth++
				} else {
					depth--
					if depth == 0 {
						closed = true
						closeAt = lane
						break
					}
				}
				combined &^= laneBit(lane)
			}
			if closed {
				return pos + closeAt + 1, true
			}
			if n < wordLength {
				return pos + n, false
			}
			pos += wordLength
			continue
		}

		// This lane has at least one quote transition (or we are already
		// inside a string): walk it byte by byte so string contents never
		// get mistaken for structural nesting.
		for i := 0; i < n; i++ {
			b := data[pos+i]
			if inString {
				if b == '"' && realQuote&laneBit(i) != 0 {
					inString = false
				}
				continue
			}
			switch b {
			case '"':
				inString = true
			case open:
				depth++
			case close:
				depth--
				if depth == 0 {
					return pos + i + 1, true
				}
			}
		}
		if n < wordLength {
			return pos + n, false
		}
		pos += wordLength
	}
}
