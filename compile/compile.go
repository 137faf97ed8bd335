// Package compile turns a JSONPath expression string into a
// [skippath.Path] the core scanner can drive directly.
//
// Compile accepts only the restricted subset skippath's driver actually
// evaluates: dot and bracket key access, non-negative array indices, and
// the wildcard operator. Before building that restricted AST it first
// validates the expression against github.com/theory/jsonpath, a full
// RFC 9535 implementation, so a caller gets a clear "not RFC 9535 at all"
// diagnostic instead of a confusing restricted-subset parse error when
// they typo an expression, and so constructs this package intentionally
// rejects (slices, unions, filters, the descendant operator) are rejected
// for "unsupported", not "malformed".
package compile

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/theory/jsonpath"

	"github.com/dhawalhost/skippath"
)

// CompileError describes why expr could not be compiled.
type CompileError struct {
	Expr string
	Pos  int
	Msg  string
	Err  error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %q at %d: %s", e.Expr, e.Pos, e.Msg)
}

func (e *CompileError) Unwrap() error { return e.Err }

var cache sync.Map // string -> *skippath.Path

// Compile parses expr and returns the equivalent [skippath.Path],
// caching the result so repeated calls with the same expression (the
// common case for a long-running server evaluating the same handful of
// paths against every request body) skip re-parsing entirely.
func Compile(expr string) (*skippath.Path, error) {
	if cached, ok := cache.Load(expr); ok {
		return cached.(*skippath.Path), nil
	}
	if _, err := jsonpath.Parse(expr); err != nil {
		return nil, &CompileError{Expr: expr, Msg: err.Error()}
	}
	path, err := tokenize(expr)
	if err != nil {
		return nil, err
	}
	cache.Store(expr, path)
	return path, nil
}

func tokenize(expr string) (*skippath.Path, error) {
	if !strings.HasPrefix(expr, "$") {
		return nil, &CompileError{Expr: expr, Msg: "path must start with $"}
	}
	segs := []skippath.Segment{skippath.Root()}
	i := 1
	for i < len(expr) {
		switch expr[i] {
		case '.':
			if i+1 < len(expr) && expr[i+1] == '.' {
				return nil, &CompileError{Expr: expr, Pos: i, Msg: "descendant operator .. is not supported", Err: skippath.ErrUnsupportedJsonPath}
			}
			i++
			if i < len(expr) && expr[i] == '*' {
				segs = append(segs, skippath.Wildcard())
				i++
				continue
			}
			start := i
			for i < len(expr) && expr[i] != '.' && expr[i] != '[' {
				i++
			}
			if start == i {
				return nil, &CompileError{Expr: expr, Pos: start, Msg: "empty key segment"}
			}
			segs = append(segs, skippath.Key(expr[start:i]))
		case '[':
			end := strings.IndexByte(expr[i:], ']')
			if end < 0 {
				return nil, &CompileError{Expr: expr, Pos: i, Msg: "unterminated ["}
			}
			body := expr[i+1 : i+end]
			bracketPos := i
			i += end + 1
			seg, err := parseBracket(expr, bracketPos, body)
			if err != nil {
				return nil, err
			}
			segs = append(segs, seg)
		default:
			return nil, &CompileError{Expr: expr, Pos: i, Msg: fmt.Sprintf("unexpected character %q", expr[i])}
		}
	}
	return &skippath.Path{Segments: segs, Text: expr}, nil
}

func parseBracket(expr string, pos int, body string) (skippath.Segment, error) {
	if body == "*" {
		return skippath.Wildcard(), nil
	}
	if strings.ContainsAny(body, ":,?@") {
		return skippath.Segment{}, &CompileError{Expr: expr, Pos: pos, Msg: "slices, unions, and filters are not supported", Err: skippath.ErrUnsupportedJsonPath}
	}
	if n := len(body); n >= 2 && (body[0] == '\'' || body[0] == '"') && body[n-1] == body[0] {
		return skippath.Key(body[1 : n-1]), nil
	}
	idx, err := strconv.Atoi(body)
	if err != nil {
		return skippath.Segment{}, &CompileError{Expr: expr, Pos: pos, Msg: fmt.Sprintf("invalid bracket content %q", body)}
	}
	if idx < 0 {
		return skippath.Segment{}, &CompileError{Expr: expr, Pos: pos, Msg: "negative indices are not supported", Err: skippath.ErrUnsupportedJsonPath}
	}
	return skippath.Index(idx), nil
}

// Lookup compiles expr and evaluates it against data in one step, for
// callers working from a textual expression rather than a pre-compiled
// [skippath.Path], such as a one-off query against a config file, where
// paying Compile's cache lookup on every call costs nothing compared to
// the scan itself.
func Lookup(data []byte, expr string, opts ...skippath.Option) ([]skippath.Match, error) {
	path, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	return skippath.GetByPathOnDemand(data, path, opts...)
}

// LookupOne is Lookup for the common case of a path with no wildcard
// segment: it returns the single match, or an error if none was found.
func LookupOne(data []byte, expr string, opts ...skippath.Option) (skippath.Match, error) {
	path, err := Compile(expr)
	if err != nil {
		return skippath.Match{}, err
	}
	return skippath.GetByPath(data, path, opts...)
}
