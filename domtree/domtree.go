// Package domtree offers a navigable Node view over a JSON document
// built entirely on the skip engine: a Node never holds more than the
// raw byte range of the value it represents, and descending into a
// child re-enters the scanner rather than walking an in-memory tree.
package domtree

import (
	"errors"
	"strconv"

	"github.com/dhawalhost/skippath"
)

// errTrailingGarbage is returned, wrapped in a ParseError, when Parse
// finds anything other than whitespace following the document's single
// top-level value.
var errTrailingGarbage = errors.New("trailing content after JSON value")

// Kind identifies a Node's JSON value type.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// ParseError reports why Parse, or a Node accessor, could not interpret
// its input as the kind it was asked for.
type ParseError struct {
	Kind Kind
	Err  error
}

func (e *ParseError) Error() string {
	return "domtree: " + e.Kind.String() + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// Node is a lazily-typed view over one JSON value's raw bytes.
type Node struct {
	raw  []byte
	kind Kind
}

// Parse validates that data holds exactly one well-formed JSON value,
// with nothing but whitespace trailing it, and returns a Node over that
// value. It does not recurse into the value; that happens lazily, the
// first time a caller asks for a child.
func Parse(data []byte) (*Node, error) {
	m, err := skippath.ScanValue(data)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	if !isAllWhitespace(data[m.Offset+m.Length:]) {
		return nil, &ParseError{Err: errTrailingGarbage}
	}
	return newNode(m.Slice(data)), nil
}

func isAllWhitespace(b []byte) bool {
	for _, c := range b {
		switch c {
		case ' ', '\t', '\n', '\r':
		default:
			return false
		}
	}
	return true
}

func newNode(raw []byte) *Node {
	return &Node{raw: raw, kind: classify(raw)}
}

func classify(raw []byte) Kind {
	if len(raw) == 0 {
		return KindNull
	}
	switch raw[0] {
	case '{':
		return KindObject
	case '[':
		return KindArray
	case '"':
		return KindString
	case 't', 'f':
		return KindBool
	case 'n':
		return KindNull
	default:
		return KindNumber
	}
}

// Kind reports n's JSON value type.
func (n *Node) Kind() Kind { return n.kind }

// Raw returns n's exact source bytes, unescaped and unparsed.
func (n *Node) Raw() []byte { return n.raw }

// IsNull reports whether n is the JSON literal null.
func (n *Node) IsNull() bool { return n.kind == KindNull }

// String decodes n as a JSON string, unescaping it.
func (n *Node) String() (string, error) {
	if n.kind != KindString {
		return "", &ParseError{Kind: KindString, Err: skippath.ErrMismatchType}
	}
	decoded, err := skippath.Unescape(n.raw[1 : len(n.raw)-1])
	if err != nil {
		return "", &ParseError{Kind: KindString, Err: err}
	}
	return string(decoded), nil
}

// Num decodes n as a JSON number.
func (n *Node) Num() (float64, error) {
	if n.kind != KindNumber {
		return 0, &ParseError{Kind: KindNumber, Err: skippath.ErrMismatchType}
	}
	v, err := strconv.ParseFloat(string(n.raw), 64)
	if err != nil {
		return 0, &ParseError{Kind: KindNumber, Err: err}
	}
	return v, nil
}

// Bool decodes n as a JSON boolean.
func (n *Node) Bool() (bool, error) {
	if n.kind != KindBool {
		return false, &ParseError{Kind: KindBool, Err: skippath.ErrMismatchType}
	}
	return n.raw[0] == 't', nil
}

// At returns the object member named key.
func (n *Node) At(key string) (*Node, error) {
	if n.kind != KindObject {
		return nil, &ParseError{Kind: KindObject, Err: skippath.ErrMismatchType}
	}
	path := &skippath.Path{Segments: []skippath.Segment{skippath.Root(), skippath.Key(key)}}
	m, err := skippath.GetByPath(n.raw, path)
	if err != nil {
		return nil, &ParseError{Kind: KindObject, Err: err}
	}
	return newNode(m.Slice(n.raw)), nil
}

// Index returns the i-th (0-based) array element.
func (n *Node) Index(i int) (*Node, error) {
	if n.kind != KindArray {
		return nil, &ParseError{Kind: KindArray, Err: skippath.ErrMismatchType}
	}
	path := &skippath.Path{Segments: []skippath.Segment{skippath.Root(), skippath.Index(i)}}
	m, err := skippath.GetByPath(n.raw, path)
	if err != nil {
		return nil, &ParseError{Kind: KindArray, Err: err}
	}
	return newNode(m.Slice(n.raw)), nil
}

// Array returns every element of n as a Node, in order.
func (n *Node) Array() ([]*Node, error) {
	if n.kind != KindArray {
		return nil, &ParseError{Kind: KindArray, Err: skippath.ErrMismatchType}
	}
	entries, _, err := skippath.Entries(n.raw)
	if err != nil {
		return nil, &ParseError{Kind: KindArray, Err: err}
	}
	out := make([]*Node, len(entries))
	for i, e := range entries {
		out[i] = newNode(e.Match.Slice(n.raw))
	}
	return out, nil
}

// Object returns every member of n as a key-to-Node map.
func (n *Node) Object() (map[string]*Node, error) {
	if n.kind != KindObject {
		return nil, &ParseError{Kind: KindObject, Err: skippath.ErrMismatchType}
	}
	entries, _, err := skippath.Entries(n.raw)
	if err != nil {
		return nil, &ParseError{Kind: KindObject, Err: err}
	}
	out := make(map[string]*Node, len(entries))
	for _, e := range entries {
		out[e.Key] = newNode(e.Match.Slice(n.raw))
	}
	return out, nil
}
