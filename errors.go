package skippath

import "fmt"

// Kind is one of the stable, named scanner error codes. Kind values are
// comparable and suitable for errors.Is against the sentinel errors below.
type Kind uint8

const (
	// None indicates success; Error values never carry this Kind.
	None Kind = iota
	// InvalidChar means a byte violated the JSON grammar at the current
	// position.
	InvalidChar
	// UnknownObjKey means an object was exhausted without finding the
	// requested key.
	UnknownObjKey
	// ArrayIndexOutOfRange means the array had fewer elements than the
	// requested index + 1.
	ArrayIndexOutOfRange
	// MismatchType means the current value was not the container kind a
	// Key or Index segment required.
	MismatchType
	// UnmatchedTypeInJsonPath is MismatchType raised from the wildcard or
	// recursive path-driver branches.
	UnmatchedTypeInJsonPath
	// UnsupportedJsonPath means the path used a negative index, slice,
	// filter, or descendant operator, none of which this engine supports.
	UnsupportedJsonPath
	// InvalidEscape means a malformed \x or \uXXXX sequence was found
	// while unescaping an object key.
	InvalidEscape
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case InvalidChar:
		return "invalid character"
	case UnknownObjKey:
		return "unknown object key"
	case ArrayIndexOutOfRange:
		return "array index out of range"
	case MismatchType:
		return "mismatched type"
	case UnmatchedTypeInJsonPath:
		return "unmatched type in json path"
	case UnsupportedJsonPath:
		return "unsupported json path"
	case InvalidEscape:
		return "invalid escape sequence"
	default:
		return "unknown error"
	}
}

// Error is the error type every scanner operation returns. The first error
// recorded by a Scanner is sticky: every subsequent operation on that
// Scanner returns the same Error without advancing the cursor.
type Error struct {
	Kind Kind
	// Offset is the cursor position at the time the error was recorded.
	Offset int
}

func (e *Error) Error() string {
	return fmt.Sprintf("skippath: %s at offset %d", e.Kind, e.Offset)
}

// Is supports errors.Is against the sentinel errors below: it reports
// whether target is a sentinel for the same Kind.
func (e *Error) Is(target error) bool {
	sentinel, ok := target.(*sentinelError)
	return ok && sentinel.kind == e.Kind
}

type sentinelError struct{ kind Kind }

func (s *sentinelError) Error() string { return s.kind.String() }

// Sentinel errors usable with errors.Is(err, skippath.ErrUnknownObjKey) and
// friends, without needing the offset an *Error carries.
var (
	ErrInvalidChar             = &sentinelError{InvalidChar}
	ErrUnknownObjKey           = &sentinelError{UnknownObjKey}
	ErrArrayIndexOutOfRange    = &sentinelError{ArrayIndexOutOfRange}
	ErrMismatchType            = &sentinelError{MismatchType}
	ErrUnmatchedTypeInJsonPath = &sentinelError{UnmatchedTypeInJsonPath}
	ErrUnsupportedJsonPath     = &sentinelError{UnsupportedJsonPath}
	ErrInvalidEscape           = &sentinelError{InvalidEscape}
)
