package skippath

// SegmentKind identifies which kind of step a Segment represents.
type SegmentKind uint8

const (
	// SegRoot matches the entire input. Only valid as the first segment.
	SegRoot SegmentKind = iota
	// SegKey selects an object member by literal name.
	SegKey
	// SegIndex selects the i-th (0-based) element of an array.
	SegIndex
	// SegWildcard selects every member or element of the current container.
	SegWildcard
)

func (k SegmentKind) String() string {
	switch k {
	case SegRoot:
		return "root"
	case SegKey:
		return "key"
	case SegIndex:
		return "index"
	case SegWildcard:
		return "wildcard"
	default:
		return "unknown"
	}
}

// Segment is one step of a compiled [Path].
type Segment struct {
	Kind  SegmentKind
	Key   string // meaningful when Kind == SegKey
	Index int    // meaningful when Kind == SegIndex; negative values fail with UnsupportedJsonPath
}

// Root returns the Segment that matches the whole document.
func Root() Segment { return Segment{Kind: SegRoot} }

// Key returns a Segment that selects the object member named s.
func Key(s string) Segment { return Segment{Kind: SegKey, Key: s} }

// Index returns a Segment that selects the i-th array element.
func Index(i int) Segment { return Segment{Kind: SegIndex, Index: i} }

// Wildcard returns a Segment that selects every child of the current
// container.
func Wildcard() Segment { return Segment{Kind: SegWildcard} }

// Path is an ordered, compiled sequence of segments. A well-formed Path
// always starts with a Root segment.
type Path struct {
	Segments []Segment
	// Text is the original textual expression the Path was compiled from,
	// kept only for diagnostics (cache keys, error messages). It plays no
	// role in evaluation.
	Text string
}

// IsRootOnly reports whether p addresses the entire document.
func (p *Path) IsRootOnly() bool {
	return len(p.Segments) == 1 && p.Segments[0].Kind == SegRoot
}

// Match is one located sub-value: the half-open byte range [Offset,
// Offset+Length) into the buffer that was scanned.
type Match struct {
	Offset int
	Length int
}

// Slice returns the bytes m addresses within data. data must be the same
// buffer (or an identical copy) that produced m.
func (m Match) Slice(data []byte) []byte {
	return data[m.Offset : m.Offset+m.Length]
}
