package skippath

import (
	"errors"
	"testing"
)

// End-to-end scenarios exercising the public API against realistic
// documents, mirroring the scenario table this engine's behavior is
// specified against.

func TestEndToEnd_NestedObjectChain(t *testing.T) {
	data := []byte(`{
		"user": {"id": 7, "name": "Ada", "roles": ["admin", "ops"]},
		"active": true
	}`)
	m, err := GetByPath(data, pathOf(Root(), Key("user"), Key("roles"), Index(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(m.Slice(data)) != `"ops"` {
		t.Errorf("got %q", m.Slice(data))
	}
}

func TestEndToEnd_ArrayOfObjects(t *testing.T) {
	data := []byte(`[{"id":1,"tags":["a","b"]},{"id":2,"tags":["c"]}]`)
	m, err := GetByPath(data, pathOf(Root(), Index(1), Key("tags"), Index(0)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(m.Slice(data)) != `"c"` {
		t.Errorf("got %q", m.Slice(data))
	}
}

func TestEndToEnd_EscapedKeyLookup(t *testing.T) {
	data := []byte(`{"key with \"quotes\" and \\slash": 99}`)
	m, err := GetByPath(data, pathOf(Root(), Key(`key with "quotes" and \slash`)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(m.Slice(data)) != "99" {
		t.Errorf("got %q", m.Slice(data))
	}
}

func TestEndToEnd_WildcardThenIndex(t *testing.T) {
	data := []byte(`{"a":[1,2],"b":[3,4],"c":[5]}`)
	matches, err := GetByPathOnDemand(data, pathOf(Root(), Wildcard(), Index(0)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"1", "3", "5"}
	if len(matches) != len(want) {
		t.Fatalf("got %d matches, want %d", len(matches), len(want))
	}
	for i, m := range matches {
		if string(m.Slice(data)) != want[i] {
			t.Errorf("match %d = %q, want %q", i, m.Slice(data), want[i])
		}
	}
}

func TestEndToEnd_GetMany(t *testing.T) {
	data := []byte(`{"a":1,"b":{"c":2},"d":[3,4]}`)
	paths := []*Path{
		pathOf(Root(), Key("a")),
		pathOf(Root(), Key("b"), Key("c")),
		pathOf(Root(), Key("missing")),
		pathOf(Root(), Key("d"), Index(1)),
	}
	results, errs := GetMany(data, paths)
	if len(results) != 4 || len(errs) != 4 {
		t.Fatalf("expected 4 results/errs, got %d/%d", len(results), len(errs))
	}
	if errs[0] != nil || string(results[0][0].Slice(data)) != "1" {
		t.Errorf("path 0: results=%v errs=%v", results[0], errs[0])
	}
	if errs[1] != nil || string(results[1][0].Slice(data)) != "2" {
		t.Errorf("path 1: results=%v errs=%v", results[1], errs[1])
	}
	if errs[2] == nil {
		t.Errorf("path 2: expected an error for a missing key")
	}
	if errs[3] != nil || string(results[3][0].Slice(data)) != "4" {
		t.Errorf("path 3: results=%v errs=%v", results[3], errs[3])
	}
}

func TestEndToEnd_GetManyRootOnlyReturnsWholeInput(t *testing.T) {
	data := []byte(`  {"a":1}  `)
	results, errs := GetMany(data, []*Path{pathOf(Root())})
	if errs[0] != nil {
		t.Fatalf("unexpected error: %v", errs[0])
	}
	if len(results[0]) != 1 || string(results[0][0].Slice(data)) != string(data) {
		t.Errorf("results[0] = %v, want the whole input", results[0])
	}
}

func TestScanValue(t *testing.T) {
	m, err := ScanValue([]byte(`  {"a":1}  `))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(m.Slice([]byte(`  {"a":1}  `))) != `{"a":1}` {
		t.Errorf("got %q, want the trimmed value only", m.Slice([]byte(`  {"a":1}  `)))
	}
}

func TestEndToEnd_MustGetByPathPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustGetByPath to panic on a missing key")
		}
	}()
	MustGetByPath([]byte(`{}`), pathOf(Root(), Key("missing")))
}

func TestEndToEnd_InvalidPathRejected(t *testing.T) {
	_, err := GetByPathOnDemand([]byte(`{}`), pathOf(Key("a")))
	if err == nil {
		t.Fatal("expected an error for a path not starting with Root")
	}
	var e *Error
	if !errors.As(err, &e) || e.Kind != UnsupportedJsonPath {
		t.Errorf("err = %v, want UnsupportedJsonPath", err)
	}
}

// Invariant: the cursor never advances past the logical length of the
// input, across a battery of malformed inputs.
func TestInvariant_CursorNeverExceedsLogicalLength(t *testing.T) {
	inputs := []string{
		`{"a":`,
		`{"a":1`,
		`[1,2,`,
		`"unterminated`,
		`{`,
		`[`,
		``,
		`   `,
		`{"a":"b\`,
		`nul`,
	}
	for _, in := range inputs {
		s := NewScanner([]byte(in))
		s.skipOne()
		if s.pos > s.n {
			t.Errorf("input %q: pos %d exceeded logical length %d", in, s.pos, s.n)
		}
	}
}

// Invariant: the first error recorded is sticky and offset-stable across
// repeated calls on the same scanner.
func TestInvariant_StickyErrorOffsetStable(t *testing.T) {
	s := NewScanner([]byte(`{"a":@}`))
	path := []Segment{Root(), Key("a")}
	// Drive it far enough to hit the invalid '@' token.
	s.advance() // '{'
	s.advanceKey("a")
	s.skipOne()
	err1 := s.Err()
	if err1 == nil {
		t.Fatal("expected an error")
	}
	s.skipOne()
	if s.Err() != err1 {
		t.Error("sticky error identity changed across calls")
	}
	_ = path
}

func TestBoundary_EmptyObjectAndArray(t *testing.T) {
	if _, err := GetByPath([]byte(`{}`), pathOf(Root())); err != nil {
		t.Errorf("unexpected error for empty object: %v", err)
	}
	if _, err := GetByPath([]byte(`[]`), pathOf(Root())); err != nil {
		t.Errorf("unexpected error for empty array: %v", err)
	}
	_, err := GetByPath([]byte(`{}`), pathOf(Root(), Index(0)))
	if err == nil {
		t.Error("expected an error indexing into an empty array-typed segment on an object")
	}
}

func TestBoundary_DeeplyNestedArray(t *testing.T) {
	depth := 1024
	data := make([]byte, 0, depth*2+4)
	for i := 0; i < depth; i++ {
		data = append(data, '[')
	}
	data = append(data, '1')
	for i := 0; i < depth; i++ {
		data = append(data, ']')
	}
	segs := []Segment{Root()}
	for i := 0; i < depth; i++ {
		segs = append(segs, Index(0))
	}
	m, err := GetByPath(data, &Path{Segments: segs})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(m.Slice(data)) != "1" {
		t.Errorf("got %q", m.Slice(data))
	}
}

func TestBoundary_NumberAtEOF(t *testing.T) {
	m, err := GetByPath([]byte(`-12.5e+10`), pathOf(Root()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(m.Slice([]byte(`-12.5e+10`))) != "-12.5e+10" {
		t.Errorf("got %q", m.Slice([]byte(`-12.5e+10`)))
	}
}

func TestWithLoggerOptionDoesNotPanic(t *testing.T) {
	// A nil logger is the default; WithLogger(nil) should behave
	// identically to not passing the option at all.
	_, err := GetByPath([]byte(`{"a":1}`), pathOf(Root(), Key("a")), WithLogger(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
