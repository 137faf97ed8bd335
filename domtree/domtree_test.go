package domtree

import "testing"

func TestParseScalarKinds(t *testing.T) {
	tests := []struct {
		data string
		kind Kind
	}{
		{`"hello"`, KindString},
		{`42`, KindNumber},
		{`-3.14`, KindNumber},
		{`true`, KindBool},
		{`false`, KindBool},
		{`null`, KindNull},
		{`{"a":1}`, KindObject},
		{`[1,2]`, KindArray},
	}
	for _, tt := range tests {
		n, err := Parse([]byte(tt.data))
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tt.data, err)
		}
		if n.Kind() != tt.kind {
			t.Errorf("Parse(%q).Kind() = %v, want %v", tt.data, n.Kind(), tt.kind)
		}
	}
}

func TestParseAllowsOnlyTrailingWhitespace(t *testing.T) {
	n, err := Parse([]byte("  {\"a\":1}  \n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Kind() != KindObject {
		t.Errorf("Kind() = %v, want KindObject", n.Kind())
	}
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	tests := []string{
		`{"a":1} garbage`,
		`42 43`,
		`[1,2]]`,
		`true false`,
	}
	for _, data := range tests {
		if _, err := Parse([]byte(data)); err == nil {
			t.Errorf("Parse(%q): expected an error for trailing content", data)
		}
	}
}

func TestNodeStringUnescapes(t *testing.T) {
	n, err := Parse([]byte(`"line one\nline two"`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := n.String()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "line one\nline two" {
		t.Errorf("got %q", s)
	}
}

func TestNodeNumAndBool(t *testing.T) {
	n, _ := Parse([]byte(`3.5`))
	v, err := n.Num()
	if err != nil || v != 3.5 {
		t.Errorf("Num() = (%v, %v), want (3.5, nil)", v, err)
	}

	b, _ := Parse([]byte(`true`))
	bv, err := b.Bool()
	if err != nil || bv != true {
		t.Errorf("Bool() = (%v, %v), want (true, nil)", bv, err)
	}
}

func TestNodeAtAndIndex(t *testing.T) {
	n, err := Parse([]byte(`{"a":{"b":[1,2,3]}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, err := n.At("a")
	if err != nil {
		t.Fatalf("At(a): %v", err)
	}
	b, err := a.At("b")
	if err != nil {
		t.Fatalf("At(b): %v", err)
	}
	elem, err := b.Index(2)
	if err != nil {
		t.Fatalf("Index(2): %v", err)
	}
	v, err := elem.Num()
	if err != nil || v != 3 {
		t.Errorf("Num() = (%v, %v), want (3, nil)", v, err)
	}
}

func TestNodeObjectAndArray(t *testing.T) {
	n, err := Parse([]byte(`{"x":1,"y":2}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj, err := n.Object()
	if err != nil {
		t.Fatalf("Object(): %v", err)
	}
	if len(obj) != 2 {
		t.Fatalf("got %d members, want 2", len(obj))
	}
	v, _ := obj["x"].Num()
	if v != 1 {
		t.Errorf("obj[x] = %v, want 1", v)
	}

	arr, err := Parse([]byte(`[10,20,30]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	elems, err := arr.Array()
	if err != nil {
		t.Fatalf("Array(): %v", err)
	}
	if len(elems) != 3 {
		t.Fatalf("got %d elements, want 3", len(elems))
	}
}

func TestNodeTypeMismatchErrors(t *testing.T) {
	n, _ := Parse([]byte(`42`))
	if _, err := n.String(); err == nil {
		t.Error("expected an error calling String() on a number")
	}
	if _, err := n.At("a"); err == nil {
		t.Error("expected an error calling At() on a number")
	}
	if _, err := n.Array(); err == nil {
		t.Error("expected an error calling Array() on a number")
	}
}
