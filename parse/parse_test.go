package parse

import (
	"errors"
	"testing"

	"github.com/jawadb/go-jawadb/ir"
)

func TestParseScalars(t *testing.T) {
	tests := []struct {
		in   string
		want *ir.Node
	}{
		{`null`, ir.Null()},
		{`true`, ir.FromBool(true)},
		{`false`, ir.FromBool(false)},
		{`22`, ir.FromInt(22)},
		{`-7`, ir.FromInt(-7)},
		{`1.5`, ir.FromFloat(1.5)},
		{`1e14`, ir.FromFloat(1e14)},
		{`"hello"`, ir.FromString("hello")},
		{`""`, ir.FromString("")},
	}
	for _, tt := range tests {
		got, err := Parse([]byte(tt.in))
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if !ir.Equal(got, tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseBigIntegerKeepsText(t *testing.T) {
	in := `123456789012345678901234567890`
	got, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind != ir.NumberKind || got.Number != in {
		t.Errorf("got kind=%s number=%q, want text fallback %q", got.Kind, got.Number, in)
	}
}

func TestParseObjectOrder(t *testing.T) {
	got, err := Parse([]byte(`{"z": 1, "a": 2, "m": {"q": [true, null]}}`))
	if err != nil {
		t.Fatal(err)
	}
	wantKeys := []string{"z", "a", "m"}
	if len(got.Fields) != len(wantKeys) {
		t.Fatalf("got %d fields, want %d", len(got.Fields), len(wantKeys))
	}
	for i, k := range wantKeys {
		if got.Fields[i] != k {
			t.Errorf("field %d = %q, want %q", i, got.Fields[i], k)
		}
	}
	m, ok := got.Field("m")
	if !ok || m.Kind != ir.ObjectKind {
		t.Fatalf("missing nested object m")
	}
	q, ok := m.Field("q")
	if !ok || q.Kind != ir.ArrayKind || q.Len() != 2 {
		t.Fatalf("missing nested array q")
	}
	if q.Parent != m || m.Parent != got {
		t.Error("parent back-references not set")
	}
}

func TestParseDuplicateKeysLastWins(t *testing.T) {
	got, err := Parse([]byte(`{"a": 1, "a": 2}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Fields) != 1 {
		t.Fatalf("got %d fields, want 1", len(got.Fields))
	}
	v, _ := got.Field("a")
	if v.Int64 == nil || *v.Int64 != 2 {
		t.Errorf("a = %v, want 2", v)
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		``,
		`{`,
		`{"a"}`,
		`[1,]`,
		`{"a": 1} trailing`,
		`{"a": 1}{"b": 2}`,
		`{'a': 1}`,
		`nul`,
	}
	for _, in := range bad {
		if _, err := Parse([]byte(in)); !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%q): got %v, want ErrParse", in, err)
		}
	}
}
