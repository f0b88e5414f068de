package encode

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/jawadb/go-jawadb/ir"
)

func encodeString(t *testing.T, n *ir.Node) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.String()
}

func TestEncodeScalars(t *testing.T) {
	tests := []struct {
		node *ir.Node
		want string
	}{
		{ir.Null(), "null\n"},
		{ir.FromBool(true), "true\n"},
		{ir.FromInt(42), "42\n"},
		{ir.FromFloat(1.5), "1.5\n"},
		{&ir.Node{Kind: ir.NumberKind, Number: "123456789012345678901234567890"}, "123456789012345678901234567890\n"},
		{ir.FromString("say \"hi\"\n"), "\"say \\\"hi\\\"\\n\"\n"},
	}
	for _, tt := range tests {
		if got := encodeString(t, tt.node); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestEncodeObject(t *testing.T) {
	obj := ir.NewObject()
	obj.SetField("z", ir.FromInt(1))
	obj.SetField("a", ir.FromString("x"))
	nested := ir.NewArray()
	nested.Append(ir.FromInt(1))
	nested.Append(ir.Null())
	obj.SetField("list", nested)
	obj.SetField("empty", ir.NewObject())

	want := `{
  "z": 1,
  "a": "x",
  "list": [
    1,
    null
  ],
  "empty": {}
}
`
	if got := encodeString(t, obj); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeEmptyArray(t *testing.T) {
	if got := encodeString(t, ir.NewArray()); got != "[]\n" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeOpaqueStruct(t *testing.T) {
	type point struct {
		X int `json:"x"`
		Y int `json:"y"`
	}
	obj := ir.NewObject()
	obj.SetField("p", ir.Opaque(point{X: 1, Y: 2}))
	want := `{
  "p": {
    "x": 1,
    "y": 2
  }
}
`
	if got := encodeString(t, obj); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeUnsupported(t *testing.T) {
	for _, n := range []*ir.Node{
		ir.Opaque(make(chan int)),
		ir.FromFloat(math.NaN()),
	} {
		err := Encode(n, bytes.NewBuffer(nil))
		uve := &UnsupportedValueError{}
		if !errors.As(err, &uve) {
			t.Errorf("got %v, want UnsupportedValueError", err)
		}
	}
}

func TestEncodeYAMLOrder(t *testing.T) {
	obj := ir.NewObject()
	obj.SetField("z", ir.FromInt(1))
	obj.SetField("a", ir.FromBool(false))
	buf := bytes.NewBuffer(nil)
	if err := EncodeYAML(obj, buf); err != nil {
		t.Fatal(err)
	}
	want := "z: 1\na: false\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
