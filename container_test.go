package jawadb

import (
	"errors"
	"os"
	"testing"

	"github.com/jawadb/go-jawadb/ir"
)

func TestDirtyPropagation(t *testing.T) {
	path := tmpPath(t, "deep.json")
	os.WriteFile(path, []byte(`{"a": {"b": []}}`), 0644)
	doc := mustOpen(t, path)
	if doc.Dirty() {
		t.Fatal("freshly loaded document is dirty")
	}

	v, ok, err := doc.Get("a")
	if err != nil || !ok {
		t.Fatalf("Get(a) = %v, %v", ok, err)
	}
	a, ok := v.(Map)
	if !ok {
		t.Fatalf("a is %T, want Map", v)
	}
	bv, ok := a.Get("b")
	if !ok {
		t.Fatal("missing a.b")
	}
	b, ok := bv.(List)
	if !ok {
		t.Fatalf("a.b is %T, want List", bv)
	}
	if doc.Dirty() {
		t.Fatal("pure navigation marked the document dirty")
	}

	if err := b.Append(1); err != nil {
		t.Fatal(err)
	}
	if !doc.Dirty() {
		t.Fatal("mutation two levels deep did not reach the root dirty flag")
	}
	if err := doc.Save(); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	want := "{\n  \"a\": {\n    \"b\": [\n      1\n    ]\n  }\n}\n"
	if string(data) != want {
		t.Errorf("file content %q, want %q", data, want)
	}
}

func TestNestedValuesAreTracked(t *testing.T) {
	doc := mustOpen(t, tmpPath(t, "doc.json"))
	// A raw map wraps recursively, so containers inside it are tracked.
	if err := doc.Set("cfg", map[string]any{"hosts": []any{"a"}}); err != nil {
		t.Fatal(err)
	}
	if err := doc.Save(); err != nil {
		t.Fatal(err)
	}

	v, _, _ := doc.Get("cfg")
	hostsAny, _ := v.(Map).Get("hosts")
	hosts := hostsAny.(List)
	if err := hosts.Append("b"); err != nil {
		t.Fatal(err)
	}
	if !doc.Dirty() {
		t.Error("appending to a nested wrapped list did not mark dirty")
	}
}

func TestMapKeysInsertionOrder(t *testing.T) {
	doc := mustOpen(t, tmpPath(t, "doc.json"))
	m, err := doc.Map()
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"z", "a", "m"} {
		if err := m.Set(k, 1); err != nil {
			t.Fatal(err)
		}
	}
	keys := m.Keys()
	want := []string{"z", "a", "m"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Keys() = %v, want %v", keys, want)
		}
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
}

func TestWrapKeyTypeError(t *testing.T) {
	doc := mustOpen(t, tmpPath(t, "doc.json"))
	err := doc.Set("bad", map[int]string{1: "x"})
	if !errors.Is(err, ir.ErrKeyType) {
		t.Fatalf("got %v, want ErrKeyType", err)
	}
}

func TestExtendAllOrNothing(t *testing.T) {
	doc := mustOpen(t, tmpPath(t, "doc.json"))
	if err := doc.Append("keep"); err != nil {
		t.Fatal(err)
	}
	if err := doc.Save(); err != nil {
		t.Fatal(err)
	}
	err := doc.Extend(1, map[bool]int{true: 1}, 3)
	if !errors.Is(err, ir.ErrKeyType) {
		t.Fatalf("got %v, want ErrKeyType", err)
	}
	if doc.Len() != 1 {
		t.Errorf("failed Extend appended elements: len = %d", doc.Len())
	}
	if doc.Dirty() {
		t.Error("failed Extend marked the document dirty")
	}
}

func TestInsertedHandleIsCloned(t *testing.T) {
	doc := mustOpen(t, tmpPath(t, "doc.json"))
	if err := doc.Set("a", []any{1}); err != nil {
		t.Fatal(err)
	}
	v, _, _ := doc.Get("a")
	a := v.(List)
	// Inserting the same container elsewhere stores an independent copy.
	if err := doc.Set("b", a); err != nil {
		t.Fatal(err)
	}
	if err := a.Append(2); err != nil {
		t.Fatal(err)
	}
	bAny, _, _ := doc.Get("b")
	if got := bAny.(List).Len(); got != 1 {
		t.Errorf("b shares structure with a: len = %d, want 1", got)
	}
}

func TestOpaqueValueSerializedAtSave(t *testing.T) {
	type creds struct {
		User string `json:"user"`
	}
	path := tmpPath(t, "doc.json")
	doc := mustOpen(t, path)
	// A struct is accepted at insertion; representability is checked by
	// Save.
	if err := doc.Set("c", creds{User: "root"}); err != nil {
		t.Fatal(err)
	}
	if err := doc.Save(); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	want := "{\n  \"c\": {\n    \"user\": \"root\"\n  }\n}\n"
	if string(data) != want {
		t.Errorf("file content %q, want %q", data, want)
	}
}

func TestUnrepresentableValueFailsAtSave(t *testing.T) {
	doc := mustOpen(t, tmpPath(t, "doc.json"))
	if err := doc.Set("ch", make(chan int)); err != nil {
		t.Fatalf("insertion rejected the value: %v", err)
	}
	if err := doc.Save(); err == nil {
		t.Fatal("save of an unrepresentable value succeeded")
	}
	if !doc.Dirty() {
		t.Error("failed save cleared the dirty flag")
	}
}
