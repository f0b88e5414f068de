package jawadb

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mergePatch(t *testing.T, doc *Document) map[string]any {
	t.Helper()
	d, err := doc.UnsavedChanges()
	if err != nil {
		t.Fatal(err)
	}
	if d == nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(d, &m); err != nil {
		t.Fatalf("patch %q: %v", d, err)
	}
	return m
}

func TestUnsavedChangesCleanDocument(t *testing.T) {
	doc := mustOpen(t, tmpPath(t, "d.json"))
	d, err := doc.UnsavedChanges()
	if err != nil || d != nil {
		t.Errorf("clean document: got %q, %v", d, err)
	}
}

func TestUnsavedChangesFreshDocument(t *testing.T) {
	doc := mustOpen(t, tmpPath(t, "d.json"))
	if err := doc.Set("a", 1); err != nil {
		t.Fatal(err)
	}
	got := mergePatch(t, doc)
	want := map[string]any{"a": float64(1)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("patch mismatch (-want +got):\n%s", diff)
	}
}

func TestUnsavedChangesAfterSave(t *testing.T) {
	path := tmpPath(t, "d.json")
	os.WriteFile(path, []byte(`{"a": 1, "b": 2}`), 0644)
	doc := mustOpen(t, path)

	if err := doc.Set("b", 3); err != nil {
		t.Fatal(err)
	}
	got := mergePatch(t, doc)
	// Only the changed key appears in the merge patch.
	want := map[string]any{"b": float64(3)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("patch mismatch (-want +got):\n%s", diff)
	}

	if err := doc.Save(); err != nil {
		t.Fatal(err)
	}
	if d, err := doc.UnsavedChanges(); err != nil || d != nil {
		t.Errorf("after save: got %q, %v", d, err)
	}
}
