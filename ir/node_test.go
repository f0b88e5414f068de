package ir

import (
	"testing"
)

func TestSetFieldReplacesInPlace(t *testing.T) {
	obj := NewObject()
	old := FromInt(1)
	obj.SetField("a", old)
	obj.SetField("b", FromInt(2))
	obj.SetField("a", FromInt(3))
	if old.Parent != nil {
		t.Error("replaced child still points at the object")
	}
	if len(obj.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(obj.Fields))
	}
	if obj.Fields[0] != "a" || obj.Fields[1] != "b" {
		t.Errorf("fields = %v", obj.Fields)
	}
	v, _ := obj.Field("a")
	if *v.Int64 != 3 {
		t.Errorf("a = %d, want 3", *v.Int64)
	}
	if v.Parent != obj || v.ParentIndex != 0 || v.ParentField != "a" {
		t.Error("back-references not maintained on replace")
	}
}

func TestDeleteFieldReindexes(t *testing.T) {
	obj := NewObject()
	obj.SetField("a", FromInt(1))
	obj.SetField("b", FromInt(2))
	obj.SetField("c", FromInt(3))
	if !obj.DeleteField("b") {
		t.Fatal("delete of present key reported absence")
	}
	if obj.DeleteField("b") {
		t.Fatal("delete of absent key reported presence")
	}
	c, _ := obj.Field("c")
	if c.ParentIndex != 1 {
		t.Errorf("c.ParentIndex = %d, want 1", c.ParentIndex)
	}
}

func TestArrayMutators(t *testing.T) {
	arr := NewArray()
	arr.Append(FromInt(1))
	arr.Append(FromInt(2))
	arr.Append(FromInt(3))
	if !arr.SetIndex(1, FromString("two")) {
		t.Fatal("SetIndex in range failed")
	}
	if arr.SetIndex(5, Null()) {
		t.Fatal("SetIndex out of range succeeded")
	}
	if !arr.DeleteIndex(0) {
		t.Fatal("DeleteIndex in range failed")
	}
	if arr.Len() != 2 {
		t.Fatalf("len = %d, want 2", arr.Len())
	}
	if arr.Values[0].String != "two" || arr.Values[0].ParentIndex != 0 {
		t.Error("elements not reindexed after delete")
	}
	if arr.Values[1].Root() != arr {
		t.Error("Root did not reach the array")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	obj := NewObject()
	inner := NewArray()
	inner.Append(FromInt(1))
	obj.SetField("xs", inner)

	dup := obj.Clone()
	if !Equal(obj, dup) {
		t.Fatal("clone not equal to original")
	}
	dupXs, _ := dup.Field("xs")
	dupXs.Append(FromInt(2))
	if Equal(obj, dup) {
		t.Error("mutating the clone changed the original")
	}
	if dupXs.Parent != dup {
		t.Error("clone children point at the original parent")
	}
}

func TestFromEntriesKeepsOrder(t *testing.T) {
	obj := FromEntries([]Entry{
		{Field: "z", Value: FromInt(1)},
		{Field: "a", Value: FromInt(2)},
	})
	if obj.Fields[0] != "z" || obj.Fields[1] != "a" {
		t.Errorf("fields = %v", obj.Fields)
	}
	z, _ := obj.Field("z")
	if z.Parent != obj || z.ParentField != "z" {
		t.Error("back-references not set by FromEntries")
	}
}

func TestVisitOrder(t *testing.T) {
	obj := FromEntries([]Entry{
		{Field: "xs", Value: FromSlice([]*Node{FromInt(1), FromInt(2)})},
	})
	var pre, post int
	err := obj.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if pre != 4 || post != 4 {
		t.Errorf("pre = %d, post = %d, want 4 each", pre, post)
	}
}

func TestCompareOrdering(t *testing.T) {
	lt := [][2]*Node{
		{Null(), FromBool(false)},
		{FromBool(false), FromBool(true)},
		{FromInt(1), FromInt(2)},
		{FromInt(2), FromFloat(2.5)},
		{FromString("a"), FromString("b")},
		{FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(2)})},
	}
	for _, pair := range lt {
		if Compare(pair[0], pair[1]) >= 0 {
			t.Errorf("Compare(%v, %v) >= 0", pair[0].Kind, pair[1].Kind)
		}
		if Compare(pair[1], pair[0]) <= 0 {
			t.Errorf("Compare(%v, %v) <= 0", pair[1].Kind, pair[0].Kind)
		}
	}
	if Compare(FromInt(2), FromFloat(2)) != 0 {
		t.Error("2 != 2.0")
	}
}
