package ir

import (
	"cmp"
	"fmt"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Kind)
	rankB := rank(b.Kind)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Kind {
	case NullKind:
		return 0
	case BoolKind:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case NumberKind:
		return compareNumbers(a, b)
	case StringKind:
		return strings.Compare(a.String, b.String)
	case ArrayKind:
		return compareArrays(a, b)
	case ObjectKind:
		return compareObjects(a, b)
	case OpaqueKind:
		return strings.Compare(fmt.Sprint(a.Any), fmt.Sprint(b.Any))
	}
	return 0
}

func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank orders kinds: Null < Bool < Number < String < Array < Object < Opaque.
func rank(k Kind) int {
	switch k {
	case NullKind:
		return 0
	case BoolKind:
		return 1
	case NumberKind:
		return 2
	case StringKind:
		return 3
	case ArrayKind:
		return 4
	case ObjectKind:
		return 5
	case OpaqueKind:
		return 6
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	// Int64 and Float64 compare numerically; text fallbacks compare last,
	// lexically.
	fa, aNum := numberValue(a)
	fb, bNum := numberValue(b)
	if aNum && bNum {
		if a.Int64 != nil && b.Int64 != nil {
			return cmp.Compare(*a.Int64, *b.Int64)
		}
		return cmp.Compare(fa, fb)
	}
	if aNum != bNum {
		if aNum {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Number, b.Number)
}

func numberValue(n *Node) (float64, bool) {
	if n.Int64 != nil {
		return float64(*n.Int64), true
	}
	if n.Float64 != nil {
		return *n.Float64, true
	}
	return 0, false
}

func compareArrays(a, b *Node) int {
	if d := cmp.Compare(len(a.Values), len(b.Values)); d != 0 {
		return d
	}
	for i := range a.Values {
		if d := Compare(a.Values[i], b.Values[i]); d != 0 {
			return d
		}
	}
	return 0
}

func compareObjects(a, b *Node) int {
	if d := cmp.Compare(len(a.Fields), len(b.Fields)); d != 0 {
		return d
	}
	for i := range a.Fields {
		if d := strings.Compare(a.Fields[i], b.Fields[i]); d != 0 {
			return d
		}
		if d := Compare(a.Values[i], b.Values[i]); d != 0 {
			return d
		}
	}
	return 0
}
