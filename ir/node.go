package ir

type Node struct {
	Kind        Kind
	Parent      *Node
	ParentIndex int
	ParentField string

	// Fields holds object keys in insertion order, parallel to Values.
	// For arrays, Fields is nil and Values holds the elements.
	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Int64   *int64
	Float64 *float64
	// Number holds the source text of a number representable by neither
	// Int64 nor Float64.
	Number string

	// Any holds the payload of an OpaqueKind node.
	Any any
}

func Null() *Node {
	return &Node{Kind: NullKind}
}

func FromString(v string) *Node {
	return &Node{Kind: StringKind, String: v}
}

func FromBool(v bool) *Node {
	return &Node{Kind: BoolKind, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{Kind: NumberKind, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Kind: NumberKind, Float64: &f}
}

func Opaque(v any) *Node {
	return &Node{Kind: OpaqueKind, Any: v}
}

func NewObject() *Node {
	return &Node{Kind: ObjectKind}
}

func NewArray() *Node {
	return &Node{Kind: ArrayKind}
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Kind: ArrayKind, Values: make([]*Node, len(vs))}
	for i, v := range vs {
		v.Parent = res
		v.ParentIndex = i
		v.ParentField = ""
		res.Values[i] = v
	}
	return res
}

// Entry is a key/value pair for building objects with explicit ordering.
type Entry struct {
	Field string
	Value *Node
}

func FromEntries(entries []Entry) *Node {
	res := NewObject()
	for _, e := range entries {
		res.SetField(e.Field, e.Value)
	}
	return res
}

// Field returns the value stored under key, if any.
func (n *Node) Field(key string) (*Node, bool) {
	for i, f := range n.Fields {
		if f == key {
			return n.Values[i], true
		}
	}
	return nil, false
}

// SetField stores v under key, replacing an existing entry in place or
// appending a new one, and fixes up v's back-references.
func (n *Node) SetField(key string, v *Node) {
	v.Parent = n
	v.ParentField = key
	for i, f := range n.Fields {
		if f == key {
			n.Values[i].Parent = nil
			v.ParentIndex = i
			n.Values[i] = v
			return
		}
	}
	v.ParentIndex = len(n.Fields)
	n.Fields = append(n.Fields, key)
	n.Values = append(n.Values, v)
}

// DeleteField removes the entry under key and reindexes the remaining
// values. It reports whether the key was present.
func (n *Node) DeleteField(key string) bool {
	for i, f := range n.Fields {
		if f != key {
			continue
		}
		n.Values[i].Parent = nil
		n.Fields = append(n.Fields[:i], n.Fields[i+1:]...)
		n.Values = append(n.Values[:i], n.Values[i+1:]...)
		for j := i; j < len(n.Values); j++ {
			n.Values[j].ParentIndex = j
		}
		return true
	}
	return false
}

// Append adds v to the end of an array node.
func (n *Node) Append(v *Node) {
	v.Parent = n
	v.ParentIndex = len(n.Values)
	v.ParentField = ""
	n.Values = append(n.Values, v)
}

// SetIndex replaces the element at i. It reports whether i was in range.
func (n *Node) SetIndex(i int, v *Node) bool {
	if i < 0 || i >= len(n.Values) {
		return false
	}
	n.Values[i].Parent = nil
	v.Parent = n
	v.ParentIndex = i
	v.ParentField = ""
	n.Values[i] = v
	return true
}

// DeleteIndex removes the element at i and reindexes the rest. It reports
// whether i was in range.
func (n *Node) DeleteIndex(i int) bool {
	if i < 0 || i >= len(n.Values) {
		return false
	}
	n.Values[i].Parent = nil
	n.Values = append(n.Values[:i], n.Values[i+1:]...)
	for j := i; j < len(n.Values); j++ {
		n.Values[j].ParentIndex = j
	}
	return true
}

// Len returns the number of entries or elements of a container node.
func (n *Node) Len() int {
	return len(n.Values)
}

func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Kind = n.Kind
	dst.String = n.String
	dst.Bool = n.Bool
	dst.Number = n.Number
	dst.Any = n.Any
	if n.Int64 != nil {
		i := *n.Int64
		dst.Int64 = &i
	}
	if n.Float64 != nil {
		f := *n.Float64
		dst.Float64 = &f
	}
	if n.Fields != nil {
		dst.Fields = make([]string, len(n.Fields))
		copy(dst.Fields, n.Fields)
	}
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dstI := &Node{}
			v.CloneTo(dstI)
			dstI.Parent = dst
			dstI.ParentIndex = i
			if n.Kind == ObjectKind {
				dstI.ParentField = n.Fields[i]
			}
			dst.Values[i] = dstI
		}
	}
	return dst
}

// Visit walks the tree rooted at n, calling f before and after children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
