package ir

import "fmt"

// Kind identifies the JSON kind held by a Node.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ObjectKind
	ArrayKind
	// OpaqueKind holds an arbitrary Go value whose JSON representability
	// is checked at serialization time, not at insertion time.
	OpaqueKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:   "Null",
		BoolKind:   "Bool",
		NumberKind: "Number",
		StringKind: "String",
		ObjectKind: "Object",
		ArrayKind:  "Array",
		OpaqueKind: "Opaque",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":   NullKind,
		"Bool":   BoolKind,
		"Number": NumberKind,
		"String": StringKind,
		"Object": ObjectKind,
		"Array":  ArrayKind,
		"Opaque": OpaqueKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		BoolKind,
		NumberKind,
		StringKind,
		ObjectKind,
		ArrayKind,
		OpaqueKind,
	}
}

// IsContainer reports whether nodes of kind k hold child nodes.
func (k Kind) IsContainer() bool {
	switch k {
	case ObjectKind, ArrayKind:
		return true
	default:
		return false
	}
}
