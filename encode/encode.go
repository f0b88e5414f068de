package encode

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/jawadb/go-jawadb/ir"
)

type EncState struct {
	depth  int
	indent int

	Color func(ir.Kind, ColorAttr, string) string
}

// Encode writes node as pretty-printed JSON with 2-space indentation,
// object keys in insertion order, and a trailing newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Kind {
	case ir.NullKind:
		return writeColored(w, es, node.Kind, ValueColor, "null")
	case ir.BoolKind:
		return writeColored(w, es, node.Kind, ValueColor, strconv.FormatBool(node.Bool))
	case ir.NumberKind:
		return encodeNumber(node, w, es)
	case ir.StringKind:
		d, err := json.Marshal(node.String)
		if err != nil {
			return err
		}
		return writeColored(w, es, node.Kind, ValueColor, string(d))
	case ir.ObjectKind:
		return encodeObject(node, w, es)
	case ir.ArrayKind:
		return encodeArray(node, w, es)
	case ir.OpaqueKind:
		return encodeOpaque(node, w, es)
	}
	return &UnsupportedValueError{Value: node, Err: nil}
}

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	switch {
	case node.Int64 != nil:
		return writeColored(w, es, node.Kind, ValueColor, strconv.FormatInt(*node.Int64, 10))
	case node.Float64 != nil:
		// json.Marshal both formats the float the standard way and
		// rejects NaN and infinities.
		d, err := json.Marshal(*node.Float64)
		if err != nil {
			return &UnsupportedValueError{Value: *node.Float64, Err: err}
		}
		return writeColored(w, es, node.Kind, ValueColor, string(d))
	default:
		return writeColored(w, es, node.Kind, ValueColor, node.Number)
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		return writeColored(w, es, node.Kind, SepColor, "{}")
	}
	if err := writeColored(w, es, node.Kind, SepColor, "{"); err != nil {
		return err
	}
	es.depth++
	for i, key := range node.Fields {
		if i > 0 {
			if err := writeColored(w, es, node.Kind, SepColor, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		d, err := json.Marshal(key)
		if err != nil {
			return err
		}
		if err := writeColored(w, es, node.Kind, FieldColor, string(d)); err != nil {
			return err
		}
		if err := writeColored(w, es, node.Kind, SepColor, ": "); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeColored(w, es, node.Kind, SepColor, "}")
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeColored(w, es, node.Kind, SepColor, "[]")
	}
	if err := writeColored(w, es, node.Kind, SepColor, "["); err != nil {
		return err
	}
	es.depth++
	for i, elt := range node.Values {
		if i > 0 {
			if err := writeColored(w, es, node.Kind, SepColor, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(elt, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeColored(w, es, node.Kind, SepColor, "]")
}

// encodeOpaque serializes a deferred Go value in place. Values the json
// package cannot represent surface here as UnsupportedValueError, per the
// contract that representability is checked at save time.
func encodeOpaque(node *ir.Node, w io.Writer, es *EncState) error {
	prefix := strings.Repeat(" ", es.depth*es.indent)
	d, err := json.MarshalIndent(node.Any, prefix, strings.Repeat(" ", es.indent))
	if err != nil {
		return &UnsupportedValueError{Value: node.Any, Err: err}
	}
	return writeColored(w, es, node.Kind, ValueColor, string(d))
}

func writeNL(w io.Writer, es *EncState) error {
	return writeString(w, "\n"+strings.Repeat(" ", es.depth*es.indent))
}

func writeColored(w io.Writer, es *EncState, k ir.Kind, a ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(k, a, s)
	}
	return writeString(w, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
