package encode

import (
	"encoding/json"
	"io"

	"github.com/jawadb/go-jawadb/ir"

	"github.com/goccy/go-yaml"
)

// EncodeYAML renders node as YAML, preserving object key order. It exists
// for human inspection of store files; the on-disk format is always JSON.
func EncodeYAML(node *ir.Node, w io.Writer) error {
	v, err := yamlValue(node)
	if err != nil {
		return err
	}
	d, err := yaml.Marshal(v)
	if err != nil {
		return &UnsupportedValueError{Value: v, Err: err}
	}
	_, err = w.Write(d)
	return err
}

// yamlValue maps nodes onto yaml.MapSlice so goccy keeps key order.
func yamlValue(node *ir.Node) (any, error) {
	switch node.Kind {
	case ir.NullKind:
		return nil, nil
	case ir.BoolKind:
		return node.Bool, nil
	case ir.NumberKind:
		if node.Int64 != nil {
			return *node.Int64, nil
		}
		if node.Float64 != nil {
			return *node.Float64, nil
		}
		return json.Number(node.Number), nil
	case ir.StringKind:
		return node.String, nil
	case ir.ObjectKind:
		res := make(yaml.MapSlice, 0, len(node.Fields))
		for i, key := range node.Fields {
			v, err := yamlValue(node.Values[i])
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: key, Value: v})
		}
		return res, nil
	case ir.ArrayKind:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			v, err := yamlValue(elt)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ir.OpaqueKind:
		return node.Any, nil
	}
	return nil, &UnsupportedValueError{Value: node}
}
