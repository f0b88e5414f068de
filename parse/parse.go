package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jawadb/go-jawadb/ir"
)

// Parse decodes JSON text into an ir.Node tree, preserving object key
// insertion order. The standard tokenizer does the lexing; tree
// construction, ordering, and number classification happen here.
func Parse(data []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrParse)
		}
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}
	n, err := parseValue(dec, tok)
	if err != nil {
		return nil, err
	}
	// A JSON document holds exactly one value.
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrParse, err)
		}
		return nil, fmt.Errorf("%w: unexpected %v after top-level value", ErrParse, tok)
	}
	return n, nil
}

func parseValue(dec *json.Decoder, tok json.Token) (*ir.Node, error) {
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		}
		return nil, fmt.Errorf("%w: unexpected delimiter %v", ErrParse, x)
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case json.Number:
		return parseNumber(x), nil
	}
	return nil, fmt.Errorf("%w: unexpected token %v", ErrParse, tok)
}

func parseObject(dec *json.Decoder) (*ir.Node, error) {
	res := ir.NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrParse, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key %v is not a string", ErrParse, keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrParse, err)
		}
		val, err := parseValue(dec, valTok)
		if err != nil {
			return nil, err
		}
		// Duplicate keys: last value wins, position of the first kept.
		res.SetField(key, val)
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}
	return res, nil
}

func parseArray(dec *json.Decoder) (*ir.Node, error) {
	res := ir.NewArray()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrParse, err)
		}
		elt, err := parseValue(dec, tok)
		if err != nil {
			return nil, err
		}
		res.Append(elt)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}
	return res, nil
}

// parseNumber keeps integral values exact as int64, decimals as float64,
// and anything representable by neither (e.g. very large integers) as the
// source text verbatim.
func parseNumber(num json.Number) *ir.Node {
	s := string(num)
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return ir.FromInt(i)
		}
		return &ir.Node{Kind: ir.NumberKind, Number: s}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return ir.FromFloat(f)
	}
	return &ir.Node{Kind: ir.NumberKind, Number: s}
}
