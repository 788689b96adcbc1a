package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// FromJSON decodes a single JSON document into a node tree. Object field
// order is preserved, duplicate fields keep the last value at the first
// position, and numeric literals are kept verbatim.
func FromJSON(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	node, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after document")
	}
	return node, nil
}

func decodeValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (*Node, error) {
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case json.Number:
		return FromNumber(string(t)), nil
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func decodeObject(dec *json.Decoder) (*Node, error) {
	res := Object()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		res.Set(key, val)
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return res, nil
}

func decodeArray(dec *json.Decoder) (*Node, error) {
	res := &Node{Type: ArrayType}
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		res.Values = append(res.Values, val)
	}
	// closing bracket
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return res, nil
}

// ToJSON encodes a node tree as compact JSON. Object field order and
// decoded numeric literals are reproduced as is.
func ToJSON(node *Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeNode(&buf, node); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToJSONIndent is ToJSON with the output re-indented.
func ToJSONIndent(node *Node, prefix, indent string) ([]byte, error) {
	d, err := ToJSON(node)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, d, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeNode(buf *bytes.Buffer, node *Node) error {
	if node == nil {
		return fmt.Errorf("cannot encode nil node")
	}
	switch node.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(node.Bool))
	case NumberType:
		buf.WriteString(numberLiteral(node))
	case StringType:
		encodeString(buf, node.String)
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range node.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeNode(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i, f := range node.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			encodeString(buf, f)
			buf.WriteByte(':')
			if err := encodeNode(buf, node.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode node type %s", node.Type)
	}
	return nil
}

func numberLiteral(node *Node) string {
	switch {
	case node.Number != "":
		return node.Number
	case node.Int64 != nil:
		return strconv.FormatInt(*node.Int64, 10)
	case node.Float64 != nil:
		return strconv.FormatFloat(*node.Float64, 'g', -1, 64)
	}
	return "0"
}

const hexDigits = "0123456789abcdef"

func encodeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				buf.WriteString(`\u00`)
				buf.WriteByte(hexDigits[r>>4])
				buf.WriteByte(hexDigits[r&0xf])
				continue
			}
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
}
