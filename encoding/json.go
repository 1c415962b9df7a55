// Package encoding converts host documents (JSON, YAML) into the ordered
// value.Value tree the matcher package compiles and evaluates.
package encoding

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mongoryhq/mongory-go/value"
)

// DecodeJSON reads one JSON document from r into a value.Value, preserving
// object key order by walking json.Decoder's token stream rather than
// unmarshaling into a map[string]interface{}, which stdlib's encoding/json
// already discards order for.
func DecodeJSON(r io.Reader) (*value.Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, fmt.Errorf("encoding: decode json: %w", err)
	}
	return v, nil
}

// DecodeJSONBytes is a convenience wrapper over DecodeJSON for in-memory
// input.
func DecodeJSONBytes(data []byte) (*value.Value, error) {
	return DecodeJSON(bytes.NewReader(data))
}

func decodeJSONValue(dec *json.Decoder) (*value.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeJSONToken(dec, tok)
}

func decodeJSONToken(dec *json.Decoder, tok json.Token) (*value.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case nil:
		return value.Null(), nil
	case bool:
		return value.Bool(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return value.Int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return value.Double(f), nil
	case float64:
		return value.Double(t), nil
	case string:
		return value.String(t), nil
	default:
		return nil, fmt.Errorf("unsupported json token %T", tok)
	}
}

func decodeJSONObject(dec *json.Decoder) (*value.Value, error) {
	m := value.NewMap()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %T", keyTok)
		}
		val, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		m.Set(key, val)
	}
	if _, err := dec.Token(); err != nil { // consume closing '}'
		return nil, err
	}
	return value.FromMap(m), nil
}

func decodeJSONArray(dec *json.Decoder) (*value.Value, error) {
	arr := value.NewArray()
	for dec.More() {
		val, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		arr.Push(val)
	}
	if _, err := dec.Token(); err != nil { // consume closing ']'
		return nil, err
	}
	return value.FromArray(arr), nil
}
