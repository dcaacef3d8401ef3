// Package jsonx provides a tagged JSON value for payload fields whose type
// is not fixed by the server schema. It is intended for schema-less spots
// like validation-error locations, never for typed domain data.
package jsonx

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind identifies the JSON type held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindArray
	KindObject
)

// Value holds one JSON value of any type. The zero Value is null.
//
// Exactly one of the typed fields is meaningful, selected by Kind.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
	Bool bool
	Arr  []Value
	Obj  map[string]Value
}

// String returns a Value holding s.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Number returns a Value holding n.
func Number(n float64) Value { return Value{Kind: KindNumber, Num: n} }

// Bool returns a Value holding b.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("jsonx: empty input")
	}

	switch data[0] {
	case 'n':
		*v = Value{Kind: KindNull}
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = String(s)
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = Bool(b)
		return nil
	case '[':
		var arr []Value
		if err := json.Unmarshal(data, &arr); err != nil {
			return err
		}
		*v = Value{Kind: KindArray, Arr: arr}
		return nil
	case '{':
		var obj map[string]Value
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*v = Value{Kind: KindObject, Obj: obj}
		return nil
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*v = Number(n)
		return nil
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNull:
		return []byte("null"), nil
	case KindString:
		return json.Marshal(v.Str)
	case KindNumber:
		return json.Marshal(v.Num)
	case KindBool:
		return json.Marshal(v.Bool)
	case KindArray:
		if v.Arr == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.Arr)
	case KindObject:
		if v.Obj == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.Obj)
	default:
		return nil, fmt.Errorf("jsonx: unknown kind %d", v.Kind)
	}
}

// Text renders the value for inclusion in log or alert messages.
// Strings are returned bare, everything else as compact JSON.
func (v Value) Text() string {
	if v.Kind == KindString {
		return v.Str
	}
	b, err := v.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(b)
}
