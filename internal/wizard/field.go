package wizard

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FieldKey names one field of a wizard's form state.
type FieldKey string

// Kind is the shape of value a field accepts.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindList
	KindRecords
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindRecords:
		return "records"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// FieldDefinition declares a field a flow accepts.
type FieldDefinition struct {
	Key  FieldKey
	Kind Kind
}

// Value is a field value. It is one of String, Bool, List or Records.
type Value interface {
	Kind() Kind
	present() bool
}

type String string

type Bool bool

// List is an ordered list of strings, e.g. skills.
type List []string

// Record is one entry of a repeatable group, e.g. a work experience.
type Record map[string]string

// Records keeps repeatable entries in display order.
type Records []Record

func (String) Kind() Kind { return KindString }
func (Bool) Kind() Kind { return KindBool }
func (List) Kind() Kind { return KindList }
func (Records) Kind() Kind { return KindRecords }

func (v String) present() bool { return strings.TrimSpace(string(v)) != "" }
func (v Bool) present() bool { return bool(v) }
func (v List) present() bool { return len(v) > 0 }
func (v Records) present() bool { return len(v) > 0 }

// Zero returns the empty value of a kind.
func Zero(k Kind) Value {
	switch k {
	case KindBool:
		return Bool(false)
	case KindList:
		return List(nil)
	case KindRecords:
		return Records(nil)
	default:
		return String("")
	}
}

// Decode parses raw JSON into a value of the given kind.
func Decode(k Kind, raw json.RawMessage) (Value, error) {
	switch k {
	case KindString:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("%w: want %s: %v", ErrFieldKind, k, err)
		}
		return String(s), nil
	case KindBool:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, fmt.Errorf("%w: want %s: %v", ErrFieldKind, k, err)
		}
		return Bool(b), nil
	case KindList:
		var l []string
		if err := json.Unmarshal(raw, &l); err != nil {
			return nil, fmt.Errorf("%w: want %s: %v", ErrFieldKind, k, err)
		}
		return List(l), nil
	case KindRecords:
		var r []Record
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, fmt.Errorf("%w: want %s: %v", ErrFieldKind, k, err)
		}
		return Records(r), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrFieldKind, k)
}

func clone(v Value) Value {
	switch t := v.(type) {
	case List:
		if t == nil {
			return List(nil)
		}
		return append(List(nil), t...)
	case Records:
		if t == nil {
			return Records(nil)
		}
		out := make(Records, len(t))
		for i, r := range t {
			out[i] = cloneRecord(r)
		}
		return out
	default:
		return v
	}
}

func cloneRecord(r Record) Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
