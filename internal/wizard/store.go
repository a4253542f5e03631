package wizard

import (
	"fmt"
	"strings"
)

// Store holds every field of a wizard across all of its steps.
// Values are not validated on write; only the gate looks at them.
type Store struct {
	defs   map[FieldKey]FieldDefinition
	values map[FieldKey]Value
}

func NewStore(fields []FieldDefinition) *Store {
	s := &Store{
		defs:   make(map[FieldKey]FieldDefinition, len(fields)),
		values: make(map[FieldKey]Value, len(fields)),
	}
	for _, f := range fields {
		s.defs[f.Key] = f
		s.values[f.Key] = Zero(f.Kind)
	}
	return s
}

// Set replaces the value of a field.
func (s *Store) Set(key FieldKey, v Value) error {
	def, ok := s.defs[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	if v == nil {
		v = Zero(def.Kind)
	}
	if v.Kind() != def.Kind {
		return fmt.Errorf("%w: %q is %s, got %s", ErrFieldKind, key, def.Kind, v.Kind())
	}
	s.values[key] = clone(v)
	return nil
}

func (s *Store) Get(key FieldKey) (Value, bool) {
	v, ok := s.values[key]
	if !ok {
		return nil, false
	}
	return clone(v), true
}

func (s *Store) Kind(key FieldKey) (Kind, bool) {
	def, ok := s.defs[key]
	return def.Kind, ok
}

func (s *Store) String(key FieldKey) string {
	v, _ := s.values[key].(String)
	return string(v)
}

func (s *Store) Bool(key FieldKey) bool {
	v, _ := s.values[key].(Bool)
	return bool(v)
}

func (s *Store) List(key FieldKey) []string {
	v, _ := s.values[key].(List)
	return append([]string(nil), v...)
}

func (s *Store) Records(key FieldKey) []Record {
	v, _ := s.values[key].(Records)
	return clone(v).(Records)
}

// Present reports whether a field holds a non-empty value.
func (s *Store) Present(key FieldKey) bool {
	v, ok := s.values[key]
	return ok && v.present()
}

// Snapshot copies all values.
func (s *Store) Snapshot() map[FieldKey]Value {
	out := make(map[FieldKey]Value, len(s.values))
	for k, v := range s.values {
		out[k] = clone(v)
	}
	return out
}

// AddItem appends item to a list field unless it is already there.
func (s *Store) AddItem(key FieldKey, item string) error {
	if err := s.expect(key, KindList); err != nil {
		return err
	}
	item = strings.TrimSpace(item)
	if item == "" {
		return nil
	}
	list := s.List(key)
	for _, existing := range list {
		if existing == item {
			return nil
		}
	}
	return s.Set(key, List(append(list, item)))
}

// RemoveItem drops item from a list field. Absent items are ignored.
func (s *Store) RemoveItem(key FieldKey, item string) error {
	if err := s.expect(key, KindList); err != nil {
		return err
	}
	item = strings.TrimSpace(item)
	list := s.List(key)
	kept := list[:0]
	for _, existing := range list {
		if existing != item {
			kept = append(kept, existing)
		}
	}
	return s.Set(key, List(kept))
}

func (s *Store) AppendRecord(key FieldKey, r Record) error {
	if err := s.expect(key, KindRecords); err != nil {
		return err
	}
	return s.Set(key, Records(append(s.Records(key), cloneRecord(r))))
}

// RemoveRecord deletes the record at index. Out-of-range indexes are ignored.
func (s *Store) RemoveRecord(key FieldKey, index int) error {
	if err := s.expect(key, KindRecords); err != nil {
		return err
	}
	records := s.Records(key)
	if index < 0 || index >= len(records) {
		return nil
	}
	return s.Set(key, Records(append(records[:index], records[index+1:]...)))
}

func (s *Store) expect(key FieldKey, k Kind) error {
	def, ok := s.defs[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	if def.Kind != k {
		return fmt.Errorf("%w: %q is %s, not %s", ErrFieldKind, key, def.Kind, k)
	}
	return nil
}
