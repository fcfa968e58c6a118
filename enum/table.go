// Package enum maps the ordinals of closed enumerations to their declared names.
//
// The wire format stores an enumeration as its uint32 ordinal and a flag set as a
// bit mask indexed by ordinal, so the only source of truth for which ordinals exist
// is a table compiled into the program. Ordinals need not be contiguous: AddAt
// restarts numbering at an explicit ordinal and later names continue from there.
//
//	var entityKinds = enum.NewTable[EntityKind]("EntityKind").
//	    Add("Caster", "Player", "DeadPlayer").
//	    AddAt(13, "Location", "Teleport")
package enum

import (
	"fmt"
	"strconv"
)

// Enum is the constraint satisfied by enumeration and flag types.
//
// Known reports whether the value is a declared member; String returns its name.
// Types usually implement both by delegating to a Table.
type Enum interface {
	~uint32
	Known() bool
	String() string
}

// Table is the ordinal-to-name mapping of one enumeration type.
//
// A Table is built once during package initialisation and is read-only afterwards,
// so it is safe for concurrent use.
type Table[T ~uint32] struct {
	typeName string
	names    map[T]string
	values   map[string]T
	order    []T
	next     T
}

// NewTable creates an empty table for the named enumeration type.
func NewTable[T ~uint32](typeName string) *Table[T] {
	return &Table[T]{
		typeName: typeName,
		names:    make(map[T]string),
		values:   make(map[string]T),
	}
}

// Add declares members with consecutive ordinals, continuing after the last one.
//
// Add panics if a name or ordinal is declared twice; tables are static program
// data and a duplicate is a programming error.
func (t *Table[T]) Add(names ...string) *Table[T] {
	for _, name := range names {
		t.declare(t.next, name)
	}

	return t
}

// AddAt declares members starting at an explicit ordinal.
func (t *Table[T]) AddAt(ordinal T, names ...string) *Table[T] {
	t.next = ordinal

	return t.Add(names...)
}

func (t *Table[T]) declare(v T, name string) {
	if prev, ok := t.names[v]; ok {
		panic(fmt.Sprintf("enum: %s ordinal %d declared as both %s and %s", t.typeName, v, prev, name))
	}
	if _, ok := t.values[name]; ok {
		panic(fmt.Sprintf("enum: %s member %s declared twice", t.typeName, name))
	}

	t.names[v] = name
	t.values[name] = v
	t.order = append(t.order, v)
	t.next = v + 1
}

// TypeName returns the enumeration's type name.
func (t *Table[T]) TypeName() string {
	return t.typeName
}

// Len returns the number of declared members.
func (t *Table[T]) Len() int {
	return len(t.order)
}

// Known reports whether v is a declared ordinal.
func (t *Table[T]) Known(v T) bool {
	_, ok := t.names[v]
	return ok
}

// Name returns the declared name of v, or "" if v is not declared.
func (t *Table[T]) Name(v T) string {
	return t.names[v]
}

// Format returns the declared name of v, or "TypeName(n)" for undeclared ordinals.
func (t *Table[T]) Format(v T) string {
	if name, ok := t.names[v]; ok {
		return name
	}

	return t.typeName + "(" + strconv.FormatUint(uint64(v), 10) + ")"
}

// Parse returns the member with the given name.
func (t *Table[T]) Parse(name string) (T, bool) {
	v, ok := t.values[name]
	return v, ok
}

// Values returns the declared members in declaration order.
func (t *Table[T]) Values() []T {
	out := make([]T, len(t.order))
	copy(out, t.order)

	return out
}

// MarshalName is a helper for encoding.TextMarshaler implementations.
// Undeclared ordinals marshal as their decimal value.
func (t *Table[T]) MarshalName(v T) ([]byte, error) {
	if name, ok := t.names[v]; ok {
		return []byte(name), nil
	}

	return strconv.AppendUint(nil, uint64(v), 10), nil
}

// UnmarshalName is the inverse of MarshalName.
func (t *Table[T]) UnmarshalName(text []byte) (T, error) {
	if v, ok := t.values[string(text)]; ok {
		return v, nil
	}

	n, err := strconv.ParseUint(string(text), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("enum: %q is not a %s", text, t.typeName)
	}

	return T(n), nil
}
