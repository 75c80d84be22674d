package model

import (
	"fmt"
	"strings"
)

// FieldState tells a present value apart from a value the source did not
// report (Absent) and a value whose source failed (Unavailable).
type FieldState int

const (
	FieldAbsent FieldState = iota
	FieldPresent
	FieldUnavailable
)

const (
	unavailableText = "N/A"
	absentText      = "None"
)

// Field is a single report value together with its state
type Field[T any] struct {
	State FieldState
	Value T
}

func Present[T any](v T) Field[T] {
	return Field[T]{State: FieldPresent, Value: v}
}

func Absent[T any]() Field[T] {
	return Field[T]{State: FieldAbsent}
}

// Unavailable marks a field whose source provider failed
func Unavailable[T any]() Field[T] {
	return Field[T]{State: FieldUnavailable}
}

// FromPtr maps a nil pointer to Absent
func FromPtr[T any](p *T) Field[T] {
	if p == nil {
		return Absent[T]()
	}
	return Present(*p)
}

// Get returns the value and whether it is present
func (f Field[T]) Get() (T, bool) {
	return f.Value, f.State == FieldPresent
}

func (f Field[T]) IsUnavailable() bool {
	return f.State == FieldUnavailable
}

// Entry is one labelled report row, in schema order, for presentation
// adapters. Key is the schema key, Label the human readable name.
type Entry struct {
	Key   string
	Label string
	State FieldState
	Value any
}

func newEntry[T any](key, label string, f Field[T]) Entry {
	e := Entry{Key: key, Label: label, State: f.State}
	if f.State == FieldPresent {
		e.Value = f.Value
	}
	return e
}

// List returns the entry value when it is a list of strings
func (e Entry) List() ([]string, bool) {
	v, ok := e.Value.([]string)
	return v, ok
}

// Text formats the entry as a single line
func (e Entry) Text() string {
	switch e.State {
	case FieldUnavailable:
		return unavailableText
	case FieldAbsent:
		return absentText
	}

	if list, ok := e.List(); ok {
		return strings.Join(list, ", ")
	}
	return fmt.Sprint(e.Value)
}
