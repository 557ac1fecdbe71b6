// Package vocab holds the coded vocabularies used by the CDA document model.
//
// Every vocabulary is a string type whose values are the codes themselves,
// so a value round-trips code -> enum -> code and serialises as its code.
// Display names and code-system metadata come from a table per type.
package vocab

import (
	"github.com/pkg/errors"
)

// ErrUnknownCode is returned by the Parse functions for codes that are not
// part of the vocabulary.
var ErrUnknownCode = errors.New("unknown code")

// CodeSystem identifies the coding system a vocabulary is drawn from.
type CodeSystem struct {
	OID     string
	Name    string
	Version string
}

// Coded is implemented by every vocabulary type.
type Coded interface {
	Code() string
	DisplayName() string
	CodeSystem() CodeSystem
}

type entry struct {
	code    string
	display string
}

type table[T ~string] struct {
	system  CodeSystem
	entries []entry
	index   map[string]string
}

func newTable[T ~string](system CodeSystem, entries ...entry) *table[T] {
	t := &table[T]{
		system:  system,
		entries: entries,
		index:   make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		t.index[e.code] = e.display
	}
	return t
}

func (t *table[T]) display(v T) string {
	return t.index[string(v)]
}

func (t *table[T]) valid(v T) bool {
	_, ok := t.index[string(v)]
	return ok
}

func (t *table[T]) parse(code string) (T, error) {
	if _, ok := t.index[code]; !ok {
		return "", errors.Wrapf(ErrUnknownCode, "%s %q", t.system.Name, code)
	}
	return T(code), nil
}

func (t *table[T]) values() []T {
	out := make([]T, len(t.entries))
	for i, e := range t.entries {
		out[i] = T(e.code)
	}
	return out
}

func (t *table[T]) codes() map[string]string {
	out := make(map[string]string, len(t.index))
	for k, v := range t.index {
		out[k] = v
	}
	return out
}

func (t *table[T]) codeSystem() CodeSystem {
	return t.system
}

// codeTable is the non-generic view of a table used by the registry.
type codeTable interface {
	codeSystem() CodeSystem
	codes() map[string]string
}
