// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package variable implements the variable half of C1, the variable
// registry (the parameter registry is package params). It allocates opaque Variable identities, narrows their Category as the
// annotator revisits them, and tracks optionality.
package variable

import (
	"fmt"

	"github.com/GHR-Arash/typedb/typedberr"
)

// Variable is an opaque identity allocated by the Registry. Named
// variables carry a textual name; anonymous ones do not.
type Variable struct {
	id uint64
}

// ID exposes the raw numeric identity, useful as a map key alternative in
// hot paths; callers should otherwise treat Variable as opaque.
func (v Variable) ID() uint64 { return v.id }

func (v Variable) String() string { return fmt.Sprintf("$var#%d", v.id) }

// Position is a zero-based index into an execution row. Positions are
// stage-local: every stage publishes a Variable -> Position mapping that
// its successor consumes as input positions.
type Position int

// RowMapping is the output row layout published by a stage.
type RowMapping map[Variable]Position

// Positions returns the mapping's values sorted ascending, useful for
// asserting density (Invariant: positions dense from 0).
func (m RowMapping) Positions() []Position {
	out := make([]Position, 0, len(m))
	for _, p := range m {
		out = append(out, p)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

type entry struct {
	category Category
	optional bool
	name     string
	isNamed  bool
	source   string
}

// Registry allocates Variable identities and narrows their categories.
// A Registry is owned by a single query compile; it is not safe for
// concurrent use without external synchronization.
type Registry struct {
	next    uint64
	entries map[uint64]*entry
	byName  map[string]Variable
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[uint64]*entry),
		byName:  make(map[string]Variable),
	}
}

// NewAnonymous allocates a fresh anonymous Variable with the given
// initial category, attributed to source for later diagnostics.
func (r *Registry) NewAnonymous(category Category, source string) Variable {
	v := Variable{id: r.next}
	r.next++
	r.entries[v.id] = &entry{category: category, source: source}
	return v
}

// NewNamed allocates a fresh named Variable, or returns the existing one
// if name was already registered, narrowing its category in that case.
func (r *Registry) NewNamed(name string, category Category, source string) (Variable, error) {
	if existing, ok := r.byName[name]; ok {
		if err := r.SetCategory(existing, category, source); err != nil {
			return Variable{}, err
		}
		return existing, nil
	}
	v := Variable{id: r.next}
	r.next++
	r.entries[v.id] = &entry{category: category, name: name, isNamed: true, source: source}
	r.byName[name] = v
	return v, nil
}

// SetCategory narrows v's category against category. If the two are
// incompatible the registry is left unchanged and
// typedberr.ErrVariableCategoryMismatch is returned.
func (r *Registry) SetCategory(v Variable, category Category, source string) error {
	e, ok := r.entries[v.id]
	if !ok {
		return fmt.Errorf("variable %s is not registered", v)
	}
	narrowed, ok := narrow(e.category, category)
	if !ok {
		return typedberr.ErrVariableCategoryMismatch.New(e.category, category, v)
	}
	if narrowed != e.category {
		e.category = narrowed
		e.source = source
	}
	return nil
}

// Category returns v's current category.
func (r *Registry) Category(v Variable) (Category, bool) {
	e, ok := r.entries[v.id]
	if !ok {
		return 0, false
	}
	return e.category, true
}

// SetOptional marks v optional. Optionality is set-and-remove: it never
// narrows, it simply flips the flag.
func (r *Registry) SetOptional(v Variable, optional bool) {
	if e, ok := r.entries[v.id]; ok {
		e.optional = optional
	}
}

// IsOptional reports whether v has been marked optional.
func (r *Registry) IsOptional(v Variable) bool {
	e, ok := r.entries[v.id]
	return ok && e.optional
}

// Name returns v's name and whether it is named.
func (r *Registry) Name(v Variable) (string, bool) {
	e, ok := r.entries[v.id]
	if !ok {
		return "", false
	}
	return e.name, e.isNamed
}

// Len reports the number of allocated variables.
func (r *Registry) Len() int { return len(r.entries) }
