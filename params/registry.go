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

// Package params implements the compiler's ParameterRegistry: three
// disjoint, densely-indexed mappings from a typed ParameterID to the
// constant a stage plan references (a literal value, a raw IID, or a
// fetch projection key).
package params

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind discriminates the three disjoint parameter mappings.
type Kind int

const (
	ValueKind Kind = iota
	IIDKind
	FetchKeyKind
)

func (k Kind) String() string {
	switch k {
	case ValueKind:
		return "value"
	case IIDKind:
		return "iid"
	case FetchKeyKind:
		return "fetch-key"
	default:
		return "unknown"
	}
}

// ID is a typed reference into one of the registry's three mappings.
// IDs are dense and sequential per Kind, in insertion order.
type ID struct {
	Kind  Kind
	Index int
}

func (id ID) String() string { return fmt.Sprintf("%s#%d", id.Kind, id.Index) }

// Value is a literal constant owned by the registry for the lifetime of
// the compiled pipeline.
type Value struct {
	ValueType string
	Data      any
}

// NewLongValue wraps an integer literal as a "long"-typed Value.
func NewLongValue(v int64) Value {
	return Value{ValueType: "long", Data: v}
}

// NewDoubleValue wraps a floating-point literal as a "double"-typed
// Value, stored as a decimal.Decimal rather than a float64: a query
// literal like `1.10` must round-trip through compilation and back out
// through a reduce instruction's output without drifting, the same
// concern the teacher's DECIMAL sql.Type carries a decimal.Decimal for.
func NewDoubleValue(v decimal.Decimal) Value {
	return Value{ValueType: "double", Data: v}
}

// maxIIDLength bounds the raw identifier byte length the registry accepts.
const maxIIDLength = 64

// Registry owns the query's constant parameters. A Registry outlives all
// stages compiled against it and is never mutated after the pipeline is
// assembled.
type Registry struct {
	values    []Value
	iids      [][]byte
	fetchKeys []string
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterValue appends v and returns its dense ID.
func (r *Registry) RegisterValue(v Value) ID {
	idx := len(r.values)
	r.values = append(r.values, v)
	return ID{Kind: ValueKind, Index: idx}
}

// RegisterIID appends a raw identifier and returns its dense ID. It
// panics if iid exceeds the bounded length, a caller programming error.
func (r *Registry) RegisterIID(iid []byte) ID {
	if len(iid) > maxIIDLength {
		panic(fmt.Sprintf("params: iid of length %d exceeds bound %d", len(iid), maxIIDLength))
	}
	idx := len(r.iids)
	cp := make([]byte, len(iid))
	copy(cp, iid)
	r.iids = append(r.iids, cp)
	return ID{Kind: IIDKind, Index: idx}
}

// RegisterFetchKey appends a fetch projection key and returns its dense ID.
func (r *Registry) RegisterFetchKey(key string) ID {
	idx := len(r.fetchKeys)
	r.fetchKeys = append(r.fetchKeys, key)
	return ID{Kind: FetchKeyKind, Index: idx}
}

// InsertValueAt inserts v at an explicit, caller-chosen ID. Re-inserting
// at an already-used ID (or skipping ahead of the dense sequence) is a
// programming error and panics: the caller's own bookkeeping is broken.
func (r *Registry) InsertValueAt(id ID, v Value) {
	if id.Kind != ValueKind {
		panic(fmt.Sprintf("params: InsertValueAt called with kind %s", id.Kind))
	}
	if id.Index != len(r.values) {
		panic(fmt.Sprintf("params: value id %d is not the next dense id (expected %d)", id.Index, len(r.values)))
	}
	r.values = append(r.values, v)
}

// Value looks up a previously registered literal.
func (r *Registry) Value(id ID) (Value, bool) {
	if id.Kind != ValueKind || id.Index < 0 || id.Index >= len(r.values) {
		return Value{}, false
	}
	return r.values[id.Index], true
}

// IID looks up a previously registered raw identifier.
func (r *Registry) IID(id ID) ([]byte, bool) {
	if id.Kind != IIDKind || id.Index < 0 || id.Index >= len(r.iids) {
		return nil, false
	}
	return r.iids[id.Index], true
}

// FetchKey looks up a previously registered fetch projection key.
func (r *Registry) FetchKey(id ID) (string, bool) {
	if id.Kind != FetchKeyKind || id.Index < 0 || id.Index >= len(r.fetchKeys) {
		return "", false
	}
	return r.fetchKeys[id.Index], true
}

// ValueCount, IIDCount, FetchKeyCount report the density of each mapping;
// used by tests asserting Invariant 8 (dense 0..n-1 IDs per kind).
func (r *Registry) ValueCount() int    { return len(r.values) }
func (r *Registry) IIDCount() int      { return len(r.iids) }
func (r *Registry) FetchKeyCount() int { return len(r.fetchKeys) }
