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

// Package concept declares the storage- and schema-facing interfaces this
// compiler core consumes (Statistics, Snapshot, ThingManager,
// TypeManager) without owning their implementation. Only
// concept/memconcept provides a concrete body, and only for tests and the
// compilebench harness.
package concept

import "fmt"

// TypeID is an opaque, totally ordered schema type identifier. The
// ordering is whatever the TypeManager assigns; this core only relies on
// it being total, stable for the lifetime of a compile, and comparable.
type TypeID uint64

func (t TypeID) String() string { return fmt.Sprintf("type#%d", t) }

// Less gives TypeID its total order, used to derive inclusive type-range
// bounds for storage scans.
func (t TypeID) Less(other TypeID) bool { return t < other }

// IID is a raw instance identifier (bounded length, opaque bytes).
type IID []byte

func (i IID) String() string { return fmt.Sprintf("%x", []byte(i)) }

// RoleTypeID identifies a role type. Roles are also Types (a Role
// narrows Type in the variable category lattice), so RoleTypeID is an
// alias of TypeID, named separately for clarity at call sites.
type RoleTypeID = TypeID

// TypeRange is an inclusive [Min, Max] interval over the TypeID ordering,
// used to bound storage range scans.
type TypeRange struct {
	Min TypeID
	Max TypeID
}

// TypeRangeOf derives the inclusive bounds of a non-empty set of types.
// The compiler asserts non-emptiness: the annotator must never hand the
// compiler an empty type set.
func TypeRangeOf(types []TypeID) TypeRange {
	if len(types) == 0 {
		panic("concept: TypeRangeOf requires a non-empty type set")
	}
	min, max := types[0], types[0]
	for _, t := range types[1:] {
		if t.Less(min) {
			min = t
		}
		if max.Less(t) {
			max = t
		}
	}
	return TypeRange{Min: min, Max: max}
}

// RolePlayer is one (player, role) pair attached to a relation, as
// returned by ThingManager traversal methods.
type RolePlayer struct {
	Player     IID
	PlayerType TypeID
	Role       RoleTypeID
}

// Relation identifies one relation instance and its type, as materialized
// into the links executor's UnboundInverted relation cache.
type Relation struct {
	IID  IID
	Type TypeID
}

// ValueTypeName names a concrete attribute value type, as reported by
// TypeManager.ValueTypeOf.
type ValueTypeName string

const (
	ValueTypeLong    ValueTypeName = "long"
	ValueTypeDouble  ValueTypeName = "double"
	ValueTypeString  ValueTypeName = "string"
	ValueTypeBoolean ValueTypeName = "boolean"
	ValueTypeStruct  ValueTypeName = "struct"
)
