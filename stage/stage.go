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

// Package stage defines the ExecutableStage contract shared by every
// compiled stage kind (Match, Insert, Delete, Select, Sort, Offset,
// Limit, Require, Reduce). It is deliberately dependency-light so every
// stage-kind package (modifier, write, reduce, match, ...) can implement
// it without creating an import cycle with the orchestrating pipeline
// package.
package stage

import (
	"github.com/GHR-Arash/typedb/ids"
	"github.com/GHR-Arash/typedb/variable"
)

// Kind tags which ExecutableStage variant a Stage is, for exhaustive
// switches at call sites that must branch on stage identity (e.g.
// telemetry, explain output).
type Kind int

const (
	KindMatch Kind = iota
	KindInsert
	KindDelete
	KindSelect
	KindSort
	KindOffset
	KindLimit
	KindRequire
	KindReduce
)

func (k Kind) String() string {
	switch k {
	case KindMatch:
		return "Match"
	case KindInsert:
		return "Insert"
	case KindDelete:
		return "Delete"
	case KindSelect:
		return "Select"
	case KindSort:
		return "Sort"
	case KindOffset:
		return "Offset"
	case KindLimit:
		return "Limit"
	case KindRequire:
		return "Require"
	case KindReduce:
		return "Reduce"
	default:
		return "Unknown"
	}
}

// Stage is the tagged-variant contract every compiled ExecutableStage
// satisfies. It is read-only and shared (reference-counted in spirit,
// via Go's ordinary garbage-collected sharing) once constructed.
type Stage interface {
	// Kind identifies which variant this is, for exhaustive dispatch.
	Kind() Kind
	// ExecutableID is a process-wide, monotonically increasing identity
	// used only for caching/telemetry equality, never for correctness.
	ExecutableID() ids.ExecutableID
	// OutputRowMapping is the Variable -> Position layout this stage
	// publishes to its successor.
	OutputRowMapping() variable.RowMapping
}
