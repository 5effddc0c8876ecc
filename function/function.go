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

// Package function implements C6: compilation of schema and preamble
// functions, including the strongly-connected-components pass that
// decides which functions require tabled (memoized, fixed-point)
// evaluation at execute time.
package function

import (
	"fmt"

	"github.com/GHR-Arash/typedb/sequence"
	"github.com/GHR-Arash/typedb/stage"
	"github.com/GHR-Arash/typedb/variable"
)

// IDKind discriminates the two FunctionID variants.
type IDKind int

const (
	SchemaID IDKind = iota
	PreambleID
)

// ID is `Schema(name) | Preamble(index)`, stable within one compile.
type ID struct {
	Kind  IDKind
	Name  string
	Index int
}

func Schema(name string) ID  { return ID{Kind: SchemaID, Name: name} }
func Preamble(index int) ID  { return ID{Kind: PreambleID, Index: index} }

func (id ID) String() string {
	if id.Kind == SchemaID {
		return fmt.Sprintf("schema:%s", id.Name)
	}
	return fmt.Sprintf("preamble:%d", id.Index)
}

// Key returns a stable string key for use in maps, unique per ID.
func (id ID) Key() string {
	if id.Kind == SchemaID {
		return "s:" + id.Name
	}
	return fmt.Sprintf("p:%d", id.Index)
}

// ReturnKind distinguishes a function that yields exactly one row
// (Single) from one that yields a stream of rows (Stream).
type ReturnKind int

const (
	Single ReturnKind = iota
	Stream
)

// ReturnSpec is a function's return clause.
type ReturnSpec struct {
	Kind      ReturnKind
	Variables []variable.Variable
}

// Annotated is one not-yet-compiled schema or preamble function.
type Annotated struct {
	ID         ID
	Parameters []variable.Variable
	Body       []sequence.AnnotatedStage
	Return     ReturnSpec
	// Calls lists every function this one's body directly invokes,
	// the call-graph edges the tabling analysis walks.
	Calls []ID
}

// Compiled is the executable form of one function: its stage sequence,
// its return clause, and whether it requires tabled evaluation.
type Compiled struct {
	ID              ID
	RequiresTabling bool
	Stages          []stage.Stage
	Return          ReturnSpec
	OutputMapping   variable.RowMapping
}
