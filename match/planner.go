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

// Package match declares the Match Planner contract (C5). The planner's
// internals - join ordering, index selection, cost-based search - are
// explicitly out of this core's scope (spec section 1); this package
// only fixes the interface the pipeline compiler calls through, plus a
// deterministic stub used by tests and compilebench.
package match

import (
	"github.com/GHR-Arash/typedb/concept"
	"github.com/GHR-Arash/typedb/ids"
	"github.com/GHR-Arash/typedb/stage"
	"github.com/GHR-Arash/typedb/variable"
)

// Block is the annotated pattern block a Match stage compiles. Only the
// fields the pipeline compiler itself needs to thread through (the
// variables a match references) are modeled here; the rest of the
// pattern's internal shape belongs to the opaque planner.
type Block struct {
	// NamedReferencedVariables are every variable this match names. The
	// stage-sequence compiler adds them to the selected-variable set it
	// hands the planner; it does not check them against input positions.
	NamedReferencedVariables []variable.Variable
}

// Annotations is an opaque bag of per-block type annotations produced by
// the (out of scope) annotator, passed through unopened.
type Annotations any

// Expressions is an opaque bag of compiled expressions referenced by the
// block, passed through unopened.
type Expressions any

// Executable is the compiled Match stage. Its output row mapping is
// entirely the planner's decision; this core never second-guesses it.
type Executable struct {
	id      ids.ExecutableID
	mapping variable.RowMapping
}

func (e *Executable) Kind() stage.Kind                    { return stage.KindMatch }
func (e *Executable) ExecutableID() ids.ExecutableID       { return e.id }
func (e *Executable) OutputRowMapping() variable.RowMapping { return e.mapping }

// NewExecutable lets a Planner implementation construct a Match
// Executable once it has decided the output row mapping.
func NewExecutable(mapping variable.RowMapping) *Executable {
	return &Executable{id: ids.NextExecutableID(), mapping: mapping}
}

// Planner compiles one pattern block into a MatchExecutable. It is the
// one opaque collaborator the pipeline compiler calls through (C5);
// everything about join ordering and index selection lives behind this
// interface and outside this core's scope.
type Planner interface {
	Compile(
		block Block,
		annotations Annotations,
		expressions Expressions,
		inputPositions variable.RowMapping,
		selectedVariables []variable.Variable,
		registry *variable.Registry,
		statistics concept.Statistics,
	) (*Executable, error)
}
