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

package match

import (
	"github.com/GHR-Arash/typedb/concept"
	"github.com/GHR-Arash/typedb/variable"
)

// StubPlanner is a deterministic Planner test double: it publishes the
// input positions unioned with a fresh position for every named
// referenced variable not already bound, in declaration order. It makes
// no attempt at join ordering or index selection - those remain out of
// this core's scope even for the stub.
type StubPlanner struct{}

func (StubPlanner) Compile(
	block Block,
	_ Annotations,
	_ Expressions,
	inputPositions variable.RowMapping,
	_ []variable.Variable,
	_ *variable.Registry,
	_ concept.Statistics,
) (*Executable, error) {
	mapping := make(variable.RowMapping, len(inputPositions)+len(block.NamedReferencedVariables))
	next := variable.Position(len(inputPositions))
	for v, p := range inputPositions {
		mapping[v] = p
	}
	for _, v := range block.NamedReferencedVariables {
		if _, ok := mapping[v]; ok {
			continue
		}
		mapping[v] = next
		next++
	}
	return NewExecutable(mapping), nil
}
