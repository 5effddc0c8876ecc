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

package reduce

import (
	"fmt"

	"github.com/GHR-Arash/typedb/ids"
	"github.com/GHR-Arash/typedb/stage"
	"github.com/GHR-Arash/typedb/variable"
)

// Executable is the compiled Reduce stage. Its output row layout places
// the within_group variables first, in declaration order, followed by
// one slot per reduction, in declaration order.
type Executable struct {
	id                  ids.ExecutableID
	withinGroup         []variable.Variable
	inputGroupPositions []variable.Position
	reductions          []Instruction
	outputMapping       variable.RowMapping
}

func (e *Executable) Kind() stage.Kind                            { return stage.KindReduce }
func (e *Executable) ExecutableID() ids.ExecutableID               { return e.id }
func (e *Executable) OutputRowMapping() variable.RowMapping         { return e.outputMapping }
func (e *Executable) WithinGroup() []variable.Variable              { return e.withinGroup }
func (e *Executable) InputGroupPositions() []variable.Position      { return e.inputGroupPositions }
func (e *Executable) Reductions() []Instruction                     { return e.reductions }

// Compile builds a Reduce Executable. withinGroup is the ordered list of
// grouping variables; assigned is the ordered list of reduction
// assignments. input is the prior stage's output mapping, used to
// translate each reducer_on_variable into a reducer_on_position.
func Compile(withinGroup []variable.Variable, assigned []Assignment, input variable.RowMapping) (*Executable, error) {
	groupPositions := make([]variable.Position, len(withinGroup))
	outputMapping := make(variable.RowMapping, len(withinGroup)+len(assigned))

	for i, v := range withinGroup {
		pos, ok := input[v]
		if !ok {
			return nil, fmt.Errorf("reduce: grouping variable %s is not present in input positions", v)
		}
		groupPositions[i] = pos
		outputMapping[v] = variable.Position(i)
	}

	instructions := make([]Instruction, len(assigned))
	base := len(withinGroup)
	for i, a := range assigned {
		instr := Instruction{Kind: a.Kind, OutputType: OutputValueType(a.Kind)}
		if needsInputVariable(a.Kind) {
			if !a.HasVariable {
				return nil, fmt.Errorf("reduce: reducer %s requires an input variable", a.Kind)
			}
			pos, ok := input[a.ReducerOnVariable]
			if !ok {
				return nil, fmt.Errorf("reduce: reducer variable %s is not present in input positions", a.ReducerOnVariable)
			}
			instr.ReducerOnPosition = pos
			instr.HasPosition = true
		}
		instructions[i] = instr
		// Reduction outputs have no source Variable of their own in the
		// annotated IR; callers that need to reference an output by
		// Variable allocate a fresh one and map it externally via
		// BindOutputVariable(i, outVar).
		_ = base
	}

	return &Executable{
		id:                  ids.NextExecutableID(),
		withinGroup:         withinGroup,
		inputGroupPositions: groupPositions,
		reductions:          instructions,
		outputMapping:       outputMapping,
	}, nil
}

// BindOutputVariable records that outVar names the reduction at index i
// in the output row (position len(withinGroup)+i). Pipelines call this
// once per assigned reduction whose annotated IR names an output
// variable, keeping Executable.OutputRowMapping complete.
func (e *Executable) BindOutputVariable(i int, outVar variable.Variable) error {
	if i < 0 || i >= len(e.reductions) {
		return fmt.Errorf("reduce: reduction index %d out of range", i)
	}
	e.outputMapping[outVar] = variable.Position(len(e.withinGroup) + i)
	return nil
}
