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

package sequence

import (
	"fmt"

	"github.com/GHR-Arash/typedb/concept"
	"github.com/GHR-Arash/typedb/match"
	"github.com/GHR-Arash/typedb/modifier"
	"github.com/GHR-Arash/typedb/reduce"
	"github.com/GHR-Arash/typedb/stage"
	"github.com/GHR-Arash/typedb/typedberr"
	"github.com/GHR-Arash/typedb/variable"
	"github.com/GHR-Arash/typedb/write"
)

// CompileStages compiles an ordered list of annotated stages (spec
// section 4.2). inputVariables seeds the first stage's input positions
// in the order given; every later stage's input positions are its
// predecessor's output mapping. globallySelected is the pipeline-level
// selected-variable set consulted when compiling Match stages.
//
// Returns the compiled stages and the final output mapping (equal to
// inputPositions, empty or not, when stages is empty - the Boundary
// Behavior from spec section 8).
func CompileStages(
	stages []AnnotatedStage,
	inputVariables []variable.Variable,
	globallySelected []variable.Variable,
	registry *variable.Registry,
	stats concept.Statistics,
	planner match.Planner,
) ([]stage.Stage, variable.RowMapping, error) {
	current := make(variable.RowMapping, len(inputVariables))
	for i, v := range inputVariables {
		current[v] = variable.Position(i)
	}

	compiled := make([]stage.Stage, 0, len(stages))
	for _, s := range stages {
		next, err := compileOne(s, current, globallySelected, registry, stats, planner)
		if err != nil {
			return nil, nil, err
		}
		compiled = append(compiled, next)
		current = next.OutputRowMapping()
	}
	return compiled, current, nil
}

func compileOne(
	s AnnotatedStage,
	input variable.RowMapping,
	globallySelected []variable.Variable,
	registry *variable.Registry,
	stats concept.Statistics,
	planner match.Planner,
) (stage.Stage, error) {
	selected := unionSelected(globallySelected, namedReferencedVariables(s))

	switch s.Kind {
	case stage.KindMatch:
		exec, err := planner.Compile(s.Match.Block, s.Match.Annotations, s.Match.Expressions, input, selected, registry, stats)
		if err != nil {
			return nil, typedberr.ErrMatchCompilation.New(err.Error())
		}
		return exec, nil

	case stage.KindInsert:
		exec, err := write.CompileInsert(s.Insert.Constraints, input)
		if err != nil {
			return nil, err
		}
		return exec, nil

	case stage.KindDelete:
		exec, err := write.CompileDelete(s.Delete.Deleted, input)
		if err != nil {
			return nil, err
		}
		return exec, nil

	case stage.KindSelect:
		exec, err := modifier.CompileSelect(s.Select.Variables, input)
		if err != nil {
			return nil, typedberr.ErrModifierCompilation.New(err.Error())
		}
		return exec, nil

	case stage.KindSort:
		exec, err := modifier.CompileSort(s.Sort.By, input)
		if err != nil {
			return nil, typedberr.ErrModifierCompilation.New(err.Error())
		}
		return exec, nil

	case stage.KindOffset:
		return modifier.CompileOffset(s.Offset.N, input), nil

	case stage.KindLimit:
		return modifier.CompileLimit(s.Limit.N, input), nil

	case stage.KindRequire:
		exec, err := modifier.CompileRequire(s.Require.Required, input)
		if err != nil {
			return nil, typedberr.ErrModifierCompilation.New(err.Error())
		}
		return exec, nil

	case stage.KindReduce:
		return compileReduce(s.Reduce, input)

	default:
		return nil, fmt.Errorf("sequence: unknown stage kind %v", s.Kind)
	}
}

func compileReduce(s *ReduceSpec, input variable.RowMapping) (stage.Stage, error) {
	assignments := make([]reduce.Assignment, len(s.Assigned))
	for i, a := range s.Assigned {
		assignments[i] = a.Assignment
	}
	exec, err := reduce.Compile(s.WithinGroup, assignments, input)
	if err != nil {
		return nil, typedberr.ErrReduceCompilation.New(err.Error())
	}
	for i, a := range s.Assigned {
		if a.HasOutput {
			if err := exec.BindOutputVariable(i, a.OutputVariable); err != nil {
				return nil, typedberr.ErrReduceCompilation.New(err.Error())
			}
		}
	}
	return exec, nil
}
