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

// Package sequence implements the stage-sequence compiler (spec section
// 4.2): it threads variable positions stage-to-stage and dispatches each
// annotated stage to its kind-specific compiler (modifier, write, match,
// reduce). It is shared by the pipeline compiler (C8) and the function
// compiler (C6, whose bodies are themselves a restricted stage sequence)
// without either importing the other.
package sequence

import (
	"github.com/GHR-Arash/typedb/match"
	"github.com/GHR-Arash/typedb/modifier"
	"github.com/GHR-Arash/typedb/reduce"
	"github.com/GHR-Arash/typedb/stage"
	"github.com/GHR-Arash/typedb/variable"
	"github.com/GHR-Arash/typedb/write"
)

// MatchSpec is one annotated Match stage.
type MatchSpec struct {
	Block       match.Block
	Annotations match.Annotations
	Expressions match.Expressions
}

// InsertSpec is one annotated Insert stage.
type InsertSpec struct {
	Constraints []write.Constraint
}

// DeleteSpec is one annotated Delete stage.
type DeleteSpec struct {
	Deleted []variable.Variable
}

// SelectSpec is one annotated Select stage.
type SelectSpec struct {
	Variables []variable.Variable
}

// SortSpec is one annotated Sort stage.
type SortSpec struct {
	By []modifier.SortVariable
}

// OffsetSpec is one annotated Offset stage.
type OffsetSpec struct {
	N uint64
}

// LimitSpec is one annotated Limit stage. Use modifier.Unbounded for "no
// limit", the modifier's identity value.
type LimitSpec struct {
	N uint64
}

// RequireSpec is one annotated Require stage.
type RequireSpec struct {
	Required []variable.Variable
}

// ReduceAssignment pairs one reduce.Assignment with the (optional)
// output Variable the annotator names for it.
type ReduceAssignment struct {
	Assignment   reduce.Assignment
	OutputVariable variable.Variable
	HasOutput    bool
}

// ReduceSpec is one annotated Reduce stage.
type ReduceSpec struct {
	WithinGroup []variable.Variable
	Assigned    []ReduceAssignment
}

// AnnotatedStage is the tagged union of one pre-compile stage, mirroring
// ExecutableStage's own tagging so dispatch stays exhaustive.
type AnnotatedStage struct {
	Kind    stage.Kind
	Match   *MatchSpec
	Insert  *InsertSpec
	Delete  *DeleteSpec
	Select  *SelectSpec
	Sort    *SortSpec
	Offset  *OffsetSpec
	Limit   *LimitSpec
	Require *RequireSpec
	Reduce  *ReduceSpec
}

// namedReferencedVariables returns the variables a stage's own
// declaration names, used to extend the globally selected set for the
// match planner (spec 4.2).
func namedReferencedVariables(s AnnotatedStage) []variable.Variable {
	switch s.Kind {
	case stage.KindMatch:
		return s.Match.Block.NamedReferencedVariables
	case stage.KindInsert:
		var vars []variable.Variable
		for _, c := range s.Insert.Constraints {
			vars = append(vars, c.Variable)
		}
		return vars
	case stage.KindDelete:
		return s.Delete.Deleted
	case stage.KindSelect:
		return s.Select.Variables
	case stage.KindSort:
		vars := make([]variable.Variable, len(s.Sort.By))
		for i, sv := range s.Sort.By {
			vars[i] = sv.Variable
		}
		return vars
	case stage.KindRequire:
		return s.Require.Required
	case stage.KindReduce:
		vars := append([]variable.Variable{}, s.Reduce.WithinGroup...)
		for _, a := range s.Reduce.Assigned {
			if a.Assignment.HasVariable {
				vars = append(vars, a.Assignment.ReducerOnVariable)
			}
		}
		return vars
	default:
		return nil
	}
}

// unionSelected computes the stable, deduplicated union of the globally
// selected set and a stage's own named-referenced variables.
func unionSelected(global []variable.Variable, stageVars []variable.Variable) []variable.Variable {
	seen := make(map[variable.Variable]bool, len(global)+len(stageVars))
	out := make([]variable.Variable, 0, len(global)+len(stageVars))
	for _, v := range global {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for _, v := range stageVars {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
