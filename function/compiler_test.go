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

package function_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GHR-Arash/typedb/function"
	"github.com/GHR-Arash/typedb/match"
	"github.com/GHR-Arash/typedb/sequence"
	"github.com/GHR-Arash/typedb/stage"
	"github.com/GHR-Arash/typedb/variable"
)

func TestCompileRejectsReservedKeywordAsFunctionName(t *testing.T) {
	r := variable.NewRegistry()
	fn := function.Annotated{ID: function.Schema("match")}
	_, err := function.Compile(fn, false, r, nil, match.StubPlanner{})
	require.Error(t, err)
}

func TestCompileRejectsInsertStageInFunctionBody(t *testing.T) {
	r := variable.NewRegistry()
	x := r.NewAnonymous(variable.Entity, "x")
	fn := function.Annotated{
		ID:         function.Schema("f"),
		Parameters: []variable.Variable{x},
		Body: []sequence.AnnotatedStage{
			{Kind: stage.KindInsert, Insert: &sequence.InsertSpec{}},
		},
		Return: function.ReturnSpec{Kind: function.Single, Variables: []variable.Variable{x}},
	}
	_, err := function.Compile(fn, false, r, nil, match.StubPlanner{})
	require.Error(t, err)
}

func TestCompileRejectsUnusedParameter(t *testing.T) {
	r := variable.NewRegistry()
	used := r.NewAnonymous(variable.Entity, "used")
	unused := r.NewAnonymous(variable.Entity, "unused")
	fn := function.Annotated{
		ID:         function.Schema("f"),
		Parameters: []variable.Variable{used, unused},
		Return:     function.ReturnSpec{Kind: function.Single, Variables: []variable.Variable{used}},
	}
	_, err := function.Compile(fn, false, r, nil, match.StubPlanner{})
	require.Error(t, err)
}

func TestCompileRejectsReturnVariableNotInOutputMapping(t *testing.T) {
	r := variable.NewRegistry()
	x := r.NewAnonymous(variable.Entity, "x")
	ghost := r.NewAnonymous(variable.Entity, "ghost")
	fn := function.Annotated{
		ID:         function.Schema("f"),
		Parameters: []variable.Variable{x},
		Return:     function.ReturnSpec{Kind: function.Single, Variables: []variable.Variable{ghost}},
	}
	_, err := function.Compile(fn, false, r, nil, match.StubPlanner{})
	require.Error(t, err)
}

func TestCompileSucceedsWithUsedParameterAndValidReturn(t *testing.T) {
	r := variable.NewRegistry()
	x := r.NewAnonymous(variable.Entity, "x")
	fn := function.Annotated{
		ID:         function.Schema("f"),
		Parameters: []variable.Variable{x},
		Return:     function.ReturnSpec{Kind: function.Single, Variables: []variable.Variable{x}},
	}
	compiled, err := function.Compile(fn, true, r, nil, match.StubPlanner{})
	require.NoError(t, err)
	require.True(t, compiled.RequiresTabling)
	require.Equal(t, function.Schema("f"), compiled.ID)
	require.Empty(t, compiled.Stages)
}

func TestRegistryMergeLetsOtherWinOnCollision(t *testing.T) {
	base := function.NewRegistry()
	base.Put(&function.Compiled{ID: function.Schema("f"), RequiresTabling: false})
	override := function.NewRegistry()
	override.Put(&function.Compiled{ID: function.Schema("f"), RequiresTabling: true})

	merged := base.Merge(override)
	got, ok := merged.Lookup(function.Schema("f"))
	require.True(t, ok)
	require.True(t, got.RequiresTabling)
}
