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

package fetch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GHR-Arash/typedb/fetch"
	"github.com/GHR-Arash/typedb/function"
	"github.com/GHR-Arash/typedb/variable"
)

func TestCompileLeafVariableResolvesPosition(t *testing.T) {
	r := variable.NewRegistry()
	x := r.NewAnonymous(variable.Entity, "x")
	mapping := variable.RowMapping{x: 3}

	exec, err := fetch.Compile(fetch.AnnotatedNode{
		Kind: fetch.Leaf, LeafVariable: x, LeafIsVar: true,
	}, mapping, function.NewRegistry())
	require.NoError(t, err)
	require.Equal(t, variable.Position(3), exec.Root.LeafPosition)
}

func TestCompileLeafVariableRejectsMissingVariable(t *testing.T) {
	r := variable.NewRegistry()
	ghost := r.NewAnonymous(variable.Entity, "ghost")

	_, err := fetch.Compile(fetch.AnnotatedNode{
		Kind: fetch.Leaf, LeafVariable: ghost, LeafIsVar: true,
	}, variable.RowMapping{}, function.NewRegistry())
	require.Error(t, err)
}

func TestCompileLeafCallResolvesFunctionAndArguments(t *testing.T) {
	r := variable.NewRegistry()
	x := r.NewAnonymous(variable.Entity, "x")
	mapping := variable.RowMapping{x: 0}

	functions := function.NewRegistry()
	functions.Put(&function.Compiled{ID: function.Schema("f")})

	exec, err := fetch.Compile(fetch.AnnotatedNode{
		Kind:     fetch.Leaf,
		LeafCall: &fetch.Call{Function: function.Schema("f"), Arguments: []variable.Variable{x}},
	}, mapping, functions)
	require.NoError(t, err)
	require.NotNil(t, exec.Root.LeafFunction)
	require.Equal(t, []variable.Position{0}, exec.Root.LeafArguments)
}

func TestCompileLeafCallRejectsUnknownFunction(t *testing.T) {
	_, err := fetch.Compile(fetch.AnnotatedNode{
		Kind:     fetch.Leaf,
		LeafCall: &fetch.Call{Function: function.Schema("missing")},
	}, variable.RowMapping{}, function.NewRegistry())
	require.Error(t, err)
}

func TestCompileListWrapsItsElement(t *testing.T) {
	r := variable.NewRegistry()
	x := r.NewAnonymous(variable.Entity, "x")
	mapping := variable.RowMapping{x: 0}

	leaf := fetch.AnnotatedNode{Kind: fetch.Leaf, LeafVariable: x, LeafIsVar: true}
	exec, err := fetch.Compile(fetch.AnnotatedNode{Kind: fetch.List, ListOf: &leaf}, mapping, function.NewRegistry())
	require.NoError(t, err)
	require.Equal(t, fetch.List, exec.Root.Kind)
	require.NotNil(t, exec.Root.ListOf)
	require.Equal(t, variable.Position(0), exec.Root.ListOf.LeafPosition)
}

func TestCompileObjectPreservesFieldOrderAndCompilesEachField(t *testing.T) {
	r := variable.NewRegistry()
	x := r.NewAnonymous(variable.Entity, "x")
	y := r.NewAnonymous(variable.Entity, "y")
	mapping := variable.RowMapping{x: 0, y: 1}

	exec, err := fetch.Compile(fetch.AnnotatedNode{
		Kind:       fetch.Object,
		FieldNames: []string{"a", "b"},
		Fields: map[string]fetch.AnnotatedNode{
			"a": {Kind: fetch.Leaf, LeafVariable: x, LeafIsVar: true},
			"b": {Kind: fetch.Leaf, LeafVariable: y, LeafIsVar: true},
		},
	}, mapping, function.NewRegistry())
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, exec.Root.FieldNames)
	require.Equal(t, variable.Position(0), exec.Root.Fields["a"].LeafPosition)
	require.Equal(t, variable.Position(1), exec.Root.Fields["b"].LeafPosition)
}

func TestCompileObjectPropagatesNestedFieldError(t *testing.T) {
	r := variable.NewRegistry()
	ghost := r.NewAnonymous(variable.Entity, "ghost")

	_, err := fetch.Compile(fetch.AnnotatedNode{
		Kind:       fetch.Object,
		FieldNames: []string{"a"},
		Fields: map[string]fetch.AnnotatedNode{
			"a": {Kind: fetch.Leaf, LeafVariable: ghost, LeafIsVar: true},
		},
	}, variable.RowMapping{}, function.NewRegistry())
	require.Error(t, err)
}
