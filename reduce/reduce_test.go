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

package reduce_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GHR-Arash/typedb/reduce"
	"github.com/GHR-Arash/typedb/variable"
)

func TestOutputValueTypeMatchesTestableProperty4(t *testing.T) {
	longKinds := []reduce.Kind{reduce.Count, reduce.CountVar, reduce.SumLong, reduce.MaxLong, reduce.MinLong}
	doubleKinds := []reduce.Kind{
		reduce.SumDouble, reduce.MaxDouble, reduce.MinDouble,
		reduce.MeanLong, reduce.MeanDouble, reduce.MedianLong, reduce.MedianDouble,
		reduce.StdLong, reduce.StdDouble,
	}

	for _, k := range longKinds {
		require.Equal(t, reduce.Long, reduce.OutputValueType(k), k.String())
	}
	for _, k := range doubleKinds {
		require.Equal(t, reduce.Double, reduce.OutputValueType(k), k.String())
	}
}

func TestCompileCountNeedsNoInputVariable(t *testing.T) {
	r := variable.NewRegistry()
	group := r.NewAnonymous(variable.Entity, "group")
	input := variable.RowMapping{group: 0}

	exec, err := reduce.Compile(
		[]variable.Variable{group},
		[]reduce.Assignment{{Kind: reduce.Count}},
		input,
	)
	require.NoError(t, err)
	require.Len(t, exec.Reductions(), 1)
	require.False(t, exec.Reductions()[0].HasPosition)
	require.Equal(t, reduce.Long, exec.Reductions()[0].OutputType)
}

func TestCompileRejectsNonCountReducerWithoutVariable(t *testing.T) {
	input := variable.RowMapping{}
	_, err := reduce.Compile(nil, []reduce.Assignment{{Kind: reduce.SumLong}}, input)
	require.Error(t, err)
}

func TestCompileOutputMappingPlacesGroupFirstThenReductions(t *testing.T) {
	r := variable.NewRegistry()
	group := r.NewAnonymous(variable.Entity, "group")
	sumOn := r.NewAnonymous(variable.Attribute, "sum-on")
	out := r.NewAnonymous(variable.Value, "out")
	input := variable.RowMapping{group: 0, sumOn: 1}

	exec, err := reduce.Compile(
		[]variable.Variable{group},
		[]reduce.Assignment{{Kind: reduce.SumLong, ReducerOnVariable: sumOn, HasVariable: true}},
		input,
	)
	require.NoError(t, err)
	require.NoError(t, exec.BindOutputVariable(0, out))

	mapping := exec.OutputRowMapping()
	require.Equal(t, variable.Position(0), mapping[group])
	require.Equal(t, variable.Position(1), mapping[out])
}

func TestBindOutputVariableRejectsOutOfRangeIndex(t *testing.T) {
	input := variable.RowMapping{}
	exec, err := reduce.Compile(nil, []reduce.Assignment{{Kind: reduce.Count}}, input)
	require.NoError(t, err)

	r := variable.NewRegistry()
	v := r.NewAnonymous(variable.Value, "out")
	require.Error(t, exec.BindOutputVariable(5, v))
}
