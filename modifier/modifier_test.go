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

package modifier_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GHR-Arash/typedb/modifier"
	"github.com/GHR-Arash/typedb/variable"
)

func TestSelectRetainsOnlyNamedVariables(t *testing.T) {
	r := variable.NewRegistry()
	a := r.NewAnonymous(variable.Entity, "a")
	b := r.NewAnonymous(variable.Entity, "b")
	input := variable.RowMapping{a: 0, b: 1}

	sel, err := modifier.CompileSelect([]variable.Variable{b}, input)
	require.NoError(t, err)
	require.Equal(t, variable.RowMapping{b: 1}, sel.OutputRowMapping())
}

func TestSelectRejectsUnknownVariable(t *testing.T) {
	r := variable.NewRegistry()
	a := r.NewAnonymous(variable.Entity, "a")
	ghost := r.NewAnonymous(variable.Entity, "ghost")

	_, err := modifier.CompileSelect([]variable.Variable{ghost}, variable.RowMapping{a: 0})
	require.Error(t, err)
}

func TestSortRepublishesInputMappingVerbatim(t *testing.T) {
	r := variable.NewRegistry()
	a := r.NewAnonymous(variable.Entity, "a")
	input := variable.RowMapping{a: 0}

	sort, err := modifier.CompileSort(nil, input)
	require.NoError(t, err)
	require.Equal(t, input, sort.OutputRowMapping())
	require.Empty(t, sort.By())
}

func TestOffsetAndLimitLeavePositionsUntouched(t *testing.T) {
	r := variable.NewRegistry()
	a := r.NewAnonymous(variable.Entity, "a")
	input := variable.RowMapping{a: 0}

	offset := modifier.CompileOffset(0, input)
	require.Equal(t, uint64(0), offset.N())
	require.Equal(t, input, offset.OutputRowMapping())

	limit := modifier.CompileLimit(modifier.Unbounded, input)
	require.Equal(t, uint64(modifier.Unbounded), limit.N())
	require.Equal(t, input, limit.OutputRowMapping())
}

func TestRequireRejectsVariableMissingFromInput(t *testing.T) {
	r := variable.NewRegistry()
	ghost := r.NewAnonymous(variable.Entity, "ghost")

	_, err := modifier.CompileRequire([]variable.Variable{ghost}, variable.RowMapping{})
	require.Error(t, err)
}

func TestRequireWithEmptySetIsIdentity(t *testing.T) {
	r := variable.NewRegistry()
	a := r.NewAnonymous(variable.Entity, "a")
	input := variable.RowMapping{a: 0}

	req, err := modifier.CompileRequire(nil, input)
	require.NoError(t, err)
	require.Empty(t, req.Required())
	require.Equal(t, input, req.OutputRowMapping())
}
