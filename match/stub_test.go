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

package match_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GHR-Arash/typedb/match"
	"github.com/GHR-Arash/typedb/stage"
	"github.com/GHR-Arash/typedb/variable"
)

func TestStubPlannerRetainsAlreadyBoundPositions(t *testing.T) {
	r := variable.NewRegistry()
	x := r.NewAnonymous(variable.Entity, "x")
	y := r.NewAnonymous(variable.Entity, "y")
	input := variable.RowMapping{x: 0}

	block := match.Block{NamedReferencedVariables: []variable.Variable{x, y}}
	exec, err := (match.StubPlanner{}).Compile(block, nil, nil, input, nil, r, nil)
	require.NoError(t, err)
	require.Equal(t, stage.KindMatch, exec.Kind())
	require.Equal(t, variable.Position(0), exec.OutputRowMapping()[x])
	require.Equal(t, variable.Position(1), exec.OutputRowMapping()[y])
}

func TestStubPlannerOnEmptyBlockPublishesInputVerbatim(t *testing.T) {
	r := variable.NewRegistry()
	x := r.NewAnonymous(variable.Entity, "x")
	input := variable.RowMapping{x: 0}

	exec, err := (match.StubPlanner{}).Compile(match.Block{}, nil, nil, input, nil, r, nil)
	require.NoError(t, err)
	require.Equal(t, input, exec.OutputRowMapping())
}
