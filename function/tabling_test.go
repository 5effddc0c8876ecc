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
)

func TestAnalyzeTablingMarksDirectSelfRecursion(t *testing.T) {
	fns := []function.Annotated{
		{ID: function.Schema("fib"), Calls: []function.ID{function.Schema("fib")}},
	}
	got := function.AnalyzeTabling(fns)
	require.True(t, got[function.Schema("fib").Key()])
}

func TestAnalyzeTablingMarksMutualRecursion(t *testing.T) {
	fns := []function.Annotated{
		{ID: function.Schema("even"), Calls: []function.ID{function.Schema("odd")}},
		{ID: function.Schema("odd"), Calls: []function.ID{function.Schema("even")}},
	}
	got := function.AnalyzeTabling(fns)
	require.True(t, got[function.Schema("even").Key()])
	require.True(t, got[function.Schema("odd").Key()])
}

func TestAnalyzeTablingLeavesNonRecursiveFunctionsUntabled(t *testing.T) {
	fns := []function.Annotated{
		{ID: function.Schema("leaf"), Calls: nil},
		{ID: function.Schema("caller"), Calls: []function.ID{function.Schema("leaf")}},
	}
	got := function.AnalyzeTabling(fns)
	require.False(t, got[function.Schema("leaf").Key()])
	require.False(t, got[function.Schema("caller").Key()])
}

func TestAnalyzeTablingIgnoresCallsLeavingTheSet(t *testing.T) {
	// The preamble function calls an already-compiled schema function not
	// present in this set; that edge must never manufacture a spurious cycle.
	fns := []function.Annotated{
		{ID: function.Preamble(0), Calls: []function.ID{function.Schema("already-compiled")}},
	}
	got := function.AnalyzeTabling(fns)
	require.False(t, got[function.Preamble(0).Key()])
}
