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

package variable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GHR-Arash/typedb/variable"
)

func TestRegistryNewNamedReusesExistingVariable(t *testing.T) {
	r := variable.NewRegistry()

	a, err := r.NewNamed("x", variable.Entity, "match-1")
	require.NoError(t, err)

	b, err := r.NewNamed("x", variable.Entity, "match-2")
	require.NoError(t, err)

	require.Equal(t, a, b)
	require.Equal(t, 1, r.Len())
}

func TestRegistryNarrowsCompatibleCategories(t *testing.T) {
	cases := []struct {
		name   string
		first  variable.Category
		second variable.Category
		want   variable.Category
	}{
		{"thing narrows to entity", variable.Thing, variable.Entity, variable.Entity},
		{"object narrows to relation", variable.Object, variable.Relation, variable.Relation},
		{"entity then thing stays entity", variable.Entity, variable.Thing, variable.Entity},
		{"type narrows to role", variable.Type, variable.Role, variable.Role},
		{"role then type stays role", variable.Role, variable.Type, variable.Role},
		{"same category is a no-op", variable.Attribute, variable.Attribute, variable.Attribute},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := variable.NewRegistry()
			v := r.NewAnonymous(c.first, "seed")
			require.NoError(t, r.SetCategory(v, c.second, "narrow"))

			got, ok := r.Category(v)
			require.True(t, ok)
			require.Equal(t, c.want, got)
		})
	}
}

func TestRegistryRejectsIncompatibleCategories(t *testing.T) {
	r := variable.NewRegistry()
	v := r.NewAnonymous(variable.Entity, "seed")

	err := r.SetCategory(v, variable.Relation, "conflict")
	require.Error(t, err)

	// The failed narrow must not have mutated the stored category.
	got, ok := r.Category(v)
	require.True(t, ok)
	require.Equal(t, variable.Entity, got)
}

func TestRegistryOptionalityIsSetAndRemoveNotNarrowing(t *testing.T) {
	r := variable.NewRegistry()
	v := r.NewAnonymous(variable.Entity, "seed")

	require.False(t, r.IsOptional(v))
	r.SetOptional(v, true)
	require.True(t, r.IsOptional(v))
	r.SetOptional(v, false)
	require.False(t, r.IsOptional(v))
}

func TestRowMappingPositionsAreDenseAndSorted(t *testing.T) {
	r := variable.NewRegistry()
	a := r.NewAnonymous(variable.Entity, "a")
	b := r.NewAnonymous(variable.Entity, "b")
	c := r.NewAnonymous(variable.Entity, "c")

	mapping := variable.RowMapping{c: 2, a: 0, b: 1}
	require.Equal(t, []variable.Position{0, 1, 2}, mapping.Positions())
}
