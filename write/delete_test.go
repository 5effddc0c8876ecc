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

package write_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GHR-Arash/typedb/concept/memconcept"
	"github.com/GHR-Arash/typedb/variable"
	"github.com/GHR-Arash/typedb/write"
)

func TestCompileDeleteMarksDeletedVariablesNoneAtOriginalPosition(t *testing.T) {
	r := variable.NewRegistry()
	keep := r.NewAnonymous(variable.Entity, "keep")
	gone := r.NewAnonymous(variable.Entity, "gone")
	input := variable.RowMapping{keep: 0, gone: 1}

	exec, err := write.CompileDelete([]variable.Variable{gone}, input)
	require.NoError(t, err)

	schema := exec.OutputRowSchema()
	require.Len(t, schema, 2)
	require.True(t, schema[0].HasValue)
	require.Equal(t, keep, schema[0].Variable)
	require.False(t, schema[1].HasValue)

	_, stillMapped := exec.OutputRowMapping()[gone]
	require.False(t, stillMapped)
}

func TestCompileDeleteRejectsVariableNotInInput(t *testing.T) {
	r := variable.NewRegistry()
	ghost := r.NewAnonymous(variable.Entity, "ghost")

	_, err := write.CompileDelete([]variable.Variable{ghost}, variable.RowMapping{})
	require.Error(t, err)
}

func TestDeleteAttributeCascadesUnlinkThenDelete(t *testing.T) {
	store := memconcept.New()
	attribute := []byte("age-30")
	ownerA := []byte("alice")
	ownerB := []byte("bob")
	store.AddOwns(attribute, ownerA, 1)
	store.AddOwns(attribute, ownerB, 2)

	snap := memconcept.WriteSnapshot(store)
	err := write.DeleteAttribute(context.Background(), snap, store, attribute)
	require.NoError(t, err)

	cursor, err := store.GetOwners(context.Background(), snap, attribute)
	require.NoError(t, err)
	_, _, ok, err := cursor.Next(context.Background())
	require.NoError(t, err)
	require.False(t, ok, "every owner must be unlinked before the attribute is considered deleted")
}
