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

package write

import (
	"context"

	"github.com/pkg/errors"

	"github.com/GHR-Arash/typedb/concept"
	"github.com/GHR-Arash/typedb/ids"
	"github.com/GHR-Arash/typedb/stage"
	"github.com/GHR-Arash/typedb/typedberr"
	"github.com/GHR-Arash/typedb/variable"
)

// DeleteSchemaSlot is one entry of a DeleteExecutable's output_row_schema:
// HasValue false marks a deleted variable (erased, None); HasValue true
// marks a survivor, which keeps its original position.
type DeleteSchemaSlot struct {
	Variable variable.Variable
	HasValue bool
}

// DeleteExecutable is the compiled Delete stage.
type DeleteExecutable struct {
	id            ids.ExecutableID
	deleted       map[variable.Variable]bool
	deletedOrder  []variable.Variable
	outputSchema  []DeleteSchemaSlot
	outputMapping variable.RowMapping
}

func (e *DeleteExecutable) Kind() stage.Kind                    { return stage.KindDelete }
func (e *DeleteExecutable) ExecutableID() ids.ExecutableID       { return e.id }
func (e *DeleteExecutable) OutputRowMapping() variable.RowMapping { return e.outputMapping }
func (e *DeleteExecutable) OutputRowSchema() []DeleteSchemaSlot   { return e.outputSchema }
func (e *DeleteExecutable) DeletedVariables() []variable.Variable { return e.deletedOrder }

// CompileDelete builds a DeleteExecutable. The output schema has exactly
// len(input) slots: deleted variables become None at their original
// position, survivors keep Some(variable) at that same position. Unlike
// Insert, positions are never renumbered.
func CompileDelete(deletedVars []variable.Variable, input variable.RowMapping) (*DeleteExecutable, error) {
	deleted := make(map[variable.Variable]bool, len(deletedVars))
	for _, v := range deletedVars {
		if _, ok := input[v]; !ok {
			return nil, typedberr.ErrDeleteExecutableCompilation.New(
				"deleted variable " + v.String() + " is not present in input positions")
		}
		deleted[v] = true
	}

	schema := make([]DeleteSchemaSlot, len(input))
	mapping := make(variable.RowMapping, len(input)-len(deleted))
	for v, pos := range input {
		if deleted[v] {
			schema[pos] = DeleteSchemaSlot{HasValue: false}
			continue
		}
		schema[pos] = DeleteSchemaSlot{Variable: v, HasValue: true}
		mapping[v] = pos
	}

	return &DeleteExecutable{
		id:            ids.NextExecutableID(),
		deleted:       deleted,
		deletedOrder:  deletedVars,
		outputSchema:  schema,
		outputMapping: mapping,
	}, nil
}

// DeleteAttribute performs the cascading unlink-then-delete of one
// attribute instance: every current owner is unlinked before the
// attribute itself is removed.
//
// Owners are snapshotted into a slice before the first unlink, rather
// than driven directly off a live storage iterator, so that unlinking
// owner N does not risk the iterator skipping or re-visiting owner N+1 -
// the hazard flagged against a concurrent-modifying single-pass cursor.
func DeleteAttribute(ctx context.Context, snap concept.WritableSnapshot, tm concept.ThingManager, attribute concept.IID) error {
	cursor, err := tm.GetOwners(ctx, snap, attribute)
	if err != nil {
		return err
	}

	type ownerCount struct {
		owner concept.IID
		count uint64
	}
	var owners []ownerCount
	for {
		owner, count, ok, err := cursor.Next(ctx)
		if err != nil {
			_ = cursor.Close()
			return errors.Wrap(err, "concept write failed: reading owners of attribute")
		}
		if !ok {
			break
		}
		owners = append(owners, ownerCount{owner: owner, count: count})
	}
	if err := cursor.Close(); err != nil {
		return errors.Wrap(err, "concept write failed: closing owners cursor")
	}

	for _, oc := range owners {
		if err := tm.DeleteHasMany(ctx, snap, oc.owner, attribute, oc.count); err != nil {
			return errors.Wrap(err, "concept write failed: unlinking owner")
		}
	}

	if err := tm.DeleteAttribute(ctx, snap, attribute); err != nil {
		return errors.Wrap(err, "concept write failed: deleting attribute")
	}
	return nil
}
