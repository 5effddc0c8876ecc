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

package links

import (
	"bytes"
	"context"

	"github.com/GHR-Arash/typedb/concept"
	"github.com/GHR-Arash/typedb/executor/iter"
)

// linksCursorAdapter adapts a concept.LinksCursor to iter.Cursor[triple].
type linksCursorAdapter struct {
	inner concept.LinksCursor
}

func (a linksCursorAdapter) Next(ctx context.Context) (triple, bool, error) {
	relation, relationType, rp, ok, err := a.inner.Next(ctx)
	if err != nil || !ok {
		return triple{}, ok, err
	}
	return triple{relation: relation, relationType: relationType, rp: rp}, true, nil
}

func (a linksCursorAdapter) Close() error { return a.inner.Close() }

// Rows bundles the storage collaborators an iteration needs: a snapshot
// and the ThingManager that reads through it.
type Rows struct {
	Snapshot concept.Snapshot
	Things   concept.ThingManager
}

// GetIterator returns the cursor over output Tuples for one execution of
// the compiled links constraint against row, which must already carry
// whatever relation/player bindings this Executable's Mode requires.
// Storage errors while materializing the UnboundInverted relation cache
// are returned by Compile, not here; GetIterator returns the errors from
// opening storage cursors, and the returned cursor's Next surfaces
// storage errors met while streaming.
func (e *Executable) GetIterator(ctx context.Context, rows Rows, row concept.Row, relationPos, playerPos int) (iter.Cursor[Tuple], error) {
	filter := filterPipeline(e.relationPlayerTypes, e.playerToRole, e.checks)

	switch e.mode {
	case Unbound:
		cursor, err := rows.Things.GetLinksByRelationTypeRange(ctx, rows.Snapshot, e.relationTypeRange)
		if err != nil {
			return nil, err
		}
		filtered := iter.FilterMap[triple, triple](linksCursorAdapter{cursor}, filter)
		return iter.Map(filtered, func(t triple) (Tuple, error) { return relationPlayerRole(t), nil }), nil

	case UnboundInverted:
		return e.getIteratorUnboundInverted(ctx, rows, filter)

	case BoundFrom:
		relation := row[relationPos].IID
		cursor, err := rows.Things.GetLinksByRelationAndPlayerTypeRange(ctx, rows.Snapshot, relation, e.playerTypeRange)
		if err != nil {
			return nil, err
		}
		filtered := iter.FilterMap[triple, triple](linksCursorAdapter{cursor}, filter)
		return iter.Map(filtered, func(t triple) (Tuple, error) { return playerRelationRole(t), nil }), nil

	case BoundFromBoundTo:
		relation := row[relationPos].IID
		player := row[playerPos].IID
		cursor, err := rows.Things.GetLinksByRelationAndPlayer(ctx, rows.Snapshot, relation, player)
		if err != nil {
			return nil, err
		}
		filtered := iter.FilterMap[triple, triple](linksCursorAdapter{cursor}, filter)
		return iter.Map(filtered, func(t triple) (Tuple, error) { return roleRelationPlayer(t), nil }), nil

	default:
		panic("links: unreachable mode")
	}
}

func (e *Executable) getIteratorUnboundInverted(ctx context.Context, rows Rows, filter func(triple) (triple, bool, error)) (iter.Cursor[Tuple], error) {
	// A single cached relation needs no merge machinery at all, the
	// elision spec section 4.8 calls for.
	if len(e.cache) == 1 {
		cursor, err := rows.Things.GetLinksByRelationAndPlayerTypeRange(ctx, rows.Snapshot, e.cache[0].IID, e.playerTypeRange)
		if err != nil {
			return nil, err
		}
		filtered := iter.FilterMap[triple, triple](linksCursorAdapter{cursor}, filter)
		return iter.Map(filtered, func(t triple) (Tuple, error) { return playerRelationRole(t), nil }), nil
	}

	sources := make([]iter.Cursor[triple], 0, len(e.cache))
	for _, rel := range e.cache {
		cursor, err := rows.Things.GetLinksByRelationAndPlayerTypeRange(ctx, rows.Snapshot, rel.IID, e.playerTypeRange)
		if err != nil {
			for _, s := range sources {
				s.Close()
			}
			return nil, err
		}
		sources = append(sources, linksCursorAdapter{cursor})
	}

	merged := iter.KWayMerge(sources, lessPlayerThenRelation)
	filtered := iter.FilterMap[triple, triple](merged, filter)
	return iter.Map(filtered, func(t triple) (Tuple, error) { return playerRelationRole(t), nil }), nil
}

// lessPlayerThenRelation is the merge comparator that enforces
// UnboundInverted's published ordering: by player, ties broken by
// relation.
func lessPlayerThenRelation(a, b triple) bool {
	if c := bytes.Compare(a.rp.Player, b.rp.Player); c != 0 {
		return c < 0
	}
	return bytes.Compare(a.relation, b.relation) < 0
}
