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
	"context"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/GHR-Arash/typedb/concept"
	"github.com/GHR-Arash/typedb/config"
	"github.com/GHR-Arash/typedb/telemetry"
	"github.com/GHR-Arash/typedb/typedberr"
)

// Annotated is the annotated form of a links(relation, player, role)
// constraint the planner hands to this executor: which candidate
// relation types admit which player types, whether each side is already
// bound, and which variable the downstream plan wants sorted.
type Annotated struct {
	RelationPlayerTypes map[concept.TypeID][]concept.TypeID
	PlayerTypes         []concept.TypeID
	RelationBound       bool
	PlayerBound         bool
	SortBy              SortTarget
	Checks              []RowCheck
}

// Executable is the compiled links executor: mode, precomputed type
// ranges, and (in UnboundInverted mode) the materialized relation cache.
type Executable struct {
	mode                Mode
	relationPlayerTypes map[concept.TypeID][]concept.TypeID
	playerToRole        map[concept.TypeID][]concept.TypeID
	relationTypeRange   concept.TypeRange
	playerTypeRange     concept.TypeRange
	checks              []RowCheck
	cache               []concept.Relation
	cachePolicy         config.CachePolicy
}

// Mode reports the executor's compiled iteration mode.
func (e *Executable) Mode() Mode { return e.mode }

// Compile builds the links Executable for one annotated constraint. When
// the mode resolves to UnboundInverted, it eagerly materializes the
// relation cache by calling things.GetRelationsIn for every candidate
// relation type, per spec section 4.8.
func Compile(ctx context.Context, ann Annotated, types concept.TypeManager, snap concept.Snapshot, things concept.ThingManager, policy config.CachePolicy, tel *telemetry.Context) (*Executable, error) {
	tel = tel.OrNop()
	span := tel.StartSpan("links.Compile")
	defer span.Finish()

	if len(ann.RelationPlayerTypes) == 0 {
		return nil, typedberr.ErrLinksExecutableCompilation.New("relation-to-player-types map must not be empty")
	}
	if len(ann.PlayerTypes) == 0 {
		return nil, typedberr.ErrLinksExecutableCompilation.New("player type set must not be empty")
	}

	mode := SelectMode(ann.RelationBound, ann.PlayerBound, ann.SortBy)
	tel.Logger().WithField("mode", mode.String()).Debug("links mode selected")

	relationTypes := make([]concept.TypeID, 0, len(ann.RelationPlayerTypes))
	for t := range ann.RelationPlayerTypes {
		relationTypes = append(relationTypes, t)
	}
	slices.SortFunc(relationTypes, func(a, b concept.TypeID) bool { return a.Less(b) })

	playerToRole, err := mergePlayerToRole(ctx, types, snap, relationTypes, ann.RelationPlayerTypes)
	if err != nil {
		return nil, typedberr.ErrLinksExecutableCompilation.New(
			pkgerrors.Wrap(err, "resolving player-to-role types").Error())
	}

	e := &Executable{
		mode:                mode,
		relationPlayerTypes: ann.RelationPlayerTypes,
		playerToRole:        playerToRole,
		relationTypeRange:   concept.TypeRangeOf(relationTypes),
		playerTypeRange:     concept.TypeRangeOf(ann.PlayerTypes),
		checks:              ann.Checks,
		cachePolicy:         policy,
	}

	if mode == UnboundInverted {
		cache, err := materializeRelationCache(ctx, things, snap, relationTypes)
		if err != nil {
			return nil, typedberr.ErrLinksExecutableCompilation.New(
				pkgerrors.Wrap(err, "materializing relation cache").Error())
		}
		if policy.Bounded() && len(cache) > policy.Limit() {
			tel.Logger().WithField("cache_size", len(cache)).WithField("limit", policy.Limit()).
				Warn("links relation cache exceeds configured limit")
		}
		e.cache = cache
	}

	return e, nil
}

func mergePlayerToRole(ctx context.Context, tm concept.TypeManager, snap concept.Snapshot, relationTypes []concept.TypeID, relationPlayerTypes map[concept.TypeID][]concept.TypeID) (map[concept.TypeID][]concept.TypeID, error) {
	merged := make(map[concept.TypeID][]concept.TypeID)
	for _, relType := range relationTypes {
		for _, playerType := range relationPlayerTypes[relType] {
			if _, done := merged[playerType]; done {
				continue
			}
			roles, err := tm.PlayerToRoleTypes(ctx, snap, relType, playerType)
			if err != nil {
				return nil, err
			}
			merged[playerType] = roles
		}
	}
	return merged, nil
}

func materializeRelationCache(ctx context.Context, tm concept.ThingManager, snap concept.Snapshot, relationTypes []concept.TypeID) ([]concept.Relation, error) {
	var cache []concept.Relation
	for _, t := range relationTypes {
		cursor, err := tm.GetRelationsIn(ctx, snap, t)
		if err != nil {
			return nil, err
		}
		for {
			rel, ok, err := cursor.Next(ctx)
			if err != nil {
				cursor.Close()
				return nil, err
			}
			if !ok {
				break
			}
			cache = append(cache, rel)
		}
		if err := cursor.Close(); err != nil {
			return nil, err
		}
	}
	return cache, nil
}
