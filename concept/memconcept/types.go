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

package memconcept

import (
	"context"

	"github.com/GHR-Arash/typedb/concept"
)

// RelationPlayerTypes implements concept.TypeManager: the map, keyed by
// relationType, of player types it admits (with SetRelationPlayerTypes's
// per-role breakdown flattened away, since this accessor only reports
// membership, not role attribution).
func (s *Store) RelationPlayerTypes(ctx context.Context, snap concept.Snapshot, relationType concept.TypeID) (map[concept.TypeID][]concept.TypeID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	playerTypes := make([]concept.TypeID, 0, len(s.relationPlayerTypes[relationType]))
	for playerType := range s.relationPlayerTypes[relationType] {
		playerTypes = append(playerTypes, playerType)
	}
	return map[concept.TypeID][]concept.TypeID{relationType: playerTypes}, nil
}

// PlayerToRoleTypes implements concept.TypeManager.
func (s *Store) PlayerToRoleTypes(ctx context.Context, snap concept.Snapshot, relationType, playerType concept.TypeID) ([]concept.TypeID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byPlayer := s.relationPlayerTypes[relationType]
	if byPlayer == nil {
		return nil, nil
	}
	return append([]concept.TypeID(nil), byPlayer[playerType]...), nil
}

// Owns implements concept.TypeManager.
func (s *Store) Owns(ctx context.Context, snap concept.Snapshot, ownerType concept.TypeID) ([]concept.TypeID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]concept.TypeID(nil), s.owns[ownerType]...), nil
}

// Plays implements concept.TypeManager.
func (s *Store) Plays(ctx context.Context, snap concept.Snapshot, playerType concept.TypeID) ([]concept.TypeID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]concept.TypeID(nil), s.plays[playerType]...), nil
}

// Relates implements concept.TypeManager.
func (s *Store) Relates(ctx context.Context, snap concept.Snapshot, relationType concept.TypeID) ([]concept.TypeID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]concept.TypeID(nil), s.relates[relationType]...), nil
}

// ValueTypeOf implements concept.TypeManager.
func (s *Store) ValueTypeOf(ctx context.Context, snap concept.Snapshot, attributeType concept.TypeID) (concept.ValueTypeName, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.valueTypes[attributeType], nil
}
