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

// Package memconcept is a deterministic, in-memory implementation of the
// concept package's storage- and schema-facing interfaces, used by tests
// and by cmd/compilebench. It plays the role the teacher's in-memory
// provider (package memory, wired up by enginetest's MemoryHarness)
// plays for SQL tests: a mutex-guarded map store standing in for a real
// storage engine.
package memconcept

import (
	"bytes"
	"sync"

	"github.com/GHR-Arash/typedb/concept"
)

type link struct {
	relation     concept.IID
	relationType concept.TypeID
	rp           concept.RolePlayer
}

type owner struct {
	owner concept.IID
	count uint64
}

// Store holds every fact this test double knows about, guarded by a
// single mutex, matching the teacher's memory.DbProvider's protect-the-
// whole-map-with-one-lock style.
type Store struct {
	mu sync.Mutex

	links     []link
	relations map[concept.TypeID][]concept.Relation
	owners    map[string][]owner // keyed by attribute IID, hex-encoded

	playerType map[string]concept.TypeID // keyed by player IID, hex-encoded

	relationPlayerTypes map[concept.TypeID]map[concept.TypeID][]concept.TypeID // relationType -> playerType -> roleTypes
	owns                map[concept.TypeID][]concept.TypeID
	plays               map[concept.TypeID][]concept.TypeID
	relates             map[concept.TypeID][]concept.TypeID
	valueTypes          map[concept.TypeID]concept.ValueTypeName

	thingCounts map[concept.TypeID]uint64
	linksCounts map[concept.TypeID]uint64
}

// New returns an empty Store, ready to have facts added via its Add*
// methods before being handed to a compiled pipeline or executor as a
// concept.ThingManager/TypeManager.
func New() *Store {
	return &Store{
		relations:           make(map[concept.TypeID][]concept.Relation),
		owners:              make(map[string][]owner),
		playerType:          make(map[string]concept.TypeID),
		relationPlayerTypes: make(map[concept.TypeID]map[concept.TypeID][]concept.TypeID),
		owns:                make(map[concept.TypeID][]concept.TypeID),
		plays:               make(map[concept.TypeID][]concept.TypeID),
		relates:             make(map[concept.TypeID][]concept.TypeID),
		valueTypes:          make(map[concept.TypeID]concept.ValueTypeName),
		thingCounts:         make(map[concept.TypeID]uint64),
		linksCounts:         make(map[concept.TypeID]uint64),
	}
}

// AddLink records one relation-player-role edge and the player's
// concrete type, and registers the relation instance itself if this is
// its first edge.
func (s *Store) AddLink(relation concept.IID, relationType concept.TypeID, rp concept.RolePlayer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.links = append(s.links, link{relation: relation, relationType: relationType, rp: rp})
	s.playerType[string(rp.Player)] = rp.PlayerType

	for _, existing := range s.relations[relationType] {
		if bytes.Equal(existing.IID, relation) {
			return
		}
	}
	s.relations[relationType] = append(s.relations[relationType], concept.Relation{IID: relation, Type: relationType})
}

// AddOwns records that an owner owns an attribute instance count times.
func (s *Store) AddOwns(attribute, owningInstance concept.IID, count uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := string(attribute)
	s.owners[key] = append(s.owners[key], owner{owner: owningInstance, count: count})
}

// SetRelationPlayerTypes declares which player types a relation type
// admits for a given role, mirroring the annotator's relation_to_player
// map this core consumes but never constructs itself.
func (s *Store) SetRelationPlayerTypes(relationType, playerType concept.TypeID, roleTypes []concept.TypeID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.relationPlayerTypes[relationType] == nil {
		s.relationPlayerTypes[relationType] = make(map[concept.TypeID][]concept.TypeID)
	}
	s.relationPlayerTypes[relationType][playerType] = roleTypes
}

func (s *Store) SetOwns(ownerType concept.TypeID, attributeTypes []concept.TypeID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.owns[ownerType] = attributeTypes
}

func (s *Store) SetPlays(playerType concept.TypeID, roleTypes []concept.TypeID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plays[playerType] = roleTypes
}

func (s *Store) SetRelates(relationType concept.TypeID, roleTypes []concept.TypeID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.relates[relationType] = roleTypes
}

func (s *Store) SetValueType(attributeType concept.TypeID, vt concept.ValueTypeName) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.valueTypes[attributeType] = vt
}

func (s *Store) SetLinksCount(relationType concept.TypeID, count uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.linksCounts[relationType] = count
}

func (s *Store) SetThingCount(t concept.TypeID, count uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.thingCounts[t] = count
}
