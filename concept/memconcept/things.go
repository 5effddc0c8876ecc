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
	"bytes"
	"context"

	"golang.org/x/exp/slices"

	"github.com/GHR-Arash/typedb/concept"
)

type linksCursor struct {
	items []link
	pos   int
}

func (c *linksCursor) Next(ctx context.Context) (concept.IID, concept.TypeID, concept.RolePlayer, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, concept.RolePlayer{}, false, err
	}
	if c.pos >= len(c.items) {
		return nil, 0, concept.RolePlayer{}, false, nil
	}
	it := c.items[c.pos]
	c.pos++
	return it.relation, it.relationType, it.rp, true, nil
}

func (c *linksCursor) Close() error { return nil }

type relationCursor struct {
	items []concept.Relation
	pos   int
}

func (c *relationCursor) Next(ctx context.Context) (concept.Relation, bool, error) {
	if err := ctx.Err(); err != nil {
		return concept.Relation{}, false, err
	}
	if c.pos >= len(c.items) {
		return concept.Relation{}, false, nil
	}
	it := c.items[c.pos]
	c.pos++
	return it, true, nil
}

func (c *relationCursor) Close() error { return nil }

type ownerCursor struct {
	items []owner
	pos   int
}

func (c *ownerCursor) Next(ctx context.Context) (concept.IID, uint64, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, false, err
	}
	if c.pos >= len(c.items) {
		return nil, 0, false, nil
	}
	it := c.items[c.pos]
	c.pos++
	return it.owner, it.count, true, nil
}

func (c *ownerCursor) Close() error { return nil }

// GetLinksByRelationTypeRange implements concept.ThingManager, ordered
// by relation IID as the interface documents.
func (s *Store) GetLinksByRelationTypeRange(ctx context.Context, snap concept.Snapshot, rng concept.TypeRange) (concept.LinksCursor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []link
	for _, l := range s.links {
		if inRange(l.relationType, rng) {
			matched = append(matched, l)
		}
	}
	slices.SortFunc(matched, func(a, b link) bool { return bytes.Compare(a.relation, b.relation) < 0 })
	return &linksCursor{items: matched}, nil
}

// GetLinksByRelationAndPlayerTypeRange implements concept.ThingManager,
// ordered by player IID.
func (s *Store) GetLinksByRelationAndPlayerTypeRange(ctx context.Context, snap concept.Snapshot, relation concept.IID, rng concept.TypeRange) (concept.LinksCursor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []link
	for _, l := range s.links {
		if bytes.Equal(l.relation, relation) && inRange(l.rp.PlayerType, rng) {
			matched = append(matched, l)
		}
	}
	slices.SortFunc(matched, func(a, b link) bool { return bytes.Compare(a.rp.Player, b.rp.Player) < 0 })
	return &linksCursor{items: matched}, nil
}

// GetLinksByRelationAndPlayer implements concept.ThingManager, ordered
// by role type.
func (s *Store) GetLinksByRelationAndPlayer(ctx context.Context, snap concept.Snapshot, relation, player concept.IID) (concept.LinksCursor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []link
	for _, l := range s.links {
		if bytes.Equal(l.relation, relation) && bytes.Equal(l.rp.Player, player) {
			matched = append(matched, l)
		}
	}
	slices.SortFunc(matched, func(a, b link) bool { return a.rp.Role.Less(b.rp.Role) })
	return &linksCursor{items: matched}, nil
}

// GetRelationsIn implements concept.ThingManager, ordered by IID.
func (s *Store) GetRelationsIn(ctx context.Context, snap concept.Snapshot, relationType concept.TypeID) (concept.RelationCursor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := append([]concept.Relation(nil), s.relations[relationType]...)
	slices.SortFunc(items, func(a, b concept.Relation) bool { return bytes.Compare(a.IID, b.IID) < 0 })
	return &relationCursor{items: items}, nil
}

// PlayerTypeOf implements concept.ThingManager.
func (s *Store) PlayerTypeOf(ctx context.Context, snap concept.Snapshot, player concept.IID) (concept.TypeID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playerType[string(player)], nil
}

// GetOwners implements concept.ThingManager.
func (s *Store) GetOwners(ctx context.Context, snap concept.Snapshot, attribute concept.IID) (concept.OwnerCursor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := append([]owner(nil), s.owners[string(attribute)]...)
	return &ownerCursor{items: items}, nil
}

// DeleteHasMany implements concept.ThingManager.
func (s *Store) DeleteHasMany(ctx context.Context, snap concept.WritableSnapshot, owningInstance, attribute concept.IID, count uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := string(attribute)
	owners := s.owners[key]
	for i, o := range owners {
		if bytes.Equal(o.owner, owningInstance) {
			if o.count <= count {
				owners = append(owners[:i], owners[i+1:]...)
			} else {
				owners[i].count -= count
			}
			s.owners[key] = owners
			return nil
		}
	}
	return nil
}

// DeleteAttribute implements concept.ThingManager.
func (s *Store) DeleteAttribute(ctx context.Context, snap concept.WritableSnapshot, attribute concept.IID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.owners, string(attribute))
	return nil
}

func inRange(t concept.TypeID, rng concept.TypeRange) bool {
	return !t.Less(rng.Min) && !rng.Max.Less(t)
}
