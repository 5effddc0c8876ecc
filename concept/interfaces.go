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

package concept

import "context"

// Statistics is a read-only summary of cardinalities, consulted by the
// match planner and function compiler. Only the core's opaque
// collaborators read from it; the pipeline compiler itself threads it
// through without interpreting it.
type Statistics interface {
	// ThingCount estimates the number of instances of a type.
	ThingCount(t TypeID) uint64
	// LinksCount estimates the number of links edges for a relation type.
	LinksCount(relationType TypeID) uint64
}

// Snapshot is a read or read-write view of storage, passed to the
// ThingManager methods that scan it. It is supplied to executors and to
// links.Compile (for its relation cache), never to the other compilers.
type Snapshot interface {
	// IsWritable reports whether this snapshot permits mutation.
	IsWritable() bool
}

// WritableSnapshot extends Snapshot with exclusive write semantics,
// enforced by the storage layer, outside this core.
type WritableSnapshot interface {
	Snapshot
	MarkWritable()
}

// LinksCursor iterates RolePlayer edges for a relation; ordering is
// mode-dependent and documented on the method that produced the cursor.
type LinksCursor interface {
	// Next advances the cursor. ok is false at exhaustion; err is
	// returned verbatim from storage on read failure (the cursor is then
	// exhausted). relationType is always populated so the links executor
	// can run its type-admissibility filter without a second lookup.
	Next(ctx context.Context) (relation IID, relationType TypeID, rp RolePlayer, ok bool, err error)
	Close() error
}

// RelationCursor iterates relation instances of a single type, ordered
// by IID, as used to populate the UnboundInverted relation cache.
type RelationCursor interface {
	Next(ctx context.Context) (Relation, bool, error)
	Close() error
}

// ThingManager is the accessor surface executors call to traverse
// instances. Each method name mirrors the operation named in spec
// section 6.
type ThingManager interface {
	// GetLinksByRelationTypeRange iterates all links whose relation type
	// falls in rng, ordered by relation IID (the Unbound mode source).
	GetLinksByRelationTypeRange(ctx context.Context, snap Snapshot, rng TypeRange) (LinksCursor, error)
	// GetLinksByRelationAndPlayerTypeRange iterates all links of a fixed
	// relation instance whose player type falls in rng, ordered by
	// player IID (the BoundFrom mode source).
	GetLinksByRelationAndPlayerTypeRange(ctx context.Context, snap Snapshot, relation IID, rng TypeRange) (LinksCursor, error)
	// GetLinksByRelationAndPlayer iterates the links between one fixed
	// relation and one fixed player, ordered by role type (the
	// BoundFromBoundTo mode source).
	GetLinksByRelationAndPlayer(ctx context.Context, snap Snapshot, relation, player IID) (LinksCursor, error)
	// GetRelationsIn iterates every relation instance of relationType,
	// ordered by IID, used to materialize the UnboundInverted relation
	// cache.
	GetRelationsIn(ctx context.Context, snap Snapshot, relationType TypeID) (RelationCursor, error)
	// PlayerTypeOf resolves the concrete type of a player instance. The
	// links executor's type-admissibility filter reads the player type
	// carried on each RolePlayer and does not call this.
	PlayerTypeOf(ctx context.Context, snap Snapshot, player IID) (TypeID, error)
	// GetOwners iterates the owners of an attribute instance, used by the
	// delete executor's cascading unlink.
	GetOwners(ctx context.Context, snap Snapshot, attribute IID) (OwnerCursor, error)
	// DeleteHasMany removes count copies of an owns edge between owner
	// and attribute.
	DeleteHasMany(ctx context.Context, snap WritableSnapshot, owner, attribute IID, count uint64) error
	// DeleteAttribute removes the attribute instance itself, once it has
	// no remaining owners.
	DeleteAttribute(ctx context.Context, snap WritableSnapshot, attribute IID) error
}

// OwnerCursor iterates the (owner, count) pairs of an attribute's owners.
type OwnerCursor interface {
	Next(ctx context.Context) (owner IID, count uint64, ok bool, err error)
	Close() error
}

// TypeManager is the schema-lookup surface: entity/relation/attribute
// types, annotations, declared/transitive owns/plays/relates, value
// types and struct definitions.
type TypeManager interface {
	// RelationPlayerTypes reports, for a relation type, the map from
	// relation type to the set of player types it may relate (the
	// `relation_player_types` the links executor type-bounds from).
	RelationPlayerTypes(ctx context.Context, snap Snapshot, relationType TypeID) (map[TypeID][]TypeID, error)
	// PlayerToRoleTypes reports, for a player type, the role types it
	// may play in a given relation type.
	PlayerToRoleTypes(ctx context.Context, snap Snapshot, relationType, playerType TypeID) ([]TypeID, error)
	// Owns reports the declared+transitive attribute types an owner type
	// may have.
	Owns(ctx context.Context, snap Snapshot, ownerType TypeID) ([]TypeID, error)
	// Plays reports the role types a player type may play.
	Plays(ctx context.Context, snap Snapshot, playerType TypeID) ([]TypeID, error)
	// Relates reports the role types a relation type relates.
	Relates(ctx context.Context, snap Snapshot, relationType TypeID) ([]TypeID, error)
	// ValueTypeOf reports an attribute type's declared value type.
	ValueTypeOf(ctx context.Context, snap Snapshot, attributeType TypeID) (ValueTypeName, error)
}
