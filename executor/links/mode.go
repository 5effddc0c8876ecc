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

// Package links implements C9, the ternary links(relation, player, role)
// traversal executor: mode selection, type-range precomputation, the
// UnboundInverted relation cache, and the per-triple filter pipeline.
package links

import "fmt"

// Mode is one of the four ways links can be iterated, chosen at compile
// time from which of (relation, player) are already bound and, when
// neither is, which side the planner asked to sort by.
type Mode int

const (
	// Unbound iterates every links edge ordered by relation IID; neither
	// relation nor player is bound, and the plan sorts by relation.
	Unbound Mode = iota
	// UnboundInverted iterates via a precomputed relation cache, merged
	// in player order; neither relation nor player is bound, and the
	// plan sorts by player.
	UnboundInverted
	// BoundFrom iterates the links of one fixed relation, sorted by
	// player.
	BoundFrom
	// BoundFromBoundTo iterates the (at most few) links between one
	// fixed relation and one fixed player, sorted by role.
	BoundFromBoundTo
)

func (m Mode) String() string {
	switch m {
	case Unbound:
		return "Unbound"
	case UnboundInverted:
		return "UnboundInverted"
	case BoundFrom:
		return "BoundFrom"
	case BoundFromBoundTo:
		return "BoundFromBoundTo"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// SortTarget names which operand the plan asked the Unbound/UnboundInverted
// choice to sort by; it is meaningless once relation is bound, since
// BoundFrom/BoundFromBoundTo each publish one fixed ordering regardless
// of the requested sort variable.
type SortTarget int

const (
	SortByRelation SortTarget = iota
	SortByPlayer
)

// SelectMode applies the mode-selection table of spec section 4.8.
// The IR this core consumes always establishes relation before player
// within one ternary constraint. SelectMode does not special-case
// "player bound, relation unbound": like the fully unbound case, it
// routes to Unbound or UnboundInverted by sortBy.
func SelectMode(relationBound, playerBound bool, sortBy SortTarget) Mode {
	switch {
	case relationBound && playerBound:
		return BoundFromBoundTo
	case relationBound:
		return BoundFrom
	case sortBy == SortByPlayer:
		return UnboundInverted
	default:
		return Unbound
	}
}
