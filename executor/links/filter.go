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

import "github.com/GHR-Arash/typedb/concept"

// RowCheck is a compile-time check bound to the current row, applied to
// every candidate triple. Per spec section 4.8's error semantics, an
// error passes the row through (fail-open) while Ok(false) drops it;
// only the boolean result is ever used to exclude a row.
type RowCheck func(relation concept.IID, rp concept.RolePlayer) (bool, error)

// typeAdmissible implements the first filter stage: the player's
// concrete type must be one of the types the relation's type admits,
// and the role the player is attached to must be one that player type
// may play in this relation.
func typeAdmissible(relationPlayerTypes map[concept.TypeID][]concept.TypeID, playerToRole map[concept.TypeID][]concept.TypeID, relationType concept.TypeID, rp concept.RolePlayer) bool {
	playerTypes, ok := relationPlayerTypes[relationType]
	if !ok || !containsType(playerTypes, rp.PlayerType) {
		return false
	}
	roleTypes, ok := playerToRole[rp.PlayerType]
	if !ok {
		return false
	}
	return containsType(roleTypes, rp.Role)
}

func containsType(types []concept.TypeID, t concept.TypeID) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

// filterPipeline runs the full per-triple filter: type admissibility
// then row checks. It reports keep=false for a type-inadmissible or
// row-check-rejected triple, and keep=true (passing the triple through)
// whenever a row check itself errors, matching the fail-open error
// semantics of spec section 4.8. Each triple carries its own relation
// type, since Unbound and UnboundInverted both range over more than one
// candidate relation type in a single iteration.
func filterPipeline(relationPlayerTypes map[concept.TypeID][]concept.TypeID, playerToRole map[concept.TypeID][]concept.TypeID, checks []RowCheck) func(triple) (triple, bool, error) {
	return func(t triple) (triple, bool, error) {
		if !typeAdmissible(relationPlayerTypes, playerToRole, t.relationType, t.rp) {
			return triple{}, false, nil
		}
		for _, check := range checks {
			ok, err := check(t.relation, t.rp)
			if err != nil {
				// Fail-open: surface the triple rather than drop it, per
				// spec section 4.8's error-propagation rule.
				return t, true, nil
			}
			if !ok {
				return triple{}, false, nil
			}
		}
		return t, true, nil
	}
}
