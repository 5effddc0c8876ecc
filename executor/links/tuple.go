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

// triple is one raw (relation, role-player) edge read from storage,
// before it is shaped into a mode-specific output Tuple.
type triple struct {
	relation     concept.IID
	relationType concept.TypeID
	rp           concept.RolePlayer
}

// Tuple is one output row of the links executor, always three cells
// whose (relation, player, role) assignment to slots depends on Mode;
// see relationPlayerRole, playerRelationRole and roleRelationPlayer.
type Tuple [3]concept.RowValue

func relationPlayerRole(t triple) Tuple {
	return Tuple{
		concept.InstanceValue(t.relation),
		concept.InstanceValue(t.rp.Player),
		concept.TypeValue(t.rp.Role),
	}
}

func playerRelationRole(t triple) Tuple {
	return Tuple{
		concept.InstanceValue(t.rp.Player),
		concept.InstanceValue(t.relation),
		concept.TypeValue(t.rp.Role),
	}
}

func roleRelationPlayer(t triple) Tuple {
	return Tuple{
		concept.TypeValue(t.rp.Role),
		concept.InstanceValue(t.relation),
		concept.InstanceValue(t.rp.Player),
	}
}
