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

import "github.com/GHR-Arash/typedb/concept"

// ThingCount implements concept.Statistics.
func (s *Store) ThingCount(t concept.TypeID) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.thingCounts[t]
}

// LinksCount implements concept.Statistics.
func (s *Store) LinksCount(relationType concept.TypeID) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.linksCounts[relationType]
}
