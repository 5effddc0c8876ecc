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

// Snap is a handle onto a Store, either read-only or writable. Tests
// construct one with ReadSnapshot or WriteSnapshot rather than reaching
// for the Store's fields directly, matching the real Snapshot/
// WritableSnapshot split this core's compiler-facing interfaces name.
type Snap struct {
	store    *Store
	writable bool
}

// ReadSnapshot returns a read-only Snap over store.
func ReadSnapshot(store *Store) *Snap { return &Snap{store: store} }

// WriteSnapshot returns a writable Snap over store.
func WriteSnapshot(store *Store) *Snap { return &Snap{store: store, writable: true} }

// IsWritable implements concept.Snapshot.
func (s *Snap) IsWritable() bool { return s.writable }

// MarkWritable implements concept.WritableSnapshot; a no-op here since
// WriteSnapshot already constructs a writable Snap and this test double
// enforces no exclusivity beyond the Store's single mutex.
func (s *Snap) MarkWritable() {}
