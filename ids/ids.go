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

// Package ids allocates process-wide identifiers used for caching and
// telemetry correlation, never for compilation correctness.
package ids

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// ExecutableID identifies one compiled stage. Two stages compiled from
// identical input can carry different IDs; nothing in the compiler may
// branch on this value.
type ExecutableID uint64

var executableCounter atomic.Uint64

// NextExecutableID returns a fresh, strictly increasing ExecutableID.
// Safe for concurrent use by independent compilations.
func NextExecutableID() ExecutableID {
	return ExecutableID(executableCounter.Add(1))
}

// NewCorrelationID returns a fresh random identifier for tagging one
// compilation's telemetry spans and log lines, distinct from
// ExecutableID: this one is random rather than sequential, since it
// must not leak the process-wide compilation count to external traces.
func NewCorrelationID() string {
	return uuid.NewString()
}
