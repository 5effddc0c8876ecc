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

// Package pipeline implements C8, the pipeline compiler: it orchestrates
// the variable registry, function compiler, stage-sequence compiler and
// fetch compiler into one ExecutablePipeline.
package pipeline

import (
	"github.com/GHR-Arash/typedb/fetch"
	"github.com/GHR-Arash/typedb/function"
	"github.com/GHR-Arash/typedb/stage"
	"github.com/GHR-Arash/typedb/variable"
)

// ExecutablePipeline is the sole compiler output: a function registry,
// an ordered stage sequence, and an optional fetch clause.
type ExecutablePipeline struct {
	Functions *function.Registry
	Stages    []stage.Stage
	Fetch     *fetch.Executable
}

// LastOutputMapping returns the final stage's output row mapping, or an
// empty mapping if the pipeline has no stages (the documented boundary
// behavior for an empty stage list).
func (p *ExecutablePipeline) LastOutputMapping() variable.RowMapping {
	if len(p.Stages) == 0 {
		return variable.RowMapping{}
	}
	return p.Stages[len(p.Stages)-1].OutputRowMapping()
}
