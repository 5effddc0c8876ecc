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

// Package modifier implements C3: the pure row-level transform stages
// Select, Sort, Offset, Limit and Require.
package modifier

import (
	"fmt"
	"math"

	"github.com/GHR-Arash/typedb/ids"
	"github.com/GHR-Arash/typedb/stage"
	"github.com/GHR-Arash/typedb/variable"
)

// Unbounded marks a Limit with no upper bound, the identity element for
// the Limit modifier.
const Unbounded = math.MaxInt64

// Select retains exactly the named variables, with a fresh mapping
// covering only select.variables.
type Select struct {
	id      ids.ExecutableID
	mapping variable.RowMapping
}

func (s *Select) Kind() stage.Kind                    { return stage.KindSelect }
func (s *Select) ExecutableID() ids.ExecutableID       { return s.id }
func (s *Select) OutputRowMapping() variable.RowMapping { return s.mapping }

// CompileSelect builds a Select stage retaining exactly vars from input.
func CompileSelect(vars []variable.Variable, input variable.RowMapping) (*Select, error) {
	out := make(variable.RowMapping, len(vars))
	for _, v := range vars {
		pos, ok := input[v]
		if !ok {
			return nil, fmt.Errorf("select: variable %s is not present in input positions", v)
		}
		out[v] = pos
	}
	return &Select{id: ids.NextExecutableID(), mapping: out}, nil
}

// Sort reorders rows by the given variables without touching positions;
// it republishes the prior stage's mapping verbatim.
type Sort struct {
	id      ids.ExecutableID
	by      []SortVariable
	mapping variable.RowMapping
}

// SortVariable names a sort key and its direction.
type SortVariable struct {
	Variable   variable.Variable
	Ascending  bool
}

func (s *Sort) Kind() stage.Kind                    { return stage.KindSort }
func (s *Sort) ExecutableID() ids.ExecutableID       { return s.id }
func (s *Sort) OutputRowMapping() variable.RowMapping { return s.mapping }
func (s *Sort) By() []SortVariable                   { return s.by }

// CompileSort builds a Sort stage. An empty by list is the identity
// modifier and must preserve input verbatim.
func CompileSort(by []SortVariable, input variable.RowMapping) (*Sort, error) {
	for _, sv := range by {
		if _, ok := input[sv.Variable]; !ok {
			return nil, fmt.Errorf("sort: variable %s is not present in input positions", sv.Variable)
		}
	}
	return &Sort{id: ids.NextExecutableID(), by: by, mapping: input}, nil
}

// Offset skips a fixed number of rows; positions are unaffected.
type Offset struct {
	id      ids.ExecutableID
	n       uint64
	mapping variable.RowMapping
}

func (o *Offset) Kind() stage.Kind                    { return stage.KindOffset }
func (o *Offset) ExecutableID() ids.ExecutableID       { return o.id }
func (o *Offset) OutputRowMapping() variable.RowMapping { return o.mapping }
func (o *Offset) N() uint64                            { return o.n }

// CompileOffset builds an Offset stage. Offset 0 is the identity
// modifier.
func CompileOffset(n uint64, input variable.RowMapping) *Offset {
	return &Offset{id: ids.NextExecutableID(), n: n, mapping: input}
}

// Limit bounds the number of rows produced; positions are unaffected.
type Limit struct {
	id      ids.ExecutableID
	n       uint64
	mapping variable.RowMapping
}

func (l *Limit) Kind() stage.Kind                    { return stage.KindLimit }
func (l *Limit) ExecutableID() ids.ExecutableID       { return l.id }
func (l *Limit) OutputRowMapping() variable.RowMapping { return l.mapping }
func (l *Limit) N() uint64                            { return l.n }

// CompileLimit builds a Limit stage. Limit Unbounded is the identity
// modifier.
func CompileLimit(n uint64, input variable.RowMapping) *Limit {
	return &Limit{id: ids.NextExecutableID(), n: n, mapping: input}
}

// Require drops rows missing any of a required position set; positions
// are unaffected for rows that survive.
type Require struct {
	id       ids.ExecutableID
	required []variable.Variable
	mapping  variable.RowMapping
}

func (r *Require) Kind() stage.Kind                    { return stage.KindRequire }
func (r *Require) ExecutableID() ids.ExecutableID       { return r.id }
func (r *Require) OutputRowMapping() variable.RowMapping { return r.mapping }
func (r *Require) Required() []variable.Variable         { return r.required }

// CompileRequire builds a Require stage. An empty required set is the
// identity modifier.
func CompileRequire(required []variable.Variable, input variable.RowMapping) (*Require, error) {
	for _, v := range required {
		if _, ok := input[v]; !ok {
			return nil, fmt.Errorf("require: variable %s is not present in input positions", v)
		}
	}
	return &Require{id: ids.NextExecutableID(), required: required, mapping: input}, nil
}
