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

package function

import (
	"github.com/GHR-Arash/typedb/concept"
	"github.com/GHR-Arash/typedb/match"
	"github.com/GHR-Arash/typedb/sequence"
	"github.com/GHR-Arash/typedb/stage"
	"github.com/GHR-Arash/typedb/typedberr"
	"github.com/GHR-Arash/typedb/variable"
)

var reservedKeywords = map[string]bool{
	"match": true, "insert": true, "delete": true, "select": true,
	"sort": true, "offset": true, "limit": true, "require": true,
	"reduce": true, "fetch": true, "fun": true, "return": true,
}

// Registry holds compiled functions, looked up by ID. pipeline.Compile
// assembles it after the functions are compiled, merging the preamble
// functions' Registry over the schema functions' one. Compile takes no
// Registry, so no function sees one while it is being compiled.
type Registry struct {
	byKey map[string]*Compiled
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry { return &Registry{byKey: make(map[string]*Compiled)} }

// Put records a compiled function for later lookup.
func (r *Registry) Put(c *Compiled) { r.byKey[c.ID.Key()] = c }

// Lookup resolves a FunctionID to its compiled form.
func (r *Registry) Lookup(id ID) (*Compiled, bool) {
	c, ok := r.byKey[id.Key()]
	return c, ok
}

// Merge returns a new Registry containing every entry of r plus other,
// with other's entries taking precedence on key collision.
func (r *Registry) Merge(other *Registry) *Registry {
	merged := NewRegistry()
	for k, v := range r.byKey {
		merged.byKey[k] = v
	}
	for k, v := range other.byKey {
		merged.byKey[k] = v
	}
	return merged
}

// Compile compiles one annotated function given requiresTabling (the
// tabling analysis's verdict for this function). It takes no Registry of
// already-compiled functions, so the functions fn calls are not looked
// up or checked here. Function compilation is a pipeline compilation
// restricted to read-only stages plus a return clause.
func Compile(
	fn Annotated,
	requiresTabling bool,
	registry *variable.Registry,
	stats concept.Statistics,
	planner match.Planner,
) (*Compiled, error) {
	if reservedKeywords[fn.ID.Name] {
		return nil, typedberr.ErrReservedKeyword.New(fn.ID.Name)
	}

	for _, s := range fn.Body {
		if s.Kind == stage.KindInsert || s.Kind == stage.KindDelete {
			return nil, typedberr.ErrIllegalWriteInFunction.New(s.Kind.String())
		}
	}

	compiledStages, outputMapping, err := sequence.CompileStages(fn.Body, fn.Parameters, nil, registry, stats, planner)
	if err != nil {
		return nil, err
	}

	if err := checkArgumentsUsed(fn, compiledStages, outputMapping); err != nil {
		return nil, err
	}

	for _, v := range fn.Return.Variables {
		if _, ok := outputMapping[v]; !ok {
			return nil, typedberr.ErrReturnVariableUnavailable.New(v.String())
		}
	}

	return &Compiled{
		ID:              fn.ID,
		RequiresTabling: requiresTabling,
		Stages:          compiledStages,
		Return:          fn.Return,
		OutputMapping:   outputMapping,
	}, nil
}

// checkArgumentsUsed reports ErrArgumentUnused when a parameter never
// appears in any stage's output mapping nor in the function's final
// output (and is therefore never read or passed through).
func checkArgumentsUsed(fn Annotated, compiledStages []stage.Stage, finalMapping variable.RowMapping) error {
	used := make(map[variable.Variable]bool, len(fn.Parameters))
	for v := range finalMapping {
		used[v] = true
	}
	for _, s := range compiledStages {
		for v := range s.OutputRowMapping() {
			used[v] = true
		}
	}
	for _, p := range fn.Parameters {
		if !used[p] {
			return typedberr.ErrArgumentUnused.New(p.String())
		}
	}
	return nil
}
