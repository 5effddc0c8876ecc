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

package pipeline

import (
	"github.com/GHR-Arash/typedb/concept"
	"github.com/GHR-Arash/typedb/fetch"
	"github.com/GHR-Arash/typedb/function"
	"github.com/GHR-Arash/typedb/match"
	"github.com/GHR-Arash/typedb/sequence"
	"github.com/GHR-Arash/typedb/telemetry"
	"github.com/GHR-Arash/typedb/variable"
)

// Input bundles every collaborator and annotated artifact the pipeline
// compiler's contract (spec section 4.1) names.
type Input struct {
	Statistics         concept.Statistics
	VariableRegistry   *variable.Registry
	SchemaFunctions    []function.Annotated
	PreambleFunctions  []function.Annotated
	Stages             []sequence.AnnotatedStage
	Fetch              *fetch.AnnotatedNode
	InputVariables     []variable.Variable
	Planner            match.Planner
}

// Compile runs the six-step algorithm of spec section 4.1:
//  1. tabling analysis over schema functions,
//  2. compile schema functions,
//  3. tabling analysis over preamble functions,
//  4. compile preamble functions,
//  5. compile the stage sequence,
//  6. compile fetch (if present).
func Compile(in Input, tel *telemetry.Context) (*ExecutablePipeline, error) {
	tel = tel.OrNop()
	span := tel.StartSpan("pipeline.Compile")
	defer span.Finish()

	schemaTabling := function.AnalyzeTabling(in.SchemaFunctions)
	tel.Logger().WithField("schema_functions", len(in.SchemaFunctions)).Debug("tabling analysis complete")

	schemaRegistry := function.NewRegistry()
	for _, fn := range in.SchemaFunctions {
		compiled, err := function.Compile(fn, schemaTabling[fn.ID.Key()], in.VariableRegistry, in.Statistics, in.Planner)
		if err != nil {
			return nil, err
		}
		schemaRegistry.Put(compiled)
	}

	preambleTabling := preambleTablingGraph(in.PreambleFunctions)
	preambleRegistry := function.NewRegistry()
	combinedSoFar := schemaRegistry
	for _, fn := range in.PreambleFunctions {
		compiled, err := function.Compile(fn, preambleTabling[fn.ID.Key()], in.VariableRegistry, in.Statistics, in.Planner)
		if err != nil {
			return nil, err
		}
		preambleRegistry.Put(compiled)
	}
	functions := combinedSoFar.Merge(preambleRegistry)

	compiledStages, _, err := sequence.CompileStages(in.Stages, in.InputVariables, nil, in.VariableRegistry, in.Statistics, in.Planner)
	if err != nil {
		return nil, err
	}
	tel.Logger().WithField("stages", len(compiledStages)).Debug("stage sequence compiled")

	pipeline := &ExecutablePipeline{Functions: functions, Stages: compiledStages}

	if in.Fetch != nil {
		compiledFetch, err := fetch.Compile(*in.Fetch, pipeline.LastOutputMapping(), functions)
		if err != nil {
			return nil, err
		}
		pipeline.Fetch = compiledFetch
	}

	return pipeline, nil
}

// preambleTablingGraph runs the tabling analysis over preamble functions
// alone: they see each other (for cycle detection) and may additionally
// call schema functions, but calls into already-compiled schema
// functions never introduce a cycle back into the preamble set, so they
// are simply absent as edges (function.AnalyzeTabling already drops
// edges leaving the node set).
func preambleTablingGraph(preamble []function.Annotated) map[string]bool {
	return function.AnalyzeTabling(preamble)
}
