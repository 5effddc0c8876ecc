// Copyright 2020-2023 Dolthub, Inc.
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

// Command compilebench drives the pipeline compiler and the links
// executor over a small canned schema, the same "build a fixture, run
// it, print the timing" shape as the teacher's driver/_example and
// benchmark packages - here there is no SQL server to dial into, so the
// fixture is an in-memory concept.ThingManager/TypeManager instead of a
// MySQL connection.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/GHR-Arash/typedb/concept"
	"github.com/GHR-Arash/typedb/concept/memconcept"
	"github.com/GHR-Arash/typedb/config"
	"github.com/GHR-Arash/typedb/executor/links"
	"github.com/GHR-Arash/typedb/match"
	"github.com/GHR-Arash/typedb/pipeline"
	"github.com/GHR-Arash/typedb/sequence"
	"github.com/GHR-Arash/typedb/stage"
	"github.com/GHR-Arash/typedb/telemetry"
	"github.com/GHR-Arash/typedb/variable"
)

func main() {
	store, friendshipType, personType := buildFixture()

	must(runPipelineCompile())
	must(runLinksIteration(store, friendshipType, personType))
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

// runPipelineCompile compiles a minimal one-stage pipeline (a single
// Match stage over a StubPlanner) and reports the wall time and the
// resulting output row mapping, the compiler-side half of the bench.
func runPipelineCompile() error {
	registry := variable.NewRegistry()
	person, err := registry.NewNamed("person", variable.Entity, "compilebench")
	if err != nil {
		return err
	}

	stages := []sequence.AnnotatedStage{
		{
			Kind: stage.KindMatch,
			Match: &sequence.MatchSpec{
				Block: match.Block{NamedReferencedVariables: []variable.Variable{person}},
			},
		},
	}

	start := time.Now()
	result, err := pipeline.Compile(pipeline.Input{
		Statistics:       memconcept.New(),
		VariableRegistry: registry,
		Stages:           stages,
		Planner:          match.StubPlanner{},
	}, telemetry.Nop())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("pipeline compiled in %s: %d stage(s), output mapping has %d variable(s)\n",
		elapsed, len(result.Stages), len(result.LastOutputMapping()))
	return nil
}

// buildFixture populates a memconcept.Store with a handful of people
// related by a binary "friendship" relation, returning the store plus
// the relation and player type IDs the links iteration below needs.
func buildFixture() (*memconcept.Store, concept.TypeID, concept.TypeID) {
	const (
		friendshipType concept.TypeID = 1
		personType     concept.TypeID = 2
		friendRole     concept.TypeID = 3
	)

	store := memconcept.New()
	store.SetRelationPlayerTypes(friendshipType, personType, []concept.TypeID{friendRole})
	store.SetLinksCount(friendshipType, 4)
	store.SetThingCount(personType, 4)

	people := [][]byte{[]byte("alice"), []byte("bob"), []byte("carol"), []byte("dave")}
	relations := [][]byte{[]byte("r1"), []byte("r2")}

	store.AddLink(relations[0], friendshipType, concept.RolePlayer{Player: people[0], PlayerType: personType, Role: friendRole})
	store.AddLink(relations[0], friendshipType, concept.RolePlayer{Player: people[1], PlayerType: personType, Role: friendRole})
	store.AddLink(relations[1], friendshipType, concept.RolePlayer{Player: people[2], PlayerType: personType, Role: friendRole})
	store.AddLink(relations[1], friendshipType, concept.RolePlayer{Player: people[3], PlayerType: personType, Role: friendRole})

	return store, friendshipType, personType
}

// runLinksIteration compiles and drives an Unbound-mode links executor
// over the fixture, printing every tuple it yields - the executor-side
// half of the bench, and the illustrative example spec section 1 asks
// this core to ship.
func runLinksIteration(store *memconcept.Store, friendshipType, personType concept.TypeID) error {
	ctx := context.Background()
	ann := links.Annotated{
		RelationPlayerTypes: map[concept.TypeID][]concept.TypeID{friendshipType: {personType}},
		PlayerTypes:         []concept.TypeID{personType},
		SortBy:              links.SortByRelation,
	}

	start := time.Now()
	executable, err := links.Compile(ctx, ann, store, memconcept.ReadSnapshot(store), store, config.Default().LinksCachePolicy, telemetry.Nop())
	if err != nil {
		return err
	}

	cursor, err := executable.GetIterator(ctx, links.Rows{Snapshot: memconcept.ReadSnapshot(store), Things: store}, nil, 0, 0)
	if err != nil {
		return err
	}
	defer cursor.Close()

	count := 0
	for {
		tuple, ok, err := cursor.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		fmt.Printf("tuple: relation=%x player=%x role=%d\n", tuple[0].IID, tuple[1].IID, tuple[2].Type)
		count++
	}
	fmt.Printf("links executor (%s) yielded %d tuple(s) in %s\n", executable.Mode(), count, time.Since(start))
	return nil
}
