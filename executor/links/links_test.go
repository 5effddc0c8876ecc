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

package links_test

import (
	"context"
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/GHR-Arash/typedb/concept"
	"github.com/GHR-Arash/typedb/concept/memconcept"
	"github.com/GHR-Arash/typedb/config"
	"github.com/GHR-Arash/typedb/executor/links"
	"github.com/GHR-Arash/typedb/telemetry"
)

const (
	friendshipType concept.TypeID = 1
	personType     concept.TypeID = 2
	friendRole     concept.TypeID = 3
)

func fixture(t *testing.T) (*memconcept.Store, concept.IID, concept.IID, concept.IID) {
	t.Helper()
	store := memconcept.New()
	store.SetRelationPlayerTypes(friendshipType, personType, []concept.TypeID{friendRole})

	r1, r2 := concept.IID("r1"), concept.IID("r2")
	alice, bob, carol := concept.IID("alice"), concept.IID("bob"), concept.IID("carol")

	store.AddLink(r1, friendshipType, concept.RolePlayer{Player: alice, PlayerType: personType, Role: friendRole})
	store.AddLink(r1, friendshipType, concept.RolePlayer{Player: bob, PlayerType: personType, Role: friendRole})
	store.AddLink(r2, friendshipType, concept.RolePlayer{Player: carol, PlayerType: personType, Role: friendRole})

	return store, r1, r2, alice
}

func collectTuples(t *testing.T, cursor interface {
	Next(ctx context.Context) (links.Tuple, bool, error)
	Close() error
}) []links.Tuple {
	t.Helper()
	defer cursor.Close()
	var out []links.Tuple
	for {
		tup, ok, err := cursor.Next(context.Background())
		require.NoError(t, err)
		if !ok {
			return out
		}
		out = append(out, tup)
	}
}

func TestUnboundModeIteratesEveryLinkOrderedByRelation(t *testing.T) {
	store, _, _, _ := fixture(t)
	ctx := context.Background()
	ann := links.Annotated{
		RelationPlayerTypes: map[concept.TypeID][]concept.TypeID{friendshipType: {personType}},
		PlayerTypes:         []concept.TypeID{personType},
		SortBy:              links.SortByRelation,
	}

	exec, err := links.Compile(ctx, ann, store, memconcept.ReadSnapshot(store), store, config.Unbounded(), telemetry.Nop())
	require.NoError(t, err)
	require.Equal(t, links.Unbound, exec.Mode())

	cursor, err := exec.GetIterator(ctx, links.Rows{Snapshot: memconcept.ReadSnapshot(store), Things: store}, nil, 0, 0)
	require.NoError(t, err)
	tuples := collectTuples(t, cursor)
	require.Len(t, tuples, 3)

	var relations []string
	for _, tup := range tuples {
		relations = append(relations, string(tup[0].IID))
	}
	require.Equal(t, []string{"r1", "r1", "r2"}, relations)
}

func TestUnboundInvertedModeMaterializesCacheAndMergesByPlayer(t *testing.T) {
	store, _, _, _ := fixture(t)
	ctx := context.Background()
	ann := links.Annotated{
		RelationPlayerTypes: map[concept.TypeID][]concept.TypeID{friendshipType: {personType}},
		PlayerTypes:         []concept.TypeID{personType},
		SortBy:              links.SortByPlayer,
	}

	exec, err := links.Compile(ctx, ann, store, memconcept.ReadSnapshot(store), store, config.Unbounded(), telemetry.Nop())
	require.NoError(t, err)
	require.Equal(t, links.UnboundInverted, exec.Mode())

	cursor, err := exec.GetIterator(ctx, links.Rows{Snapshot: memconcept.ReadSnapshot(store), Things: store}, nil, 0, 0)
	require.NoError(t, err)
	tuples := collectTuples(t, cursor)
	require.Len(t, tuples, 3)

	var players []string
	for _, tup := range tuples {
		players = append(players, string(tup[0].IID))
	}
	require.Equal(t, []string{"alice", "bob", "carol"}, players, "must be ordered by player IID across the merged relation cache")
}

func TestUnboundInvertedWarnsWhenCacheExceedsConfiguredLimit(t *testing.T) {
	store, _, _, _ := fixture(t)
	ctx := context.Background()
	ann := links.Annotated{
		RelationPlayerTypes: map[concept.TypeID][]concept.TypeID{friendshipType: {personType}},
		PlayerTypes:         []concept.TypeID{personType},
		SortBy:              links.SortByPlayer,
	}

	// Two relation instances exist (r1, r2); a limit of 1 must not abort
	// compilation (this core logs a warning, it never panics).
	logger, hook := logrustest.NewNullLogger()
	tel := telemetry.New(logrus.NewEntry(logger), opentracing.NoopTracer{})
	_, err := links.Compile(ctx, ann, store, memconcept.ReadSnapshot(store), store, config.MaxSize(1), tel)
	require.NoError(t, err)

	warned := false
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warned = true
		}
	}
	require.True(t, warned, "a cache over the configured limit must log a warning")
}

func TestBoundFromModeFixesRelationAndOrdersByPlayer(t *testing.T) {
	store, r1, _, _ := fixture(t)
	ctx := context.Background()
	ann := links.Annotated{
		RelationPlayerTypes: map[concept.TypeID][]concept.TypeID{friendshipType: {personType}},
		PlayerTypes:         []concept.TypeID{personType},
		RelationBound:       true,
		SortBy:              links.SortByRelation,
	}

	exec, err := links.Compile(ctx, ann, store, memconcept.ReadSnapshot(store), store, config.Unbounded(), telemetry.Nop())
	require.NoError(t, err)
	require.Equal(t, links.BoundFrom, exec.Mode())

	row := concept.Row{concept.InstanceValue(r1)}
	cursor, err := exec.GetIterator(ctx, links.Rows{Snapshot: memconcept.ReadSnapshot(store), Things: store}, row, 0, 0)
	require.NoError(t, err)
	tuples := collectTuples(t, cursor)
	require.Len(t, tuples, 2, "relation r1 has exactly two players")
	require.Equal(t, "alice", string(tuples[0][0].IID))
	require.Equal(t, "bob", string(tuples[1][0].IID))
}

func TestBoundFromBoundToModeFixesBothSides(t *testing.T) {
	store, r1, _, alice := fixture(t)
	ctx := context.Background()
	ann := links.Annotated{
		RelationPlayerTypes: map[concept.TypeID][]concept.TypeID{friendshipType: {personType}},
		PlayerTypes:         []concept.TypeID{personType},
		RelationBound:       true,
		PlayerBound:         true,
		SortBy:              links.SortByRelation,
	}

	exec, err := links.Compile(ctx, ann, store, memconcept.ReadSnapshot(store), store, config.Unbounded(), telemetry.Nop())
	require.NoError(t, err)
	require.Equal(t, links.BoundFromBoundTo, exec.Mode())

	row := concept.Row{concept.InstanceValue(r1), concept.InstanceValue(alice)}
	cursor, err := exec.GetIterator(ctx, links.Rows{Snapshot: memconcept.ReadSnapshot(store), Things: store}, row, 0, 1)
	require.NoError(t, err)
	tuples := collectTuples(t, cursor)
	require.Len(t, tuples, 1)
}

func TestCompileRejectsEmptyRelationPlayerTypes(t *testing.T) {
	store := memconcept.New()
	ann := links.Annotated{PlayerTypes: []concept.TypeID{personType}}
	_, err := links.Compile(context.Background(), ann, store, memconcept.ReadSnapshot(store), store, config.Unbounded(), telemetry.Nop())
	require.Error(t, err)
}
