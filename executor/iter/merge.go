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

package iter

import "context"

// KWayMerge merges already-sorted cursors into one cursor sorted
// according to less, used by the links executor's UnboundInverted mode
// to merge per-relation link cursors ordered by (player, relation). A
// single-source merge is elided by the caller per spec (a one-element
// cache skips the merge machinery entirely); KWayMerge itself handles
// the general N-source case and is also correct, if unnecessary
// overhead, for N=1.
func KWayMerge[T any](sources []Cursor[T], less func(a, b T) bool) Cursor[T] {
	return &mergeCursor[T]{sources: sources, less: less}
}

type mergeHead[T any] struct {
	value T
	idx   int
}

type mergeCursor[T any] struct {
	sources []Cursor[T]
	less    func(a, b T) bool
	heads   []mergeHead[T]
	started bool
}

func (m *mergeCursor[T]) fillHeads(ctx context.Context) error {
	m.heads = make([]mergeHead[T], 0, len(m.sources))
	for i, src := range m.sources {
		v, ok, err := src.Next(ctx)
		if err != nil {
			return err
		}
		if ok {
			m.heads = append(m.heads, mergeHead[T]{value: v, idx: i})
		}
	}
	return nil
}

// Next pulls the least head across all live sources, in O(n) per call
// over the number of currently-live sources. The links relation cache is
// small enough in every configured CachePolicy that this is preferable
// to the bookkeeping of a heap; see DESIGN.md.
func (m *mergeCursor[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if !m.started {
		m.started = true
		if err := m.fillHeads(ctx); err != nil {
			return zero, false, err
		}
	}
	if len(m.heads) == 0 {
		return zero, false, nil
	}

	minPos := 0
	for i := 1; i < len(m.heads); i++ {
		if m.less(m.heads[i].value, m.heads[minPos].value) {
			minPos = i
		}
	}

	winner := m.heads[minPos]
	next, ok, err := m.sources[winner.idx].Next(ctx)
	if err != nil {
		return zero, false, err
	}
	if ok {
		m.heads[minPos] = mergeHead[T]{value: next, idx: winner.idx}
	} else {
		m.heads = append(m.heads[:minPos], m.heads[minPos+1:]...)
	}
	return winner.value, true, nil
}

func (m *mergeCursor[T]) Close() error {
	var firstErr error
	for _, src := range m.sources {
		if err := src.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
