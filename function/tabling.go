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

// AnalyzeTabling computes, for every function keyed by key(), whether it
// participates in a recursion cycle - direct or mutual - and therefore
// requires tabled evaluation. It is a strongly-connected-components pass
// over the call graph restricted to functions present in the set;
// edges leaving the set (e.g. a preamble function calling an
// already-compiled schema function) are resolved elsewhere and never
// contribute to a cycle here.
//
// A function requires tabling when it sits in a non-trivial SCC (more
// than one member), or in a trivial SCC with a direct self-edge.
func AnalyzeTabling(functions []Annotated) map[string]bool {
	nodes := make(map[string]int, len(functions))
	byKey := make(map[string]Annotated, len(functions))
	for i, f := range functions {
		nodes[f.ID.Key()] = i
		byKey[f.ID.Key()] = f
	}

	edges := make(map[string][]string, len(functions))
	for _, f := range functions {
		var es []string
		for _, c := range f.Calls {
			if _, ok := nodes[c.Key()]; ok {
				es = append(es, c.Key())
			}
		}
		edges[f.ID.Key()] = es
	}

	sccs := tarjanSCC(nodes, edges)

	requiresTabling := make(map[string]bool, len(functions))
	for _, scc := range sccs {
		if len(scc) > 1 {
			for _, k := range scc {
				requiresTabling[k] = true
			}
			continue
		}
		k := scc[0]
		for _, e := range edges[k] {
			if e == k {
				requiresTabling[k] = true
				break
			}
		}
	}
	return requiresTabling
}

// tarjanSCC runs Tarjan's strongly-connected-components algorithm over a
// graph given as a node-key set and an adjacency list, returning the
// SCCs as groups of node keys.
func tarjanSCC(nodes map[string]int, edges map[string][]string) [][]string {
	var (
		index   = 0
		stack   []string
		onStack = make(map[string]bool, len(nodes))
		indices = make(map[string]int, len(nodes))
		lowlink = make(map[string]int, len(nodes))
		result  [][]string
	)

	var strongconnect func(v string)
	strongconnect = func(v string) {
		indices[v] = index
		lowlink[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range edges[v] {
			if _, seen := indices[w]; !seen {
				strongconnect(w)
				if lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			} else if onStack[w] {
				if indices[w] < lowlink[v] {
					lowlink[v] = indices[w]
				}
			}
		}

		if lowlink[v] == indices[v] {
			var scc []string
			for {
				n := len(stack) - 1
				w := stack[n]
				stack = stack[:n]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			result = append(result, scc)
		}
	}

	// Iterate in a stable order so tabling decisions are reproducible
	// across identical compiles.
	keys := make([]string, 0, len(nodes))
	for k := range nodes {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}

	for _, v := range keys {
		if _, seen := indices[v]; !seen {
			strongconnect(v)
		}
	}
	return result
}
