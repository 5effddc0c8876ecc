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

// Package reduce implements C2 (the reduce instruction model) and the
// Reduce stage executable described in spec section 4.5.
package reduce

import (
	"fmt"

	"github.com/GHR-Arash/typedb/variable"
)

// Kind enumerates the aggregate instructions a Reduce stage may emit.
type Kind int

const (
	Count Kind = iota
	CountVar
	SumLong
	SumDouble
	MaxLong
	MaxDouble
	MinLong
	MinDouble
	MeanLong
	MeanDouble
	MedianLong
	MedianDouble
	StdLong
	StdDouble
)

func (k Kind) String() string {
	names := [...]string{
		"Count", "CountVar",
		"SumLong", "SumDouble",
		"MaxLong", "MaxDouble",
		"MinLong", "MinDouble",
		"MeanLong", "MeanDouble",
		"MedianLong", "MedianDouble",
		"StdLong", "StdDouble",
	}
	if int(k) < 0 || int(k) >= len(names) {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return names[k]
}

// ValueType is the output type of a reducer.
type ValueType int

const (
	Long ValueType = iota
	Double
)

func (t ValueType) String() string {
	if t == Long {
		return "Long"
	}
	return "Double"
}

// OutputValueType deterministically assigns a reducer kind its output
// type: counts and integer-typed sums/min/max are Long, every other
// reducer (means, medians, std, and the Double-typed variants) is
// Double. This mirrors Testable Property 4 exactly.
func OutputValueType(k Kind) ValueType {
	switch k {
	case Count, CountVar, SumLong, MaxLong, MinLong:
		return Long
	default:
		return Double
	}
}

// needsInputVariable reports whether a reducer kind reads an input
// variable (everything except plain row-counting Count).
func needsInputVariable(k Kind) bool {
	return k != Count
}

// Assignment is a single `assigned_reduction` as written by the
// annotator: a reducer kind plus, for every kind except Count, the
// variable it aggregates over.
type Assignment struct {
	Kind           Kind
	ReducerOnVariable variable.Variable
	HasVariable    bool
}

// Instruction is one compiled reducer: its kind, the input row position
// it reads (absent for Count), and its deterministic output type.
type Instruction struct {
	Kind            Kind
	ReducerOnPosition variable.Position
	HasPosition     bool
	OutputType      ValueType
}
