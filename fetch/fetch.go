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

// Package fetch implements C7: compiling a fetch clause over the final
// stage's variable positions and the function registry into an
// immutable projection tree.
package fetch

import (
	"github.com/GHR-Arash/typedb/function"
	"github.com/GHR-Arash/typedb/typedberr"
	"github.com/GHR-Arash/typedb/variable"
)

// NodeKind discriminates the three shapes a fetch projection node may
// take.
type NodeKind int

const (
	Leaf NodeKind = iota
	List
	Object
)

// AnnotatedNode is one not-yet-compiled fetch projection node.
type AnnotatedNode struct {
	Kind NodeKind

	// Leaf: exactly one of LeafVariable or LeafCall is set.
	LeafVariable variable.Variable
	LeafIsVar    bool
	LeafCall     *Call

	// List.
	ListOf *AnnotatedNode

	// Object: field name -> sub-node, order-preserving.
	FieldNames []string
	Fields     map[string]AnnotatedNode
}

// Call names a function invocation used as a fetch leaf (a subquery
// projected into the result).
type Call struct {
	Function  function.ID
	Arguments []variable.Variable
}

// Node is the compiled, immutable counterpart of AnnotatedNode.
type Node struct {
	Kind NodeKind

	LeafPosition  variable.Position
	LeafIsVar     bool
	LeafFunction  *function.Compiled
	LeafArguments []variable.Position

	ListOf *Node

	FieldNames []string
	Fields     map[string]*Node
}

// Executable is the compiled fetch clause: an immutable projection tree
// over the pipeline's final row mapping.
type Executable struct {
	Root *Node
}

// Compile compiles an annotated fetch tree against the last stage's
// output mapping and the combined function registry.
func Compile(root AnnotatedNode, lastMapping variable.RowMapping, functions *function.Registry) (*Executable, error) {
	n, err := compileNode(root, lastMapping, functions)
	if err != nil {
		return nil, typedberr.ErrFetchCompilation.New(err.Error())
	}
	return &Executable{Root: n}, nil
}

func compileNode(a AnnotatedNode, mapping variable.RowMapping, functions *function.Registry) (*Node, error) {
	switch a.Kind {
	case Leaf:
		if a.LeafIsVar {
			pos, ok := mapping[a.LeafVariable]
			if !ok {
				return nil, missingVariableErr(a.LeafVariable)
			}
			return &Node{Kind: Leaf, LeafIsVar: true, LeafPosition: pos}, nil
		}
		compiledFn, ok := functions.Lookup(a.LeafCall.Function)
		if !ok {
			return nil, typedberr.ErrFunctionNotFound.New(a.LeafCall.Function.String())
		}
		args := make([]variable.Position, len(a.LeafCall.Arguments))
		for i, v := range a.LeafCall.Arguments {
			pos, ok := mapping[v]
			if !ok {
				return nil, missingVariableErr(v)
			}
			args[i] = pos
		}
		return &Node{Kind: Leaf, LeafFunction: compiledFn, LeafArguments: args}, nil

	case List:
		sub, err := compileNode(*a.ListOf, mapping, functions)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: List, ListOf: sub}, nil

	case Object:
		fields := make(map[string]*Node, len(a.Fields))
		for _, name := range a.FieldNames {
			sub, err := compileNode(a.Fields[name], mapping, functions)
			if err != nil {
				return nil, err
			}
			fields[name] = sub
		}
		return &Node{Kind: Object, FieldNames: a.FieldNames, Fields: fields}, nil

	default:
		return nil, missingVariableErr(variable.Variable{})
	}
}

type fetchMissingVariableError struct{ v variable.Variable }

func (e *fetchMissingVariableError) Error() string {
	return "fetch: variable " + e.v.String() + " is not present in the final stage mapping"
}

func missingVariableErr(v variable.Variable) error { return &fetchMissingVariableError{v: v} }
