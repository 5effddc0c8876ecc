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

// Package write implements C4: the Insert and Delete executables
// compiled from annotated write constraints.
package write

import (
	"github.com/GHR-Arash/typedb/ids"
	"github.com/GHR-Arash/typedb/stage"
	"github.com/GHR-Arash/typedb/typedberr"
	"github.com/GHR-Arash/typedb/variable"
)

// ConstraintKind enumerates the write constraints an insert conjunction
// may contain.
type ConstraintKind int

const (
	// Isa produces a new concept instance of the given category.
	Isa ConstraintKind = iota
	// Has links an owner to an attribute (no new row slot).
	Has
	// RolePlayer links a relation to a player under a role (no new row slot).
	RolePlayer
)

// Constraint is one annotated insert constraint. For Isa, Variable is
// the produced instance and Category its kind; for Has and RolePlayer,
// Variable/Related name the two instances the edge connects.
type Constraint struct {
	Kind     ConstraintKind
	Variable variable.Variable
	Category variable.Category
	Related  variable.Variable
	Role     variable.Variable
}

// SchemaSlot is one entry of an InsertExecutable's output_row_schema:
// present (Some) slots carry the Variable and its category; absent
// slots are represented by HasValue == false.
type SchemaSlot struct {
	Variable variable.Variable
	Category variable.Category
	HasValue bool
}

// InsertExecutable is the compiled Insert stage.
type InsertExecutable struct {
	id            ids.ExecutableID
	constraints   []Constraint
	outputSchema  []SchemaSlot
	outputMapping variable.RowMapping
}

func (e *InsertExecutable) Kind() stage.Kind                     { return stage.KindInsert }
func (e *InsertExecutable) ExecutableID() ids.ExecutableID        { return e.id }
func (e *InsertExecutable) OutputRowMapping() variable.RowMapping  { return e.outputMapping }
func (e *InsertExecutable) OutputRowSchema() []SchemaSlot          { return e.outputSchema }
func (e *InsertExecutable) Constraints() []Constraint              { return e.constraints }

// CompileInsert builds an InsertExecutable. input variables are carried
// forward at their existing (renumbered-dense) positions; Isa constraints
// append one new schema slot each, in declaration order.
func CompileInsert(constraints []Constraint, input variable.RowMapping) (*InsertExecutable, error) {
	inputPositions := input.Positions()
	byPosition := make(map[variable.Position]variable.Variable, len(inputPositions))
	for v, p := range input {
		byPosition[p] = v
	}

	schema := make([]SchemaSlot, 0, len(inputPositions)+len(constraints))
	mapping := make(variable.RowMapping, len(inputPositions)+len(constraints))

	for i, pos := range inputPositions {
		v := byPosition[pos]
		schema = append(schema, SchemaSlot{Variable: v, HasValue: true})
		mapping[v] = variable.Position(i)
	}

	for _, c := range constraints {
		if c.Kind != Isa {
			continue
		}
		slotPos := variable.Position(len(schema))
		schema = append(schema, SchemaSlot{Variable: c.Variable, Category: c.Category, HasValue: true})
		mapping[c.Variable] = slotPos
	}

	if err := validateReferences(constraints, mapping); err != nil {
		return nil, typedberr.ErrInsertExecutableCompilation.New(err.Error())
	}

	return &InsertExecutable{
		id:            ids.NextExecutableID(),
		constraints:   constraints,
		outputSchema:  schema,
		outputMapping: mapping,
	}, nil
}

func validateReferences(constraints []Constraint, mapping variable.RowMapping) error {
	for _, c := range constraints {
		if c.Kind == Isa {
			continue
		}
		if _, ok := mapping[c.Variable]; !ok {
			return variableNotFoundError(c.Variable)
		}
		if _, ok := mapping[c.Related]; !ok {
			return variableNotFoundError(c.Related)
		}
	}
	return nil
}

func variableNotFoundError(v variable.Variable) error {
	return &missingVariableError{v: v}
}

type missingVariableError struct{ v variable.Variable }

func (e *missingVariableError) Error() string {
	return "insert: variable " + e.v.String() + " is referenced by a Has/RolePlayer constraint but never produced or bound"
}
