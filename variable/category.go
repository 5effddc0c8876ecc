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

package variable

// Category is the kind of concept a Variable may be bound to.
type Category int

const (
	Entity Category = iota
	Relation
	Attribute
	Value
	Type
	Role
	Thing
	Object
)

func (c Category) String() string {
	switch c {
	case Entity:
		return "entity"
	case Relation:
		return "relation"
	case Attribute:
		return "attribute"
	case Value:
		return "value"
	case Type:
		return "type"
	case Role:
		return "role"
	case Thing:
		return "thing"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// instanceCategories narrow to themselves under Thing/Object, the two
// supercategories that mean "any instance concept".
var instanceCategories = map[Category]bool{
	Entity:    true,
	Relation:  true,
	Attribute: true,
}

// narrow computes the narrowest Category compatible with both a and b, or
// reports that none exists. It is symmetric: narrow(a, b) == narrow(b, a).
func narrow(a, b Category) (Category, bool) {
	if a == b {
		return a, true
	}

	// Thing and Object are interchangeable supercategories of any instance
	// kind; narrowing either against a concrete instance category keeps
	// the concrete one.
	if (a == Thing || a == Object) && (b == Thing || b == Object) {
		return Thing, true
	}
	if a == Thing || a == Object {
		if instanceCategories[b] {
			return b, true
		}
		return 0, false
	}
	if b == Thing || b == Object {
		if instanceCategories[a] {
			return a, true
		}
		return 0, false
	}

	// Role narrows Type: every role is also a type, so assigning Type then
	// Role (or vice versa) keeps the more specific Role.
	if a == Type && b == Role {
		return Role, true
	}
	if a == Role && b == Type {
		return Role, true
	}

	return 0, false
}
