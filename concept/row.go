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

package concept

// RowValue is one cell of a bound row, either an instance (IID) or a
// type (TypeID, used for bound role variables). Executors read these by
// variable.Position to resolve already-bound operands of a partially
// bound constraint.
type RowValue struct {
	IID    IID
	Type   TypeID
	IsType bool
}

// InstanceValue wraps an instance IID as a RowValue.
func InstanceValue(iid IID) RowValue { return RowValue{IID: iid} }

// TypeValue wraps a TypeID as a RowValue.
func TypeValue(t TypeID) RowValue { return RowValue{Type: t, IsType: true} }

// Row is one partially- or fully-bound row of the pipeline, indexed by
// variable.Position. Executors only ever read positions their compiled
// executable has already established as bound; reading an unbound
// position is a programming error in the caller, not a recoverable one.
type Row []RowValue
