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

// Package definable reports whether a schema-defining statement
// (define/redefine) would change anything, without persisting that
// decision anywhere. This core only produces the report; schema-change
// planning that consumes it lives outside this core.
package definable

// Mode distinguishes checking only declared capabilities from checking
// the transitive closure (declared + inherited).
type Mode int

const (
	Declared Mode = iota
	Transitive
)

// variant discriminates the three-valued Status without exposing a raw
// tag to callers; use the Is* predicates and Value instead.
type variant int

const (
	doesNotExist variant = iota
	existsSame
	existsDifferent
)

// Status reports, for one candidate schema definition of type T, whether
// it does not exist yet, exists identically, or exists but differs.
// ExistsSame optionally carries the existing value (T is returned only
// when a caller needs it, mirroring the source's Option<T> inside
// ExistsSame).
type Status[T any] struct {
	v     variant
	value T
	has   bool
}

// DoesNotExist reports that no definition with this label/signature
// exists yet.
func DoesNotExist[T any]() Status[T] { return Status[T]{v: doesNotExist} }

// ExistsSame reports that an identical definition already exists. value
// is optional: pass zero and hasValue=false when the caller has no use
// for the existing value.
func ExistsSame[T any](value T, hasValue bool) Status[T] {
	return Status[T]{v: existsSame, value: value, has: hasValue}
}

// ExistsDifferent reports that a definition with this label/signature
// exists but differs from the candidate; value is the existing one.
func ExistsDifferent[T any](value T) Status[T] {
	return Status[T]{v: existsDifferent, value: value, has: true}
}

func (s Status[T]) IsDoesNotExist() bool  { return s.v == doesNotExist }
func (s Status[T]) IsExistsSame() bool    { return s.v == existsSame }
func (s Status[T]) IsExistsDifferent() bool { return s.v == existsDifferent }

// Value returns the carried value and whether one is present. It is
// present for ExistsDifferent, and for ExistsSame only when the producer
// chose to attach one.
func (s Status[T]) Value() (T, bool) { return s.value, s.has }
