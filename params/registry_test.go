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

package params_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/GHR-Arash/typedb/params"
)

func TestRegistryAssignsDenseSequentialIDsPerKind(t *testing.T) {
	r := params.NewRegistry()

	v0 := r.RegisterValue(params.NewLongValue(1))
	i0 := r.RegisterIID([]byte("abc"))
	v1 := r.RegisterValue(params.NewDoubleValue(decimal.NewFromFloat(1.5)))
	f0 := r.RegisterFetchKey("name")
	i1 := r.RegisterIID([]byte("def"))

	require.Equal(t, params.ID{Kind: params.ValueKind, Index: 0}, v0)
	require.Equal(t, params.ID{Kind: params.ValueKind, Index: 1}, v1)
	require.Equal(t, params.ID{Kind: params.IIDKind, Index: 0}, i0)
	require.Equal(t, params.ID{Kind: params.IIDKind, Index: 1}, i1)
	require.Equal(t, params.ID{Kind: params.FetchKeyKind, Index: 0}, f0)

	require.Equal(t, 2, r.ValueCount())
	require.Equal(t, 2, r.IIDCount())
	require.Equal(t, 1, r.FetchKeyCount())
}

func TestRegistryLookupsAreKindScoped(t *testing.T) {
	r := params.NewRegistry()
	v := r.RegisterValue(params.NewLongValue(42))
	i := r.RegisterIID([]byte("xyz"))

	_, ok := r.IID(v)
	require.False(t, ok, "a value ID must not resolve as an IID")

	_, ok = r.Value(i)
	require.False(t, ok, "an IID ID must not resolve as a value")

	got, ok := r.Value(v)
	require.True(t, ok)
	require.Equal(t, int64(42), got.Data)

	iid, ok := r.IID(i)
	require.True(t, ok)
	require.Equal(t, []byte("xyz"), iid)
}

func TestRegisterIIDCopiesInput(t *testing.T) {
	r := params.NewRegistry()
	raw := []byte("mutate-me")
	id := r.RegisterIID(raw)
	raw[0] = 'X'

	stored, ok := r.IID(id)
	require.True(t, ok)
	require.Equal(t, []byte("mutate-me"), stored, "registry must not alias the caller's backing array")
}

func TestRegisterIIDPanicsOnOversizeIdentifier(t *testing.T) {
	r := params.NewRegistry()
	oversized := make([]byte, 65)
	require.Panics(t, func() { r.RegisterIID(oversized) })
}

func TestInsertValueAtRequiresNextDenseID(t *testing.T) {
	r := params.NewRegistry()
	first := r.RegisterValue(params.NewLongValue(1))

	require.Panics(t, func() {
		r.InsertValueAt(first, params.NewLongValue(2))
	}, "re-inserting at an already-used ID is a programming error")

	next := params.ID{Kind: params.ValueKind, Index: r.ValueCount()}
	require.NotPanics(t, func() {
		r.InsertValueAt(next, params.NewLongValue(3))
	})
}

func TestNewDoubleValueStoresDecimalNotFloat(t *testing.T) {
	v := params.NewDoubleValue(decimal.NewFromFloat(1.10))
	d, ok := v.Data.(decimal.Decimal)
	require.True(t, ok)
	require.Equal(t, "1.1", d.String())
	require.Equal(t, "double", v.ValueType)
}
