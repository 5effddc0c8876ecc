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

package definable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GHR-Arash/typedb/concept/definable"
)

func TestDoesNotExistCarriesNoValue(t *testing.T) {
	s := definable.DoesNotExist[string]()
	require.True(t, s.IsDoesNotExist())
	require.False(t, s.IsExistsSame())
	require.False(t, s.IsExistsDifferent())
	_, has := s.Value()
	require.False(t, has)
}

func TestExistsSameCanOptionallyCarryAValue(t *testing.T) {
	withValue := definable.ExistsSame("schema-text", true)
	require.True(t, withValue.IsExistsSame())
	v, has := withValue.Value()
	require.True(t, has)
	require.Equal(t, "schema-text", v)

	without := definable.ExistsSame("ignored", false)
	require.True(t, without.IsExistsSame())
	_, has = without.Value()
	require.False(t, has)
}

func TestExistsDifferentAlwaysCarriesTheExistingValue(t *testing.T) {
	s := definable.ExistsDifferent(42)
	require.True(t, s.IsExistsDifferent())
	v, has := s.Value()
	require.True(t, has)
	require.Equal(t, 42, v)
}
