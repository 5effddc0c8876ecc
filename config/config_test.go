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

package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GHR-Arash/typedb/config"
)

func TestMaxSizeWithNonPositiveNIsUnbounded(t *testing.T) {
	require.False(t, config.MaxSize(0).Bounded())
	require.False(t, config.MaxSize(-5).Bounded())
	require.False(t, config.Unbounded().Bounded())
}

func TestMaxSizeReportsItsLimit(t *testing.T) {
	p := config.MaxSize(3)
	require.True(t, p.Bounded())
	require.Equal(t, 3, p.Limit())
}

func TestDefaultHonorsCacheSizeEnvVar(t *testing.T) {
	t.Setenv("TYPEDB_LINKS_CACHE_SIZE", "10")
	cfg := config.Default()
	require.True(t, cfg.LinksCachePolicy.Bounded())
	require.Equal(t, 10, cfg.LinksCachePolicy.Limit())
}

func TestDefaultIgnoresMalformedCacheSizeEnvVar(t *testing.T) {
	t.Setenv("TYPEDB_LINKS_CACHE_SIZE", "not-a-number")
	cfg := config.Default()
	require.False(t, cfg.LinksCachePolicy.Bounded())
}

func TestDefaultIsUnboundedWithoutEnvVar(t *testing.T) {
	cfg := config.Default()
	require.False(t, cfg.LinksCachePolicy.Bounded())
}
