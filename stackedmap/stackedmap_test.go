// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stackedmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenonchain/xenon/stackedmap"
)

func TestStackedMap(t *testing.T) {
	src := make(map[string]string)
	src["base"] = "from src"

	sm := stackedmap.New(func(key any) (any, bool, error) {
		v, ok := src[key.(string)]
		return v, ok, nil
	})

	// falls through to the source when no level has the key
	v, ok, err := sm.Get("base")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "from src", v)

	sm.Push()
	sm.Put("k1", "v1")

	v, ok, err = sm.Get("k1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v1", v)

	// deeper level shadows
	rev := sm.Push()
	sm.Put("k1", "v1'")
	v, _, _ = sm.Get("k1")
	assert.Equal(t, "v1'", v)

	sm.PopTo(rev)
	v, _, _ = sm.Get("k1")
	assert.Equal(t, "v1", v)

	sm.Pop()
	_, ok, err = sm.Get("k1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStackedMapPuts(t *testing.T) {
	sm := stackedmap.New(func(_ any) (any, bool, error) {
		return nil, false, nil
	})

	kvs := []struct{ k, v string }{
		{"a", "1"},
		{"b", "2"},
		{"a", "3"},
		{"c", "4"},
	}

	sm.Push()
	for _, kv := range kvs {
		sm.Put(kv.k, kv.v)
	}

	// journal iterates puts in chronological order
	i := 0
	sm.Journal(func(k, v any) bool {
		assert.Equal(t, kvs[i].k, k)
		assert.Equal(t, kvs[i].v, v)
		i++
		return true
	})
	assert.Equal(t, len(kvs), i)

	// early termination
	i = 0
	sm.Journal(func(_, _ any) bool {
		i++
		return false
	})
	assert.Equal(t, 1, i)
}

func TestStackedMapDepth(t *testing.T) {
	sm := stackedmap.New(func(_ any) (any, bool, error) {
		return nil, false, nil
	})

	assert.Equal(t, 0, sm.Depth())
	rev := sm.Push()
	sm.Push()
	sm.Push()
	assert.Equal(t, 3, sm.Depth())
	sm.PopTo(rev)
	assert.Equal(t, 0, sm.Depth())
}
