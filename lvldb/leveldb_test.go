// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package lvldb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenonchain/xenon/kv"
)

func TestPutGet(t *testing.T) {
	db, err := NewMem()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Put([]byte("key"), []byte("value")))

	v, err := db.Get([]byte("key"))
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), v)

	has, err := db.Has([]byte("key"))
	require.NoError(t, err)
	assert.True(t, has)

	_, err = db.Get([]byte("missing"))
	assert.True(t, db.IsNotFound(err))

	require.NoError(t, db.Delete([]byte("key")))
	_, err = db.Get([]byte("key"))
	assert.True(t, db.IsNotFound(err))
}

func TestBatch(t *testing.T) {
	db, err := NewMem()
	require.NoError(t, err)
	defer db.Close()

	batch := db.NewBatch()
	require.NoError(t, batch.Put([]byte("a"), []byte("1")))
	require.NoError(t, batch.Put([]byte("b"), []byte("2")))
	assert.Equal(t, 2, batch.Len())

	// nothing visible before write
	_, err = db.Get([]byte("a"))
	assert.True(t, db.IsNotFound(err))

	require.NoError(t, batch.Write())

	v, err := db.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), v)
}

func TestIterator(t *testing.T) {
	db, err := NewMem()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Put([]byte("a1"), []byte("1")))
	require.NoError(t, db.Put([]byte("a2"), []byte("2")))
	require.NoError(t, db.Put([]byte("b1"), []byte("3")))

	it := db.NewIterator(kv.Range{Start: []byte("a"), Limit: []byte("b")})
	defer it.Release()

	var keys []string
	for it.Next() {
		keys = append(keys, string(it.Key()))
	}
	require.NoError(t, it.Error())
	assert.Equal(t, []string{"a1", "a2"}, keys)
}
