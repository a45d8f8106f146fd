// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package slot_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenonchain/xenon/builtin/slot"
	"github.com/xenonchain/xenon/lvldb"
	"github.com/xenonchain/xenon/state"
	"github.com/xenonchain/xenon/xenon"
)

func newContext(t *testing.T) *slot.Context {
	t.Helper()
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	return slot.NewContext(xenon.BytesToAddress([]byte("contract")), state.New(db))
}

type record struct {
	Tag    uint32
	Amount *big.Int
}

func TestMapping(t *testing.T) {
	sctx := newContext(t)
	m := slot.NewMapping[xenon.Address, *record](sctx, xenon.BytesToBytes32([]byte("records")))

	k1 := xenon.BytesToAddress([]byte("k1"))
	k2 := xenon.BytesToAddress([]byte("k2"))

	// absent key decodes to the zero value, pointers allocated
	v, err := m.Get(k1)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, uint32(0), v.Tag)
	assert.Equal(t, 0, v.Amount.Sign())

	require.NoError(t, m.Set(k1, &record{Tag: 7, Amount: big.NewInt(100)}))

	v, err = m.Get(k1)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), v.Tag)
	assert.Equal(t, big.NewInt(100), v.Amount)

	// keys are independent
	v, err = m.Get(k2)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), v.Tag)

	require.NoError(t, m.Delete(k1))
	v, err = m.Get(k1)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), v.Tag)
	assert.Equal(t, 0, v.Amount.Sign())
}

func TestMappingBigInt(t *testing.T) {
	sctx := newContext(t)
	m := slot.NewMapping[xenon.Bytes32, *big.Int](sctx, xenon.BytesToBytes32([]byte("amounts")))

	key := xenon.Blake2b([]byte("key"))

	v, err := m.Get(key)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 0, v.Sign())

	require.NoError(t, m.Set(key, big.NewInt(12345)))
	v, err = m.Get(key)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(12345), v)
}

func TestUint256(t *testing.T) {
	sctx := newContext(t)
	u := slot.NewUint256(sctx, xenon.BytesToBytes32([]byte("counter")))

	v, err := u.Get()
	require.NoError(t, err)
	assert.Equal(t, 0, v.Sign())

	u.Set(big.NewInt(10))
	require.NoError(t, u.Add(big.NewInt(5)))
	v, err = u.Get()
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(15), v)

	require.NoError(t, u.Sub(big.NewInt(15)))
	v, err = u.Get()
	require.NoError(t, err)
	assert.Equal(t, 0, v.Sign())
}

func TestArray(t *testing.T) {
	sctx := newContext(t)
	arr := slot.NewArray[xenon.Address](sctx, xenon.BytesToBytes32([]byte("list")))

	length, err := arr.Len()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), length)

	a0 := xenon.BytesToAddress([]byte("a0"))
	a1 := xenon.BytesToAddress([]byte("a1"))

	require.NoError(t, arr.Append(a0))
	require.NoError(t, arr.Append(a1))

	length, err = arr.Len()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), length)

	got, err := arr.Get(1)
	require.NoError(t, err)
	assert.Equal(t, a1, got)

	_, err = arr.Get(2)
	assert.ErrorIs(t, err, slot.ErrIndexOutOfRange)
	assert.ErrorIs(t, arr.Set(2, a0), slot.ErrIndexOutOfRange)
	assert.ErrorIs(t, arr.Clear(2), slot.ErrIndexOutOfRange)
}

func TestArrayClearLeavesHole(t *testing.T) {
	sctx := newContext(t)
	arr := slot.NewArray[uint32](sctx, xenon.BytesToBytes32([]byte("list")))

	require.NoError(t, arr.Append(100))
	require.NoError(t, arr.Append(200))
	require.NoError(t, arr.Append(300))

	require.NoError(t, arr.Clear(1))

	// length unchanged, other indices unmoved
	length, err := arr.Len()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), length)

	v, err := arr.Get(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(100), v)

	// the hole reads as zero
	v, err = arr.Get(1)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), v)

	v, err = arr.Get(2)
	require.NoError(t, err)
	assert.Equal(t, uint32(300), v)

	// appending after a clear grows past the hole
	require.NoError(t, arr.Append(400))
	v, err = arr.Get(3)
	require.NoError(t, err)
	assert.Equal(t, uint32(400), v)
}
