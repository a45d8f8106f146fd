// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package xenon

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBytes32(t *testing.T) {
	b32, err := ParseBytes32("0x0000000000000000000000000000000000000000000000000000000000000001")
	require.NoError(t, err)
	assert.Equal(t, BytesToBytes32([]byte{1}), b32)

	_, err = ParseBytes32("0x01")
	assert.Error(t, err)

	_, err = ParseBytes32("zz00000000000000000000000000000000000000000000000000000000000001")
	assert.Error(t, err)
}

func TestBytes32IsZero(t *testing.T) {
	assert.True(t, Bytes32{}.IsZero())
	assert.False(t, BytesToBytes32([]byte{1}).IsZero())
}

func TestBytes32JSON(t *testing.T) {
	b32 := BytesToBytes32([]byte("identity"))

	data, err := json.Marshal(&b32)
	require.NoError(t, err)

	var decoded Bytes32
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, b32, decoded)
}

func TestBlake2b(t *testing.T) {
	// multi-part hashing equals hashing the concatenation
	assert.Equal(t, Blake2b([]byte("hello world")), Blake2b([]byte("hello"), []byte(" world")))
	assert.NotEqual(t, Blake2b([]byte("hello")), Blake2b([]byte("world")))
}

func TestKeccak256(t *testing.T) {
	assert.Equal(t,
		MustParseBytes32("0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"),
		Keccak256())
	assert.Equal(t, Keccak256([]byte("ab")), Keccak256([]byte("a"), []byte("b")))
}
