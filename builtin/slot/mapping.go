// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package slot

import (
	"reflect"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/xenonchain/xenon/xenon"
)

// Key is anything that can be used as a mapping key.
type Key interface {
	Bytes() []byte
}

// Mapping is a key/value storage abstraction for built-in contracts,
// similar to the mapping in Solidity. Values are RLP encoded; an empty
// storage value decodes to the zero value of V.
type Mapping[K Key, V any] struct {
	context *Context
	basePos xenon.Bytes32
}

func NewMapping[K Key, V any](context *Context, pos xenon.Bytes32) *Mapping[K, V] {
	return &Mapping[K, V]{context: context, basePos: pos}
}

func (m *Mapping[K, V]) position(key K) xenon.Bytes32 {
	return xenon.Blake2b(key.Bytes(), m.basePos.Bytes())
}

func (m *Mapping[K, V]) Get(key K) (value V, err error) {
	err = m.context.state.DecodeStorage(m.context.address, m.position(key), func(raw []byte) error {
		if reflect.ValueOf(value).Kind() == reflect.Ptr {
			value = reflect.New(reflect.TypeOf(value).Elem()).Interface().(V)
		}
		if len(raw) == 0 {
			return nil
		}
		return rlp.DecodeBytes(raw, &value)
	})
	return
}

func (m *Mapping[K, V]) Set(key K, value V) error {
	return m.context.state.EncodeStorage(m.context.address, m.position(key), func() ([]byte, error) {
		return rlp.EncodeToBytes(value)
	})
}

// Delete clears the storage slot of the given key.
func (m *Mapping[K, V]) Delete(key K) error {
	return m.context.state.EncodeStorage(m.context.address, m.position(key), func() ([]byte, error) {
		return nil, nil
	})
}
