// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package slot

import (
	"encoding/binary"
	"reflect"

	"github.com/pkg/errors"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/xenonchain/xenon/xenon"
)

// ErrIndexOutOfRange is returned when an array element beyond the current
// length is addressed.
var ErrIndexOutOfRange = errors.New("array index out of range")

// Array is a storage abstraction similar to a Solidity dynamic array.
// The base position holds the length; element positions are derived from
// the base position and the element index.
//
// Clearing an element leaves a hole: the slot is emptied in place and the
// length is unchanged, so indices of other elements never shift. Reading a
// hole yields the zero value of V.
type Array[V any] struct {
	context *Context
	basePos xenon.Bytes32
}

func NewArray[V any](context *Context, pos xenon.Bytes32) *Array[V] {
	return &Array[V]{context: context, basePos: pos}
}

func (a *Array[V]) elemPosition(index uint64) xenon.Bytes32 {
	var indexBytes [8]byte
	binary.BigEndian.PutUint64(indexBytes[:], index)
	return xenon.Blake2b(a.basePos.Bytes(), indexBytes[:])
}

// Len returns the length of the array, holes included.
func (a *Array[V]) Len() (length uint64, err error) {
	err = a.context.state.DecodeStorage(a.context.address, a.basePos, func(raw []byte) error {
		if len(raw) == 0 {
			return nil
		}
		return rlp.DecodeBytes(raw, &length)
	})
	return
}

func (a *Array[V]) setLen(length uint64) error {
	return a.context.state.EncodeStorage(a.context.address, a.basePos, func() ([]byte, error) {
		if length == 0 {
			return nil, nil
		}
		return rlp.EncodeToBytes(length)
	})
}

// Get returns the element at the given index.
// A cleared (hole) element reads as the zero value of V.
func (a *Array[V]) Get(index uint64) (value V, err error) {
	length, err := a.Len()
	if err != nil {
		return value, err
	}
	if index >= length {
		return value, ErrIndexOutOfRange
	}
	err = a.context.state.DecodeStorage(a.context.address, a.elemPosition(index), func(raw []byte) error {
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

// Set overwrites the element at the given index.
func (a *Array[V]) Set(index uint64, value V) error {
	length, err := a.Len()
	if err != nil {
		return err
	}
	if index >= length {
		return ErrIndexOutOfRange
	}
	return a.context.state.EncodeStorage(a.context.address, a.elemPosition(index), func() ([]byte, error) {
		return rlp.EncodeToBytes(value)
	})
}

// Append adds an element at the end of the array, growing it by one.
func (a *Array[V]) Append(value V) error {
	length, err := a.Len()
	if err != nil {
		return err
	}
	if err := a.context.state.EncodeStorage(a.context.address, a.elemPosition(length), func() ([]byte, error) {
		return rlp.EncodeToBytes(value)
	}); err != nil {
		return err
	}
	return a.setLen(length + 1)
}

// Clear empties the element slot at the given index, leaving a hole.
// The array length is unchanged so no other index shifts.
func (a *Array[V]) Clear(index uint64) error {
	length, err := a.Len()
	if err != nil {
		return err
	}
	if index >= length {
		return ErrIndexOutOfRange
	}
	return a.context.state.EncodeStorage(a.context.address, a.elemPosition(index), func() ([]byte, error) {
		return nil, nil
	})
}
