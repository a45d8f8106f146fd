// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package slot

import (
	"math/big"

	"github.com/xenonchain/xenon/xenon"
)

// Uint256 is a wrapper for storage and retrieval of an uint256,
// similar to storing an uint256 in a smart contract.
// If the provided value exceeds 256 bits, it will be truncated to fit into xenon.Bytes32.
type Uint256 struct {
	context *Context
	pos     xenon.Bytes32
}

func NewUint256(context *Context, pos xenon.Bytes32) *Uint256 {
	return &Uint256{context: context, pos: pos}
}

func (u *Uint256) Get() (*big.Int, error) {
	storage, err := u.context.state.GetStorage(u.context.address, u.pos)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(storage.Bytes()), nil
}

func (u *Uint256) Set(value *big.Int) {
	storage := xenon.BytesToBytes32(value.Bytes())
	u.context.state.SetStorage(u.context.address, u.pos, storage)
}

func (u *Uint256) Add(value *big.Int) error {
	storage, err := u.Get()
	if err != nil {
		return err
	}
	storage.Add(storage, value)
	u.Set(storage)
	return nil
}

func (u *Uint256) Sub(value *big.Int) error {
	storage, err := u.Get()
	if err != nil {
		return err
	}
	storage.Sub(storage, value)
	u.Set(storage)
	return nil
}
