// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package builtin

import (
	"fmt"

	"github.com/xenonchain/xenon/abi"
	"github.com/xenonchain/xenon/builtin/gen"
	"github.com/xenonchain/xenon/xenon"
)

type contract struct {
	name    string
	Address xenon.Address
	ABI     *abi.ABI
}

func mustLoadContract(name string) *contract {
	asset := "compiled/" + name + ".abi"
	contractABI, err := abi.New(gen.MustAsset(asset))
	if err != nil {
		panic(fmt.Errorf("load ABI for %s: %w", name, err))
	}

	return &contract{
		name,
		xenon.BytesToAddress([]byte(name)),
		contractABI,
	}
}
