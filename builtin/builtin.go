// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package builtin implements the native contracts of the chain.
package builtin

import (
	"github.com/xenonchain/xenon/builtin/masternode"
	"github.com/xenonchain/xenon/state"
)

// Masternode binds the masternode governance contract.
var Masternode = &masternodeContract{mustLoadContract("Masternode")}

type masternodeContract struct {
	*contract
}

// WithState binds the contract to the given state.
func (m *masternodeContract) WithState(st *state.State) (*masternode.Masternode, error) {
	return masternode.New(m.Address, st)
}
