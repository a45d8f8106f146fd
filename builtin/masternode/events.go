// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package masternode

import (
	"fmt"

	"github.com/xenonchain/xenon/abi"
	"github.com/xenonchain/xenon/builtin/gen"
)

var (
	contractABI = mustLoadABI("compiled/Masternode.abi")

	proposeEvent     = mustEvent(contractABI, "Propose")
	voteEvent        = mustEvent(contractABI, "Vote")
	unvoteEvent      = mustEvent(contractABI, "Unvote")
	resignEvent      = mustEvent(contractABI, "Resign")
	setIdentityEvent = mustEvent(contractABI, "SetIdentity")
	withdrawEvent    = mustEvent(contractABI, "Withdraw")
)

// ABI returns the contract interface of the masternode contract.
func ABI() *abi.ABI {
	return contractABI
}

func mustLoadABI(assetName string) *abi.ABI {
	data := gen.MustAsset(assetName)
	a, err := abi.New(data)
	if err != nil {
		panic(fmt.Errorf("load ABI for %s: %w", assetName, err))
	}
	return a
}

func mustEvent(a *abi.ABI, name string) *abi.Event {
	event, found := a.EventByName(name)
	if !found {
		panic(fmt.Errorf("event %s not found", name))
	}
	return event
}
