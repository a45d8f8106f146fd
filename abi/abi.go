// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package abi

import (
	"bytes"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
)

// ABI holds information about events of a contract.
// Method dispatch is the host chain's concern; native contracts only need
// the event definitions to produce logs.
type ABI struct {
	nameToEvent map[string]*Event
}

// New create an ABI instance from the JSON contract interface.
func New(data []byte) (*ABI, error) {
	ethABI, err := ethabi.JSON(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	abi := &ABI{
		nameToEvent: make(map[string]*Event),
	}
	for name := range ethABI.Events {
		event := ethABI.Events[name]
		abi.nameToEvent[name] = newEvent(&event)
	}
	return abi, nil
}

// EventByName returns event for the given event name.
func (a *ABI) EventByName(name string) (*Event, bool) {
	event, ok := a.nameToEvent[name]
	return event, ok
}
