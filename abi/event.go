// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package abi

import (
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/xenonchain/xenon/xenon"
)

// Event see abi.Event in go-ethereum.
type Event struct {
	id                 xenon.Bytes32
	event              *ethabi.Event
	argsWithoutIndexed ethabi.Arguments
}

func newEvent(event *ethabi.Event) *Event {
	return &Event{
		xenon.Bytes32(event.ID),
		event,
		event.Inputs.NonIndexed(),
	}
}

// ID returns event id, which is the first log topic.
func (e *Event) ID() xenon.Bytes32 {
	return e.id
}

// Name returns event name.
func (e *Event) Name() string {
	return e.event.Name
}

// Encode encodes non-indexed args to event data.
func (e *Event) Encode(args ...any) ([]byte, error) {
	return e.argsWithoutIndexed.Pack(args...)
}

// Decode decodes event data into non-indexed arg values.
func (e *Event) Decode(data []byte) ([]any, error) {
	return e.argsWithoutIndexed.UnpackValues(data)
}
