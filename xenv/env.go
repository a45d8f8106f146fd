// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package xenv

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/xenonchain/xenon/abi"
	"github.com/xenonchain/xenon/state"
	"github.com/xenonchain/xenon/xenon"
)

// ErrInsufficientBalance is returned when a value transfer exceeds the
// sender's balance.
var ErrInsufficientBalance = errors.New("insufficient balance for transfer")

// BlockContext block context.
type BlockContext struct {
	Signer xenon.Address
	Number uint32
	Time   uint64
}

// TransactionContext transaction context.
type TransactionContext struct {
	ID     xenon.Bytes32
	Origin xenon.Address
}

// Event is a log record produced by a native contract call.
type Event struct {
	Address xenon.Address
	Topics  []xenon.Bytes32
	Data    []byte
}

// Environment an env to execute a native contract call.
// The host chain guarantees calls are serialized; an Environment must not
// be shared across concurrent callers.
type Environment struct {
	state    *state.State
	blockCtx *BlockContext
	txCtx    *TransactionContext
	caller   xenon.Address
	to       xenon.Address
	value    *big.Int
	events   []*Event
}

// New create a new env.
func New(
	state *state.State,
	blockCtx *BlockContext,
	txCtx *TransactionContext,
	caller xenon.Address,
	to xenon.Address,
	value *big.Int,
) *Environment {
	if value == nil {
		value = &big.Int{}
	}
	return &Environment{
		state:    state,
		blockCtx: blockCtx,
		txCtx:    txCtx,
		caller:   caller,
		to:       to,
		value:    value,
	}
}

func (env *Environment) State() *state.State                     { return env.state }
func (env *Environment) BlockContext() *BlockContext             { return env.blockCtx }
func (env *Environment) TransactionContext() *TransactionContext { return env.txCtx }
func (env *Environment) Caller() xenon.Address                   { return env.caller }
func (env *Environment) To() xenon.Address                       { return env.to }

// Value returns the value attached to the call.
func (env *Environment) Value() *big.Int {
	return new(big.Int).Set(env.value)
}

// Transfer moves amount from one account to another.
func (env *Environment) Transfer(from, to xenon.Address, amount *big.Int) error {
	if amount.Sign() == 0 {
		return nil
	}
	fromBal, err := env.state.GetBalance(from)
	if err != nil {
		return err
	}
	if fromBal.Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}
	toBal, err := env.state.GetBalance(to)
	if err != nil {
		return err
	}
	if err := env.state.SetBalance(from, new(big.Int).Sub(fromBal, amount)); err != nil {
		return err
	}
	return env.state.SetBalance(to, new(big.Int).Add(toBal, amount))
}

// Log encodes and records an event produced by the contract being called.
func (env *Environment) Log(event *abi.Event, topics []xenon.Bytes32, args ...any) {
	data, err := event.Encode(args...)
	if err != nil {
		panic(errors.WithMessage(err, "encode native event"))
	}

	allTopics := make([]xenon.Bytes32, 0, len(topics)+1)
	allTopics = append(allTopics, event.ID())
	allTopics = append(allTopics, topics...)
	env.events = append(env.events, &Event{
		Address: env.to,
		Topics:  allTopics,
		Data:    data,
	})
}

// Events returns events recorded so far.
func (env *Environment) Events() []*Event {
	return env.events
}

// Snapshot captures state and event log positions for later revert.
type Snapshot struct {
	revision   int
	eventCount int
}

// Snapshot makes a checkpoint of the current state and event log.
func (env *Environment) Snapshot() Snapshot {
	return Snapshot{
		revision:   env.state.NewCheckpoint(),
		eventCount: len(env.events),
	}
}

// RevertTo discards all state changes and events recorded since the snapshot.
func (env *Environment) RevertTo(snapshot Snapshot) {
	env.state.RevertTo(snapshot.revision)
	env.events = env.events[:snapshot.eventCount]
}
