// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package xenv_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenonchain/xenon/abi"
	"github.com/xenonchain/xenon/lvldb"
	"github.com/xenonchain/xenon/state"
	"github.com/xenonchain/xenon/xenon"
	"github.com/xenonchain/xenon/xenv"
)

var testABI = func() *abi.ABI {
	data := []byte(`[{
		"anonymous": false,
		"inputs": [
			{ "indexed": false, "name": "_from", "type": "address" },
			{ "indexed": false, "name": "_value", "type": "uint256" }
		],
		"name": "Deposit",
		"type": "event"
	}]`)
	a, err := abi.New(data)
	if err != nil {
		panic(err)
	}
	return a
}()

func newEnv(t *testing.T, caller xenon.Address, value *big.Int) (*xenv.Environment, *state.State) {
	t.Helper()
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	st := state.New(db)

	to := xenon.BytesToAddress([]byte("contract"))
	env := xenv.New(st, &xenv.BlockContext{Number: 10}, &xenv.TransactionContext{}, caller, to, value)
	return env, st
}

func TestTransfer(t *testing.T) {
	caller := xenon.BytesToAddress([]byte("caller"))
	env, st := newEnv(t, caller, nil)

	require.NoError(t, st.SetBalance(caller, big.NewInt(100)))

	require.NoError(t, env.Transfer(caller, env.To(), big.NewInt(40)))

	callerBal, _ := st.GetBalance(caller)
	toBal, _ := st.GetBalance(env.To())
	assert.Equal(t, big.NewInt(60), callerBal)
	assert.Equal(t, big.NewInt(40), toBal)

	err := env.Transfer(caller, env.To(), big.NewInt(61))
	assert.ErrorIs(t, err, xenv.ErrInsufficientBalance)
}

func TestValueIsCopied(t *testing.T) {
	caller := xenon.BytesToAddress([]byte("caller"))
	env, _ := newEnv(t, caller, big.NewInt(5))

	v := env.Value()
	v.SetInt64(99)
	assert.Equal(t, big.NewInt(5), env.Value())
}

func TestLog(t *testing.T) {
	caller := xenon.BytesToAddress([]byte("caller"))
	env, _ := newEnv(t, caller, nil)

	ev, found := testABI.EventByName("Deposit")
	require.True(t, found)

	env.Log(ev, nil, caller, big.NewInt(7))

	events := env.Events()
	require.Len(t, events, 1)
	assert.Equal(t, env.To(), events[0].Address)
	require.Len(t, events[0].Topics, 1)
	assert.Equal(t, ev.ID(), events[0].Topics[0])

	args, err := ev.Decode(events[0].Data)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(7), args[1])
}

func TestSnapshotRevert(t *testing.T) {
	caller := xenon.BytesToAddress([]byte("caller"))
	env, st := newEnv(t, caller, nil)

	require.NoError(t, st.SetBalance(caller, big.NewInt(100)))

	ev, _ := testABI.EventByName("Deposit")

	snapshot := env.Snapshot()
	require.NoError(t, env.Transfer(caller, env.To(), big.NewInt(100)))
	env.Log(ev, nil, caller, big.NewInt(100))

	env.RevertTo(snapshot)

	bal, _ := st.GetBalance(caller)
	assert.Equal(t, big.NewInt(100), bal)
	assert.Empty(t, env.Events())
}
