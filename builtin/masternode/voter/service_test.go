// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package voter_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenonchain/xenon/builtin/masternode/voter"
	"github.com/xenonchain/xenon/builtin/slot"
	"github.com/xenonchain/xenon/lvldb"
	"github.com/xenonchain/xenon/state"
	"github.com/xenonchain/xenon/xenon"
)

func newService(t *testing.T) *voter.Service {
	t.Helper()
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	sctx := slot.NewContext(xenon.BytesToAddress([]byte("Masternode")), state.New(db))
	return voter.New(sctx)
}

func TestAddSub(t *testing.T) {
	svc := newService(t)

	cand := xenon.BytesToAddress([]byte("candidate"))
	v := xenon.BytesToAddress([]byte("voter"))

	stake, err := svc.Stake(cand, v)
	require.NoError(t, err)
	assert.Equal(t, 0, stake.Sign())

	require.NoError(t, svc.Add(cand, v, big.NewInt(100)))
	require.NoError(t, svc.Add(cand, v, big.NewInt(50)))

	stake, err = svc.Stake(cand, v)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(150), stake)

	require.NoError(t, svc.Sub(cand, v, big.NewInt(30)))
	stake, err = svc.Stake(cand, v)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(120), stake)

	// removing more than recorded fails
	assert.ErrorIs(t, svc.Sub(cand, v, big.NewInt(121)), voter.ErrInsufficientStake)
}

func TestStakesAreIndependent(t *testing.T) {
	svc := newService(t)

	c1 := xenon.BytesToAddress([]byte("c1"))
	c2 := xenon.BytesToAddress([]byte("c2"))
	v := xenon.BytesToAddress([]byte("voter"))

	require.NoError(t, svc.Add(c1, v, big.NewInt(100)))
	require.NoError(t, svc.Add(c2, v, big.NewInt(200)))

	stake, err := svc.Stake(c1, v)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(100), stake)

	stake, err = svc.Stake(c2, v)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(200), stake)
}

func TestVoterList(t *testing.T) {
	svc := newService(t)

	cand := xenon.BytesToAddress([]byte("candidate"))
	v1 := xenon.BytesToAddress([]byte("v1"))
	v2 := xenon.BytesToAddress([]byte("v2"))

	require.NoError(t, svc.Add(cand, v1, big.NewInt(100)))
	require.NoError(t, svc.Add(cand, v2, big.NewInt(100)))
	// topping up does not duplicate the list entry
	require.NoError(t, svc.Add(cand, v1, big.NewInt(100)))

	voters, err := svc.Voters(cand)
	require.NoError(t, err)
	assert.Equal(t, []xenon.Address{v1, v2}, voters)
}

func TestRejoinDuplicatesListEntry(t *testing.T) {
	svc := newService(t)

	cand := xenon.BytesToAddress([]byte("candidate"))
	v := xenon.BytesToAddress([]byte("voter"))

	require.NoError(t, svc.Add(cand, v, big.NewInt(100)))
	require.NoError(t, svc.Sub(cand, v, big.NewInt(100)))

	stake, err := svc.Stake(cand, v)
	require.NoError(t, err)
	assert.Equal(t, 0, stake.Sign())

	// a full exit followed by a new delegation appends a second entry
	require.NoError(t, svc.Add(cand, v, big.NewInt(50)))

	voters, err := svc.Voters(cand)
	require.NoError(t, err)
	assert.Equal(t, []xenon.Address{v, v}, voters)

	stake, err = svc.Stake(cand, v)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(50), stake)
}
