// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package escrow_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenonchain/xenon/builtin/masternode/escrow"
	"github.com/xenonchain/xenon/builtin/slot"
	"github.com/xenonchain/xenon/lvldb"
	"github.com/xenonchain/xenon/state"
	"github.com/xenonchain/xenon/xenon"
)

func newService(t *testing.T) *escrow.Service {
	t.Helper()
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	sctx := slot.NewContext(xenon.BytesToAddress([]byte("Masternode")), state.New(db))
	return escrow.New(sctx)
}

func TestScheduleAndWithdraw(t *testing.T) {
	svc := newService(t)
	owner := xenon.BytesToAddress([]byte("owner"))

	require.NoError(t, svc.Schedule(owner, 100, big.NewInt(1000)))

	blocks, err := svc.BlockNumbers(owner)
	require.NoError(t, err)
	assert.Equal(t, []uint32{100}, blocks)

	pending, err := svc.Cap(owner, 100)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1000), pending)

	// before the release block
	_, err = svc.Withdraw(owner, 100, 0, 99)
	assert.ErrorIs(t, err, escrow.ErrTimelockActive)

	// exactly at the release block
	amount, err := svc.Withdraw(owner, 100, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1000), amount)

	pending, err = svc.Cap(owner, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, pending.Sign())

	// the list slot is cleared in place
	blocks, err = svc.BlockNumbers(owner)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0}, blocks)
}

func TestWithdrawTwice(t *testing.T) {
	svc := newService(t)
	owner := xenon.BytesToAddress([]byte("owner"))

	require.NoError(t, svc.Schedule(owner, 100, big.NewInt(1000)))

	_, err := svc.Withdraw(owner, 100, 0, 200)
	require.NoError(t, err)

	// a released entry cannot be claimed again
	_, err = svc.Withdraw(owner, 100, 0, 200)
	assert.ErrorIs(t, err, escrow.ErrNothingPending)
}

func TestScheduleMergesSameBlock(t *testing.T) {
	svc := newService(t)
	owner := xenon.BytesToAddress([]byte("owner"))

	require.NoError(t, svc.Schedule(owner, 100, big.NewInt(300)))
	require.NoError(t, svc.Schedule(owner, 100, big.NewInt(700)))

	// amounts merge, the list keeps one entry per schedule
	pending, err := svc.Cap(owner, 100)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1000), pending)

	blocks, err := svc.BlockNumbers(owner)
	require.NoError(t, err)
	assert.Equal(t, []uint32{100, 100}, blocks)

	// one claim drains the merged amount through either index
	amount, err := svc.Withdraw(owner, 100, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1000), amount)

	_, err = svc.Withdraw(owner, 100, 0, 100)
	assert.ErrorIs(t, err, escrow.ErrNothingPending)
}

func TestWithdrawIndexMismatch(t *testing.T) {
	svc := newService(t)
	owner := xenon.BytesToAddress([]byte("owner"))

	require.NoError(t, svc.Schedule(owner, 100, big.NewInt(500)))
	require.NoError(t, svc.Schedule(owner, 200, big.NewInt(500)))

	// index 0 holds block 100, not 200
	_, err := svc.Withdraw(owner, 200, 0, 300)
	assert.ErrorIs(t, err, escrow.ErrIndexMismatch)

	// out of range index
	_, err = svc.Withdraw(owner, 200, 5, 300)
	assert.ErrorIs(t, err, escrow.ErrIndexMismatch)

	// correct pairing still works afterwards
	amount, err := svc.Withdraw(owner, 200, 1, 300)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(500), amount)
}

func TestWithdrawZeroBlock(t *testing.T) {
	svc := newService(t)
	owner := xenon.BytesToAddress([]byte("owner"))

	// block zero is the cleared-slot sentinel and never withdrawable
	_, err := svc.Withdraw(owner, 0, 0, 1000)
	assert.ErrorIs(t, err, escrow.ErrNothingPending)
}

func TestWithdrawNothingScheduled(t *testing.T) {
	svc := newService(t)
	owner := xenon.BytesToAddress([]byte("owner"))

	_, err := svc.Withdraw(owner, 50, 0, 100)
	assert.ErrorIs(t, err, escrow.ErrNothingPending)
}

func TestBeneficiariesAreIndependent(t *testing.T) {
	svc := newService(t)
	o1 := xenon.BytesToAddress([]byte("o1"))
	o2 := xenon.BytesToAddress([]byte("o2"))

	require.NoError(t, svc.Schedule(o1, 100, big.NewInt(1)))
	require.NoError(t, svc.Schedule(o2, 100, big.NewInt(2)))

	p1, err := svc.Cap(o1, 100)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1), p1)

	p2, err := svc.Cap(o2, 100)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(2), p2)

	blocks, err := svc.BlockNumbers(o2)
	require.NoError(t, err)
	assert.Equal(t, []uint32{100}, blocks)
}
