// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package escrow

import (
	"encoding/binary"
	"math/big"

	"github.com/pkg/errors"

	"github.com/xenonchain/xenon/builtin/reverts"
	"github.com/xenonchain/xenon/builtin/slot"
	"github.com/xenonchain/xenon/xenon"
)

var (
	// ErrTimelockActive the release block has not been reached yet.
	ErrTimelockActive = reverts.New("withdrawal timelock not expired")
	// ErrNothingPending nothing is escrowed at the addressed release block.
	ErrNothingPending = reverts.New("no pending withdrawal")
	// ErrIndexMismatch the supplied index does not hold the claimed release block.
	ErrIndexMismatch = reverts.New("block number does not match index")
)

var (
	slotAmounts    = xenon.BytesToBytes32([]byte("escrow-amounts"))
	slotBlockLists = xenon.BytesToBytes32([]byte("escrow-block-lists"))
)

// Service maintains the delayed-release escrow ledger: per beneficiary,
// amounts keyed by release block number, plus the pending-block-number
// list used for withdrawal addressing.
//
// Escrow slot state machine, per (beneficiary, releaseBlock) key:
//
//	{absent} -> {pending, amount > 0} -> {released, amount = 0}
//
// A schedule at a released key re-creates it additively.
type Service struct {
	sctx    *slot.Context
	amounts *slot.Mapping[xenon.Bytes32, *big.Int]
}

func New(sctx *slot.Context) *Service {
	return &Service{
		sctx:    sctx,
		amounts: slot.NewMapping[xenon.Bytes32, *big.Int](sctx, slotAmounts),
	}
}

func amountKey(beneficiary xenon.Address, releaseBlock uint32) xenon.Bytes32 {
	var blockBytes [4]byte
	binary.BigEndian.PutUint32(blockBytes[:], releaseBlock)
	return xenon.Blake2b(beneficiary.Bytes(), blockBytes[:])
}

// blockList returns the beneficiary's pending-block-number list.
// Withdrawn entries are cleared in place and read as zero; duplicates are
// expected when several schedules land on the same release block.
func (s *Service) blockList(beneficiary xenon.Address) *slot.Array[uint32] {
	return slot.NewArray[uint32](s.sctx, xenon.Blake2b(slotBlockLists.Bytes(), beneficiary.Bytes()))
}

// Schedule escrows amount for the beneficiary, releasable at releaseBlock.
// An existing entry at the same release block is merged additively. The
// release block is appended to the pending list unconditionally, so each
// schedule yields one independently addressable list entry.
func (s *Service) Schedule(beneficiary xenon.Address, releaseBlock uint32, amount *big.Int) error {
	key := amountKey(beneficiary, releaseBlock)
	pending, err := s.amounts.Get(key)
	if err != nil {
		return errors.Wrap(err, "failed to get escrow amount")
	}
	if err := s.amounts.Set(key, new(big.Int).Add(pending, amount)); err != nil {
		return errors.Wrap(err, "failed to set escrow amount")
	}
	if err := s.blockList(beneficiary).Append(releaseBlock); err != nil {
		return errors.Wrap(err, "failed to append release block")
	}
	return nil
}

// Withdraw drains the escrow entry at (beneficiary, releaseBlock).
//
// The index addresses the beneficiary's pending-block-number list and
// must hold the claimed release block. All preconditions must hold or
// nothing changes. On success the
// amount entry is zeroed and the list slot cleared in place; the caller
// transfers the returned amount strictly afterwards.
func (s *Service) Withdraw(beneficiary xenon.Address, releaseBlock uint32, index uint64, currentBlock uint32) (*big.Int, error) {
	if releaseBlock == 0 {
		return nil, ErrNothingPending
	}
	if currentBlock < releaseBlock {
		return nil, ErrTimelockActive
	}

	key := amountKey(beneficiary, releaseBlock)
	amount, err := s.amounts.Get(key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get escrow amount")
	}
	if amount.Sign() == 0 {
		return nil, ErrNothingPending
	}

	list := s.blockList(beneficiary)
	at, err := list.Get(index)
	if err != nil {
		if errors.Is(err, slot.ErrIndexOutOfRange) {
			return nil, ErrIndexMismatch
		}
		return nil, errors.Wrap(err, "failed to get release block entry")
	}
	if at != releaseBlock {
		return nil, ErrIndexMismatch
	}

	if err := s.amounts.Delete(key); err != nil {
		return nil, errors.Wrap(err, "failed to clear escrow amount")
	}
	if err := list.Clear(index); err != nil {
		return nil, errors.Wrap(err, "failed to clear release block entry")
	}
	return amount, nil
}

// BlockNumbers returns the beneficiary's pending-block-number list as
// stored, cleared slots included (they read as zero).
func (s *Service) BlockNumbers(beneficiary xenon.Address) ([]uint32, error) {
	list := s.blockList(beneficiary)
	length, err := list.Len()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get release block list length")
	}
	blocks := make([]uint32, 0, length)
	for i := uint64(0); i < length; i++ {
		blockNum, err := list.Get(i)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get release block entry")
		}
		blocks = append(blocks, blockNum)
	}
	return blocks, nil
}

// Cap returns the amount pending at (beneficiary, releaseBlock), zero if
// none.
func (s *Service) Cap(beneficiary xenon.Address, releaseBlock uint32) (*big.Int, error) {
	amount, err := s.amounts.Get(amountKey(beneficiary, releaseBlock))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get escrow amount")
	}
	return amount, nil
}
