// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package voter

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/xenonchain/xenon/builtin/reverts"
	"github.com/xenonchain/xenon/builtin/slot"
	"github.com/xenonchain/xenon/xenon"
)

// ErrInsufficientStake the voter tried to remove more than is recorded.
var ErrInsufficientStake = reverts.New("insufficient voter stake")

var (
	slotStakes     = xenon.BytesToBytes32([]byte("voter-stakes"))
	slotVoterLists = xenon.BytesToBytes32([]byte("voter-lists"))
)

// Service maintains the voter capital table: how much each voter has
// delegated to each candidate, plus the per-candidate voter enumeration
// lists.
type Service struct {
	sctx   *slot.Context
	stakes *slot.Mapping[xenon.Bytes32, *big.Int]
}

func New(sctx *slot.Context) *Service {
	return &Service{
		sctx:   sctx,
		stakes: slot.NewMapping[xenon.Bytes32, *big.Int](sctx, slotStakes),
	}
}

func stakeKey(candidate, voter xenon.Address) xenon.Bytes32 {
	return xenon.Blake2b(candidate.Bytes(), voter.Bytes())
}

// voterList returns the voter enumeration list of the given candidate.
// Lists are append-only; a voter that fully exits and delegates again
// appears twice, as the original bookkeeping did.
func (s *Service) voterList(candidate xenon.Address) *slot.Array[xenon.Address] {
	return slot.NewArray[xenon.Address](s.sctx, xenon.Blake2b(slotVoterLists.Bytes(), candidate.Bytes()))
}

// Stake returns the capital the voter currently has delegated to the candidate.
func (s *Service) Stake(candidate, voter xenon.Address) (*big.Int, error) {
	amount, err := s.stakes.Get(stakeKey(candidate, voter))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get voter stake")
	}
	return amount, nil
}

// Add increases the voter's delegated capital for the candidate.
// The voter joins the candidate's enumeration list on its first nonzero
// contribution.
func (s *Service) Add(candidate, voter xenon.Address, amount *big.Int) error {
	prev, err := s.Stake(candidate, voter)
	if err != nil {
		return err
	}
	if prev.Sign() == 0 {
		if err := s.voterList(candidate).Append(voter); err != nil {
			return errors.Wrap(err, "failed to append voter")
		}
	}
	if err := s.stakes.Set(stakeKey(candidate, voter), new(big.Int).Add(prev, amount)); err != nil {
		return errors.Wrap(err, "failed to set voter stake")
	}
	return nil
}

// Sub decreases the voter's delegated capital for the candidate.
// The entry can never go negative; removing more than is recorded fails.
func (s *Service) Sub(candidate, voter xenon.Address, amount *big.Int) error {
	prev, err := s.Stake(candidate, voter)
	if err != nil {
		return err
	}
	if prev.Cmp(amount) < 0 {
		return ErrInsufficientStake
	}

	remaining := new(big.Int).Sub(prev, amount)
	if remaining.Sign() == 0 {
		if err := s.stakes.Delete(stakeKey(candidate, voter)); err != nil {
			return errors.Wrap(err, "failed to clear voter stake")
		}
		return nil
	}
	if err := s.stakes.Set(stakeKey(candidate, voter), remaining); err != nil {
		return errors.Wrap(err, "failed to set voter stake")
	}
	return nil
}

// Voters returns the candidate's voter enumeration list as stored.
func (s *Service) Voters(candidate xenon.Address) ([]xenon.Address, error) {
	list := s.voterList(candidate)
	length, err := list.Len()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get voter list length")
	}
	voters := make([]xenon.Address, 0, length)
	for i := uint64(0); i < length; i++ {
		addr, err := list.Get(i)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get voter list entry")
		}
		voters = append(voters, addr)
	}
	return voters, nil
}
