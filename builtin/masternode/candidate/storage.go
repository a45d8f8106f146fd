// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package candidate

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/xenonchain/xenon/builtin/slot"
	"github.com/xenonchain/xenon/xenon"
)

var (
	slotCandidates    = xenon.BytesToBytes32([]byte("candidates"))
	slotCandidateList = xenon.BytesToBytes32([]byte("candidates-list"))
)

// Storage lays out candidate records and the enumeration list.
type Storage struct {
	candidates *slot.Mapping[xenon.Address, *Candidate]
	list       *slot.Array[xenon.Address]
}

func NewStorage(sctx *slot.Context) *Storage {
	return &Storage{
		candidates: slot.NewMapping[xenon.Address, *Candidate](sctx, slotCandidates),
		list:       slot.NewArray[xenon.Address](sctx, slotCandidateList),
	}
}

func (s *Storage) getCandidate(addr xenon.Address) (*Candidate, error) {
	c, err := s.candidates.Get(addr)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get candidate")
	}
	if c.Cap == nil {
		c.Cap = new(big.Int)
	}
	return c, nil
}

func (s *Storage) setCandidate(addr xenon.Address, entry *Candidate) error {
	if err := s.candidates.Set(addr, entry); err != nil {
		return errors.Wrap(err, "failed to set candidate")
	}
	return nil
}
