// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package candidate

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/xenonchain/xenon/builtin/reverts"
	"github.com/xenonchain/xenon/builtin/slot"
	"github.com/xenonchain/xenon/xenon"
)

var (
	// ErrListed candidate is already registered.
	ErrListed = reverts.New("candidate already listed")
	// ErrNotListed candidate is not currently registered.
	ErrNotListed = reverts.New("candidate not listed")
	// ErrListFull the registry reached the maximum candidate count.
	ErrListFull = reverts.New("candidate list full")
	// ErrInsufficientCap candidate cap would drop below zero.
	ErrInsufficientCap = reverts.New("insufficient candidate cap")
)

// Service maintains the candidate registry: records, the enumeration list
// and candidate level caps.
type Service struct {
	storage       *Storage
	maxCandidates uint64
}

func New(sctx *slot.Context, maxCandidates uint64) *Service {
	return &Service{
		storage:       NewStorage(sctx),
		maxCandidates: maxCandidates,
	}
}

// Get returns the candidate record, an all-zero record if never written.
func (s *Service) Get(addr xenon.Address) (*Candidate, error) {
	return s.storage.getCandidate(addr)
}

// IsListed returns whether the address is currently a registered candidate.
func (s *Service) IsListed(addr xenon.Address) (bool, error) {
	entry, err := s.storage.getCandidate(addr)
	if err != nil {
		return false, err
	}
	return entry.Listed, nil
}

// List returns the enumeration list as stored.
// Slots cleared by Unlist read as the zero address; callers see the holes.
func (s *Service) List() ([]xenon.Address, error) {
	length, err := s.storage.list.Len()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get candidate list length")
	}
	list := make([]xenon.Address, 0, length)
	for i := uint64(0); i < length; i++ {
		addr, err := s.storage.list.Get(i)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get candidate list entry")
		}
		list = append(list, addr)
	}
	return list, nil
}

// listedCount counts the occupied slots of the enumeration list.
func (s *Service) listedCount() (uint64, error) {
	length, err := s.storage.list.Len()
	if err != nil {
		return 0, err
	}
	var count uint64
	for i := uint64(0); i < length; i++ {
		addr, err := s.storage.list.Get(i)
		if err != nil {
			return 0, err
		}
		if !addr.IsZero() {
			count++
		}
	}
	return count, nil
}

// Register lists a candidate and credits the owner's deposit to its cap.
// A previously resigned candidate is relisted, keeping any capital that
// other voters still have delegated.
func (s *Service) Register(addr, owner xenon.Address, deposit *big.Int) error {
	entry, err := s.storage.getCandidate(addr)
	if err != nil {
		return err
	}
	if entry.Listed {
		return ErrListed
	}

	count, err := s.listedCount()
	if err != nil {
		return err
	}
	if count >= s.maxCandidates {
		return ErrListFull
	}

	entry.Owner = owner
	entry.Listed = true
	entry.Cap = new(big.Int).Add(entry.Cap, deposit)
	if err := s.storage.setCandidate(addr, entry); err != nil {
		return err
	}
	return s.storage.list.Append(addr)
}

// Unlist removes the candidate from the registry, clearing the first
// matching enumeration slot in place. Stale duplicate slots, if any, are
// left untouched.
func (s *Service) Unlist(addr xenon.Address) error {
	entry, err := s.storage.getCandidate(addr)
	if err != nil {
		return err
	}
	if !entry.Listed {
		return ErrNotListed
	}

	entry.Listed = false
	if err := s.storage.setCandidate(addr, entry); err != nil {
		return err
	}

	length, err := s.storage.list.Len()
	if err != nil {
		return err
	}
	for i := uint64(0); i < length; i++ {
		at, err := s.storage.list.Get(i)
		if err != nil {
			return err
		}
		if at == addr {
			return s.storage.list.Clear(i)
		}
	}
	return nil
}

// AddCap increases the candidate's total delegated capital.
func (s *Service) AddCap(addr xenon.Address, amount *big.Int) error {
	entry, err := s.storage.getCandidate(addr)
	if err != nil {
		return err
	}
	entry.Cap = new(big.Int).Add(entry.Cap, amount)
	return s.storage.setCandidate(addr, entry)
}

// SubCap decreases the candidate's total delegated capital.
// The cap can never go negative.
func (s *Service) SubCap(addr xenon.Address, amount *big.Int) error {
	entry, err := s.storage.getCandidate(addr)
	if err != nil {
		return err
	}
	if entry.Cap.Cmp(amount) < 0 {
		return ErrInsufficientCap
	}
	entry.Cap = new(big.Int).Sub(entry.Cap, amount)
	return s.storage.setCandidate(addr, entry)
}

// SetIdentity updates the candidate's metadata.
func (s *Service) SetIdentity(addr xenon.Address, identity xenon.Bytes32) error {
	entry, err := s.storage.getCandidate(addr)
	if err != nil {
		return err
	}
	entry.Identity = identity
	return s.storage.setCandidate(addr, entry)
}
