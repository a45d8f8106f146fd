// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package masternode implements the native masternode governance contract.
//
// Candidates lock a deposit to join the masternode list, voters delegate
// stake to candidates, and stake leaves the contract through a block
// delayed escrow: unvote and resign schedule withdrawals which become
// claimable once their release block is reached.
package masternode

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/xenonchain/xenon/builtin/masternode/candidate"
	"github.com/xenonchain/xenon/builtin/masternode/escrow"
	"github.com/xenonchain/xenon/builtin/masternode/voter"
	"github.com/xenonchain/xenon/builtin/reverts"
	"github.com/xenonchain/xenon/builtin/slot"
	"github.com/xenonchain/xenon/log"
	"github.com/xenonchain/xenon/metrics"
	"github.com/xenonchain/xenon/state"
	"github.com/xenonchain/xenon/xenon"
	"github.com/xenonchain/xenon/xenv"
)

var (
	logger = log.WithContext("pkg", "masternode")

	metricTransitionCount = metrics.LazyLoadCounterVec("masternode_transition_count", []string{"operation", "status"})
)

var (
	// ErrInsufficientDeposit is returned when the attached value is below
	// the required minimum for the operation.
	ErrInsufficientDeposit = reverts.New("deposit below required minimum")
	// ErrUnauthorized is returned when the caller does not own the candidate.
	ErrUnauthorized = reverts.New("caller is not the candidate owner")
	// ErrOwnerFloor is returned when an unvote would drop a listed owner's
	// self stake below the candidate minimum.
	ErrOwnerFloor = reverts.New("owner stake would drop below candidate minimum")
	// ErrNotPayable is returned when value is attached to a non payable operation.
	ErrNotPayable = reverts.New("operation is not payable")
)

// Masternode binds the governance contract to a state instance.
type Masternode struct {
	addr       xenon.Address
	config     Config
	candidates *candidate.Service
	voters     *voter.Service
	escrow     *escrow.Service
}

// New creates a contract binding at the given address, loading the
// governance parameters from storage.
func New(addr xenon.Address, st *state.State) (*Masternode, error) {
	sctx := slot.NewContext(addr, st)
	config, err := loadConfig(sctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load masternode config")
	}
	return &Masternode{
		addr:       addr,
		config:     config,
		candidates: candidate.New(sctx, config.MaxCandidates),
		voters:     voter.New(sctx),
		escrow:     escrow.New(sctx),
	}, nil
}

// Address returns the contract address.
func (m *Masternode) Address() xenon.Address { return m.addr }

// Config returns the governance parameters the contract was created with.
func (m *Masternode) Config() Config { return m.config }

// transition runs fn against a snapshot of the environment. On any error
// every state change and event recorded by fn is rolled back, so each
// operation either applies completely or not at all.
func (m *Masternode) transition(env *xenv.Environment, op string, fn func() error) error {
	snapshot := env.Snapshot()
	if err := fn(); err != nil {
		env.RevertTo(snapshot)
		metricTransitionCount().AddWithLabel(1, map[string]string{"operation": op, "status": "reverted"})
		if reverts.IsRevertErr(err) {
			logger.Debug("transition reverted", "op", op, "caller", env.Caller(), "err", err)
		} else {
			logger.Warn("transition failed", "op", op, "caller", env.Caller(), "err", err)
		}
		return err
	}
	metricTransitionCount().AddWithLabel(1, map[string]string{"operation": op, "status": "applied"})
	return nil
}

// Propose registers a new candidate, or tops up a delisted one. The
// attached value becomes the caller's self stake and must meet the
// candidate minimum.
func (m *Masternode) Propose(env *xenv.Environment, candidateAddr xenon.Address) error {
	return m.transition(env, "propose", func() error {
		value := env.Value()
		if value.Cmp(m.config.MinCandidateStake) < 0 {
			return ErrInsufficientDeposit
		}
		if err := env.Transfer(env.Caller(), m.addr, value); err != nil {
			return err
		}
		if err := m.candidates.Register(candidateAddr, env.Caller(), value); err != nil {
			return err
		}
		if err := m.voters.Add(candidateAddr, env.Caller(), value); err != nil {
			return err
		}
		entry, err := m.candidates.Get(candidateAddr)
		if err != nil {
			return err
		}
		env.Log(proposeEvent, nil, env.Caller(), candidateAddr, entry.Cap)
		logger.Debug("candidate proposed", "candidate", candidateAddr, "owner", env.Caller(), "stake", value)
		return nil
	})
}

// Vote delegates the attached value to a listed candidate.
func (m *Masternode) Vote(env *xenv.Environment, candidateAddr xenon.Address) error {
	return m.transition(env, "vote", func() error {
		value := env.Value()
		if value.Cmp(m.config.MinVoterStake) < 0 {
			return ErrInsufficientDeposit
		}
		listed, err := m.candidates.IsListed(candidateAddr)
		if err != nil {
			return err
		}
		if !listed {
			return candidate.ErrNotListed
		}
		if err := env.Transfer(env.Caller(), m.addr, value); err != nil {
			return err
		}
		if err := m.candidates.AddCap(candidateAddr, value); err != nil {
			return err
		}
		if err := m.voters.Add(candidateAddr, env.Caller(), value); err != nil {
			return err
		}
		env.Log(voteEvent, nil, env.Caller(), candidateAddr, value)
		return nil
	})
}

// Unvote removes part of the caller's stake on a candidate and schedules
// it for withdrawal after the voter delay. A listed candidate's owner
// cannot take their own stake below the candidate minimum.
func (m *Masternode) Unvote(env *xenv.Environment, candidateAddr xenon.Address, amount *big.Int) error {
	return m.transition(env, "unvote", func() error {
		if env.Value().Sign() != 0 {
			return ErrNotPayable
		}
		if amount == nil || amount.Sign() <= 0 {
			return voter.ErrInsufficientStake
		}
		entry, err := m.candidates.Get(candidateAddr)
		if err != nil {
			return err
		}
		stake, err := m.voters.Stake(candidateAddr, env.Caller())
		if err != nil {
			return err
		}
		if entry.Listed && entry.Owner == env.Caller() {
			remaining := new(big.Int).Sub(stake, amount)
			if remaining.Cmp(m.config.MinCandidateStake) < 0 {
				return ErrOwnerFloor
			}
		}
		if err := m.voters.Sub(candidateAddr, env.Caller(), amount); err != nil {
			return err
		}
		if err := m.candidates.SubCap(candidateAddr, amount); err != nil {
			return err
		}
		releaseBlock := env.BlockContext().Number + m.config.VoterDelay
		if err := m.escrow.Schedule(env.Caller(), releaseBlock, amount); err != nil {
			return err
		}
		env.Log(unvoteEvent, nil, env.Caller(), candidateAddr, amount)
		return nil
	})
}

// Resign delists a candidate and schedules the owner's remaining self
// stake for withdrawal after the candidate delay. Only the owner may
// resign, and only while the candidate is listed.
func (m *Masternode) Resign(env *xenv.Environment, candidateAddr xenon.Address) error {
	return m.transition(env, "resign", func() error {
		if env.Value().Sign() != 0 {
			return ErrNotPayable
		}
		entry, err := m.candidates.Get(candidateAddr)
		if err != nil {
			return err
		}
		if entry.IsEmpty() || entry.Owner != env.Caller() {
			return ErrUnauthorized
		}
		if err := m.candidates.Unlist(candidateAddr); err != nil {
			return err
		}
		ownerStake, err := m.voters.Stake(candidateAddr, env.Caller())
		if err != nil {
			return err
		}
		if ownerStake.Sign() > 0 {
			if err := m.voters.Sub(candidateAddr, env.Caller(), ownerStake); err != nil {
				return err
			}
			if err := m.candidates.SubCap(candidateAddr, ownerStake); err != nil {
				return err
			}
			releaseBlock := env.BlockContext().Number + m.config.CandidateDelay
			if err := m.escrow.Schedule(env.Caller(), releaseBlock, ownerStake); err != nil {
				return err
			}
		}
		env.Log(resignEvent, nil, env.Caller(), candidateAddr)
		logger.Debug("candidate resigned", "candidate", candidateAddr, "owner", env.Caller(), "escrowed", ownerStake)
		return nil
	})
}

// Withdraw claims a matured escrow entry and transfers it back to the
// caller. The caller names the entry by its release block and its index
// in their withdrawal list; the two must agree.
func (m *Masternode) Withdraw(env *xenv.Environment, releaseBlock uint32, index uint64) error {
	return m.transition(env, "withdraw", func() error {
		if env.Value().Sign() != 0 {
			return ErrNotPayable
		}
		amount, err := m.escrow.Withdraw(env.Caller(), releaseBlock, index, env.BlockContext().Number)
		if err != nil {
			return err
		}
		if err := env.Transfer(m.addr, env.Caller(), amount); err != nil {
			return err
		}
		env.Log(withdrawEvent, nil, env.Caller(), new(big.Int).SetUint64(uint64(releaseBlock)), amount)
		logger.Debug("escrow withdrawn", "owner", env.Caller(), "releaseBlock", releaseBlock, "amount", amount)
		return nil
	})
}

// SetIdentity updates the identity record of a candidate owned by the caller.
// The candidate does not have to be listed.
func (m *Masternode) SetIdentity(env *xenv.Environment, candidateAddr xenon.Address, identity xenon.Bytes32) error {
	return m.transition(env, "setIdentity", func() error {
		if env.Value().Sign() != 0 {
			return ErrNotPayable
		}
		entry, err := m.candidates.Get(candidateAddr)
		if err != nil {
			return err
		}
		if entry.IsEmpty() || entry.Owner != env.Caller() {
			return ErrUnauthorized
		}
		if err := m.candidates.SetIdentity(candidateAddr, identity); err != nil {
			return err
		}
		env.Log(setIdentityEvent, nil, env.Caller(), candidateAddr)
		return nil
	})
}

// Candidates returns the raw candidate list, including cleared slots left
// by past resignations.
func (m *Masternode) Candidates() ([]xenon.Address, error) {
	return m.candidates.List()
}

// IsCandidate reports whether the address is a listed candidate.
func (m *Masternode) IsCandidate(addr xenon.Address) (bool, error) {
	return m.candidates.IsListed(addr)
}

// CandidateCap returns the total stake delegated to the candidate.
func (m *Masternode) CandidateCap(addr xenon.Address) (*big.Int, error) {
	entry, err := m.candidates.Get(addr)
	if err != nil {
		return nil, err
	}
	return entry.Cap, nil
}

// CandidateOwner returns the owner of the candidate, or the zero address
// if the candidate was never proposed.
func (m *Masternode) CandidateOwner(addr xenon.Address) (xenon.Address, error) {
	entry, err := m.candidates.Get(addr)
	if err != nil {
		return xenon.Address{}, err
	}
	return entry.Owner, nil
}

// CandidateIdentity returns the identity record of the candidate.
func (m *Masternode) CandidateIdentity(addr xenon.Address) (xenon.Bytes32, error) {
	entry, err := m.candidates.Get(addr)
	if err != nil {
		return xenon.Bytes32{}, err
	}
	return entry.Identity, nil
}

// VoterCap returns the stake a voter holds on a candidate.
func (m *Masternode) VoterCap(candidateAddr, voterAddr xenon.Address) (*big.Int, error) {
	return m.voters.Stake(candidateAddr, voterAddr)
}

// Voters returns the raw voter list of a candidate. Voters who re-voted
// after a full unvote appear more than once.
func (m *Masternode) Voters(candidateAddr xenon.Address) ([]xenon.Address, error) {
	return m.voters.Voters(candidateAddr)
}

// WithdrawBlockNumbers returns the raw withdrawal list of the beneficiary,
// including cleared entries which read as zero.
func (m *Masternode) WithdrawBlockNumbers(beneficiary xenon.Address) ([]uint32, error) {
	return m.escrow.BlockNumbers(beneficiary)
}

// WithdrawCap returns the escrowed amount claimable at the given release block.
func (m *Masternode) WithdrawCap(beneficiary xenon.Address, releaseBlock uint32) (*big.Int, error) {
	return m.escrow.Cap(beneficiary, releaseBlock)
}
