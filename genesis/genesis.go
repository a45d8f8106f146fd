// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package genesis builds the initial chain state, including the
// masternode contract configuration and the candidates registered at
// launch.
package genesis

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/xenonchain/xenon/builtin"
	"github.com/xenonchain/xenon/builtin/masternode"
	"github.com/xenonchain/xenon/builtin/slot"
	"github.com/xenonchain/xenon/kv"
	"github.com/xenonchain/xenon/state"
	"github.com/xenonchain/xenon/xenon"
	"github.com/xenonchain/xenon/xenv"
)

// CandidateSeed describes a masternode registered at genesis. The stake
// is minted to the owner and immediately deposited into the contract.
type CandidateSeed struct {
	Candidate xenon.Address
	Owner     xenon.Address
	Stake     *big.Int
}

// AccountSeed is a balance allocation at genesis.
type AccountSeed struct {
	Address xenon.Address
	Balance *big.Int
}

// CustomGenesis is the user specified genesis.
type CustomGenesis struct {
	LaunchTime uint64
	Config     masternode.Config
	Accounts   []AccountSeed
	Candidates []CandidateSeed
}

// Genesis to build genesis state.
type Genesis struct {
	builder *Builder
	name    string
}

// Name returns the network name.
func (g *Genesis) Name() string { return g.name }

// Build builds and commits the genesis state into db.
func (g *Genesis) Build(db kv.GetPutter) (*state.State, error) {
	return g.builder.Build(db)
}

// NewCustomNet create genesis from user specified config.
func NewCustomNet(gen *CustomGenesis) (*Genesis, error) {
	config := gen.Config
	if config.MinCandidateStake == nil || config.MinVoterStake == nil {
		return nil, errors.New("stake minimums must be set")
	}
	if config.MaxCandidates == 0 {
		return nil, errors.New("max candidates must be positive")
	}
	if uint64(len(gen.Candidates)) > config.MaxCandidates {
		return nil, errors.New("too many genesis candidates")
	}

	seen := make(map[xenon.Address]bool, len(gen.Candidates))
	for _, seed := range gen.Candidates {
		if seed.Candidate.IsZero() || seed.Owner.IsZero() {
			return nil, errors.New("genesis candidate and owner must be non-zero")
		}
		if seen[seed.Candidate] {
			return nil, errors.Errorf("duplicate genesis candidate %v", seed.Candidate)
		}
		seen[seed.Candidate] = true
		if seed.Stake == nil || seed.Stake.Cmp(config.MinCandidateStake) < 0 {
			return nil, errors.Errorf("genesis candidate %v stake below minimum", seed.Candidate)
		}
	}

	launchTime := gen.LaunchTime

	builder := new(Builder).
		Timestamp(launchTime).
		State(func(st *state.State) error {
			masternode.SaveConfig(slot.NewContext(builtin.Masternode.Address, st), config)

			for _, acc := range gen.Accounts {
				if err := st.SetBalance(acc.Address, acc.Balance); err != nil {
					return err
				}
			}

			mn, err := builtin.Masternode.WithState(st)
			if err != nil {
				return err
			}
			blockCtx := &xenv.BlockContext{Number: 0, Time: launchTime}
			for _, seed := range gen.Candidates {
				bal, err := st.GetBalance(seed.Owner)
				if err != nil {
					return err
				}
				if err := st.SetBalance(seed.Owner, new(big.Int).Add(bal, seed.Stake)); err != nil {
					return err
				}
				env := xenv.New(st, blockCtx, &xenv.TransactionContext{}, seed.Owner, builtin.Masternode.Address, seed.Stake)
				if err := mn.Propose(env, seed.Candidate); err != nil {
					return errors.Wrapf(err, "register genesis candidate %v", seed.Candidate)
				}
			}
			return nil
		})

	return &Genesis{builder, "customnet"}, nil
}
