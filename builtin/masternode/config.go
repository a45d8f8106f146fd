// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package masternode

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/xenonchain/xenon/builtin/slot"
	"github.com/xenonchain/xenon/xenon"
)

var (
	slotMinCandidateStake = xenon.BytesToBytes32([]byte("min-candidate-stake"))
	slotMinVoterStake     = xenon.BytesToBytes32([]byte("min-voter-stake"))
	slotMaxCandidates     = xenon.BytesToBytes32([]byte("max-candidates"))
	slotCandidateDelay    = xenon.BytesToBytes32([]byte("candidate-withdraw-delay"))
	slotVoterDelay        = xenon.BytesToBytes32([]byte("voter-withdraw-delay"))
)

// Config holds the governance parameters of the contract.
// They are written once at genesis and never change afterwards.
type Config struct {
	MinCandidateStake *big.Int // minimum deposit to register a candidate
	MinVoterStake     *big.Int // minimum deposit per vote
	MaxCandidates     uint64   // maximum number of registered candidates
	CandidateDelay    uint32   // escrow delay for a resigning owner's stake, in blocks
	VoterDelay        uint32   // escrow delay for unvoted stake, in blocks
}

// DefaultConfig returns the mainnet governance parameters.
func DefaultConfig() Config {
	return Config{
		MinCandidateStake: new(big.Int).Set(xenon.InitialMinCandidateStake),
		MinVoterStake:     new(big.Int).Set(xenon.InitialMinVoterStake),
		MaxCandidates:     xenon.InitialMaxMasternodes,
		CandidateDelay:    xenon.InitialCandidateDelay,
		VoterDelay:        xenon.InitialVoterDelay,
	}
}

// SaveConfig writes the governance parameters into contract storage.
// Meant to be called once, while building the genesis state.
func SaveConfig(sctx *slot.Context, config Config) {
	slot.NewUint256(sctx, slotMinCandidateStake).Set(config.MinCandidateStake)
	slot.NewUint256(sctx, slotMinVoterStake).Set(config.MinVoterStake)
	slot.NewUint256(sctx, slotMaxCandidates).Set(new(big.Int).SetUint64(config.MaxCandidates))
	slot.NewUint256(sctx, slotCandidateDelay).Set(new(big.Int).SetUint64(uint64(config.CandidateDelay)))
	slot.NewUint256(sctx, slotVoterDelay).Set(new(big.Int).SetUint64(uint64(config.VoterDelay)))
}

func loadConfig(sctx *slot.Context) (Config, error) {
	minCandidateStake, err := slot.NewUint256(sctx, slotMinCandidateStake).Get()
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to load min candidate stake")
	}
	minVoterStake, err := slot.NewUint256(sctx, slotMinVoterStake).Get()
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to load min voter stake")
	}
	maxCandidates, err := slot.NewUint256(sctx, slotMaxCandidates).Get()
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to load max candidates")
	}
	candidateDelay, err := slot.NewUint256(sctx, slotCandidateDelay).Get()
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to load candidate delay")
	}
	voterDelay, err := slot.NewUint256(sctx, slotVoterDelay).Get()
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to load voter delay")
	}

	return Config{
		MinCandidateStake: minCandidateStake,
		MinVoterStake:     minVoterStake,
		MaxCandidates:     maxCandidates.Uint64(),
		CandidateDelay:    uint32(candidateDelay.Uint64()),
		VoterDelay:        uint32(voterDelay.Uint64()),
	}, nil
}
