// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package xenon

import "math/big"

// Constants of block chain.
const (
	BlockInterval uint64 = 2 // time interval between two consecutive blocks, in seconds.

	// InitialMaxMasternodes maximum number of enumerable masternode candidates.
	InitialMaxMasternodes uint64 = 150
)

// Initial values of masternode governance params, fixed at genesis.
var (
	// InitialMinCandidateStake minimum deposit to register a masternode candidate.
	InitialMinCandidateStake = new(big.Int).Mul(big.NewInt(50_000), big.NewInt(1e18))
	// InitialMinVoterStake minimum deposit to delegate stake to a candidate.
	InitialMinVoterStake = new(big.Int).Mul(big.NewInt(25_000), big.NewInt(1e18))

	// InitialCandidateDelay blocks an owner's stake stays in escrow after resign (30 days).
	InitialCandidateDelay = uint32(1_296_000)
	// InitialVoterDelay blocks a voter's stake stays in escrow after unvote (10 days).
	InitialVoterDelay = uint32(432_000)
)
