// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"math/big"

	"github.com/xenonchain/xenon/builtin/masternode"
	"github.com/xenonchain/xenon/xenon"
)

// DevAccounts returns the accounts preallocated on the devnet.
func DevAccounts() []AccountSeed {
	balance, _ := new(big.Int).SetString("1000000000000000000000000", 10) // 1M coins
	accounts := make([]AccountSeed, 0, 10)
	for i := 0; i < 10; i++ {
		addr := xenon.BytesToAddress([]byte{'d', 'e', 'v', byte(i)})
		accounts = append(accounts, AccountSeed{addr, new(big.Int).Set(balance)})
	}
	return accounts
}

// NewDevnet create genesis for the local development network. Withdrawal
// delays are shortened so escrowed stake matures within seconds.
func NewDevnet() *Genesis {
	config := masternode.DefaultConfig()
	config.CandidateDelay = 30
	config.VoterDelay = 10

	accounts := DevAccounts()
	gen, err := NewCustomNet(&CustomGenesis{
		LaunchTime: 1755734400, // '2025-08-21 00:00:00 +0000 UTC'
		Config:     config,
		Accounts:   accounts,
		Candidates: []CandidateSeed{
			{
				Candidate: xenon.BytesToAddress([]byte("dev-candidate-0")),
				Owner:     accounts[0].Address,
				Stake:     new(big.Int).Set(config.MinCandidateStake),
			},
			{
				Candidate: xenon.BytesToAddress([]byte("dev-candidate-1")),
				Owner:     accounts[1].Address,
				Stake:     new(big.Int).Set(config.MinCandidateStake),
			},
		},
	})
	if err != nil {
		panic(err)
	}
	gen.name = "devnet"
	return gen
}
