// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package candidate

import (
	"math/big"

	"github.com/xenonchain/xenon/xenon"
)

// Candidate is the on-chain record of a masternode candidate.
// A resigned candidate keeps its record with Listed cleared, so historical
// caps and voter stakes stay queryable.
type Candidate struct {
	Owner    xenon.Address // account that proposed the candidate
	Identity xenon.Bytes32 // owner supplied metadata
	Listed   bool          // whether the candidate is currently registered
	Cap      *big.Int      // total capital delegated to the candidate
}

// IsEmpty returns whether the record has never been written.
func (c *Candidate) IsEmpty() bool {
	return c.Owner.IsZero() &&
		c.Identity.IsZero() &&
		!c.Listed &&
		c.Cap.Sign() == 0
}
