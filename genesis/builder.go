// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"github.com/pkg/errors"

	"github.com/xenonchain/xenon/kv"
	"github.com/xenonchain/xenon/state"
)

// Builder helper to build genesis state.
type Builder struct {
	timestamp uint64

	stateProcs []func(state *state.State) error
}

// Timestamp set timestamp.
func (b *Builder) Timestamp(t uint64) *Builder {
	b.timestamp = t
	return b
}

// State add a state process.
func (b *Builder) State(proc func(state *state.State) error) *Builder {
	b.stateProcs = append(b.stateProcs, proc)
	return b
}

// Build runs all state processes against a fresh state over db and
// commits the result.
func (b *Builder) Build(db kv.GetPutter) (*state.State, error) {
	st := state.New(db)

	for _, proc := range b.stateProcs {
		if err := proc(st); err != nil {
			return nil, errors.Wrap(err, "state process")
		}
	}

	if err := st.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit genesis state")
	}
	return st, nil
}
