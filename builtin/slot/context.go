// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package slot

import (
	"github.com/xenonchain/xenon/state"
	"github.com/xenonchain/xenon/xenon"
)

// Context binds storage primitives to a contract address and a state.
type Context struct {
	address xenon.Address
	state   *state.State
}

func NewContext(address xenon.Address, state *state.State) *Context {
	return &Context{
		address: address,
		state:   state,
	}
}

func (c *Context) Address() xenon.Address {
	return c.address
}

func (c *Context) State() *state.State {
	return c.state
}
