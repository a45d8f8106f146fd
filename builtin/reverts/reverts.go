// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package reverts

import (
	"errors"
)

// ErrRevert marks a contract precondition failure. An operation that fails
// with a revert error must leave state exactly as it was before the call.
type ErrRevert struct {
	message string
}

func New(message string) *ErrRevert {
	return &ErrRevert{
		message: message,
	}
}

func (e *ErrRevert) Error() string {
	return e.message
}

// IsRevertErr reports whether err wraps an ErrRevert.
func IsRevertErr(err any) bool {
	if err == nil {
		return false
	}
	e, ok := err.(error)
	if !ok {
		return false
	}
	var ve *ErrRevert
	return errors.As(e, &ve)
}
