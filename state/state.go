// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/xenonchain/xenon/kv"
	"github.com/xenonchain/xenon/stackedmap"
	"github.com/xenonchain/xenon/xenon"
)

const (
	accountPrefix = "a"
	storagePrefix = "s"
)

// Error is the error caused by state access failure.
type Error struct {
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("state: %v", e.cause)
}

// storageKey addresses a contract storage slot in the journal.
type storageKey struct {
	addr xenon.Address
	key  xenon.Bytes32
}

// State manages the world state.
// All mutations are journaled and become durable only on Commit.
type State struct {
	db kv.GetPutter
	sm *stackedmap.StackedMap // keeps revisions of accounts state
}

// New create state object.
func New(db kv.GetPutter) *State {
	state := State{db: db}

	state.sm = stackedmap.New(func(key any) (any, bool, error) {
		return state.cacheGetter(key)
	})
	// base level holds all uncommitted changes
	state.sm.Push()
	return &state
}

// cacheGetter implements stackedmap.MapGetter.
func (s *State) cacheGetter(key any) (value any, exist bool, err error) {
	switch k := key.(type) {
	case xenon.Address: // get account
		acc, err := loadAccount(s.db, k)
		if err != nil {
			return nil, false, err
		}
		return acc, true, nil
	case storageKey: // get storage
		raw, err := loadStorage(s.db, k.addr, k.key)
		if err != nil {
			return nil, false, err
		}
		return raw, true, nil
	}
	panic(fmt.Errorf("unexpected key type %+v", key))
}

// getAccount gets account by address. The returned account should not be modified.
func (s *State) getAccount(addr xenon.Address) (*Account, error) {
	v, _, err := s.sm.Get(addr)
	if err != nil {
		return nil, err
	}
	return v.(*Account), nil
}

// getAccountCopy get a copy of account by address.
func (s *State) getAccountCopy(addr xenon.Address) (Account, error) {
	acc, err := s.getAccount(addr)
	if err != nil {
		return Account{}, err
	}
	return *acc, nil
}

func (s *State) updateAccount(addr xenon.Address, acc *Account) {
	s.sm.Put(addr, acc)
}

// GetBalance returns balance for the given address.
func (s *State) GetBalance(addr xenon.Address) (*big.Int, error) {
	acc, err := s.getAccount(addr)
	if err != nil {
		return nil, &Error{err}
	}
	return acc.Balance, nil
}

// SetBalance set balance for the given address.
func (s *State) SetBalance(addr xenon.Address, balance *big.Int) error {
	cpy, err := s.getAccountCopy(addr)
	if err != nil {
		return &Error{err}
	}
	cpy.Balance = balance
	s.updateAccount(addr, &cpy)
	return nil
}

// GetStorage returns storage value for the given address and key.
func (s *State) GetStorage(addr xenon.Address, key xenon.Bytes32) (xenon.Bytes32, error) {
	raw, err := s.GetRawStorage(addr, key)
	if err != nil {
		return xenon.Bytes32{}, &Error{err}
	}
	if len(raw) == 0 {
		return xenon.Bytes32{}, nil
	}
	kind, content, _, err := rlp.Split(raw)
	if err != nil {
		return xenon.Bytes32{}, &Error{err}
	}
	if kind == rlp.List {
		// special case for rlp list, it should be customized storage value
		// return hash of raw data
		return xenon.Blake2b(raw), nil
	}
	return xenon.BytesToBytes32(content), nil
}

// SetStorage set storage value for the given address and key.
func (s *State) SetStorage(addr xenon.Address, key, value xenon.Bytes32) {
	if value.IsZero() {
		s.SetRawStorage(addr, key, nil)
		return
	}
	v, _ := rlp.EncodeToBytes(bytes.TrimLeft(value[:], "\x00"))
	s.SetRawStorage(addr, key, v)
}

// GetRawStorage returns storage value in rlp raw for given address and key.
func (s *State) GetRawStorage(addr xenon.Address, key xenon.Bytes32) (rlp.RawValue, error) {
	data, _, err := s.sm.Get(storageKey{addr, key})
	if err != nil {
		return nil, &Error{err}
	}
	return data.(rlp.RawValue), nil
}

// SetRawStorage set storage value in rlp raw.
func (s *State) SetRawStorage(addr xenon.Address, key xenon.Bytes32, raw rlp.RawValue) {
	s.sm.Put(storageKey{addr, key}, raw)
}

// EncodeStorage set storage value encoded by given enc method.
// Error returned by enc will be absorbed by State instance.
func (s *State) EncodeStorage(addr xenon.Address, key xenon.Bytes32, enc func() ([]byte, error)) error {
	raw, err := enc()
	if err != nil {
		return &Error{err}
	}
	s.SetRawStorage(addr, key, raw)
	return nil
}

// DecodeStorage get and decode storage value.
// Error returned by dec will be absorbed by State instance.
func (s *State) DecodeStorage(addr xenon.Address, key xenon.Bytes32, dec func([]byte) error) error {
	raw, err := s.GetRawStorage(addr, key)
	if err != nil {
		return &Error{err}
	}
	if err := dec(raw); err != nil {
		return &Error{err}
	}
	return nil
}

// Exists returns whether an account exists at the given address.
// See Account.IsEmpty()
func (s *State) Exists(addr xenon.Address) (bool, error) {
	acc, err := s.getAccount(addr)
	if err != nil {
		return false, &Error{err}
	}
	return !acc.IsEmpty(), nil
}

// NewCheckpoint makes a checkpoint of current state.
// It returns revision of the checkpoint.
func (s *State) NewCheckpoint() int {
	return s.sm.Push()
}

// RevertTo revert to checkpoint specified by revision.
func (s *State) RevertTo(revision int) {
	s.sm.PopTo(revision)
}

// Commit writes all journaled changes into the underlying kv store.
// The journal is replayed in chronological order, so the latest value
// of each key wins.
func (s *State) Commit() error {
	batch := s.db.NewBatch()

	var err error
	s.sm.Journal(func(k, v any) bool {
		switch key := k.(type) {
		case xenon.Address:
			err = saveAccount(batch, key, v.(*Account))
		case storageKey:
			err = saveStorage(batch, key.addr, key.key, v.(rlp.RawValue))
		}
		return err == nil
	})
	if err != nil {
		return &Error{err}
	}
	if err := batch.Write(); err != nil {
		return &Error{err}
	}

	// restart the journal
	s.sm.PopTo(0)
	s.sm.Push()
	return nil
}
