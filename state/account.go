// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/xenonchain/xenon/kv"
	"github.com/xenonchain/xenon/xenon"
)

// Account is the Xenon account model.
type Account struct {
	Balance *big.Int
}

// IsEmpty returns if an account is empty.
// An empty account has zero balance.
func (a *Account) IsEmpty() bool {
	return a.Balance.Sign() == 0
}

func emptyAccount() *Account {
	return &Account{Balance: &big.Int{}}
}

// loadAccount load an account object by address in kv store.
// It returns an empty account if the address is not found.
func loadAccount(db kv.Getter, addr xenon.Address) (*Account, error) {
	data, err := db.Get(accountKey(addr))
	if err != nil {
		if db.IsNotFound(err) {
			return emptyAccount(), nil
		}
		return nil, err
	}
	var a Account
	if err := rlp.DecodeBytes(data, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// saveAccount save account into kv store, or delete it if the account is empty.
func saveAccount(putter kv.Putter, addr xenon.Address, a *Account) error {
	if a.IsEmpty() {
		return putter.Delete(accountKey(addr))
	}
	data, err := rlp.EncodeToBytes(a)
	if err != nil {
		return err
	}
	return putter.Put(accountKey(addr), data)
}

// loadStorage load a raw storage value by address and key.
func loadStorage(db kv.Getter, addr xenon.Address, key xenon.Bytes32) (rlp.RawValue, error) {
	data, err := db.Get(storageDBKey(addr, key))
	if err != nil {
		if db.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// saveStorage save raw storage value, or delete it if the value is empty.
func saveStorage(putter kv.Putter, addr xenon.Address, key xenon.Bytes32, raw rlp.RawValue) error {
	if len(raw) == 0 {
		return putter.Delete(storageDBKey(addr, key))
	}
	return putter.Put(storageDBKey(addr, key), raw)
}

func accountKey(addr xenon.Address) []byte {
	return append([]byte(accountPrefix), addr.Bytes()...)
}

func storageDBKey(addr xenon.Address, key xenon.Bytes32) []byte {
	k := append([]byte(storagePrefix), addr.Bytes()...)
	return append(k, key.Bytes()...)
}
