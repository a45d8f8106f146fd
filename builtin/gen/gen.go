// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package gen embeds the compiled artifacts of the builtin contracts.
package gen

import "embed"

//go:embed compiled
var compiled embed.FS

// MustAsset returns the content of the named asset, panicking if it is missing.
func MustAsset(name string) []byte {
	data, err := compiled.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return data
}
