// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package log

import (
	"bytes"
	"log/slog"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalHandler(t *testing.T) {
	var out bytes.Buffer
	l := NewLogger(NewTerminalHandler(&out, slog.LevelInfo))

	l.Info("stake deposited", "amount", big.NewInt(1000), "ok", true)
	line := out.String()
	assert.True(t, strings.Contains(line, "stake deposited"))
	assert.True(t, strings.Contains(line, "amount=1000"))
	assert.True(t, strings.Contains(line, "ok=true"))

	// below the handler level nothing is written
	out.Reset()
	l.Debug("hidden")
	assert.Empty(t, out.String())
}

func TestLoggerWith(t *testing.T) {
	var out bytes.Buffer
	l := NewLogger(NewTerminalHandler(&out, slog.LevelInfo)).With("pkg", "masternode")

	l.Info("hello")
	assert.True(t, strings.Contains(out.String(), "pkg=masternode"))
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "trace", LevelString(LevelTrace))
	assert.Equal(t, "crit", LevelString(LevelCrit))
	assert.Equal(t, "INFO", LevelString(slog.LevelInfo))
}

func TestFromLegacyLevel(t *testing.T) {
	assert.Equal(t, LevelCrit, FromLegacyLevel(0))
	assert.Equal(t, slog.LevelInfo, FromLegacyLevel(3))
	assert.Equal(t, LevelTrace, FromLegacyLevel(5))
}
