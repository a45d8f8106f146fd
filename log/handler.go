// Copyright (c) 2025 The Xenon developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"reflect"
	"sync"
	"time"

	"github.com/holiman/uint256"
)

type discardHandler struct{}

// DiscardHandler returns a no-op handler
func DiscardHandler() slog.Handler {
	return &discardHandler{}
}

func (h *discardHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (h *discardHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (h *discardHandler) WithGroup(_ string) slog.Handler {
	panic("not implemented")
}

func (h *discardHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return &discardHandler{}
}

// TerminalHandler writes human readable records to the given writer.
type TerminalHandler struct {
	mu    sync.Mutex
	wr    io.Writer
	lvl   *slog.LevelVar
	attrs []slog.Attr

	// fieldPadding is a map with maximum field value lengths seen until now
	// to allow padding log contexts in a bit smarter way.
	fieldPadding map[string]int
}

// NewTerminalHandler returns a handler which formats log records at all levels optimized for human readability on
// a terminal with color-coded level output and terser human friendly timestamp.
// This format should only be used for interactive programs or while developing.
//
//	[LEVEL] [TIME] MESSAGE key=value key=value ...
func NewTerminalHandler(wr io.Writer, level slog.Leveler) *TerminalHandler {
	lvl := &slog.LevelVar{}
	lvl.Set(level.Level())
	return &TerminalHandler{
		wr:           wr,
		lvl:          lvl,
		fieldPadding: make(map[string]int),
	}
}

func (h *TerminalHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	fmt.Fprintf(h.wr, "%s[%s] %s", LevelString(r.Level), r.Time.Format("01-02|15:04:05.000"), r.Message)
	writeAttr := func(attr slog.Attr) bool {
		fmt.Fprintf(h.wr, " %s=%s", attr.Key, FormatSlogValue(attr.Value))
		return true
	}
	for _, attr := range h.attrs {
		writeAttr(attr)
	}
	r.Attrs(writeAttr)
	fmt.Fprintln(h.wr)
	return nil
}

func (h *TerminalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.lvl.Level()
}

func (h *TerminalHandler) WithGroup(_ string) slog.Handler {
	panic("not implemented")
}

func (h *TerminalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TerminalHandler{
		wr:           h.wr,
		lvl:          h.lvl,
		attrs:        append(h.attrs, attrs...),
		fieldPadding: make(map[string]int),
	}
}

// SetLevel changes the minimum level emitted by the handler.
func (h *TerminalHandler) SetLevel(level slog.Level) {
	h.lvl.Set(level)
}

// FormatSlogValue formats a slog.Value for serialization.
func FormatSlogValue(v slog.Value) string {
	var value any
	switch v.Kind() {
	case slog.KindString:
		return v.String()
	case slog.KindInt64: // All int-types (int8, int16 etc) wind up here
		return fmt.Sprintf("%d", v.Int64())
	case slog.KindUint64: // All uint-types (uint8, uint16 etc) wind up here
		return fmt.Sprintf("%d", v.Uint64())
	case slog.KindFloat64:
		return fmt.Sprintf("%v", v.Float64())
	case slog.KindBool:
		return fmt.Sprintf("%v", v.Bool())
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time().Format(time.RFC3339)
	default:
		value = v.Any()
	}
	if value == nil {
		return "<nil>"
	}

	switch v := value.(type) {
	case *big.Int: // big.Int types without padding
		return v.String()
	case *uint256.Int: // uint256 types without padding
		return v.Dec()
	case error:
		return v.Error()
	case fmt.Stringer:
		if v == nil || (reflect.ValueOf(v).Kind() == reflect.Pointer && reflect.ValueOf(v).IsNil()) {
			return "<nil>"
		}
		return v.String()
	default:
		return fmt.Sprintf("%v", value)
	}
}
