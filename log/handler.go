// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The ProbeChain is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the ProbeChain. If not, see <http://www.gnu.org/licenses/>.

package log

import (
	"fmt"
	"io"
	"sync"
)

// Format renders a Record to bytes.
type Format interface {
	Format(r *Record) []byte
}

type formatFunc func(r *Record) []byte

func (f formatFunc) Format(r *Record) []byte { return f(r) }

// terminal color codes, used only when the destination is a TTY.
const (
	colorReset  = "\x1b[0m"
	colorRed    = "\x1b[31m"
	colorYellow = "\x1b[33m"
	colorBlue   = "\x1b[36m"
	colorGray   = "\x1b[90m"
)

func lvlColor(l Lvl) string {
	switch l {
	case LvlCrit, LvlError:
		return colorRed
	case LvlWarn:
		return colorYellow
	case LvlInfo:
		return colorBlue
	default:
		return colorGray
	}
}

// TerminalFormat returns a Format suitable for human eyes. When useColor is
// true (the destination is a TTY, per mattn/go-isatty) the level tag is
// ANSI-colored.
func TerminalFormat(useColor bool) Format {
	return formatFunc(func(r *Record) []byte {
		ts := r.Time.Format("01-02|15:04:05.000")
		lvl := r.Lvl.String()
		var line string
		if useColor {
			line = fmt.Sprintf("%s%-5s%s[%s] %s%s", lvlColor(r.Lvl), lvl, colorReset, ts, r.Msg, fmtCtx(r.Ctx))
		} else {
			line = fmt.Sprintf("%-5s[%s] %s%s", lvl, ts, r.Msg, fmtCtx(r.Ctx))
		}
		if r.Lvl <= LvlWarn {
			line += fmt.Sprintf(" (%v)", r.Call)
		}
		return append([]byte(line), '\n')
	})
}

// StreamHandler writes every record to w using the given Format. Writes are
// serialized with a mutex.
func StreamHandler(w io.Writer, fmtr Format) Handler {
	h := &streamHandler{w: w, fmtr: fmtr}
	return h
}

type streamHandler struct {
	mu   sync.Mutex
	w    io.Writer
	fmtr Format
}

func (h *streamHandler) Log(r *Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(h.fmtr.Format(r))
	return err
}

// MultiHandler fans a record out to every handler in hs.
func MultiHandler(hs ...Handler) Handler {
	return handlerFunc(func(r *Record) error {
		for _, h := range hs {
			_ = h.Log(r)
		}
		return nil
	})
}

// DiscardHandler drops every record; useful in tests that want a quiet Logger.
func DiscardHandler() Handler {
	return handlerFunc(func(r *Record) error { return nil })
}

// CollectHandler appends every record to a slice, for tests that assert on
// emitted log lines.
type CollectHandler struct {
	mu      sync.Mutex
	Records []*Record
}

func (h *CollectHandler) Log(r *Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Records = append(h.Records, r)
	return nil
}
