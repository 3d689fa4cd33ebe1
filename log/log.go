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

// Package log implements a leveled, contextual logger: a small set of
// package-level helpers (Debug/Info/Warn/Error/Crit) writing key/value
// pairs through a Handler, plus New() for creating a child Logger bound to
// its own context.
package log

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-stack/stack"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Lvl is the severity of a log record.
type Lvl int

const (
	LvlCrit Lvl = iota
	LvlError
	LvlWarn
	LvlInfo
	LvlDebug
)

func (l Lvl) String() string {
	switch l {
	case LvlCrit:
		return "CRIT"
	case LvlError:
		return "ERROR"
	case LvlWarn:
		return "WARN"
	case LvlInfo:
		return "INFO"
	case LvlDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// Record is a single log event: a level, a message, a timestamp, the
// key/value context accumulated by New(), and — for Warn/Error/Crit — the
// caller's stack frame.
type Record struct {
	Time    time.Time
	Lvl     Lvl
	Msg     string
	Ctx     []interface{}
	Call    stack.Call
}

// Handler writes a Record somewhere (terminal, file, in test harnesses a
// slice). Handlers may be composed (see LvlFilterHandler).
type Handler interface {
	Log(r *Record) error
}

// Logger is bound to a persistent key/value context established by New().
type Logger interface {
	New(ctx ...interface{}) Logger
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	Crit(msg string, ctx ...interface{})
	SetHandler(h Handler)
}

type logger struct {
	ctx []interface{}
	mu  sync.Mutex
	h   Handler
}

// Root returns the root Logger, to which every call to the package-level
// Debug/Info/Warn/Error/Crit functions delegates.
func Root() Logger { return root }

var root = &logger{h: NewTerminalHandler(os.Stderr)}

// NewTerminalHandler wraps f in mattn/go-colorable so ANSI color codes
// render correctly on Windows consoles, and auto-detects (via
// mattn/go-isatty) whether f is a TTY to decide whether TerminalFormat
// should emit color at all.
func NewTerminalHandler(f *os.File) Handler {
	isTTY := isatty.IsTerminal(f.Fd())
	w := colorable.NewColorable(f)
	return StreamHandler(w, TerminalFormat(isTTY))
}

// New creates a new Logger with additional context added to every record it
// writes.
func New(ctx ...interface{}) Logger {
	return root.New(ctx...)
}

func (l *logger) New(ctx ...interface{}) Logger {
	child := &logger{h: l.h, ctx: append(append([]interface{}{}, l.ctx...), ctx...)}
	return child
}

func (l *logger) SetHandler(h Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.h = h
}

func (l *logger) write(lvl Lvl, msg string, ctx []interface{}) {
	l.mu.Lock()
	h := l.h
	l.mu.Unlock()
	if h == nil {
		return
	}
	r := &Record{
		Time: time.Now(),
		Lvl:  lvl,
		Msg:  msg,
		Ctx:  append(append([]interface{}{}, l.ctx...), ctx...),
	}
	if lvl <= LvlWarn {
		r.Call = stack.Caller(2)
	}
	_ = h.Log(r)
}

func (l *logger) Debug(msg string, ctx ...interface{}) { l.write(LvlDebug, msg, ctx) }
func (l *logger) Info(msg string, ctx ...interface{})  { l.write(LvlInfo, msg, ctx) }
func (l *logger) Warn(msg string, ctx ...interface{})  { l.write(LvlWarn, msg, ctx) }
func (l *logger) Error(msg string, ctx ...interface{}) { l.write(LvlError, msg, ctx) }
func (l *logger) Crit(msg string, ctx ...interface{}) {
	l.write(LvlCrit, msg, ctx)
	os.Exit(1)
}

// Package-level convenience functions delegate to Root().
func Debug(msg string, ctx ...interface{}) { root.write(LvlDebug, msg, ctx) }
func Info(msg string, ctx ...interface{})  { root.write(LvlInfo, msg, ctx) }
func Warn(msg string, ctx ...interface{})  { root.write(LvlWarn, msg, ctx) }
func Error(msg string, ctx ...interface{}) { root.write(LvlError, msg, ctx) }
func Crit(msg string, ctx ...interface{})  { root.write(LvlCrit, msg, ctx) }

// SetOutputLevel sets the minimum level the root logger writes; records
// below it are dropped before reaching the handler.
func SetOutputLevel(lvl Lvl) {
	root.SetHandler(LvlFilterHandler(lvl, root.h))
}

// LvlFilterHandler returns a Handler that only passes records whose level is
// at or above maxLvl (numerically <=) through to h.
func LvlFilterHandler(maxLvl Lvl, h Handler) Handler {
	return handlerFunc(func(r *Record) error {
		if r.Lvl > maxLvl {
			return nil
		}
		return h.Log(r)
	})
}

type handlerFunc func(r *Record) error

func (f handlerFunc) Log(r *Record) error { return f(r) }

func fmtCtx(ctx []interface{}) string {
	s := ""
	for i := 0; i+1 < len(ctx); i += 2 {
		s += fmt.Sprintf(" %v=%v", ctx[i], ctx[i+1])
	}
	return s
}
