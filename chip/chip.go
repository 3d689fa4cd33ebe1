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

// Package chip holds the IC10 chip's register/stack/program-counter state
// (spec §3, §4.6). Instruction dispatch lives in ic10/vm, which operates on
// the exported surface of Chip; this package owns only state and the
// mechanical register-indirection resolution IC10 programs rely on.
package chip

import (
	"github.com/stationeers/simcore/ic10/parser"
	"github.com/stationeers/simcore/params"
)

// Register indices: r0..r15 are general purpose, r16 is the stack pointer
// (aliased "sp"), r17 is the return-address register (aliased "ra").
const (
	SP = 16
	RA = 17

	RegisterCount = params.RegisterCount
)

// Chip is one IC10 microcontroller's execution state.
type Chip struct {
	registers [RegisterCount]float64
	stack     [params.StackSize]float64

	pc        int
	halted    bool
	errorLine int // -1 when no fault has occurred

	sleepTicksRemaining int

	program *parser.Program
	source  string
}

// New creates an unprogrammed, unhalted chip with sp reset to 0.
func New() *Chip {
	c := &Chip{errorLine: -1}
	c.registers[SP] = 0
	return c
}

// Register returns the value of register index i (0..17).
func (c *Chip) Register(i int) float64 { return c.registers[i] }

// SetRegister sets register index i to v.
func (c *Chip) SetRegister(i int, v float64) { c.registers[i] = v }

// PC returns the current program counter.
func (c *Chip) PC() int { return c.pc }

// SetPC sets the program counter.
func (c *Chip) SetPC(pc int) { c.pc = pc }

// Halted reports whether the chip has halted on a fault or hcf.
func (c *Chip) Halted() bool { return c.halted }

// Halt marks the chip halted and records the line at which it occurred.
func (c *Chip) Halt(line int) {
	c.halted = true
	c.errorLine = line
}

// ErrorLine returns the line of the last fault, or -1 if none occurred
// since the last load/clear.
func (c *Chip) ErrorLine() int { return c.errorLine }

// Program returns the currently loaded program, or nil if none is loaded.
func (c *Chip) Program() *parser.Program { return c.program }

// Source returns the last-loaded program's source text.
func (c *Chip) Source() string { return c.source }

// Load installs program as the chip's active program, resetting PC to 0 and
// clearing halted/errorLine. Registers and the stack are left untouched
// (spec §4.6 "Reset semantics"): the host must call ClearRegisters
// explicitly if it wants a clean register file.
func (c *Chip) Load(source string, program *parser.Program) {
	c.source = source
	c.program = program
	c.pc = 0
	c.halted = false
	c.errorLine = -1
}

// ClearRegisters zeroes every register including sp and ra.
func (c *Chip) ClearRegisters() {
	for i := range c.registers {
		c.registers[i] = 0
	}
}

// ClearStack resets sp to 0 without clearing stack contents (they are
// unreachable until overwritten, per the register-machine's own view of
// the stack as the region below sp).
func (c *Chip) ClearStack() {
	c.registers[SP] = 0
}

// Push writes v to the stack at sp and increments sp. Returns
// common.FaultStackOverflow via the caller (ic10/vm) when sp is already at
// params.StackSize; Chip itself exposes the raw primitive.
func (c *Chip) Push(v float64) bool {
	sp := int(c.registers[SP])
	if sp >= params.StackSize {
		return false
	}
	c.stack[sp] = v
	c.registers[SP] = float64(sp + 1)
	return true
}

// Pop decrements sp and returns the value at the new sp. ok is false on
// underflow (sp already 0).
func (c *Chip) Pop() (float64, bool) {
	sp := int(c.registers[SP])
	if sp <= 0 {
		return 0, false
	}
	sp--
	c.registers[SP] = float64(sp)
	return c.stack[sp], true
}

// Peek returns the value at sp-1 without popping. ok is false when the
// stack is empty.
func (c *Chip) Peek() (float64, bool) {
	sp := int(c.registers[SP])
	if sp <= 0 {
		return 0, false
	}
	return c.stack[sp-1], true
}

// SleepTicks arms the chip to skip execution for n further ticks, used by
// the `sleep` instruction (spec §4.6).
func (c *Chip) SleepTicks(n int) {
	if n > c.sleepTicksRemaining {
		c.sleepTicksRemaining = n
	}
}

// ConsumeSleepTick reports whether the chip should skip this tick's
// execution entirely, decrementing its remaining sleep count if so.
func (c *Chip) ConsumeSleepTick() bool {
	if c.sleepTicksRemaining <= 0 {
		return false
	}
	c.sleepTicksRemaining--
	return true
}
