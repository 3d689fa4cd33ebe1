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

// Package vm is the IC10 interpreter: one-instruction-per-step execution of
// a chip's loaded Program against its owning device and the device graph
// (spec §4.6).
package vm

import (
	"github.com/stationeers/simcore/chip"
	"github.com/stationeers/simcore/common"
	"github.com/stationeers/simcore/device"
	"github.com/stationeers/simcore/ic10/opcode"
	"github.com/stationeers/simcore/ic10/parser"
	"github.com/stationeers/simcore/params"
)

// World is the narrow view of the device graph the interpreter needs to
// resolve device-pin operands to live devices. The simulation manager is
// the only production implementation.
type World interface {
	Device(id common.ReferenceId) (*device.Device, bool)
}

// StepResult reports the outcome of a single Step call (spec §4.6).
type StepResult int

const (
	StepRan StepResult = iota
	StepHalted
	StepFaulted
	StepYielded
)

// Step fetches the instruction at c's PC, executes it against self and
// world, and advances PC by 1 unless the instruction reassigns it. A fault
// halts the chip and returns StepFaulted with the fault as err.
func Step(c *chip.Chip, self *device.Device, world World) (StepResult, error) {
	if c.Halted() {
		return StepHalted, nil
	}
	prog := c.Program()
	if prog == nil || c.PC() < 0 || c.PC() >= len(prog.Instructions) {
		fault := common.NewRuntimeFault(common.FaultInvalidInstruction, c.PC(), "program counter out of range")
		c.Halt(c.PC())
		return StepFaulted, fault
	}

	instr := prog.Instructions[c.PC()]
	e := &executor{chip: c, self: self, world: world, instr: instr}

	if instr.Op == opcode.Yield {
		c.SetPC(c.PC() + 1)
		return StepYielded, nil
	}

	nextPC := c.PC() + 1
	result, fault := e.execute(&nextPC)
	if fault != nil {
		c.Halt(instr.Line)
		return StepFaulted, fault
	}
	c.SetPC(nextPC)
	return result, nil
}

// RunTick executes up to params.InstructionsPerTick steps of c against self
// and world, stopping early on halt, fault, or yield. It returns the number
// of instructions actually executed (the manager's change-accounting phase
// uses this).
func RunTick(c *chip.Chip, self *device.Device, world World) int {
	return RunTickN(c, self, world, params.InstructionsPerTick)
}

// RunTickN is RunTick with an explicit per-tick instruction budget, so a
// host can tighten or loosen the default via sim.Config without the engine
// itself taking a runtime parameter (spec §6's operations are fixed-arity).
func RunTickN(c *chip.Chip, self *device.Device, world World, budget int) int {
	if c.ConsumeSleepTick() {
		return 0
	}
	executed := 0
	for i := 0; i < budget; i++ {
		result, _ := Step(c, self, world)
		if result == StepHalted {
			return executed
		}
		executed++
		switch result {
		case StepFaulted, StepYielded:
			return executed
		}
	}
	return executed
}

// resolveDevicePin turns a device-pin operand into the live device it
// addresses: db means "self", d0..d5 dereference the host device's pin
// table through world.
func resolveDevicePin(self *device.Device, world World, pin int, isSelf bool) (*device.Device, error) {
	if isSelf {
		return self, nil
	}
	target, err := self.GetDevicePin(pin)
	if err != nil {
		return nil, err
	}
	if target == common.InvalidReferenceId {
		return nil, common.NewRuntimeFault(common.FaultDeviceNotFound, 0, "pin d%d is unset", pin)
	}
	d, ok := world.Device(target)
	if !ok {
		return nil, common.NewRuntimeFault(common.FaultDeviceNotFound, 0, "pin d%d references a destroyed device", pin)
	}
	return d, nil
}

// cableMembers returns every live device attached to self's cable network,
// including self, in insertion order. Batch opcodes filter by prefab hash
// anyway, so a host device (whose own prefab is never the filter target)
// is naturally excluded from any real batch's matched set.
func cableMembers(self *device.Device, world World) []*device.Device {
	net := self.CableNetwork()
	if net == nil {
		return nil
	}
	ids := net.DeviceIDs()
	out := make([]*device.Device, 0, len(ids))
	for _, id := range ids {
		if d, ok := world.Device(id); ok {
			out = append(out, d)
		}
	}
	return out
}
