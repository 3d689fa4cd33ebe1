// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package vm

import (
	"testing"

	"github.com/stationeers/simcore/chip"
	"github.com/stationeers/simcore/device"
	"github.com/stretchr/testify/require"
)

func runProgram(t *testing.T, src string) (*chip.Chip, *device.Device) {
	t.Helper()
	c := chip.New()
	mustLoad(t, c, src)
	self := device.New(1, device.StructureCircuitHousing)
	world := newFakeWorld()
	world.add(self)
	for !c.Halted() {
		result, _ := Step(c, self, world)
		if result == StepYielded {
			break
		}
	}
	return c, self
}

func TestExecuteArithmetic(t *testing.T) {
	c, _ := runProgram(t, "add r0 2 3\nsub r1 10 4\nmul r2 3 4\ndiv r3 9 2\nsqrt r4 16\nyield\n")
	require.InDelta(t, 5, c.Register(0), 1e-9)
	require.InDelta(t, 6, c.Register(1), 1e-9)
	require.InDelta(t, 12, c.Register(2), 1e-9)
	require.InDelta(t, 4.5, c.Register(3), 1e-9)
	require.InDelta(t, 4, c.Register(4), 1e-9)
}

func TestExecuteCompare(t *testing.T) {
	c, _ := runProgram(t, "seq r0 3 3\nslt r1 3 5\nsgt r2 3 5\nyield\n")
	require.InDelta(t, 1, c.Register(0), 1e-9)
	require.InDelta(t, 1, c.Register(1), 1e-9)
	require.InDelta(t, 0, c.Register(2), 1e-9)
}

func TestExecuteSapWithExplicitTolerance(t *testing.T) {
	c, _ := runProgram(t, "sap r0 1.0 1.05 0.1\nsap r1 1.0 1.2 0.1\nyield\n")
	require.InDelta(t, 1, c.Register(0), 1e-9)
	require.InDelta(t, 0, c.Register(1), 1e-9)
}

func TestExecuteStackPushPopPeek(t *testing.T) {
	c, _ := runProgram(t, "push 7\npush 8\npeek r0\npop r1\npop r2\nyield\n")
	require.InDelta(t, 8, c.Register(0), 1e-9)
	require.InDelta(t, 8, c.Register(1), 1e-9)
	require.InDelta(t, 7, c.Register(2), 1e-9)
}

func TestExecuteStackUnderflowFaults(t *testing.T) {
	c := chip.New()
	mustLoad(t, c, "pop r0\n")
	self := device.New(1, device.StructureCircuitHousing)
	world := newFakeWorld()
	world.add(self)
	result, err := Step(c, self, world)
	require.Equal(t, StepFaulted, result)
	require.Error(t, err)
	require.True(t, c.Halted())
}

func TestExecuteJumpAndJal(t *testing.T) {
	c, _ := runProgram(t, "jal target\nj done\ntarget:\nmove r0 9\nj skip\ndone:\nmove r1 1\nskip:\nyield\n")
	require.InDelta(t, 9, c.Register(0), 1e-9)
}

func TestExecuteDeviceReadWrite(t *testing.T) {
	c := chip.New()
	mustLoad(t, c, "s db Setting 42\nl r0 db Setting\nyield\n")
	self := device.New(1, device.StructureLogicMemory)
	world := newFakeWorld()
	world.add(self)
	for !c.Halted() {
		result, _ := Step(c, self, world)
		if result == StepYielded {
			break
		}
	}
	require.InDelta(t, 42, c.Register(0), 1e-9)
}

func TestExecuteUnknownLogicTypeFaults(t *testing.T) {
	c := chip.New()
	mustLoad(t, c, "l r0 db Error\n")
	self := device.New(1, device.StructureLogicMemory)
	world := newFakeWorld()
	world.add(self)
	result, err := Step(c, self, world)
	require.Equal(t, StepFaulted, result)
	require.Error(t, err)
}
