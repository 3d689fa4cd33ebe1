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

	"github.com/stationeers/simcore/cable"
	"github.com/stationeers/simcore/chip"
	"github.com/stationeers/simcore/common"
	"github.com/stationeers/simcore/device"
	"github.com/stationeers/simcore/ic10/parser"
	"github.com/stretchr/testify/require"
)

type fakeWorld struct {
	devices map[common.ReferenceId]*device.Device
}

func newFakeWorld() *fakeWorld { return &fakeWorld{devices: make(map[common.ReferenceId]*device.Device)} }

func (w *fakeWorld) add(d *device.Device) { w.devices[d.ReferenceId] = d }

func (w *fakeWorld) Device(id common.ReferenceId) (*device.Device, bool) {
	d, ok := w.devices[id]
	return d, ok
}

func mustLoad(t *testing.T, c *chip.Chip, src string) {
	t.Helper()
	prog, err := parser.Parse(src)
	require.NoError(t, err)
	c.Load(src, prog)
}

func TestRunTickLoopProgram(t *testing.T) {
	c := chip.New()
	mustLoad(t, c, "move r0 0\nadd r0 r0 1\nblt r0 10 1\nyield\n")

	self := device.New(1, device.StructureCircuitHousing)
	world := newFakeWorld()
	world.add(self)

	executed := RunTick(c, self, world)
	require.False(t, c.Halted())
	require.InDelta(t, 10, c.Register(0), 1e-9)
	require.Greater(t, executed, 0)
}

func TestRunTickCableBatchReadSum(t *testing.T) {
	net := cable.New()

	self := device.New(1, device.StructureCircuitHousing)
	self.AttachCable(net)

	mems := make([]*device.Device, 3)
	for i := range mems {
		d := device.New(common.ReferenceId(10+i), device.StructureLogicMemory)
		require.NoError(t, d.Write(device.Setting, float64(i+1))) // 1, 2, 3
		d.AttachCable(net)
		mems[i] = d
	}

	world := newFakeWorld()
	world.add(self)
	for _, d := range mems {
		world.add(d)
	}

	hash := device.StructureLogicMemory.Hash
	src := "lb r0 " + itoa(hash) + " Setting 1\nyield\n"

	c := chip.New()
	mustLoad(t, c, src)

	RunTick(c, self, world)
	require.InDelta(t, 6, c.Register(0), 1e-9)
}

func TestRunTickFaultIsolation(t *testing.T) {
	world := newFakeWorld()

	selfA := device.New(1, device.StructureCircuitHousing)
	world.add(selfA)
	chipA := chip.New()
	mustLoad(t, chipA, "hcf\n")

	selfB := device.New(2, device.StructureCircuitHousing)
	world.add(selfB)
	chipB := chip.New()
	mustLoad(t, chipB, "move r0 5\nyield\n")

	RunTick(chipA, selfA, world)
	require.True(t, chipA.Halted())
	require.Equal(t, 0, chipA.ErrorLine())

	RunTick(chipB, selfB, world)
	require.False(t, chipB.Halted())
	require.InDelta(t, 5, chipB.Register(0), 1e-9)
}

func TestApproxEqualIsReflexiveAndSymmetric(t *testing.T) {
	vals := []float64{0, 1, -1, 1e6, -1e-9}
	for _, v := range vals {
		require.True(t, approxEqual(v, v))
	}
	require.Equal(t, approxEqual(1.0000000001, 1.0), approxEqual(1.0, 1.0000000001))
}

func itoa(n int32) string {
	neg := n < 0
	if neg {
		n = -n
	}
	if n == 0 {
		return "0"
	}
	var buf [12]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
