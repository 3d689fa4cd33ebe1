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

	"github.com/stretchr/testify/require"
)

// TestSleepRoundsFractionalSecondsUp exercises spec §5's ceil(n*ticks_per_second):
// a fractional sleep must never under-wait. At 10 ticks/s, 0.15s is 1.5
// ticks, which truncation would round down to 1 tick but ceiling correctly
// rounds up to 2.
func TestSleepRoundsFractionalSecondsUp(t *testing.T) {
	c, _ := runProgram(t, "sleep 0.15\nyield\n")
	require.True(t, c.ConsumeSleepTick())
	require.True(t, c.ConsumeSleepTick())
	require.False(t, c.ConsumeSleepTick())
}

func TestSleepZeroDoesNotBlock(t *testing.T) {
	c, _ := runProgram(t, "sleep 0\nyield\n")
	require.False(t, c.ConsumeSleepTick())
}
