// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package cable

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReduceEmptyBatchIsZeroForEveryMode(t *testing.T) {
	for _, m := range []ReducerMode{Average, Sum, Minimum, Maximum, Force, Partial} {
		require.Zero(t, m.Reduce(nil), m.String())
	}
}

func TestReduceForceReturnsFirstAnsweringDevice(t *testing.T) {
	require.Equal(t, 1.0, Force.Reduce([]float64{1, 2, 3}))
}

func TestReducePartialAveragesAnsweringDevices(t *testing.T) {
	require.Equal(t, 2.0, Partial.Reduce([]float64{1, 2, 3}))
}

func TestReduceMinimumIgnoresNaN(t *testing.T) {
	require.Equal(t, 1.0, Minimum.Reduce([]float64{math.NaN(), 3, 1, 2}))
}

func TestReduceMaximumIgnoresNaN(t *testing.T) {
	require.Equal(t, 3.0, Maximum.Reduce([]float64{math.NaN(), 3, 1, 2}))
}

func TestReduceMinimumAllNaNIsZero(t *testing.T) {
	require.Equal(t, 0.0, Minimum.Reduce([]float64{math.NaN(), math.NaN()}))
}
