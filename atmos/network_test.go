// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package atmos

import (
	"testing"

	"github.com/stationeers/simcore/gas"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsNonPositiveVolume(t *testing.T) {
	_, err := New(0)
	require.Error(t, err)
	_, err = New(-1)
	require.Error(t, err)
}

func TestEqualizeConservesTotals(t *testing.T) {
	a, err := New(100)
	require.NoError(t, err)
	b, err := New(100)
	require.NoError(t, err)

	require.NoError(t, a.Mixture().Add(gas.Oxygen, 100, 300))
	require.NoError(t, b.Mixture().Add(gas.Oxygen, 0, 300))

	wantMoles := a.TotalMoles() + b.TotalMoles()
	wantEnergy := a.Mixture().TotalEnergy() + b.Mixture().TotalEnergy()

	Equalize(a, b)

	require.InDelta(t, wantMoles, a.TotalMoles()+b.TotalMoles(), 1e-6)
	require.InDelta(t, wantEnergy, a.Mixture().TotalEnergy()+b.Mixture().TotalEnergy(), 1e-6)
	// Equal volumes => equal split.
	require.InDelta(t, 50, a.TotalMoles(), 1e-6)
	require.InDelta(t, 50, b.TotalMoles(), 1e-6)
}

func TestEqualizeWeightsByVolume(t *testing.T) {
	a, err := New(100) // 2x volume of b
	require.NoError(t, err)
	b, err := New(50)
	require.NoError(t, err)

	require.NoError(t, a.Mixture().Add(gas.Nitrogen, 30, 300))

	Equalize(a, b)

	require.InDelta(t, 20, a.TotalMoles(), 1e-6) // 2/3 share
	require.InDelta(t, 10, b.TotalMoles(), 1e-6) // 1/3 share
}

func TestEqualizeIsIdempotentAtEquilibrium(t *testing.T) {
	a, err := New(10)
	require.NoError(t, err)
	b, err := New(10)
	require.NoError(t, err)
	require.NoError(t, a.Mixture().Add(gas.CarbonDioxide, 10, 280))
	require.NoError(t, b.Mixture().Add(gas.CarbonDioxide, 10, 280))

	Equalize(a, b)
	m1 := a.TotalMoles()
	Equalize(a, b)
	require.InDelta(t, m1, a.TotalMoles(), 1e-9)
}
