// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package gas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestIdealGasSanity reproduces spec §8 scenario 2: V=100L, 100 mol Oxygen
// at 293.15K.
func TestIdealGasSanity(t *testing.T) {
	m := New(100)
	require.NoError(t, m.Add(Oxygen, 100, 293.15))

	require.InDelta(t, 293.15, m.Temperature(), 1e-6)
	require.InDelta(t, 100*8.314*293.15/100, m.Pressure(), 1e-3)
	require.InDelta(t, 1.0, m.GasRatio(Oxygen), 1e-12)
}

func TestAddRemoveRoundTrip(t *testing.T) {
	m := New(50)
	require.NoError(t, m.Add(Nitrogen, 10, 300))
	before := m.Energy(Nitrogen)
	require.NoError(t, m.Add(Nitrogen, 5, 310))
	require.NoError(t, m.Remove(Nitrogen, 5))

	require.InDelta(t, 10, m.Moles(Nitrogen), 1e-9)
	// Energy is not a clean inverse of the add+remove round-trip (the added
	// portion was at 310K, while the removed portion is a proportional share
	// of the post-add mixture at its mixed temperature) — so we only assert
	// moles conservation here exactly and energy non-negativity.
	require.GreaterOrEqual(t, m.Energy(Nitrogen), 0.0)
	_ = before
}

func TestRemoveExactZero(t *testing.T) {
	m := New(10)
	require.NoError(t, m.Add(CarbonDioxide, 4, 280))
	require.NoError(t, m.Remove(CarbonDioxide, 4))
	require.Equal(t, 0.0, m.Moles(CarbonDioxide))
	require.Equal(t, 0.0, m.Energy(CarbonDioxide))
}

func TestRemoveClampsOnOverdraw(t *testing.T) {
	m := New(10)
	require.NoError(t, m.Add(Hydrogen, 2, 280))
	err := m.Remove(Hydrogen, 5)
	require.Error(t, err)
	require.Equal(t, 0.0, m.Moles(Hydrogen))
	require.Equal(t, 0.0, m.Energy(Hydrogen))
}

func TestMergeConservesMolesAndEnergy(t *testing.T) {
	a := New(50)
	b := New(50)
	require.NoError(t, a.Add(Oxygen, 10, 300))
	require.NoError(t, b.Add(Oxygen, 5, 400))

	wantMoles := a.Moles(Oxygen) + b.Moles(Oxygen)
	wantEnergy := a.Energy(Oxygen) + b.Energy(Oxygen)

	a.Merge(b)

	require.InDelta(t, wantMoles, a.Moles(Oxygen), 1e-9)
	require.InDelta(t, wantEnergy, a.Energy(Oxygen), 1e-9)
	require.Equal(t, 0.0, b.Moles(Oxygen))
	require.Equal(t, 0.0, b.Energy(Oxygen))
}

func TestEmptyMixtureTemperatureAndPressureAreZero(t *testing.T) {
	m := New(10)
	require.Equal(t, 0.0, m.Temperature())
	require.Equal(t, 0.0, m.Pressure())
}

func TestSetVolumeIsIsothermal(t *testing.T) {
	m := New(100)
	require.NoError(t, m.Add(Nitrogen, 10, 300))
	p1 := m.Pressure()
	require.NoError(t, m.SetVolume(50))
	p2 := m.Pressure()
	require.InDelta(t, 2*p1, p2, 1e-6)
	require.InDelta(t, 300, m.Temperature(), 1e-6) // isothermal: T unchanged
}

func TestSetVolumeRejectsNonPositive(t *testing.T) {
	m := New(10)
	require.Error(t, m.SetVolume(0))
	require.Error(t, m.SetVolume(-5))
}

func TestSetTemperatureRescalesEnergy(t *testing.T) {
	m := New(10)
	require.NoError(t, m.Add(Oxygen, 10, 250))
	m.SetTemperature(350)
	require.InDelta(t, 350, m.Temperature(), 1e-6)
}

func TestNeverNegativeAfterSequence(t *testing.T) {
	m := New(20)
	require.NoError(t, m.Add(Steam, 3, 400))
	_ = m.Remove(Steam, 100) // overdraw, clamps
	require.NoError(t, m.Add(Steam, 1, 400))
	for i := 0; i < Count(); i++ {
		require.GreaterOrEqual(t, m.Moles(Species(i)), 0.0)
		require.GreaterOrEqual(t, m.Energy(Species(i)), 0.0)
	}
}

func TestSpeciesStringAndNaNGuard(t *testing.T) {
	require.Equal(t, "Oxygen", Oxygen.String())
	require.False(t, math.IsNaN(Oxygen.Cv()))
}
