// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package simapi

import (
	"testing"

	"github.com/stationeers/simcore/device"
	"github.com/stretchr/testify/require"
)

func TestEngineCreateDeviceByPrefabHash(t *testing.T) {
	e := NewEngine()

	d, err := e.CreateDevice(device.StructureLogicMemory.Hash)
	require.NoError(t, err)
	require.Equal(t, device.StructureLogicMemory, d.Prefab)

	_, err = e.CreateDevice(0x7fffffff)
	require.Error(t, err)
}

func TestEngineRegistryIntrospection(t *testing.T) {
	e := NewEngine()

	require.NotEmpty(t, e.DevicePrefabHashes())
	info, err := e.DevicePrefabInfo(device.StructureGasFiltration.Hash)
	require.NoError(t, err)
	require.Equal(t, "StructureGasFiltration", info.DeviceName)

	require.NotEmpty(t, e.ItemPrefabHashes())
	itemInfo, err := e.ItemPrefabInfo(device.ItemGasFilter.Hash)
	require.NoError(t, err)
	require.Equal(t, "ItemGasFilter", itemInfo.ItemName)
}

func TestEngineTickAndRemoval(t *testing.T) {
	e := NewEngine()
	d, err := e.CreateDevice(device.StructureDaylightSensor.Hash)
	require.NoError(t, err)

	require.Equal(t, uint64(0), e.CurrentTick())
	e.Update()
	require.Equal(t, uint64(1), e.CurrentTick())

	require.True(t, e.RemoveDevice(d.ReferenceId))
	require.False(t, e.RemoveDevice(d.ReferenceId))
}
