// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package behavior

import (
	"testing"

	"github.com/stationeers/simcore/atmos"
	"github.com/stationeers/simcore/cable"
	"github.com/stationeers/simcore/common"
	"github.com/stationeers/simcore/device"
	"github.com/stationeers/simcore/gas"
	"github.com/stretchr/testify/require"
)

// TestFiltrationTransfersSelectedSpeciesOnly is spec §8 scenario 5 verbatim:
// Input holds 10 mol Volatiles + 10 mol Oxygen at 300K in a 100L container,
// Output starts empty at the same volume. The filter selects Volatiles and
// is configured to move up to 5 mol/tick. One update must move exactly 5
// mol of Volatiles, leave Oxygen untouched, and conserve total moles.
func TestFiltrationTransfersSelectedSpeciesOnly(t *testing.T) {
	in, err := atmos.New(100)
	require.NoError(t, err)
	require.NoError(t, in.Mixture().Add(gas.Volatiles, 10, 300))
	require.NoError(t, in.Mixture().Add(gas.Oxygen, 10, 300))

	out, err := atmos.New(100)
	require.NoError(t, err)

	d := device.New(1, device.StructureGasFiltration)
	require.NoError(t, d.AttachAtmospheric(device.Input, in))
	require.NoError(t, d.AttachAtmospheric(device.AtmosOutput, out))
	require.NoError(t, d.Write(device.On, 1))
	require.NoError(t, d.Write(device.Mode, float64(gas.Volatiles)))
	require.NoError(t, d.Write(device.Setting, 5))

	totalBefore := in.TotalMoles() + out.TotalMoles()

	Update(d, 0, nil)

	require.InDelta(t, 5, in.Mixture().Moles(gas.Volatiles), 1e-9)
	require.InDelta(t, 5, out.Mixture().Moles(gas.Volatiles), 1e-9)
	require.InDelta(t, 10, in.Mixture().Moles(gas.Oxygen), 1e-9)
	require.InDelta(t, 0, out.Mixture().Moles(gas.Oxygen), 1e-9)
	require.InDelta(t, totalBefore, in.TotalMoles()+out.TotalMoles(), 1e-9)
	require.InDelta(t, 300, out.Mixture().Temperature(), 1e-6)
}

func TestFiltrationOffIsNoop(t *testing.T) {
	in, err := atmos.New(100)
	require.NoError(t, err)
	require.NoError(t, in.Mixture().Add(gas.Volatiles, 10, 300))
	out, err := atmos.New(100)
	require.NoError(t, err)

	d := device.New(1, device.StructureGasFiltration)
	require.NoError(t, d.AttachAtmospheric(device.Input, in))
	require.NoError(t, d.AttachAtmospheric(device.AtmosOutput, out))
	require.NoError(t, d.Write(device.Mode, float64(gas.Volatiles)))
	require.NoError(t, d.Write(device.Setting, 5))

	Update(d, 0, nil)

	require.InDelta(t, 10, in.Mixture().Moles(gas.Volatiles), 1e-9)
	require.InDelta(t, 0, out.Mixture().Moles(gas.Volatiles), 1e-9)
}

func TestDaylightSensorCyclesBetweenZeroAndOne(t *testing.T) {
	d := device.New(1, device.StructureDaylightSensor)

	Update(d, 0, nil)
	dawn, err := d.Read(device.Solar)
	require.NoError(t, err)
	require.InDelta(t, 0, dawn, 1e-9)

	Update(d, 3000, nil) // quarter cycle: peak daylight
	peak, err := d.Read(device.Solar)
	require.NoError(t, err)
	require.InDelta(t, 1, peak, 1e-6)

	Update(d, 9000, nil) // three-quarter cycle: night
	night, err := d.Read(device.Solar)
	require.NoError(t, err)
	require.InDelta(t, 0, night, 1e-9)
}

func TestLogicMemoryClearResetsSettingOnce(t *testing.T) {
	d := device.New(1, device.StructureLogicMemory)
	require.NoError(t, d.Write(device.Setting, 42))
	require.NoError(t, d.Write(device.ClearMemory, 1))

	Update(d, 0, nil)
	v, err := d.Read(device.Setting)
	require.NoError(t, err)
	require.InDelta(t, 0, v, 1e-9)

	require.NoError(t, d.Write(device.Setting, 7))
	Update(d, 1, nil) // ClearMemory already consumed; Setting must survive
	v, err = d.Read(device.Setting)
	require.NoError(t, err)
	require.InDelta(t, 7, v, 1e-9)
}

func TestSolarPanelReadsDaylightSensorOverCableNetwork(t *testing.T) {
	sensor := device.New(1, device.StructureDaylightSensor)
	panel := device.New(2, device.StructureSolarPanel)

	devices := map[common.ReferenceId]*device.Device{
		sensor.ReferenceId: sensor,
		panel.ReferenceId:  panel,
	}
	resolve := func(id common.ReferenceId) (*device.Device, bool) {
		d, ok := devices[id]
		return d, ok
	}

	net := cable.New()
	sensor.AttachCable(net)
	panel.AttachCable(net)

	Update(sensor, 3000, resolve) // peak daylight, Solar -> 1
	Update(panel, 3000, resolve)

	gen, err := panel.Read(device.PowerGeneration)
	require.NoError(t, err)
	require.InDelta(t, 500, gen, 1e-6)
}
