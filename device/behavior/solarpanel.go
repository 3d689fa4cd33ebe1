// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package behavior

import (
	"github.com/stationeers/simcore/device"
	"github.com/stationeers/simcore/params"
)

// updateSolarPanel looks for a daylight sensor sharing the panel's cable
// network and copies its Solar reading onto the panel's own Solar property
// before deriving PowerGeneration/PowerActual from it. Devices update in
// ascending reference-id order (spec §4.7), so a daylight sensor created
// before the panel has already run its own update this tick: this is the
// same-tick read-depends-on-another-device's-write case SPEC_FULL.md calls
// out. A panel with no daylight sensor on its network, or one wired
// directly by an IC10 program's `s` instruction instead, still works:
// Solar simply keeps whatever value was last written to it.
func updateSolarPanel(d *device.Device, _ uint64, resolve Resolver) bool {
	prevSolar, _ := d.Read(device.Solar)
	solar := prevSolar

	if net := d.CableNetwork(); net != nil && resolve != nil {
		for _, id := range net.DeviceIDs() {
			other, ok := resolve(id)
			if !ok || other == d || other.Prefab != device.StructureDaylightSensor {
				continue
			}
			if v, err := other.Read(device.Solar); err == nil {
				solar = v
				_ = d.Write(device.Solar, solar)
			}
			break
		}
	}

	prevGeneration, _ := d.Read(device.PowerGeneration)
	generation := solar * params.SolarPanelMaxOutput
	d.SetInternal(device.PowerGeneration, generation)
	d.SetInternal(device.PowerActual, generation)

	return solar != prevSolar || generation != prevGeneration
}
