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
	"github.com/stationeers/simcore/gas"
)

// updateFiltration moves up to Setting moles/tick of the species selected
// by Mode from Input to AtmosOutput, at the Input mixture's own
// temperature for that species, whenever On is nonzero. Unselected species
// are left untouched; moles and energy are conserved exactly (spec §8
// scenario 5).
func updateFiltration(d *device.Device, _ uint64, _ Resolver) bool {
	on, err := d.Read(device.On)
	if err != nil || on == 0 {
		return false
	}
	in := d.Atmospheric(device.Input)
	out := d.Atmospheric(device.AtmosOutput)
	if in == nil || out == nil {
		return false
	}
	rate, _ := d.Read(device.Setting)
	if rate <= 0 {
		return false
	}
	mode, _ := d.Read(device.Mode)
	species := gas.Species(clampInt(int(mode), 0, gas.Count()-1))

	src := in.Mixture()
	available := src.Moles(species)
	transfer := rate
	if transfer > available {
		transfer = available
	}
	if transfer <= 0 {
		return false
	}
	srcTemp := src.Energy(species) / (available * species.Cv())
	_ = out.Mixture().Add(species, transfer, srcTemp)
	_ = src.Remove(species, transfer)
	return true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
