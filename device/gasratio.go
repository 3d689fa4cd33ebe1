// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package device

import "github.com/stationeers/simcore/gas"

// ratioSpecies maps a device-facing Ratio* LogicType to the gas.Species it
// reads from an attached atmospheric network's mixture.
func ratioSpecies(l LogicType) gas.Species {
	switch l {
	case RatioOxygen:
		return gas.Oxygen
	case RatioCarbonDioxide:
		return gas.CarbonDioxide
	case RatioNitrogen:
		return gas.Nitrogen
	case RatioPollutant:
		return gas.Pollutant
	case RatioVolatiles:
		return gas.Volatiles
	case RatioNitrousOxide:
		return gas.NitrousOxide
	case RatioSteam:
		return gas.Steam
	case RatioHydrogen:
		return gas.Hydrogen
	case RatioWater:
		return gas.Water
	default:
		return gas.Oxygen
	}
}
