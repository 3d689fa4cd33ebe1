// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package behavior

import "github.com/stationeers/simcore/device"

// updateGasSensor is a no-op: every property StructureGasSensor exposes
// (Pressure, Temperature, TotalMoles, Ratio*) is a derivedRead computed
// live from the attached Input network at Read time, so there is nothing
// for a per-tick hook to precompute or store.
func updateGasSensor(d *device.Device, _ uint64, _ Resolver) bool { return false }
