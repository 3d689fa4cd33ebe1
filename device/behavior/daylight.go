// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package behavior

import (
	"math"

	"github.com/stationeers/simcore/device"
	"github.com/stationeers/simcore/params"
)

// updateDaylightSensor derives Solar (0..1, zero through the night half of
// the cycle) and SolarAngle (0..360) from the manager's tick counter. Both
// are IC10/cable read-only (spec §4.4 property contract), so they're set
// through SetInternal rather than Write.
func updateDaylightSensor(d *device.Device, tick uint64, _ Resolver) bool {
	phase := tick % params.DayLengthTicks
	angle := float64(phase) / float64(params.DayLengthTicks) * 360

	solar := math.Sin(2 * math.Pi * float64(phase) / float64(params.DayLengthTicks))
	if solar < 0 {
		solar = 0
	}

	prevSolar, _ := d.Read(device.Solar)
	prevAngle, _ := d.Read(device.SolarAngle)

	d.SetInternal(device.Solar, solar)
	d.SetInternal(device.SolarAngle, angle)

	return solar != prevSolar || angle != prevAngle
}
