// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package behavior

import "github.com/stationeers/simcore/device"

// updateLogicMemory resets Setting to 0 the tick after ClearMemory is
// written nonzero, then clears the flag (spec §4.4: ClearMemory is
// write-only, a one-shot trigger rather than a persistent state bit).
func updateLogicMemory(d *device.Device, _ uint64, _ Resolver) bool {
	if d.ConsumeClearMemory() {
		_ = d.Write(device.Setting, 0)
		return true
	}
	return false
}
