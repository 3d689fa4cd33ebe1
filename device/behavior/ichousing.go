// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package behavior

import "github.com/stationeers/simcore/device"

// updateCircuitHousing is a no-op: a chip host's chip runs in the manager's
// separate chip-execution phase (ic10/vm.RunTick), not this behavior phase
// (spec §4.7). Registered explicitly so the dispatch table documents every
// prefab rather than relying on an implicit fallthrough.
func updateCircuitHousing(d *device.Device, _ uint64, _ Resolver) bool { return false }
