// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The ProbeChain is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the ProbeChain. If not, see <http://www.gnu.org/licenses/>.

// Package behavior implements the per-prefab tick update functions that run
// between atmospheric equalization and chip execution (spec §4.7): each
// device kind observes its attached atmospheric/cable state and derives or
// mutates its own logic properties. Dispatch is by prefab identity, the
// same closed-switch style the engine uses everywhere else a device's kind
// selects its behavior (spec §9 "Polymorphic devices").
package behavior

import (
	"github.com/stationeers/simcore/common"
	"github.com/stationeers/simcore/device"
)

// Resolver looks up a live device by reference id, the same narrow
// capability ic10/vm.World grants the interpreter. Only StructureSolarPanel
// currently needs it, to read a cable-networked daylight sensor's output
// within the same tick (spec §4.7 same-tick read-after-write ordering).
type Resolver func(id common.ReferenceId) (*device.Device, bool)

// updateFunc is one prefab's per-tick behavior. It reports whether it
// actually changed the device's observable state, so the manager's change
// accounting doesn't count a tick where a behavior's inputs (and therefore
// its outputs) were unchanged (spec §2/§4.7/§8 idempotence).
type updateFunc func(d *device.Device, tick uint64, resolve Resolver) bool

var registry = map[*device.PrefabInfo]updateFunc{
	device.StructureGasFiltration:  updateFiltration,
	device.StructureDaylightSensor: updateDaylightSensor,
	device.StructureLogicMemory:    updateLogicMemory,
	device.StructureCircuitHousing: updateCircuitHousing,
	device.StructureGasSensor:      updateGasSensor,
	device.StructureSolarPanel:     updateSolarPanel,
}

// Update runs d's per-tick behavior, if its prefab declares one, and
// reports whether it changed the device's state. tick is the manager's
// current tick counter; resolve lets a behavior look up other devices on
// its cable network. Unknown prefabs (none exist outside the registry
// today, but the registry is keyed defensively) are a no-op.
func Update(d *device.Device, tick uint64, resolve Resolver) bool {
	if fn, ok := registry[d.Prefab]; ok {
		return fn(d, tick, resolve)
	}
	return false
}
