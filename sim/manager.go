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

// Package sim implements the SimulationManager: exclusive owner of every
// device, cable network, and atmospheric network in a session, and the
// four-phase tick that advances them (spec §4.7). The manager is the only
// production implementation of ic10/vm.World.
package sim

import (
	"sort"
	"sync"

	"github.com/stationeers/simcore/atmos"
	"github.com/stationeers/simcore/cable"
	"github.com/stationeers/simcore/chip"
	"github.com/stationeers/simcore/common"
	"github.com/stationeers/simcore/device"
	"github.com/stationeers/simcore/device/behavior"
	"github.com/stationeers/simcore/ic10/vm"
	"github.com/stationeers/simcore/log"
)

// recentTouchCapacity bounds the journal's cross-tick recency cache,
// independent of any single tick's change set.
const recentTouchCapacity = 4096

// pipe is a manager-registered equalization link between two atmospheric
// networks — spec §4.7 phase 1's "pending diffusion/equalization" for the
// case where two rooms are connected by ducting rather than sharing a
// single Network object outright (spec §9 "Shared network references":
// devices on the same room already reference one Network and need no
// pipe).
type pipe struct {
	a, b common.NetworkID
}

// Manager owns every entity in a session and advances them one tick at a
// time. All exported methods are safe for concurrent use (spec §5 "the host
// invokes update() from one thread", but API reads may come from another —
// spec §9 "concurrent-looking UI").
type Manager struct {
	mu sync.Mutex

	tick    uint64
	nextRef common.ReferenceId

	devices       map[common.ReferenceId]*device.Device
	cableNetworks map[common.NetworkID]*cable.Network
	atmosNetworks map[common.NetworkID]*atmos.Network
	pipes         []pipe

	journal *journal
	log     log.Logger
	cfg     Config
}

// NewManager creates an empty manager at tick 0, using Defaults().
func NewManager() *Manager {
	return NewManagerWithConfig(Defaults())
}

// NewManagerWithConfig creates an empty manager at tick 0 using cfg, with
// any zero field filled from Defaults().
func NewManagerWithConfig(cfg Config) *Manager {
	return &Manager{
		devices:       make(map[common.ReferenceId]*device.Device),
		cableNetworks: make(map[common.NetworkID]*cable.Network),
		atmosNetworks: make(map[common.NetworkID]*atmos.Network),
		journal:       newJournal(recentTouchCapacity),
		log:           log.New("pkg", "sim"),
		cfg:           cfg.normalize(),
	}
}

// CreateDevice allocates a new device of the given prefab and registers it.
func (m *Manager) CreateDevice(prefab *device.PrefabInfo) *device.Device {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextRef++
	d := device.New(m.nextRef, prefab)
	m.devices[d.ReferenceId] = d
	m.journal.touch(d.ReferenceId)
	return d
}

// CreateCableNetwork allocates and registers a new, empty cable network.
func (m *Manager) CreateCableNetwork() *cable.Network {
	m.mu.Lock()
	defer m.mu.Unlock()
	net := cable.New()
	m.cableNetworks[net.ID()] = net
	return net
}

// CreateAtmosphericNetwork allocates and registers a new, empty atmospheric
// network of the given volume.
func (m *Manager) CreateAtmosphericNetwork(volumeLiters float64) (*atmos.Network, error) {
	net, err := atmos.New(volumeLiters)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.atmosNetworks[net.ID()] = net
	return net, nil
}

// CreateChip allocates a fresh, unloaded IC10 chip. Chips are not tracked
// by the manager directly; they become reachable once installed into an
// IC-host device via Device.SetChip.
func (m *Manager) CreateChip() *chip.Chip {
	return chip.New()
}

// CreateItem allocates an item of the given item prefab.
func (m *Manager) CreateItem(prefab *device.ItemPrefabInfo) *device.Item {
	return device.NewItem(prefab.Hash, prefab.MaxQuantity)
}

// ConnectAtmosphericPipe registers an equalization link between two
// atmospheric networks, applied every tick's phase 1 until disconnected.
// Both networks must already be registered with the manager.
func (m *Manager) ConnectAtmosphericPipe(a, b common.NetworkID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.atmosNetworks[a]; !ok {
		return common.ErrNotFound
	}
	if _, ok := m.atmosNetworks[b]; !ok {
		return common.ErrNotFound
	}
	m.pipes = append(m.pipes, pipe{a: a, b: b})
	return nil
}

// AllDevices returns every registered device, ordered by ascending
// referenceId (spec §5 ordering guarantee).
func (m *Manager) AllDevices() []*device.Device {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sortedDevicesLocked()
}

func (m *Manager) sortedDevicesLocked() []*device.Device {
	out := make([]*device.Device, 0, len(m.devices))
	for _, d := range m.devices {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReferenceId < out[j].ReferenceId })
	return out
}

// AllCableNetworks returns every registered cable network.
func (m *Manager) AllCableNetworks() []*cable.Network {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*cable.Network, 0, len(m.cableNetworks))
	for _, n := range m.cableNetworks {
		out = append(out, n)
	}
	return out
}

// AllAtmosphericNetworks returns every registered atmospheric network.
func (m *Manager) AllAtmosphericNetworks() []*atmos.Network {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*atmos.Network, 0, len(m.atmosNetworks))
	for _, n := range m.atmosNetworks {
		out = append(out, n)
	}
	return out
}

// RemoveDevice unregisters a device. Any chip it hosts and any network
// attachments it holds are abandoned along with it; the networks
// themselves are untouched.
func (m *Manager) RemoveDevice(id common.ReferenceId) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.devices[id]; !ok {
		return common.ErrNotFound
	}
	delete(m.devices, id)
	m.journal.touch(id)
	return nil
}

// RemoveCableNetwork unregisters a cable network.
func (m *Manager) RemoveCableNetwork(id common.NetworkID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cableNetworks[id]; !ok {
		return common.ErrNotFound
	}
	delete(m.cableNetworks, id)
	return nil
}

// RemoveAtmosphericNetwork unregisters an atmospheric network and any
// pipes connected to it.
func (m *Manager) RemoveAtmosphericNetwork(id common.NetworkID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.atmosNetworks[id]; !ok {
		return common.ErrNotFound
	}
	delete(m.atmosNetworks, id)
	kept := m.pipes[:0]
	for _, p := range m.pipes {
		if p.a != id && p.b != id {
			kept = append(kept, p)
		}
	}
	m.pipes = kept
	return nil
}

// Device resolves a reference id to its live device. This is the sole
// method ic10/vm.World requires; Manager satisfies it directly.
func (m *Manager) Device(id common.ReferenceId) (*device.Device, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.devices[id]
	return d, ok
}

// lockedWorld resolves devices without re-acquiring m.mu, for use strictly
// inside Update, which already holds the lock for the tick's duration.
// Calling the exported Device method from there would deadlock against a
// non-reentrant sync.Mutex.
type lockedWorld struct{ m *Manager }

func (w lockedWorld) Device(id common.ReferenceId) (*device.Device, bool) {
	d, ok := w.m.devices[id]
	return d, ok
}

// CurrentTick returns the number of completed ticks.
func (m *Manager) CurrentTick() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tick
}

// Update runs one simulation tick through its four ordered phases (spec
// §4.7) and returns the aggregate change count for phase 4.
func (m *Manager) Update() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.journal.reset()

	// Phase 1: atmospheric physics.
	for _, p := range m.pipes {
		a, okA := m.atmosNetworks[p.a]
		b, okB := m.atmosNetworks[p.b]
		if !okA || !okB {
			continue
		}
		atmos.Equalize(a, b)
		m.journal.touchUntracked()
	}

	devices := m.sortedDevicesLocked()
	world := lockedWorld{m}

	// Phase 2: device behavior, ascending referenceId order.
	for _, d := range devices {
		if behavior.Update(d, m.tick, world.Device) {
			m.journal.touch(d.ReferenceId)
		}
	}

	// Phase 3: chip execution, ascending referenceId order. Reads and
	// writes within a chip's tick observe the post-phase-2 state set
	// above; writes are visible to later chips in the same tick because
	// devices is a fixed snapshot of ids but m.devices itself is live.
	for _, d := range devices {
		if !d.HasChip() {
			continue
		}
		c := d.GetChip()
		executed := vm.RunTickN(c, d, world, m.cfg.InstructionsPerTick)
		if executed > 0 {
			m.journal.touch(d.ReferenceId)
		}
	}

	// Phase 4: change accounting.
	m.tick++
	return uint64(len(m.journal.entries))
}
