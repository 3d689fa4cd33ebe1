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

// Package simapi narrows sim.Manager to the single Engine surface spec §6
// describes as the engine's language-independent, library-facing contract.
package simapi

import (
	"github.com/stationeers/simcore/atmos"
	"github.com/stationeers/simcore/cable"
	"github.com/stationeers/simcore/chip"
	"github.com/stationeers/simcore/common"
	"github.com/stationeers/simcore/device"
	"github.com/stationeers/simcore/sim"
)

// Engine is spec §6's complete external surface: construction happens
// before this interface is obtained (NewEngine plays the role of
// `new_simulation()`), everything below it is a method call.
type Engine interface {
	// Registry introspection.
	DevicePrefabHashes() []int32
	DevicePrefabInfo(hash int32) (*device.PrefabInfo, error)
	ItemPrefabHashes() []int32
	ItemPrefabInfo(hash int32) (*device.ItemPrefabInfo, error)

	// Factories.
	CreateDevice(prefabHash int32) (*device.Device, error)
	CreateCableNetwork() *cable.Network
	CreateAtmosphericNetwork(volumeLiters float64) (*atmos.Network, error)
	CreateChip() *chip.Chip
	CreateItem(prefabHash int32) (*device.Item, error)

	// Listers.
	AllDevices() []*device.Device
	AllCableNetworks() []*cable.Network
	AllAtmosphericNetworks() []*atmos.Network

	// Removal.
	RemoveDevice(refID common.ReferenceId) bool
	RemoveCableNetwork(id common.NetworkID) bool
	RemoveAtmosphericNetwork(id common.NetworkID) bool

	// Tick.
	Update() uint64
	CurrentTick() uint64
}

// engine is Engine's sole production implementation, a thin adapter from
// prefab-hash-taking API calls to sim.Manager's prefab-pointer-taking
// methods.
type engine struct {
	m *sim.Manager
}

// NewEngine constructs a fresh simulation and returns it behind the Engine
// interface — spec §6's `new_simulation()`.
func NewEngine() Engine {
	return &engine{m: sim.NewManager()}
}

func (e *engine) DevicePrefabHashes() []int32 { return device.PrefabHashes() }

func (e *engine) DevicePrefabInfo(hash int32) (*device.PrefabInfo, error) {
	p, ok := device.PrefabByHash(hash)
	if !ok {
		return nil, common.ErrNotFound
	}
	return p, nil
}

func (e *engine) ItemPrefabHashes() []int32 { return device.ItemPrefabHashes() }

func (e *engine) ItemPrefabInfo(hash int32) (*device.ItemPrefabInfo, error) {
	p, ok := device.ItemPrefabByHash(hash)
	if !ok {
		return nil, common.ErrNotFound
	}
	return p, nil
}

func (e *engine) CreateDevice(prefabHash int32) (*device.Device, error) {
	p, ok := device.PrefabByHash(prefabHash)
	if !ok {
		return nil, common.ErrNotFound
	}
	return e.m.CreateDevice(p), nil
}

func (e *engine) CreateCableNetwork() *cable.Network { return e.m.CreateCableNetwork() }

func (e *engine) CreateAtmosphericNetwork(volumeLiters float64) (*atmos.Network, error) {
	return e.m.CreateAtmosphericNetwork(volumeLiters)
}

func (e *engine) CreateChip() *chip.Chip { return e.m.CreateChip() }

func (e *engine) CreateItem(prefabHash int32) (*device.Item, error) {
	p, ok := device.ItemPrefabByHash(prefabHash)
	if !ok {
		return nil, common.ErrNotFound
	}
	return e.m.CreateItem(p), nil
}

func (e *engine) AllDevices() []*device.Device                     { return e.m.AllDevices() }
func (e *engine) AllCableNetworks() []*cable.Network                { return e.m.AllCableNetworks() }
func (e *engine) AllAtmosphericNetworks() []*atmos.Network          { return e.m.AllAtmosphericNetworks() }

func (e *engine) RemoveDevice(refID common.ReferenceId) bool {
	return e.m.RemoveDevice(refID) == nil
}

func (e *engine) RemoveCableNetwork(id common.NetworkID) bool {
	return e.m.RemoveCableNetwork(id) == nil
}

func (e *engine) RemoveAtmosphericNetwork(id common.NetworkID) bool {
	return e.m.RemoveAtmosphericNetwork(id) == nil
}

func (e *engine) Update() uint64      { return e.m.Update() }
func (e *engine) CurrentTick() uint64 { return e.m.CurrentTick() }
