// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package device

import (
	"github.com/stationeers/simcore/atmos"
	"github.com/stationeers/simcore/cable"
	"github.com/stationeers/simcore/chip"
	"github.com/stationeers/simcore/common"
	"github.com/stationeers/simcore/params"
)

// Device is the common struct every prefab kind shares; behavior dispatches
// on the Prefab pointer rather than an open class hierarchy (spec §9
// "Polymorphic devices").
type Device struct {
	ReferenceId common.ReferenceId
	NameHash    int32
	Prefab      *PrefabInfo

	values map[LogicType]float64
	slots  []Slot

	chip *chip.Chip

	cableNet *cable.Network
	atmos    [5]*atmos.Network // indexed by AtmosphericPort

	pins [params.DevicePinCount]common.ReferenceId

	internalMixtureOwner bool
}

// New creates a device of the given prefab with a fresh reference id and
// slots/pins sized to the prefab's declared capacity.
func New(refID common.ReferenceId, prefab *PrefabInfo) *Device {
	d := &Device{
		ReferenceId: refID,
		Prefab:      prefab,
		values:      make(map[LogicType]float64),
	}
	if prefab.IsSlotHost {
		d.slots = make([]Slot, len(prefab.SlotTypes))
		for i, st := range prefab.SlotTypes {
			d.slots[i] = Slot{Type: st}
		}
	}
	for i := range d.pins {
		d.pins[i] = common.InvalidReferenceId
	}
	return d
}

// Read returns the device's current value for logicType, per spec §4.4.
func (d *Device) Read(logicType LogicType) (float64, error) {
	pc, ok := d.Prefab.property(logicType)
	if !ok {
		return 0, common.NewRuntimeFault(common.FaultInvalidLogicType, 0, "logic type %s not declared by prefab %s", logicType, d.Prefab.DeviceName)
	}
	if !pc.Readable {
		return 0, common.NewRuntimeFault(common.FaultLogicUnreadable, 0, "logic type %s is not readable on %s", logicType, d.Prefab.DeviceName)
	}
	if v, derived, ok := d.derivedRead(logicType); ok {
		return v, derived
	}
	return d.values[logicType], nil
}

// derivedRead computes logic properties backed by an attached atmospheric
// network rather than the plain values map (e.g. RatioOxygen on a gas
// sensor). ok is false when logicType has no derived source, in which case
// the caller falls back to the stored value map.
func (d *Device) derivedRead(logicType LogicType) (float64, error, bool) {
	net := d.atmos[Input]
	if net == nil {
		return 0, nil, false
	}
	switch logicType {
	case Pressure:
		return net.Pressure(), nil, true
	case Temperature:
		return net.Temperature(), nil, true
	case TotalMoles:
		return net.TotalMoles(), nil, true
	case RatioOxygen:
		return net.GasRatio(ratioSpecies(RatioOxygen)), nil, true
	case RatioCarbonDioxide:
		return net.GasRatio(ratioSpecies(RatioCarbonDioxide)), nil, true
	case RatioNitrogen:
		return net.GasRatio(ratioSpecies(RatioNitrogen)), nil, true
	case RatioVolatiles:
		return net.GasRatio(ratioSpecies(RatioVolatiles)), nil, true
	case RatioPollutant:
		return net.GasRatio(ratioSpecies(RatioPollutant)), nil, true
	default:
		return 0, nil, false
	}
}

// Write sets logicType to value, clamping to the prefab's declared bounds
// rather than rejecting out-of-range writes (spec §4.4).
func (d *Device) Write(logicType LogicType, value float64) error {
	pc, ok := d.Prefab.property(logicType)
	if !ok {
		return common.NewRuntimeFault(common.FaultInvalidLogicType, 0, "logic type %s not declared by prefab %s", logicType, d.Prefab.DeviceName)
	}
	if !pc.Writable {
		return common.NewRuntimeFault(common.FaultLogicUnwritable, 0, "logic type %s is not writable on %s", logicType, d.Prefab.DeviceName)
	}
	d.values[logicType] = pc.clamp(value)
	return nil
}

// ReadSlot returns the item occupying slot i, or nil if empty.
func (d *Device) ReadSlot(i int) (*Item, error) {
	if !d.Prefab.IsSlotHost {
		return nil, common.ErrNotSlotHost
	}
	if i < 0 || i >= len(d.slots) {
		return nil, common.ErrNotFound
	}
	return d.slots[i].Item, nil
}

// RemoveItemFromSlot detaches and returns the item in slot i.
func (d *Device) RemoveItemFromSlot(i int) (*Item, error) {
	if !d.Prefab.IsSlotHost {
		return nil, common.ErrNotSlotHost
	}
	if i < 0 || i >= len(d.slots) {
		return nil, common.ErrNotFound
	}
	return d.slots[i].Remove(), nil
}

// InsertItemIntoSlot places item into slot i, returning any leftover that
// did not fit (spec §4.4).
func (d *Device) InsertItemIntoSlot(i int, item *Item) (*Item, error) {
	if !d.Prefab.IsSlotHost {
		return nil, common.ErrNotSlotHost
	}
	if i < 0 || i >= len(d.slots) {
		return nil, common.ErrNotFound
	}
	return d.slots[i].Insert(item), nil
}

// HasChip reports whether an IC chip is installed.
func (d *Device) HasChip() bool { return d.chip != nil }

// GetChip returns the installed chip, or nil if none.
func (d *Device) GetChip() *chip.Chip { return d.chip }

// SetChip installs c into the device. Only IC-host prefabs may host a chip;
// installing over an already-present chip is rejected (the caller must
// remove the existing one first).
func (d *Device) SetChip(c *chip.Chip) error {
	if !d.Prefab.IsIcHost {
		return common.ErrNotIcHost
	}
	if d.chip != nil {
		return common.ErrDeviceAlreadyHasChip
	}
	d.chip = c
	return nil
}

// RemoveChip detaches and returns the installed chip, or nil if none.
func (d *Device) RemoveChip() *chip.Chip {
	c := d.chip
	d.chip = nil
	return c
}

// SetDevicePin sets pin i to target, or to common.InvalidReferenceId to
// clear it. IC-host prefabs only.
func (d *Device) SetDevicePin(i int, target common.ReferenceId) error {
	if !d.Prefab.IsIcHost {
		return common.ErrNotIcHost
	}
	if i < 0 || i >= d.Prefab.PinCount {
		return common.NewRuntimeFault(common.FaultDeviceNotFound, 0, "pin index %d out of range", i)
	}
	d.pins[i] = target
	return nil
}

// GetDevicePin returns the referenceId attached to pin i.
func (d *Device) GetDevicePin(i int) (common.ReferenceId, error) {
	if i < 0 || i >= d.Prefab.PinCount {
		return common.InvalidReferenceId, common.NewRuntimeFault(common.FaultDeviceNotFound, 0, "pin index %d out of range", i)
	}
	return d.pins[i], nil
}

// GetDevicePinCount returns the prefab's declared pin count.
func (d *Device) GetDevicePinCount() int { return d.Prefab.PinCount }

// AttachCable attaches the device's single cable-network slot to net,
// removing it from any prior cable network first (spec §3 invariants).
func (d *Device) AttachCable(net *cable.Network) {
	if d.cableNet != nil {
		d.cableNet.RemoveDevice(d.ReferenceId)
	}
	d.cableNet = net
	if net != nil {
		net.AddDevice(d.ReferenceId)
	}
}

// CableNetwork returns the device's attached cable network, or nil.
func (d *Device) CableNetwork() *cable.Network { return d.cableNet }

// AttachAtmospheric attaches port to net. Internal is never reachable by
// user wiring (spec §3); attaching to it is a DomainError.
func (d *Device) AttachAtmospheric(port AtmosphericPort, net *atmos.Network) error {
	if port == Internal {
		return common.ErrIncompatiblePort
	}
	if !d.Prefab.supportsPort(port) {
		return common.ErrIncompatiblePort
	}
	d.atmos[port] = net
	return nil
}

// ClearAtmospheric detaches port, leaving it unattached.
func (d *Device) ClearAtmospheric(port AtmosphericPort) {
	d.atmos[port] = nil
}

// Atmospheric returns the network attached to port, or nil.
func (d *Device) Atmospheric(port AtmosphericPort) *atmos.Network { return d.atmos[port] }

// SetInternal writes value for logicType without checking the prefab's
// Writable flag. Behaviors use this for properties a prefab declares
// read-only to IC10 and cable writes but that the engine itself must still
// derive and store each tick (e.g. a daylight sensor's Solar output).
// logicType must still be declared by the prefab; an undeclared type is
// silently ignored, since this is an engine-internal path with no
// caller-facing error to report.
func (d *Device) SetInternal(logicType LogicType, value float64) {
	if _, ok := d.Prefab.property(logicType); !ok {
		return
	}
	d.values[logicType] = value
}

// ConsumeClearMemory reports whether ClearMemory has been set since the
// last call and resets it to 0. ClearMemory is write-only (spec §4.4
// property contract), so StructureLogicMemory's behavior consumes it this
// way rather than through Read, which would reject the unreadable type.
func (d *Device) ConsumeClearMemory() bool {
	if d.values[ClearMemory] == 0 {
		return false
	}
	d.values[ClearMemory] = 0
	return true
}

func (p *PrefabInfo) supportsPort(port AtmosphericPort) bool {
	for _, c := range p.AtmosphericConnections {
		if c == port {
			return true
		}
	}
	return false
}

// ratioSpecies (gasratio.go) maps a Ratio* LogicType to its gas.Species.
