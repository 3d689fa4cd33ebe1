// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package device

import (
	"strings"

	"github.com/stationeers/simcore/hashutil"
)

// AtmosphericPort names one of a device's four external atmospheric
// attachment points plus the internal, non-wireable one.
type AtmosphericPort int

const (
	Internal AtmosphericPort = iota
	Input
	Input2
	AtmosOutput
	Output2
)

// SlotType constrains what an Item may occupy a Slot.
type SlotType int

const (
	SlotGeneric SlotType = iota
	SlotProgrammableChip
	SlotGasFilter
	SlotGasCanister
	SlotOre
)

var slotTypeNames = map[SlotType]string{
	SlotGeneric:          "Generic",
	SlotProgrammableChip: "ProgrammableChip",
	SlotGasFilter:        "GasFilter",
	SlotGasCanister:      "GasCanister",
	SlotOre:              "Ore",
}

func (s SlotType) String() string {
	if n, ok := slotTypeNames[s]; ok {
		return n
	}
	return "Unknown"
}

// ParseSlotType resolves a case-insensitive bareword to its SlotType.
func ParseSlotType(name string) (SlotType, bool) {
	lower := strings.ToLower(name)
	for st, n := range slotTypeNames {
		if strings.ToLower(n) == lower {
			return st, true
		}
	}
	return 0, false
}

// PrefabHash computes the canonical hash of a prefab's name, matching
// spec §4.8's documented hash algorithm.
func PrefabHash(name string) int32 { return hashutil.Hash(name) }

// PrefabInfo is the compile-time description of one device kind: spec
// §4.4's { deviceName, prefabHash, isIcHost, isSlotHost, isAtmosphericDevice,
// supportsCableNetwork, atmosphericConnections[], properties[] }.
type PrefabInfo struct {
	DeviceName            string
	Hash                  int32
	IsIcHost              bool
	IsSlotHost            bool
	IsAtmosphericDevice   bool
	SupportsCableNetwork  bool
	AtmosphericConnections []AtmosphericPort
	Properties            []PropertyContract
	SlotTypes             []SlotType // index i is slot i's accepted type
	PinCount              int        // device pins d0..d(PinCount-1), IC hosts only
}

func (p *PrefabInfo) property(l LogicType) (PropertyContract, bool) {
	for _, pc := range p.Properties {
		if pc.Type == l {
			return pc, true
		}
	}
	return PropertyContract{}, false
}

var prefabsByHash = map[int32]*PrefabInfo{}
var prefabsByName = map[string]*PrefabInfo{}

func register(p *PrefabInfo) *PrefabInfo {
	p.Hash = PrefabHash(p.DeviceName)
	prefabsByHash[p.Hash] = p
	prefabsByName[p.DeviceName] = p
	return p
}

// Static prefab registry: process-wide, read-only, single initialization
// point (spec §9 "Global registry").
var (
	StructureGasFiltration = register(&PrefabInfo{
		DeviceName:            "StructureGasFiltration",
		IsAtmosphericDevice:   true,
		SupportsCableNetwork:  true,
		AtmosphericConnections: []AtmosphericPort{Input, AtmosOutput},
		Properties: []PropertyContract{
			{Type: On, Readable: true, Writable: true, Min: 0, Max: 1},
			{Type: Mode, Readable: true, Writable: true, Min: 0, Max: 16},
			{Type: Setting, Readable: true, Writable: true, Min: 0, Max: 100},
			{Type: Pressure, Readable: true},
			{Type: Temperature, Readable: true},
		},
	})

	StructureDaylightSensor = register(&PrefabInfo{
		DeviceName:           "StructureDaylightSensor",
		SupportsCableNetwork: true,
		Properties: []PropertyContract{
			{Type: Solar, Readable: true},
			{Type: SolarAngle, Readable: true},
		},
	})

	StructureLogicMemory = register(&PrefabInfo{
		DeviceName:           "StructureLogicMemory",
		SupportsCableNetwork: true,
		Properties: []PropertyContract{
			{Type: Setting, Readable: true, Writable: true},
			{Type: ClearMemory, Readable: false, Writable: true},
		},
	})

	StructureCircuitHousing = register(&PrefabInfo{
		DeviceName:           "StructureCircuitHousing",
		IsIcHost:             true,
		IsSlotHost:           true,
		SupportsCableNetwork: true,
		PinCount:             6,
		SlotTypes:            []SlotType{SlotProgrammableChip},
		Properties: []PropertyContract{
			{Type: Error, Readable: true},
			{Type: On, Readable: true, Writable: true, Min: 0, Max: 1},
		},
	})

	StructureGasSensor = register(&PrefabInfo{
		DeviceName:            "StructureGasSensor",
		IsAtmosphericDevice:   true,
		SupportsCableNetwork:  true,
		AtmosphericConnections: []AtmosphericPort{Input},
		Properties: []PropertyContract{
			{Type: Pressure, Readable: true},
			{Type: Temperature, Readable: true},
			{Type: TotalMoles, Readable: true},
			{Type: RatioOxygen, Readable: true},
			{Type: RatioCarbonDioxide, Readable: true},
			{Type: RatioNitrogen, Readable: true},
			{Type: RatioVolatiles, Readable: true},
			{Type: RatioPollutant, Readable: true},
		},
	})

	StructureSolarPanel = register(&PrefabInfo{
		DeviceName:           "StructureSolarPanel",
		SupportsCableNetwork: true,
		Properties: []PropertyContract{
			{Type: Solar, Readable: true, Writable: true},
			{Type: PowerGeneration, Readable: true},
			{Type: PowerActual, Readable: true},
		},
	})
)

// PrefabHashes returns every registered prefab hash.
func PrefabHashes() []int32 {
	out := make([]int32, 0, len(prefabsByHash))
	for h := range prefabsByHash {
		out = append(out, h)
	}
	return out
}

// PrefabByHash looks up a prefab by its hash. ok is false on a miss
// (NotFoundError at the caller).
func PrefabByHash(hash int32) (*PrefabInfo, bool) {
	p, ok := prefabsByHash[hash]
	return p, ok
}

// PrefabByName looks up a prefab by its canonical name.
func PrefabByName(name string) (*PrefabInfo, bool) {
	p, ok := prefabsByName[name]
	return p, ok
}
