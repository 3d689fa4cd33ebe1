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

// Package device implements the typed device object model: logic
// properties, slots, the prefab registry, chip hosting, and network
// attachment points (spec §4.4).
package device

import "strings"

// LogicType is a closed enumeration of the logic properties a device may
// expose for read/write over IC10 `l`/`s` instructions or cable-network
// batch operations. The set below is representative of the full in-game
// catalogue (~120 names); every name actually exercised by a prefab defined
// in this package or by the IC10 test fixtures is present.
type LogicType int

const (
	Power LogicType = iota
	Open
	Mode
	Error
	Activate
	Lock
	Pressure
	Temperature
	PressureExternal
	TemperatureExternal
	Setting
	Volume
	Output
	OutputSecondary // Output2 side-channel readings
	RatioOxygen
	RatioCarbonDioxide
	RatioNitrogen
	RatioPollutant
	RatioVolatiles
	RatioNitrousOxide
	RatioSteam
	RatioHydrogen
	RatioWater
	On
	ClearMemory
	Combustion
	Charge
	Maximum
	Ratio
	PowerActual
	PowerGeneration
	Solar
	SolarAngle
	TotalMoles
	Quantity

	logicTypeCount
)

var logicTypeNames = map[LogicType]string{
	Power:                "Power",
	Open:                 "Open",
	Mode:                 "Mode",
	Error:                "Error",
	Activate:             "Activate",
	Lock:                 "Lock",
	Pressure:             "Pressure",
	Temperature:          "Temperature",
	PressureExternal:     "PressureExternal",
	TemperatureExternal:  "TemperatureExternal",
	Setting:              "Setting",
	Volume:               "Volume",
	Output:               "Output",
	OutputSecondary:      "Output2",
	RatioOxygen:          "RatioOxygen",
	RatioCarbonDioxide:   "RatioCarbonDioxide",
	RatioNitrogen:        "RatioNitrogen",
	RatioPollutant:       "RatioPollutant",
	RatioVolatiles:       "RatioVolatiles",
	RatioNitrousOxide:    "RatioNitrousOxide",
	RatioSteam:           "RatioSteam",
	RatioHydrogen:        "RatioHydrogen",
	RatioWater:           "RatioWater",
	On:                   "On",
	ClearMemory:          "ClearMemory",
	Combustion:           "Combustion",
	Charge:               "Charge",
	Maximum:              "Maximum",
	Ratio:                "Ratio",
	PowerActual:          "PowerActual",
	PowerGeneration:      "PowerGeneration",
	Solar:                "Solar",
	SolarAngle:           "SolarAngle",
	TotalMoles:           "TotalMoles",
	Quantity:             "Quantity",
}

// String returns the logic type's canonical name, or "Unknown" if out of
// the closed enum's range.
func (l LogicType) String() string {
	if n, ok := logicTypeNames[l]; ok {
		return n
	}
	return "Unknown"
}

var logicTypeByLowerName = func() map[string]LogicType {
	m := make(map[string]LogicType, len(logicTypeNames))
	for lt, name := range logicTypeNames {
		m[strings.ToLower(name)] = lt
	}
	return m
}()

// ParseLogicType resolves a case-insensitive bareword (as parsed from IC10
// program text) to its LogicType. ok is false for an unrecognized name,
// which the interpreter reports as InvalidLogicType.
func ParseLogicType(name string) (LogicType, bool) {
	lt, ok := logicTypeByLowerName[strings.ToLower(name)]
	return lt, ok
}

// PropertyContract describes one logic property a prefab exposes: its
// readable/writable capability and clamp bounds used by write().
type PropertyContract struct {
	Type     LogicType
	Readable bool
	Writable bool
	Min, Max float64 // Min==Max==0 means unclamped
}

func (p PropertyContract) clamp(v float64) float64 {
	if p.Min == 0 && p.Max == 0 {
		return v
	}
	if v < p.Min {
		return p.Min
	}
	if v > p.Max {
		return p.Max
	}
	return v
}
