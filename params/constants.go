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

// Package params collects the engine's physical and scheduling constants.
package params

// GasConstant is R, the universal gas constant, in J·mol⁻¹·K⁻¹.
const GasConstant = 8.314

// MinMoles is the mole threshold below which a mixture is considered to
// hold no gas: temperature is then 0 by definition and pressure is 0.
const MinMoles = 1e-9

// Scheduling constants (spec §4.6, §4.7).
const (
	// InstructionsPerTick is the maximum number of IC10 instructions a chip
	// may execute within a single run_tick() call.
	InstructionsPerTick = 128

	// MaxProgramInstructions is the maximum number of non-blank instructions
	// a program may contain; longer programs are rejected with a LoadError.
	MaxProgramInstructions = 128

	// RegisterCount is r0..r15, plus sp (r16) and ra (r17).
	RegisterCount = 18

	// StackSize is the number of double-precision stack slots.
	StackSize = 512

	// DevicePinCount is the number of named device pins (d0..d5) an IC host
	// exposes, unless its prefab declares fewer.
	DevicePinCount = 6

	// TicksPerSecond is the simulation's fixed tick rate, used to convert
	// `sleep n` (seconds) into a skipped-tick count.
	TicksPerSecond = 10
)

// ApproxRelTolerance and ApproxAbsTolerance define the default approximate-
// equality bound used by the interpreter's approxEqual helper:
// |a-b| <= max(|a|,|b|)*RelTolerance + AbsTolerance. sap/sna/sapz and their
// branch counterparts do not use these constants; they compare |a-b|
// against an absolute tolerance taken from their own operand.
const (
	ApproxRelTolerance = 1e-8
	ApproxAbsTolerance = 1e-64
)

// Device behavior constants (spec §4.4 prefab catalogue, supplemented).
const (
	// DayLengthTicks is the period of the simulated day/night cycle used by
	// StructureDaylightSensor. Not a game-data constant; chosen so a full
	// cycle (20 minutes at TicksPerSecond) is observable in a short-lived
	// simulation without being so short that a single tick visibly jumps
	// the derived Solar value.
	DayLengthTicks = 12000

	// SolarPanelMaxOutput is the wattage a StructureSolarPanel reports at
	// Solar == 1 (full daylight, zero incidence angle).
	SolarPanelMaxOutput = 500.0
)
