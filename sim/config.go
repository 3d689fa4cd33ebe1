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

package sim

import "github.com/stationeers/simcore/params"

// Config carries the manager's tunable scheduling limits, in a plain
// toml-tagged config-struct convention.
// The engine's own operations take no such argument (spec §6 is fixed-arity)
// — this struct exists so a host such as cmd/simcli can describe a scenario
// in TOML and apply it before the first Update call.
type Config struct {
	// TicksPerSecond is the scheduling rate used to convert `sleep` seconds
	// into skipped ticks.
	TicksPerSecond int `toml:",omitempty"`

	// InstructionsPerTick caps how many IC10 instructions a single chip may
	// execute per Update call before yielding.
	InstructionsPerTick int `toml:",omitempty"`

	// MaxProgramInstructions caps how many non-blank instructions a loaded
	// program may contain.
	MaxProgramInstructions int `toml:",omitempty"`
}

// Defaults mirrors the params package's compiled-in constants, the way
// probeconfig.Defaults mirrors params.MainnetChainConfig.
func Defaults() Config {
	return Config{
		TicksPerSecond:         params.TicksPerSecond,
		InstructionsPerTick:    params.InstructionsPerTick,
		MaxProgramInstructions: params.MaxProgramInstructions,
	}
}

// normalize fills any zero field from Defaults(), so a TOML scenario file
// only needs to mention the settings it overrides.
func (c Config) normalize() Config {
	d := Defaults()
	if c.TicksPerSecond != 0 {
		d.TicksPerSecond = c.TicksPerSecond
	}
	if c.InstructionsPerTick != 0 {
		d.InstructionsPerTick = c.InstructionsPerTick
	}
	if c.MaxProgramInstructions != 0 {
		d.MaxProgramInstructions = c.MaxProgramInstructions
	}
	return d
}
