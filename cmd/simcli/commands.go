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

package main

import (
	"fmt"

	"github.com/stationeers/simcore/ic10/parser"
	"github.com/stationeers/simcore/internal/simapi"
	"gopkg.in/urfave/cli.v1"
)

var runCommand = cli.Command{
	Name:      "run",
	Usage:     "Advance a scenario a fixed number of ticks and report the change count",
	ArgsUsage: "<ticks>",
	Action:    runScenario,
}

var replCommand = cli.Command{
	Name:   "repl",
	Usage:  "Start an interactive session against a fresh simulation",
	Action: runRepl,
}

func newEngineFromFlag(ctx *cli.Context) (simapi.Engine, scenario, error) {
	s, err := loadScenarioFromFlag(ctx)
	if err != nil {
		return nil, s, err
	}
	e := simapi.NewEngine()
	if s.Program != "" {
		if err := loadProgramInto(e, s.Program); err != nil {
			return nil, s, err
		}
	}
	return e, s, nil
}

// loadProgramInto reads src, parses it, installs a fresh
// StructureCircuitHousing with the program on its chip, so `run`/`repl`
// scenarios have something to execute without further setup.
func loadProgramInto(e simapi.Engine, path string) error {
	src, err := readFile(path)
	if err != nil {
		return err
	}
	prog, err := parser.Parse(src)
	if err != nil {
		return err
	}
	housing, err := e.CreateDevice(housingPrefabHash())
	if err != nil {
		return err
	}
	chip := e.CreateChip()
	chip.Load(src, prog)
	return housing.SetChip(chip)
}

func runScenario(ctx *cli.Context) error {
	ticks := 1
	if ctx.NArg() > 0 {
		n, err := parseTicks(ctx.Args().Get(0))
		if err != nil {
			return err
		}
		ticks = n
	}

	e, _, err := newEngineFromFlag(ctx)
	if err != nil {
		return err
	}

	var total uint64
	for i := 0; i < ticks; i++ {
		total += e.Update()
	}
	fmt.Printf("ran %d tick(s), %d device(s) alive, %d total change(s) reported\n",
		ticks, len(e.AllDevices()), total)
	return nil
}
