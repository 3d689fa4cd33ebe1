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

// Command simcli is the engine's own dogfooding harness: a thin CLI/REPL
// that loads a scenario, steps the simulation, and dumps device/chip state.
// It is not a product surface — just the way a developer pokes at the
// engine from a terminal.
package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v1"
)

var (
	gitCommit = ""
	gitDate   = ""
)

var (
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML scenario file",
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "simcli"
	app.Usage = "Stationeers-style IC10/atmospherics simulation engine REPL"
	app.Flags = []cli.Flag{configFileFlag}
	app.Commands = []cli.Command{
		dumpConfigCommand,
		runCommand,
		replCommand,
	}
	app.Action = runRepl

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
