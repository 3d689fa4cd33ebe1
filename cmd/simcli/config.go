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
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"unicode"

	"github.com/naoina/toml"
	"github.com/stationeers/simcore/sim"
	"gopkg.in/urfave/cli.v1"
)

// These settings ensure TOML keys use the same names as Go struct fields,
// exactly as cmd/gprobe/config.go configures naoina/toml.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string { return key },
	FieldToKey:    func(rt reflect.Type, field string) string { return field },
	MissingField: func(rt reflect.Type, field string) error {
		id := fmt.Sprintf("%s.%s", rt.String(), field)
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

// scenario is the TOML document loaded by --config: the manager's
// scheduling limits plus an optional IC10 program to load into the first
// chip-hosting device created.
type scenario struct {
	Engine  sim.Config
	Program string `toml:",omitempty"` // path to an IC10 source file, optional
}

func loadScenario(file string) (scenario, error) {
	var s scenario
	f, err := os.Open(file)
	if err != nil {
		return s, err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(&s)
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return s, err
}

// loadScenarioFromFlag applies --config if set, otherwise returns a
// scenario built from sim.Defaults().
func loadScenarioFromFlag(ctx *cli.Context) (scenario, error) {
	s := scenario{Engine: sim.Defaults()}
	file := ctx.GlobalString(configFileFlag.Name)
	if file == "" {
		return s, nil
	}
	return loadScenario(file)
}

var dumpConfigCommand = cli.Command{
	Name:        "dumpconfig",
	Usage:       "Show the default scenario configuration",
	Description: "The dumpconfig command shows the engine's default scenario configuration in TOML.",
	Action: func(ctx *cli.Context) error {
		s := scenario{Engine: sim.Defaults()}
		out, err := tomlSettings.Marshal(&s)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}
