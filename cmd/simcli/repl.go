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
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/stationeers/simcore/common"
	"github.com/stationeers/simcore/device"
	"github.com/stationeers/simcore/internal/simapi"
	"gopkg.in/urfave/cli.v1"
)

// repl drives an interactive session reading commands from in and writing
// responses to out, one per line, until in is exhausted or "quit"/"exit" is
// entered. It never calls os.Exit, so it can be driven by tests.
type repl struct {
	e   simapi.Engine
	out io.Writer
}

func runRepl(ctx *cli.Context) error {
	e, _, err := newEngineFromFlag(ctx)
	if err != nil {
		return err
	}
	r := &repl{e: e, out: ctx.App.Writer}
	return r.run(bufio.NewScanner(stdinReader()))
}

func (r *repl) run(scanner *bufio.Scanner) error {
	fmt.Fprintln(r.out, "simcli ready. type 'help' for commands.")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]
		if cmd == "quit" || cmd == "exit" {
			return nil
		}
		if err := r.dispatch(cmd, args); err != nil {
			fmt.Fprintf(r.out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

func (r *repl) dispatch(cmd string, args []string) error {
	switch cmd {
	case "help":
		r.help()
	case "prefabs":
		r.prefabs()
	case "create":
		return r.create(args)
	case "list":
		r.list()
	case "read":
		return r.read(args)
	case "write":
		return r.write(args)
	case "tick":
		return r.tick(args)
	default:
		fmt.Fprintf(r.out, "unknown command %q, type 'help'\n", cmd)
	}
	return nil
}

func (r *repl) help() {
	fmt.Fprintln(r.out, "commands:")
	fmt.Fprintln(r.out, "  prefabs                          list device prefab names and hashes")
	fmt.Fprintln(r.out, "  create <prefabName>               create a device, prints its referenceId")
	fmt.Fprintln(r.out, "  list                              list all live devices")
	fmt.Fprintln(r.out, "  read <refId> <logicType>          read a device property")
	fmt.Fprintln(r.out, "  write <refId> <logicType> <value>  write a device property")
	fmt.Fprintln(r.out, "  tick [n]                          advance the simulation n ticks (default 1)")
	fmt.Fprintln(r.out, "  quit | exit                       leave the session")
}

func (r *repl) prefabs() {
	for _, hash := range r.e.DevicePrefabHashes() {
		info, _ := r.e.DevicePrefabInfo(hash)
		fmt.Fprintf(r.out, "%-28s %d\n", info.DeviceName, info.Hash)
	}
}

func (r *repl) create(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: create <prefabName>")
	}
	prefab, ok := device.PrefabByName(args[0])
	if !ok {
		return fmt.Errorf("unknown prefab %q", args[0])
	}
	d, err := r.e.CreateDevice(prefab.Hash)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "created %s referenceId=%d\n", prefab.DeviceName, d.ReferenceId)
	return nil
}

func (r *repl) list() {
	for _, d := range r.e.AllDevices() {
		fmt.Fprintf(r.out, "%d\t%s\n", d.ReferenceId, d.Prefab.DeviceName)
	}
}

func (r *repl) findDevice(refIDStr string) (*device.Device, error) {
	id, err := strconv.ParseUint(refIDStr, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid referenceId %q: %w", refIDStr, err)
	}
	for _, d := range r.e.AllDevices() {
		if d.ReferenceId == common.ReferenceId(id) {
			return d, nil
		}
	}
	return nil, fmt.Errorf("no device with referenceId %d", id)
}

func (r *repl) read(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: read <refId> <logicType>")
	}
	d, err := r.findDevice(args[0])
	if err != nil {
		return err
	}
	lt, ok := device.ParseLogicType(args[1])
	if !ok {
		return fmt.Errorf("unknown logic type %q", args[1])
	}
	v, err := d.Read(lt)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "%v\n", v)
	return nil
}

func (r *repl) write(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: write <refId> <logicType> <value>")
	}
	d, err := r.findDevice(args[0])
	if err != nil {
		return err
	}
	lt, ok := device.ParseLogicType(args[1])
	if !ok {
		return fmt.Errorf("unknown logic type %q", args[1])
	}
	v, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[2], err)
	}
	return d.Write(lt, v)
}

func (r *repl) tick(args []string) error {
	n := 1
	if len(args) == 1 {
		parsed, err := parseTicks(args[0])
		if err != nil {
			return err
		}
		n = parsed
	}
	var total uint64
	for i := 0; i < n; i++ {
		total += r.e.Update()
	}
	fmt.Fprintf(r.out, "tick=%d changes=%d\n", r.e.CurrentTick(), total)
	return nil
}
