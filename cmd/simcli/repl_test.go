// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stationeers/simcore/internal/simapi"
	"github.com/stretchr/testify/require"
)

func newTestRepl() (*repl, *bytes.Buffer) {
	var buf bytes.Buffer
	return &repl{e: simapi.NewEngine(), out: &buf}, &buf
}

func runLines(t *testing.T, r *repl, out *bytes.Buffer, script string) string {
	t.Helper()
	require.NoError(t, r.run(bufio.NewScanner(strings.NewReader(script))))
	return out.String()
}

func TestReplCreateListReadWrite(t *testing.T) {
	r, out := newTestRepl()
	output := runLines(t, r, out, strings.Join([]string{
		"create StructureLogicMemory",
		"write 1 Setting 42",
		"read 1 Setting",
		"list",
		"quit",
	}, "\n"))

	require.Contains(t, output, "created StructureLogicMemory referenceId=1")
	require.Contains(t, output, "42")
	require.Contains(t, output, "1\tStructureLogicMemory")
}

func TestReplUnknownPrefabReportsError(t *testing.T) {
	r, out := newTestRepl()
	output := runLines(t, r, out, "create NotAPrefab\nquit\n")
	require.Contains(t, output, "error: unknown prefab")
}

func TestReplTickAdvancesClock(t *testing.T) {
	r, out := newTestRepl()
	output := runLines(t, r, out, strings.Join([]string{
		"create StructureDaylightSensor",
		"tick 3",
		"quit",
	}, "\n"))
	require.Contains(t, output, "tick=3")
}

func TestReplPrefabsListsRegistry(t *testing.T) {
	r, out := newTestRepl()
	output := runLines(t, r, out, "prefabs\nquit\n")
	require.Contains(t, output, "StructureGasFiltration")
}
