// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadScenarioAppliesOverridesOnTopOfDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.toml")
	require.NoError(t, os.WriteFile(path, []byte("[Engine]\nInstructionsPerTick = 4\n"), 0o644))

	s, err := loadScenario(path)
	require.NoError(t, err)
	require.Equal(t, 4, s.Engine.InstructionsPerTick)
}

func TestLoadScenarioRejectsUnknownField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.toml")
	require.NoError(t, os.WriteFile(path, []byte("[Engine]\nNotAField = 1\n"), 0o644))

	_, err := loadScenario(path)
	require.Error(t, err)
}

func TestParseTicksRejectsNegative(t *testing.T) {
	_, err := parseTicks("-1")
	require.Error(t, err)
}
