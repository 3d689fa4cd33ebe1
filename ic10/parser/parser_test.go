// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package parser

import (
	"strings"
	"testing"

	"github.com/stationeers/simcore/ic10/opcode"
	"github.com/stretchr/testify/require"
)

func TestParseLoopProgram(t *testing.T) {
	src := "move r0 0\nadd r0 r0 1\nblt r0 10 1\nyield\n"
	prog, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, prog.Instructions, 4)
	require.Equal(t, opcode.Move, prog.Instructions[0].Op)
	require.Equal(t, opcode.Add, prog.Instructions[1].Op)
	require.Equal(t, opcode.Blt, prog.Instructions[2].Op)
	require.Equal(t, opcode.Yield, prog.Instructions[3].Op)

	// blt target operand resolves to the immediate line 1 (not a label).
	require.Equal(t, OperandImmediate, prog.Instructions[2].Operands[2].Kind)
	require.InDelta(t, 1, prog.Instructions[2].Operands[2].Immediate, 1e-9)
}

func TestParseLabelForwardReference(t *testing.T) {
	src := "j start\nmove r1 5\nstart:\nmove r0 1\n"
	prog, err := Parse(src)
	require.NoError(t, err)
	require.Equal(t, OperandLabel, prog.Instructions[0].Operands[0].Kind)
	require.Equal(t, 2, prog.Instructions[0].Operands[0].LabelTarget)
}

func TestParseDuplicateLabelFails(t *testing.T) {
	src := "a:\nmove r0 1\na:\nmove r1 2\n"
	_, err := Parse(src)
	require.Error(t, err)
}

func TestParseUnknownLabelFails(t *testing.T) {
	src := "j nowhere\n"
	_, err := Parse(src)
	require.Error(t, err)
}

func TestParseAliasAndDefine(t *testing.T) {
	src := "alias foo r3\ndefine LIMIT 10\nmove foo LIMIT\n"
	prog, err := Parse(src)
	require.NoError(t, err)
	require.Equal(t, OperandRegister, prog.Instructions[2].Operands[0].Kind)
	require.Equal(t, 3, prog.Instructions[2].Operands[0].RegisterIndex)
	require.Equal(t, OperandImmediate, prog.Instructions[2].Operands[1].Kind)
	require.InDelta(t, 10, prog.Instructions[2].Operands[1].Immediate, 1e-9)
}

func TestParseDevicePinAndIndirectRegister(t *testing.T) {
	src := "l r0 d0 Pressure\ns d0 Setting rr1\n"
	prog, err := Parse(src)
	require.NoError(t, err)
	require.Equal(t, OperandDevicePin, prog.Instructions[0].Operands[1].Kind)
	require.Equal(t, 0, prog.Instructions[0].Operands[1].DevicePin)
	require.Equal(t, OperandIdent, prog.Instructions[0].Operands[2].Kind)
	require.Equal(t, "pressure", prog.Instructions[0].Operands[2].Name)

	require.Equal(t, OperandIdent, prog.Instructions[1].Operands[1].Kind)
	require.Equal(t, "setting", prog.Instructions[1].Operands[1].Name)
	require.Equal(t, OperandIndirectRegister, prog.Instructions[1].Operands[2].Kind)
	require.Equal(t, 1, prog.Instructions[1].Operands[2].RegisterIndex)
	require.Equal(t, 1, prog.Instructions[1].Operands[2].IndirectDepth)
}

func TestParseBlankLinesPreserveLineNumbers(t *testing.T) {
	src := "move r0 1\n\nmove r1 2\n"
	prog, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, prog.Instructions, 3)
	require.Equal(t, opcode.Noop, prog.Instructions[1].Op)
}

func TestParseRejectsProgramTooLong(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 129; i++ {
		b.WriteString("move r0 1\n")
	}
	_, err := Parse(b.String())
	require.Error(t, err)
}

func TestParseHcf(t *testing.T) {
	prog, err := Parse("hcf\n")
	require.NoError(t, err)
	require.Equal(t, opcode.Hcf, prog.Instructions[0].Op)
}

func TestParseRejectsWrongOperandCount(t *testing.T) {
	_, err := Parse("add r0 r1\n")
	require.Error(t, err)
}

func TestParseCommentsAreStripped(t *testing.T) {
	prog, err := Parse("move r0 1 # set r0\n")
	require.NoError(t, err)
	require.Len(t, prog.Instructions[0].Operands, 2)
}
