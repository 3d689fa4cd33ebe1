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

package parser

import "github.com/stationeers/simcore/ic10/opcode"

// OperandKind tags the resolved form of one instruction operand. Text
// addressing (aliases, defines, labels) is fully resolved by the parser;
// the interpreter only ever sees these closed, branch-free shapes
// (spec §9 "Text-addressed operands").
type OperandKind int

const (
	OperandRegister OperandKind = iota
	OperandIndirectRegister
	OperandDevicePin
	OperandImmediate
	OperandLabel
	// OperandIdent is a bareword naming a logic type or slot type (e.g.
	// "Pressure", "Setting"). Device and chip/behavior packages resolve the
	// name; the parser only classifies it as non-label by operand position.
	OperandIdent
)

// Operand is one fully-resolved instruction operand.
type Operand struct {
	Kind OperandKind

	RegisterIndex int // OperandRegister, OperandIndirectRegister (base)
	IndirectDepth int // OperandIndirectRegister

	DevicePin int  // OperandDevicePin: 0..5, or -1 for db (self chip's host)
	IsSelfPin bool // OperandDevicePin: db

	Immediate float64 // OperandImmediate

	LabelTarget int // OperandLabel: resolved instruction index (PC)

	Name string // OperandIdent: lowercased bareword text
}

// Instruction is one resolved program line.
type Instruction struct {
	Op       opcode.Opcode
	Operands []Operand
	Line     int // 0-based source line, == PC when loaded
}

// Program is the fully-resolved, validated instruction vector produced by
// Parse. Every index in Instructions is a valid jump target.
type Program struct {
	Instructions []Instruction
	Labels       map[string]int
}
