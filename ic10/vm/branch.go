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

package vm

import (
	"github.com/stationeers/simcore/chip"
	"github.com/stationeers/simcore/ic10/opcode"
	"github.com/stationeers/simcore/ic10/parser"
)

var branchCmp = map[opcode.Opcode]func(a, b float64) bool{
	opcode.Beq: func(a, b float64) bool { return a == b },
	opcode.Bne: func(a, b float64) bool { return a != b },
	opcode.Blt: func(a, b float64) bool { return a < b },
	opcode.Ble: func(a, b float64) bool { return a <= b },
	opcode.Bgt: func(a, b float64) bool { return a > b },
	opcode.Bge: func(a, b float64) bool { return a >= b },

	opcode.BeqAl: func(a, b float64) bool { return a == b },
	opcode.BneAl: func(a, b float64) bool { return a != b },
	opcode.BltAl: func(a, b float64) bool { return a < b },
	opcode.BleAl: func(a, b float64) bool { return a <= b },
	opcode.BgtAl: func(a, b float64) bool { return a > b },
	opcode.BgeAl: func(a, b float64) bool { return a >= b },
}

var isAl = map[opcode.Opcode]bool{
	opcode.BeqAl: true, opcode.BneAl: true, opcode.BltAl: true, opcode.BleAl: true,
	opcode.BgtAl: true, opcode.BgeAl: true, opcode.BapAl: true, opcode.BnaAl: true,
}

// targetOperand resolves a branch's target operand: a resolved label, an
// immediate line number, or a register holding one.
func (e *executor) targetOperand(op parser.Operand) (int, error) {
	if op.Kind == parser.OperandLabel {
		return op.LabelTarget, nil
	}
	v, err := e.value(op)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// executeBranch handles the b*/b*al absolute branches and the br*
// PC-relative branches. On a taken branch it writes *nextPC; *al variants
// also stash the fall-through address in ra first.
func (e *executor) executeBranch(nextPC *int) (StepResult, error, bool) {
	if fn, ok := branchCmp[e.instr.Op]; ok {
		a, err := e.value(e.operand(0))
		if err != nil {
			return StepFaulted, err, true
		}
		b, err := e.value(e.operand(1))
		if err != nil {
			return StepFaulted, err, true
		}
		target, err := e.targetOperand(e.operand(2))
		if err != nil {
			return StepFaulted, err, true
		}
		if fn(a, b) {
			if isAl[e.instr.Op] {
				e.chip.SetRegister(chip.RA, float64(*nextPC))
			}
			*nextPC = target
		}
		return StepRan, nil, true
	}

	switch e.instr.Op {
	case opcode.Bap, opcode.Bna, opcode.BapAl, opcode.BnaAl:
		a, err := e.value(e.operand(0))
		if err != nil {
			return StepFaulted, err, true
		}
		b, err := e.value(e.operand(1))
		if err != nil {
			return StepFaulted, err, true
		}
		tol, err := e.value(e.operand(2))
		if err != nil {
			return StepFaulted, err, true
		}
		target, err := e.targetOperand(e.operand(3))
		if err != nil {
			return StepFaulted, err, true
		}
		eq := approxEqualTol(a, b, tol)
		if e.instr.Op == opcode.Bna || e.instr.Op == opcode.BnaAl {
			eq = !eq
		}
		if eq {
			if isAl[e.instr.Op] {
				e.chip.SetRegister(chip.RA, float64(*nextPC))
			}
			*nextPC = target
		}
		return StepRan, nil, true

	case opcode.Breq, opcode.Brne, opcode.Brlt, opcode.Brle, opcode.Brgt, opcode.Brge:
		relCmp := map[opcode.Opcode]func(a float64) bool{
			opcode.Breq: func(a float64) bool { return a == 0 },
			opcode.Brne: func(a float64) bool { return a != 0 },
			opcode.Brlt: func(a float64) bool { return a < 0 },
			opcode.Brle: func(a float64) bool { return a <= 0 },
			opcode.Brgt: func(a float64) bool { return a > 0 },
			opcode.Brge: func(a float64) bool { return a >= 0 },
		}
		a, err := e.value(e.operand(0))
		if err != nil {
			return StepFaulted, err, true
		}
		offset, err := e.value(e.operand(1))
		if err != nil {
			return StepFaulted, err, true
		}
		if relCmp[e.instr.Op](a) {
			*nextPC = e.instr.Line + int(offset)
		}
		return StepRan, nil, true

	case opcode.Brap, opcode.Brna:
		a, err := e.value(e.operand(0))
		if err != nil {
			return StepFaulted, err, true
		}
		tol, err := e.value(e.operand(1))
		if err != nil {
			return StepFaulted, err, true
		}
		offset, err := e.value(e.operand(2))
		if err != nil {
			return StepFaulted, err, true
		}
		eq := approxEqualTol(a, 0, tol)
		if e.instr.Op == opcode.Brna {
			eq = !eq
		}
		if eq {
			*nextPC = e.instr.Line + int(offset)
		}
		return StepRan, nil, true
	}

	return 0, nil, false
}
