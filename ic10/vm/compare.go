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
	"github.com/stationeers/simcore/common"
	"github.com/stationeers/simcore/ic10/opcode"
)

var binaryCmp = map[opcode.Opcode]func(a, b float64) bool{
	opcode.Seq: func(a, b float64) bool { return a == b },
	opcode.Sne: func(a, b float64) bool { return a != b },
	opcode.Slt: func(a, b float64) bool { return a < b },
	opcode.Sle: func(a, b float64) bool { return a <= b },
	opcode.Sgt: func(a, b float64) bool { return a > b },
	opcode.Sge: func(a, b float64) bool { return a >= b },
}

// executeCompare handles the set* opcodes, which write 0/1 into a
// destination register rather than mutating the program counter.
func (e *executor) executeCompare() (StepResult, error, bool) {
	if fn, ok := binaryCmp[e.instr.Op]; ok {
		a, err := e.value(e.operand(1))
		if err != nil {
			return StepFaulted, err, true
		}
		b, err := e.value(e.operand(2))
		if err != nil {
			return StepFaulted, err, true
		}
		if err := e.setValue(e.operand(0), boolToFloat(fn(a, b))); err != nil {
			return StepFaulted, err, true
		}
		return StepRan, nil, true
	}

	switch e.instr.Op {
	case opcode.Sap, opcode.Sna:
		a, err := e.value(e.operand(1))
		if err != nil {
			return StepFaulted, err, true
		}
		b, err := e.value(e.operand(2))
		if err != nil {
			return StepFaulted, err, true
		}
		tol, err := e.value(e.operand(3))
		if err != nil {
			return StepFaulted, err, true
		}
		eq := approxEqualTol(a, b, tol)
		if e.instr.Op == opcode.Sna {
			eq = !eq
		}
		if err := e.setValue(e.operand(0), boolToFloat(eq)); err != nil {
			return StepFaulted, err, true
		}
		return StepRan, nil, true

	case opcode.Sapz:
		a, err := e.value(e.operand(1))
		if err != nil {
			return StepFaulted, err, true
		}
		tol, err := e.value(e.operand(2))
		if err != nil {
			return StepFaulted, err, true
		}
		if err := e.setValue(e.operand(0), boolToFloat(approxEqualTol(a, 0, tol))); err != nil {
			return StepFaulted, err, true
		}
		return StepRan, nil, true

	case opcode.Sdse, opcode.Sdns:
		set := true
		if _, err := e.deviceOperand(e.operand(1)); err != nil {
			if _, ok := err.(*common.RuntimeFault); !ok {
				return StepFaulted, err, true
			}
			set = false
		}
		if e.instr.Op == opcode.Sdns {
			set = !set
		}
		if err := e.setValue(e.operand(0), boolToFloat(set)); err != nil {
			return StepFaulted, err, true
		}
		return StepRan, nil, true
	}

	return 0, nil, false
}
