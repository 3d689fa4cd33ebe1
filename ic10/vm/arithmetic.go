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
	"math"
	"math/rand"

	"github.com/stationeers/simcore/ic10/opcode"
)

// executeArithmetic handles the binary/unary math opcodes. handled is false
// for any opcode it does not recognize, letting execute fall through to the
// next dispatch group.
func (e *executor) executeArithmetic() (StepResult, error, bool) {
	binary := map[opcode.Opcode]func(a, b float64) float64{
		opcode.Add:   func(a, b float64) float64 { return a + b },
		opcode.Sub:   func(a, b float64) float64 { return a - b },
		opcode.Mul:   func(a, b float64) float64 { return a * b },
		opcode.Div:   func(a, b float64) float64 { return a / b },
		opcode.Mod:   math.Mod,
		opcode.Max:   math.Max,
		opcode.Min:   math.Min,
		opcode.Atan2: math.Atan2,
	}
	if fn, ok := binary[e.instr.Op]; ok {
		a, err := e.value(e.operand(1))
		if err != nil {
			return StepFaulted, err, true
		}
		b, err := e.value(e.operand(2))
		if err != nil {
			return StepFaulted, err, true
		}
		if err := e.setValue(e.operand(0), fn(a, b)); err != nil {
			return StepFaulted, err, true
		}
		return StepRan, nil, true
	}

	unary := map[opcode.Opcode]func(float64) float64{
		opcode.Sqrt:  math.Sqrt,
		opcode.Round: math.Round,
		opcode.Trunc: math.Trunc,
		opcode.Ceil:  math.Ceil,
		opcode.Floor: math.Floor,
		opcode.Abs:   math.Abs,
		opcode.Log:   math.Log,
		opcode.Exp:   math.Exp,
		opcode.Sin:   math.Sin,
		opcode.Cos:   math.Cos,
		opcode.Tan:   math.Tan,
		opcode.Asin:  math.Asin,
		opcode.Acos:  math.Acos,
		opcode.Atan:  math.Atan,
	}
	if fn, ok := unary[e.instr.Op]; ok {
		a, err := e.value(e.operand(1))
		if err != nil {
			return StepFaulted, err, true
		}
		if err := e.setValue(e.operand(0), fn(a)); err != nil {
			return StepFaulted, err, true
		}
		return StepRan, nil, true
	}

	if e.instr.Op == opcode.Rand {
		if err := e.setValue(e.operand(0), rand.Float64()); err != nil {
			return StepFaulted, err, true
		}
		return StepRan, nil, true
	}

	return 0, nil, false
}
