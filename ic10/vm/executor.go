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

	"github.com/stationeers/simcore/chip"
	"github.com/stationeers/simcore/common"
	"github.com/stationeers/simcore/device"
	"github.com/stationeers/simcore/ic10/opcode"
	"github.com/stationeers/simcore/ic10/parser"
	"github.com/stationeers/simcore/params"
)

// executor carries the per-step context; it is constructed fresh by Step
// and never retained.
type executor struct {
	chip  *chip.Chip
	self  *device.Device
	world World
	instr parser.Instruction
}

func (e *executor) operand(i int) parser.Operand { return e.instr.Operands[i] }

// value reads an operand as a number: a register, an indirect register, or
// an immediate.
func (e *executor) value(op parser.Operand) (float64, error) {
	switch op.Kind {
	case parser.OperandImmediate:
		return op.Immediate, nil
	case parser.OperandRegister:
		return e.chip.Register(op.RegisterIndex), nil
	case parser.OperandIndirectRegister:
		idx, err := e.chip.ResolveIndirect(op.RegisterIndex, op.IndirectDepth)
		if err != nil {
			return 0, common.NewRuntimeFault(common.FaultInvalidInstruction, e.instr.Line, "%v", err)
		}
		return e.chip.Register(idx), nil
	default:
		return 0, common.NewRuntimeFault(common.FaultInvalidInstruction, e.instr.Line, "operand is not a value")
	}
}

// setValue writes v to a register or indirect-register operand.
func (e *executor) setValue(op parser.Operand, v float64) error {
	switch op.Kind {
	case parser.OperandRegister:
		e.chip.SetRegister(op.RegisterIndex, v)
		return nil
	case parser.OperandIndirectRegister:
		idx, err := e.chip.ResolveIndirect(op.RegisterIndex, op.IndirectDepth)
		if err != nil {
			return common.NewRuntimeFault(common.FaultInvalidInstruction, e.instr.Line, "%v", err)
		}
		e.chip.SetRegister(idx, v)
		return nil
	default:
		return common.NewRuntimeFault(common.FaultInvalidInstruction, e.instr.Line, "operand is not writable")
	}
}

func (e *executor) deviceOperand(op parser.Operand) (*device.Device, error) {
	if op.Kind != parser.OperandDevicePin {
		return nil, common.NewRuntimeFault(common.FaultInvalidInstruction, e.instr.Line, "operand is not a device pin")
	}
	return resolveDevicePin(e.self, e.world, op.DevicePin, op.IsSelfPin)
}

func (e *executor) logicTypeOperand(op parser.Operand) (device.LogicType, error) {
	if op.Kind != parser.OperandIdent {
		return 0, common.NewRuntimeFault(common.FaultInvalidLogicType, e.instr.Line, "operand is not a logic type name")
	}
	lt, ok := device.ParseLogicType(op.Name)
	if !ok {
		return 0, common.NewRuntimeFault(common.FaultInvalidLogicType, e.instr.Line, "unknown logic type %q", op.Name)
	}
	return lt, nil
}

// approxEqual implements the engine's default approximate-equality rule,
// used wherever IC10 semantics call for a tolerance but no operand supplies
// one explicitly.
func approxEqual(a, b float64) bool {
	bound := math.Max(math.Abs(a), math.Abs(b))*params.ApproxRelTolerance + params.ApproxAbsTolerance
	return approxEqualTol(a, b, bound)
}

// approxEqualTol reports whether a and b are within an explicit tolerance,
// as used by sap/sna/sapz and their branch counterparts (each of which take
// the tolerance as an operand rather than relying on a fixed constant).
func approxEqualTol(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// execute runs e.instr, mutating e.chip/e.self/the device graph and, for
// control-flow instructions, *nextPC. It never mutates e.chip's halted/PC
// state directly — Step applies those based on the returned values so a
// fault always leaves a consistent error line.
func (e *executor) execute(nextPC *int) (StepResult, error) {
	switch e.instr.Op {
	case opcode.Noop:
		return StepRan, nil

	case opcode.Hcf:
		return StepFaulted, common.NewRuntimeFault(common.FaultHcfExecuted, e.instr.Line, "hcf executed")

	case opcode.Move:
		v, err := e.value(e.operand(1))
		if err != nil {
			return StepFaulted, err
		}
		if err := e.setValue(e.operand(0), v); err != nil {
			return StepFaulted, err
		}
		return StepRan, nil

	case opcode.Push:
		v, err := e.value(e.operand(0))
		if err != nil {
			return StepFaulted, err
		}
		if !e.chip.Push(v) {
			return StepFaulted, common.NewRuntimeFault(common.FaultStackOverflow, e.instr.Line, "stack overflow")
		}
		return StepRan, nil

	case opcode.Pop:
		v, ok := e.chip.Pop()
		if !ok {
			return StepFaulted, common.NewRuntimeFault(common.FaultStackUnderflow, e.instr.Line, "stack underflow")
		}
		if err := e.setValue(e.operand(0), v); err != nil {
			return StepFaulted, err
		}
		return StepRan, nil

	case opcode.Peek:
		v, ok := e.chip.Peek()
		if !ok {
			return StepFaulted, common.NewRuntimeFault(common.FaultStackUnderflow, e.instr.Line, "stack underflow")
		}
		if err := e.setValue(e.operand(0), v); err != nil {
			return StepFaulted, err
		}
		return StepRan, nil
	}

	if result, fault, handled := e.executeArithmetic(); handled {
		return result, fault
	}
	if result, fault, handled := e.executeCompare(); handled {
		return result, fault
	}
	if result, fault, handled := e.executeBranch(nextPC); handled {
		return result, fault
	}
	if result, fault, handled := e.executeControl(nextPC); handled {
		return result, fault
	}
	if result, fault, handled := e.executeDeviceIO(); handled {
		return result, fault
	}

	return StepFaulted, common.NewRuntimeFault(common.FaultInvalidInstruction, e.instr.Line, "unimplemented opcode %s", e.instr.Op)
}
