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
	"github.com/stationeers/simcore/ic10/opcode"
	"github.com/stationeers/simcore/params"
)

// executeControl handles unconditional jumps and sleep. hcf and yield never
// reach it (Step special-cases yield before calling execute; hcf is
// dispatched directly in execute).
func (e *executor) executeControl(nextPC *int) (StepResult, error, bool) {
	switch e.instr.Op {
	case opcode.J:
		target, err := e.targetOperand(e.operand(0))
		if err != nil {
			return StepFaulted, err, true
		}
		*nextPC = target
		return StepRan, nil, true

	case opcode.Jal:
		target, err := e.targetOperand(e.operand(0))
		if err != nil {
			return StepFaulted, err, true
		}
		e.chip.SetRegister(chip.RA, float64(*nextPC))
		*nextPC = target
		return StepRan, nil, true

	case opcode.Jr:
		offset, err := e.value(e.operand(0))
		if err != nil {
			return StepFaulted, err, true
		}
		*nextPC = e.instr.Line + int(offset)
		return StepRan, nil, true

	case opcode.Sleep:
		seconds, err := e.value(e.operand(0))
		if err != nil {
			return StepFaulted, err, true
		}
		ticks := int(math.Ceil(seconds * params.TicksPerSecond))
		if ticks > 0 {
			e.chip.SleepTicks(ticks)
		}
		return StepRan, nil, true
	}

	return 0, nil, false
}
