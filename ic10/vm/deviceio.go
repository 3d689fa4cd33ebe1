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
	"github.com/stationeers/simcore/cable"
	"github.com/stationeers/simcore/common"
	"github.com/stationeers/simcore/device"
	"github.com/stationeers/simcore/ic10/opcode"
	"github.com/stationeers/simcore/ic10/parser"
)

// executeDeviceIO handles direct device-pin I/O (l/s/ls/lr) and the
// cable-network batch variants (lb/lbn/lbs/lbns/sb/sbn/sbs/sbns), spec §4.3
// and §4.4.
func (e *executor) executeDeviceIO() (StepResult, error, bool) {
	switch e.instr.Op {
	case opcode.L:
		d, err := e.deviceOperand(e.operand(1))
		if err != nil {
			return StepFaulted, err, true
		}
		lt, err := e.logicTypeOperand(e.operand(2))
		if err != nil {
			return StepFaulted, err, true
		}
		v, err := d.Read(lt)
		if err != nil {
			return StepFaulted, err, true
		}
		if err := e.setValue(e.operand(0), v); err != nil {
			return StepFaulted, err, true
		}
		return StepRan, nil, true

	case opcode.S:
		d, err := e.deviceOperand(e.operand(0))
		if err != nil {
			return StepFaulted, err, true
		}
		lt, err := e.logicTypeOperand(e.operand(1))
		if err != nil {
			return StepFaulted, err, true
		}
		v, err := e.value(e.operand(2))
		if err != nil {
			return StepFaulted, err, true
		}
		if err := d.Write(lt, v); err != nil {
			return StepFaulted, err, true
		}
		return StepRan, nil, true

	case opcode.Ls:
		d, err := e.deviceOperand(e.operand(1))
		if err != nil {
			return StepFaulted, err, true
		}
		slotIdx, err := e.value(e.operand(2))
		if err != nil {
			return StepFaulted, err, true
		}
		lt, err := e.logicTypeOperand(e.operand(3))
		if err != nil {
			return StepFaulted, err, true
		}
		item, err := d.ReadSlot(int(slotIdx))
		if err != nil {
			return StepFaulted, err, true
		}
		v := 0.0
		if item != nil {
			v = item.Property(lt)
		}
		if err := e.setValue(e.operand(0), v); err != nil {
			return StepFaulted, err, true
		}
		return StepRan, nil, true

	case opcode.Lr:
		d, err := e.deviceOperand(e.operand(1))
		if err != nil {
			return StepFaulted, err, true
		}
		st, err := e.slotTypeOperand(e.operand(2))
		if err != nil {
			return StepFaulted, err, true
		}
		count := countSlotsOfType(d, st)
		if err := e.setValue(e.operand(0), float64(count)); err != nil {
			return StepFaulted, err, true
		}
		return StepRan, nil, true
	}

	if batch, ok := batchReads[e.instr.Op]; ok {
		return e.executeBatchRead(batch)
	}
	if batch, ok := batchWrites[e.instr.Op]; ok {
		return e.executeBatchWrite(batch)
	}

	return 0, nil, false
}

func countSlotsOfType(d *device.Device, st device.SlotType) int {
	count := 0
	for i := 0; i < len(d.Prefab.SlotTypes); i++ {
		if d.Prefab.SlotTypes[i] != st {
			continue
		}
		if item, err := d.ReadSlot(i); err == nil && item != nil {
			count++
		}
	}
	return count
}

func (e *executor) slotTypeOperand(op parser.Operand) (device.SlotType, error) {
	if op.Kind != parser.OperandIdent {
		return 0, common.NewRuntimeFault(common.FaultInvalidLogicType, e.instr.Line, "operand is not a slot type name")
	}
	st, ok := device.ParseSlotType(op.Name)
	if !ok {
		return 0, common.NewRuntimeFault(common.FaultInvalidLogicType, e.instr.Line, "unknown slot type %q", op.Name)
	}
	return st, nil
}

type batchShape struct {
	hasName bool
	hasSlot bool
}

var batchReads = map[opcode.Opcode]batchShape{
	opcode.Lb:   {hasName: false, hasSlot: false},
	opcode.Lbn:  {hasName: true, hasSlot: false},
	opcode.Lbs:  {hasName: false, hasSlot: true},
	opcode.Lbns: {hasName: true, hasSlot: true},
}

var batchWrites = map[opcode.Opcode]batchShape{
	opcode.Sb:   {hasName: false, hasSlot: false},
	opcode.Sbn:  {hasName: true, hasSlot: false},
	opcode.Sbs:  {hasName: false, hasSlot: true},
	opcode.Sbns: {hasName: true, hasSlot: true},
}

// executeBatchRead resolves lb/lbn/lbs/lbns: read logicType from every
// cable-network member matching the hash filters, then reduce the batch
// with the trailing reducer-mode operand.
func (e *executor) executeBatchRead(shape batchShape) (StepResult, error, bool) {
	idx := 1
	hashV, err := e.value(e.operand(idx))
	if err != nil {
		return StepFaulted, err, true
	}
	idx++
	var nameV float64
	if shape.hasName {
		nameV, err = e.value(e.operand(idx))
		if err != nil {
			return StepFaulted, err, true
		}
		idx++
	}
	var slotV float64
	if shape.hasSlot {
		slotV, err = e.value(e.operand(idx))
		if err != nil {
			return StepFaulted, err, true
		}
		idx++
	}
	lt, err := e.logicTypeOperand(e.operand(idx))
	if err != nil {
		return StepFaulted, err, true
	}
	idx++
	modeV, err := e.value(e.operand(idx))
	if err != nil {
		return StepFaulted, err, true
	}

	members := cableMembers(e.self, e.world)
	matched := matchBatch(members, int32(hashV), shape.hasName, int32(nameV), shape.hasSlot, int(slotV))
	values := make([]float64, 0, len(matched))
	for _, d := range matched {
		if v, err := d.Read(lt); err == nil {
			values = append(values, v)
		}
	}
	mode := cable.ReducerMode(int(modeV))
	if err := e.setValue(e.operand(0), mode.Reduce(values)); err != nil {
		return StepFaulted, err, true
	}
	return StepRan, nil, true
}

// executeBatchWrite resolves sb/sbn/sbs/sbns: broadcast value to logicType
// on every matching cable-network member.
func (e *executor) executeBatchWrite(shape batchShape) (StepResult, error, bool) {
	idx := 0
	hashV, err := e.value(e.operand(idx))
	if err != nil {
		return StepFaulted, err, true
	}
	idx++
	var nameV float64
	if shape.hasName {
		nameV, err = e.value(e.operand(idx))
		if err != nil {
			return StepFaulted, err, true
		}
		idx++
	}
	var slotV float64
	if shape.hasSlot {
		slotV, err = e.value(e.operand(idx))
		if err != nil {
			return StepFaulted, err, true
		}
		idx++
	}
	lt, err := e.logicTypeOperand(e.operand(idx))
	if err != nil {
		return StepFaulted, err, true
	}
	idx++
	value, err := e.value(e.operand(idx))
	if err != nil {
		return StepFaulted, err, true
	}

	members := cableMembers(e.self, e.world)
	matched := matchBatch(members, int32(hashV), shape.hasName, int32(nameV), shape.hasSlot, int(slotV))
	for _, d := range matched {
		_ = d.Write(lt, value)
	}
	return StepRan, nil, true
}

// matchBatch filters members to those whose prefab hash matches, and
// (selectively) whose nameHash matches or which hold an item in slotIdx —
// the latter used as an existence filter for the *s batch variants rather
// than addressing a specific slot-scoped property.
func matchBatch(members []*device.Device, hash int32, hasName bool, name int32, hasSlot bool, slotIdx int) []*device.Device {
	out := make([]*device.Device, 0, len(members))
	for _, d := range members {
		if d.Prefab.Hash != hash {
			continue
		}
		if hasName && d.NameHash != name {
			continue
		}
		if hasSlot {
			item, err := d.ReadSlot(slotIdx)
			if err != nil || item == nil {
				continue
			}
		}
		out = append(out, d)
	}
	return out
}
