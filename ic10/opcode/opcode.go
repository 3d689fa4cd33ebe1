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

// Package opcode is the closed IC10 instruction set (spec §4.6, GLOSSARY).
// It is a separate package from both ic10/parser and ic10/vm so that the
// parser can emit resolved opcodes without importing the interpreter, and
// the interpreter can dispatch on them without importing the parser.
package opcode

// Opcode is an IC10 instruction mnemonic, resolved from its source text at
// parse time.
type Opcode uint8

const (
	Noop Opcode = iota // blank line; preserves line-number/PC alignment

	// Data movement
	Move
	Push
	Pop
	Peek

	// Arithmetic
	Add
	Sub
	Mul
	Div
	Mod
	Sqrt
	Round
	Trunc
	Ceil
	Floor
	Abs
	Log
	Exp
	Sin
	Cos
	Tan
	Asin
	Acos
	Atan
	Atan2
	Max
	Min
	Rand

	// Comparison (writes 0/1 into destination register)
	Seq
	Sne
	Slt
	Sle
	Sgt
	Sge
	Sap
	Sapz
	Sna
	Sdse
	Sdns

	// Branch (PC-mutating comparisons)
	Beq
	Bne
	Blt
	Ble
	Bgt
	Bge
	Bap
	Bna
	BeqAl
	BneAl
	BltAl
	BleAl
	BgtAl
	BgeAl
	BapAl
	BnaAl
	Breq
	Brne
	Brlt
	Brle
	Brgt
	Brge
	Brap
	Brna

	// Control
	J
	Jal
	Jr
	Yield
	Sleep
	Hcf

	// Device I/O
	L
	S
	Ls
	Lr
	Lb
	Lbn
	Lbs
	Lbns
	Sb
	Sbn
	Sbs
	Sbns

	opcodeCount
)

// Info describes an opcode's canonical mnemonic and fixed operand count,
// used by the parser to validate operand arity at load time.
type Info struct {
	Mnemonic string
	Operands int
}

var table = map[Opcode]Info{
	Noop:  {"", 0},
	Move:  {"move", 2},
	Push:  {"push", 1},
	Pop:   {"pop", 1},
	Peek:  {"peek", 1},

	Add: {"add", 3}, Sub: {"sub", 3}, Mul: {"mul", 3}, Div: {"div", 3}, Mod: {"mod", 3},
	Sqrt: {"sqrt", 2}, Round: {"round", 2}, Trunc: {"trunc", 2}, Ceil: {"ceil", 2}, Floor: {"floor", 2},
	Abs: {"abs", 2}, Log: {"log", 2}, Exp: {"exp", 2},
	Sin: {"sin", 2}, Cos: {"cos", 2}, Tan: {"tan", 2},
	Asin: {"asin", 2}, Acos: {"acos", 2}, Atan: {"atan", 2}, Atan2: {"atan2", 3},
	Max: {"max", 3}, Min: {"min", 3}, Rand: {"rand", 1},

	Seq: {"seq", 3}, Sne: {"sne", 3}, Slt: {"slt", 3}, Sle: {"sle", 3}, Sgt: {"sgt", 3}, Sge: {"sge", 3},
	Sap: {"sap", 4}, Sapz: {"sapz", 3}, Sna: {"sna", 4}, Sdse: {"sdse", 2}, Sdns: {"sdns", 2},

	Beq: {"beq", 3}, Bne: {"bne", 3}, Blt: {"blt", 3}, Ble: {"ble", 3}, Bgt: {"bgt", 3}, Bge: {"bge", 3},
	Bap: {"bap", 4}, Bna: {"bna", 4},
	BeqAl: {"beqal", 3}, BneAl: {"bneal", 3}, BltAl: {"bltal", 3}, BleAl: {"bleal", 3},
	BgtAl: {"bgtal", 3}, BgeAl: {"bgeal", 3}, BapAl: {"bapal", 4}, BnaAl: {"bnaal", 4},
	Breq: {"breq", 2}, Brne: {"brne", 2}, Brlt: {"brlt", 2}, Brle: {"brle", 2},
	Brgt: {"brgt", 2}, Brge: {"brge", 2}, Brap: {"brap", 3}, Brna: {"brna", 3},

	J: {"j", 1}, Jal: {"jal", 1}, Jr: {"jr", 1},
	Yield: {"yield", 0}, Sleep: {"sleep", 1}, Hcf: {"hcf", 0},

	L: {"l", 3}, S: {"s", 3}, Ls: {"ls", 4}, Lr: {"lr", 3},
	// Batched (cable-network) variants: lb/sb address by hash, optionally
	// nameHash and/or slot index, always end with logicType; lb/lbn/lbs/lbns
	// additionally take a trailing reducer-mode operand (spec §4.3, §8
	// scenario 4), sb/sbn/sbs/sbns end with the value to broadcast instead.
	Lb: {"lb", 4}, Lbn: {"lbn", 5}, Lbs: {"lbs", 5}, Lbns: {"lbns", 6},
	Sb: {"sb", 3}, Sbn: {"sbn", 4}, Sbs: {"sbs", 4}, Sbns: {"sbns", 5},
}

var byMnemonic = func() map[string]Opcode {
	m := make(map[string]Opcode, len(table))
	for op, info := range table {
		if info.Mnemonic != "" {
			m[info.Mnemonic] = op
		}
	}
	return m
}()

// Lookup resolves a case-folded mnemonic to its Opcode. ok is false for an
// unrecognized mnemonic (LoadError at the parser).
func Lookup(mnemonic string) (Opcode, bool) {
	op, ok := byMnemonic[mnemonic]
	return op, ok
}

// OperandCount returns the fixed operand arity the parser must see for op.
func (op Opcode) OperandCount() int { return table[op].Operands }

// String returns the opcode's canonical mnemonic.
func (op Opcode) String() string {
	if info, ok := table[op]; ok && info.Mnemonic != "" {
		return info.Mnemonic
	}
	if op == Noop {
		return "noop"
	}
	return "unknown"
}

// identOperandIndex maps an opcode to the operand position that names a
// logic type or slot type as a bareword (e.g. "Pressure", "Setting")
// rather than a jump-target label. The parser uses this to disambiguate an
// otherwise-unresolved identifier at load time (spec §4.4, §4.6).
var identOperandIndex = map[Opcode]int{
	L:    2,
	S:    1,
	Ls:   3,
	Lr:   2,
	Lb:   2,
	Lbn:  3,
	Lbs:  3,
	Lbns: 4,
	Sb:   1,
	Sbn:  2,
	Sbs:  2,
	Sbns: 3,
}

// IsIdentOperand reports whether operand index idx of op is a bareword
// logic/slot type name rather than a label reference.
func (op Opcode) IsIdentOperand(idx int) bool {
	want, ok := identOperandIndex[op]
	return ok && want == idx
}

// IsBranch reports whether op is one of the PC-mutating branch opcodes.
func (op Opcode) IsBranch() bool {
	switch op {
	case Beq, Bne, Blt, Ble, Bgt, Bge, Bap, Bna,
		BeqAl, BneAl, BltAl, BleAl, BgtAl, BgeAl, BapAl, BnaAl,
		Breq, Brne, Brlt, Brle, Brgt, Brge, Brap, Brna:
		return true
	default:
		return false
	}
}
