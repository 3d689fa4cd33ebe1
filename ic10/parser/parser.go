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

// Package parser resolves IC10 program text (already split into tokens by
// ic10/lexer) into a validated Program: labels, aliases, and defines
// resolved, operands in their final closed-enum shape (spec §4.5).
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stationeers/simcore/common"
	"github.com/stationeers/simcore/ic10/lexer"
	"github.com/stationeers/simcore/ic10/opcode"
	"github.com/stationeers/simcore/ic10/token"
	"github.com/stationeers/simcore/params"
)

type aliasTarget struct {
	isDevicePin bool
	registerIdx int
	devicePin   int
	isSelfPin   bool
}

type parser struct {
	lines [][]token.Token // one slice per source line, comments stripped

	aliases map[string]aliasTarget
	defines map[string]float64
	labels  map[string]int

	// deferred records label-operand resolutions to perform once every
	// label in the program has been seen.
	deferred []deferredLabel
}

type deferredLabel struct {
	instrIdx  int
	operandIdx int
	name      string
	line      int
}

// Parse lexes and parses source into a validated Program, or a LoadError
// naming the offending line.
func Parse(source string) (*Program, error) {
	toks := lexer.Lex(source)
	p := &parser{
		aliases: make(map[string]aliasTarget),
		defines: make(map[string]float64),
		labels:  make(map[string]int),
	}
	p.splitLines(toks)

	prog := &Program{Labels: p.labels}

	nonBlank := 0
	for lineNo, lineToks := range p.lines {
		instr, isNoop, err := p.parseLine(lineNo, lineToks, len(prog.Instructions))
		if err != nil {
			return nil, err
		}
		prog.Instructions = append(prog.Instructions, instr)
		if !isNoop {
			nonBlank++
		}
	}

	if nonBlank > params.MaxProgramInstructions {
		return nil, common.NewLoadError(-1, "program exceeds %d non-blank instructions (got %d)", params.MaxProgramInstructions, nonBlank)
	}

	for _, d := range p.deferred {
		target, ok := p.labels[d.name]
		if !ok {
			return nil, common.NewLoadError(d.line, "unknown label %q", d.name)
		}
		prog.Instructions[d.instrIdx].Operands[d.operandIdx].LabelTarget = target
	}

	return prog, nil
}

// splitLines groups the flat token stream into one slice per source line,
// dropping comment tokens (they carry no semantic content) and the
// newline/EOF delimiters themselves.
func (p *parser) splitLines(toks []token.Token) {
	var cur []token.Token
	for _, t := range toks {
		switch t.Type {
		case token.COMMENT:
			continue
		case token.NEWLINE:
			p.lines = append(p.lines, cur)
			cur = nil
		case token.EOF:
			if len(cur) > 0 {
				p.lines = append(p.lines, cur)
			}
		default:
			cur = append(cur, t)
		}
	}
}

func lower(s string) string { return strings.ToLower(s) }

// parseLine resolves a single source line. instrIdx is the PC this line
// will occupy (== len(already-appended instructions), which always equals
// the source line index since every line produces exactly one slot).
func (p *parser) parseLine(lineNo int, toks []token.Token, instrIdx int) (Instruction, bool, error) {
	if len(toks) == 0 {
		return Instruction{Op: opcode.Noop, Line: lineNo}, true, nil
	}

	// Label: "name:"
	if len(toks) == 2 && toks[0].Type == token.IDENT && toks[1].Type == token.COLON {
		name := lower(toks[0].Literal)
		if _, dup := p.labels[name]; dup {
			return Instruction{}, false, common.NewLoadError(lineNo, "duplicate label %q", toks[0].Literal)
		}
		p.labels[name] = instrIdx
		return Instruction{Op: opcode.Noop, Line: lineNo}, true, nil
	}

	head := lower(toks[0].Literal)

	switch head {
	case "alias":
		if len(toks) != 3 {
			return Instruction{}, false, common.NewLoadError(lineNo, "alias requires exactly 2 arguments")
		}
		target, err := p.resolveAliasTarget(toks[2].Literal)
		if err != nil {
			return Instruction{}, false, common.NewLoadError(lineNo, "alias %q: %v", toks[1].Literal, err)
		}
		p.aliases[lower(toks[1].Literal)] = target
		return Instruction{Op: opcode.Noop, Line: lineNo}, true, nil

	case "define":
		if len(toks) != 3 {
			return Instruction{}, false, common.NewLoadError(lineNo, "define requires exactly 2 arguments")
		}
		v, err := p.parseNumberToken(toks[2])
		if err != nil {
			return Instruction{}, false, common.NewLoadError(lineNo, "define %q: %v", toks[1].Literal, err)
		}
		p.defines[lower(toks[1].Literal)] = v
		return Instruction{Op: opcode.Noop, Line: lineNo}, true, nil

	case "hcf":
		return Instruction{Op: opcode.Hcf, Line: lineNo}, false, nil
	}

	op, ok := opcode.Lookup(head)
	if !ok {
		return Instruction{}, false, common.NewLoadError(lineNo, "unknown instruction %q", toks[0].Literal)
	}
	if want := op.OperandCount(); len(toks)-1 != want {
		return Instruction{}, false, common.NewLoadError(lineNo, "%s expects %d operands, got %d", head, want, len(toks)-1)
	}

	instr := Instruction{Op: op, Line: lineNo}
	for i, t := range toks[1:] {
		operand, labelName, err := p.resolveOperand(t, op, i)
		if err != nil {
			return Instruction{}, false, common.NewLoadError(lineNo, "operand %d: %v", i, err)
		}
		instr.Operands = append(instr.Operands, operand)
		if labelName != "" {
			p.deferred = append(p.deferred, deferredLabel{instrIdx: instrIdx, operandIdx: len(instr.Operands) - 1, name: labelName, line: lineNo})
		}
	}
	return instr, false, nil
}

// resolveAliasTarget resolves the right-hand side of an `alias name target`
// statement: target is a register name, sp/ra, or a device pin name.
func (p *parser) resolveAliasTarget(lit string) (aliasTarget, error) {
	name := lower(lit)
	if pin, self, ok := parseDevicePin(name); ok {
		return aliasTarget{isDevicePin: true, devicePin: pin, isSelfPin: self}, nil
	}
	if idx, ok := parseRegisterName(name); ok {
		return aliasTarget{registerIdx: idx}, nil
	}
	return aliasTarget{}, errUnknownAliasTarget(lit)
}

func errUnknownAliasTarget(lit string) error {
	return fmt.Errorf("unknown alias target %q", lit)
}

// resolveOperand resolves one source token into its final Operand shape.
// A non-empty labelName return means the token is a (possibly forward)
// label reference that must be resolved after the full program is scanned.
func (p *parser) resolveOperand(t token.Token, op opcode.Opcode, idx int) (Operand, string, error) {
	switch t.Type {
	case token.INT, token.FLOAT:
		v, err := p.parseNumberToken(t)
		if err != nil {
			return Operand{}, "", err
		}
		return Operand{Kind: OperandImmediate, Immediate: v}, "", nil
	case token.HEX:
		n, err := strconv.ParseInt(t.Literal, 16, 64)
		if err != nil {
			return Operand{}, "", err
		}
		return Operand{Kind: OperandImmediate, Immediate: float64(n)}, "", nil
	case token.BINARY:
		n, err := strconv.ParseInt(t.Literal, 2, 64)
		if err != nil {
			return Operand{}, "", err
		}
		return Operand{Kind: OperandImmediate, Immediate: float64(n)}, "", nil
	case token.IDENT:
		return p.resolveIdentOperand(t.Literal, op, idx)
	default:
		return Operand{}, "", unexpectedTokenErr(t)
	}
}

func unexpectedTokenErr(t token.Token) error {
	return common.NewLoadError(t.Pos.Line, "unexpected token %q", t.Literal)
}

func (p *parser) resolveIdentOperand(lit string, op opcode.Opcode, idx int) (Operand, string, error) {
	name := lower(lit)

	if at, ok := p.aliases[name]; ok {
		if at.isDevicePin {
			return Operand{Kind: OperandDevicePin, DevicePin: at.devicePin, IsSelfPin: at.isSelfPin}, "", nil
		}
		return Operand{Kind: OperandRegister, RegisterIndex: at.registerIdx}, "", nil
	}
	if v, ok := p.defines[name]; ok {
		return Operand{Kind: OperandImmediate, Immediate: v}, "", nil
	}
	if pin, self, ok := parseDevicePin(name); ok {
		return Operand{Kind: OperandDevicePin, DevicePin: pin, IsSelfPin: self}, "", nil
	}
	if op.IsIdentOperand(idx) {
		return Operand{Kind: OperandIdent, Name: name}, "", nil
	}
	if idx2, depth, ok := parseIndirectRegister(name); ok {
		if depth == 0 {
			return Operand{Kind: OperandRegister, RegisterIndex: idx2}, "", nil
		}
		return Operand{Kind: OperandIndirectRegister, RegisterIndex: idx2, IndirectDepth: depth}, "", nil
	}
	// Otherwise this is a label reference, resolved once the whole program
	// has been scanned (forward references are legal).
	return Operand{Kind: OperandLabel}, name, nil
}

func (p *parser) parseNumberToken(t token.Token) (float64, error) {
	return strconv.ParseFloat(t.Literal, 64)
}

// parseRegisterName resolves a bare register name: r0..r15, sp, ra.
func parseRegisterName(name string) (int, bool) {
	switch name {
	case "sp":
		return 16, true
	case "ra":
		return 17, true
	}
	if len(name) >= 2 && name[0] == 'r' {
		if n, err := strconv.Atoi(name[1:]); err == nil && n >= 0 && n <= 15 {
			return n, true
		}
	}
	return 0, false
}

// parseIndirectRegister resolves rN/rrN/rrrN… tokens. depth 0 means a
// direct register (no indirection).
func parseIndirectRegister(name string) (idx, depth int, ok bool) {
	if name == "sp" || name == "ra" {
		idx, _ = parseRegisterName(name)
		return idx, 0, true
	}
	if len(name) < 2 || name[0] != 'r' {
		return 0, 0, false
	}
	rCount := 0
	for rCount < len(name) && name[rCount] == 'r' {
		rCount++
	}
	rest := name[rCount:]
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 || n > 15 {
		return 0, 0, false
	}
	return n, rCount - 1, true
}

// parseDevicePin resolves d0..d5 and the self-referencing "db" pin.
func parseDevicePin(name string) (pin int, self bool, ok bool) {
	if name == "db" {
		return -1, true, true
	}
	if len(name) == 2 && name[0] == 'd' && name[1] >= '0' && name[1] <= '5' {
		return int(name[1] - '0'), false, true
	}
	return 0, false, false
}
