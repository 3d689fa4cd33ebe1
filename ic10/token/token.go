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

// Package token defines the lexical token types for IC10 program text: a
// line-oriented assembly grammar with no expression nesting (spec §4.5).
package token

import "fmt"

// Token is one lexical unit produced by the lexer.
type Token struct {
	Type    Type
	Literal string
	Pos     Position
}

// Position tracks source location for LoadError reporting.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

// Type enumerates IC10's lexical categories.
type Type int

const (
	ILLEGAL Type = iota
	EOF
	NEWLINE
	COMMENT

	IDENT  // opcode/alias/label names, device pins, register names
	INT    // 42
	FLOAT  // 3.14
	HEX    // $FF
	BINARY // %1010

	COLON // label suffix: "name:"
)

func (t Type) String() string {
	switch t {
	case ILLEGAL:
		return "ILLEGAL"
	case EOF:
		return "EOF"
	case NEWLINE:
		return "NEWLINE"
	case COMMENT:
		return "COMMENT"
	case IDENT:
		return "IDENT"
	case INT:
		return "INT"
	case FLOAT:
		return "FLOAT"
	case HEX:
		return "HEX"
	case BINARY:
		return "BINARY"
	case COLON:
		return "COLON"
	default:
		return "UNKNOWN"
	}
}
