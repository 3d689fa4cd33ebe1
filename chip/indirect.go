// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package chip

import (
	"fmt"

	"github.com/holiman/uint256"
)

// MaxIndirectionDepth is the nesting limit for chained register indirection
// (`rrN`, `rrrN`, …) per spec §4.5.
const MaxIndirectionDepth = 5

// ResolveIndirect dereferences baseReg through depth levels of register
// indirection (rrN == depth 1: "register whose index is in baseReg"), and
// returns the final register index. Each intermediate value is converted
// through uint256 so that a negative or out-of-range float register value
// is rejected rather than silently truncated or wrapping into a valid
// index.
func (c *Chip) ResolveIndirect(baseReg, depth int) (int, error) {
	if depth < 1 || depth > MaxIndirectionDepth {
		return 0, fmt.Errorf("chip: indirection depth %d out of range", depth)
	}
	idx := baseReg
	for i := 0; i < depth; i++ {
		if idx < 0 || idx >= RegisterCount {
			return 0, fmt.Errorf("chip: register index %d out of range", idx)
		}
		v := c.registers[idx]
		next, err := floatToRegisterIndex(v)
		if err != nil {
			return 0, err
		}
		idx = next
	}
	return idx, nil
}

// floatToRegisterIndex converts a register's floating-point content to a
// bounds-checked register index, rejecting negative or fractional-overflow
// values via uint256's unsigned arithmetic rather than Go's wrapping int
// conversion.
func floatToRegisterIndex(v float64) (int, error) {
	if v < 0 {
		return 0, fmt.Errorf("chip: negative register index %v", v)
	}
	u, overflow := uint256.FromBig(bigFromFloat(v))
	if overflow {
		return 0, fmt.Errorf("chip: register index %v overflows", v)
	}
	if !u.IsUint64() || u.Uint64() >= uint64(RegisterCount) {
		return 0, fmt.Errorf("chip: register index %v out of range", v)
	}
	return int(u.Uint64()), nil
}
