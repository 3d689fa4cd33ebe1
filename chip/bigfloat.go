// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package chip

import "math/big"

// bigFromFloat truncates v toward zero and converts it to a *big.Int, the
// intermediate form uint256.FromBig expects.
func bigFromFloat(v float64) *big.Int {
	bf := new(big.Float).SetFloat64(v)
	i, _ := bf.Int(nil)
	return i
}
