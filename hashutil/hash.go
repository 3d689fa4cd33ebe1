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

// Package hashutil implements the deterministic 32-bit string hash used
// throughout the engine for prefab names and device display names
// (spec §4.8). It is Jenkins' one-at-a-time algorithm, the same function
// Stationeers itself uses to derive PrefabHash/NameHash from strings,
// reinterpreted as a signed int32.
package hashutil

// Hash computes the 32-bit one-at-a-time hash of s and returns it as a
// signed int32, matching the representation of PrefabHash/NameHash.
//
// The empty string always hashes to 0; this is a property of the
// algorithm's identity on a zero-iteration loop, not a special case in this
// implementation.
func Hash(s string) int32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h += uint32(s[i])
		h += h << 10
		h ^= h >> 6
	}
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return int32(h)
}

// HashBytes is the byte-slice form of Hash, used when a caller already has
// the name as []byte and wants to avoid a string conversion.
func HashBytes(b []byte) int32 {
	var h uint32
	for _, c := range b {
		h += uint32(c)
		h += h << 10
		h ^= h >> 6
	}
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return int32(h)
}
