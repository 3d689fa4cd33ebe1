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

// Package common holds stable identifier types shared across every engine
// package: the manager-assigned ReferenceId for devices, and the NetworkID
// used by cable and atmospheric networks.
package common

import "github.com/google/uuid"

// ReferenceId is a 32-bit stable identifier assigned to a device when it is
// created. ReferenceIds are never reused within a session.
type ReferenceId uint32

// InvalidReferenceId is the zero value, used to mark an unset device pin.
const InvalidReferenceId ReferenceId = 0

// NetworkID identifies a CableNetwork or AtmosphericNetwork. Networks can be
// destroyed mid-session, so ids are not reused the way a simple counter
// would; uuid.UUID guarantees a stale holder never silently addresses a
// different, newer network with the same id.
type NetworkID uuid.UUID

// NewNetworkID allocates a fresh random network id.
func NewNetworkID() NetworkID {
	return NetworkID(uuid.New())
}

// String returns the canonical textual form of the id.
func (n NetworkID) String() string {
	return uuid.UUID(n).String()
}

// PrefabHash is a 32-bit signed integer computed by hashutil.Hash over a
// prefab's canonical name. It identifies a device or item kind.
type PrefabHash int32

// NameHash is a 32-bit signed integer computed the same way as PrefabHash,
// over a device's mutable display name.
type NameHash int32
