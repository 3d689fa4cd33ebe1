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

// Package cable implements the logic cable network: a broadcast domain that
// devices attach to, over which batched reads are reduced across every
// attached device's value for a given logic type (spec §4.3).
package cable

import (
	"github.com/stationeers/simcore/common"
)

// Network is an insertion-ordered set of device reference ids. Insertion
// order is part of the contract: batch reads must be reproducible across
// runs given the same sequence of attach calls, so membership is backed by
// a slice alongside a presence map rather than a bare map.
type Network struct {
	id      common.NetworkID
	order   []common.ReferenceId
	present map[common.ReferenceId]int // id -> index into order
}

// New creates an empty cable network with a fresh identity.
func New() *Network {
	return &Network{id: common.NewNetworkID(), present: make(map[common.ReferenceId]int)}
}

// ID returns the network's identity.
func (n *Network) ID() common.NetworkID { return n.id }

// AddDevice attaches id to the network. A device already present is left in
// its original position; attach is idempotent.
func (n *Network) AddDevice(id common.ReferenceId) {
	if _, ok := n.present[id]; ok {
		return
	}
	n.present[id] = len(n.order)
	n.order = append(n.order, id)
}

// RemoveDevice detaches id from the network, if present. Removal preserves
// the relative order of the remaining devices.
func (n *Network) RemoveDevice(id common.ReferenceId) {
	idx, ok := n.present[id]
	if !ok {
		return
	}
	n.order = append(n.order[:idx], n.order[idx+1:]...)
	delete(n.present, id)
	for i := idx; i < len(n.order); i++ {
		n.present[n.order[i]] = i
	}
}

// Contains reports whether id is attached to the network.
func (n *Network) Contains(id common.ReferenceId) bool {
	_, ok := n.present[id]
	return ok
}

// DeviceIDs returns the attached device ids in insertion order. The
// returned slice is a copy; callers may not mutate the network through it.
func (n *Network) DeviceIDs() []common.ReferenceId {
	out := make([]common.ReferenceId, len(n.order))
	copy(out, n.order)
	return out
}

// DeviceCount returns the number of attached devices.
func (n *Network) DeviceCount() int { return len(n.order) }
