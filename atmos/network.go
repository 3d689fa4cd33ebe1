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

// Package atmos wraps a gas.Mixture in a network identity so that devices
// can share a single mixture by reference (spec §3, §4.2): the network is
// referenced, not owned, by the devices that attach a port to it.
package atmos

import (
	"github.com/stationeers/simcore/common"
	"github.com/stationeers/simcore/gas"
)

// Network is a shared gas mixture plus identity. Its lifetime is governed
// by the manager: it lives as long as the manager keeps it registered, and
// independently of any device's attachment to it.
type Network struct {
	id      common.NetworkID
	mixture *gas.Mixture
}

// New creates a Network wrapping a fresh, empty Mixture of the given volume.
// volumeLiters must be > 0 (spec §4.2, §7 DomainError).
func New(volumeLiters float64) (*Network, error) {
	if volumeLiters <= 0 {
		return nil, common.ErrNonPositiveVolume
	}
	return &Network{id: common.NewNetworkID(), mixture: gas.New(volumeLiters)}, nil
}

// ID returns the network's identity.
func (n *Network) ID() common.NetworkID { return n.id }

// Mixture returns the network's underlying gas mixture for direct
// manipulation by device behaviors (Filtration, GasSensor, …).
func (n *Network) Mixture() *gas.Mixture { return n.mixture }

// Pressure, Temperature, TotalMoles, TotalVolume, and GasRatio are read-only
// observers exposed directly to the host UI per spec §4.2, forwarding to
// the underlying mixture.
func (n *Network) Pressure() float64               { return n.mixture.Pressure() }
func (n *Network) Temperature() float64            { return n.mixture.Temperature() }
func (n *Network) TotalMoles() float64             { return n.mixture.TotalMoles() }
func (n *Network) TotalVolume() float64            { return n.mixture.Volume() }
func (n *Network) GasRatio(s gas.Species) float64  { return n.mixture.GasRatio(s) }
func (n *Network) Moles(s gas.Species) float64     { return n.mixture.Moles(s) }

// Equalize swaps moles between a and b proportionally to their volumes,
// conserving total moles and energy per species across both networks. This
// is the "future operation" spec §4.2 describes; SPEC_FULL.md promotes it
// to a required pipe-equalization primitive.
//
// The target state for each species is the volume-weighted share of the
// combined (moles, energy) that belongs to each side; this is exactly what
// a merge-then-split-by-volume-ratio computes, and is conservative by
// construction since merge only reassigns existing totals.
func Equalize(a, b *Network) {
	av, bv := a.mixture.Volume(), b.mixture.Volume()
	totalVolume := av + bv
	if totalVolume <= 0 {
		return
	}
	aShare := av / totalVolume
	bShare := bv / totalVolume

	for _, s := range gas.All() {
		totalMoles := a.mixture.Moles(s) + b.mixture.Moles(s)
		totalEnergy := a.mixture.Energy(s) + b.mixture.Energy(s)

		targetAMoles := totalMoles * aShare
		targetAEnergy := totalEnergy * aShare
		targetBMoles := totalMoles * bShare
		targetBEnergy := totalEnergy * bShare

		setSpecies(a.mixture, s, targetAMoles, targetAEnergy)
		setSpecies(b.mixture, s, targetBMoles, targetBEnergy)
	}
}

// setSpecies directly overwrites a single species' moles/energy. This is an
// atmos-internal helper (not exposed on gas.Mixture's public API, which
// only allows physically-meaningful add/remove/merge) used exclusively by
// Equalize, which computes both sides' post-state before committing either.
func setSpecies(m *gas.Mixture, s gas.Species, moles, energy float64) {
	m.RemoveAll(s)
	if moles <= 0 {
		return
	}
	temp := 0.0
	if moles > 0 {
		temp = energy / (moles * s.Cv())
	}
	_ = m.Add(s, moles, temp)
}
