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

package gas

import (
	"math"

	"github.com/stationeers/simcore/common"
	"github.com/stationeers/simcore/log"
	"github.com/stationeers/simcore/params"
)

// Mixture holds per-species moles and internal energy in a shared volume.
// Energy is stored separately from a single derived temperature so that two
// mixtures can be merged without losing information: temperature is always
// computable as (sum of U_i) / (sum of n_i * Cv_i).
//
// Invariants: every moles[i] >= 0, every energy[i] >= 0, volume > 0.
type Mixture struct {
	moles  [speciesCount]float64
	energy [speciesCount]float64
	volume float64 // liters

	log log.Logger
}

// New creates a Mixture with the given volume (liters) and no gas. volume
// must be > 0; the caller is expected to have validated this as a
// DomainError before construction (see atmos.New).
func New(volumeLiters float64) *Mixture {
	return &Mixture{volume: volumeLiters, log: log.New("pkg", "gas")}
}

// clampNonNegative replaces NaN or negative v with 0 and reports a
// DataError for op; state remains well-formed per spec §7 policy.
func (m *Mixture) clampNonNegative(op string, v float64) (float64, error) {
	if math.IsNaN(v) {
		m.log.Warn("mixture produced NaN, clamping to zero", "op", op)
		return 0, common.NewDataError(op, "NaN produced")
	}
	if v < 0 {
		m.log.Warn("mixture produced negative value, clamping to zero", "op", op, "value", v)
		return 0, common.NewDataError(op, "negative value %v", v)
	}
	return v, nil
}

// Add increments moles[species] by moles and energy[species] by
// moles*Cv*atTemperature.
func (m *Mixture) Add(species Species, moles, atTemperature float64) error {
	n, errN := m.clampNonNegative("add.moles", m.moles[species]+moles)
	u, errU := m.clampNonNegative("add.energy", m.energy[species]+moles*species.Cv()*atTemperature)
	m.moles[species] = n
	m.energy[species] = u
	if errN != nil {
		return errN
	}
	return errU
}

// Remove decrements moles[species] by moles, scaling energy[species]
// proportionally so the temperature of the removed portion equals the
// temperature of the source. If moles exceeds the available amount, the
// mixture clamps to zero rather than going negative.
func (m *Mixture) Remove(species Species, moles float64) error {
	available := m.moles[species]
	if moles <= 0 {
		return nil
	}
	if moles >= available {
		m.moles[species] = 0
		m.energy[species] = 0
		if moles > available {
			return common.NewDataError("remove", "requested %v mol of %s but only %v available; clamped", moles, species, available)
		}
		return nil
	}
	remainingRatio := (available - moles) / available
	m.moles[species] = available - moles
	m.energy[species] = m.energy[species] * remainingRatio
	return nil
}

// RemoveAll zeroes both moles and energy for species.
func (m *Mixture) RemoveAll(species Species) {
	m.moles[species] = 0
	m.energy[species] = 0
}

// Merge adds other's moles and energy into m, element-wise, and zeroes
// other. m's volume is unchanged; other's volume is left as-is (merge only
// moves gas, never rescales the source container).
func (m *Mixture) Merge(other *Mixture) {
	for i := 0; i < int(speciesCount); i++ {
		m.moles[i] += other.moles[i]
		m.energy[i] += other.energy[i]
		other.moles[i] = 0
		other.energy[i] = 0
	}
}

// TotalMoles returns the sum of moles across every species.
func (m *Mixture) TotalMoles() float64 {
	var total float64
	for i := 0; i < int(speciesCount); i++ {
		total += m.moles[i]
	}
	return total
}

// TotalEnergy returns the sum of internal energy across every species.
func (m *Mixture) TotalEnergy() float64 {
	var total float64
	for i := 0; i < int(speciesCount); i++ {
		total += m.energy[i]
	}
	return total
}

// Temperature returns (sum U_i) / (sum n_i * Cv_i). When total moles is
// below params.MinMoles, temperature is 0 by definition.
func (m *Mixture) Temperature() float64 {
	var denom float64
	var totalMoles float64
	for i := 0; i < int(speciesCount); i++ {
		denom += m.moles[i] * Species(i).Cv()
		totalMoles += m.moles[i]
	}
	if totalMoles < params.MinMoles || denom == 0 {
		return 0
	}
	return m.TotalEnergy() / denom
}

// Pressure returns (sum n_i * R * T) / V. Requires volume > 0, which New
// guarantees for the lifetime of the Mixture.
func (m *Mixture) Pressure() float64 {
	if m.volume <= 0 {
		return 0
	}
	n := m.TotalMoles()
	if n < params.MinMoles {
		return 0
	}
	return n * params.GasConstant * m.Temperature() / m.volume
}

// Volume returns the mixture's container volume in liters.
func (m *Mixture) Volume() float64 { return m.volume }

// SetVolume adjusts the container volume, leaving moles and energy
// untouched; pressure therefore changes ~1/V (isothermal).
func (m *Mixture) SetVolume(v float64) error {
	if v <= 0 {
		return common.ErrNonPositiveVolume
	}
	m.volume = v
	return nil
}

// SetTemperature rescales every species' energy to n_i*Cv_i*tNew, holding
// moles fixed.
func (m *Mixture) SetTemperature(tNew float64) {
	for i := 0; i < int(speciesCount); i++ {
		m.energy[i] = m.moles[i] * Species(i).Cv() * tNew
	}
}

// Moles returns the moles of a single species.
func (m *Mixture) Moles(species Species) float64 { return m.moles[species] }

// Energy returns the internal energy of a single species.
func (m *Mixture) Energy(species Species) float64 { return m.energy[species] }

// GasRatio returns moles[species] / total moles, or 0 when the mixture
// holds no gas.
func (m *Mixture) GasRatio(species Species) float64 {
	total := m.TotalMoles()
	if total < params.MinMoles {
		return 0
	}
	return m.moles[species] / total
}

// Clone returns a deep copy of m, useful for snapshot-based tests.
func (m *Mixture) Clone() *Mixture {
	c := &Mixture{volume: m.volume, log: m.log}
	c.moles = m.moles
	c.energy = m.energy
	return c
}
