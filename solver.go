/*
Copyright © 2021 the HeatVal authors.
This file is part of HeatVal.

HeatVal is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

HeatVal is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with HeatVal.  If not, see <http://www.gnu.org/licenses/>.
*/

package heatval

import "math"

// Unchanged can be passed as the temperature or pressure argument of
// Solver.SetTPX to keep the current value.
var Unchanged = math.NaN()

// Solver is an interface for thermodynamic solvers that hold the state of
// an ideal gas mixture. Solvers are mutable: every Set method changes the
// state that subsequent reads observe, so a Solver must not be used by
// more than one calculation at a time.
type Solver interface {
	// SetTPX sets the temperature [K], pressure [Pa], and mole fractions
	// of the mixture. Mole fractions are normalized by the solver.
	// A NaN temperature or pressure leaves that value unchanged.
	SetTPX(T, P float64, X map[string]float64) error

	// SetEquivalenceRatio sets the composition to a mixture of fuel and
	// oxidizer (both given as mole fractions) at equivalence ratio phi,
	// keeping temperature and pressure unchanged.
	SetEquivalenceRatio(phi float64, fuel, oxidizer map[string]float64) error

	// EnthalpyMass returns the mass-specific enthalpy of the current
	// state [J/kg].
	EnthalpyMass() float64

	// MassFraction returns the mass fraction of the named species in
	// the current state.
	MassFraction(species string) (float64, error)

	// ElementalMoleFraction returns the fraction of all atoms in the
	// current state that belong to the named element.
	ElementalMoleFraction(element string) (float64, error)

	// Density returns the density of the current state [kg/m³].
	Density() float64
}

// WaterModel is an interface for pure water property models.
type WaterModel interface {
	// SetTX sets the temperature [K] and vapor fraction (0 for saturated
	// liquid, 1 for saturated vapor).
	SetTX(T, x float64) error

	// EnthalpyMass returns the mass-specific enthalpy of the
	// current state [J/kg].
	EnthalpyMass() float64
}
