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

// Package idealgas holds the thermodynamic state of ideal gas mixtures
// whose species properties are given by NASA polynomials.
package idealgas

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Solution is the thermodynamic state (temperature, pressure, and mole
// fractions) of an ideal gas mixture of the species in a Mechanism.
// A Solution is not safe for concurrent use.
type Solution struct {
	mech *Mechanism
	t, p float64
	x    []float64

	tmin, tmax float64
}

// NewSolution returns a Solution of the species in m, initially holding
// the first species of m at 300 K and one atmosphere.
func NewSolution(m *Mechanism) *Solution {
	s := &Solution{
		mech: m,
		t:    300,
		p:    OneAtm,
		x:    make([]float64, m.Len()),
		tmin: math.Inf(1),
		tmax: math.Inf(-1),
	}
	s.x[0] = 1
	for _, sp := range m.species {
		s.tmin = math.Min(s.tmin, sp.Thermo.Tmin)
		s.tmax = math.Max(s.tmax, sp.Thermo.Tmax)
	}
	return s
}

// Mechanism returns the mechanism of s.
func (s *Solution) Mechanism() *Mechanism { return s.mech }

// Temperature returns the temperature [K].
func (s *Solution) Temperature() float64 { return s.t }

// Pressure returns the pressure [Pa].
func (s *Solution) Pressure() float64 { return s.p }

// moleVector converts a species-to-fraction map into a normalized mole
// fraction vector in mechanism order.
func (s *Solution) moleVector(X map[string]float64) ([]float64, error) {
	x := make([]float64, s.mech.Len())
	for name, v := range X {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("idealgas: invalid mole fraction %g for species %s", v, name)
		}
		i, err := s.mech.SpeciesIndex(name)
		if err != nil {
			return nil, err
		}
		x[i] += v
	}
	sum := floats.Sum(x)
	if sum == 0 {
		return nil, fmt.Errorf("idealgas: mole fractions sum to zero")
	}
	floats.Scale(1/sum, x)
	return x, nil
}

// SetTPX sets the temperature [K], pressure [Pa], and mole fractions.
// X does not need to be normalized. Every species named in X must be in the
// mechanism, even if its fraction is zero. A NaN temperature or pressure leaves that value
// unchanged. If an error is returned the state is not changed.
func (s *Solution) SetTPX(T, P float64, X map[string]float64) error {
	if math.IsNaN(T) {
		T = s.t
	}
	if math.IsNaN(P) {
		P = s.p
	}
	if !(T > 0) || math.IsInf(T, 0) {
		return fmt.Errorf("idealgas: invalid temperature %g K", T)
	}
	if T < s.tmin || T > s.tmax {
		return fmt.Errorf("idealgas: temperature %g K is outside of the range of mechanism %q (%g to %g K)",
			T, s.mech.Name, s.tmin, s.tmax)
	}
	if !(P > 0) || math.IsInf(P, 0) {
		return fmt.Errorf("idealgas: invalid pressure %g Pa", P)
	}
	x, err := s.moleVector(X)
	if err != nil {
		return err
	}
	s.t, s.p, s.x = T, P, x
	return nil
}

// o2Demand returns the moles of O2 needed to completely oxidize one mole of
// the mixture with mole fractions x. It is negative when the mixture
// holds more oxygen than it needs.
func (s *Solution) o2Demand(x []float64) float64 {
	var d float64
	for _, c := range o2Coefficients {
		e, err := s.mech.elementIndex(c.element)
		if err != nil {
			continue // element not in mechanism
		}
		for k, xk := range x {
			d += xk * c.moles * s.mech.atoms[k][e]
		}
	}
	return d
}

// o2Coefficients give the moles of O2 consumed per atom of each element
// on complete oxidation to CO2, SO2, and H2O.
var o2Coefficients = []struct {
	element string
	moles   float64
}{
	{"C", 1},
	{"S", 1},
	{"H", 0.25},
	{"O", -0.5},
}

// SetEquivalenceRatio sets the mole fractions to a mixture of fuel and
// oxidizer at equivalence ratio phi. Temperature and pressure are not
// changed. The oxidizer must supply oxygen. If the fuel needs no oxygen
// from outside, for example because it holds no carbon or hydrogen or
// already holds enough oxygen to burn, no fuel can be balanced against the
// oxidizer and the composition is set to the oxidizer alone.
func (s *Solution) SetEquivalenceRatio(phi float64, fuel, oxidizer map[string]float64) error {
	if !(phi >= 0) || math.IsInf(phi, 0) {
		return fmt.Errorf("idealgas: invalid equivalence ratio %g", phi)
	}
	xf, err := s.moleVector(fuel)
	if err != nil {
		return fmt.Errorf("idealgas: fuel: %v", err)
	}
	xo, err := s.moleVector(oxidizer)
	if err != nil {
		return fmt.Errorf("idealgas: oxidizer: %v", err)
	}
	oxDemand := s.o2Demand(xo)
	if oxDemand >= 0 {
		return fmt.Errorf("idealgas: oxidizer %v supplies no oxygen", oxidizer)
	}
	fuelDemand := s.o2Demand(xf)
	if fuelDemand <= 0 {
		s.x = xo
		return nil
	}
	// Moles of fuel per mole of oxidizer.
	nFuel := phi * -oxDemand / fuelDemand
	x := make([]float64, len(xo))
	copy(x, xo)
	floats.AddScaled(x, nFuel, xf)
	floats.Scale(1/floats.Sum(x), x)
	s.x = x
	return nil
}

// MeanMolecularWeight returns the mean molar mass of the mixture [g/mol].
func (s *Solution) MeanMolecularWeight() float64 {
	var w float64
	for k, xk := range s.x {
		w += xk * s.mech.species[k].molarMass
	}
	return w
}

// EnthalpyMole returns the molar enthalpy of the mixture [J/mol].
func (s *Solution) EnthalpyMole() float64 {
	var h float64
	for k, xk := range s.x {
		if xk == 0 {
			continue
		}
		h += xk * s.mech.species[k].EnthalpyMole(s.t)
	}
	return h
}

// EnthalpyMass returns the mass-specific enthalpy of the mixture [J/kg].
func (s *Solution) EnthalpyMass() float64 {
	return s.EnthalpyMole() / s.MeanMolecularWeight() * 1000
}

// CpMass returns the mass-specific heat capacity at constant pressure
// [J/(kg K)].
func (s *Solution) CpMass() float64 {
	var cp float64
	for k, xk := range s.x {
		cp += xk * s.mech.species[k].Thermo.CpR(s.t) * GasConstant
	}
	return cp / s.MeanMolecularWeight() * 1000
}

// Density returns the density of the mixture [kg/m³].
func (s *Solution) Density() float64 {
	return s.p * s.MeanMolecularWeight() / 1000 / (GasConstant * s.t)
}

// MoleFraction returns the mole fraction of the named species.
func (s *Solution) MoleFraction(species string) (float64, error) {
	i, err := s.mech.SpeciesIndex(species)
	if err != nil {
		return math.NaN(), err
	}
	return s.x[i], nil
}

// MassFraction returns the mass fraction of the named species.
func (s *Solution) MassFraction(species string) (float64, error) {
	i, err := s.mech.SpeciesIndex(species)
	if err != nil {
		return math.NaN(), err
	}
	return s.x[i] * s.mech.species[i].molarMass / s.MeanMolecularWeight(), nil
}

// ElementalMoleFraction returns the number of atoms of the named element
// divided by the total number of atoms in the mixture.
func (s *Solution) ElementalMoleFraction(element string) (float64, error) {
	e, err := s.mech.elementIndex(element)
	if err != nil {
		return math.NaN(), err
	}
	var n, total float64
	for k, xk := range s.x {
		if xk == 0 {
			continue
		}
		n += xk * s.mech.atoms[k][e]
		total += xk * floats.Sum(s.mech.atoms[k])
	}
	return n / total, nil
}
