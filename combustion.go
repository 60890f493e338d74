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

import (
	"fmt"
	"math"
)

// Phase is a step in the combustion energy balance.
type Phase int

// The phases of a combustion energy balance, in the only order in which
// they may occur.
const (
	Uninitialized Phase = iota
	ReactantSet
	CombustionNormalized
	ProductSet
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "Uninitialized"
	case ReactantSet:
		return "ReactantSet"
	case CombustionNormalized:
		return "CombustionNormalized"
	case ProductSet:
		return "ProductSet"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// pureOxygen is the oxidizer used to normalize the fuel to a
// stoichiometric mixture.
var pureOxygen = map[string]float64{"O2": 1.0}

// minFuelFraction is the smallest fuel mass fraction that is not
// treated as zero.
const minFuelFraction = 1e-12

// combustion drives a single Solver through the reactant and product states
// of one energy balance. Each method is one state transition and fails if
// called out of order.
type combustion struct {
	s     Solver
	phase Phase

	h1    float64 // reactant enthalpy [J/kg mixture]
	yFuel float64 // fuel mass fraction of the stoichiometric mixture
	h2    float64 // product enthalpy [J/kg mixture]
	yH2O  float64 // water mass fraction of the products
}

func newCombustion(s Solver) *combustion {
	return &combustion{s: s}
}

// expect returns an error if the transition from the current phase to
// phase to does not start in phase from.
func (c *combustion) expect(from, to Phase) error {
	if c.phase != from {
		return fmt.Errorf("heatval: illegal combustion transition %v -> %v", c.phase, to)
	}
	return nil
}

// setReactant sets the solver to the unburned mixture x at temperature T
// and pressure P.
func (c *combustion) setReactant(T, P float64, x Composition) error {
	if err := c.expect(Uninitialized, ReactantSet); err != nil {
		return err
	}
	if err := c.s.SetTPX(T, P, x); err != nil {
		return solverError("set reactant state", err)
	}
	c.phase = ReactantSet
	return nil
}

// normalize re-expresses the reactant x as a stoichiometric mixture with
// pure oxygen and records the reactant enthalpy and fuel mass fraction.
// It returns ErrDivisionByZero if the stoichiometric mixture holds no fuel.
func (c *combustion) normalize(x Composition) error {
	if err := c.expect(ReactantSet, CombustionNormalized); err != nil {
		return err
	}
	if err := c.s.SetEquivalenceRatio(1.0, x, pureOxygen); err != nil {
		return solverError("set stoichiometric mixture", err)
	}
	c.h1 = c.s.EnthalpyMass()
	yO2, err := c.s.MassFraction("O2")
	if err != nil {
		return solverError("read O2 mass fraction", err)
	}
	c.yFuel = 1 - yO2
	if math.Abs(c.yFuel) < minFuelFraction {
		return ErrDivisionByZero
	}
	c.phase = CombustionNormalized
	return nil
}

// products returns the complete-combustion products of the current solver
// state: all carbon to CO2, all hydrogen to H2O, and all nitrogen to N2.
func (c *combustion) products() (Composition, error) {
	if c.phase != CombustionNormalized {
		return nil, fmt.Errorf("heatval: cannot derive products in phase %v", c.phase)
	}
	p := make(Composition, 3)
	for _, e := range []struct {
		element, species string
		factor           float64
	}{
		{"C", "CO2", 1},
		{"H", "H2O", 0.5},
		{"N", "N2", 0.5},
	} {
		z, err := c.s.ElementalMoleFraction(e.element)
		if err != nil {
			return nil, solverError("read elemental mole fraction of "+e.element, err)
		}
		p[e.species] = e.factor * z
	}
	return p, nil
}

// burn sets the solver to the product composition p, keeping temperature
// and pressure, and records the product enthalpy and water mass fraction.
func (c *combustion) burn(p Composition) error {
	if err := c.expect(CombustionNormalized, ProductSet); err != nil {
		return err
	}
	if err := c.s.SetTPX(Unchanged, Unchanged, p); err != nil {
		return solverError("set product state", err)
	}
	y, err := c.s.MassFraction("H2O")
	if err != nil {
		return solverError("read H2O mass fraction", err)
	}
	c.yH2O = y
	c.h2 = c.s.EnthalpyMass()
	c.phase = ProductSet
	return nil
}

// lhv returns the lower heating value [J/kg fuel].
func (c *combustion) lhv() (float64, error) {
	if c.phase != ProductSet {
		return 0, fmt.Errorf("heatval: cannot calculate heating value in phase %v", c.phase)
	}
	return -(c.h2 - c.h1) / c.yFuel, nil
}

// hhv returns the higher heating value [J/kg fuel], given the enthalpies
// [J/kg] of saturated liquid and vapor water.
func (c *combustion) hhv(hLiquid, hGas float64) (float64, error) {
	if c.phase != ProductSet {
		return 0, fmt.Errorf("heatval: cannot calculate heating value in phase %v", c.phase)
	}
	return -(c.h2 - c.h1 + (hLiquid-hGas)*c.yH2O) / c.yFuel, nil
}
