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
	"sync"

	"github.com/ctessum/unit"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/heatval/internal/hash"
)

// WaterReferenceT is the temperature [K] at which the latent heat of the
// product water is evaluated for the higher heating value.
const WaterReferenceT = 298.0

// Standard conditions for volumetric quantities.
const (
	StandardT = 288.15 // K
	StandardP = 101325 // Pa
)

// Units
var (
	joulesPerKg = unit.Dimensions{
		unit.LengthDim: 2,
		unit.TimeDim:   -2}
	joulesPerM3 = unit.Dimensions{
		unit.MassDim:   1,
		unit.LengthDim: -1,
		unit.TimeDim:   -2}
)

// Result holds the heating values of a fuel mixture.
type Result struct {
	// LHV and HHV are the lower and higher heating values [J/kg fuel].
	LHV, HHV float64

	// FuelMassFraction is the fuel mass fraction of the stoichiometric
	// fuel/oxygen mixture.
	FuelMassFraction float64

	// WaterMassFraction is the mass fraction of water in the
	// combustion products.
	WaterMassFraction float64
}

// Value returns the heating value of kind k [J/kg].
func (r Result) Value(k Kind) float64 {
	if k == HHV {
		return r.HHV
	}
	return r.LHV
}

// Unit returns the heating value of kind k with units of J/kg.
func (r Result) Unit(k Kind) *unit.Unit {
	return unit.New(r.Value(k), joulesPerKg)
}

// Volumetric returns the heating value of kind k per unit volume [J/m³]
// of fuel with the given density [kg/m³].
func (r Result) Volumetric(k Kind, density float64) *unit.Unit {
	return unit.New(r.Value(k)*density, joulesPerM3)
}

// Calculator calculates heating values using a thermodynamic solver and a
// water model. A Calculator holds its solver for the whole of each
// calculation, so concurrent calls on the same Calculator are serialized.
// To calculate in parallel, create one Calculator, with its own Solver and
// WaterModel, per goroutine.
type Calculator struct {
	Gas   Solver
	Water WaterModel

	// Log receives a debug message for each calculation. If nil,
	// logrus.StandardLogger() is used.
	Log logrus.FieldLogger

	mu sync.Mutex
}

// NewCalculator returns a Calculator that uses the given solver and
// water model.
func NewCalculator(gas Solver, water WaterModel) *Calculator {
	return &Calculator{Gas: gas, Water: water, Log: logrus.StandardLogger()}
}

func (c *Calculator) log() logrus.FieldLogger {
	if c.Log == nil {
		return logrus.StandardLogger()
	}
	return c.Log
}

// Calculate returns both heating values of m.
func (c *Calculator) Calculate(m GasMixture) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, err := c.calculate(m, true)
	c.report(m, r, true, err)
	return r, err
}

// HeatingValue returns the heating value of m of kind k [J/kg fuel].
// The water model is only used when k is HHV. It returns an error if k is
// neither LHV nor HHV.
func (c *Calculator) HeatingValue(m GasMixture, k Kind) (float64, error) {
	if err := k.check(); err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	r, err := c.calculate(m, k == HHV)
	c.report(m, r, k == HHV, err)
	if err != nil {
		return 0, err
	}
	return r.Value(k), nil
}

// HeatingValue returns the heating value of m of kind k [J/kg fuel] using
// the given solver and water model.
func HeatingValue(gas Solver, water WaterModel, m GasMixture, k Kind) (float64, error) {
	return NewCalculator(gas, water).HeatingValue(m, k)
}

// calculate carries out the energy balance. The higher heating value is
// only calculated when withHHV is true.
func (c *Calculator) calculate(m GasMixture, withHHV bool) (Result, error) {
	x, err := MoleFractions(m)
	if err != nil {
		return Result{}, err
	}
	b := newCombustion(c.Gas)
	if err := b.setReactant(m.T, m.P, x); err != nil {
		return Result{}, err
	}
	if err := b.normalize(x); err != nil {
		return Result{}, err
	}
	p, err := b.products()
	if err != nil {
		return Result{}, err
	}
	if err := b.burn(p); err != nil {
		return Result{}, err
	}
	var r Result
	if r.LHV, err = b.lhv(); err != nil {
		return Result{}, err
	}
	r.FuelMassFraction = b.yFuel
	r.WaterMassFraction = b.yH2O
	if !withHHV {
		return r, nil
	}
	hLiquid, hGas, err := c.waterEnthalpies()
	if err != nil {
		return Result{}, err
	}
	if r.HHV, err = b.hhv(hLiquid, hGas); err != nil {
		return Result{}, err
	}
	return r, nil
}

// waterEnthalpies returns the enthalpies [J/kg] of saturated liquid and
// saturated vapor water at WaterReferenceT.
func (c *Calculator) waterEnthalpies() (hLiquid, hGas float64, err error) {
	if err = c.Water.SetTX(WaterReferenceT, 0); err != nil {
		return 0, 0, solverError("set liquid water state", err)
	}
	hLiquid = c.Water.EnthalpyMass()
	if err = c.Water.SetTX(WaterReferenceT, 1); err != nil {
		return 0, 0, solverError("set water vapor state", err)
	}
	hGas = c.Water.EnthalpyMass()
	return hLiquid, hGas, nil
}

func (c *Calculator) report(m GasMixture, r Result, withHHV bool, err error) {
	l := c.log().WithFields(logrus.Fields{
		"mixture": hash.Hash(m),
		"T":       m.T,
		"P":       m.P,
	})
	if err != nil {
		l.WithError(err).Debug("heatval: heating value calculation failed")
		return
	}
	f := logrus.Fields{
		"Y_fuel": r.FuelMassFraction,
		"LHV":    r.LHV,
	}
	if withHHV {
		f["HHV"] = r.HHV
	}
	l.WithFields(f).Debug("heatval: calculated heating value")
}

// StandardDensity returns the density [kg/m³] of m at StandardT and
// StandardP. It changes the state of s.
func StandardDensity(s Solver, m GasMixture) (float64, error) {
	x, err := MoleFractions(m)
	if err != nil {
		return 0, err
	}
	if err := s.SetTPX(StandardT, StandardP, x); err != nil {
		return 0, solverError("set standard state", err)
	}
	return s.Density(), nil
}
