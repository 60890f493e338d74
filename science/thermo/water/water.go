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

// Package water calculates properties of saturated liquid water and water
// vapor by interpolating in steam tables.
package water

import (
	"fmt"
	"math"
	"sort"
)

// Temperature limits of the saturation table [K].
const (
	Tmin = 273.16
	Tmax = 473.15
)

// saturation holds saturated water properties from the IAPWS steam tables:
// temperature [°C], liquid enthalpy hf [kJ/kg], and enthalpy of
// vaporization hfg [kJ/kg]. Enthalpies are relative to saturated liquid at
// the triple point.
var saturation = []struct {
	tC, hf, hfg float64
}{
	{0.01, 0.001, 2500.9},
	{5, 21.02, 2489.1},
	{10, 42.02, 2477.2},
	{15, 62.98, 2465.4},
	{20, 83.91, 2453.5},
	{25, 104.83, 2441.7},
	{30, 125.73, 2429.8},
	{35, 146.63, 2417.9},
	{40, 167.53, 2406.0},
	{45, 188.43, 2394.0},
	{50, 209.34, 2382.0},
	{60, 251.18, 2357.7},
	{70, 293.07, 2333.0},
	{80, 335.02, 2308.0},
	{90, 377.04, 2282.5},
	{100, 419.17, 2256.4},
	{120, 503.81, 2202.1},
	{140, 589.16, 2144.3},
	{160, 675.47, 2082.0},
	{180, 763.05, 2014.2},
	{200, 852.26, 1939.7},
}

// Water is the state of saturated pure water: a temperature and a vapor
// fraction. A Water is not safe for concurrent use.
type Water struct {
	t, x float64
}

// New returns saturated liquid water at 298.15 K.
func New() *Water {
	return &Water{t: 298.15}
}

// SetTX sets the temperature [K] and the vapor fraction x, where 0 is
// saturated liquid and 1 is saturated vapor. If an error is returned the
// state is not changed.
func (w *Water) SetTX(T, x float64) error {
	if math.IsNaN(T) || T < Tmin || T > Tmax {
		return fmt.Errorf("water: temperature %g K is outside of the saturation range %g to %g K", T, Tmin, Tmax)
	}
	if math.IsNaN(x) || x < 0 || x > 1 {
		return fmt.Errorf("water: vapor fraction %g must be between 0 and 1", x)
	}
	w.t, w.x = T, x
	return nil
}

// Temperature returns the temperature [K].
func (w *Water) Temperature() float64 { return w.t }

// VaporFraction returns the vapor fraction.
func (w *Water) VaporFraction() float64 { return w.x }

// EnthalpyMass returns the mass-specific enthalpy [J/kg].
func (w *Water) EnthalpyMass() float64 {
	hf, hfg := interpolate(w.t)
	return (hf + w.x*hfg) * 1000
}

// LatentHeat returns the enthalpy of vaporization at the current
// temperature [J/kg].
func (w *Water) LatentHeat() float64 {
	_, hfg := interpolate(w.t)
	return hfg * 1000
}

// interpolate returns hf and hfg [kJ/kg] at temperature T [K] by linear
// interpolation in the saturation table.
func interpolate(T float64) (hf, hfg float64) {
	tC := T - 273.15
	i := sort.Search(len(saturation), func(i int) bool { return saturation[i].tC >= tC })
	switch {
	case i == 0:
		return saturation[0].hf, saturation[0].hfg
	case i == len(saturation):
		last := saturation[len(saturation)-1]
		return last.hf, last.hfg
	}
	lo, hi := saturation[i-1], saturation[i]
	f := (tC - lo.tC) / (hi.tC - lo.tC)
	return lo.hf + f*(hi.hf-lo.hf), lo.hfg + f*(hi.hfg-lo.hfg)
}
