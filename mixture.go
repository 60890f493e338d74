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
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// GasMixture describes a gas by its species, their mole fractions, and its
// temperature and pressure.
type GasMixture struct {
	// Species holds chemical formulas (e.g. "CH4") or common names
	// (e.g. "methane") of the species in the mixture.
	Species []string

	// Fractions holds the mole fraction of each species, index-aligned
	// with Species. Fractions do not need to sum to one.
	Fractions []float64

	// T is temperature [K].
	T float64

	// P is pressure [Pa].
	P float64
}

// Composition maps chemical formulas to mole fractions.
type Composition map[string]float64

// Species returns the formulas in c in sorted order.
func (c Composition) Species() []string {
	o := make([]string, 0, len(c))
	for s := range c {
		o = append(o, s)
	}
	sort.Strings(o)
	return o
}

// Total returns the sum of the mole fractions in c.
func (c Composition) Total() float64 {
	v := make([]float64, 0, len(c))
	for _, s := range c.Species() {
		v = append(v, c[s])
	}
	return floats.Sum(v)
}

// formulas maps common species names to the formulas used in chemical
// mechanisms.
var formulas = map[string]string{
	"methane":         "CH4",
	"ethane":          "C2H6",
	"propane":         "C3H8",
	"hydrogen":        "H2",
	"nitrogen":        "N2",
	"oxygen":          "O2",
	"carbon dioxide":  "CO2",
	"carbondioxide":   "CO2",
	"carbon monoxide": "CO",
	"carbonmonoxide":  "CO",
	"water":           "H2O",
	"argon":           "AR",
}

// Formula returns the mechanism formula for the species identifier id.
// Common names are translated; anything else is returned with surrounding
// white space removed.
func Formula(id string) string {
	id = strings.TrimSpace(id)
	if f, ok := formulas[strings.ToLower(id)]; ok {
		return f
	}
	return id
}

// MoleFractions converts m into a Composition keyed by chemical formula.
// Identifiers that resolve to the same formula have their fractions summed.
// It returns an error wrapping ErrMalformedMixture if the species and
// fraction lists differ in length, if a species identifier is empty, or if
// any fraction is negative or not finite.
func MoleFractions(m GasMixture) (Composition, error) {
	if len(m.Species) != len(m.Fractions) {
		return nil, malformed("%d species but %d fractions", len(m.Species), len(m.Fractions))
	}
	x := make(Composition, len(m.Species))
	for i, id := range m.Species {
		f := Formula(id)
		if f == "" {
			return nil, malformed("species %d has an empty identifier", i)
		}
		v := m.Fractions[i]
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, malformed("species %s has invalid mole fraction %g", id, v)
		}
		x[f] += v
	}
	return x, nil
}
