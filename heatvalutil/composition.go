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

package heatvalutil

import (
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/heatval"
	"github.com/spf13/cast"
)

// ParseComposition parses a composition given as comma-separated
// species:fraction pairs, e.g. "CH4:0.9,H2:0.1". Species may be
// formulas or common names. A species without a fraction is given a
// fraction of one. Fractions that do not sum to one are accepted, and a
// warning is logged because they will be normalized.
func ParseComposition(s string, T, P float64) (heatval.GasMixture, error) {
	m := heatval.GasMixture{T: T, P: P}
	c := make(heatval.Composition)
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		parts := strings.SplitN(item, ":", 2)
		species := strings.TrimSpace(parts[0])
		if species == "" {
			return heatval.GasMixture{}, fmt.Errorf("heatvalutil: missing species name in composition item %q", item)
		}
		f := 1.0
		if len(parts) == 2 {
			var err error
			f, err = cast.ToFloat64E(strings.TrimSpace(parts[1]))
			if err != nil {
				return heatval.GasMixture{}, fmt.Errorf("heatvalutil: invalid fraction for %s: %v", species, err)
			}
		}
		m.Species = append(m.Species, species)
		m.Fractions = append(m.Fractions, f)
		c[species] += f
	}
	if len(m.Species) == 0 {
		return heatval.GasMixture{}, fmt.Errorf("heatvalutil: empty composition %q", s)
	}
	if total := c.Total(); math.Abs(total-1) > 1e-6 {
		logrus.WithFields(logrus.Fields{
			"composition": s,
			"total":       total,
		}).Warn("heatvalutil: mole fractions do not sum to one; they will be normalized")
	}
	return m, nil
}

// Blend returns the binary mixture of species a and b that holds mole
// fraction fb of b.
func Blend(a, b string, fb, T, P float64) heatval.GasMixture {
	return heatval.GasMixture{
		Species:   []string{a, b},
		Fractions: []float64{1 - fb, fb},
		T:         T,
		P:         P,
	}
}
