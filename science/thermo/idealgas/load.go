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

package idealgas

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// mechanismFile is the TOML representation of a Mechanism, e.g.:
//
//	name = "gri30"
//	[[species]]
//	name = "H2"
//	composition = { H = 2.0 }
//	tmin = 200.0
//	tmid = 1000.0
//	tmax = 3500.0
//	low = [2.34433112, 7.98052075e-03, ...]
//	high = [3.33727920, -4.94024731e-05, ...]
type mechanismFile struct {
	Name    string
	Species []speciesRecord
}

type speciesRecord struct {
	Name             string
	Composition      map[string]float64
	Tmin, Tmid, Tmax float64
	Low, High        []float64
}

// LoadMechanism reads a mechanism in TOML format from r.
func LoadMechanism(r io.Reader) (*Mechanism, error) {
	var f mechanismFile
	if _, err := toml.DecodeReader(r, &f); err != nil {
		return nil, fmt.Errorf("idealgas: reading mechanism: %v", err)
	}
	species := make([]*Species, len(f.Species))
	for i, rec := range f.Species {
		if len(rec.Low) != 7 || len(rec.High) != 7 {
			return nil, fmt.Errorf("idealgas: reading mechanism %q: species %s needs 7 low and 7 high coefficients; it has %d and %d",
				f.Name, rec.Name, len(rec.Low), len(rec.High))
		}
		s := &Species{
			Name:        rec.Name,
			Composition: rec.Composition,
			Thermo:      NASA7{Tmin: rec.Tmin, Tmid: rec.Tmid, Tmax: rec.Tmax},
		}
		copy(s.Thermo.Low[:], rec.Low)
		copy(s.Thermo.High[:], rec.High)
		species[i] = s
	}
	return NewMechanism(f.Name, species)
}

// LoadMechanismFile reads a mechanism in TOML format from the named file.
func LoadMechanismFile(filename string) (*Mechanism, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("idealgas: opening mechanism file: %v", err)
	}
	defer f.Close()
	return LoadMechanism(f)
}
