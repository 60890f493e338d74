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
	"sort"
)

// physical constants
const (
	// GasConstant is the universal gas constant [J/(mol K)].
	GasConstant = 8.314462618

	// OneAtm is one standard atmosphere [Pa].
	OneAtm = 101325.0
)

// atomicWeights are element molar masses [g/mol].
var atomicWeights = map[string]float64{
	"H":  1.00794,
	"C":  12.011,
	"N":  14.0067,
	"O":  15.9994,
	"S":  32.065,
	"HE": 4.002602,
	"AR": 39.948,
}

// NASA7 holds 7-coefficient NASA polynomials for the thermodynamic
// properties of a species over two temperature ranges: [Tmin, Tmid] uses
// Low and [Tmid, Tmax] uses High. The seventh (entropy) coefficient is
// kept so mechanism files round-trip but is not used.
type NASA7 struct {
	Tmin, Tmid, Tmax float64
	Low, High        [7]float64
}

func (p *NASA7) coeffs(T float64) *[7]float64 {
	if T < p.Tmid {
		return &p.Low
	}
	return &p.High
}

// CpR returns the dimensionless specific heat cp/R at temperature T [K].
func (p *NASA7) CpR(T float64) float64 {
	a := p.coeffs(T)
	return a[0] + T*(a[1]+T*(a[2]+T*(a[3]+T*a[4])))
}

// HRT returns the dimensionless enthalpy h/(RT) at temperature T [K].
// The enthalpy includes the enthalpy of formation at 298.15 K.
func (p *NASA7) HRT(T float64) float64 {
	a := p.coeffs(T)
	return a[0] + T*(a[1]/2+T*(a[2]/3+T*(a[3]/4+T*a[4]/5))) + a[5]/T
}

// Species is a chemical species in a Mechanism.
type Species struct {
	Name string

	// Composition gives the number of atoms of each element in one
	// molecule.
	Composition map[string]float64

	Thermo NASA7

	molarMass float64 // g/mol
}

// MolarMass returns the molar mass of the species [g/mol].
func (s *Species) MolarMass() float64 { return s.molarMass }

// EnthalpyMole returns the molar enthalpy of the species at
// temperature T [J/mol].
func (s *Species) EnthalpyMole(T float64) float64 {
	return s.Thermo.HRT(T) * GasConstant * T
}

// Mechanism is a set of species and their thermodynamic data.
// A Mechanism is not modified after it is created, so it can be shared by
// any number of Solutions.
type Mechanism struct {
	Name    string
	species []*Species
	index   map[string]int

	elements []string
	// atoms[k][e] is the number of atoms of elements[e] in species k.
	atoms [][]float64
}

// NewMechanism creates a mechanism from the given species. Species names
// must be unique and their elements must have known atomic weights.
func NewMechanism(name string, species []*Species) (*Mechanism, error) {
	if len(species) == 0 {
		return nil, fmt.Errorf("idealgas: mechanism %q has no species", name)
	}
	m := &Mechanism{
		Name:    name,
		species: species,
		index:   make(map[string]int, len(species)),
	}
	elementSet := make(map[string]struct{})
	for i, s := range species {
		if _, ok := m.index[s.Name]; ok {
			return nil, fmt.Errorf("idealgas: mechanism %q: duplicate species %s", name, s.Name)
		}
		m.index[s.Name] = i
		if !(s.Thermo.Tmin < s.Thermo.Tmid && s.Thermo.Tmid < s.Thermo.Tmax) {
			return nil, fmt.Errorf("idealgas: mechanism %q: species %s has invalid temperature ranges %g, %g, %g",
				name, s.Name, s.Thermo.Tmin, s.Thermo.Tmid, s.Thermo.Tmax)
		}
		els := make([]string, 0, len(s.Composition))
		for e := range s.Composition {
			els = append(els, e)
		}
		sort.Strings(els) // fixed summation order
		s.molarMass = 0
		for _, e := range els {
			n := s.Composition[e]
			w, ok := atomicWeights[e]
			if !ok {
				return nil, fmt.Errorf("idealgas: mechanism %q: species %s contains unknown element %s", name, s.Name, e)
			}
			if n < 0 {
				return nil, fmt.Errorf("idealgas: mechanism %q: species %s has %g atoms of %s", name, s.Name, n, e)
			}
			s.molarMass += w * n
			elementSet[e] = struct{}{}
		}
		if s.molarMass == 0 {
			return nil, fmt.Errorf("idealgas: mechanism %q: species %s has no atoms", name, s.Name)
		}
	}
	for e := range elementSet {
		m.elements = append(m.elements, e)
	}
	sort.Strings(m.elements)
	m.atoms = make([][]float64, len(species))
	for k, s := range species {
		m.atoms[k] = make([]float64, len(m.elements))
		for e, el := range m.elements {
			m.atoms[k][e] = s.Composition[el]
		}
	}
	return m, nil
}

// Len returns the number of species in the mechanism.
func (m *Mechanism) Len() int { return len(m.species) }

// Species returns the species names in mechanism order.
func (m *Mechanism) Species() []string {
	o := make([]string, len(m.species))
	for i, s := range m.species {
		o[i] = s.Name
	}
	return o
}

// Elements returns the elements present in the mechanism, sorted.
func (m *Mechanism) Elements() []string {
	return append([]string(nil), m.elements...)
}

// SpeciesIndex returns the index of the named species, or an error if
// the mechanism does not contain it.
func (m *Mechanism) SpeciesIndex(name string) (int, error) {
	i, ok := m.index[name]
	if !ok {
		return -1, fmt.Errorf("idealgas: species %s is not in mechanism %q; valid species are %v", name, m.Name, m.Species())
	}
	return i, nil
}

func (m *Mechanism) elementIndex(name string) (int, error) {
	i := sort.SearchStrings(m.elements, name)
	if i == len(m.elements) || m.elements[i] != name {
		return -1, fmt.Errorf("idealgas: element %s is not in mechanism %q; valid elements are %v", name, m.Name, m.elements)
	}
	return i, nil
}
