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

// Package heatval calculates the lower and higher heating values of fuel
// gas mixtures from a complete-combustion energy balance carried out by an
// external thermodynamic solver.
package heatval

import (
	"fmt"
	"strings"
)

// Version gives the version number.
const Version = "1.0.0"

// Kind selects between the lower and higher heating value.
type Kind int

const (
	// LHV is the lower heating value: combustion water stays vapor.
	LHV Kind = iota
	// HHV is the higher heating value: combustion water condenses to liquid.
	HHV
)

func (k Kind) String() string {
	switch k {
	case LHV:
		return "LHV"
	case HHV:
		return "HHV"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) check() error {
	if k != LHV && k != HHV {
		return fmt.Errorf("heatval: invalid heating value type %v; valid options are LHV and HHV", k)
	}
	return nil
}

// ParseKind returns the Kind named by s, which must be "LHV" or "HHV"
// (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LHV":
		return LHV, nil
	case "HHV":
		return HHV, nil
	}
	return LHV, fmt.Errorf("heatval: invalid heating value type %q; valid options are LHV and HHV", s)
}
