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
	"errors"
	"fmt"
)

var (
	// ErrMalformedMixture is returned when a GasMixture cannot be converted
	// to mole fractions, for example because its species and fraction
	// lists have different lengths or a fraction is negative.
	ErrMalformedMixture = errors.New("heatval: malformed mixture")

	// ErrDivisionByZero is returned when the stoichiometric mixture
	// contains no fuel, so there is no fuel mass to normalize by.
	ErrDivisionByZero = errors.New("heatval: division by zero: mixture contains no fuel")

	// ErrSolverState matches any *SolverStateError when used with errors.Is.
	ErrSolverState = errors.New("heatval: solver state error")
)

// SolverStateError reports a failure of the thermodynamic solver or the
// water model during one step of a heating value calculation.
type SolverStateError struct {
	// Step names the calculation step that failed.
	Step string
	Err  error
}

func (e *SolverStateError) Error() string {
	return fmt.Sprintf("heatval: solver failed to %s: %v", e.Step, e.Err)
}

// Unwrap returns the underlying solver error.
func (e *SolverStateError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrSolverState) true for all SolverStateErrors.
func (e *SolverStateError) Is(target error) bool { return target == ErrSolverState }

func solverError(step string, err error) error {
	return &SolverStateError{Step: step, Err: err}
}

func malformed(format string, a ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrMalformedMixture}, a...)...)
}
