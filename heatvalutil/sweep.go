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
	"context"
	"fmt"
	"math"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/heatval"
	"github.com/spatialmodel/heatval/science/thermo/idealgas"
	"github.com/spatialmodel/heatval/science/thermo/water"
	"golang.org/x/sync/errgroup"
)

// SweepConfig specifies a sweep over binary blends of two species.
type SweepConfig struct {
	// From and To are the species at the start (zero fraction of To)
	// and end (zero fraction of From) of the sweep.
	From, To string

	// Step is the increment in the mole fraction of To between rows.
	Step float64

	// T [K] and P [Pa] are the reactant temperature and pressure.
	T, P float64

	// Mechanism holds the species data. If nil, idealgas.GRI30() is used.
	Mechanism *idealgas.Mechanism

	// Workers is the number of concurrent calculations. If it is
	// less than one, runtime.GOMAXPROCS(0) is used.
	Workers int

	// Log receives a message for each failed row. If nil,
	// logrus.StandardLogger() is used.
	Log logrus.FieldLogger
}

// DefaultSweep is a sweep from pure methane to pure hydrogen at 300 K and
// 70 atmospheres.
var DefaultSweep = SweepConfig{
	From: "CH4",
	To:   "H2",
	Step: 0.01,
	T:    300,
	P:    70 * idealgas.OneAtm,
}

// Row is one blend in a sweep.
type Row struct {
	Index int

	// Fraction is the mole fraction of SweepConfig.To.
	Fraction float64

	heatval.Result

	// Density is the density of the blend at standard conditions
	// [kg/m³].
	Density float64

	// Err holds the reason the row could not be calculated, if any.
	Err error
}

// MaxSweepRows is the largest number of rows a sweep may have.
const MaxSweepRows = 1000000

// Rows returns the number of rows in the sweep. If 1/Step is not a whole
// number the last step is shorter than the others.
func (c *SweepConfig) Rows() (int, error) {
	if !(c.Step > 0) || c.Step > 1 {
		return 0, fmt.Errorf("heatvalutil: sweep step %g must be in (0, 1]", c.Step)
	}
	if 1/c.Step > MaxSweepRows-1 {
		return 0, fmt.Errorf("heatvalutil: sweep step %g gives more than %d rows", c.Step, MaxSweepRows)
	}
	return int(math.Ceil(1/c.Step-1e-9)) + 1, nil
}

// fraction returns the mole fraction of c.To in row i of n. The last
// row is always pure c.To.
func (c *SweepConfig) fraction(i, n int) float64 {
	if i == n-1 {
		return 1
	}
	return float64(i) * c.Step
}

// Sweep calculates the heating values of binary blends from pure c.From to
// pure c.To. Rows are returned in order of increasing c.To fraction. A row
// that cannot be calculated has its Err field set and does not stop the
// sweep; the returned error is only non-nil if the configuration is invalid
// or ctx is cancelled.
func Sweep(ctx context.Context, c SweepConfig) ([]Row, error) {
	n, err := c.Rows()
	if err != nil {
		return nil, err
	}
	if c.From == "" || c.To == "" {
		return nil, fmt.Errorf("heatvalutil: sweep needs two species; have %q and %q", c.From, c.To)
	}
	mech := c.Mechanism
	if mech == nil {
		mech = idealgas.GRI30()
	}
	log := c.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	workers := c.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	rows := make([]Row, n)
	jobs := make(chan int)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < n; i++ {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			// Each worker owns its solver state.
			gas := idealgas.NewSolution(mech)
			calc := heatval.NewCalculator(gas, water.New())
			calc.Log = log
			for i := range jobs {
				if err := gctx.Err(); err != nil {
					return err
				}
				f := c.fraction(i, n)
				m := Blend(c.From, c.To, f, c.T, c.P)
				r := Row{Index: i, Fraction: f}
				r.Result, r.Err = calc.Calculate(m)
				if r.Err == nil {
					r.Density, r.Err = heatval.StandardDensity(gas, m)
				}
				if r.Err != nil {
					log.WithFields(logrus.Fields{
						"row":      i,
						"fraction": f,
					}).WithError(r.Err).Warn("heatvalutil: sweep row failed")
				}
				rows[i] = r
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}
