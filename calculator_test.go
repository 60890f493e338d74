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
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spatialmodel/heatval/science/thermo/idealgas"
	"github.com/spatialmodel/heatval/science/thermo/water"
	"gonum.org/v1/gonum/floats"
)

func newTestCalculator() *Calculator {
	c := NewCalculator(idealgas.NewSolution(idealgas.GRI30()), water.New())
	c.Log, _ = logtest.NewNullLogger()
	return c
}

func mixture(species string, T, P float64) GasMixture {
	return GasMixture{Species: []string{species}, Fractions: []float64{1}, T: T, P: P}
}

func blend(h2 float64) GasMixture {
	return GasMixture{
		Species:   []string{"methane", "hydrogen"},
		Fractions: []float64{1 - h2, h2},
		T:         300,
		P:         70 * 101325,
	}
}

func TestHeatingValues(t *testing.T) {
	for _, test := range []struct {
		name     string
		m        GasMixture
		lhv, hhv float64
	}{
		{"hydrogen", mixture("H2", 300, 101325), 119.97e6, 141.79e6},
		{"methane", mixture("CH4", 300, 101325), 50.03e6, 55.51e6},
		{"biogas", GasMixture{
			Species:   []string{"CH4", "CO2"},
			Fractions: []float64{0.6, 0.4},
			T:         300, P: 101325,
		}, 17.68e6, 19.62e6},
	} {
		t.Run(test.name, func(t *testing.T) {
			r, err := newTestCalculator().Calculate(test.m)
			if err != nil {
				t.Fatal(err)
			}
			if different(r.LHV, test.lhv, 1e-3) {
				t.Errorf("LHV: have %g, want %g", r.LHV, test.lhv)
			}
			if different(r.HHV, test.hhv, 1e-3) {
				t.Errorf("HHV: have %g, want %g", r.HHV, test.hhv)
			}
		})
	}
}

// Literature values for pure hydrogen.
func TestHydrogenReference(t *testing.T) {
	c := newTestCalculator()
	lhv, err := c.HeatingValue(mixture("hydrogen", 300, 101325), LHV)
	if err != nil {
		t.Fatal(err)
	}
	hhv, err := c.HeatingValue(mixture("hydrogen", 300, 101325), HHV)
	if err != nil {
		t.Fatal(err)
	}
	if different(lhv, 120e6, 0.01) {
		t.Errorf("LHV: have %g, want about 120e6", lhv)
	}
	if different(hhv, 142e6, 0.01) {
		t.Errorf("HHV: have %g, want about 142e6", hhv)
	}
}

func TestLatentHeatDifference(t *testing.T) {
	r, err := newTestCalculator().Calculate(mixture("CH4", 300, 101325))
	if err != nil {
		t.Fatal(err)
	}
	if !(r.HHV > r.LHV && r.LHV > 0) {
		t.Fatalf("LHV = %g, HHV = %g", r.LHV, r.HHV)
	}
	w := water.New()
	if err := w.SetTX(WaterReferenceT, 0); err != nil {
		t.Fatal(err)
	}
	want := w.LatentHeat() * r.WaterMassFraction / r.FuelMassFraction
	if different(r.HHV-r.LHV, want, 1e-9) {
		t.Errorf("HHV - LHV: have %g, want %g", r.HHV-r.LHV, want)
	}
	if different(r.FuelMassFraction, 16.04276/(16.04276+2*31.9988), 1e-10) {
		t.Errorf("fuel mass fraction: have %g", r.FuelMassFraction)
	}
}

func TestNoWaterNoDifference(t *testing.T) {
	r, err := newTestCalculator().Calculate(mixture("CO", 300, 101325))
	if err != nil {
		t.Fatal(err)
	}
	if r.WaterMassFraction != 0 || r.LHV != r.HHV {
		t.Errorf("LHV = %g, HHV = %g, Y_H2O = %g", r.LHV, r.HHV, r.WaterMassFraction)
	}
}

func TestBlendSweep(t *testing.T) {
	c := newTestCalculator()
	var prev Result
	for i := 0; i <= 100; i++ {
		f := float64(i) * 0.01
		r, err := c.Calculate(blend(f))
		if err != nil {
			t.Fatalf("x_H2 = %g: %v", f, err)
		}
		if i > 0 {
			if r.LHV <= prev.LHV || r.HHV <= prev.HHV {
				t.Errorf("x_H2 = %g: heating value did not increase: %+v -> %+v", f, prev, r)
			}
			if r.LHV-prev.LHV > 6e6 || r.HHV-prev.HHV > 7e6 {
				t.Errorf("x_H2 = %g: heating value jumped: %+v -> %+v", f, prev, r)
			}
		}
		prev = r
	}
}

func TestDivisionByZeroMixtures(t *testing.T) {
	for _, species := range []string{"N2", "O2", "CO2", "H2O"} {
		t.Run(species, func(t *testing.T) {
			_, err := newTestCalculator().Calculate(mixture(species, 300, 101325))
			if err != ErrDivisionByZero {
				t.Errorf("have error %v, want %v", err, ErrDivisionByZero)
			}
		})
	}
}

func TestSolverErrors(t *testing.T) {
	for _, m := range []GasMixture{
		mixture("XX", 300, 101325),
		mixture("CH4", -1, 101325),
		mixture("CH4", 300, 0),
	} {
		_, err := newTestCalculator().Calculate(m)
		if !errors.Is(err, ErrSolverState) {
			t.Errorf("%+v: have error %v, want %v", m, err, ErrSolverState)
		}
	}
}

func TestIdempotent(t *testing.T) {
	m := blend(0.37)
	c := newTestCalculator()
	r1, err := c.Calculate(m)
	if err != nil {
		t.Fatal(err)
	}
	// Run something else through the same solver in between.
	if _, err := c.Calculate(mixture("H2", 350, 101325)); err != nil {
		t.Fatal(err)
	}
	r2, err := c.Calculate(m)
	if err != nil {
		t.Fatal(err)
	}
	r3, err := newTestCalculator().Calculate(m)
	if err != nil {
		t.Fatal(err)
	}
	if r1 != r2 || r1 != r3 {
		t.Errorf("results differ: %+v, %+v, %+v", r1, r2, r3)
	}
}

func TestStandardDensity(t *testing.T) {
	rho, err := StandardDensity(idealgas.NewSolution(idealgas.GRI30()), mixture("nitrogen", 300, 101325))
	if err != nil {
		t.Fatal(err)
	}
	want := StandardP * 0.0280134 / (idealgas.GasConstant * StandardT)
	if different(rho, want, 1e-10) {
		t.Errorf("have %g, want %g", rho, want)
	}
	if _, err := StandardDensity(idealgas.NewSolution(idealgas.GRI30()), GasMixture{Species: []string{"N2"}}); !errors.Is(err, ErrMalformedMixture) {
		t.Errorf("have error %v, want %v", err, ErrMalformedMixture)
	}
}

func TestResultUnits(t *testing.T) {
	r := Result{LHV: 50e6, HHV: 55e6}
	u := r.Unit(HHV)
	if u.Value() != 55e6 || !u.Dimensions().Matches(joulesPerKg) {
		t.Errorf("have %v", u)
	}
	v := r.Volumetric(LHV, 0.7)
	if !floats.EqualWithinAbsOrRel(v.Value(), 35e6, 1e-6, 1e-12) || !v.Dimensions().Matches(joulesPerM3) {
		t.Errorf("have %v", v)
	}
}

func TestCalculationLog(t *testing.T) {
	c := newTestCalculator()
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	c.Log = logger

	if _, err := c.Calculate(mixture("CH4", 300, 101325)); err != nil {
		t.Fatal(err)
	}
	e := hook.LastEntry()
	if e == nil {
		t.Fatal("no log entry")
	}
	if e.Level != logrus.DebugLevel || e.Data["mixture"] == "" || math.IsNaN(e.Data["LHV"].(float64)) {
		t.Errorf("unexpected log entry %+v", e)
	}
	hook.Reset()

	if _, err := c.Calculate(mixture("N2", 300, 101325)); err == nil {
		t.Fatal("should be an error")
	}
	e = hook.LastEntry()
	if e == nil || e.Data[logrus.ErrorKey] != ErrDivisionByZero {
		t.Errorf("unexpected log entry %+v", e)
	}
}

func TestInvalidKind(t *testing.T) {
	r := newRecorder()
	for _, k := range []Kind{Kind(7), Kind(-1)} {
		if _, err := HeatingValue(r, r, testMixture, k); err == nil {
			t.Errorf("%v: should be an error", k)
		}
	}
	if len(r.calls) != 0 {
		t.Errorf("solver should not be called: %v", r.calls)
	}
}

func TestLHVLogOmitsHHV(t *testing.T) {
	c := newTestCalculator()
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	c.Log = logger
	if _, err := c.HeatingValue(mixture("CH4", 300, 101325), LHV); err != nil {
		t.Fatal(err)
	}
	e := hook.LastEntry()
	if e == nil {
		t.Fatal("no log entry")
	}
	if _, ok := e.Data["HHV"]; ok {
		t.Errorf("HHV was not calculated but was logged: %+v", e.Data)
	}
	if _, ok := e.Data["LHV"]; !ok {
		t.Errorf("LHV missing from log: %+v", e.Data)
	}
	if _, err := c.HeatingValue(mixture("CH4", 300, 101325), HHV); err != nil {
		t.Fatal(err)
	}
	if _, ok := hook.LastEntry().Data["HHV"]; !ok {
		t.Errorf("HHV missing from log: %+v", hook.LastEntry().Data)
	}
}

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}
