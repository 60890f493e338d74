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

// GRI30 returns the natural gas combustion species of the GRI-Mech 3.0
// mechanism (http://combustion.berkeley.edu/gri-mech/version30/text30.html):
// H2, O2, H2O, CH4, CO, CO2, C2H6, C3H8, N2, and AR.
func GRI30() *Mechanism {
	m, err := NewMechanism("gri30", gri30Species())
	if err != nil {
		panic(err)
	}
	return m
}

func gri30Species() []*Species {
	return []*Species{
		{
			Name:        "H2",
			Composition: map[string]float64{"H": 2},
			Thermo: NASA7{
				Tmin: 200, Tmid: 1000, Tmax: 3500,
				Low: [7]float64{2.34433112e+00, 7.98052075e-03, -1.94781510e-05,
					2.01572094e-08, -7.37611761e-12, -9.17935173e+02, 6.83010238e-01},
				High: [7]float64{3.33727920e+00, -4.94024731e-05, 4.99456778e-07,
					-1.79566394e-10, 2.00255376e-14, -9.50158922e+02, -3.20502331e+00},
			},
		},
		{
			Name:        "O2",
			Composition: map[string]float64{"O": 2},
			Thermo: NASA7{
				Tmin: 200, Tmid: 1000, Tmax: 3500,
				Low: [7]float64{3.78245636e+00, -2.99673416e-03, 9.84730201e-06,
					-9.68129509e-09, 3.24372837e-12, -1.06394356e+03, 3.65767573e+00},
				High: [7]float64{3.28253784e+00, 1.48308754e-03, -7.57966669e-07,
					2.09470555e-10, -2.16717794e-14, -1.08845772e+03, 5.45323129e+00},
			},
		},
		{
			Name:        "H2O",
			Composition: map[string]float64{"H": 2, "O": 1},
			Thermo: NASA7{
				Tmin: 200, Tmid: 1000, Tmax: 3500,
				Low: [7]float64{4.19864056e+00, -2.03643410e-03, 6.52040211e-06,
					-5.48797062e-09, 1.77197817e-12, -3.02937267e+04, -8.49032208e-01},
				High: [7]float64{3.03399249e+00, 2.17691804e-03, -1.64072518e-07,
					-9.70419870e-11, 1.68200992e-14, -3.00042971e+04, 4.96677010e+00},
			},
		},
		{
			Name:        "CH4",
			Composition: map[string]float64{"C": 1, "H": 4},
			Thermo: NASA7{
				Tmin: 200, Tmid: 1000, Tmax: 3500,
				Low: [7]float64{5.14987613e+00, -1.36709788e-02, 4.91800599e-05,
					-4.84743026e-08, 1.66693956e-11, -1.02466476e+04, -4.64130376e+00},
				High: [7]float64{7.48514950e-02, 1.33909467e-02, -5.73285809e-06,
					1.22292535e-09, -1.01815230e-13, -9.46834459e+03, 1.84373180e+01},
			},
		},
		{
			Name:        "CO",
			Composition: map[string]float64{"C": 1, "O": 1},
			Thermo: NASA7{
				Tmin: 200, Tmid: 1000, Tmax: 3500,
				Low: [7]float64{3.57953347e+00, -6.10353680e-04, 1.01681433e-06,
					9.07005884e-10, -9.04424499e-13, -1.43440860e+04, 3.50840928e+00},
				High: [7]float64{2.71518561e+00, 2.06252743e-03, -9.98825771e-07,
					2.30053008e-10, -2.03647716e-14, -1.41518724e+04, 7.81868772e+00},
			},
		},
		{
			Name:        "CO2",
			Composition: map[string]float64{"C": 1, "O": 2},
			Thermo: NASA7{
				Tmin: 200, Tmid: 1000, Tmax: 3500,
				Low: [7]float64{2.35677352e+00, 8.98459677e-03, -7.12356269e-06,
					2.45919022e-09, -1.43699548e-13, -4.83719697e+04, 9.90105222e+00},
				High: [7]float64{3.85746029e+00, 4.41437026e-03, -2.21481404e-06,
					5.23490188e-10, -4.72084164e-14, -4.87591660e+04, 2.27163806e+00},
			},
		},
		{
			Name:        "C2H6",
			Composition: map[string]float64{"C": 2, "H": 6},
			Thermo: NASA7{
				Tmin: 200, Tmid: 1000, Tmax: 3500,
				Low: [7]float64{4.29142492e+00, -5.50154270e-03, 5.99438288e-05,
					-7.08466285e-08, 2.68685771e-11, -1.15222055e+04, 2.66682316e+00},
				High: [7]float64{1.07188150e+00, 2.16852677e-02, -1.00256067e-05,
					2.21412001e-09, -1.90002890e-13, -1.14263932e+04, 1.51156107e+01},
			},
		},
		{
			Name:        "C3H8",
			Composition: map[string]float64{"C": 3, "H": 8},
			Thermo: NASA7{
				Tmin: 300, Tmid: 1000, Tmax: 5000,
				Low: [7]float64{9.33553810e-01, 2.64245790e-02, 6.10597270e-06,
					-2.19774990e-08, 9.51492530e-12, -1.39585200e+04, 1.92016910e+01},
				High: [7]float64{7.53413680e+00, 1.88722390e-02, -6.27184910e-06,
					9.14756490e-10, -4.78380690e-14, -1.64675160e+04, -1.78923490e+01},
			},
		},
		{
			Name:        "N2",
			Composition: map[string]float64{"N": 2},
			Thermo: NASA7{
				Tmin: 300, Tmid: 1000, Tmax: 5000,
				Low: [7]float64{3.29867700e+00, 1.40824040e-03, -3.96322200e-06,
					5.64151500e-09, -2.44485400e-12, -1.02089990e+03, 3.95037200e+00},
				High: [7]float64{2.92664000e+00, 1.48797680e-03, -5.68476000e-07,
					1.00970380e-10, -6.75335100e-15, -9.22797700e+02, 5.98052800e+00},
			},
		},
		{
			Name:        "AR",
			Composition: map[string]float64{"AR": 1},
			Thermo: NASA7{
				Tmin: 300, Tmid: 1000, Tmax: 5000,
				Low:  [7]float64{2.50000000e+00, 0, 0, 0, 0, -7.45375000e+02, 4.36600000e+00},
				High: [7]float64{2.50000000e+00, 0, 0, 0, 0, -7.45375000e+02, 4.36600000e+00},
			},
		},
	}
}
