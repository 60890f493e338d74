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
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spatialmodel/heatval"
	"github.com/tealeg/xlsx"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// columns are the headings of tabular sweep output. The first column
// heading is formatted with the name of the swept species.
var columns = []string{
	"x_%s",
	"LHV (MJ/kg)",
	"HHV (MJ/kg)",
	"LHV (MJ/m³)",
	"HHV (MJ/m³)",
	"error",
}

func headings(to string) []string {
	h := append([]string(nil), columns...)
	h[0] = fmt.Sprintf(h[0], to)
	return h
}

// values returns the numeric columns of r in output units.
func values(r Row) []float64 {
	return []float64{
		r.Fraction,
		r.LHV / 1e6,
		r.HHV / 1e6,
		r.Volumetric(heatval.LHV, r.Density).Value() / 1e6,
		r.Volumetric(heatval.HHV, r.Density).Value() / 1e6,
	}
}

func errString(r Row) string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// WriteTable writes rows to w as an aligned text table.
func WriteTable(w io.Writer, rows []Row, to string) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for i, h := range headings(to) {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, h)
	}
	fmt.Fprintln(tw)
	for _, r := range rows {
		if r.Err != nil {
			fmt.Fprintf(tw, "%.4f\t\t\t\t\t%v\n", r.Fraction, r.Err)
			continue
		}
		v := values(r)
		fmt.Fprintf(tw, "%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t\n", v[0], v[1], v[2], v[3], v[4])
	}
	return tw.Flush()
}

// WriteCSV writes rows to w in CSV format.
func WriteCSV(w io.Writer, rows []Row, to string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headings(to)); err != nil {
		return err
	}
	for _, r := range rows {
		rec := make([]string, 0, len(columns))
		if r.Err != nil {
			rec = append(rec, strconv.FormatFloat(r.Fraction, 'g', -1, 64), "", "", "", "", errString(r))
		} else {
			for _, v := range values(r) {
				rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
			}
			rec = append(rec, "")
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes rows to w as an Excel workbook with a single sheet.
func WriteXLSX(w io.Writer, rows []Row, to string) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("HeatingValues")
	if err != nil {
		return fmt.Errorf("heatvalutil: creating spreadsheet: %v", err)
	}
	row := sheet.AddRow()
	for _, h := range headings(to) {
		row.AddCell().SetString(h)
	}
	for _, r := range rows {
		xr := sheet.AddRow()
		if r.Err != nil {
			xr.AddCell().SetFloat(r.Fraction)
			for i := 0; i < 4; i++ {
				xr.AddCell()
			}
			xr.AddCell().SetString(errString(r))
			continue
		}
		for _, v := range values(r) {
			xr.AddCell().SetFloat(v)
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("heatvalutil: writing spreadsheet: %v", err)
	}
	return nil
}

// WritePlot writes a PNG line plot of the mass-specific heating values in
// rows against the mole fraction of species to. Failed rows are left out.
func WritePlot(w io.Writer, rows []Row, to string) error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = "Heating value"
	p.X.Label.Text = fmt.Sprintf("%s mole fraction", to)
	p.Y.Label.Text = "MJ/kg"
	var ok []Row
	for _, r := range rows {
		if r.Err == nil {
			ok = append(ok, r)
		}
	}
	if len(ok) == 0 {
		return fmt.Errorf("heatvalutil: no successful rows to plot")
	}
	lhv := make(plotter.XYs, len(ok))
	hhv := make(plotter.XYs, len(ok))
	for i, r := range ok {
		lhv[i].X, lhv[i].Y = r.Fraction, r.LHV/1e6
		hhv[i].X, hhv[i].Y = r.Fraction, r.HHV/1e6
	}
	if err = plotutil.AddLinePoints(p, "LHV", lhv, "HHV", hhv); err != nil {
		return err
	}
	wt, err := p.WriterTo(5*vg.Inch, 3.5*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
