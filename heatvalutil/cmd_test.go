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
	"bytes"
	"encoding/csv"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spatialmodel/heatval"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// execute runs the root command with the given arguments, with all flags
// reset to their defaults, and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	for _, cmd := range []*cobra.Command{Root, versionCmd, calcCmd, sweepCmd} {
		for _, fs := range []*pflag.FlagSet{cmd.PersistentFlags(), cmd.Flags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				f.Value.Set(f.DefValue)
				f.Changed = false
			})
		}
	}
	b := new(bytes.Buffer)
	Root.SetOutput(b)
	Root.SetArgs(args)
	err := Root.Execute()
	return b.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if want := "HeatVal v" + heatval.Version; !strings.Contains(out, want) {
		t.Errorf("have %q, want %q", out, want)
	}
}

func TestCalc(t *testing.T) {
	for _, test := range []struct {
		args []string
		want []string
	}{
		{
			args: []string{"calc", "--Composition=CH4:1", "--Temperature=300"},
			want: []string{"LHV: 50.02", "HHV: 55.50", "standard density: 0.678"},
		},
		{
			args: []string{"calc", "-c", "hydrogen", "-T", "300", "-P", "101325"},
			want: []string{"LHV: 119.9", "HHV: 141.7"},
		},
	} {
		out, err := execute(t, test.args...)
		if err != nil {
			t.Fatal(err)
		}
		for _, w := range test.want {
			if !strings.Contains(out, w) {
				t.Errorf("%v: output %q does not contain %q", test.args, out, w)
			}
		}
	}
}

func TestCalcKind(t *testing.T) {
	for _, test := range []struct {
		kind, want, other string
	}{
		{"hhv", "HHV: 141.7", "LHV"},
		{"LHV", "LHV: 119.9", "HHV"},
	} {
		out, err := execute(t, "calc", "-c", "hydrogen", "-T", "300", "-P", "101325", "--Kind="+test.kind)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out, test.want) {
			t.Errorf("%s: output %q does not contain %q", test.kind, out, test.want)
		}
		if strings.Contains(out, test.other) {
			t.Errorf("%s: output %q should not contain %q", test.kind, out, test.other)
		}
		if !strings.Contains(out, "standard density") {
			t.Errorf("%s: output %q missing density", test.kind, out)
		}
	}
}

func TestCalcErrors(t *testing.T) {
	for _, args := range [][]string{
		{"calc", "--Kind=xhv"},
		{"calc", "--Composition=N2:1"},
		{"calc", "--Composition=CH4:x"},
		{"calc", "--Composition=CH4", "--Mechanism=missing.toml"},
		{"calc", "--LogLevel=loud"},
	} {
		if _, err := execute(t, args...); err == nil {
			t.Errorf("%v: should be an error", args)
		}
	}
}

func TestSweepCmd(t *testing.T) {
	dir, err := ioutil.TempDir("", "heatval")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "sweep.csv")

	if _, err := execute(t, "sweep", "--Sweep.Step=0.25", "--OutputFormat=csv", "--OutputFile="+path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	recs, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 6 {
		t.Fatalf("have %d records, want 6", len(recs))
	}
	if recs[0][0] != "x_H2" || recs[5][0] != "1" || !strings.HasPrefix(recs[5][1], "119.9") {
		t.Errorf("unexpected output %v", recs)
	}

	out, err := execute(t, "sweep", "--Sweep.From=methane", "--Sweep.To=ethane", "--Sweep.Step=0.5")
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != 4 || !strings.Contains(lines[0], "x_ethane") {
		t.Errorf("unexpected table output:\n%s", out)
	}

	if _, err := execute(t, "sweep", "--OutputFormat=doc"); err == nil {
		t.Error("invalid format should be an error")
	}
}

func TestConfigFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "heatval")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	cfg := filepath.Join(dir, "config.toml")
	if err := ioutil.WriteFile(cfg, []byte("Composition = \"H2:1\"\nLogLevel = \"warning\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	empty := filepath.Join(dir, "empty.toml")
	if err := ioutil.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}
	// Clear the configuration for the other tests.
	defer execute(t, "version", "--config="+empty)

	out, err := execute(t, "calc", "--config="+cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "LHV: 119.9") {
		t.Errorf("configuration file was not used: %q", out)
	}
	out, err = execute(t, "sweep", "--config=../cmd/heatval/configExample.toml")
	if err != nil {
		t.Fatal(err)
	}
	recs, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 12 {
		t.Errorf("have %d records, want 12", len(recs))
	}

	if _, err := execute(t, "calc", "--config="+filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("missing configuration file should be an error")
	}
}
