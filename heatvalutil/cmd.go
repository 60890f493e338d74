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
	"io"
	"os"
	"strings"
	"time"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/heatval"
	"github.com/spatialmodel/heatval/science/thermo/idealgas"
	"github.com/spatialmodel/heatval/science/thermo/water"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to HeatVal.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel specifies the minimum level of log messages to print:
              one of debug, info, warning, or error.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Mechanism",
			usage: `
              Mechanism specifies the path to a TOML file holding species
              thermodynamic data. If empty, the built-in GRI-Mech 3.0
              natural gas species are used.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{calcCmd.Flags(), sweepCmd.Flags()},
		},
		{
			name: "Temperature",
			usage: `
              Temperature specifies the reactant temperature [K].`,
			shorthand:  "T",
			defaultVal: DefaultSweep.T,
			flagsets:   []*pflag.FlagSet{calcCmd.Flags(), sweepCmd.Flags()},
		},
		{
			name: "Pressure",
			usage: `
              Pressure specifies the reactant pressure [Pa].`,
			shorthand:  "P",
			defaultVal: DefaultSweep.P,
			flagsets:   []*pflag.FlagSet{calcCmd.Flags(), sweepCmd.Flags()},
		},
		{
			name: "Composition",
			usage: `
              Composition specifies the fuel mole fractions as comma-separated
              species:fraction pairs, for example "CH4:0.9,H2:0.1". Species can
              be chemical formulas or common names such as "methane".`,
			shorthand:  "c",
			defaultVal: "CH4:1",
			flagsets:   []*pflag.FlagSet{calcCmd.Flags()},
		},
		{
			name: "Kind",
			usage: `
              Kind specifies which heating value calc prints: LHV or HHV.
              If empty, both are printed.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{calcCmd.Flags()},
		},
		{
			name: "Sweep.From",
			usage: `
              Sweep.From specifies the species at the start of the sweep.`,
			defaultVal: DefaultSweep.From,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "Sweep.To",
			usage: `
              Sweep.To specifies the species at the end of the sweep.`,
			defaultVal: DefaultSweep.To,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "Sweep.Step",
			usage: `
              Sweep.Step specifies the increase in the mole fraction of
              Sweep.To between rows.`,
			defaultVal: DefaultSweep.Step,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "Sweep.Workers",
			usage: `
              Sweep.Workers specifies the number of concurrent calculations.
              If zero, the number of processors is used.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile specifies the path to write sweep results to. If empty,
              results are written to standard output.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "OutputFormat",
			usage: `
              OutputFormat specifies the format of sweep results: one of table,
              csv, xlsx, or png.`,
			defaultVal: "table",
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("HEATVAL")
	Cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(calcCmd)
	Root.AddCommand(sweepCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets up logging.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("heatval: problem reading configuration file: %v", err)
		}
	}
	level, err := logrus.ParseLevel(Cfg.GetString("LogLevel"))
	if err != nil {
		return fmt.Errorf("heatval: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	})
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "heatval",
	Short: "Heating values of fuel gas mixtures.",
	Long: `HeatVal calculates the lower and higher heating values (LHV and HHV) of
fuel gas mixtures from a complete-combustion energy balance.
Use the subcommands specified below to access the functionality.

Refer to the subcommand documentation for configuration options and default settings.
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'HEATVAL_var' where 'var' is the
name of the variable to be set, with '.' replaced by '_'.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of HeatVal.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "HeatVal v%s\n", heatval.Version)
	},
	DisableAutoGenTag: true,
}

// calcCmd calculates the heating values of a single mixture.
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate the heating values of a fuel mixture.",
	Long: `calc calculates the lower and higher heating values of the fuel
mixture given by --Composition, as well as its density and volumetric
heating values at standard conditions (288.15 K, 101325 Pa). If --Kind is
set, only the heating value of that kind is calculated and printed.`,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		mech, err := loadMechanism(Cfg.GetString("Mechanism"))
		if err != nil {
			return err
		}
		m, err := ParseComposition(Cfg.GetString("Composition"),
			Cfg.GetFloat64("Temperature"), Cfg.GetFloat64("Pressure"))
		if err != nil {
			return err
		}
		gas := idealgas.NewSolution(mech)
		calc := heatval.NewCalculator(gas, water.New())
		kinds := []heatval.Kind{heatval.LHV, heatval.HHV}
		var r heatval.Result
		if s := Cfg.GetString("Kind"); s != "" {
			k, err := heatval.ParseKind(s)
			if err != nil {
				return err
			}
			v, err := calc.HeatingValue(m, k)
			if err != nil {
				return err
			}
			if k == heatval.HHV {
				r.HHV = v
			} else {
				r.LHV = v
			}
			kinds = []heatval.Kind{k}
		} else {
			r, err = calc.Calculate(m)
			if err != nil {
				return err
			}
		}
		rho, err := heatval.StandardDensity(gas, m)
		if err != nil {
			return err
		}
		return writeResult(cmd.OutOrStdout(), r, rho, kinds...)
	},
}

func writeResult(w io.Writer, r heatval.Result, density float64, kinds ...heatval.Kind) error {
	for _, k := range kinds {
		if _, err := fmt.Fprintf(w, "%v: %.4f MJ/kg, %.4f MJ/m³\n", k,
			r.Unit(k).Value()/1e6, r.Volumetric(k, density).Value()/1e6); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "standard density: %.5f kg/m³\n", density)
	return err
}

// sweepCmd calculates heating values across binary blends.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Calculate heating values of binary fuel blends.",
	Long: `sweep calculates the heating values of blends of two species, from
pure Sweep.From to pure Sweep.To in steps of Sweep.Step in the mole fraction
of Sweep.To. By default it sweeps from methane to hydrogen at 300 K and
70 atmospheres. Rows that cannot be calculated are reported in the output
and do not stop the sweep.`,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(Cfg.GetString("OutputFormat"))
		write, ok := writers[format]
		if !ok {
			return fmt.Errorf("heatval: invalid OutputFormat %q; valid options are table, csv, xlsx, and png", format)
		}
		mech, err := loadMechanism(Cfg.GetString("Mechanism"))
		if err != nil {
			return err
		}
		c := SweepConfig{
			From:      Cfg.GetString("Sweep.From"),
			To:        Cfg.GetString("Sweep.To"),
			Step:      Cfg.GetFloat64("Sweep.Step"),
			T:         Cfg.GetFloat64("Temperature"),
			P:         Cfg.GetFloat64("Pressure"),
			Mechanism: mech,
			Workers:   Cfg.GetInt("Sweep.Workers"),
		}
		logrus.WithFields(logrus.Fields{
			"from": c.From,
			"to":   c.To,
			"step": c.Step,
		}).Info("heatval: starting sweep")
		rows, err := Sweep(context.Background(), c)
		if err != nil {
			return err
		}

		path := os.ExpandEnv(Cfg.GetString("OutputFile"))
		if path == "" {
			return write(cmd.OutOrStdout(), rows, c.To)
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("heatval: creating output file: %v", err)
		}
		if err := write(f, rows, c.To); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	},
}

var writers = map[string]func(io.Writer, []Row, string) error{
	"table": WriteTable,
	"csv":   WriteCSV,
	"xlsx":  WriteXLSX,
	"png":   WritePlot,
}

// loadMechanism returns the built-in mechanism if path is empty or else
// the mechanism in the TOML file at path.
func loadMechanism(path string) (*idealgas.Mechanism, error) {
	if path == "" {
		return idealgas.GRI30(), nil
	}
	return idealgas.LoadMechanismFile(os.ExpandEnv(path))
}
