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

// Command heatval is a command-line interface for calculating the heating
// values of fuel gas mixtures.
package main

import (
	"fmt"
	"os"

	"github.com/spatialmodel/heatval/heatvalutil"
)

func main() {
	if err := heatvalutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
