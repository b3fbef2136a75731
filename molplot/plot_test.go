/*
 * plot_test.go, part of qcinput
 *
 *
 * Copyright 2023 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package molplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/qcinput"
)

func TestProjection(Te *testing.T) {
	mol := &qcinput.MoleculeRecord{
		Name:                  "waterdimer",
		Units:                 "Angstrom",
		Elem:                  []string{"O", "H", "H", "O", "H", "H"},
		Elez:                  []int{8, 1, 1, 8, 1, 1},
		Elea:                  []int{-1, -1, -1, -1, -1, -1},
		Mass:                  []float64{15.999, 1.008, 1.008, 15.999, 1.008, 1.008},
		Elbl:                  []string{"", "", "", "", "", ""},
		Real:                  []bool{true, true, true, false, false, false},
		Geom:                  []float64{0, 0, 0, 0, 0, 0.96, 0.93, 0, -0.24, 2.9, 0, 0, 3.4, 0.8, 0, 3.4, -0.8, 0},
		MolecularCharge:       0,
		MolecularMultiplicity: 1,
	}
	name := filepath.Join(Te.TempDir(), "dimer_xz.png")
	if err := Projection(mol, 0, 2, "Water dimer, xz plane", name); err != nil {
		Te.Fatal(err)
	}
	info, err := os.Stat(name)
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Error("empty plot file written")
	}
	if err := Projection(mol, 1, 1, "bad", name); err == nil {
		Te.Error("accepted a degenerate projection plane")
	}
	if err := Projection(mol, 0, 3, "bad", name); err == nil {
		Te.Error("accepted an out-of-range axis")
	}
}
