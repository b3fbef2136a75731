/*
 * conversion.go, part of qcinput
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package qcinput

import "strings"

//This provides useful conversion factors and the length-unit lookup.

//Conversions
const (
	A2Bohr = 1.889725989
	Bohr2A = 1 / 1.889725989
)

//A map from lowercased length-unit names to the value of one such unit
//in Angstrom.
var unit2A = map[string]float64{
	"angstrom": 1.0,
	"bohr":     Bohr2A,
	"au":       Bohr2A,
	"nm":       10.0,
	"pm":       0.01,
	"m":        1e10,
}

//ConversionFactor returns the multiplicative factor that takes a length
//expressed in the from unit to the to unit. It returns an
//UnsupportedUnitError if either unit is unknown.
func ConversionFactor(from, to string) (float64, error) {
	f, ok := unit2A[strings.ToLower(from)]
	if !ok {
		return 0, UnsupportedUnitError{units: from}
	}
	t, ok := unit2A[strings.ToLower(to)]
	if !ok {
		return 0, UnsupportedUnitError{units: to}
	}
	return f / t, nil
}

//scaleFactor resolves the unit the record's geometry is stored in and
//the requested output unit into a single scalar to apply to every
//coordinate. The Angstrom/Bohr pairings are handled explicitly, with
//the record's own InputUnitsToAU taking precedence for Angstrom->Bohr;
//anything else goes through the generic lookup.
func scaleFactor(mol *MoleculeRecord, units string) (float64, error) {
	switch {
	case strings.EqualFold(mol.Units, "Angstrom") && strings.EqualFold(units, "Angstrom"):
		return 1.0, nil
	case strings.EqualFold(mol.Units, "Angstrom") && strings.EqualFold(units, "Bohr"):
		if mol.InputUnitsToAU != 0 {
			return mol.InputUnitsToAU, nil
		}
		return A2Bohr, nil
	case strings.EqualFold(mol.Units, "Bohr") && strings.EqualFold(units, "Angstrom"):
		return Bohr2A, nil
	case strings.EqualFold(mol.Units, "Bohr") && strings.EqualFold(units, "Bohr"):
		return 1.0, nil
	default:
		f, err := ConversionFactor(mol.Units, units)
		if err != nil {
			return 0, errDecorate(err, "scaleFactor")
		}
		return f, nil
	}
}
