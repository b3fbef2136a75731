/*
 * molrec.go, part of qcinput
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

import "fmt"

//MoleculeRecord is a normalized description of a molecular system, as
//produced by an upstream reader/model layer. This library only reads
//it; nothing here ever mutates a record.
//
//The per-atom slices Elem, Elez, Elea, Mass, Elbl and Real are
//index-aligned and must all have length equal to the atom count. Geom
//is flat, row-major (x1 y1 z1 x2 y2 z2 ...) and interpreted in Units.
type MoleculeRecord struct {
	Name  string //display name, empty means "derive one from the formula"
	Units string //"Angstrom" or "Bohr", the unit Geom is stored in

	//InputUnitsToAU overrides the Angstrom->Bohr factor when the
	//record's producer measured it (0 means unset).
	InputUnitsToAU float64

	Elem []string  //element symbols
	Elez []int     //atomic numbers
	Elea []int     //mass numbers, -1 for "unspecified"
	Mass []float64 //atomic masses
	Elbl []string  //arbitrary per-atom labels
	Real []bool    //false marks a ghost (basis-functions-only) atom
	Geom []float64 //3N coordinates

	MolecularCharge       float64 //integer-valued
	MolecularMultiplicity int

	FixCom         bool
	FixOrientation bool
	FixSymmetry    string //e.g. "c1", empty means unset

	//FragmentSeparators are atom-index cut points partitioning the
	//atoms into fragments. The charge/multiplicity slices have one
	//entry per fragment, i.e. len(FragmentSeparators)+1.
	FragmentSeparators     []int
	FragmentCharges        []float64
	FragmentMultiplicities []int

	//Connectivity is the explicit bond table, nil means "infer when
	//needed".
	Connectivity []*Bond

	//Optional per-program extras carried by some producers. Zero
	//values mean "use the program's default".
	Eprec    float64
	Symtol   float64
	CoreType string
	NoOrient bool
	PspCalc  bool
}

//Len returns the number of atoms in the record.
func (M *MoleculeRecord) Len() int {
	if M == nil {
		panic("Attempted to get the length of a nil record")
	}
	return len(M.Elem)
}

//Charge gets the total charge of the system as an integer.
func (M *MoleculeRecord) Charge() int {
	return int(M.MolecularCharge)
}

//Multi returns the multiplicity of the system.
func (M *MoleculeRecord) Multi() int {
	return M.MolecularMultiplicity
}

//Fragments returns the number of fragments in the record. A record
//with no separators is a single fragment.
func (M *MoleculeRecord) Fragments() int {
	return len(M.FragmentSeparators) + 1
}

//Corrupted checks the invariants of the record: all the index-aligned
//slices share the atom count, Geom has 3 coordinates per atom, the
//fragment separators are strictly increasing and within range, and the
//per-fragment slices align with the fragment count. It returns nil if
//everything is consistent.
func (M *MoleculeRecord) Corrupted() error {
	if M == nil {
		return CError{"nil record", []string{"Corrupted"}}
	}
	n := M.Len()
	for field, l := range map[string]int{
		"Elez": len(M.Elez),
		"Elea": len(M.Elea),
		"Mass": len(M.Mass),
		"Elbl": len(M.Elbl),
		"Real": len(M.Real),
	} {
		if l != n {
			return CError{fmt.Sprintf("Inconsistent record: %d atoms but %d entries in %s", n, l, field), []string{"Corrupted"}}
		}
	}
	if len(M.Geom) != 3*n {
		return CError{fmt.Sprintf("Inconsistent record: %d atoms but %d coordinates", n, len(M.Geom)), []string{"Corrupted"}}
	}
	prev := -1
	for _, v := range M.FragmentSeparators {
		if v <= prev || v < 0 || v >= n {
			return CError{fmt.Sprintf("Fragment separators not strictly increasing within [0,%d): %v", n, M.FragmentSeparators), []string{"Corrupted"}}
		}
		prev = v
	}
	frags := M.Fragments()
	if M.FragmentCharges != nil && len(M.FragmentCharges) != frags {
		return CError{fmt.Sprintf("Got %d fragments but %d fragment charges", frags, len(M.FragmentCharges)), []string{"Corrupted"}}
	}
	if M.FragmentMultiplicities != nil && len(M.FragmentMultiplicities) != frags {
		return CError{fmt.Sprintf("Got %d fragments but %d fragment multiplicities", frags, len(M.FragmentMultiplicities)), []string{"Corrupted"}}
	}
	return nil
}
