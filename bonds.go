/*
 * bonds.go, part of qcinput
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

package qcinput

import (
	"fmt"
	"sort"

	v3 "github.com/rmera/qcinput/v3"
)

//constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

//Bond is one entry of a connectivity table: the 0-based indexes of the
//two bonded atoms and the bond order.
type Bond struct {
	At1   int
	At2   int
	Order float64 //Order 0 means undetermined
	Dist  float64 //in the unit the geometry was given, 0 if not computed
}

//GuessConnectivity assigns bonds to a geometry based on a simple
//distance criterion, similar to that described in
//DOI:10.1186/1758-2946-3-33. geom must be in Bohr; distances are
//compared against covalent radii (tabulated in Angstrom) after
//conversion. Every guessed bond gets defaultOrder as its order.
//It might get slow for large systems; it's really not thought
//for proteins or macromolecules.
func GuessConnectivity(elem []string, geom *v3.Matrix, defaultOrder float64) ([]*Bond, error) {
	if geom == nil || len(elem) != geom.NVecs() {
		return nil, CError{"Mismatched elements and coordinates", []string{"GuessConnectivity"}}
	}
	tot := len(elem)
	t3 := v3.Zeros(1)
	bonds := make([]*Bond, 0, 10)
	perAtom := make([][]*Bond, tot)
	for i := 0; i < tot; i++ {
		cov1, ok := symbolCovrad[elem[i]]
		if !ok {
			return nil, CError{fmt.Sprintf("Couldn't find the covalent radii for %s %d", elem[i], i), []string{"GuessConnectivity"}}
		}
		t1 := geom.VecView(i)
		for j := i + 1; j < tot; j++ {
			cov2, ok := symbolCovrad[elem[j]]
			if !ok {
				return nil, CError{fmt.Sprintf("Couldn't find the covalent radii for %s %d", elem[j], j), []string{"GuessConnectivity"}}
			}
			t2 := geom.VecView(j)
			t3.Sub(t2, t1)
			d := t3.Norm() * Bohr2A
			if d < cov1+cov2+bondtol && d > tooclose {
				b := &Bond{At1: i, At2: j, Order: defaultOrder, Dist: d}
				perAtom[i] = append(perAtom[i], b)
				perAtom[j] = append(perAtom[j], b)
				bonds = append(bonds, b)
			}
		}
	}
	//Now we check that no atom has too many bonds, dropping the
	//longest ones until it doesn't.
	dropped := make(map[*Bond]bool)
	for i := 0; i < tot; i++ {
		max := symbolMaxBonds[elem[i]]
		if max == 0 { //means there is not a specified number of bonds for this atom.
			continue
		}
		mine := perAtom[i]
		sort.Slice(mine, func(a, b int) bool { return mine[a].Dist < mine[b].Dist })
		kept := 0
		for _, b := range mine {
			if dropped[b] {
				continue
			}
			kept++
			if kept > max {
				dropped[b] = true
				kept--
			}
		}
	}
	if len(dropped) == 0 {
		return bonds, nil
	}
	final := make([]*Bond, 0, len(bonds)-len(dropped))
	for _, b := range bonds {
		if !dropped[b] {
			final = append(final, b)
		}
	}
	return final, nil
}
