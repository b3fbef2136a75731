/*
 * atomline.go, part of qcinput
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

import (
	"fmt"
	"strconv"
	"strings"

	v3 "github.com/rmera/qcinput/v3"
)

//expandLabel renders an atom-label template for the atom iat of mol.
//The template may contain the fields {elea} (empty string if the mass
//number is the -1 sentinel), {elez}, {elem}, {mass} and {elbl} in any
//arrangement, e.g. "{elez}@{mass}".
func expandLabel(format string, mol *MoleculeRecord, iat int) string {
	elea := ""
	if mol.Elea[iat] != -1 {
		elea = strconv.Itoa(mol.Elea[iat])
	}
	r := strings.NewReplacer(
		"{elea}", elea,
		"{elez}", strconv.Itoa(mol.Elez[iat]),
		"{elem}", mol.Elem[iat],
		"{mass}", strconv.FormatFloat(mol.Mass[iat], 'g', -1, 64),
		"{elbl}", mol.Elbl[iat],
	)
	return r.Replace(format)
}

//atomLines formats one fixed-width line per atom of mol, using the
//already-scaled geometry geom. Real atoms are labeled with atomFormat,
//ghosts with ghostFormat; an empty ghostFormat suppresses the ghost's
//line entirely. The returned slice always has one slot per atom, with
//the empty string marking a suppressed atom, so that per-atom indexes
//(fragments, connectivity) stay meaningful for the caller; join the
//result through compact to get the actual text lines.
//
//The label field is left-justified and padded to width; each coordinate
//is right-justified to width with prec decimals; fields are joined by
//sp blank characters. If labelLast is true the label is moved to the
//end of the line, with its padding right-trimmed, for formats that put
//coordinates before the element symbol.
func atomLines(mol *MoleculeRecord, geom *v3.Matrix, atomFormat, ghostFormat string, width, prec, sp int, labelLast bool) []string {
	sep := strings.Repeat(" ", sp)
	lines := make([]string, mol.Len())
	for i := 0; i < mol.Len(); i++ {
		var label string
		if mol.Real[i] {
			label = expandLabel(atomFormat, mol, i)
		} else {
			if ghostFormat == "" {
				continue //suppressed, lines[i] stays empty
			}
			label = expandLabel(ghostFormat, mol, i)
		}
		label = fmt.Sprintf("%-*s", width, label)
		fields := make([]string, 0, 4)
		if !labelLast {
			fields = append(fields, label)
		}
		for j := 0; j < 3; j++ {
			fields = append(fields, fmt.Sprintf("%*.*f", width, prec, geom.At(i, j)))
		}
		if labelLast {
			fields = append(fields, strings.TrimRight(label, " "))
		}
		lines[i] = strings.Join(fields, sep)
	}
	return lines
}

//compact drops the empty slots that atomLines leaves for suppressed
//atoms.
func compact(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
