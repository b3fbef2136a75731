/*
 * doc.go, part of qcinput
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

/*
Package qcinput formats the molecule section of the input files for
several quantum-chemistry programs from a single normalized molecular
record.

The record (MoleculeRecord) describes a system once: element data,
Cartesian coordinates in a known length unit, charge, multiplicity,
fragments, ghost atoms and optional connectivity. Render projects that
record into the text grammar of any supported program ("dialect"),
while RenderData additionally returns the information that the chosen
grammar can not carry (charge options, open-shell parameters, the
identity of ghost atoms formats like CFOUR's throw away) so the caller
can feed it to the program through its option system.

Everything here is a pure function of its inputs: nothing is mutated,
no files are touched and concurrent calls on the same record are safe.
Reading any of these formats back is the business of a separate
package.
*/
package qcinput
