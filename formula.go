/*
 * formula.go, part of qcinput
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
	"sort"
	"strconv"
	"strings"
)

//FormulaFromElements returns a simple chemical formula from the element
//list elem: each symbol appears once, alphabetically, followed by its
//count when greater than one. For example, [C Ca O O Ag] gives
//"AgCCaO2". It is a deterministic fallback used for headers and
//comments, never for scientific correctness.
func FormulaFromElements(elem []string) string {
	counted := make(map[string]int)
	for _, e := range elem {
		counted[e]++
	}
	symbols := make([]string, 0, len(counted))
	for s := range counted {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	var f strings.Builder
	for _, s := range symbols {
		f.WriteString(s)
		if counted[s] > 1 {
			f.WriteString(strconv.Itoa(counted[s]))
		}
	}
	return f.String()
}
