/*
 * qcinput_test.go, part of qcinput
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
	"math"
	"strconv"
	"strings"
	"testing"
)

//a plain water molecule stored in Angstrom.
func waterRecord() *MoleculeRecord {
	return &MoleculeRecord{
		Name:                  "water",
		Units:                 "Angstrom",
		Elem:                  []string{"O", "H", "H"},
		Elez:                  []int{8, 1, 1},
		Elea:                  []int{-1, -1, -1},
		Mass:                  []float64{15.999, 1.008, 1.008},
		Elbl:                  []string{"", "", ""},
		Real:                  []bool{true, true, true},
		Geom:                  []float64{0, 0, 0, 0, 0, 0.96, 0.93, 0, -0.24},
		MolecularCharge:       0,
		MolecularMultiplicity: 1,
	}
}

//a water dimer where the whole second water is ghosted, as in a
//counterpoise calculation, split into 2 fragments.
func dimerRecord() *MoleculeRecord {
	return &MoleculeRecord{
		Name:                   "waterdimer",
		Units:                  "Angstrom",
		Elem:                   []string{"O", "H", "H", "O", "H", "H"},
		Elez:                   []int{8, 1, 1, 8, 1, 1},
		Elea:                   []int{-1, -1, -1, -1, -1, -1},
		Mass:                   []float64{15.999, 1.008, 1.008, 15.999, 1.008, 1.008},
		Elbl:                   []string{"", "", "", "", "", ""},
		Real:                   []bool{true, true, true, false, false, false},
		Geom:                   []float64{0, 0, 0, 0, 0, 0.96, 0.93, 0, -0.24, 2.9, 0, 0, 3.4, 0.8, 0, 3.4, -0.8, 0},
		MolecularCharge:        0,
		MolecularMultiplicity:  1,
		FragmentSeparators:     []int{3},
		FragmentCharges:        []float64{0, 0},
		FragmentMultiplicities: []int{1, 1},
	}
}

var allDialects = []string{"xyz", "xyz+", "orca", "cfour", "molpro", "nwchem",
	"madness", "gamess", "terachem", "psi4", "turbomole", "nglview-sdf",
	"qchem", "mrchem"}

//TestXYZGolden checks the exact text of a 2-atom xyz rendering,
//default widths, against a hand-checked string.
func TestXYZGolden(Te *testing.T) {
	mol := waterRecord()
	mol.Elem = mol.Elem[:2]
	mol.Elez = mol.Elez[:2]
	mol.Elea = mol.Elea[:2]
	mol.Mass = mol.Mass[:2]
	mol.Elbl = mol.Elbl[:2]
	mol.Real = mol.Real[:2]
	mol.Geom = mol.Geom[:6]
	got, err := Render(mol, "xyz", nil)
	if err != nil {
		Te.Fatal(err)
	}
	want := "2\n" +
		"0 1 water\n" +
		"O                     0.000000000000     0.000000000000     0.000000000000\n" +
		"H                     0.000000000000     0.000000000000     0.960000000000\n"
	if got != want {
		Te.Errorf("xyz rendering mismatch:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

//Every dialect must produce non-empty text with exactly one trailing
//newline, and do so deterministically.
func TestAllDialects(Te *testing.T) {
	mol := waterRecord()
	for _, d := range allDialects {
		first, err := Render(mol, d, nil)
		if err != nil {
			Te.Errorf("dialect %s: %v", d, err)
			continue
		}
		if first == "" || first == "\n" {
			Te.Errorf("dialect %s: empty rendering", d)
		}
		if !strings.HasSuffix(first, "\n") || strings.HasSuffix(first, "\n\n") {
			Te.Errorf("dialect %s: wrong trailing newline in %q", d, first)
		}
		second, err := Render(mol, d, nil)
		if err != nil {
			Te.Error(err)
		}
		if first != second {
			Te.Errorf("dialect %s: two renderings of the same record differ", d)
		}
	}
	fmt.Println("All dialects rendered!")
}

//Case of the dialect name must not matter.
func TestDialectCase(Te *testing.T) {
	a, err := Render(waterRecord(), "ORCA", nil)
	if err != nil {
		Te.Fatal(err)
	}
	b, err := Render(waterRecord(), "orca", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if a != b {
		Te.Error("dialect-name case changed the rendering")
	}
}

func TestUnknownDialect(Te *testing.T) {
	text, err := Render(waterRecord(), "foo", nil)
	if err == nil {
		Te.Fatal("unknown dialect accepted")
	}
	if text != "" {
		Te.Error("unknown dialect still produced text")
	}
	uerr, ok := err.(UnsupportedDialectError)
	if !ok {
		Te.Fatalf("wrong error type %T: %v", err, err)
	}
	if uerr.Dialect() != "foo" {
		Te.Errorf("wrong dialect in error: %s", uerr.Dialect())
	}
}

func TestTurbomoleUnits(Te *testing.T) {
	_, err := Render(waterRecord(), "turbomole", &Options{Units: "Angstrom"})
	if err == nil {
		Te.Fatal("turbomole accepted Angstrom")
	}
	if _, ok := err.(UnsupportedUnitError); !ok {
		Te.Fatalf("wrong error type %T: %v", err, err)
	}
	//the default (Bohr) must work, lowercased, coordinates first
	text, err := Render(waterRecord(), "turbomole", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.HasPrefix(text, "$coord\n") || !strings.Contains(text, "$end") {
		Te.Errorf("malformed turbomole coord file:\n%s", text)
	}
	if !strings.Contains(text, "  o") {
		Te.Error("turbomole symbol not lowercased or not at line end")
	}
}

func TestSDFUnits(Te *testing.T) {
	_, err := Render(waterRecord(), "nglview-sdf", &Options{Units: "Bohr"})
	if err == nil {
		Te.Fatal("nglview-sdf accepted Bohr")
	}
	gerr, ok := err.(InvalidGeometryUnitError)
	if !ok {
		Te.Fatalf("wrong error type %T: %v", err, err)
	}
	if gerr.Needed() != "Angstrom" || gerr.Units() != "Bohr" {
		Te.Errorf("wrong units in error: needed %s, got %s", gerr.Needed(), gerr.Units())
	}
}

//The OH bonds of water are within covalent-radius distance so the SDF
//block must carry 2 bonds guessed from the geometry.
func TestSDFConnectivity(Te *testing.T) {
	text, err := Render(waterRecord(), "nglview-sdf", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(text, "  3  2  0") {
		Te.Errorf("wrong SDF counts line in:\n%s", text)
	}
	if !strings.Contains(text, "  1  2  1") || !strings.Contains(text, "  1  3  1") {
		Te.Errorf("missing O-H bonds in:\n%s", text)
	}
}

//The SDF counts line always covers every atom, so a request to
//suppress ghosts falls back to the Gh marker instead of leaving empty
//symbol fields behind.
func TestSDFGhosts(Te *testing.T) {
	a, err := Render(dimerRecord(), "nglview-sdf", nil)
	if err != nil {
		Te.Fatal(err)
	}
	b, err := Render(dimerRecord(), "nglview-sdf", &Options{SuppressGhosts: true})
	if err != nil {
		Te.Fatal(err)
	}
	if a != b {
		Te.Errorf("ghost suppression malformed the SDF body:\n%s\nvs\n%s", a, b)
	}
	if n := strings.Count(a, " Gh "); n != 3 {
		Te.Errorf("expected 3 Gh markers, got %d in:\n%s", n, a)
	}
}

//Ghost atoms in GAMESS decks carry the negative of their atomic
//number; real atoms keep the positive sign. Atom lines are the only
//5-field lines of the deck (symbol, charge, 3 coordinates), so the
//sign of the parsed second field classifies every atom.
func TestGamessGhost(Te *testing.T) {
	text, err := Render(dimerRecord(), "gamess", nil)
	if err != nil {
		Te.Fatal(err)
	}
	reals, ghosts := 0, 0
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 5 {
			continue
		}
		z, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		if z < 0 {
			ghosts++
		} else {
			reals++
		}
	}
	if ghosts != 3 {
		Te.Errorf("expected 3 negative-charge ghost lines, got %d in:\n%s", ghosts, text)
	}
	if reals != 3 {
		Te.Errorf("expected 3 real atom lines, got %d in:\n%s", reals, text)
	}
	if !strings.Contains(text, " H -1") || !strings.Contains(text, " O -8") {
		Te.Errorf("ghost charges not negated in:\n%s", text)
	}
	if !strings.Contains(text, " $data\n") || !strings.Contains(text, "\n $end") {
		Te.Errorf("malformed deck:\n%s", text)
	}
}

//With suppression on, the coordinate-line count must equal the count
//of real atoms.
func TestGhostSuppression(Te *testing.T) {
	mol := dimerRecord()
	text, err := Render(mol, "xyz", &Options{SuppressGhosts: true})
	if err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	reals := 0
	for _, r := range mol.Real {
		if r {
			reals++
		}
	}
	if len(lines) != reals+2 {
		Te.Errorf("expected %d lines, got %d:\n%s", reals+2, len(lines), text)
	}
	if !strings.HasPrefix(text, fmt.Sprintf("%d\n", reals)) {
		Te.Errorf("header count doesn't match the emitted atoms:\n%s", text)
	}
}

//The label templates are honored by the xyz family.
func TestXYZTemplates(Te *testing.T) {
	text, err := Render(waterRecord(), "xyz+", &Options{AtomFormat: "{elez}@{mass}"})
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(text, "8@15.999") || !strings.Contains(text, "1@1.008") {
		Te.Errorf("label template not expanded in:\n%s", text)
	}
	//the default xyz+ ghost marker
	text, err = Render(dimerRecord(), "xyz+", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(text, "@O") {
		Te.Errorf("ghost marker missing in:\n%s", text)
	}
}

//psi4 and qchem split the body into fragment blocks: one "--"
//separator per cut point, never one before the first fragment, and
//each fragment opens with its own charge/multiplicity line.
func TestFragments(Te *testing.T) {
	mol := dimerRecord()
	mol.FragmentCharges = []float64{0, -1}
	mol.FragmentMultiplicities = []int{1, 2}
	for _, d := range []string{"psi4", "qchem"} {
		text, err := Render(mol, d, nil)
		if err != nil {
			Te.Fatal(err)
		}
		if n := strings.Count(text, "--\n"); n != len(mol.FragmentSeparators) {
			Te.Errorf("%s: expected %d fragment separators, got %d:\n%s", d, len(mol.FragmentSeparators), n, text)
		}
		lines := strings.Split(text, "\n")
		for i, l := range lines {
			if l != "--" {
				continue
			}
			//the separator sits between the first fragment's last atom
			//and the next fragment's charge/multiplicity line
			if i == 0 || !strings.HasPrefix(lines[i-1], "O") && !strings.HasPrefix(lines[i-1], "H") {
				Te.Errorf("%s: separator before the first fragment:\n%s", d, text)
			}
			if lines[i+1] != "-1 2" {
				Te.Errorf("%s: wrong charge/multiplicity after the separator: %q", d, lines[i+1])
			}
		}
		if !strings.Contains(text, "\n0 1\nO") {
			Te.Errorf("%s: first fragment's charge/multiplicity line misplaced:\n%s", d, text)
		}
	}
	//a single-fragment record gets no separator at all
	text, err := Render(waterRecord(), "psi4", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if strings.Contains(text, "--") {
		Te.Errorf("psi4: separator emitted for a single fragment:\n%s", text)
	}
}

//Molpro ghosts go through the 1-based dummy card, and the "spin" is
//the multiplicity minus one.
func TestMolpro(Te *testing.T) {
	text, err := Render(dimerRecord(), "molpro", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(text, "dummy,4,5,6\n") {
		Te.Errorf("wrong dummy card in:\n%s", text)
	}
	if !strings.Contains(text, "set,charge=0.0\n") || !strings.Contains(text, "set,spin=0\n") {
		Te.Errorf("wrong charge/spin cards in:\n%s", text)
	}
	mol := waterRecord()
	mol.MolecularMultiplicity = 3
	text, err = Render(mol, "molpro", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(text, "set,spin=2\n") {
		Te.Errorf("wrong spin for a triplet in:\n%s", text)
	}
	if strings.Contains(text, "dummy") {
		Te.Errorf("dummy card emitted with no ghosts:\n%s", text)
	}
}

//ORCA coordinate blocks are *xyz-delimited and the units go in the
//"simple input" line.
func TestOrca(Te *testing.T) {
	text, err := Render(waterRecord(), "orca", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.HasPrefix(text, "! Bohrs\n") {
		Te.Errorf("missing Bohrs directive in:\n%s", text)
	}
	if !strings.Contains(text, "*xyz 0 1\n") || !strings.HasSuffix(text, "*\n") {
		Te.Errorf("malformed coordinate block:\n%s", text)
	}
	text, err = Render(waterRecord(), "orca", &Options{Units: "Angstrom"})
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.HasPrefix(text, "!\n") {
		Te.Errorf("Angstrom should leave the directive line bare:\n%s", text)
	}
}

//Dialects whose text can't carry charge or multiplicity hand them over
//through the keyword payload instead.
func TestKeywordPayloads(Te *testing.T) {
	mol := waterRecord()
	mol.MolecularCharge = -1
	mol.MolecularMultiplicity = 2
	_, data, err := RenderData(mol, "cfour", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if data.Keywords["charge"] != -1 || data.Keywords["multiplicity"] != 2 {
		Te.Errorf("cfour keywords wrong: %v", data.Keywords)
	}
	if data.Keywords["units"] != "bohr" || data.Keywords["coordinates"] != "cartesian" {
		Te.Errorf("cfour keywords wrong: %v", data.Keywords)
	}

	_, data, err = RenderData(mol, "nwchem", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if data.Keywords["scf__nopen"] != 1 || data.Keywords["dft__mult"] != 2 {
		Te.Errorf("nwchem open-shell keywords wrong: %v", data.Keywords)
	}
	_, data, err = RenderData(waterRecord(), "nwchem", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if _, ok := data.Keywords["scf__nopen"]; ok {
		Te.Error("nwchem emitted open-shell keywords for a singlet")
	}

	_, data, err = RenderData(waterRecord(), "qchem", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if data.Keywords["input_bohr"] != "True" {
		Te.Errorf("qchem unit keyword wrong: %v", data.Keywords)
	}
	b, err := data.Marshal()
	if err != nil {
		Te.Error(err)
	}
	if !strings.Contains(string(b), "\"keywords\"") {
		Te.Errorf("payload didn't marshal: %s", string(b))
	}
}

func TestGamessKeywords(Te *testing.T) {
	_, data, err := RenderData(waterRecord(), "gamess", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if data.Keywords["contrl__icharg"] != 0 || data.Keywords["contrl__mult"] != 1 {
		Te.Errorf("wrong contrl group keywords: %v", data.Keywords)
	}
	if data.Keywords["contrl__units"] != "bohr" || data.Keywords["contrl__coord"] != "prinaxis" {
		Te.Errorf("wrong contrl group keywords: %v", data.Keywords)
	}
}

func TestMadness(Te *testing.T) {
	mol := waterRecord()
	mol.Eprec = 1e-6
	text, data, err := RenderData(mol, "madness", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.HasPrefix(text, "geometry\nunits au\neprec 1e-06\n") {
		Te.Errorf("malformed geometry block:\n%s", text)
	}
	mad, ok := data.Keywords["madqc_json"].(map[string]interface{})
	if !ok {
		Te.Fatalf("madqc_json payload missing: %v", data.Keywords)
	}
	params, ok := mad["parameters"].(madnessParameters)
	if !ok {
		Te.Fatalf("parameters missing from payload: %v", mad)
	}
	if params.Eprec != 1e-6 || params.Units != "au" || !params.PureAE {
		Te.Errorf("wrong madness parameters: %+v", params)
	}
	if _, ok := data.Keywords["spin_restricted"]; ok {
		Te.Error("spin_restricted emitted for a singlet")
	}
}

func TestMRChem(Te *testing.T) {
	mol := waterRecord()
	mol.FixCom = true
	text, data, err := RenderData(mol, "mrchem", nil)
	if err != nil {
		Te.Fatal(err)
	}
	for _, want := range []string{"Molecule {\n", "charge = 0\n", "multiplicity = 1\n", "translate = True\n", "$coords\n", "$end\n}"} {
		if !strings.Contains(text, want) {
			Te.Errorf("missing %q in:\n%s", want, text)
		}
	}
	if data.Keywords["translate"] != true {
		Te.Errorf("wrong translate keyword: %v", data.Keywords)
	}
	coords, ok := data.Keywords["coords"].(string)
	if !ok || !strings.Contains(text, coords) {
		Te.Error("coords keyword doesn't match the text body")
	}
}

func TestTerachem(Te *testing.T) {
	text, err := Render(waterRecord(), "terachem", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.HasPrefix(text, "3 au\nwater\n") {
		Te.Errorf("malformed terachem geometry:\n%s", text)
	}
	text, err = Render(waterRecord(), "terachem", &Options{Units: "Angstrom"})
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.HasPrefix(text, "3\nwater\n") {
		Te.Errorf("Angstrom should leave the count line bare:\n%s", text)
	}
}

//Converting to Bohr and back must recover the coordinates to floating
//point accuracy.
func TestUnitRoundTrip(Te *testing.T) {
	there, err := ConversionFactor("Angstrom", "Bohr")
	if err != nil {
		Te.Fatal(err)
	}
	back, err := ConversionFactor("Bohr", "Angstrom")
	if err != nil {
		Te.Fatal(err)
	}
	for _, x := range waterRecord().Geom {
		if math.Abs(x*there*back-x) > 1e-10 {
			Te.Errorf("round trip lost precision on %v", x)
		}
	}
	_, err = ConversionFactor("parsec", "Bohr")
	if err == nil {
		Te.Fatal("accepted an unknown unit")
	}
	if _, ok := err.(UnsupportedUnitError); !ok {
		Te.Fatalf("wrong error type %T: %v", err, err)
	}
}

//A record producer can pin its own Angstrom->Bohr factor.
func TestInputUnitsToAU(Te *testing.T) {
	mol := waterRecord()
	mol.InputUnitsToAU = 2.0 //deliberately unphysical, to be visible
	text, err := Render(mol, "xyz", &Options{Units: "Bohr"})
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(text, "1.920000000000") {
		Te.Errorf("override factor not applied:\n%s", text)
	}
}

func TestFormula(Te *testing.T) {
	cases := map[string][]string{
		"H2O":     {"O", "H", "H"},
		"AgCCaO2": {"C", "Ca", "O", "O", "Ag"},
		"C2H6O":   {"C", "C", "H", "H", "H", "H", "H", "H", "O"},
	}
	for want, elem := range cases {
		if got := FormulaFromElements(elem); got != want {
			Te.Errorf("formula for %v: got %s, want %s", elem, got, want)
		}
	}
	//a nameless record gets its formula as name
	mol := waterRecord()
	mol.Name = ""
	text, err := Render(mol, "xyz", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(text, "0 1 H2O\n") {
		Te.Errorf("formula name not derived:\n%s", text)
	}
}

func TestCorrupted(Te *testing.T) {
	mol := waterRecord()
	mol.Geom = mol.Geom[:8] //not 3N anymore
	if mol.Corrupted() == nil {
		Te.Error("truncated geometry not detected")
	}
	_, err := Render(mol, "xyz", nil)
	if err == nil {
		Te.Error("rendering accepted a corrupted record")
	}
	mol = waterRecord()
	mol.FragmentSeparators = []int{2, 2}
	if mol.Corrupted() == nil {
		Te.Error("non-increasing separators not detected")
	}
	mol = dimerRecord()
	mol.FragmentCharges = mol.FragmentCharges[:1]
	if mol.Corrupted() == nil {
		Te.Error("misaligned fragment charges not detected")
	}
}
