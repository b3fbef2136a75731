/*
 * dialects.go, part of qcinput
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

//One entry per supported text grammar. Note that it's possible to
//request variations that don't fit a grammar so may not be re-readable
//(e.g. ghost and mass in the nucleus label with "xyz").
var dialects = map[string]*dialect{
	"xyz":         {"Angstrom", "{elem}", "@{elem}", true, buildXYZ},
	"xyz+":        {"Angstrom", "{elem}", "@{elem}", true, buildXYZ},
	"orca":        {"Bohr", "{elem}", "{elem}:", false, buildOrca},
	"cfour":       {"Bohr", "{elem}", "GH", false, buildCfour},
	"molpro":      {"Bohr", "{elem}", "{elem}", false, buildMolpro},
	"nwchem":      {"Bohr", "{elem}{elbl}", "bq{elem}{elbl}", false, buildNWChem},
	"madness":     {"Bohr", "{elem}", "GH", false, buildMadness},
	"gamess":      {"Bohr", " {elem}{elbl} {elez}", " {elem} -{elez}", false, buildGamess},
	"terachem":    {"Bohr", "{elem}", "X{elem}", false, buildTerachem},
	"psi4":        {"Bohr", "{elem}{elbl}", "Gh({elem}{elbl})", false, buildPsi4},
	"turbomole":   {"Bohr", "{elem}", "{elem}", false, buildTurbomole},
	"nglview-sdf": {"Angstrom", "{elem}", "Gh", true, buildSDF},
	"qchem":       {"Bohr", "{elem}", "@{elem}", false, buildQChem},
	"mrchem":      {"Bohr", "{elem}", "{elem}", false, buildMRChem},
}

//splitFragments cuts the per-atom slots at the given separators. The
//cuts are on atom indexes, never on line counts, so suppressed ghosts
//can't shift the fragment boundaries.
func splitFragments(perAtom []string, seps []int) [][]string {
	frags := make([][]string, 0, len(seps)+1)
	prev := 0
	for _, s := range seps {
		frags = append(frags, perAtom[prev:s])
		prev = s
	}
	return append(frags, perAtom[prev:])
}

//fragmentBlocks emits the atom lines split into fragment blocks, every
//fragment with its own charge/multiplicity line and each additional
//one prefixed by the "--" separator, so the separator count always
//equals the cut-point count. With a single fragment the separator and
//the extra line are tidier to exclude.
func fragmentBlocks(j *job, perAtom []string) ([]string, error) {
	frags := splitFragments(perAtom, j.mol.FragmentSeparators)
	if len(frags) == 1 {
		return compact(frags[0]), nil
	}
	if j.mol.FragmentCharges == nil || j.mol.FragmentMultiplicities == nil {
		return nil, CError{"Multi-fragment record lacks per-fragment charges or multiplicities", []string{"fragmentBlocks"}}
	}
	out := make([]string, 0, j.mol.Len()+2*len(frags))
	for i, fr := range frags {
		if i > 0 {
			out = append(out, "--")
		}
		out = append(out, fmt.Sprintf("%d %d", int(j.mol.FragmentCharges[i]), j.mol.FragmentMultiplicities[i]))
		out = append(out, compact(fr)...)
	}
	return out, nil
}

//xyz and xyz+. The header carries the atom count and a unit tag ("au"
//for Bohr, nothing for Angstrom); units without a tag of their own get
//their lowercased name, which may not be re-readable.
func buildXYZ(j *job) ([]string, error) {
	umap := map[string]string{"bohr": "au", "angstrom": ""}
	tag, ok := umap[strings.ToLower(j.units)]
	if !ok {
		tag = strings.ToLower(j.units)
	}
	atoms := compact(j.atoms())
	smol := make([]string, 0, len(atoms)+2)
	smol = append(smol, strings.TrimRight(fmt.Sprintf("%d %s", len(atoms), tag), " "))
	smol = append(smol, fmt.Sprintf("%d %d %s", j.mol.Charge(), j.mol.Multi(), j.name))
	return append(smol, atoms...), nil
}

func buildOrca(j *job) ([]string, error) {
	umap := map[string]string{"bohr": "! Bohrs", "angstrom": "!"}
	directive, err := umapOrFail(umap, j.units, "orca")
	if err != nil {
		return nil, err
	}
	atoms := compact(j.atoms())
	smol := []string{directive, "", fmt.Sprintf("*xyz %d %d", j.mol.Charge(), j.mol.Multi())}
	smol = append(smol, atoms...)
	return append(smol, "*"), nil
}

//cfour loses the identity of ghost atoms in the body (they all become
//GH); it is picked up again downstream through the "real" field of the
//auxiliary payload. No spaces at the beginning of the first/comment
//line is important.
func buildCfour(j *job) ([]string, error) {
	umap := map[string]string{"bohr": "bohr", "angstrom": "angstrom"}
	ulabel, err := umapOrFail(umap, j.units, "cfour")
	if err != nil {
		return nil, err
	}
	smol := append([]string{j.tagline}, compact(j.atoms())...)
	j.data.Fields = append(j.data.Fields, "molecular_charge", "molecular_multiplicity", "real")
	j.data.Keywords["charge"] = j.mol.Charge()
	j.data.Keywords["multiplicity"] = j.mol.Multi()
	j.data.Keywords["units"] = ulabel
	j.data.Keywords["coordinates"] = "cartesian"
	return smol, nil
}

func buildMolpro(j *job) ([]string, error) {
	umap := map[string]string{"bohr": "bohr", "angstrom": "angstrom"}
	ulabel, err := umapOrFail(umap, j.units, "molpro")
	if err != nil {
		return nil, err
	}
	smol := make([]string, 0, j.mol.Len()+8)
	//Don't orient the molecule if asked to fix the COM or orientation
	if j.mol.FixOrientation || j.mol.FixCom {
		smol = append(smol, "{orient,noorient}")
	}
	//Have no symmetry if asked to fix it to c1
	if j.mol.FixSymmetry == "c1" {
		smol = append(smol, "{symmetry,nosym}")
	} else if j.mol.FixSymmetry == "" {
		smol = append(smol, "{symmetry,auto}")
	}
	smol = append(smol, "", fmt.Sprintf("{%s}", ulabel), "geometry={")
	smol = append(smol, compact(j.atoms())...)
	smol = append(smol, "}")
	//Ghost atoms are declared through Molpro's dummy card, 1-based.
	ghosts := make([]string, 0)
	for idx, real := range j.mol.Real {
		if !real {
			ghosts = append(ghosts, strconv.Itoa(idx+1))
		}
	}
	if len(ghosts) > 0 {
		smol = append(smol, "dummy,"+strings.Join(ghosts, ","))
	}
	smol = append(smol, fmt.Sprintf("set,charge=%.1f", j.mol.MolecularCharge))
	//The Molpro "spin" is the multiplicity minus one
	smol = append(smol, fmt.Sprintf("set,spin=%d", j.mol.Multi()-1))
	return smol, nil
}

func buildNWChem(j *job) ([]string, error) {
	umap := map[string]string{"bohr": "bohr", "angstrom": "angstroms", "nm": "nanometers", "pm": "picometers"}
	ulabel, err := umapOrFail(umap, j.units, "nwchem")
	if err != nil {
		return nil, err
	}
	symmLine := ""
	if j.mol.FixSymmetry != "" {
		symmLine = fmt.Sprintf("symmetry %s", j.mol.FixSymmetry)
	}
	smol := append([]string{fmt.Sprintf("geometry units %s", ulabel)}, compact(j.atoms())...)
	smol = append(smol, symmLine, "end")
	j.data.Fields = append(j.data.Fields, "molecular_charge", "molecular_multiplicity", "real")
	j.data.Keywords["charge"] = j.mol.Charge()
	if j.mol.Multi() != 1 {
		j.data.Keywords["scf__nopen"] = j.mol.Multi() - 1
		j.data.Keywords["dft__mult"] = j.mol.Multi()
		j.data.Keywords["mcscf__multiplicity"] = j.mol.Multi()
	}
	return smol, nil
}

//madnessParameters is the nested geometry-parameter block madness
//wants alongside the text. The zero-argument defaults follow the
//program's own.
type madnessParameters struct {
	Eprec    float64   `json:"eprec"`
	Field    []float64 `json:"field"`
	NoOrient bool      `json:"no_orient"`
	PspCalc  bool      `json:"psp_calc"`
	PureAE   bool      `json:"pure_ae"`
	Symtol   float64   `json:"symtol"`
	CoreType string    `json:"core_type"`
	Units    string    `json:"units"`
}

func newMadnessParameters(mol *MoleculeRecord, units string) madnessParameters {
	p := madnessParameters{
		Eprec:    1e-4,
		Field:    []float64{0.0, 0.0, 0.0},
		PureAE:   true,
		Symtol:   -1e-2,
		CoreType: "none",
		Units:    units,
	}
	if mol.Eprec != 0 {
		p.Eprec = mol.Eprec
	}
	if mol.Symtol != 0 {
		p.Symtol = mol.Symtol
	}
	if mol.CoreType != "" {
		p.CoreType = mol.CoreType
	}
	p.NoOrient = mol.NoOrient
	p.PspCalc = mol.PspCalc
	return p
}

func buildMadness(j *job) ([]string, error) {
	umap := map[string]string{"bohr": "au", "angstrom": "angstrom"}
	ulabel, err := umapOrFail(umap, j.units, "madness")
	if err != nil {
		return nil, err
	}
	smol := []string{"geometry", fmt.Sprintf("units %s", ulabel)}
	if j.mol.Eprec != 0 {
		smol = append(smol, fmt.Sprintf("eprec %s", strconv.FormatFloat(j.mol.Eprec, 'g', -1, 64)))
	}
	smol = append(smol, compact(j.atoms())...)
	smol = append(smol, "end")

	geometry := make([][]float64, j.mol.Len())
	for i := range geometry {
		geometry[i] = j.geom.Row(nil, i)
	}
	j.data.Fields = append(j.data.Fields, "molecular_charge", "molecular_multiplicity")
	j.data.Keywords["charge"] = j.mol.Charge()
	j.data.Keywords["madqc_json"] = map[string]interface{}{
		"name":       j.name,
		"symbols":    append([]string{}, j.mol.Elem...),
		"geometry":   geometry,
		"parameters": newMadnessParameters(j.mol, ulabel),
	}
	if j.mol.Multi() != 1 {
		j.data.Keywords["spin_restricted"] = "false"
	}
	return smol, nil
}

//GAMESS can't detect or run in symmetry without explicit notation, and
//symmetry detection is out of scope here, hence the explicit C1
//default. Non-C1 groups are provisionally hackable by passing both the
//point group and naxis through FixSymmetry; the blank continuation
//card is encoded here when needed. Every line of the deck needs its
//leading space.
func buildGamess(j *job) ([]string, error) {
	umap := map[string]string{"bohr": "bohr", "angstrom": "angs"}
	ulabel, err := umapOrFail(umap, j.units, "gamess")
	if err != nil {
		return nil, err
	}
	fixSymm := strings.TrimSpace(j.mol.FixSymmetry)
	if fixSymm == "" {
		fixSymm = "C1"
	}
	symmLine := " " + fixSymm
	if strings.ToUpper(fixSymm) != "C1" {
		symmLine += "\n" //blank card replaces cards -3- and -4-
	}
	smol := []string{" $data", " " + j.tagline, symmLine}
	smol = append(smol, compact(j.atoms())...)
	smol = append(smol, " $end")
	j.data.Fields = append(j.data.Fields, "molecular_charge", "molecular_multiplicity", "real")
	j.data.Keywords["contrl__icharg"] = j.mol.Charge()
	j.data.Keywords["contrl__mult"] = j.mol.Multi()
	j.data.Keywords["contrl__units"] = ulabel
	j.data.Keywords["contrl__coord"] = "prinaxis"
	return smol, nil
}

func buildTerachem(j *job) ([]string, error) {
	umap := map[string]string{"bohr": "au", "angstrom": ""}
	tag, err := umapOrFail(umap, j.units, "terachem")
	if err != nil {
		return nil, err
	}
	atoms := compact(j.atoms())
	smol := []string{strings.TrimRight(fmt.Sprintf("%d %s", len(atoms), tag), " "), j.name}
	return append(smol, atoms...), nil
}

func buildPsi4(j *job) ([]string, error) {
	umap := map[string]string{"bohr": "bohr", "angstrom": "angstrom"}
	ulabel, err := umapOrFail(umap, j.units, "psi4")
	if err != nil {
		return nil, err
	}
	smol := []string{fmt.Sprintf("%d %d", j.mol.Charge(), j.mol.Multi())}
	blocks, err := fragmentBlocks(j, j.atoms())
	if err != nil {
		return nil, err
	}
	smol = append(smol, blocks...)
	//units and any other non-default molecule keywords
	smol = append(smol, fmt.Sprintf("units %s", ulabel))
	if j.mol.FixCom {
		smol = append(smol, "no_com")
	}
	if j.mol.FixOrientation {
		smol = append(smol, "no_reorient")
	}
	j.data.Fields = append(j.data.Fields,
		"molecular_charge", "molecular_multiplicity", "fragments",
		"fragment_charges", "fragment_multiplicities", "fix_com",
		"fix_orientation", "real")
	return smol, nil
}

//In Turbomole coord files the coordinates come first and the atomic
//symbol afterwards. Ghost atoms are handled in the basis section of
//the control file, by zeroing the nuclear charge of certain atoms, so
//they are written like any other atom here.
func buildTurbomole(j *job) ([]string, error) {
	if strings.ToLower(j.units) != "bohr" {
		return nil, UnsupportedUnitError{units: j.units, dialect: "turbomole"}
	}
	atoms := compact(atomLines(j.mol, j.geom, j.atomFormat, j.ghostFormat, j.width, j.prec, 2, true))
	for i := range atoms {
		atoms[i] = strings.ToLower(atoms[i])
	}
	smol := append([]string{"$coord"}, atoms...)
	return append(smol, "$end"), nil
}

//SDF is pretty special, handle it manually.
func buildSDF(j *job) ([]string, error) {
	if !strings.EqualFold(j.units, "Angstrom") {
		return nil, InvalidGeometryUnitError{units: j.units, dialect: "nglview-sdf", needed: "Angstrom"}
	}
	connectivity := j.mol.Connectivity
	if connectivity == nil {
		toBohr, err := ConversionFactor("Angstrom", "Bohr")
		if err != nil {
			return nil, errDecorate(err, "buildSDF")
		}
		bohrGeom := v3.Zeros(j.mol.Len())
		bohrGeom.Scale(toBohr, j.geom)
		connectivity, err = GuessConnectivity(j.mol.Elem, bohrGeom, 1)
		if err != nil {
			return nil, errDecorate(err, "buildSDF")
		}
	}
	//The counts line covers every atom, so ghosts can never be dropped
	//here; an emptied ghost format falls back to the Gh marker.
	ghostSym := j.ghostFormat
	if ghostSym == "" {
		ghostSym = "Gh"
	}
	smol := []string{"", "qcinput\n"}
	smol = append(smol, fmt.Sprintf("%3d %2d  0  0  0  0  0  0  0  0  0", j.mol.Len(), len(connectivity)))
	for i := 0; i < j.mol.Len(); i++ {
		sym := j.mol.Elem[i]
		if !j.mol.Real[i] {
			sym = ghostSym
		}
		smol = append(smol, fmt.Sprintf("%10.4f%10.4f%10.4f%3s  0  0     0  0  0  0  0  0",
			j.geom.At(i, 0), j.geom.At(i, 1), j.geom.At(i, 2), sym))
	}
	for _, b := range connectivity {
		smol = append(smol, fmt.Sprintf(" %2d %2d  %1d  0  0  0  0", b.At1+1, b.At2+1, int(b.Order)))
	}
	return smol, nil
}

func buildQChem(j *job) ([]string, error) {
	umap := map[string]string{"bohr": "True", "angstrom": "False"}
	inputBohr, err := umapOrFail(umap, j.units, "qchem")
	if err != nil {
		return nil, err
	}
	smol := []string{"$molecule", fmt.Sprintf("%d %d", j.mol.Charge(), j.mol.Multi())}
	blocks, err := fragmentBlocks(j, j.atoms())
	if err != nil {
		return nil, err
	}
	smol = append(smol, blocks...)
	smol = append(smol, "$end")
	j.data.Fields = append(j.data.Fields,
		"fix_com", "fix_orientation", "fragment_charges",
		"fragment_multiplicities", "molecular_charge",
		"molecular_multiplicity", "real", "units")
	j.data.Keywords["no_reorient"] = j.mol.FixOrientation || j.mol.FixCom
	j.data.Keywords["input_bohr"] = inputBohr
	if j.mol.FixSymmetry == "c1" {
		j.data.Keywords["sym_ignore"] = true
		j.data.Keywords["symmetry"] = false
	}
	return smol, nil
}

//mrchem embeds the coordinates both in the text body and in the
//keyword payload; callers are expected to always want the latter.
func buildMRChem(j *job) ([]string, error) {
	atoms := compact(j.atoms())
	smol := []string{
		"Molecule {",
		fmt.Sprintf("charge = %d", j.mol.Charge()),
		fmt.Sprintf("multiplicity = %d", j.mol.Multi()),
		fmt.Sprintf("translate = %s", pyBool(j.mol.FixCom)),
		"$coords",
	}
	smol = append(smol, atoms...)
	smol = append(smol, "$end\n}")
	j.data.Keywords["charge"] = j.mol.Charge()
	j.data.Keywords["multiplicity"] = j.mol.Multi()
	j.data.Keywords["translate"] = j.mol.FixCom
	j.data.Keywords["coords"] = strings.Join(atoms, "\n")
	return smol, nil
}
