/*
 * render.go, part of qcinput
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
	"encoding/json"
	"fmt"
	"strings"

	v3 "github.com/rmera/qcinput/v3"
)

//Options controls the rendering of a record. The zero value requests
//the dialect's defaults.
type Options struct {
	//Units is the length unit to write in, usually "Angstrom" or
	//"Bohr". Empty means the dialect's default. There is no option to
	//write in intrinsic/input units.
	Units string

	//AtomFormat is the label template for real atoms, e.g.
	//"{elez}@{mass}". Only the xyz family honors it; the other
	//dialects pin their own templates. Empty means the default.
	AtomFormat string

	//GhostFormat is like AtomFormat but for ghost atoms. Empty means
	//the default; to actually suppress ghost lines set SuppressGhosts.
	GhostFormat string

	//SuppressGhosts omits the lines of ghost atoms entirely. Their
	//indexes remain meaningful for fragment and connectivity data.
	SuppressGhosts bool

	//Width is the field width for every formatted field (default 17).
	Width int

	//Prec is the number of decimals for the coordinates (default 12).
	Prec int
}

//Data is the auxiliary payload of a rendering: the information from
//the record that the text either encodes or can not carry, for the QC
//program to pick up as options.
type Data struct {
	//Fields names the record aspects expressed in the string or in
	//Keywords; anything not listed is lost in the translation to the
	//dialect. Names are in QCSchema language.
	Fields []string `json:"fields"`

	//Keywords maps dialect-specific option names to values not
	//expressible in the text body.
	Keywords map[string]interface{} `json:"keywords"`
}

//Marshal serializes the payload to JSON.
func (D *Data) Marshal() ([]byte, error) {
	ret, err := json.Marshal(D)
	if err != nil {
		return nil, errDecorate(err, "Data.Marshal")
	}
	return ret, nil
}

//job carries everything a dialect builder needs for one rendering. It
//lives only for the duration of a single call.
type job struct {
	mol         *MoleculeRecord
	geom        *v3.Matrix //already scaled to units
	units       string
	name        string
	tagline     string
	atomFormat  string
	ghostFormat string
	width       int
	prec        int
	data        *Data
}

//atoms runs the atom-line renderer with the job's resolved templates,
//returning one slot per atom ("" marks a suppressed ghost).
func (j *job) atoms() []string {
	return atomLines(j.mol, j.geom, j.atomFormat, j.ghostFormat, j.width, j.prec, 2, false)
}

//dialect describes one supported text grammar: its default unit, its
//pinned atom/ghost label templates, whether the caller may override
//those, and the function assembling the header/body/footer lines.
type dialect struct {
	defaultUnits string
	atomFormat   string
	ghostFormat  string
	templatable  bool //xyz family and (for ghosts) nglview-sdf
	build        func(*job) ([]string, error)
}

//Render formats a string representation of the QM molecule mol in the
//given dialect. An unknown dialect name fails with
//UnsupportedDialectError before any other work is done. opts may be
//nil, meaning all defaults. The returned text is newline-joined with
//exactly one trailing newline.
func Render(mol *MoleculeRecord, dtype string, opts *Options) (string, error) {
	text, _, err := RenderData(mol, dtype, opts)
	if err != nil {
		return "", errDecorate(err, "Render")
	}
	return text, nil
}

//RenderData is like Render but additionally returns the auxiliary
//payload with the record information that is of interest to the QC
//program but not expressible in the text.
func RenderData(mol *MoleculeRecord, dtype string, opts *Options) (string, *Data, error) {
	dtype = strings.ToLower(dtype)
	d, ok := dialects[dtype]
	if !ok {
		return "", nil, UnsupportedDialectError{dialect: dtype}
	}
	if err := mol.Corrupted(); err != nil {
		return "", nil, errDecorate(err, "RenderData")
	}
	if opts == nil {
		opts = &Options{}
	}
	units := opts.Units
	if units == "" {
		units = d.defaultUnits
	}
	factor, err := scaleFactor(mol, units)
	if err != nil {
		return "", nil, errDecorate(err, "RenderData")
	}
	geom, err := v3.NewMatrix(mol.Geom)
	if err != nil {
		return "", nil, errDecorate(err, "RenderData")
	}
	geom.Scale(factor, geom)

	name := mol.Name
	if name == "" {
		name = FormulaFromElements(mol.Elem)
	}
	j := &job{
		mol:         mol,
		geom:        geom,
		units:       units,
		name:        name,
		tagline:     fmt.Sprintf("auto-generated by qcinput from molecule %s", name),
		atomFormat:  d.atomFormat,
		ghostFormat: d.ghostFormat,
		width:       opts.Width,
		prec:        opts.Prec,
		data: &Data{
			Fields:   []string{"atomic_numbers", "geometry", "symbols"},
			Keywords: make(map[string]interface{}),
		},
	}
	if j.width == 0 {
		j.width = 17
	}
	if j.prec == 0 {
		j.prec = 12
	}
	if d.templatable {
		if opts.AtomFormat != "" {
			j.atomFormat = opts.AtomFormat
		}
		if opts.GhostFormat != "" {
			j.ghostFormat = opts.GhostFormat
		}
		if opts.SuppressGhosts {
			j.ghostFormat = ""
		}
	}
	smol, err := d.build(j)
	if err != nil {
		return "", nil, errDecorate(err, "RenderData")
	}
	return strings.Join(smol, "\n") + "\n", j.data, nil
}

//umapOrFail is the unit-vocabulary lookup shared by most builders: the
//dialect only understands the units it has a label for, anything else
//fails loudly.
func umapOrFail(umap map[string]string, units, dtype string) (string, error) {
	label, ok := umap[strings.ToLower(units)]
	if !ok {
		return "", UnsupportedUnitError{units: units, dialect: dtype}
	}
	return label, nil
}

//pyBool spells a boolean the way the option-consuming layers of most
//QC programs expect it.
func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
