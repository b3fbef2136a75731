/*
 * plot.go, part of qcinput
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

//Package molplot draws quick 2D projections of a molecule record's
//geometry, one colored series per element, for eyeballing a system
//before rendering its inputs. It is a debugging aid, not publication
//material.
package molplot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/rmera/qcinput"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var axisNames = [3]string{"x", "y", "z"}

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//Projection plots the projection of mol's geometry onto the plane
//spanned by the Cartesian axes xaxis and yaxis (0, 1 or 2 for x, y, z),
//one scatter series per element, ghost atoms as their own gray series,
//and saves it in png format as plotname (the extension must be
//included). Coordinates are plotted in the unit the record stores them
//in.
func Projection(mol *qcinput.MoleculeRecord, xaxis, yaxis int, title, plotname string) error {
	if mol == nil {
		panic("Given nil record")
	}
	if xaxis < 0 || xaxis > 2 || yaxis < 0 || yaxis > 2 || xaxis == yaxis {
		return fmt.Errorf("molplot: invalid projection axes %d,%d", xaxis, yaxis)
	}
	if err := mol.Corrupted(); err != nil {
		return err
	}
	p := basicPlot(title, fmt.Sprintf("%s (%s)", axisNames[xaxis], mol.Units), fmt.Sprintf("%s (%s)", axisNames[yaxis], mol.Units))
	series := make(map[string]plotter.XYs)
	order := make([]string, 0, 5) //keep series in first-seen order so colors are deterministic
	for i := 0; i < mol.Len(); i++ {
		key := mol.Elem[i]
		if !mol.Real[i] {
			key = "ghost"
		}
		if _, ok := series[key]; !ok {
			order = append(order, key)
		}
		series[key] = append(series[key], plotter.XY{X: mol.Geom[3*i+xaxis], Y: mol.Geom[3*i+yaxis]})
	}
	for key, name := range order {
		s, err := plotter.NewScatter(series[name])
		if err != nil {
			return err
		}
		if name == "ghost" {
			s.GlyphStyle.Color = color.RGBA{R: 128, G: 128, B: 128, A: 255}
		} else {
			r, g, b := colors(key, len(order))
			s.GlyphStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		}
		p.Add(s)
		p.Legend.Add(name, s)
	}
	return p.Save(12*vg.Centimeter, 12*vg.Centimeter, plotname)
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, pp, q, t float64
	var r, g, b float64
	maxcolor := 255.0
	conversion := maxcolor * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i = math.Floor(h)
	f = h - i
	pp = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r = v
		g = t
		b = pp
	case 1:
		r = q
		g = v
		b = pp
	case 2:
		r = pp
		g = v
		b = t
	case 3:
		r = pp
		g = q
		b = v
	case 4:
		r = t
		g = pp
		b = v
	default: //case 5
		r = v
		g = pp
		b = q
	}
	r = r * conversion
	g = g * conversion
	b = b * conversion
	return uint8(r), uint8(g), uint8(b)
}

func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	var h float64
	if hp < 55 {
		h = hp - 20.0
	} else {
		h = hp + 20.0
	}
	return iHVS2RGB(h, 1.0, 1.0)
}
