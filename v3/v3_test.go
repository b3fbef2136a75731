/*
 * v3_test.go, part of qcinput
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

package v3

import (
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	data := []float64{0, 0, 0, 0, 0, 0.96, 0.93, 0, -0.24}
	A, err := NewMatrix(data)
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("expected 3 vectors, got %d", A.NVecs())
	}
	//the matrix must own a copy of its data
	data[0] = 42
	if A.At(0, 0) != 0 {
		Te.Error("NewMatrix aliased the input slice")
	}
	if _, err = NewMatrix([]float64{1, 2, 3, 4}); err == nil {
		Te.Error("accepted a slice of non-3N length")
	}
}

func TestViewsAndRaw(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	if err != nil {
		Te.Fatal(err)
	}
	v := A.VecView(1)
	if v.At(0, 0) != 4 || v.At(0, 2) != 6 {
		Te.Errorf("wrong vector view: %v", v.Raw())
	}
	v.Set(0, 0, 40)
	if A.At(1, 0) != 40 {
		Te.Error("view change not reflected in the viewed matrix")
	}
	w := A.View(1, 2)
	if w.NVecs() != 2 || w.At(1, 1) != 8 {
		Te.Errorf("wrong span view: %v", w.Raw())
	}
	raw := A.Raw()
	raw[0] = -1
	if A.At(0, 0) == -1 {
		Te.Error("Raw aliased the matrix data")
	}
	row := A.Row(nil, 2)
	if row[0] != 7 || row[2] != 9 {
		Te.Errorf("wrong row: %v", row)
	}
}

func TestScaleSubNorm(Te *testing.T) {
	A, _ := NewMatrix([]float64{0, 3, 4})
	B := Zeros(1)
	B.Scale(2, A)
	if B.At(0, 1) != 6 || B.At(0, 2) != 8 {
		Te.Errorf("wrong scaling: %v", B.Raw())
	}
	if A.At(0, 1) != 3 {
		Te.Error("Scale mutated its argument")
	}
	C := Zeros(1)
	C.Sub(B, A)
	if C.At(0, 1) != 3 || C.At(0, 2) != 4 {
		Te.Errorf("wrong subtraction: %v", C.Raw())
	}
	if math.Abs(A.Norm()-5) > 1e-12 {
		Te.Errorf("wrong norm: %v", A.Norm())
	}
}
