/*
 * v3.go, part of qcinput
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
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space. The underlying implementation
//is a gonum Dense matrix with 3 columns.
type Matrix struct {
	*mat.Dense
}

//Matrix2Dense returns the gonum Dense matrix underlying A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//Dense2Matrix wraps a 3-column gonum Dense matrix into a Matrix.
//It panics if A doesn't have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic("v3: only 3-column matrices can be wrapped")
	}
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data,
//which is read in row-major order. It returns an error if the length
//of data is not divisible by 3.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}}
	}
	d := make([]float64, l)
	copy(d, data)
	return &Matrix{mat.NewDense(rows, cols, d)}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	f := make([]float64, 3*vecs)
	return &Matrix{mat.NewDense(vecs, 3, f)}
}

//NVecs returns the number of vectors in the Matrix.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

//VecView returns a view of the ith vector of the matrix.
//Changes in the view are reflected in F and vice versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//View returns a view of F starting from vector i and spanning r vectors.
func (F *Matrix) View(i, r int) *Matrix {
	ret := F.Dense.Slice(i, i+r, 0, 3).(*mat.Dense)
	return &Matrix{ret}
}

//Row fills target with the ith vector of F and returns it. If target
//is nil a new slice is allocated.
func (F *Matrix) Row(target []float64, i int) []float64 {
	if target == nil {
		target = make([]float64, 3)
	}
	for j := 0; j < 3; j++ {
		target[j] = F.At(i, j)
	}
	return target
}

//Scale multiplies every element of F by v, putting the result in the
//receiver.
func (F *Matrix) Scale(v float64, A *Matrix) {
	F.Dense.Scale(v, A.Dense)
}

//Sub subtracts B from A, putting the result in the receiver. The usual
//gonum alias restrictions apply.
func (F *Matrix) Sub(A, B *Matrix) {
	F.Dense.Sub(A.Dense, B.Dense)
}

//Norm returns the Frobenius norm of F. For a single vector this is
//just its Euclidean length.
func (F *Matrix) Norm() float64 {
	return mat.Norm(F.Dense, 2)
}

//Raw returns the contents of F as a flat, row-major slice of float64.
//The slice is newly allocated, so changes to it do not affect F.
func (F *Matrix) Raw() []float64 {
	v := F.NVecs()
	ret := make([]float64, 0, 3*v)
	for i := 0; i < v; i++ {
		ret = append(ret, F.At(i, 0), F.At(i, 1), F.At(i, 2))
	}
	return ret
}

//Error is the error type for the v3 package. It implements the
//qcinput Error interface.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string {
	return fmt.Sprintf("v3 error: %s", err.message)
}

//Decorate adds the dec string to the decoration slice of the error,
//and returns the resulting slice. If dec is empty the current slice
//is returned unchanged.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
