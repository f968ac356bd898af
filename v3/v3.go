/*
 * v3.go, part of atomstrain.
 *
 * Copyright 2024 M. Quezada <mquezada{at}pmDOTme>
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

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a set of row vectors in 3D space. It wraps a gonum Dense
// matrix with exactly 3 columns.
type Matrix struct {
	*mat.Dense
}

// Matrix2Dense returns the gonum Dense matrix underlying A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

// Dense2Matrix wraps a gonum Dense matrix into a Matrix. It panics if
// A does not have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

// NewMatrix creates and returns a Matrix with 3 columns from data,
// which is read in row-major order.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

// Zeros returns a zero-initialized Matrix with vecs rows.
func Zeros(vecs int) *Matrix {
	return &Matrix{mat.NewDense(vecs, 3, nil)}
}

// NVecs returns the number of vectors (rows) in F.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

// VecView returns a view of the ith vector of F. Changes in the view
// are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

// View returns a view of F starting from i,j and spanning r rows and
// c columns. Changes in the view are reflected in F and vice-versa.
func (F *Matrix) View(i, j, r, c int) *Matrix {
	ret := F.Dense.Slice(i, i+r, j, j+c).(*mat.Dense)
	return &Matrix{ret}
}

// SomeVecs puts in F a copy of the vectors of A with the indexes in
// clist, in the given order. F must have len(clist) rows.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	ar := A.NVecs()
	fr := F.NVecs()
	if fr != len(clist) {
		panic(ErrShape)
	}
	for k, j := range clist {
		if j >= ar {
			panic(ErrIndexOutOfRange)
		}
		for c := 0; c < 3; c++ {
			F.Dense.Set(k, c, A.Dense.At(j, c))
		}
	}
}

// SetVecs replaces the vectors of F with the indexes in clist by the
// corresponding rows of A, in order.
func (F *Matrix) SetVecs(A *Matrix, clist []int) {
	fr := F.NVecs()
	if A.NVecs() != len(clist) {
		panic(ErrShape)
	}
	for k, j := range clist {
		if j >= fr {
			panic(ErrIndexOutOfRange)
		}
		for c := 0; c < 3; c++ {
			F.Dense.Set(j, c, A.Dense.At(k, c))
		}
	}
}

// SwapVecs swaps the vectors i and j of F.
func (F *Matrix) SwapVecs(i, j int) {
	r := F.NVecs()
	if i >= r || j >= r {
		panic(ErrIndexOutOfRange)
	}
	for c := 0; c < 3; c++ {
		vi := F.At(i, c)
		F.Set(i, c, F.At(j, c))
		F.Set(j, c, vi)
	}
}

// Cross puts in F the cross product of the first vectors of a and b.
// F, a and b must all have at least one row.
func (F *Matrix) Cross(a, b *Matrix) {
	if a.NVecs() < 1 || b.NVecs() < 1 || F.NVecs() < 1 {
		panic(ErrNoCrossProduct)
	}
	F.Set(0, 0, a.At(0, 1)*b.At(0, 2)-a.At(0, 2)*b.At(0, 1))
	F.Set(0, 1, a.At(0, 2)*b.At(0, 0)-a.At(0, 0)*b.At(0, 2))
	F.Set(0, 2, a.At(0, 0)*b.At(0, 1)-a.At(0, 1)*b.At(0, 0))
}

// Dot returns the dot product of the first vectors of F and B.
func (F *Matrix) Dot(B *Matrix) float64 {
	if F.NVecs() < 1 || B.NVecs() < 1 {
		panic(ErrNotEnoughElements)
	}
	return F.At(0, 0)*B.At(0, 0) + F.At(0, 1)*B.At(0, 1) + F.At(0, 2)*B.At(0, 2)
}

// Norm returns the L-norm of F, most commonly used with L=2 on a
// single vector view to obtain its euclidean length.
func (F *Matrix) Norm(L float64) float64 {
	return mat.Norm(F.Dense, L)
}

// Unit puts in F the first vector of A scaled to unit length.
func (F *Matrix) Unit(A *Matrix) {
	n := A.VecView(0).Norm(2)
	if n == 0 {
		panic(ErrNotEnoughElements)
	}
	for c := 0; c < 3; c++ {
		F.Set(0, c, A.At(0, c)/n)
	}
}

// Mul wraps mat.Dense.Mul to take care of the case when one of the
// arguments is also the receiver. Since the receiver is a Matrix, the
// gonum function could not know that internally F.Dense==A.
func (F *Matrix) Mul(A, B mat.Matrix) {
	if F == A {
		A := A.(*Matrix)
		F.Dense.Mul(A.Dense, B)
	} else if F == B {
		B := B.(*Matrix)
		F.Dense.Mul(A, B.Dense)
	} else {
		F.Dense.Mul(A, B)
	}
}

// String returns a readable representation of F, one vector per line.
func (F *Matrix) String() string {
	r := F.NVecs()
	ret := make([]string, 0, r)
	for i := 0; i < r; i++ {
		ret = append(ret, fmt.Sprintf("%8.3f %8.3f %8.3f", F.At(i, 0), F.At(i, 1), F.At(i, 2)))
	}
	return strings.Join(ret, "\n")
}

// Det returns the determinant of a 3x3 matrix. Panics if the matrix is
// not 3x3.
func Det(A mat.Matrix) float64 {
	r, c := A.Dims()
	if r != 3 || c != 3 {
		panic(ErrDeterminant)
	}
	return A.At(0, 0)*(A.At(1, 1)*A.At(2, 2)-A.At(2, 1)*A.At(1, 2)) -
		A.At(1, 0)*(A.At(0, 1)*A.At(2, 2)-A.At(2, 1)*A.At(0, 2)) +
		A.At(2, 0)*(A.At(0, 1)*A.At(1, 2)-A.At(1, 1)*A.At(0, 2))
}

//Errors

// Error is the concrete error type for the v3 package. The Decorate
// method allows annotating an error with the calling stack as it is
// passed up, without changing its type.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

// Decorate will add the dec string to the decoration slice of strings
// of the error, and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error is critical or can be ignored.
func (err Error) Critical() bool { return err.critical }

// PanicMsg is a message used for panics. It does satisfy the error
// interface, but for recoverable errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix      = PanicMsg("atomstrain/v3: A Matrix should have 3 columns")
	ErrNoCrossProduct    = PanicMsg("atomstrain/v3: Invalid matrix for cross product")
	ErrNotEnoughElements = PanicMsg("atomstrain/v3: not enough elements in Matrix")
	ErrDeterminant       = PanicMsg("atomstrain/v3: Determinants are only available for 3x3 matrices")
	ErrShape             = PanicMsg("atomstrain/v3: Dimension mismatch")
	ErrIndexOutOfRange   = PanicMsg("atomstrain/v3: index out of range")
)
