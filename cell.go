/*
 * cell.go, part of atomstrain.
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

package strain

import (
	"math"

	v3 "github.com/mquezada/atomstrain/v3"
	"gonum.org/v1/gonum/mat"
)

// Cell represents a simulation cell: a 3x3 basis whose columns are the
// cell vectors, mapping fractional to cartesian coordinates, plus a
// periodicity flag per axis. The inverse basis is computed once at
// construction, so minimum-image wrapping in the hot loops is only a
// pair of 3x3 matrix-vector products.
type Cell struct {
	basis    *mat.Dense
	inverse  *mat.Dense
	periodic [3]bool
}

// NewCell builds a Cell from the 9 elements of the basis matrix in
// row-major order (so the cell vectors are the columns of the matrix)
// and the periodicity flags for each axis. It fails with a critical
// error if the basis is singular.
func NewCell(basis []float64, periodic [3]bool) (*Cell, error) {
	if len(basis) != 9 {
		return nil, NewError(true, "NewCell: need 9 basis elements, got %d", len(basis))
	}
	b := mat.NewDense(3, 3, append([]float64{}, basis...))
	inv := mat.NewDense(3, 3, nil)
	if err := inv.Inverse(b); err != nil {
		return nil, NewError(true, "NewCell: singular cell basis: %v", err)
	}
	return &Cell{basis: b, inverse: inv, periodic: periodic}, nil
}

// CubicCell is a convenience constructor for an orthogonal cell with
// edge lengths lx, ly, lz and the same periodicity on every axis.
func CubicCell(lx, ly, lz float64, periodic bool) (*Cell, error) {
	c, err := NewCell([]float64{
		lx, 0, 0,
		0, ly, 0,
		0, 0, lz,
	}, [3]bool{periodic, periodic, periodic})
	if err != nil {
		return nil, errDecorate(err, "CubicCell")
	}
	return c, nil
}

// Basis returns a copy of the cell basis matrix.
func (c *Cell) Basis() *mat.Dense {
	return mat.DenseCopyOf(c.basis)
}

// Periodic returns the periodicity flags of the cell.
func (c *Cell) Periodic() [3]bool {
	return c.periodic
}

// IsPeriodic returns whether at least one axis of the cell is periodic.
func (c *Cell) IsPeriodic() bool {
	return c.periodic[0] || c.periodic[1] || c.periodic[2]
}

// Volume returns the (signed) volume spanned by the cell vectors.
func (c *Cell) Volume() float64 {
	return v3.Det(c.basis)
}

// Deformation returns the homogeneous transform H implied by the change
// of simulation cell from ref to c, H = C_current * C_reference^-1.
// Applied to a reference-frame vector, H predicts where the purely
// affine (system-wide) deformation would take it.
func (c *Cell) Deformation(ref *Cell) *mat.Dense {
	h := mat.NewDense(3, 3, nil)
	h.Mul(c.basis, ref.inverse)
	return h
}

// wrap applies the minimum-image convention to the relative vector d,
// in place, on the periodic axes of the cell. The vector is taken to
// fractional coordinates, each periodic component is reduced to the
// [-1/2, 1/2) image, and the result is taken back to cartesian space.
func (c *Cell) wrap(d *[3]float64) {
	var f [3]float64
	mulVec3(c.inverse, d, &f)
	for k := 0; k < 3; k++ {
		if c.periodic[k] {
			f[k] -= math.Round(f[k])
		}
	}
	mulVec3(c.basis, &f, d)
}

// MinimumImage applies the minimum-image convention to every vector of
// d, in place, treating each row as a relative vector between two
// particles in the cell.
func (c *Cell) MinimumImage(d *v3.Matrix) {
	r := d.NVecs()
	var t [3]float64
	for i := 0; i < r; i++ {
		t[0], t[1], t[2] = d.At(i, 0), d.At(i, 1), d.At(i, 2)
		c.wrap(&t)
		d.Set(i, 0, t[0])
		d.Set(i, 1, t[1])
		d.Set(i, 2, t[2])
	}
}

// mulVec3 puts in dst the product of the 3x3 matrix m with the vector v.
// dst and v must not alias.
func mulVec3(m *mat.Dense, v, dst *[3]float64) {
	raw := m.RawMatrix()
	for i := 0; i < 3; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+3]
		dst[i] = row[0]*v[0] + row[1]*v[1] + row[2]*v[2]
	}
}
