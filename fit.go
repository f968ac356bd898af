/*
 * fit.go, part of atomstrain.
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

// detTolerance is the relative threshold under which the determinant of
// the reference shape matrix W is considered degenerate. It is relative
// to the scale of W (cube of the mean diagonal), so the test does not
// depend on the units of the coordinates. A bare neighbor count is not
// enough here: three coplanar neighbors are as underdetermined as two.
const detTolerance = 1e-9

// localFit solves, for one particle, the least-squares problem for the
// local deformation gradient F over its neighborhood. It accumulates
// the two shape matrices
//
//	W = sum_j d0_j (x) d0_j
//	V = sum_j d_j  (x) d0_j
//
// and returns F = V * W^-1, which minimizes sum_j |d_j - F*d0_j|^2.
// The returned ok is false when the neighborhood is underdetermined or
// geometrically degenerate (W not safely invertible); in that case F is
// nil and the particle must be flagged invalid by the caller.
func localFit(neigh []neighbor) (F *mat.Dense, ok bool) {
	if len(neigh) < 3 {
		return nil, false
	}
	var w, v [3][3]float64
	for _, n := range neigh {
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				w[r][c] += n.d0[r] * n.d0[c]
				v[r][c] += n.d[r] * n.d0[c]
			}
		}
	}
	W := mat.NewDense(3, 3, []float64{
		w[0][0], w[0][1], w[0][2],
		w[1][0], w[1][1], w[1][2],
		w[2][0], w[2][1], w[2][2],
	})
	scale := (w[0][0] + w[1][1] + w[2][2]) / 3
	if scale <= 0 {
		return nil, false
	}
	if math.Abs(v3.Det(W)) <= detTolerance*scale*scale*scale {
		return nil, false
	}
	var winv mat.Dense
	if err := winv.Inverse(W); err != nil {
		//ill-conditioned past gonum's own tolerance, even if the
		//determinant test let it through.
		return nil, false
	}
	V := mat.NewDense(3, 3, []float64{
		v[0][0], v[0][1], v[0][2],
		v[1][0], v[1][1], v[1][2],
		v[2][0], v[2][1], v[2][2],
	})
	F = mat.NewDense(3, 3, nil)
	F.Mul(V, &winv)
	return F, true
}

// d2min returns the residual of the affine fit, the nonaffine squared
// displacement sum_j |d_j - F*d0_j|^2. It reuses the deformation
// gradient and the neighbor vectors already built for the fit, so it
// costs one extra pass over the neighborhood and nothing more.
func d2min(F *mat.Dense, neigh []neighbor) float64 {
	raw := F.RawMatrix()
	var acc float64
	for _, n := range neigh {
		for r := 0; r < 3; r++ {
			row := raw.Data[r*raw.Stride : r*raw.Stride+3]
			res := n.d[r] - (row[0]*n.d0[0] + row[1]*n.d0[1] + row[2]*n.d0[2])
			acc += res * res
		}
	}
	return acc
}
