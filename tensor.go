/*
 * tensor.go, part of atomstrain.
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

	"gonum.org/v1/gonum/mat"
)

// greenLagrange converts a deformation gradient F into the
// Green-Lagrangian strain tensor E = (F^T F - I)/2. E is symmetric, so
// it is returned as its 6 independent components in the order
// xx, yy, zz, xy, xz, yz.
func greenLagrange(F *mat.Dense) [6]float64 {
	var c mat.Dense
	c.Mul(F.T(), F)
	return [6]float64{
		0.5 * (c.At(0, 0) - 1),
		0.5 * (c.At(1, 1) - 1),
		0.5 * (c.At(2, 2) - 1),
		0.5 * c.At(0, 1),
		0.5 * c.At(0, 2),
		0.5 * c.At(1, 2),
	}
}

// volumetricStrain returns the volumetric (hydrostatic) part of a
// strain tensor given as 6 components, trace(E)/3.
func volumetricStrain(e [6]float64) float64 {
	return (e[0] + e[1] + e[2]) / 3
}

// shearStrain returns the von Mises shear strain invariant of a strain
// tensor given as 6 components: the second invariant of the deviatoric
// part of E,
//
//	sqrt( E_xy^2 + E_xz^2 + E_yz^2 +
//	      ((E_xx-E_yy)^2 + (E_xx-E_zz)^2 + (E_yy-E_zz)^2)/6 )
//
// It is non-negative, vanishes for pure dilation and is maximal for
// pure shear.
func shearStrain(e [6]float64) float64 {
	xx, yy, zz := e[0], e[1], e[2]
	xy, xz, yz := e[3], e[4], e[5]
	return math.Sqrt(xy*xy + xz*xz + yz*yz +
		((xx-yy)*(xx-yy)+(xx-zz)*(xx-zz)+(yy-zz)*(yy-zz))/6)
}
