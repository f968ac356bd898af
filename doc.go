/*
 * doc.go, part of atomstrain.
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

/*
Package strain computes per-particle local strain measures for
atomistic simulation snapshots. Given a current and a reference frame,
matched by persistent particle identity, it estimates for every
particle:

	A local deformation gradient tensor F, the least-squares affine map
	from the particle's reference neighborhood to its current one.

	The Green-Lagrangian strain tensor E = (F^T F - I)/2, with its von
	Mises shear and volumetric scalar invariants.

	D2min, the nonaffine squared displacement: the residual of the same
	least-squares fit, measuring how much of the local motion a single
	affine map cannot explain.

	A validity flag, false for particles whose neighborhood is too
	small or too degenerate for the fit to be trusted.

Simulation cells may be periodic on any subset of axes; relative
vectors are minimum-image wrapped unless the coordinates are declared
already unwrapped. The homogeneous strain implied by a change of the
cell itself can optionally be eliminated before the fits, isolating
non-affine local deformation.

The per-particle phase is embarrassingly parallel and runs on a
configurable number of goroutines over shared read-only frame data.

Serialization and compressed persistence of the result documents live
in the strainjson subpackage, plotting helpers in strainplot, and the
3D coordinate matrices the frames are built from in v3.
*/
package strain
