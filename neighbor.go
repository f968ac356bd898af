/*
 * neighbor.go, part of atomstrain.
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

// neighbor is one matched entry in a particle's neighborhood: the
// relative vector to the same neighbor in the reference and in the
// current frame. The pairing is by particle identity, so both vectors
// always refer to the same physical pair.
type neighbor struct {
	id int
	d0 [3]float64 //reference relative vector
	d  [3]float64 //current relative vector, affine-corrected if requested
}

// neighbors appends to buf the neighborhood of the reference particle
// with row index i and returns the resulting slice. Enumeration is
// driven by the reference geometry: a particle j is a neighbor of i if
// their reference separation, minimum-image wrapped when the cell is
// periodic and coordinates are not declared unwrapped, is within the
// cutoff. The current-frame vector for each accepted pair is then
// looked up through the identity correspondence and wrapped with the
// current cell under the same convention.
func (e *engine) neighbors(i int, buf []neighbor) []neighbor {
	buf = buf[:0]
	cut2 := e.cutoff * e.cutoff
	pi0 := e.refpos[i]
	pi := e.curpos[i]
	for j := range e.refpos {
		if j == i {
			continue
		}
		d0 := [3]float64{e.refpos[j][0] - pi0[0], e.refpos[j][1] - pi0[1], e.refpos[j][2] - pi0[2]}
		if e.wrapRef {
			e.refCell.wrap(&d0)
		}
		if d0[0]*d0[0]+d0[1]*d0[1]+d0[2]*d0[2] > cut2 {
			continue
		}
		d := [3]float64{e.curpos[j][0] - pi[0], e.curpos[j][1] - pi[1], e.curpos[j][2] - pi[2]}
		if e.wrapCur {
			e.curCell.wrap(&d)
		}
		if e.correct {
			//subtract the homogeneous displacement (H-I)*d0 predicted
			//by the cell change, leaving only the non-affine part.
			g := &e.g
			d[0] -= g[0][0]*d0[0] + g[0][1]*d0[1] + g[0][2]*d0[2]
			d[1] -= g[1][0]*d0[0] + g[1][1]*d0[1] + g[1][2]*d0[2]
			d[2] -= g[2][0]*d0[0] + g[2][1]*d0[1] + g[2][2]*d0[2]
		}
		buf = append(buf, neighbor{id: e.refids[j], d0: d0, d: d})
	}
	return buf
}
