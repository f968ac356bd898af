/*
 * frame.go, part of atomstrain.
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
	v3 "github.com/mquezada/atomstrain/v3"
)

// Frame is one snapshot of a particle system: an ordered set of
// particles, each with a persistent integer identifier and a position,
// plus the simulation cell they share. Frames are read-only once built,
// which is what allows the per-particle phase of the analysis to run
// concurrently without locking.
type Frame struct {
	ids    []int
	coords *v3.Matrix
	cell   *Cell
	byID   map[int]int //identifier -> row index
}

// NewFrame builds a Frame from per-particle identifiers, their
// coordinates (one row per particle, in the same order as ids) and the
// simulation cell. It fails with a critical error on count mismatch or
// repeated identifiers.
func NewFrame(ids []int, coords *v3.Matrix, cell *Cell) (*Frame, error) {
	if coords == nil || cell == nil {
		return nil, NewError(true, "NewFrame: nil coordinates or cell")
	}
	if len(ids) != coords.NVecs() {
		return nil, NewError(true, "NewFrame: %d identifiers for %d coordinates", len(ids), coords.NVecs())
	}
	byID := make(map[int]int, len(ids))
	for i, id := range ids {
		if _, dup := byID[id]; dup {
			return nil, NewError(true, "NewFrame: repeated particle identifier %d", id)
		}
		byID[id] = i
	}
	return &Frame{ids: append([]int{}, ids...), coords: coords, cell: cell, byID: byID}, nil
}

// Len returns the number of particles in the frame.
func (f *Frame) Len() int {
	return len(f.ids)
}

// ID returns the persistent identifier of the ith particle.
func (f *Frame) ID(i int) int {
	if i < 0 || i >= len(f.ids) {
		panic(ErrIndexOutOfRange)
	}
	return f.ids[i]
}

// Index returns the row index of the particle with the given
// identifier, and whether the identifier is present in the frame.
func (f *Frame) Index(id int) (int, bool) {
	i, ok := f.byID[id]
	return i, ok
}

// Coords returns the coordinate matrix of the frame. The returned
// matrix is shared, not copied; mutating it after handing the Frame to
// an analysis is the caller's responsibility to avoid.
func (f *Frame) Coords() *v3.Matrix {
	return f.coords
}

// Cell returns the simulation cell of the frame.
func (f *Frame) Cell() *Cell {
	return f.cell
}

// pos returns the position of the ith particle as a plain array, the
// representation used by the numeric kernels.
func (f *Frame) pos(i int) [3]float64 {
	return [3]float64{f.coords.At(i, 0), f.coords.At(i, 1), f.coords.At(i, 2)}
}
