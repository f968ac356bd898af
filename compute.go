/*
 * compute.go, part of atomstrain.
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
	"log"
	"sync"
)

// engine holds the read-only state shared by the workers of one Compute
// call. Every slice is indexed by the row of the particle in the
// current frame; the identity correspondence with the reference frame
// is resolved once, up front, so the hot loops never touch a map.
type engine struct {
	o      *Options
	cutoff float64

	refids  []int        //persistent identifiers, current-frame order
	refpos  [][3]float64 //reference positions, current-frame order
	curpos  [][3]float64 //current positions
	refCell *Cell
	curCell *Cell
	wrapRef bool
	wrapCur bool

	correct bool
	g       [3][3]float64 //H - I, the homogeneous displacement gradient
}

// Compute estimates the local atomic strain of every particle of the
// current frame with respect to the reference frame. Particles are
// matched between the two frames by their persistent identifiers, not
// by their order. A nil reference means the current frame is its own
// reference, which yields exactly zero strain everywhere and is useful
// as a sanity check.
//
// A particle-count or identity mismatch between the frames is a fatal
// error: no result document is produced. A degenerate neighborhood
// (too few or geometrically ill-placed neighbors for the least-squares
// fit) is not: the particle is flagged invalid, its tensor outputs are
// withheld, and the computation continues.
//
// Persistence of the document is delegated to the strainjson package;
// a non-empty outputPath only logs a reminder of that and the document
// is returned in-memory regardless.
func Compute(current, reference *Frame, outputPath string, options ...*Options) (*Result, error) {
	var o *Options
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	if current == nil {
		return nil, NewError(true, "Compute: nil current frame")
	}
	ref := reference
	if ref == nil {
		ref = current
	}
	if current.Len() != ref.Len() {
		return nil, NewError(true,
			"Compute: number of particles in current (%d) and reference (%d) frames does not match",
			current.Len(), ref.Len())
	}
	e, err := newEngine(current, ref, o)
	if err != nil {
		return nil, errDecorate(err, "Compute")
	}
	records := e.run()
	res := &Result{
		Cutoff:       o.cutoff,
		AtomicStrain: records,
	}
	res.NumInvalidParticles, res.Summary = aggregate(records)
	if outputPath != "" {
		log.Printf("atomstrain: file output is handled by the strainjson package; %s was not written. Returning the in-memory document.", outputPath)
	}
	return res, nil
}

// newEngine resolves the identity correspondence and precomputes the
// shared read-only state of one computation.
func newEngine(current, ref *Frame, o *Options) (*engine, error) {
	n := current.Len()
	e := &engine{
		o:       o,
		cutoff:  o.cutoff,
		refids:  make([]int, n),
		refpos:  make([][3]float64, n),
		curpos:  make([][3]float64, n),
		refCell: ref.Cell(),
		curCell: current.Cell(),
	}
	for k := 0; k < n; k++ {
		id := current.ID(k)
		i, ok := ref.Index(id)
		if !ok {
			return nil, NewError(true, "newEngine: particle %d of the current frame is missing from the reference", id)
		}
		e.refids[k] = id
		e.refpos[k] = ref.pos(i)
		e.curpos[k] = current.pos(k)
	}
	e.wrapRef = !o.unwrapped && e.refCell.IsPeriodic()
	e.wrapCur = !o.unwrapped && e.curCell.IsPeriodic()
	if o.elimcell {
		h := e.curCell.Deformation(e.refCell)
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				e.g[r][c] = h.At(r, c)
			}
		}
		e.g[0][0] -= 1
		e.g[1][1] -= 1
		e.g[2][2] -= 1
		e.correct = true
	}
	return e, nil
}

// run executes the per-particle phase. The particles are split in
// contiguous ranges, one per worker; each worker reads only the shared
// immutable engine state and writes only its own slice of the output,
// so no synchronization is needed beyond the final join.
func (e *engine) run() []ParticleStrain {
	n := len(e.curpos)
	records := make([]ParticleStrain, n)
	cpus := e.o.cpus
	if cpus > n {
		cpus = n
	}
	if cpus < 1 {
		cpus = 1
	}
	chunk := (n + cpus - 1) / cpus
	var wg sync.WaitGroup
	for w := 0; w < cpus; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			buf := make([]neighbor, 0, 64)
			for i := lo; i < hi; i++ {
				buf = e.particle(i, buf, &records[i])
			}
		}(lo, hi)
	}
	wg.Wait()
	return records
}

// particle fills rec with the analysis of one particle, reusing buf
// for the neighbor records. It returns the buffer for reuse.
func (e *engine) particle(i int, buf []neighbor, rec *ParticleStrain) []neighbor {
	rec.ID = e.refids[i]
	buf = e.neighbors(i, buf)
	F, ok := localFit(buf)
	if !ok {
		rec.Invalid = true
		return buf
	}
	if e.o.tensors {
		t := greenLagrange(F)
		rec.StrainTensor = t[:]
		rec.ShearStrain = shearStrain(t)
		rec.VolumetricStrain = volumetricStrain(t)
	}
	if e.o.defgrad {
		rec.DeformationGradient = []float64{
			F.At(0, 0), F.At(1, 0), F.At(2, 0),
			F.At(0, 1), F.At(1, 1), F.At(2, 1),
			F.At(0, 2), F.At(1, 2), F.At(2, 2),
		}
	}
	if e.o.d2min {
		v := d2min(F, buf)
		rec.D2min = &v
	}
	return buf
}

// aggregate reduces the per-particle records into the invalid count and
// the summary statistics. Only valid particles enter the sums and the
// averaging denominator; a frame with no valid particle reports zeros.
func aggregate(records []ParticleStrain) (int, Summary) {
	var s Summary
	invalid := 0
	valid := 0
	for i := range records {
		if records[i].Invalid {
			invalid++
			continue
		}
		valid++
		s.AverageShearStrain += records[i].ShearStrain
		s.AverageVolumetricStrain += records[i].VolumetricStrain
		if records[i].ShearStrain > s.MaxShearStrain {
			s.MaxShearStrain = records[i].ShearStrain
		}
	}
	if valid > 0 {
		s.AverageShearStrain /= float64(valid)
		s.AverageVolumetricStrain /= float64(valid)
	}
	return invalid, s
}
