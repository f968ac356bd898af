/*
 * options.go, part of atomstrain.
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
	"runtime"

	"gopkg.in/gcfg.v1"
)

// Options collects the settings of an atomic strain analysis. All the
// accessor methods return the current value, and set a new one if a
// valid value is given.
type Options struct {
	cutoff    float64
	elimcell  bool
	unwrapped bool
	defgrad   bool
	tensors   bool
	d2min     bool
	cpus      int
}

// DefaultOptions returns an Options with the default settings: a cutoff
// of 3.0, no cell-deformation elimination, wrapped coordinates, every
// per-particle quantity computed, and as many workers as logical CPUs.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.cutoff = 3.0
	ret.elimcell = false
	ret.unwrapped = false
	ret.defgrad = true
	ret.tensors = true
	ret.d2min = true
	ret.cpus = runtime.NumCPU()
	return ret
}

// Cutoff returns the neighbor cutoff radius used to build each
// particle's neighborhood, and sets it, if a positive value is given.
func (o *Options) Cutoff(cutoff ...float64) float64 {
	ret := o.cutoff
	if len(cutoff) > 0 && cutoff[0] > 0 {
		o.cutoff = cutoff[0]
	}
	return ret
}

// EliminateCellDeformation returns whether the homogeneous strain
// implied by the simulation-cell change is factored out before the
// local fits, and sets the value to the one given, if any.
func (o *Options) EliminateCellDeformation(elim ...bool) bool {
	ret := o.elimcell
	if len(elim) > 0 {
		o.elimcell = elim[0]
	}
	return ret
}

// AssumeUnwrappedCoordinates returns whether coordinates are taken as
// already continuous across periodic boundaries, so no minimum-image
// wrapping is applied, and sets the value to the one given, if any.
func (o *Options) AssumeUnwrappedCoordinates(unwrapped ...bool) bool {
	ret := o.unwrapped
	if len(unwrapped) > 0 {
		o.unwrapped = unwrapped[0]
	}
	return ret
}

// DeformationGradient returns whether per-particle deformation
// gradients are included in the result document, and sets the value to
// the one given, if any. This only gates the output; the gradient is
// always solved for internally.
func (o *Options) DeformationGradient(calc ...bool) bool {
	ret := o.defgrad
	if len(calc) > 0 {
		o.defgrad = calc[0]
	}
	return ret
}

// StrainTensors returns whether per-particle strain tensors and their
// scalar invariants are computed, and sets the value to the one given,
// if any.
func (o *Options) StrainTensors(calc ...bool) bool {
	ret := o.tensors
	if len(calc) > 0 {
		o.tensors = calc[0]
	}
	return ret
}

// D2Min returns whether the nonaffine squared displacement is computed
// per particle, and sets the value to the one given, if any.
func (o *Options) D2Min(calc ...bool) bool {
	ret := o.d2min
	if len(calc) > 0 {
		o.d2min = calc[0]
	}
	return ret
}

// Cpus returns the number of goroutines used in the per-particle phase
// of the computation, and sets it, if a positive value is given.
func (o *Options) Cpus(cpus ...int) int {
	ret := o.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		o.cpus = cpus[0]
	}
	return ret
}

// optionsConfig is the on-disk layout of an options file. Keys are
// matched by gcfg, so an options file looks like:
//
//	[AtomicStrain]
//	Cutoff = 3.5
//	EliminateCellDeformation = true
//	Cpus = 4
type optionsConfig struct {
	AtomicStrain struct {
		Cutoff                     float64
		EliminateCellDeformation   bool
		AssumeUnwrappedCoordinates bool
		DeformationGradient        bool
		StrainTensors              bool
		D2Min                      bool
		Cpus                       int
	}
}

// ReadOptions reads an Options from a gcfg-format file. Keys absent
// from the file keep their default values.
func ReadOptions(filename string) (*Options, error) {
	def := DefaultOptions()
	var cf optionsConfig
	cf.AtomicStrain.Cutoff = def.cutoff
	cf.AtomicStrain.EliminateCellDeformation = def.elimcell
	cf.AtomicStrain.AssumeUnwrappedCoordinates = def.unwrapped
	cf.AtomicStrain.DeformationGradient = def.defgrad
	cf.AtomicStrain.StrainTensors = def.tensors
	cf.AtomicStrain.D2Min = def.d2min
	cf.AtomicStrain.Cpus = def.cpus
	if err := gcfg.ReadFileInto(&cf, filename); err != nil {
		return nil, NewError(true, "ReadOptions: %s: %v", filename, err)
	}
	ret := DefaultOptions()
	ret.Cutoff(cf.AtomicStrain.Cutoff)
	ret.EliminateCellDeformation(cf.AtomicStrain.EliminateCellDeformation)
	ret.AssumeUnwrappedCoordinates(cf.AtomicStrain.AssumeUnwrappedCoordinates)
	ret.DeformationGradient(cf.AtomicStrain.DeformationGradient)
	ret.StrainTensors(cf.AtomicStrain.StrainTensors)
	ret.D2Min(cf.AtomicStrain.D2Min)
	ret.Cpus(cf.AtomicStrain.Cpus)
	return ret, nil
}
