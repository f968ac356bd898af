/*
 * result.go, part of atomstrain.
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

// Result is the document produced by one Compute invocation. It is
// owned by the caller; the package keeps no reference to it.
type Result struct {
	Cutoff              float64          `json:"cutoff"`
	NumInvalidParticles int              `json:"num_invalid_particles"`
	Summary             Summary          `json:"summary"`
	AtomicStrain        []ParticleStrain `json:"atomic_strain"`
}

// Summary holds the statistics over the valid particles of a frame.
// Invalid particles contribute to none of the fields, including the
// averaging denominator.
type Summary struct {
	AverageShearStrain      float64 `json:"average_shear_strain"`
	AverageVolumetricStrain float64 `json:"average_volumetric_strain"`
	MaxShearStrain          float64 `json:"max_shear_strain"`
}

// ParticleStrain is the per-particle record of the result document.
// The tensor fields are present only when the corresponding option is
// enabled and the particle is valid; D2min is null otherwise.
// For an invalid particle the scalar strains are zero, never values
// derived from a degenerate fit.
type ParticleStrain struct {
	ID               int     `json:"id"`
	ShearStrain      float64 `json:"shear_strain"`
	VolumetricStrain float64 `json:"volumetric_strain"`
	//6 components, order xx, yy, zz, xy, xz, yz.
	StrainTensor []float64 `json:"strain_tensor,omitempty"`
	//9 components, column-major order: xx, yx, zx, xy, yy, zy, xz, yz, zz.
	DeformationGradient []float64 `json:"deformation_gradient,omitempty"`
	D2min               *float64  `json:"D2min"`
	Invalid             bool      `json:"invalid"`
}
