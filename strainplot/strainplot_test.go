/*
 * strainplot_test.go, part of atomstrain.
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

package strainplot

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	strain "github.com/mquezada/atomstrain"
)

func fakeResult(n int) *strain.Result {
	rnd := rand.New(rand.NewSource(42))
	res := &strain.Result{Cutoff: 3.0}
	for i := 0; i < n; i++ {
		a := strain.ParticleStrain{
			ID:               i + 1,
			ShearStrain:      rnd.Float64() * 0.2,
			VolumetricStrain: (rnd.Float64() - 0.5) * 0.1,
		}
		if i%10 == 9 {
			a = strain.ParticleStrain{ID: i + 1, Invalid: true}
			res.NumInvalidParticles++
		}
		res.AtomicStrain = append(res.AtomicStrain, a)
	}
	return res
}

func TestShearHistogram(t *testing.T) {
	res := fakeResult(200)
	name := filepath.Join(t.TempDir(), "shear.png")
	if err := ShearHistogram(res, 20, name); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(name)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Error("histogram file is empty")
	}
}

func TestShearVolumetricScatter(t *testing.T) {
	res := fakeResult(200)
	name := filepath.Join(t.TempDir(), "scatter.svg")
	if err := ShearVolumetricScatter(res, name); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(name); err != nil || fi.Size() == 0 {
		t.Errorf("scatter file missing or empty: %v", err)
	}
}

func TestAllInvalid(t *testing.T) {
	res := &strain.Result{
		AtomicStrain: []strain.ParticleStrain{
			{ID: 1, Invalid: true},
			{ID: 2, Invalid: true},
		},
		NumInvalidParticles: 2,
	}
	if err := ShearHistogram(res, 10, filepath.Join(t.TempDir(), "x.png")); err == nil {
		t.Error("no error when every particle is invalid")
	}
	if err := ShearVolumetricScatter(res, filepath.Join(t.TempDir(), "y.png")); err == nil {
		t.Error("no error when every particle is invalid")
	}
}
