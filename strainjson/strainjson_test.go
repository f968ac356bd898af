/*
 * strainjson_test.go, part of atomstrain.
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

package strainjson

import (
	"path/filepath"
	"strings"
	"testing"

	strain "github.com/mquezada/atomstrain"
	v3 "github.com/mquezada/atomstrain/v3"
)

// smallResult computes a strain document for a 7-particle octahedral
// cluster with the x axis stretched by 10%.
func smallResult(t *testing.T) (*strain.Result, *strain.Frame, *strain.Frame) {
	t.Helper()
	rel := [][3]float64{
		{0, 0, 0},
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
	build := func(scalex float64) *strain.Frame {
		ids := make([]int, len(rel))
		coords := v3.Zeros(len(rel))
		for i, r := range rel {
			ids[i] = i + 1
			coords.Set(i, 0, 50+r[0]*scalex)
			coords.Set(i, 1, 50+r[1])
			coords.Set(i, 2, 50+r[2])
		}
		cell, err := strain.CubicCell(100, 100, 100, false)
		if err != nil {
			t.Fatal(err)
		}
		f, err := strain.NewFrame(ids, coords, cell)
		if err != nil {
			t.Fatal(err)
		}
		return f
	}
	ref := build(1.0)
	cur := build(1.1)
	o := strain.DefaultOptions()
	o.Cutoff(1.2)
	res, err := strain.Compute(cur, ref, "", o)
	if err != nil {
		t.Fatal(err)
	}
	return res, cur, ref
}

func TestMarshalSchema(t *testing.T) {
	res, _, _ := smallResult(t)
	data, err := Marshal(res)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, field := range []string{
		`"cutoff"`, `"num_invalid_particles"`, `"summary"`,
		`"average_shear_strain"`, `"average_volumetric_strain"`, `"max_shear_strain"`,
		`"atomic_strain"`, `"id"`, `"shear_strain"`, `"volumetric_strain"`,
		`"strain_tensor"`, `"deformation_gradient"`, `"D2min"`, `"invalid"`,
	} {
		if !strings.Contains(s, field) {
			t.Errorf("marshaled document lacks the %s field", field)
		}
	}
	//invalid particles carry a null D2min, not a number
	if !strings.Contains(s, `"D2min":null`) {
		t.Error("no null D2min found for the invalid particles")
	}
}

func TestRoundTrip(t *testing.T) {
	res, _, _ := smallResult(t)
	data, err := Marshal(res)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if back.NumInvalidParticles != res.NumInvalidParticles {
		t.Errorf("invalid count changed in the round trip: %d vs %d", back.NumInvalidParticles, res.NumInvalidParticles)
	}
	if len(back.AtomicStrain) != len(res.AtomicStrain) {
		t.Fatalf("record count changed in the round trip")
	}
	for i := range res.AtomicStrain {
		a, b := &res.AtomicStrain[i], &back.AtomicStrain[i]
		if a.ID != b.ID || a.Invalid != b.Invalid || a.ShearStrain != b.ShearStrain {
			t.Errorf("record %d changed in the round trip", i)
		}
		if (a.D2min == nil) != (b.D2min == nil) {
			t.Errorf("record %d: D2min nullness changed in the round trip", i)
		}
	}
}

func TestWriteRead(t *testing.T) {
	res, _, _ := smallResult(t)
	name := filepath.Join(t.TempDir(), "strain.json.zst")
	if err := Write(name, res); err != nil {
		t.Fatal(err)
	}
	back, err := Read(name)
	if err != nil {
		t.Fatal(err)
	}
	if back.Cutoff != res.Cutoff {
		t.Errorf("cutoff changed on disk: %g vs %g", back.Cutoff, res.Cutoff)
	}
	if back.Summary != res.Summary {
		t.Errorf("summary changed on disk: %+v vs %+v", back.Summary, res.Summary)
	}
	if len(back.AtomicStrain) != len(res.AtomicStrain) {
		t.Fatalf("record count changed on disk")
	}
}

func TestComputeToFile(t *testing.T) {
	_, cur, ref := smallResult(t)
	name := filepath.Join(t.TempDir(), "direct.json.zst")
	o := strain.DefaultOptions()
	o.Cutoff(1.2)
	res, err := ComputeToFile(cur, ref, name, o)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Read(name)
	if err != nil {
		t.Fatal(err)
	}
	if back.NumInvalidParticles != res.NumInvalidParticles {
		t.Error("persisted document differs from the returned one")
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.json.zst"))
	if err == nil {
		t.Fatal("no error from a missing file")
	}
	if jerr, ok := err.(Error); ok {
		if jerr.FileName() == "" {
			t.Error("error does not carry the file name")
		}
	} else {
		t.Errorf("unexpected error type %T", err)
	}
}
