/*
 * options_test.go, part of atomstrain.
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
	"os"
	"path/filepath"
	"testing"
)

func TestOptionsAccessors(t *testing.T) {
	o := DefaultOptions()
	if o.Cutoff() != 3.0 {
		t.Errorf("default cutoff is %g, want 3.0", o.Cutoff())
	}
	if !o.StrainTensors() || !o.DeformationGradient() || !o.D2Min() {
		t.Error("compute flags should default to true")
	}
	if o.EliminateCellDeformation() || o.AssumeUnwrappedCoordinates() {
		t.Error("correction flags should default to false")
	}
	prev := o.Cutoff(2.5)
	if prev != 3.0 || o.Cutoff() != 2.5 {
		t.Errorf("Cutoff setter returned %g, value now %g", prev, o.Cutoff())
	}
	o.Cutoff(-1) //invalid, must be ignored
	if o.Cutoff() != 2.5 {
		t.Errorf("negative cutoff was accepted: %g", o.Cutoff())
	}
	o.Cpus(0) //invalid, must be ignored
	if o.Cpus() < 1 {
		t.Errorf("zero cpus was accepted: %d", o.Cpus())
	}
}

func TestReadOptions(t *testing.T) {
	text := `[AtomicStrain]
Cutoff = 3.5
EliminateCellDeformation = true
D2Min = false
Cpus = 4
`
	name := filepath.Join(t.TempDir(), "strain.cfg")
	if err := os.WriteFile(name, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	o, err := ReadOptions(name)
	if err != nil {
		t.Fatal(err)
	}
	if o.Cutoff() != 3.5 {
		t.Errorf("cutoff is %g, want 3.5", o.Cutoff())
	}
	if !o.EliminateCellDeformation() {
		t.Error("EliminateCellDeformation not read from file")
	}
	if o.D2Min() {
		t.Error("D2Min=false not read from file")
	}
	if o.Cpus() != 4 {
		t.Errorf("cpus is %d, want 4", o.Cpus())
	}
	//keys absent from the file keep their defaults
	if !o.StrainTensors() || !o.DeformationGradient() {
		t.Error("absent keys did not keep their defaults")
	}
	if o.AssumeUnwrappedCoordinates() {
		t.Error("absent key AssumeUnwrappedCoordinates did not keep its default")
	}
}

func TestReadOptionsMissingFile(t *testing.T) {
	_, err := ReadOptions(filepath.Join(t.TempDir(), "nope.cfg"))
	if err == nil {
		t.Fatal("no error from a missing options file")
	}
}
