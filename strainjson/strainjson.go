/*
 * strainjson.go, part of atomstrain.
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

// Package strainjson serializes atomic strain result documents and
// persists them to disk as zstd-compressed JSON. It is the realization
// of the persistence collaborator the core strain package delegates to.
package strainjson

import (
	"encoding/json"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	strain "github.com/mquezada/atomstrain"
)

// Marshal serializes a result document to JSON.
func Marshal(r *strain.Result) ([]byte, error) {
	ret, err := json.Marshal(r)
	if err != nil {
		return nil, Error{"Can't marshal result: " + err.Error(), "", []string{"Marshal"}, true}
	}
	return ret, nil
}

// Unmarshal deserializes a result document from JSON.
func Unmarshal(data []byte) (*strain.Result, error) {
	r := new(strain.Result)
	if err := json.Unmarshal(data, r); err != nil {
		return nil, Error{"Can't unmarshal result: " + err.Error(), "", []string{"Unmarshal"}, true}
	}
	return r, nil
}

// Encode writes a result document to out as JSON.
func Encode(out io.Writer, r *strain.Result) error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(r); err != nil {
		return Error{"Can't encode result: " + err.Error(), "", []string{"Encode"}, true}
	}
	return nil
}

// Write persists a result document to the named file as zstd-compressed
// JSON. The optional level is a zstd encoder level (the package
// defaults to the best compression, as these documents are written once
// and read rarely).
func Write(name string, r *strain.Result, level ...zstd.EncoderLevel) error {
	l := zstd.SpeedBestCompression
	if len(level) > 0 {
		l = level[0]
	}
	f, err := os.Create(name)
	if err != nil {
		return Error{err.Error(), name, []string{"Write"}, true}
	}
	defer f.Close()
	h, err := zstd.NewWriter(f, zstd.WithEncoderLevel(l))
	if err != nil {
		return Error{"Can't build compressor: " + err.Error(), name, []string{"Write"}, true}
	}
	if err := Encode(h, r); err != nil {
		h.Close()
		return errDecorate(err, "Write: "+name)
	}
	if err := h.Close(); err != nil {
		return Error{err.Error(), name, []string{"Write"}, true}
	}
	return nil
}

// Read recovers a result document written by Write.
func Read(name string) (*strain.Result, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"Read"}, true}
	}
	defer f.Close()
	h, err := zstd.NewReader(f)
	if err != nil {
		return nil, Error{"Can't build decompressor: " + err.Error(), name, []string{"Read"}, true}
	}
	defer h.Close()
	r := new(strain.Result)
	dec := json.NewDecoder(h)
	if err := dec.Decode(r); err != nil {
		return nil, Error{"Can't decode result: " + err.Error(), name, []string{"Read"}, true}
	}
	return r, nil
}

// ComputeToFile runs a full atomic strain analysis and persists the
// resulting document to the named file, returning it as well. It is the
// glue between the core computation and the on-disk format.
func ComputeToFile(current, reference *strain.Frame, name string, options ...*strain.Options) (*strain.Result, error) {
	r, err := strain.Compute(current, reference, "", options...)
	if err != nil {
		return nil, err
	}
	if err := Write(name, r); err != nil {
		return nil, errDecorate(err, "ComputeToFile")
	}
	return r, nil
}

//Errors

// Error is the error type of the strainjson package. It carries the
// name of the offending file, when there is one.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err Error) Error() string {
	if err.filename == "" {
		return err.message
	}
	return err.message + " (" + err.filename + ")"
}

// Decorate will add the dec string to the decoration slice of strings
// of the error, and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// FileName returns the file associated to the error, if any.
func (err Error) FileName() string { return err.filename }

// Critical returns whether the error is critical or can be ignored.
func (err Error) Critical() bool { return err.critical }

type errorer interface {
	Error() string
	Decorate(string) []string
}

func errDecorate(err error, caller string) error {
	if err2, ok := err.(errorer); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}
