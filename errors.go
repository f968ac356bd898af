/*
 * errors.go, part of atomstrain.
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

import "fmt"

// Errorer is the interface for errors that all packages in this library
// implement. The Decorate method allows adding and retrieving info from
// the error as it is passed up the calling stack, without changing its
// type or wrapping it around something else.
type Errorer interface {
	Error() string
	Decorate(string) []string
	Critical() bool
}

// Error is the concrete error type of the strain package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// NewError builds an Error with the given message. Critical errors
// abort a whole computation, as opposed to conditions a caller may
// decide to ignore.
func NewError(critical bool, format string, args ...interface{}) Error {
	return Error{message: fmt.Sprintf(format, args...), critical: critical}
}

// Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

// Decorate will add the dec string to the decoration slice of strings
// of the error, and return the resulting slice. An empty dec only
// retrieves the current decorations.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error aborts the whole computation.
func (err Error) Critical() bool { return err.critical }

// errDecorate annotates err with the caller's name if err implements
// Errorer, and returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Errorer); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

// PanicMsg is a message used for panics caused by programmer errors,
// such as out-of-range accesses. For recoverable conditions use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilFrame        = PanicMsg("atomstrain: nil Frame given")
	ErrNilCell         = PanicMsg("atomstrain: Frame carries no simulation cell")
	ErrIndexOutOfRange = PanicMsg("atomstrain: particle index out of range")
)
