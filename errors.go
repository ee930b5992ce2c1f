/*
 * errors.go, part of polysim.
 *
 * Copyright 2026 The polysim authors
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

package polysim

import "fmt"

//Error is the interface for errors that all packages in this library implement.
//The Decorate method allows to add and retrieve call-path info from the error
//without changing its type or wrapping it around something else. If passed an
//empty string it just returns the current decoration slice.
type Error interface {
	Error() string
	Decorate(string) []string
}

//ErrKind identifies the failure cause of a build or property request, so
//callers can branch on it without matching message text. Every failure is
//terminal for its request; nothing is retried internally.
type ErrKind int

const (
	//ErrParse: the input notation or structure text is not well formed.
	ErrParse ErrKind = iota + 1
	//ErrNoStochasticObject: the notation has no repeat-unit-bearing region.
	ErrNoStochasticObject
	//ErrRepeatUnitCount: the stochastic object has the wrong number of
	//repeat units for the requested architecture.
	ErrRepeatUnitCount
	//ErrBuildStrategy: the repeat count resolves to 0, or the strategy is
	//unsupported for the chosen architecture.
	ErrBuildStrategy
	//ErrRingOverflow: a single repeat unit alone uses more than 99 ring
	//closure numbers, which is invalid SMILES regardless of repeat count.
	ErrRingOverflow
	//ErrWeightFractions: copolymer weight fractions don't sum to 1.0.
	ErrWeightFractions
)

//PolyError is the concrete error returned by this package. Got and Need
//carry the actual/required repeat-unit counts when Kind is
//ErrRepeatUnitCount, and are zero otherwise.
type PolyError struct {
	kind ErrKind
	msg  string
	deco []string
	Got  int
	Need int
}

func (err *PolyError) Error() string {
	return err.msg
}

//Kind returns the failure cause.
func (err *PolyError) Kind() ErrKind {
	return err.kind
}

func (err *PolyError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func newError(kind ErrKind, format string, a ...interface{}) *PolyError {
	return &PolyError{kind: kind, msg: fmt.Sprintf(format, a...)}
}

//KindOf returns the ErrKind of err, or 0 if err is not a *PolyError.
func KindOf(err error) ErrKind {
	perr, ok := err.(*PolyError)
	if !ok {
		return 0
	}
	return perr.kind
}

//errDecorate annotates err with the caller name when it implements Error,
//and wraps it into a parse-kind PolyError otherwise (errors coming up from
//the smiles/bigsmiles collaborators).
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if ok {
		err2.Decorate(caller)
		return err2
	}
	perr := newError(ErrParse, "%s", err.Error())
	perr.Decorate(caller)
	return perr
}
