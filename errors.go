/*
 * errors.go, part of qcinput
 *
 *
 * Copyright 2023 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package qcinput

import "fmt"

//Error is the interface for errors that all packages in this library
//implement. The Decorate method allows to add and retrieve info from the
//error, without changing its type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //If passed an empty string, it should just return the current decoration, not add the empty string to it.
}

//CError is the concrete general error type of the library.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds the dec string to the decoration slice of strings of the
//error and returns the resulting slice.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//errDecorate decorates an error if it implements the Error interface of
//this library, and wraps it into a CError otherwise.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if ok {
		err2.Decorate(caller)
		return err2
	}
	return CError{err.Error(), []string{caller}}
}

//UnsupportedDialectError is returned when the name of the requested
//text format is not among the supported ones. It is always returned
//before any other work is done.
type UnsupportedDialectError struct {
	dialect string
	deco    []string
}

func (err UnsupportedDialectError) Error() string {
	return fmt.Sprintf("qcinput: dialect %q not understood", err.dialect)
}

//Decorate adds the dec string to the decoration slice of strings of the
//error and returns the resulting slice.
func (err UnsupportedDialectError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Dialect returns the offending dialect name.
func (err UnsupportedDialectError) Dialect() string { return err.dialect }

//UnsupportedUnitError is returned when a length unit can not be
//converted, either because it is unknown to the conversion table or
//because the requested dialect does not accept it.
type UnsupportedUnitError struct {
	units   string
	dialect string //empty if the failure was in the generic conversion
	deco    []string
}

func (err UnsupportedUnitError) Error() string {
	if err.dialect == "" {
		return fmt.Sprintf("qcinput: no unit conversion known for %q", err.units)
	}
	return fmt.Sprintf("qcinput: dialect %q does not support units %q", err.dialect, err.units)
}

//Decorate adds the dec string to the decoration slice of strings of the
//error and returns the resulting slice.
func (err UnsupportedUnitError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Units returns the offending unit name.
func (err UnsupportedUnitError) Units() string { return err.units }

//Dialect returns the dialect that rejected the unit, or the empty
//string if the failure was in the generic conversion-factor lookup.
func (err UnsupportedUnitError) Dialect() string { return err.dialect }

//InvalidGeometryUnitError is returned when a dialect demands one fixed
//unit (e.g. SDF requiring Angstrom) and the request violates it. No
//silent rescaling is ever attempted.
type InvalidGeometryUnitError struct {
	units   string
	dialect string
	needed  string
	deco    []string
}

func (err InvalidGeometryUnitError) Error() string {
	return fmt.Sprintf("qcinput: dialect %q requires units %q, got %q", err.dialect, err.needed, err.units)
}

//Decorate adds the dec string to the decoration slice of strings of the
//error and returns the resulting slice.
func (err InvalidGeometryUnitError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Units returns the offending unit name.
func (err InvalidGeometryUnitError) Units() string { return err.units }

//Needed returns the unit the dialect demands.
func (err InvalidGeometryUnitError) Needed() string { return err.needed }
