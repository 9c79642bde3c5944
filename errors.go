/*
 * errors.go, part of bondangles.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package angles

import (
	"errors"
	"fmt"
	"strings"
)

//Error kinds. Use errors.Is to check for them; the concrete
//error returned is always a *CError carrying the offending particle or bond.
var (
	//ErrInsufficientBonds: fewer than 2 bonds at the requested particle.
	ErrInsufficientBonds = errors.New("not enough bonds found to compute angles")

	//ErrDegenerateBond: a bond vector of (near) zero length, for which no angle is defined.
	ErrDegenerateBond = errors.New("degenerate bond vector")

	//ErrInvalidParticle: a particle index out of range, or an identifier that can't be resolved.
	ErrInvalidParticle = errors.New("invalid particle")

	//ErrInvalidBond: a malformed bond (self bond, endpoint out of range) or an unresolvable bond identifier.
	ErrInvalidBond = errors.New("invalid bond")

	//ErrNoBonds: the system has no bonds at all.
	ErrNoBonds = errors.New("no bonds in system, please first generate bonds")

	//ErrNoIdentifiers: identifier addressing was requested but the system carries no identifiers.
	ErrNoIdentifiers = errors.New("no identifiers in system")

	//ErrFileFormat: an input file that can't be parsed.
	ErrFileFormat = errors.New("ill formatted file")
)

//CError is the error type returned by the angles package.
//Particle and Bond are -1 when they don't apply.
type CError struct {
	kind     error
	msg      string
	deco     []string
	Particle int
	Bond     int
}

func newCError(kind error, particle, bond int, format string, args ...interface{}) *CError {
	return &CError{kind: kind, msg: fmt.Sprintf(format, args...), Particle: particle, Bond: bond}
}

//Error returns a string with an error message.
func (err *CError) Error() string {
	if err.msg == "" {
		return err.kind.Error()
	}
	return fmt.Sprintf("%s: %s", err.kind.Error(), err.msg)
}

//Unwrap returns the error kind, so errors.Is works on a *CError.
func (err *CError) Unwrap() error {
	return err.kind
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Trace returns the decorations of the error, innermost first, as a single string.
func (err *CError) Trace() string {
	return strings.Join(err.deco, " <- ")
}

//errDecorate decorates err with the caller's name if it implements Error,
//and returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}
