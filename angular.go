/*
 * angular.go, part of goato.
 *
 *
 * Copyright 2026 The goato authors.
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

package ato

import (
	"fmt"
	"strings"
)

//AngularMomentum is the azimuthal quantum number l, from 0 (s) to 10 (m).
type AngularMomentum uint8

const (
	LS AngularMomentum = iota
	LP
	LD
	LF
	LG
	LH
	LI
	LJ
	LK
	LL
	LM
)

//MaxAngularMomentum is the highest supported l.
const MaxAngularMomentum = LM

const amLetters = "spdfghijklm"

//AngularMomentumFromNumber returns the angular momentum l. Values above
//MaxAngularMomentum give ErrUnsupportedQuantumNumber.
func AngularMomentumFromNumber(l uint8) (AngularMomentum, error) {
	if l > uint8(MaxAngularMomentum) {
		return 0, fmt.Errorf("angular momentum %d is not implemented: %w", l, ErrUnsupportedQuantumNumber)
	}
	return AngularMomentum(l), nil
}

//AngularMomentumFromLetter returns the angular momentum for a spectroscopic
//letter (s, p, d...), in either case.
func AngularMomentumFromLetter(letter string) (AngularMomentum, error) {
	l := strings.ToLower(strings.TrimSpace(letter))
	if len(l) != 1 || !strings.Contains(amLetters, l) {
		return 0, fmt.Errorf("no angular momentum for letter %q: %w", letter, ErrUnsupportedQuantumNumber)
	}
	return AngularMomentum(strings.Index(amLetters, l)), nil
}

//Number returns l.
func (a AngularMomentum) Number() uint8 { return uint8(a) }

//String returns the spectroscopic letter, "s", "p", "d"...
func (a AngularMomentum) String() string {
	if a > MaxAngularMomentum {
		return fmt.Sprintf("l=%d", uint8(a))
	}
	return amLetters[a : a+1]
}
