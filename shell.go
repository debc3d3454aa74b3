/*
 * shell.go, part of goato.
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

import "fmt"

//Shell is the principal quantum number n, from 1 to 9.
type Shell uint8

const (
	One Shell = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
)

//ShellFromNumber returns the shell n, or ErrUnsupportedQuantumNumber
//if n is not between 1 and 9.
func ShellFromNumber(n uint8) (Shell, error) {
	if n < uint8(One) || n > uint8(Nine) {
		return 0, fmt.Errorf("shell %d is not implemented: %w", n, ErrUnsupportedQuantumNumber)
	}
	return Shell(n), nil
}

//Number returns n.
func (s Shell) Number() uint8 { return uint8(s) }

func (s Shell) String() string { return fmt.Sprintf("%d", uint8(s)) }
