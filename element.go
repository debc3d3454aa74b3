/*
 * element.go, part of goato.
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
	"strings"
)

//Element is a chemical element. Its value is the atomic number, so
//two Elements are equal (and hash equally as map keys) if and only if
//they have the same atomic number.
type Element uint8

//The sentinel for "no element" and the 118 known elements.
const (
	Dummy Element = iota
	H
	He
	Li
	Be
	B
	C
	N
	O
	F
	Ne
	Na
	Mg
	Al
	Si
	P
	S
	Cl
	Ar
	K
	Ca
	Sc
	Ti
	V
	Cr
	Mn
	Fe
	Co
	Ni
	Cu
	Zn
	Ga
	Ge
	As
	Se
	Br
	Kr
	Rb
	Sr
	Y
	Zr
	Nb
	Mo
	Tc
	Ru
	Rh
	Pd
	Ag
	Cd
	In
	Sn
	Sb
	Te
	I
	Xe
	Cs
	Ba
	La
	Ce
	Pr
	Nd
	Pm
	Sm
	Eu
	Gd
	Tb
	Dy
	Ho
	Er
	Tm
	Yb
	Lu
	Hf
	Ta
	W
	Re
	Os
	Ir
	Pt
	Au
	Hg
	Tl
	Pb
	Bi
	Po
	At
	Rn
	Fr
	Ra
	Ac
	Th
	Pa
	U
	Np
	Pu
	Am
	Cm
	Bk
	Cf
	Es
	Fm
	Md
	No
	Lr
	Rf
	Db
	Sg
	Bh
	Hs
	Mt
	Ds
	Rg
	Cn
	Nh
	Fl
	Mc
	Lv
	Ts
	Og
)

//MaxAtomicNumber is the atomic number of the heaviest known element, Og.
const MaxAtomicNumber = uint8(Og)

//ElementFromNumber returns the element with atomic number n.
//Numbers above MaxAtomicNumber give Dummy.
func ElementFromNumber(n uint8) Element {
	if n > MaxAtomicNumber {
		return Dummy
	}
	return Element(n)
}

//ElementFromSymbol returns the element with the given symbol. The match
//is case-insensitive, so "he", "HE" and "He" all give He.
//Unknown symbols give Dummy.
func ElementFromSymbol(symbol string) Element {
	if e, ok := symbolElement[strings.ToLower(strings.TrimSpace(symbol))]; ok {
		return e
	}
	return Dummy
}

//Number returns the atomic number.
func (e Element) Number() uint8 {
	if e > Og {
		return 0
	}
	return uint8(e)
}

//Symbol returns the chemical symbol, e.g. "He".
func (e Element) Symbol() string {
	if e == Dummy || e > Og {
		return "Dummy"
	}
	return elementTable[e-1].symbol
}

//Name returns the full English name, e.g. "Helium".
func (e Element) Name() string {
	if e == Dummy || e > Og {
		return "Dummy"
	}
	return elementTable[e-1].name
}

func (e Element) String() string {
	return e.Symbol()
}

//Elements returns all the real elements (no Dummy) sorted by atomic number.
func Elements() []Element {
	ret := make([]Element, 0, int(MaxAtomicNumber))
	for i := H; i <= Og; i++ {
		ret = append(ret, i)
	}
	return ret
}

var symbolElement = func() map[string]Element {
	m := make(map[string]Element, len(elementTable)+1)
	m["dummy"] = Dummy
	for i, v := range elementTable {
		m[strings.ToLower(v.symbol)] = Element(i + 1)
	}
	return m
}()
