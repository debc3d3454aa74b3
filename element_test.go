/*
 * element_test.go, part of goato.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementFromNumber(Te *testing.T) {
	for n := 0; n <= int(MaxAtomicNumber); n++ {
		e := ElementFromNumber(uint8(n))
		assert.Equal(Te, uint8(n), e.Number())
	}
	for n := int(MaxAtomicNumber) + 1; n < 256; n++ {
		assert.Equal(Te, Dummy, ElementFromNumber(uint8(n)), n)
	}
	assert.Equal(Te, uint8(0), ElementFromNumber(119).Number())
}

func TestElementSymbols(Te *testing.T) {
	els := Elements()
	require.Len(Te, els, 118)
	seen := make(map[string]bool)
	for _, e := range els {
		assert.Equal(Te, e, ElementFromSymbol(e.Symbol()), e.Symbol())
		assert.Equal(Te, e.Symbol(), ElementFromNumber(e.Number()).Symbol())
		assert.False(Te, seen[e.Symbol()], "repeated symbol %s", e.Symbol())
		seen[e.Symbol()] = true
		assert.NotEqual(Te, "Dummy", e.Name())
	}
	assert.Equal(Te, Dummy, ElementFromSymbol(Dummy.Symbol()))
}

func TestHelium(Te *testing.T) {
	he := ElementFromSymbol("He")
	assert.Equal(Te, He, he)
	assert.Equal(Te, uint8(2), he.Number())
	assert.Equal(Te, "Helium", he.Name())
	assert.Equal(Te, "He", he.String())
	assert.Equal(Te, He, ElementFromSymbol("HE"))
	assert.Equal(Te, He, ElementFromSymbol(" he "))
	assert.Equal(Te, Dummy, ElementFromSymbol("Xx"))
}

func TestElementTable(Te *testing.T) {
	tests := []struct {
		e      Element
		n      uint8
		symbol string
		name   string
	}{
		{H, 1, "H", "Hydrogen"},
		{C, 6, "C", "Carbon"},
		{Fe, 26, "Fe", "Iron"},
		{La, 57, "La", "Lanthanum"},
		{Hf, 72, "Hf", "Hafnium"},
		{U, 92, "U", "Uranium"},
		{Rf, 104, "Rf", "Rutherfordium"},
		{Ds, 110, "Ds", "Darmstadtium"},
		{Og, 118, "Og", "Oganesson"},
	}
	for _, t := range tests {
		assert.Equal(Te, t.n, t.e.Number())
		assert.Equal(Te, t.symbol, t.e.Symbol())
		assert.Equal(Te, t.name, t.e.Name())
	}
}

//Equality and map keys depend only on the atomic number.
func TestElementIdentity(Te *testing.T) {
	a := ElementFromSymbol("o")
	b := ElementFromNumber(8)
	assert.True(Te, a == b)
	m := map[Element]int{a: 1}
	m[b]++
	assert.Equal(Te, 2, m[O])
	assert.Len(Te, m, 1)
	assert.True(Te, C < N)
}

func TestElementData(Te *testing.T) {
	m, ok := C.Mass()
	assert.True(Te, ok)
	assert.InDelta(Te, 12.01, m, 1e-9)
	r, ok := O.CovalentRadius()
	assert.True(Te, ok)
	assert.InDelta(Te, 0.66, r, 1e-9)
	_, ok = Og.Mass()
	assert.False(Te, ok)
}
