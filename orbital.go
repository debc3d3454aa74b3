/*
 * orbital.go, part of goato.
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
	"sort"
)

//AtomicOrbital is an orbital given by its quantum numbers n, l and m,
//with its energy and, optionally, its contraction. Only the quantum
//numbers identify an orbital.
type AtomicOrbital struct {
	N            Shell
	L            AngularMomentum
	M            int8
	Energy       float64
	Exponents    []float64
	Coefficients []float64
}

//NewAtomicOrbital returns the orbital (n, l, m). It fails if n or l are out of
//range, or if l >= n or |m| > l.
func NewAtomicOrbital(n, l, m int8) (AtomicOrbital, error) {
	return NewAtomicOrbitalWithEnergy(n, l, m, 0)
}

//NewAtomicOrbitalWithEnergy is like NewAtomicOrbital, but also sets the energy.
func NewAtomicOrbitalWithEnergy(n, l, m int8, energy float64) (AtomicOrbital, error) {
	if n < 0 || l < 0 {
		return AtomicOrbital{}, fmt.Errorf("negative quantum number in (%d, %d, %d): %w", n, l, m, ErrUnsupportedQuantumNumber)
	}
	shell, err := ShellFromNumber(uint8(n))
	if err != nil {
		return AtomicOrbital{}, err
	}
	am, err := AngularMomentumFromNumber(uint8(l))
	if err != nil {
		return AtomicOrbital{}, err
	}
	if l >= n {
		return AtomicOrbital{}, fmt.Errorf("l=%d with n=%d: %w", l, n, ErrInvalidOrbital)
	}
	if m > l || m < -l {
		return AtomicOrbital{}, fmt.Errorf("m=%d with l=%d: %w", m, l, ErrInvalidOrbital)
	}
	return AtomicOrbital{N: shell, L: am, M: m, Energy: energy}, nil
}

func mustOrbital(n, l, m int8) AtomicOrbital {
	o, err := NewAtomicOrbital(n, l, m)
	if err != nil {
		panic(err.Error())
	}
	return o
}

//Constructors for common orbitals, as (n, l, m): 1s (1,0,0), 2s (2,0,0),
//2px (2,1,1), 2py (2,1,-1), 2pz (2,1,0), 3dxy (3,2,-2), 3dyz (3,2,-1),
//3dz2 (3,2,0), 3dxz (3,2,1) and 3dx2y2 (3,2,2).
func Create1s() AtomicOrbital     { return mustOrbital(1, 0, 0) }
func Create2s() AtomicOrbital     { return mustOrbital(2, 0, 0) }
func Create2px() AtomicOrbital    { return mustOrbital(2, 1, 1) }
func Create2py() AtomicOrbital    { return mustOrbital(2, 1, -1) }
func Create2pz() AtomicOrbital    { return mustOrbital(2, 1, 0) }
func Create3dxy() AtomicOrbital   { return mustOrbital(3, 2, -2) }
func Create3dyz() AtomicOrbital   { return mustOrbital(3, 2, -1) }
func Create3dz2() AtomicOrbital   { return mustOrbital(3, 2, 0) }
func Create3dxz() AtomicOrbital   { return mustOrbital(3, 2, 1) }
func Create3dx2y2() AtomicOrbital { return mustOrbital(3, 2, 2) }

//OrdIdx returns an index that puts orbitals in Cartesian order:
//
//	1 s  => 100 |
//	2 s  => 200 | 2 px  => 210 | 2 py  => 211 | 2 pz  => 212 |
//	3 s  => 300 | 3 px  => 310 | 3 py  => 311 | 3 pz  => 312 |
//	            | 3 dz2 => 320 | 3 dzx => 321 | 3 dyz => 322 | 3 dx2y2 => 323 | 3 dxy => 324
//
//All the orbitals with l > 2 in the same n and l get the same index.
func (o AtomicOrbital) OrdIdx() int {
	return 100*int(o.N) + 10*int(o.L) + cartesianOffset(o.L, o.M)
}

func cartesianOffset(l AngularMomentum, m int8) int {
	switch l {
	case LS:
		return 0
	case LP:
		switch m {
		case 1: //px
			return 0
		case -1: //py
			return 1
		case 0: //pz
			return 2
		}
		return 3
	case LD:
		switch m {
		case 0: //dz2
			return 0
		case 1: //dzx
			return 1
		case -1: //dyz
			return 2
		case -2: //dx2-y2
			return 3
		case 2: //dxy
			return 4
		}
		return 5
	}
	return 6
}

//Equal compares only the quantum numbers.
func (o AtomicOrbital) Equal(other AtomicOrbital) bool {
	return o.N == other.N && o.L == other.L && o.M == other.M
}

//Less orders orbitals by OrdIdx.
func (o AtomicOrbital) Less(other AtomicOrbital) bool {
	return o.OrdIdx() < other.OrdIdx()
}

func (o AtomicOrbital) String() string {
	return fmt.Sprintf("%d%s(m=%d)", o.N, o.L, o.M)
}

//SortOrbitals sorts orbs in place by OrdIdx. Orbitals with the same index
//keep their relative order.
func SortOrbitals(orbs []AtomicOrbital) {
	sort.SliceStable(orbs, func(i, j int) bool { return orbs[i].Less(orbs[j]) })
}
