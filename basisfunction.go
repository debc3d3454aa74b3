/*
 * basisfunction.go, part of goato.
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

	"gonum.org/v1/gonum/floats"
)

//BasisFunction is a contracted Gaussian: a linear combination of
//primitive Gaussians with the given exponents and coefficients,
//all sharing one angular momentum.
type BasisFunction struct {
	L            AngularMomentum
	Exponents    []float64
	Coefficients []float64
}

//NewBasisFunction returns a BasisFunction with copies of the given slices.
//There must be at least one primitive, and as many coefficients as exponents.
func NewBasisFunction(l AngularMomentum, exponents, coefficients []float64) (BasisFunction, error) {
	if l > MaxAngularMomentum {
		return BasisFunction{}, fmt.Errorf("angular momentum %d: %w", uint8(l), ErrUnsupportedQuantumNumber)
	}
	if len(exponents) == 0 || len(exponents) != len(coefficients) {
		return BasisFunction{}, fmt.Errorf("%d exponents and %d coefficients: %w", len(exponents), len(coefficients), ErrInvalidContraction)
	}
	e := make([]float64, len(exponents))
	c := make([]float64, len(coefficients))
	copy(e, exponents)
	copy(c, coefficients)
	return BasisFunction{L: l, Exponents: e, Coefficients: c}, nil
}

//NPrimitives returns the number of primitive Gaussians in the contraction.
func (b BasisFunction) NPrimitives() int {
	return len(b.Exponents)
}

//Tightest returns the largest exponent.
func (b BasisFunction) Tightest() float64 {
	if len(b.Exponents) == 0 {
		return 0
	}
	return floats.Max(b.Exponents)
}

//MostDiffuse returns the smallest exponent.
func (b BasisFunction) MostDiffuse() float64 {
	if len(b.Exponents) == 0 {
		return 0
	}
	return floats.Min(b.Exponents)
}

//Equal returns true if both functions have the same angular momentum and
//the same exponents and coefficients, in the same order.
func (b BasisFunction) Equal(o BasisFunction) bool {
	return b.L == o.L && floats.Equal(b.Exponents, o.Exponents) && floats.Equal(b.Coefficients, o.Coefficients)
}
