/*
 * errors.go, part of goato.
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
	"errors"

	"github.com/rmera/goato/bse"
)

//Errors from the data layer, re-exported so callers of this package
//don't need to import bse to check them with errors.Is.
var (
	ErrConfig           = bse.ErrConfig
	ErrIO               = bse.ErrIO
	ErrNetwork          = bse.ErrNetwork
	ErrSchema           = bse.ErrSchema
	ErrBasisSetNotFound = bse.ErrBasisSetNotFound
)

var (
	//ErrUnsupportedQuantumNumber is returned when building an angular momentum
	//above 10 or a shell outside 1..9.
	ErrUnsupportedQuantumNumber = errors.New("unsupported quantum number")
	//ErrInvalidOrbital is returned for quantum numbers with |m|>l or l>=n.
	ErrInvalidOrbital = errors.New("invalid orbital")
	//ErrInvalidContraction is returned for basis functions without primitives, or
	//with different numbers of exponents and coefficients.
	ErrInvalidContraction = errors.New("invalid contraction")
)
