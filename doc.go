/*
 * doc.go, part of goato.
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

/*Package ato gives access to Gaussian-type atomic orbital basis sets, as
used in quantum chemistry, taken from the Basis Set Exchange
(https://www.basissetexchange.org).


	**goato Capabilities**

    Returns, for a basis set name and an element, the contracted Gaussian
	basis functions (angular momentum, exponents and contraction coefficients).

    Downloads the whole BSE catalog the first time it is needed, with up to
	30 concurrent requests, and keeps it on disk ($ATO_DATA_PATH or
	$HOME/.ato_rs/data/). See the bse subpackage.

    Chemical elements, angular momenta (s to m) and principal quantum numbers
	(1 to 9) as small value types.

    Atomic orbitals labeled by (n, l, m), which can be sorted in Cartesian order.


A minimal program:

	sto3g, err := ato.STO3G()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(sto3g.ReprFor(ato.ElementFromSymbol("O")))

*/
package ato
