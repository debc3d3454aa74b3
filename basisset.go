/*
 * basisset.go, part of goato.
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
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rmera/goato/bse"
	"gonum.org/v1/gonum/mat"
)

//ShellSelection tells FromDocument which electron shells of each element to use.
type ShellSelection int

const (
	//AllShells uses every shell of each element, in document order.
	AllShells ShellSelection = iota
	//LastShell uses only the last shell of each element. Older versions
	//of this library did that, and it loses functions for multi-shell
	//basis sets such as 6-31G. It is kept for compatibility.
	LastShell
)

//BasisSet holds the contracted basis functions of a basis set for each
//element it covers. The functions of each element are in the order in
//which they appear in the BSE document.
type BasisSet struct {
	Name        string
	Description string
	Functions   map[Element][]BasisFunction
}

//Of returns the basis set with the given name. The names are the ones used at
//https://www.basissetexchange.org, and are case-insensitive.
//
//The first time it is called, all basis sets are downloaded from BSE, so
//an internet connection is needed. The data take about 400 MB and are placed in
//$HOME/.ato_rs/data/. Set the environment variable ATO_DATA_PATH to use another
//directory. Every call reads the basis set from disk again.
func Of(name string) (*BasisSet, error) {
	doc, err := bse.ReadBasis(name)
	if err != nil {
		return nil, err
	}
	return FromDocument(doc, AllShells)
}

//OfExchange is like Of, but uses the given Exchange (and hence its data
//directory and server) instead of the one given by the environment.
func OfExchange(ctx context.Context, x *bse.Exchange, name string) (*BasisSet, error) {
	doc, err := x.ReadBasis(ctx, name)
	if err != nil {
		return nil, err
	}
	return FromDocument(doc, AllShells)
}

//MustOf is like Of but panics on error.
func MustOf(name string) *BasisSet {
	b, err := Of(name)
	if err != nil {
		panic(err.Error())
	}
	return b
}

//STO3G returns the STO-3G basis set.
func STO3G() (*BasisSet, error) {
	return Of("STO-3G")
}

//UpdateData downloads all the basis sets again into the data directory.
func UpdateData() error {
	return bse.UpdateData()
}

//FromDocument builds a BasisSet from a BSE document.
func FromDocument(doc *bse.Document, sel ShellSelection) (*BasisSet, error) {
	if doc == nil {
		return nil, fmt.Errorf("nil document: %w", ErrSchema)
	}
	bs := &BasisSet{
		Name:        doc.Name,
		Description: doc.Description,
		Functions:   make(map[Element][]BasisFunction, len(doc.Elements)),
	}
	for key, data := range doc.Elements {
		el, err := elementFromKey(key)
		if err != nil {
			return nil, err
		}
		shells := data.ElectronShells
		if len(shells) == 0 {
			return nil, fmt.Errorf("element %s has no electron shells: %w", el, ErrSchema)
		}
		if sel == LastShell {
			shells = shells[len(shells)-1:]
		}
		var functions []BasisFunction
		for i := range shells {
			f, err := shellFunctions(&shells[i])
			if err != nil {
				return nil, fmt.Errorf("element %s, shell %d: %w", el, i, err)
			}
			functions = append(functions, f...)
		}
		bs.Functions[el] = functions
	}
	return bs, nil
}

func elementFromKey(key string) (Element, error) {
	n, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil || n < 1 || n > int(MaxAtomicNumber) {
		return Dummy, fmt.Errorf("invalid atomic number %q: %w", key, ErrSchema)
	}
	return ElementFromNumber(uint8(n)), nil
}

//shellFunctions returns one BasisFunction per coefficient row of the shell.
//With a single angular momentum every row gets it (general contraction),
//otherwise row i goes with angular momentum i (e.g. SP shells).
func shellFunctions(s *bse.ElectronShell) ([]BasisFunction, error) {
	exps, err := s.ExponentValues()
	if err != nil {
		return nil, err
	}
	coefs, err := s.CoefficientMatrix()
	if err != nil {
		return nil, err
	}
	_, ncols := coefs.Dims()
	am := s.AngularMomentum
	switch {
	case len(am) == 0:
		return nil, fmt.Errorf("shell without angular momentum: %w", ErrSchema)
	case len(am) > 1 && len(am) != ncols:
		return nil, fmt.Errorf("%d angular momenta but %d coefficient rows: %w", len(am), ncols, ErrSchema)
	}
	ret := make([]BasisFunction, 0, ncols)
	for j := 0; j < ncols; j++ {
		rawl := am[0]
		if len(am) > 1 {
			rawl = am[j]
		}
		if rawl < 0 || rawl > 255 {
			return nil, fmt.Errorf("angular momentum %d: %w", rawl, ErrUnsupportedQuantumNumber)
		}
		l, err := AngularMomentumFromNumber(uint8(rawl))
		if err != nil {
			return nil, err
		}
		f, err := NewBasisFunction(l, exps, mat.Col(nil, j, coefs))
		if err != nil {
			return nil, err
		}
		ret = append(ret, f)
	}
	return ret, nil
}

//For returns the basis functions for el, and false if the basis set
//doesn't cover it.
func (b *BasisSet) For(el Element) ([]BasisFunction, bool) {
	f, ok := b.Functions[el]
	return f, ok
}

//Elements returns the elements covered by the basis set, sorted by atomic number.
func (b *BasisSet) Elements() []Element {
	ret := make([]Element, 0, len(b.Functions))
	for el := range b.Functions {
		ret = append(ret, el)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}

//ReprFor returns the basis functions for el as text. Each function
//is a header line with the angular momentum letter, the number of
//primitives and a scale factor of 1.00, followed by one line per
//primitive with its exponent and coefficient. It returns an empty
//string if the basis set doesn't cover el.
func (b *BasisSet) ReprFor(el Element) string {
	var sb strings.Builder
	for _, f := range b.Functions[el] {
		fmt.Fprintf(&sb, " %s    %d  1.00\n", f.L, len(f.Exponents))
		for i, e := range f.Exponents {
			fmt.Fprintf(&sb, "%18.14e %18.14e\n", e, f.Coefficients[i])
		}
	}
	return sb.String()
}
