/*
 * basisset_test.go, part of goato.
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
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/goato/bse"
	"github.com/rmera/goato/bse/bsetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readDocument(Te *testing.T, name string) *bse.Document {
	Te.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(Te, err)
	doc, err := bse.ParseDocument(data)
	require.NoError(Te, err)
	return doc
}

func TestSTO2G(Te *testing.T) {
	bs, err := FromDocument(readDocument(Te, "sto-2g.json"), AllShells)
	require.NoError(Te, err)
	assert.Equal(Te, "STO-2G", bs.Name)
	assert.Equal(Te, "STO-2G Minimal Basis (2 functions/AO)", bs.Description)
	assert.Equal(Te, []Element{H, He}, bs.Elements())
	h, ok := bs.For(H)
	require.True(Te, ok)
	require.Len(Te, h, 1)
	assert.Equal(Te, LS, h[0].L)
	assert.Equal(Te, []float64{1.309756377, 0.2331359749}, h[0].Exponents)
	assert.Equal(Te, []float64{0.4301284983, 0.6789135305}, h[0].Coefficients)
	for _, fs := range bs.Functions {
		for _, f := range fs {
			assert.Equal(Te, len(f.Exponents), len(f.Coefficients))
		}
	}
	_, ok = bs.For(Li)
	assert.False(Te, ok)
}

func TestReprFor(Te *testing.T) {
	bs, err := FromDocument(readDocument(Te, "sto-2g.json"), AllShells)
	require.NoError(Te, err)
	want := " s    2  1.00\n" +
		"1.30975637700000e+00 4.30128498300000e-01\n" +
		"2.33135974900000e-01 6.78913530500000e-01\n"
	assert.Equal(Te, want, bs.ReprFor(H))
	assert.Equal(Te, "", bs.ReprFor(U))
}

//SP shells give one function per angular momentum, sharing the exponents.
func TestSPShell(Te *testing.T) {
	bs, err := FromDocument(readDocument(Te, "sto-3g.json"), AllShells)
	require.NoError(Te, err)
	o := bs.Functions[O]
	require.Len(Te, o, 3)
	assert.Equal(Te, []AngularMomentum{LS, LS, LP}, []AngularMomentum{o[0].L, o[1].L, o[2].L})
	assert.Equal(Te, o[1].Exponents, o[2].Exponents)
	assert.Equal(Te, -0.09996722919, o[1].Coefficients[0])
	assert.Equal(Te, 0.1559162750, o[2].Coefficients[0])
	assert.Equal(Te, 130.7093214, o[0].Tightest())
}

//Multi-shell elements: every shell is used unless LastShell is asked for,
//which keeps only the last one.
func TestShellSelection(Te *testing.T) {
	doc := readDocument(Te, "6-31g.json")
	all, err := FromDocument(doc, AllShells)
	require.NoError(Te, err)
	c := all.Functions[C]
	require.Len(Te, c, 5)
	ls := make([]AngularMomentum, len(c))
	np := make([]int, len(c))
	for i, f := range c {
		ls[i] = f.L
		np[i] = f.NPrimitives()
	}
	assert.Equal(Te, []AngularMomentum{LS, LS, LP, LS, LP}, ls)
	assert.Equal(Te, []int{6, 3, 3, 1, 1}, np)
	assert.Len(Te, all.Functions[H], 2)

	last, err := FromDocument(doc, LastShell)
	require.NoError(Te, err)
	c = last.Functions[C]
	require.Len(Te, c, 2)
	assert.Equal(Te, []float64{0.1687144782}, c[0].Exponents)
	assert.Equal(Te, LP, c[1].L)
	require.Len(Te, last.Functions[H], 1)
	assert.Equal(Te, []float64{0.1612777588}, last.Functions[H][0].Exponents)
}

func TestGeneralContraction(Te *testing.T) {
	bs, err := FromDocument(readDocument(Te, "cc-pvdz-h.json"), AllShells)
	require.NoError(Te, err)
	h := bs.Functions[H]
	require.Len(Te, h, 3)
	assert.Equal(Te, LS, h[0].L)
	assert.Equal(Te, LS, h[1].L)
	assert.Equal(Te, LP, h[2].L)
	assert.Equal(Te, []float64{0, 0, 0, 1}, h[1].Coefficients)
	assert.Equal(Te, h[0].Exponents, h[1].Exponents)
}

func TestFromDocumentErrors(Te *testing.T) {
	shell := bse.ElectronShell{
		AngularMomentum: []int{0},
		Exponents:       []string{"1.0"},
		Coefficients:    [][]string{{"1.0"}},
	}
	docWith := func(key string, shells ...bse.ElectronShell) *bse.Document {
		return &bse.Document{Name: "test", Elements: map[string]bse.ElementData{key: {ElectronShells: shells}}}
	}
	tests := []struct {
		msg string
		doc *bse.Document
		err error
	}{
		{"nil document", nil, ErrSchema},
		{"non-numeric key", docWith("H", shell), ErrSchema},
		{"dummy key", docWith("0", shell), ErrSchema},
		{"key out of range", docWith("119", shell), ErrSchema},
		{"no shells", docWith("1"), ErrSchema},
		{"no angular momentum", docWith("1", bse.ElectronShell{Exponents: []string{"1"}, Coefficients: [][]string{{"1"}}}), ErrSchema},
		{"angular momenta and rows differ", docWith("1", bse.ElectronShell{AngularMomentum: []int{0, 1}, Exponents: []string{"1"}, Coefficients: [][]string{{"1"}}}), ErrSchema},
		{"row length", docWith("1", bse.ElectronShell{AngularMomentum: []int{0}, Exponents: []string{"1", "2"}, Coefficients: [][]string{{"1"}}}), ErrSchema},
		{"l too high", docWith("1", bse.ElectronShell{AngularMomentum: []int{12}, Exponents: []string{"1"}, Coefficients: [][]string{{"1"}}}), ErrUnsupportedQuantumNumber},
	}
	for _, t := range tests {
		_, err := FromDocument(t.doc, AllShells)
		assert.True(Te, errors.Is(err, t.err), "%s: %v", t.msg, err)
	}
	bs, err := FromDocument(docWith("1", shell), AllShells)
	require.NoError(Te, err)
	assert.Len(Te, bs.Functions[H], 1)
}

func fakeBSE(Te *testing.T) *bsetest.Server {
	Te.Helper()
	var entries []bsetest.Entry
	for _, e := range []struct{ key, name, file string }{
		{"sto-2g", "STO-2G", "sto-2g.json"},
		{"sto-3g", "STO-3G", "sto-3g.json"},
		{"6-31g", "6-31G", "6-31g.json"},
	} {
		data, err := os.ReadFile(filepath.Join("testdata", e.file))
		require.NoError(Te, err)
		entries = append(entries, bsetest.Entry{Key: e.key, Basename: e.name, Body: data})
	}
	srv := bsetest.NewServer(entries...)
	Te.Cleanup(srv.Close)
	bse.SetLogger(log.New(io.Discard, "", 0))
	Te.Cleanup(func() { bse.SetLogger(log.New(os.Stderr, "bse: ", log.LstdFlags)) })
	return srv
}

func TestOf(Te *testing.T) {
	srv := fakeBSE(Te)
	root := filepath.Join(Te.TempDir(), "atotest")
	Te.Setenv(bse.EnvDataPath, root)
	Te.Setenv(bse.EnvBaseURL, srv.URL)
	Te.Setenv(bse.EnvWorkers, "")

	bs, err := STO3G()
	require.NoError(Te, err)
	assert.Equal(Te, "STO-3G", bs.Name)
	assert.Equal(Te, []Element{H, O}, bs.Elements())
	_, err = os.Stat(filepath.Join(root, bse.BinaryIndexFile))
	require.NoError(Te, err)
	entries, err := os.ReadDir(filepath.Join(root, bse.BasisSubdirectory))
	require.NoError(Te, err)
	assert.Len(Te, entries, 3)

	before := srv.TotalRequests()
	bs, err = Of("6-31g")
	require.NoError(Te, err)
	assert.Len(Te, bs.Functions[C], 5)
	assert.Equal(Te, before, srv.TotalRequests(), "second call must only read from disk")

	_, err = Of("def2-QZVPP")
	assert.True(Te, errors.Is(err, ErrBasisSetNotFound))
	assert.Panics(Te, func() { MustOf("def2-QZVPP") })
	assert.NotPanics(Te, func() { MustOf("STO-2G") })

	require.NoError(Te, UpdateData())
	assert.Equal(Te, 2, srv.Requests("/api/metadata/"))
}

func TestOfExchange(Te *testing.T) {
	srv := fakeBSE(Te)
	x := bse.NewExchange(bse.Config{DataRoot: filepath.Join(Te.TempDir(), "data"), BaseURL: srv.URL})
	bs, err := OfExchange(context.Background(), x, "sto-2g")
	require.NoError(Te, err)
	assert.Len(Te, bs.Functions[He], 1)
}
