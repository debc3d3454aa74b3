/*
 * index_test.go, part of goato.
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

package bse

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIndex() Index {
	return NewIndex(map[string]MetadataEntry{
		"sto-3g":      {Basename: "STO-3G"},
		"6-31g":       {Basename: "6-31G"},
		"6-31g_st_":   {Basename: "6-31G*"},
		"def2-svp":    {Basename: "def2-SVP"},
		"cc-pvdz":     {Basename: "cc-pVDZ"},
		"aug-cc-pvtz": {Basename: "aug-cc-pVTZ"},
	})
}

func TestNewIndex(Te *testing.T) {
	idx := testIndex()
	assert.Equal(Te, "6-31g_st_", idx["6-31g*"])
	c, ok := idx.Lookup("Def2-SVP")
	assert.True(Te, ok)
	assert.Equal(Te, "def2-svp", c)
	_, ok = idx.Lookup("6-311G")
	assert.False(Te, ok)
	assert.Equal(Te, []string{"6-31g", "6-31g_st_", "aug-cc-pvtz", "cc-pvdz", "def2-svp", "sto-3g"}, idx.Canonical())
}

func TestIndexRoundTrip(Te *testing.T) {
	idx := testIndex()
	data, err := EncodeIndex(idx)
	require.NoError(Te, err)
	back, err := DecodeIndex(data)
	require.NoError(Te, err)
	assert.Equal(Te, idx, back)

	dir := Te.TempDir()
	bin := filepath.Join(dir, BinaryIndexFile)
	require.NoError(Te, WriteIndex(bin, idx))
	back, err = ReadIndex(bin)
	require.NoError(Te, err)
	assert.Equal(Te, idx, back)

	js := filepath.Join(dir, JSONIndexFile)
	require.NoError(Te, WriteIndexJSON(js, idx))
	raw, err := os.ReadFile(js)
	require.NoError(Te, err)
	var fromJSON Index
	require.NoError(Te, json.Unmarshal(raw, &fromJSON))
	assert.Equal(Te, idx, fromJSON)

	entries, err := os.ReadDir(dir)
	require.NoError(Te, err)
	assert.Len(Te, entries, 2, "temporary files left behind")
}

func TestReadIndexErrors(Te *testing.T) {
	dir := Te.TempDir()
	_, err := ReadIndex(filepath.Join(dir, "nothere.bc"))
	assert.True(Te, errors.Is(err, ErrIO))

	garbage := filepath.Join(dir, "garbage.bc")
	require.NoError(Te, os.WriteFile(garbage, []byte("not an index"), 0o644))
	_, err = ReadIndex(garbage)
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, ErrSchema))
	var e *Error
	require.True(Te, errors.As(err, &e))
	assert.Equal(Te, garbage, e.FileName())
	assert.Contains(Te, e.Decorate(""), "ReadIndex")
}
