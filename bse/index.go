/*
 * index.go, part of goato.
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
	"bytes"
	"encoding/gob"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Index maps lowercased basis set names to the canonical names
//BSE uses as keys (and as file names in the data directory).
type Index map[string]string

//NewIndex builds the Index from the catalog, using the lowercased basename
//of each entry.
func NewIndex(catalog map[string]MetadataEntry) Index {
	idx := make(Index, len(catalog))
	for k, v := range catalog {
		idx[strings.ToLower(v.Basename)] = k
	}
	return idx
}

//Lookup returns the canonical name for name. The search is case-insensitive.
func (idx Index) Lookup(name string) (string, bool) {
	c, ok := idx[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

//Canonical returns the distinct canonical names, sorted.
func (idx Index) Canonical() []string {
	seen := make(map[string]bool, len(idx))
	ret := make([]string, 0, len(idx))
	for _, v := range idx {
		if !seen[v] {
			seen[v] = true
			ret = append(ret, v)
		}
	}
	sort.Strings(ret)
	return ret
}

//EncodeIndex serializes the index as a zstd-compressed gob stream.
func EncodeIndex(idx Index) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, newError(ErrIO, "can't create zstd writer", "", "EncodeIndex", err)
	}
	if err := gob.NewEncoder(zw).Encode(map[string]string(idx)); err != nil {
		zw.Close()
		return nil, newError(ErrIO, "can't encode index", "", "EncodeIndex", err)
	}
	if err := zw.Close(); err != nil {
		return nil, newError(ErrIO, "can't compress index", "", "EncodeIndex", err)
	}
	return buf.Bytes(), nil
}

//DecodeIndex is the inverse of EncodeIndex.
func DecodeIndex(data []byte) (Index, error) {
	zr, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, newError(ErrSchema, "can't create zstd reader", "", "DecodeIndex", err)
	}
	defer zr.Close()
	var m map[string]string
	if err := gob.NewDecoder(zr).Decode(&m); err != nil {
		return nil, newError(ErrSchema, "can't decode index", "", "DecodeIndex", err)
	}
	return Index(m), nil
}

//WriteIndex writes the binary index to path.
func WriteIndex(path string, idx Index) error {
	data, err := EncodeIndex(idx)
	if err != nil {
		return errDecorate(err, "WriteIndex")
	}
	if err := writeFileAtomic(path, data); err != nil {
		return newError(ErrIO, "can't write index", path, "WriteIndex", err)
	}
	return nil
}

//WriteIndexJSON writes the index as indented JSON. It is only meant for humans.
func WriteIndexJSON(path string, idx Index) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return newError(ErrIO, "can't encode index", path, "WriteIndexJSON", err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return newError(ErrIO, "can't write index", path, "WriteIndexJSON", err)
	}
	return nil
}

//ReadIndex reads a binary index written by WriteIndex.
func ReadIndex(path string) (Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newError(ErrIO, "unable to read index", path, "ReadIndex", err)
	}
	idx, err := DecodeIndex(data)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.filename = path
		}
		return nil, errDecorate(err, "ReadIndex")
	}
	return idx, nil
}

//writeFileAtomic writes data to a temporary file in the same directory
//and renames it to path, so readers see either the old file or the whole new one.
func writeFileAtomic(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
