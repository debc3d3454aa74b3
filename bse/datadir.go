/*
 * datadir.go, part of goato.
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
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

//Names of the files and directories in the data directory.
const (
	BasisSubdirectory = "basis_sets"
	BinaryIndexFile   = "basis_set_dict.bc"
	JSONIndexFile     = "basis_set_dict.json"
)

//DataState tells whether EnsureDataExist had to download the data.
type DataState int

const (
	Downloaded DataState = iota
	ExistsAlready
)

func (s DataState) String() string {
	if s == ExistsAlready {
		return "exists already"
	}
	return "downloaded"
}

//DataDir is the local mirror of the BSE catalog:
//
//	<root>/basis_sets/<name>.json
//	<root>/basis_set_dict.bc
//	<root>/basis_set_dict.json
type DataDir struct {
	root string
}

//NewDataDir returns a DataDir rooted at root. Nothing is created.
func NewDataDir(root string) *DataDir {
	return &DataDir{root: filepath.Clean(root)}
}

//DefaultDataDir returns the DataDir given by the environment.
func DefaultDataDir() (*DataDir, error) {
	root, err := dataRoot()
	if err != nil {
		return nil, errDecorate(err, "DefaultDataDir")
	}
	return NewDataDir(root), nil
}

//Root returns the root of the data directory.
func (d *DataDir) Root() string { return d.root }

//Path joins the root with suffix.
func (d *DataDir) Path(suffix string) string {
	return filepath.Join(d.root, suffix)
}

//BasisFile returns the path of the cached document with the given
//canonical name.
func (d *DataDir) BasisFile(canonical string) string {
	return filepath.Join(d.root, BasisSubdirectory, canonical+".json")
}

//Exists returns true if the basis set directory exists and is not empty,
//and the binary index exists.
func (d *DataDir) Exists() (bool, error) {
	entries, err := os.ReadDir(d.Path(BasisSubdirectory))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, newError(ErrIO, "can't read basis set directory", d.Path(BasisSubdirectory), "DataDir.Exists", err)
	}
	if len(entries) == 0 {
		return false, nil
	}
	_, err = os.Stat(d.Path(BinaryIndexFile))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, newError(ErrIO, "can't stat index", d.Path(BinaryIndexFile), "DataDir.Exists", err)
	}
	return true, nil
}

//Create creates the parent of the root, the root and the basis set
//directory. Existing directories are not an error.
func (d *DataDir) Create() error {
	for _, p := range []string{filepath.Dir(d.root), d.root, d.Path(BasisSubdirectory)} {
		if err := os.MkdirAll(p, 0o755); err != nil {
			return newError(ErrIO, "can't create data directory", p, "DataDir.Create", err)
		}
	}
	return nil
}

//DataPath returns the path obtained by joining the data root with suffix.
//The root is the value of ATO_DATA_PATH or, if unset, $HOME/.ato_rs/data.
func DataPath(suffix string) (string, error) {
	root, err := dataRoot()
	if err != nil {
		return "", errDecorate(err, "DataPath")
	}
	return filepath.Join(root, suffix), nil
}

//DataExists reports whether the default data directory holds a mirror.
func DataExists() (bool, error) {
	d, err := DefaultDataDir()
	if err != nil {
		return false, errDecorate(err, "DataExists")
	}
	return d.Exists()
}

//CreateDataDir creates the default data directory tree.
func CreateDataDir() error {
	d, err := DefaultDataDir()
	if err != nil {
		return errDecorate(err, "CreateDataDir")
	}
	return d.Create()
}

func dataRoot() (string, error) {
	if v, ok := os.LookupEnv(EnvDataPath); ok && v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", newError(ErrConfig, "could not resolve the home directory and "+EnvDataPath+" is not set", "", "dataRoot", err)
	}
	return filepath.Join(home, DefaultDataPath), nil
}
