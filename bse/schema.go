/*
 * schema.go, part of goato.
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
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//MetadataEntry describes one basis set in the BSE catalog
//(the values of the object returned by /api/metadata/).
type MetadataEntry struct {
	Basename      string             `json:"basename"`
	Description   string             `json:"description"`
	DisplayName   string             `json:"display_name"`
	Family        string             `json:"family"`
	FunctionTypes []string           `json:"function_types"`
	LatestVersion string             `json:"latest_version"`
	NotesExist    Flags              `json:"notes_exist"`
	OtherNames    []string           `json:"other_names"`
	Relpath       string             `json:"relpath"`
	Role          string             `json:"role"`
	Tags          []string           `json:"tags"`
	Versions      map[string]Version `json:"versions"`
}

//Version is one revision of a basis set in the catalog.
type Version struct {
	Elements    []string `json:"elements"`
	FileRelpath string   `json:"file_relpath"`
	Revdate     string   `json:"revdate"`
	Revdesc     string   `json:"revdesc"`
}

//Flags is a list of booleans that can also be decoded from a single
//JSON boolean. BSE has served notes_exist in both shapes.
type Flags []bool

func (f *Flags) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = Flags{b}
		return nil
	}
	var bs []bool
	if err := json.Unmarshal(data, &bs); err != nil {
		return err
	}
	*f = bs
	return nil
}

//Document is a basis set as served by /api/basis/<name>/format/json/.
type Document struct {
	Name                string                 `json:"name"`
	Description         string                 `json:"description"`
	RevisionDescription string                 `json:"revision_description"`
	RevisionDate        string                 `json:"revision_date"`
	Version             string                 `json:"version"`
	FunctionTypes       []string               `json:"function_types"`
	Names               []string               `json:"names"`
	Tags                []string               `json:"tags"`
	Family              string                 `json:"family"`
	Role                string                 `json:"role"`
	Elements            map[string]ElementData `json:"elements"`
}

//ElementData holds the shells of one element, keyed in the Document
//by the atomic number as a string.
type ElementData struct {
	ElectronShells []ElectronShell `json:"electron_shells"`
	References     []Reference     `json:"references"`
}

//ElectronShell is a set of contractions sharing one list of exponents.
//There is either one coefficient row per angular momentum (e.g. SP shells)
//or several rows for a single angular momentum (general contractions).
type ElectronShell struct {
	AngularMomentum []int      `json:"angular_momentum"`
	Exponents       []string   `json:"exponents"`
	Coefficients    [][]string `json:"coefficients"`
	FunctionType    string     `json:"function_type"`
	Region          string     `json:"region"`
}

type Reference struct {
	ReferenceDescription string   `json:"reference_description"`
	ReferenceKeys        []string `json:"reference_keys"`
}

//ParseMetadata decodes the catalog returned by /api/metadata/.
func ParseMetadata(data []byte) (map[string]MetadataEntry, error) {
	var m map[string]MetadataEntry
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, newError(ErrSchema, "can't decode metadata", "", "ParseMetadata", err)
	}
	return m, nil
}

//ParseDocument decodes a basis set document.
func ParseDocument(data []byte) (*Document, error) {
	d := new(Document)
	if err := json.Unmarshal(data, d); err != nil {
		return nil, newError(ErrSchema, "can't decode basis set document", "", "ParseDocument", err)
	}
	return d, nil
}

//ParseNumber parses one of the decimal strings BSE uses for exponents
//and coefficients. Fortran-style exponents (1.0D+00) are accepted.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		s = strings.NewReplacer("D", "E", "d", "e").Replace(s)
		var err2 error
		if f, err2 = strconv.ParseFloat(s, 64); err2 != nil {
			return 0, err
		}
	}
	return f, nil
}

func parseNumbers(strs []string, what string) ([]float64, error) {
	ret := make([]float64, len(strs))
	for i, s := range strs {
		f, err := ParseNumber(s)
		if err != nil {
			return nil, newError(ErrSchema, fmt.Sprintf("bad %s %d %q", what, i, s), "", "parseNumbers", err)
		}
		ret[i] = f
	}
	return ret, nil
}

//NPrimitives returns the number of primitive Gaussians in the shell.
func (s *ElectronShell) NPrimitives() int {
	return len(s.Exponents)
}

//ExponentValues returns the exponents as floats.
func (s *ElectronShell) ExponentValues() ([]float64, error) {
	if len(s.Exponents) == 0 {
		return nil, newError(ErrSchema, "shell without exponents", "", "ExponentValues", nil)
	}
	return parseNumbers(s.Exponents, "exponent")
}

//CoefficientMatrix returns a P x C matrix where P is the number of primitives
//and C the number of coefficient rows in the shell. Column j holds
//the coefficients of row j. Every row must have exactly P values.
func (s *ElectronShell) CoefficientMatrix() (*mat.Dense, error) {
	p := len(s.Exponents)
	c := len(s.Coefficients)
	if p == 0 || c == 0 {
		return nil, newError(ErrSchema, fmt.Sprintf("empty shell: %d exponents, %d coefficient rows", p, c), "", "CoefficientMatrix", nil)
	}
	m := mat.NewDense(p, c, nil)
	for j, row := range s.Coefficients {
		if len(row) != p {
			return nil, newError(ErrSchema, fmt.Sprintf("coefficient row %d has %d values, but there are %d exponents", j, len(row), p), "", "CoefficientMatrix", nil)
		}
		vals, err := parseNumbers(row, "coefficient")
		if err != nil {
			return nil, errDecorate(err, "CoefficientMatrix")
		}
		m.SetCol(j, vals)
	}
	return m, nil
}
