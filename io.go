/*
Copyright © 2018 the darpy authors.
This file is part of darpy.

darpy is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

darpy is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with darpy.  If not, see <http://www.gnu.org/licenses/>.
*/

package darpy

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
	"github.com/sirupsen/logrus"
)

// A VarLoader loads one named variable from the file at the given path.
type VarLoader interface {
	Load(variable, path string) (*DataArray, error)
}

// varAttrs lists the variable attributes carried over when reading a
// NetCDF variable.
var varAttrs = []string{"long_name", "units", "history"}

// NCFLoader loads variables from NetCDF files.
type NCFLoader struct{}

// Load reads the named variable from the NetCDF file at path, together
// with its attributes and the coordinate variables of its dimensions.
// Dimensions without a coordinate variable in the file get sample
// indices as coordinate values.
func (NCFLoader) Load(variable, path string) (*DataArray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("darpy: loading variable %s: %v", variable, err)
	}
	defer f.Close()
	ff, err := cdf.Open(f)
	if err != nil {
		return nil, fmt.Errorf("darpy: loading variable %s from %s: %v", variable, path, err)
	}

	data, err := readNCF(ff, variable)
	if err != nil {
		return nil, err
	}

	dims := ff.Header.Dimensions(variable)
	coords := make(map[string][]float64, len(dims))
	for i, dim := range dims {
		if cv, err := readNCF(ff, dim); err == nil &&
			len(cv.Shape) == 1 && cv.Shape[0] == data.Shape[i] {
			coords[dim] = cv.Elements
			continue
		}
		idx := make([]float64, data.Shape[i])
		for j := range idx {
			idx[j] = float64(j)
		}
		coords[dim] = idx
	}

	attrs := make(map[string]string)
	for _, a := range varAttrs {
		if v := ff.Header.GetAttribute(variable, a); v != nil {
			if s, ok := v.(string); ok {
				attrs[a] = s
			}
		}
	}
	return NewDataArray(variable, data, dims, coords, attrs)
}

// readNCF reads the named variable out of netcdf file ff in its
// entirety.
func readNCF(ff *cdf.File, variable string) (*sparse.DenseArray, error) {
	dims := ff.Header.Lengths(variable)
	if len(dims) == 0 {
		return nil, fmt.Errorf("darpy: read netcdf: variable %s not in file", variable)
	}
	nread := 1
	for _, dim := range dims {
		nread *= dim
	}
	r := ff.Reader(variable, nil, nil)
	buf := r.Zero(nread)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("darpy: read netcdf variable %s: %v", variable, err)
	}
	data := sparse.ZerosDense(dims...)
	switch b := buf.(type) {
	case []float32:
		for i, v := range b {
			data.Elements[i] = float64(v)
		}
	case []float64:
		copy(data.Elements, b)
	case []int32:
		for i, v := range b {
			data.Elements[i] = float64(v)
		}
	default:
		return nil, fmt.Errorf("darpy: read netcdf variable %s: unsupported type %T", variable, buf)
	}
	return data, nil
}

// SaveVariables writes the given arrays to w as a NetCDF file,
// including one coordinate variable per dimension. Arrays that share a
// dimension name must agree on its coordinate values.
func SaveVariables(w *os.File, arrays ...*DataArray) error {
	var dimNames []string
	dimLens := make(map[string]int)
	dimCoords := make(map[string][]float64)
	for _, d := range arrays {
		for i, dim := range d.Dims {
			if n, ok := dimLens[dim]; ok {
				if n != d.Data.Shape[i] {
					return fmt.Errorf("darpy: save netcdf: dimension %s has conflicting lengths %d and %d",
						dim, n, d.Data.Shape[i])
				}
				continue
			}
			dimNames = append(dimNames, dim)
			dimLens[dim] = d.Data.Shape[i]
			dimCoords[dim] = d.Coords[dim]
		}
	}
	lens := make([]int, len(dimNames))
	for i, dim := range dimNames {
		lens[i] = dimLens[dim]
	}

	h := cdf.NewHeader(dimNames, lens)
	for _, dim := range dimNames {
		h.AddVariable(dim, []string{dim}, []float64{0})
	}
	for _, d := range arrays {
		h.AddVariable(d.Name, d.Dims, []float64{0})
		// Sort the attribute names so they write in the same order
		// every time.
		attrs := make([]string, 0, len(d.Attrs))
		for a := range d.Attrs {
			attrs = append(attrs, a)
		}
		sort.Strings(attrs)
		for _, a := range attrs {
			h.AddAttribute(d.Name, a, d.Attrs[a])
		}
	}
	h.Define()

	f, err := cdf.Create(w, h)
	if err != nil {
		return fmt.Errorf("darpy: save netcdf: %v", err)
	}
	for _, dim := range dimNames {
		if err := writeNCF(f, dim, dimCoords[dim]); err != nil {
			return fmt.Errorf("darpy: writing coordinate %s to netcdf file: %v", dim, err)
		}
	}
	for _, d := range arrays {
		if err := writeNCF(f, d.Name, d.Data.Elements); err != nil {
			return fmt.Errorf("darpy: writing variable %s to netcdf file: %v", d.Name, err)
		}
	}
	if err := cdf.UpdateNumRecs(w); err != nil {
		return fmt.Errorf("darpy: save netcdf: %v", err)
	}
	return nil
}

func writeNCF(f *cdf.File, variable string, els []float64) error {
	end := f.Header.Lengths(variable)
	start := make([]int, len(end))
	n := 1
	for _, v := range end {
		n *= v
	}
	if len(els) != n {
		return fmt.Errorf("dims are %d but array length is %d", n, len(els))
	}
	_, err := f.Writer(variable, start, end).Write(els)
	return err
}

// CaseData pairs one combination of experiment case values with the
// data loaded for it.
type CaseData struct {
	Combination []string
	Data        *DataArray
}

// LoadVariable loads the named variable for every combination of case
// values in the experiment, in enumeration order. fileName is the name
// of the file to read within each combination's directory; a single %s
// verb in it is replaced by the combination's naming-case value.
func (e *Experiment) LoadVariable(loader VarLoader, variable, fileName string) ([]CaseData, error) {
	nameIdx := -1
	for i, c := range e.cases {
		if c.shortName == e.namingCase {
			nameIdx = i
		}
	}
	var out []CaseData
	next := e.Combinations()
	for {
		combo, err := next()
		if err == io.EOF {
			break
		}
		fn := fileName
		if nameIdx >= 0 && strings.Contains(fileName, "%s") {
			fn = fmt.Sprintf(fileName, combo[nameIdx])
		}
		p := filepath.Join(e.CasePath(combo...), fn)
		log.WithFields(logrus.Fields{
			"experiment": e.name,
			"variable":   variable,
			"path":       p,
		}).Debug("darpy: loading variable")
		d, err := loader.Load(variable, p)
		if err != nil {
			return nil, fmt.Errorf("darpy: loading %s for combination (%s): %v",
				variable, strings.Join(combo, ", "), err)
		}
		out = append(out, CaseData{Combination: combo, Data: d})
	}
	return out, nil
}
