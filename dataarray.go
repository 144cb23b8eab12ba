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

	"github.com/ctessum/sparse"
)

// A DataArray pairs a dense numeric array with named dimensions, the
// coordinate values along each dimension, and free-form attributes.
type DataArray struct {
	// Name is the variable name.
	Name string
	// Data holds the numeric values.
	Data *sparse.DenseArray
	// Dims holds one dimension name per array axis, in axis order.
	Dims []string
	// Coords maps each dimension name to its coordinate values.
	Coords map[string][]float64
	// Attrs holds variable metadata such as "units" and "long_name".
	Attrs map[string]string
}

// NewDataArray creates a labeled array from data and coordinate
// metadata. The dimension order is taken from dims: it must name one
// dimension per array axis, and coords must hold coordinate values of
// the matching length for each of them.
func NewDataArray(name string, data *sparse.DenseArray, dims []string, coords map[string][]float64, attrs map[string]string) (*DataArray, error) {
	if data == nil {
		return nil, &InvalidInputError{Msg: "nil data array"}
	}
	if len(dims) != len(data.Shape) {
		return nil, &InvalidInputError{Msg: fmt.Sprintf(
			"%d dimension names given for a %d-dimensional array", len(dims), len(data.Shape))}
	}
	for i, dim := range dims {
		cv, ok := coords[dim]
		if !ok {
			return nil, &InvalidInputError{Msg: "no coordinate values for dimension " + dim}
		}
		if len(cv) != data.Shape[i] {
			return nil, &InvalidInputError{Msg: fmt.Sprintf(
				"dimension %s has %d coordinate values but axis length %d",
				dim, len(cv), data.Shape[i])}
		}
	}
	if attrs == nil {
		attrs = make(map[string]string)
	}
	return &DataArray{
		Name:   name,
		Data:   data,
		Dims:   append([]string(nil), dims...),
		Coords: coords,
		Attrs:  attrs,
	}, nil
}

// axis returns the axis index of the named dimension.
func (d *DataArray) axis(dim string) (int, error) {
	for i, dd := range d.Dims {
		if dd == dim {
			return i, nil
		}
	}
	return -1, &InvalidInputError{Msg: "array has no dimension named " + dim}
}

// AddCyclicPoint returns a copy of d with the first sample along the
// given periodic dimension duplicated at the end, closing the
// wraparound for visualization and interpolation. The coordinate of the
// added point continues the spacing of the first two samples, so a
// longitude axis 0, 120, 240 becomes 0, 120, 240, 360. Attributes are
// preserved; d itself is not modified.
func (d *DataArray) AddCyclicPoint(dim string) (*DataArray, error) {
	ax, err := d.axis(dim)
	if err != nil {
		return nil, err
	}
	coord := d.Coords[dim]
	if len(coord) < 2 {
		return nil, &InvalidInputError{Msg: fmt.Sprintf(
			"dimension %s has %d coordinate values; need at least 2 to add a cyclic point",
			dim, len(coord))}
	}

	n := d.Data.Shape[ax]
	shape := append([]int(nil), d.Data.Shape...)
	shape[ax] = n + 1
	out := sparse.ZerosDense(shape...)

	outer, inner := 1, 1
	for _, s := range d.Data.Shape[:ax] {
		outer *= s
	}
	for _, s := range d.Data.Shape[ax+1:] {
		inner *= s
	}
	for o := 0; o < outer; o++ {
		src := o * n * inner
		dst := o * (n + 1) * inner
		copy(out.Elements[dst:dst+n*inner], d.Data.Elements[src:src+n*inner])
		copy(out.Elements[dst+n*inner:dst+(n+1)*inner], d.Data.Elements[src:src+inner])
	}

	newCoord := make([]float64, n+1)
	copy(newCoord, coord)
	newCoord[n] = coord[n-1] + (coord[1] - coord[0])

	coords := make(map[string][]float64, len(d.Coords))
	for k, v := range d.Coords {
		coords[k] = v
	}
	coords[dim] = newCoord

	cyclic := &DataArray{
		Name:   d.Name,
		Data:   out,
		Dims:   append([]string(nil), d.Dims...),
		Coords: coords,
		Attrs:  make(map[string]string, len(d.Attrs)),
	}
	CopyAttrs(d, cyclic)
	return cyclic, nil
}

// ShiftLons renormalizes the coordinate values of the given dimension
// from the [0, 360] longitude convention to [-180, 180].
func (d *DataArray) ShiftLons(dim string) error {
	coord, ok := d.Coords[dim]
	if !ok {
		return &InvalidInputError{Msg: "array has no dimension named " + dim}
	}
	for i, l := range coord {
		if l > 180 {
			coord[i] = l - 360
		}
	}
	return nil
}

// CopyAttrs copies the attributes of src onto dst, overwriting
// attributes dst already has with the same names. It is useful for
// carrying metadata across operations that derive one array from
// another.
func CopyAttrs(src, dst *DataArray) {
	if dst.Attrs == nil {
		dst.Attrs = make(map[string]string, len(src.Attrs))
	}
	for k, v := range src.Attrs {
		dst.Attrs[k] = v
	}
}
