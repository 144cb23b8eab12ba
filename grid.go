/*
Copyright © 2017 the darpy authors.
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
	"math"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
)

// rEarth is the Earth's radius [m].
const rEarth = 6375000.

// AreaGridValues computes the area [m²] of each cell of the regular
// grid specified by the 1-D coordinate arrays lon and lat [degrees].
// The result has shape (len(lat), len(lon)).
//
// The cell width is taken to be the mean spacing between consecutive
// longitude samples regardless of longitude position, so the area in
// each latitude band is constant; this is exact for regular grids and
// an approximation for irregular ones. Latitude bands touching the
// poles are treated as spherical caps.
func AreaGridValues(lon, lat []float64) (*sparse.DenseArray, error) {
	if len(lon) < 2 || len(lat) < 2 {
		return nil, &InvalidInputError{Msg: fmt.Sprintf(
			"area grid needs at least 2 longitude and 2 latitude values; got %d and %d",
			len(lon), len(lat))}
	}

	dlon := meanSpacing(lon) * math.Pi / 180
	dlat := meanSpacing(lat) * math.Pi / 180

	areas := sparse.ZerosDense(len(lat), len(lon))
	for j, l := range lat {
		// Colatitude: angular distance from the north pole.
		thetaDeg := 90 - l
		theta := thetaDeg * math.Pi / 180
		var a float64
		if thetaDeg == 0 || thetaDeg == 180 {
			// Spherical cap at the pole.
			a = rEarth * rEarth * math.Abs(math.Cos(dlat/2)-math.Cos(0)) * dlon
		} else {
			a = rEarth * rEarth * math.Abs(math.Cos(theta-dlat/2)-math.Cos(theta+dlat/2)) * dlon
		}
		for i := range lon {
			areas.Set(a, j, i)
		}
	}
	return areas, nil
}

// AreaGrid computes the area of each cell of the regular grid specified
// by the 1-D coordinate arrays lon and lat [degrees], returning it as a
// labeled array with dimensions (lat, lon) and areas in m².
func AreaGrid(lon, lat []float64) (*DataArray, error) {
	areas, err := AreaGridValues(lon, lat)
	if err != nil {
		return nil, err
	}
	return NewDataArray("area", areas, []string{"lat", "lon"},
		map[string][]float64{"lat": lat, "lon": lon},
		map[string]string{"long_name": "grid cell area", "units": "m^2"})
}

// LatitudeWeights computes the Gauss weights for area-weighted averages
// of output on a regular grid with the given latitudes [degrees]. They
// can be applied over the latitude axis of any output, as the "gw"
// field from the model history tapes would be. The weights are
// normalized to sum to 2.
func LatitudeWeights(lats []float64) ([]float64, error) {
	areas, err := AreaGridValues([]float64{0, 360}, lats)
	if err != nil {
		return nil, err
	}
	weights := make([]float64, len(lats))
	for j := range lats {
		for i := 0; i < areas.Shape[1]; i++ {
			weights[j] += areas.Get(j, i)
		}
	}
	floats.Scale(2/floats.Sum(weights), weights)
	return weights, nil
}

// meanSpacing returns the mean distance between consecutive samples
// of x. len(x) must be at least 2.
func meanSpacing(x []float64) float64 {
	sum := 0.
	for i := 1; i < len(x); i++ {
		sum += x[i] - x[i-1]
	}
	return math.Abs(sum / float64(len(x)-1))
}
