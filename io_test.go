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
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ctessum/sparse"
)

func TestSaveLoadVariable(t *testing.T) {
	const tolerance = 1.e-3 // m²

	lon := []float64{0, 120, 240}
	lat := []float64{-45, 0, 45}
	area, err := AreaGrid(lon, lat)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "area.nc")
	w, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := SaveVariables(w, area); err != nil {
		t.Fatal(err)
	}
	w.Close()

	got, err := NCFLoader{}.Load("area", path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got.Dims, area.Dims) {
		t.Errorf("dims: want %v, got %v", area.Dims, got.Dims)
	}
	if !reflect.DeepEqual(got.Data.Shape, area.Data.Shape) {
		t.Fatalf("shape: want %v, got %v", area.Data.Shape, got.Data.Shape)
	}
	if !reflect.DeepEqual(got.Coords["lat"], lat) {
		t.Errorf("latitudes: want %v, got %v", lat, got.Coords["lat"])
	}
	if !reflect.DeepEqual(got.Coords["lon"], lon) {
		t.Errorf("longitudes: want %v, got %v", lon, got.Coords["lon"])
	}
	for i, v := range got.Data.Elements {
		if math.Abs(v-area.Data.Elements[i]) > tolerance {
			t.Errorf("element %d: want %g, got %g", i, area.Data.Elements[i], v)
		}
	}
	if got.Attrs["units"] != "m^2" {
		t.Errorf("units: want m^2, got %q", got.Attrs["units"])
	}

	if _, err := (NCFLoader{}).Load("nonexistent", path); err == nil {
		t.Error("expected an error for a missing variable")
	}
}

// fakeLoader records the paths it is asked to load and returns an
// empty one-sample array for each.
type fakeLoader struct {
	paths []string
}

func (l *fakeLoader) Load(variable, path string) (*DataArray, error) {
	l.paths = append(l.paths, path)
	return NewDataArray(variable, sparse.ZerosDense(1), []string{"time"},
		map[string][]float64{"time": {0}}, nil)
}

func TestExperimentLoadVariable(t *testing.T) {
	root := testLayout(t)
	e, err := NewExperiment("aerosol_activation", testCases(t), root)
	if err != nil {
		t.Fatal(err)
	}

	loader := new(fakeLoader)
	data, err := e.LoadVariable(loader, "TS", "TS.%s.nc")
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 4 {
		t.Fatalf("want 4 loaded combinations, got %d", len(data))
	}

	// The naming case defaults to "act", so the file name carries the
	// activation scheme value.
	wantPaths := []string{
		filepath.Join(root, "F2000", "comp", "TS.comp.nc"),
		filepath.Join(root, "F2000", "min_smax", "TS.min_smax.nc"),
		filepath.Join(root, "F1850", "comp", "TS.comp.nc"),
		filepath.Join(root, "F1850", "min_smax", "TS.min_smax.nc"),
	}
	if !reflect.DeepEqual(loader.paths, wantPaths) {
		t.Errorf("paths: want %v, got %v", wantPaths, loader.paths)
	}
	if want := []string{"F2000", "min_smax"}; !reflect.DeepEqual(data[1].Combination, want) {
		t.Errorf("combination: want %v, got %v", want, data[1].Combination)
	}
}
