/*
Copyright © 2019 the darpy authors.
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
	"reflect"
	"strings"
	"testing"
)

func TestLoadExperimentConfig(t *testing.T) {
	root := testLayout(t)
	t.Setenv("DARPY_TEST_ROOT", root)

	config := `
Name = "aerosol_activation"
DataRoot = "$DARPY_TEST_ROOT"
NamingCase = "aer"

[[Cases]]
ShortName = "aer"
LongName = "aerosol emissions scenario"
Values = ["F2000", "F1850"]

[[Cases]]
ShortName = "act"
LongName = "activation scheme"
Values = ["comp", "min_smax"]
`
	e, err := LoadExperimentConfig(strings.NewReader(config))
	if err != nil {
		t.Fatal(err)
	}
	if got := e.Name(); got != "aerosol_activation" {
		t.Errorf("name: want aerosol_activation, got %s", got)
	}
	if got := e.DataRoot(); got != root {
		t.Errorf("data root: want %s, got %s", root, got)
	}
	if want := []string{"aer", "act"}; !reflect.DeepEqual(e.CaseNames(), want) {
		t.Errorf("case names: want %v, got %v", want, e.CaseNames())
	}
	if got := e.NamingCase(); got != "aer" {
		t.Errorf("naming case: want aer, got %s", got)
	}
}

func TestLoadExperimentConfigErrors(t *testing.T) {
	root := testLayout(t)

	// The data layout is validated unless the configuration disables
	// it; "unified" directories don't exist under the test root.
	config := fmt.Sprintf(`
Name = "bad_layout"
DataRoot = %q

[[Cases]]
ShortName = "aer"
Values = ["unified"]
`, root)
	if _, err := LoadExperimentConfig(strings.NewReader(config)); err == nil {
		t.Error("expected a data layout error")
	} else if _, ok := err.(*DataLayoutError); !ok {
		t.Errorf("want *DataLayoutError, got %T (%v)", err, err)
	}

	config = fmt.Sprintf(`
Name = "no_values"
DataRoot = %q
SkipValidation = true

[[Cases]]
ShortName = "aer"
`, root)
	if _, err := LoadExperimentConfig(strings.NewReader(config)); err == nil {
		t.Error("expected an invalid case error")
	} else if _, ok := err.(*InvalidCaseError); !ok {
		t.Errorf("want *InvalidCaseError, got %T (%v)", err, err)
	}

	if _, err := LoadExperimentConfig(strings.NewReader("Name = [")); err == nil {
		t.Error("expected a TOML decoding error")
	}
}

func TestSingleCaseConfig(t *testing.T) {
	root := testLayout(t)

	config := fmt.Sprintf(`
Name = "run1"
DataRoot = %q
Single = true
`, root)
	e, err := LoadExperimentConfig(strings.NewReader(config))
	if err != nil {
		t.Fatal(err)
	}
	if got := e.CasePath("anything"); got != root {
		t.Errorf("single-case path: want %s, got %s", root, got)
	}

	config = fmt.Sprintf(`
Name = "run1"
DataRoot = %q
Single = true

[[Cases]]
ShortName = "aer"
Values = ["F2000"]
`, root)
	if _, err := LoadExperimentConfig(strings.NewReader(config)); err == nil {
		t.Error("expected an error for a single-case configuration with cases")
	}
}
