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

// Package darpy organizes the output of multi-factor climate model
// experiments and provides utility transforms for the gridded
// geophysical data they produce.
//
// Repeated CESM/MARC experiments are usually stored on disk in one of
// two layouts. Either every run gets a unique name and its own folder
// directly under a common root:
//
//	data/
//	    exp_a/
//	    exp_b/
//	    exp_c/
//
// or fundamentally similar runs share a name but are nested in
// hierarchical folders, one level per experimental factor that was
// varied:
//
//	data/
//	    factor_1-a/
//	        factor_2-a/
//	        factor_2-b/
//	    factor_1-b/
//	        factor_2-a/
//	        factor_2-b/
//
// An Experiment models the second layout as a full factorial design
// over a set of Cases and can check that a directory tree matches the
// design; SingleCase models the first. The grid helpers (AreaGrid,
// LatitudeWeights, DataArray) compute per-cell metadata for the
// regular latitude-longitude grids the model writes out.
package darpy

import "github.com/sirupsen/logrus"

var log = logrus.StandardLogger()
