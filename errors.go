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
	"strings"
)

// InvalidCaseError reports a Case declared with no values or with a
// duplicated value.
type InvalidCaseError struct {
	ShortName string
	Reason    string
}

func (e *InvalidCaseError) Error() string {
	return fmt.Sprintf("darpy: invalid case %q: %s", e.ShortName, e.Reason)
}

// DuplicateCaseError reports two cases in one experiment design sharing
// a short name.
type DuplicateCaseError struct {
	ShortName string
}

func (e *DuplicateCaseError) Error() string {
	return fmt.Sprintf("darpy: experiment declares case %q more than once", e.ShortName)
}

// UnknownCaseError reports a lookup of a case short name that is not
// part of the experiment design.
type UnknownCaseError struct {
	ShortName string
}

func (e *UnknownCaseError) Error() string {
	return fmt.Sprintf("darpy: experiment has no case %q", e.ShortName)
}

// MissingDirectoryError reports that the declared experiment data root
// does not exist.
type MissingDirectoryError struct {
	Path string
}

func (e *MissingDirectoryError) Error() string {
	return fmt.Sprintf("darpy: the experiment data directory %s doesn't exist", e.Path)
}

// DataLayoutError reports that the experiment data directory is missing
// the subdirectory for one combination of case values.
type DataLayoutError struct {
	// Path is the first missing directory, in enumeration order.
	Path string
	// Combination holds the case values the missing directory
	// corresponds to, one per case in declaration order.
	Combination []string
}

func (e *DataLayoutError) Error() string {
	return fmt.Sprintf("darpy: experiment data layout is missing directory %s (case combination %s)",
		e.Path, strings.Join(e.Combination, ", "))
}

// InvalidInputError reports malformed input to one of the numeric grid
// routines, such as an empty coordinate array.
type InvalidInputError struct {
	Msg string
}

func (e *InvalidInputError) Error() string {
	return "darpy: " + e.Msg
}
