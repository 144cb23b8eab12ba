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
	"os"
	"strconv"
	"strings"
	"time"
)

const historyTimeFormat = "Mon Jan 2 15:04:05 2006"

// AppendHistory prepends a timestamped record of the current operation
// to the history attribute of d. If callStr is empty, the command line
// of the running process is used. extraInfo, if non-empty, is appended
// to the record in parentheses.
func AppendHistory(d *DataArray, callStr, extraInfo string) {
	if callStr == "" {
		callStr = strings.Join(os.Args, " ")
	}
	if extraInfo != "" {
		callStr += fmt.Sprintf(" (%s)", extraInfo)
	}
	d.Attrs["history"] = time.Now().Format(historyTimeFormat) + ": " + callStr + "\n" +
		d.Attrs["history"]
}

// Timestamp returns the current timestamp in machine local time.
// withTime and withDate choose whether the time and date components,
// respectively, are included.
func Timestamp(withTime, withDate bool) (string, error) {
	const (
		timeFormat = "15:04:05"
		dateFormat = "01-02-2006"
	)
	var fmts []string
	if withTime {
		fmts = append(fmts, timeFormat)
	}
	if withDate {
		fmts = append(fmts, dateFormat)
	}
	if len(fmts) == 0 {
		return "", fmt.Errorf("darpy: timestamp needs at least one of the time or date components")
	}
	return time.Now().Format(strings.Join(fmts, " ")), nil
}

// NormalizeLon converts a longitude on the [0, 360] convention with 180
// as the prime meridian to the symmetric [-180, 180] basis.
func NormalizeLon(lon float64) float64 {
	if 180 < lon && lon <= 360 {
		return lon - 360
	}
	return lon
}

// ParseLatLon converts a coordinate string such as "40N", "25.5S",
// "130E" or "105W" to a numerical value, with latitudes in [-90, 90]
// and longitudes in [0, 360]. Strings without a hemisphere suffix are
// parsed as plain numbers.
func ParseLatLon(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("darpy: can't parse an empty coordinate string")
	}
	num := s[:len(s)-1]
	switch s[len(s)-1] {
	case 'N':
		return parseCoord(s, num, 1, 0)
	case 'S':
		return parseCoord(s, num, -1, 0)
	case 'E':
		return parseCoord(s, num, 1, 0)
	case 'W':
		return parseCoord(s, num, -1, 360)
	default:
		return parseCoord(s, s, 1, 0)
	}
}

func parseCoord(orig, num string, sign, offset float64) (float64, error) {
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("darpy: parsing coordinate %q: %v", orig, err)
	}
	return offset + sign*v, nil
}
