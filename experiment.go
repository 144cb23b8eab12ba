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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// A Case is one categorical factor of an experiment design: an
// identifier, a display name, and the ordered list of admissible
// values the factor can take. Cases are immutable after construction.
type Case struct {
	shortName string
	longName  string
	values    []string
}

// NewCase creates an experimental factor with the given identifying
// names and admissible values. values must be non-empty and must not
// contain duplicates.
func NewCase(shortName, longName string, values []string) (Case, error) {
	if len(values) == 0 {
		return Case{}, &InvalidCaseError{ShortName: shortName, Reason: "no values declared"}
	}
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			return Case{}, &InvalidCaseError{ShortName: shortName,
				Reason: fmt.Sprintf("value %q declared more than once", v)}
		}
		seen[v] = struct{}{}
	}
	return Case{
		shortName: shortName,
		longName:  longName,
		values:    append([]string(nil), values...),
	}, nil
}

// ShortName returns the case's unique identifier within its design.
func (c Case) ShortName() string { return c.shortName }

// LongName returns the case's display name.
func (c Case) LongName() string { return c.longName }

// Values returns a copy of the case's admissible values in declaration
// order.
func (c Case) Values() []string {
	return append([]string(nil), c.values...)
}

// An Experiment describes a full factorial experiment design: an
// ordered set of Cases whose Cartesian product enumerates every run,
// and the root directory holding the per-run output hierarchy.
// Experiments are read-only after construction, so one instance can be
// shared among concurrent readers.
type Experiment struct {
	name       string
	cases      []Case
	caseValues map[string][]string
	dataRoot   string
	namingCase string
	fullPath   bool
	single     bool
}

type experimentConfig struct {
	namingCase string
	fullPath   bool
	validate   bool
}

// An ExperimentOption adjusts the configuration of an Experiment being
// created by NewExperiment or SingleCase.
type ExperimentOption func(*experimentConfig)

// WithNamingCase selects the case whose values name the output files of
// each run. By default the last-declared case is used.
func WithNamingCase(shortName string) ExperimentOption {
	return func(c *experimentConfig) { c.namingCase = shortName }
}

// WithFullPath declares that the data root directly contains output
// files rather than a nested per-combination hierarchy; the directory
// layout check is skipped.
func WithFullPath() ExperimentOption {
	return func(c *experimentConfig) { c.fullPath = true }
}

// WithoutValidation skips the directory layout check at construction.
func WithoutValidation() ExperimentOption {
	return func(c *experimentConfig) { c.validate = false }
}

// NewExperiment creates a full factorial experiment design from the
// given cases, in declaration order, rooted at the directory dataRoot.
// Unless disabled through options, the directory hierarchy below
// dataRoot is checked against the design: every combination of case
// values must exist as a directory dataRoot/v1/v2/.../vn.
func NewExperiment(name string, cases []Case, dataRoot string, opts ...ExperimentOption) (*Experiment, error) {
	cfg := experimentConfig{validate: true}
	for _, o := range opts {
		o(&cfg)
	}

	e := &Experiment{
		name:       name,
		dataRoot:   dataRoot,
		fullPath:   cfg.fullPath,
		caseValues: make(map[string][]string, len(cases)),
	}
	for _, c := range cases {
		if len(c.values) == 0 {
			return nil, &InvalidCaseError{ShortName: c.shortName, Reason: "no values declared"}
		}
		if _, ok := e.caseValues[c.shortName]; ok {
			return nil, &DuplicateCaseError{ShortName: c.shortName}
		}
		e.caseValues[c.shortName] = c.values
		e.cases = append(e.cases, c)
	}

	if len(e.cases) > 0 {
		e.namingCase = e.cases[len(e.cases)-1].shortName
	}
	if cfg.namingCase != "" {
		if _, ok := e.caseValues[cfg.namingCase]; !ok {
			return nil, &UnknownCaseError{ShortName: cfg.namingCase}
		}
		e.namingCase = cfg.namingCase
	}

	if fi, err := os.Stat(dataRoot); err != nil || !fi.IsDir() {
		return nil, &MissingDirectoryError{Path: dataRoot}
	}

	if cfg.validate && !e.fullPath {
		if err := e.validateLayout(); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// SingleCase creates a degenerate experiment design holding a single
// run: one synthetic case whose only value is the experiment name.
// There is no sub-hierarchy below the data root, so the directory
// layout check is always skipped and CasePath always resolves to the
// data root itself.
func SingleCase(name, dataRoot string, opts ...ExperimentOption) (*Experiment, error) {
	c, err := NewCase(name, name, []string{name})
	if err != nil {
		return nil, err
	}
	e, err := NewExperiment(name, []Case{c}, dataRoot, append(opts, WithoutValidation())...)
	if err != nil {
		return nil, err
	}
	e.single = true
	return e, nil
}

// Name returns the name of the experiment.
func (e *Experiment) Name() string { return e.name }

// DataRoot returns the root directory of the experiment data.
func (e *Experiment) DataRoot() string { return e.dataRoot }

// NamingCase returns the short name of the case whose values are used
// for output file naming.
func (e *Experiment) NamingCase() string { return e.namingCase }

// CaseNames returns the short names of the experiment's cases in
// declaration order.
func (e *Experiment) CaseNames() []string {
	names := make([]string, len(e.cases))
	for i, c := range e.cases {
		names[i] = c.shortName
	}
	return names
}

// NextCase is a type of function that returns the next case in an
// experiment design. If there are no more cases, it returns the io.EOF
// error.
type NextCase func() (Case, error)

// IterCases returns an iterator over the experiment's cases in
// declaration order. Each call to IterCases starts a fresh enumeration.
func (e *Experiment) IterCases() NextCase {
	i := 0
	return func() (Case, error) {
		if i >= len(e.cases) {
			return Case{}, io.EOF
		}
		c := e.cases[i]
		i++
		return c, nil
	}
}

// AllCaseValues returns the values list of every case, in declaration
// order.
func (e *Experiment) AllCaseValues() [][]string {
	all := make([][]string, len(e.cases))
	for i, c := range e.cases {
		all[i] = c.Values()
	}
	return all
}

// CaseValues returns the admissible values of the case with the given
// short name.
func (e *Experiment) CaseValues(shortName string) ([]string, error) {
	vals, ok := e.caseValues[shortName]
	if !ok {
		return nil, &UnknownCaseError{ShortName: shortName}
	}
	return append([]string(nil), vals...), nil
}

// NextCombination is a type of function that returns the next
// combination of case values in a full factorial enumeration. If there
// are no more combinations, it returns the io.EOF error.
type NextCombination func() ([]string, error)

// Combinations returns an iterator over the Cartesian product of all
// case values: each combination holds one value per case in declaration
// order, and the values of the last-declared case cycle fastest. Each
// call to Combinations starts a fresh enumeration.
func (e *Experiment) Combinations() NextCombination {
	values := make([][]string, len(e.cases))
	for i, c := range e.cases {
		values[i] = c.values
	}
	idx := make([]int, len(values))
	done := false
	return func() ([]string, error) {
		if done {
			return nil, io.EOF
		}
		combo := make([]string, len(values))
		for i, vals := range values {
			combo[i] = vals[idx[i]]
		}
		// Advance the odometer; the last case turns over first.
		i := len(idx) - 1
		for {
			if i < 0 {
				done = true
				break
			}
			idx[i]++
			if idx[i] < len(values[i]) {
				break
			}
			idx[i] = 0
			i--
		}
		return combo, nil
	}
}

// CasePath joins the data root with the given path components, one per
// case in declaration order. It does not check that the result exists.
// For a SingleCase experiment the data root itself is returned
// regardless of the arguments.
func (e *Experiment) CasePath(valueBits ...string) string {
	if e.single {
		return e.dataRoot
	}
	return filepath.Join(append([]string{e.dataRoot}, valueBits...)...)
}

// Describe returns a human-readable multi-line summary of the
// experiment design.
func (e *Experiment) Describe() string {
	var b strings.Builder
	fmt.Fprintln(&b, e.name)
	for _, c := range e.cases {
		fmt.Fprintf(&b, "    %s: [%s]\n", c.longName, strings.Join(c.values, ", "))
	}
	return b.String()
}

// validateLayout walks the Cartesian product of the case values and
// checks that a directory exists for every combination, stopping at the
// first one that is missing.
func (e *Experiment) validateLayout() error {
	n := 0
	next := e.Combinations()
	for {
		combo, err := next()
		if err == io.EOF {
			break
		}
		p := e.CasePath(combo...)
		if fi, err := os.Stat(p); err != nil || !fi.IsDir() {
			return &DataLayoutError{Path: p, Combination: combo}
		}
		n++
	}
	log.WithFields(logrus.Fields{
		"experiment":   e.name,
		"combinations": n,
	}).Debug("darpy: validated experiment data layout")
	return nil
}
