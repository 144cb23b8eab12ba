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
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// ExperimentConfig specifies an experiment design, typically decoded
// from a TOML configuration file.
type ExperimentConfig struct {
	// Name is the name of the experiment.
	Name string

	// DataRoot is the directory holding the experiment output.
	// It can include environment variables.
	DataRoot string

	// NamingCase is the short name of the case whose values are used
	// for output file naming. If empty, the last-declared case is
	// used.
	NamingCase string

	// FullPath indicates that DataRoot directly contains output files
	// rather than a nested per-combination hierarchy.
	FullPath bool

	// SkipValidation disables the directory layout check.
	SkipValidation bool

	// Single marks a degenerate single-run experiment. If true, Cases
	// must be empty.
	Single bool

	// Cases declares the experimental factors, in order.
	Cases []CaseConfig
}

// CaseConfig declares one experimental factor of an ExperimentConfig.
type CaseConfig struct {
	// ShortName identifies the case within the design.
	ShortName string
	// LongName is the display name; it defaults to ShortName.
	LongName string
	// Values lists the admissible values of the case, in order.
	Values []string
}

// LoadExperimentConfig decodes a TOML experiment specification from r
// and constructs the experiment it describes.
func LoadExperimentConfig(r io.Reader) (*Experiment, error) {
	cfg := new(ExperimentConfig)
	if _, err := toml.DecodeReader(r, cfg); err != nil {
		return nil, fmt.Errorf("darpy: decoding experiment configuration: %v", err)
	}
	return cfg.Experiment()
}

// Experiment constructs the experiment design described by c.
func (c *ExperimentConfig) Experiment() (*Experiment, error) {
	root := os.ExpandEnv(c.DataRoot)
	var opts []ExperimentOption
	if c.NamingCase != "" {
		opts = append(opts, WithNamingCase(c.NamingCase))
	}
	if c.FullPath {
		opts = append(opts, WithFullPath())
	}
	if c.SkipValidation {
		opts = append(opts, WithoutValidation())
	}

	if c.Single {
		if len(c.Cases) > 0 {
			return nil, fmt.Errorf("darpy: a single-case experiment configuration can't declare cases")
		}
		return SingleCase(c.Name, root, opts...)
	}

	cases := make([]Case, len(c.Cases))
	for i, cc := range c.Cases {
		long := cc.LongName
		if long == "" {
			long = cc.ShortName
		}
		ca, err := NewCase(cc.ShortName, long, cc.Values)
		if err != nil {
			return nil, err
		}
		cases[i] = ca
	}
	return NewExperiment(c.Name, cases, root, opts...)
}
