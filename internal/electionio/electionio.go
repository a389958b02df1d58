// Package electionio decodes an election's projects, ballots, and budget
// from JSON, shared by the CLI and the HTTP server so both accept the same
// input shape and build identical ballot.Instance/ballot.Profile values.
package electionio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pbvote/cstv/ballot"
	"github.com/pbvote/cstv/numeric"
)

// ProjectSpec is one project's on-the-wire shape.
type ProjectSpec struct {
	Name string  `json:"name" binding:"required"`
	Cost float64 `json:"cost" binding:"required"`
}

// BallotSpec is one donor's on-the-wire shape.
type BallotSpec struct {
	Values       map[string]float64 `json:"values"`
	Multiplicity int                 `json:"multiplicity"`
}

// Spec is a full election request: the budget, the project catalog, the
// donor ballots, and which combination to run.
type Spec struct {
	Budget      float64      `json:"budget"`
	Projects    []ProjectSpec `json:"projects" binding:"required"`
	Ballots     []BallotSpec  `json:"ballots" binding:"required"`
	Combination string        `json:"combination" binding:"required"`
}

// LoadFile reads and decodes a Spec from a JSON file.
func LoadFile(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("electionio: read %s: %w", path, err)
	}
	var spec Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return Spec{}, fmt.Errorf("electionio: parse %s: %w", path, err)
	}
	return spec, nil
}

// Build converts the spec into an Instance and Profile, under ModeFloat
// numeric literals (the wire format carries float64 values; the process's
// Mode setting still governs how the driver's own arithmetic behaves).
func (s Spec) Build() (*ballot.Instance, ballot.Profile, error) {
	projects := make([]ballot.Project, 0, len(s.Projects))
	for _, p := range s.Projects {
		proj, err := ballot.NewProject(p.Name, numeric.NewFloat(p.Cost))
		if err != nil {
			return nil, nil, err
		}
		projects = append(projects, proj)
	}

	instance, err := ballot.NewInstance(projects, numeric.NewFloat(s.Budget))
	if err != nil {
		return nil, nil, err
	}

	profile := make(ballot.Profile, 0, len(s.Ballots))
	for _, b := range s.Ballots {
		values := make(map[string]numeric.Number, len(b.Values))
		for name, v := range b.Values {
			values[name] = numeric.NewFloat(v)
		}
		profile = append(profile, ballot.Ballot{Values: values, Multiplicity: b.Multiplicity})
	}

	return instance, profile, nil
}
