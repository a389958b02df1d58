package ballot

import (
	"fmt"

	"github.com/pbvote/cstv/numeric"
)

// ProjectID is the interned key used for every donor-map lookup in the
// engine. IDs are assigned by Instance, in input order, starting at 0.
type ProjectID int

// Project is a funding candidate: a name and a positive cost. Projects are
// immutable for the lifetime of an election. Identity is by Name at
// construction time, and by ProjectID thereafter.
type Project struct {
	ID   ProjectID
	Name string
	Cost numeric.Number
}

// NewProject constructs a Project with a not-yet-assigned ID (ID is set by
// NewInstance). It validates name and cost.
func NewProject(name string, cost numeric.Number) (Project, error) {
	if name == "" {
		return Project{}, ErrEmptyName
	}
	if !cost.IsPositive() {
		return Project{}, ErrNonPositiveCost
	}
	return Project{Name: name, Cost: cost}, nil
}

// Instance is the set of projects under consideration plus the global
// budget limit for one election.
type Instance struct {
	projects    []Project
	byName      map[string]ProjectID
	budgetLimit numeric.Number
}

// NewInstance interns the given projects (assigning sequential ProjectIDs
// in input order) and pairs them with a budget limit. Project names must be
// unique. A non-positive budgetLimit is accepted here — per spec.md §3, the
// driver falls back to the sum of all donations when budgetLimit <= 0.
func NewInstance(projects []Project, budgetLimit numeric.Number) (*Instance, error) {
	inst := &Instance{
		projects:    make([]Project, len(projects)),
		byName:      make(map[string]ProjectID, len(projects)),
		budgetLimit: budgetLimit,
	}
	for i, p := range projects {
		if p.Name == "" {
			return nil, ErrEmptyName
		}
		if !p.Cost.IsPositive() {
			return nil, fmt.Errorf("project %q: %w", p.Name, ErrNonPositiveCost)
		}
		if _, exists := inst.byName[p.Name]; exists {
			return nil, fmt.Errorf("project %q: %w", p.Name, ErrDuplicateName)
		}
		p.ID = ProjectID(i)
		inst.projects[i] = p
		inst.byName[p.Name] = p.ID
	}
	return inst, nil
}

// Projects returns the full, ID-ordered project list. The returned slice is
// owned by Instance and must not be mutated.
func (inst *Instance) Projects() []Project {
	return inst.projects
}

// Len returns the number of projects in the instance.
func (inst *Instance) Len() int {
	return len(inst.projects)
}

// ByID returns the project with the given ID.
func (inst *Instance) ByID(id ProjectID) Project {
	return inst.projects[id]
}

// ByName looks up a project by name.
func (inst *Instance) ByName(name string) (Project, bool) {
	id, ok := inst.byName[name]
	if !ok {
		return Project{}, false
	}
	return inst.projects[id], true
}

// BudgetLimit returns the configured budget limit (may be <= 0, see NewInstance).
func (inst *Instance) BudgetLimit() numeric.Number {
	return inst.budgetLimit
}

// IDs returns every ProjectID in the instance, in order.
func (inst *Instance) IDs() []ProjectID {
	ids := make([]ProjectID, len(inst.projects))
	for i, p := range inst.projects {
		ids[i] = p.ID
	}
	return ids
}
