// Package tiebreak provides the pluggable total order over projects that
// every CSTV selection point consults whenever a rule produces more than
// one tied-best (or tied-worst) candidate.
package tiebreak

import (
	"github.com/pbvote/cstv/ballot"
)

// TieBreaker picks a single winner out of a tied subset of candidates. It
// sees the full candidate set and the donor profile for context, but is
// free to use only the tied subset; implementations must be deterministic.
type TieBreaker interface {
	// Break returns one project from tied. tied is guaranteed nonempty;
	// candidates and donations give full election context.
	Break(candidates []ballot.ProjectID, donations []*ballot.Donation, instance *ballot.Instance, tied []ballot.ProjectID) ballot.ProjectID
}

// Lexicographic breaks ties by ascending project name. It is the default
// tie-breaker and the one every scenario in spec.md §8 is defined against.
type Lexicographic struct{}

// Break implements TieBreaker.
func (Lexicographic) Break(_ []ballot.ProjectID, _ []*ballot.Donation, instance *ballot.Instance, tied []ballot.ProjectID) ballot.ProjectID {
	best := tied[0]
	bestName := instance.ByID(best).Name
	for _, id := range tied[1:] {
		name := instance.ByID(id).Name
		if name < bestName {
			best = id
			bestName = name
		}
	}
	return best
}

// Default is the package-level Lexicographic tie-breaker, usable directly
// wherever a TieBreaker value is required without allocating one.
var Default TieBreaker = Lexicographic{}
