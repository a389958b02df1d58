// Package eligibility implements the CSTV eligibility predicate: a project
// is eligible once its total support meets its cost, within a small slack
// that absorbs float rounding under numeric.ModeFloat.
package eligibility

import (
	"github.com/pbvote/cstv/ballot"
	"github.com/pbvote/cstv/numeric"
	"github.com/pbvote/cstv/selection"
)

// Eligible returns every candidate p for which
// GS(p)*(1+EpsilonEligibility) >= cost(p), in the iteration order of
// candidates.
func Eligible(candidates []ballot.ProjectID, donations []*ballot.Donation, instance *ballot.Instance) []ballot.ProjectID {
	slack := numeric.Add(numeric.NewInt(1), numeric.NewFloat(numeric.EpsilonEligibility))

	out := make([]ballot.ProjectID, 0, len(candidates))
	for _, p := range candidates {
		support := selection.Support(donations, instance, p)
		lhs := numeric.Mul(support, slack)
		if numeric.Cmp(lhs, instance.ByID(p).Cost) >= 0 {
			out = append(out, p)
		}
	}
	return out
}
