// Package selection implements the three scoring primitives shared by the
// CSTV driver, its elimination procedures, and the greedy baselines:
// greedy-by-support (GS), greedy-by-support-over-cost (GSC), and
// greedy-by-excess (GE). Each maps a (candidate set, donation vectors) pair
// to the nonempty tied set of projects maximizing — or, for elimination,
// minimizing — its scalar.
package selection

import (
	"github.com/pbvote/cstv/ballot"
	"github.com/pbvote/cstv/numeric"
)

// Metric scores a single project given the current donation vectors and
// its instance-level metadata (cost). It must not mutate donations.
type Metric func(donations []*ballot.Donation, instance *ballot.Instance, p ballot.ProjectID) numeric.Number

// Support computes GS(p) = sum over donors of d[p].
func Support(donations []*ballot.Donation, _ *ballot.Instance, p ballot.ProjectID) numeric.Number {
	total := numeric.Zero
	for _, d := range donations {
		total = numeric.Add(total, d.Get(p))
	}
	return total
}

// GS is the greedy-by-support metric.
var GS Metric = Support

// GE computes GS(p) - cost(p), the excess support metric.
func excess(donations []*ballot.Donation, instance *ballot.Instance, p ballot.ProjectID) numeric.Number {
	return numeric.Sub(Support(donations, instance, p), instance.ByID(p).Cost)
}

// GE is the greedy-by-excess metric.
var GE Metric = excess

// supportOverCost computes GS(p) / cost(p).
func supportOverCost(donations []*ballot.Donation, instance *ballot.Instance, p ballot.ProjectID) numeric.Number {
	return numeric.Div(Support(donations, instance, p), instance.ByID(p).Cost)
}

// GSC is the greedy-by-support-over-cost metric.
var GSC Metric = supportOverCost

// Select returns the nonempty tied subset of candidates attaining the
// maximum (findBest=true) or minimum (findBest=false) of metric over
// candidates. candidates must be nonempty.
func Select(candidates []ballot.ProjectID, donations []*ballot.Donation, instance *ballot.Instance, metric Metric, findBest bool) []ballot.ProjectID {
	scores := make(map[ballot.ProjectID]numeric.Number, len(candidates))
	for _, p := range candidates {
		scores[p] = metric(donations, instance, p)
	}

	target := scores[candidates[0]]
	for _, p := range candidates[1:] {
		s := scores[p]
		if findBest && numeric.Cmp(s, target) > 0 {
			target = s
		} else if !findBest && numeric.Cmp(s, target) < 0 {
			target = s
		}
	}

	tied := make([]ballot.ProjectID, 0, len(candidates))
	for _, p := range candidates {
		if numeric.Equal(scores[p], target) {
			tied = append(tied, p)
		}
	}
	return tied
}
