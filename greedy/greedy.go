package greedy

import (
	"github.com/pbvote/cstv/ballot"
	"github.com/pbvote/cstv/numeric"
	"github.com/pbvote/cstv/selection"
	"github.com/pbvote/cstv/tiebreak"
)

// Run walks every project exactly once, in descending order of metric,
// funding each as long as it still fits the remaining budget. It never
// redistributes a rejected project's support. Ties returned by
// selection.Select are broken by tb, which with tiebreak.Default is
// deterministic and reproducible across runs.
func Run(instance *ballot.Instance, donations []*ballot.Donation, metric selection.Metric, tb tiebreak.TieBreaker) []ballot.ProjectID {
	remaining := instance.IDs()
	budget := instance.BudgetLimit()

	var selected []ballot.ProjectID
	for len(remaining) > 0 {
		tied := selection.Select(remaining, donations, instance, metric, true)
		p := tied[0]
		if len(tied) > 1 {
			p = tb.Break(remaining, donations, instance, tied)
		}

		cost := instance.ByID(p).Cost
		if numeric.Cmp(cost, budget) <= 0 {
			selected = append(selected, p)
			budget = numeric.Sub(budget, cost)
		}

		next := remaining[:0]
		for _, q := range remaining {
			if q != p {
				next = append(next, q)
			}
		}
		remaining = next
	}
	return selected
}

// GS funds greedily by raw support.
func GS(instance *ballot.Instance, donations []*ballot.Donation, tb tiebreak.TieBreaker) []ballot.ProjectID {
	return Run(instance, donations, selection.GS, tb)
}

// GSC funds greedily by support-over-cost.
func GSC(instance *ballot.Instance, donations []*ballot.Donation, tb tiebreak.TieBreaker) []ballot.ProjectID {
	return Run(instance, donations, selection.GSC, tb)
}

// GE funds greedily by excess support.
func GE(instance *ballot.Instance, donations []*ballot.Donation, tb tiebreak.TieBreaker) []ballot.ProjectID {
	return Run(instance, donations, selection.GE, tb)
}
