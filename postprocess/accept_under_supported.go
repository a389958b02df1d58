package postprocess

import (
	"github.com/pbvote/cstv/ballot"
	"github.com/pbvote/cstv/numeric"
	"github.com/pbvote/cstv/selection"
	"github.com/pbvote/cstv/tiebreak"
)

// AcceptUnderSupported repeatedly picks the best-scoring project still in
// eliminated under metric, and, whenever its cost still fits the remaining
// budget, funds it: the project is moved into selected, its cost is
// deducted from budget, and every donor who had given it any positive
// support has their entire ballot zeroed out (they've already had their
// say — a funded under-supported project absorbed whatever endowment
// reached it). Every candidate considered, funded or not, is removed from
// eliminated so the loop terminates. It returns the budget left after the
// pass.
func AcceptUnderSupported(
	selected *[]ballot.ProjectID,
	donations []*ballot.Donation,
	instance *ballot.Instance,
	eliminated []ballot.ProjectID,
	metric selection.Metric,
	tb tiebreak.TieBreaker,
	budget numeric.Number,
) numeric.Number {
	remaining := append([]ballot.ProjectID(nil), eliminated...)

	for len(remaining) > 0 {
		tied := selection.Select(remaining, donations, instance, metric, true)
		p := tied[0]
		if len(tied) > 1 {
			p = tb.Break(remaining, donations, instance, tied)
		}

		cost := instance.ByID(p).Cost
		if numeric.Cmp(cost, budget) <= 0 {
			*selected = append(*selected, p)
			budget = numeric.Sub(budget, cost)
			for _, d := range donations {
				if d.Get(p).IsPositive() {
					for _, q := range d.SortedIDs() {
						d.Set(q, numeric.Zero)
					}
				}
			}
		}

		removeID(&remaining, p)
	}

	return budget
}

func removeID(ids *[]ballot.ProjectID, target ballot.ProjectID) {
	out := (*ids)[:0]
	for _, id := range *ids {
		if id != target {
			out = append(out, id)
		}
	}
	*ids = out
}
