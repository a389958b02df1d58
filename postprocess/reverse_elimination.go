package postprocess

import (
	"github.com/pbvote/cstv/ballot"
	"github.com/pbvote/cstv/numeric"
)

// ReverseElimination walks eliminated from most-recently-eliminated to
// least, appending each project to selected and deducting its cost from
// budget whenever it still fits. It returns the budget left after the
// walk. eliminated is read only; it is the later-eliminated-first order
// that gives later, costlier eliminations first crack at the leftover
// budget.
func ReverseElimination(selected *[]ballot.ProjectID, instance *ballot.Instance, eliminated []ballot.ProjectID, budget numeric.Number) numeric.Number {
	for i := len(eliminated) - 1; i >= 0; i-- {
		p := eliminated[i]
		cost := instance.ByID(p).Cost
		if numeric.Cmp(cost, budget) <= 0 {
			*selected = append(*selected, p)
			budget = numeric.Sub(budget, cost)
		}
	}
	return budget
}
