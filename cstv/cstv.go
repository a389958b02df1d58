package cstv

import (
	"fmt"

	"github.com/pbvote/cstv/ballot"
	"github.com/pbvote/cstv/numeric"
	"github.com/pbvote/cstv/redistribute"
	"github.com/pbvote/cstv/selection"
)

// BudgetAllocation is the resolute outcome of a Cstv run: the ordered list
// of funded projects, in the order they were accepted (first the main
// loop's picks, then whatever the postprocess pass added).
type BudgetAllocation []ballot.ProjectID

// Cstv runs the Cumulative Support Transfer Voting rule over instance and
// profile. Configure it with a Combination (the common case) or with an
// explicit set of WithSelect/WithEligible/WithNoEligible/WithPostprocess
// options; mixing a Combination with overrides is fine, since options
// apply left to right and a later option wins.
//
// donations materialized from profile are mutated in place over the
// course of the run; profile itself is never modified.
func Cstv(instance *ballot.Instance, profile ballot.Profile, opts ...Option) (BudgetAllocation, error) {
	cfg := newConfig(opts)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	donations, err := ballot.Materialize(instance, profile)
	if err != nil {
		return nil, err
	}

	selected := append([]ballot.ProjectID(nil), cfg.initialAllocation...)

	if len(donations) == 0 {
		return BudgetAllocation(selected), nil
	}

	maxSum, minSum := donations[0].Total(), donations[0].Total()
	for _, d := range donations[1:] {
		total := d.Total()
		maxSum = numeric.Max(maxSum, total)
		minSum = numeric.Min(minSum, total)
	}
	if maxSum.IsZero() {
		return BudgetAllocation(selected), nil
	}
	if numeric.Cmp(numeric.Div(numeric.Sub(maxSum, minSum), maxSum), numeric.NewFloat(numeric.EpsilonEndowment)) > 0 {
		return nil, ErrUnequalEndowments
	}

	var eliminated []ballot.ProjectID
	current := append([]ballot.ProjectID(nil), instance.IDs()...)

	budget := instance.BudgetLimit()
	if !budget.IsPositive() {
		budget = numeric.Zero
		for _, d := range donations {
			budget = numeric.Add(budget, d.Total())
		}
	}

	trace := cfg.trace
	if trace == nil {
		trace = func(string) {}
	}

	for {
		trace(fmt.Sprintf("budget remaining: %s", budget))

		if len(current) == 0 {
			budget = cfg.postprocess(&selected, donations, instance, eliminated, cfg.metric, cfg.tieBreaker, budget)
			trace("no projects left to consider; postprocess complete")
			return BudgetAllocation(selected), nil
		}

		eligible := cfg.eligible(current, donations, instance)
		for len(eligible) == 0 {
			trace("no eligible projects; invoking fallback procedure")
			if !cfg.noEligible(&current, donations, &eliminated, instance, cfg.metric, cfg.tieBreaker) {
				budget = cfg.postprocess(&selected, donations, instance, eliminated, cfg.metric, cfg.tieBreaker, budget)
				trace("fallback procedure exhausted candidates; postprocess complete")
				return BudgetAllocation(selected), nil
			}
			eligible = cfg.eligible(current, donations, instance)
		}

		tied := selection.Select(eligible, donations, instance, cfg.metric, true)
		p := tied[0]
		if len(tied) > 1 {
			p = cfg.tieBreaker.Break(current, donations, instance, tied)
		}

		excess := selection.GE(donations, instance, p)
		cost := instance.ByID(p).Cost
		trace(fmt.Sprintf("funding %s (excess support %s)", instance.ByID(p).Name, excess))

		selected = append(selected, p)
		current = removeID(current, p)
		budget = numeric.Sub(budget, cost)

		if numeric.Cmp(excess, numeric.NewFloat(numeric.ExcessThreshold)) > 0 {
			gamma := numeric.Div(cost, numeric.Add(excess, cost))
			redistribute.ExcessRedistribution(donations, instance, p, gamma)
		} else {
			for _, d := range donations {
				d.Set(p, numeric.Zero)
			}
		}
	}
}

func removeID(ids []ballot.ProjectID, target ballot.ProjectID) []ballot.ProjectID {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}
