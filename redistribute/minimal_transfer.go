package redistribute

import (
	"github.com/pbvote/cstv/ballot"
	"github.com/pbvote/cstv/numeric"
	"github.com/pbvote/cstv/selection"
	"github.com/pbvote/cstv/tiebreak"
)

// MinimalTransfer picks the best-scoring remaining candidate under metric
// (ties broken by tb) and pulls endowment onto it from its own donors'
// other projects until its support reaches its cost, rather than
// eliminating a loser outright. It is the transfer procedure behind the
// MT/MTC/MTS combinations. candidates and eliminated are mutated in
// place; it reports whether a candidate's support was raised to its cost,
// leaving it for the driver to fund (false means every
// remaining candidate got pruned or folded into eliminated with nothing
// left to fund).
func MinimalTransfer(
	candidates *[]ballot.ProjectID,
	donations []*ballot.Donation,
	eliminated *[]ballot.ProjectID,
	instance *ballot.Instance,
	metric selection.Metric,
	tb tiebreak.TieBreaker,
) bool {
	// Step 1: prune any candidate whose donors' combined endowment can't
	// possibly cover its cost, no matter how it's redistributed.
	remaining := make([]ballot.ProjectID, 0, len(*candidates))
	for _, p := range *candidates {
		reachable := numeric.Zero
		for _, d := range donations {
			if d.Get(p).IsPositive() {
				reachable = numeric.Add(reachable, d.Total())
			}
		}
		if numeric.Cmp(reachable, instance.ByID(p).Cost) < 0 {
			*eliminated = append(*eliminated, p)
		} else {
			remaining = append(remaining, p)
		}
	}
	*candidates = remaining
	if len(*candidates) == 0 {
		return false
	}

	// Step 2: pick the project to fund.
	tied := selection.Select(*candidates, donations, instance, metric, true)
	p := tied[0]
	if len(tied) > 1 {
		p = tb.Break(*candidates, donations, instance, tied)
	}

	cost := instance.ByID(p).Cost

	var donorIdx []int
	for i, d := range donations {
		if d.Get(p).IsPositive() {
			donorIdx = append(donorIdx, i)
		}
	}

	totalSupport := numeric.Zero
	for _, i := range donorIdx {
		totalSupport = numeric.Add(totalSupport, donations[i].Get(p))
	}
	r := numeric.Div(totalSupport, cost)

	// Step 4: cap-out pass. A donor whose whole endowment, scaled by r,
	// wouldn't cover what the ratio asks of them instead gives everything
	// to p and drops out of further consideration.
	for {
		changed := false
		for idx := 0; idx < len(donorIdx); idx++ {
			i := donorIdx[idx]
			d := donations[i]
			if r.IsZero() {
				continue
			}
			dp := d.Get(p)
			total := d.Total()
			if numeric.Cmp(numeric.Div(dp, r), total) <= 0 {
				continue
			}
			for _, q := range d.SortedIDs() {
				if q != p {
					d.Set(q, numeric.Zero)
				}
			}
			d.Set(p, total)

			donorIdx = append(donorIdx[:idx], donorIdx[idx+1:]...)
			idx--
			totalSupport = numeric.Sub(totalSupport, total)
			cost = numeric.Sub(cost, total)
			if !cost.IsZero() {
				r = numeric.Div(totalSupport, cost)
			}
			changed = true
		}
		if !changed {
			break
		}
	}

	// Step 5: lift every remaining donor's share of p up to ratio r, moving
	// mass off their other projects until either r reaches 1 or nothing is
	// left to move.
	if len(donorIdx) > 0 {
		iterations := 0
		for numeric.Cmp(r, numeric.NewInt(1)) < 0 {
			allOnP := true
			for _, i := range donorIdx {
				if !numeric.Equal(donations[i].Total(), donations[i].Get(p)) {
					allOnP = false
					break
				}
			}
			if allOnP {
				*eliminated = append(*eliminated, *candidates...)
				*candidates = nil
				return false
			}

			for _, i := range donorIdx {
				d := donations[i]
				c := d.Get(p)
				other := numeric.Sub(d.Total(), c)
				if !other.IsPositive() {
					continue
				}
				var toDistribute numeric.Number
				if r.IsZero() {
					toDistribute = other
				} else {
					toDistribute = numeric.Min(other, numeric.Sub(numeric.Div(c, r), c))
				}
				for _, q := range d.SortedIDs() {
					if q == p {
						continue
					}
					share := d.Get(q)
					if !share.IsPositive() {
						continue
					}
					change := numeric.Div(numeric.Mul(toDistribute, share), other)
					if numeric.Cmp(numeric.Sub(toDistribute, change), numeric.NewFloat(numeric.MinimalTransferQuantum)) < 0 {
						change = toDistribute
					}
					d.Set(q, numeric.Sub(share, change))
					d.Set(p, numeric.Add(d.Get(p), quantizeUp(change)))
				}
			}

			totalSupport = numeric.Zero
			for _, i := range donorIdx {
				totalSupport = numeric.Add(totalSupport, donations[i].Get(p))
			}
			r = numeric.Div(totalSupport, cost)

			iterations++
			if iterations > numeric.MinimalTransferMaxIterations {
				break
			}
		}
	}

	// Step 6: close out any residual shortfall against the donor holding
	// the smallest positive share of p, so p ends up funded at exactly
	// cost(p).
	sumP := numeric.Zero
	for _, d := range donations {
		sumP = numeric.Add(sumP, d.Get(p))
	}
	diff := numeric.Sub(instance.ByID(p).Cost, sumP)
	if diff.IsPositive() && len(donations) > 0 {
		minIdx := -1
		var minShare numeric.Number
		for i, d := range donations {
			share := d.Get(p)
			if share.IsPositive() && (minIdx == -1 || numeric.Cmp(share, minShare) < 0) {
				minShare = share
				minIdx = i
			}
		}
		if minIdx == -1 {
			minIdx = 0
		}
		donations[minIdx].Set(p, numeric.Add(donations[minIdx].Get(p), diff))
	}

	return true
}

// quantizeUp rounds x up to the nearest multiple of numeric.MinimalTransferQuantum,
// exactly, so donors crediting p never undershoot by float dust.
func quantizeUp(x numeric.Number) numeric.Number {
	scale := numeric.NewInt(100_000_000_000_000) // 1 / MinimalTransferQuantum
	return numeric.Div(numeric.Ceil(numeric.Mul(x, scale)), scale)
}
