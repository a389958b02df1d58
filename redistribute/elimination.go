package redistribute

import (
	"github.com/pbvote/cstv/ballot"
	"github.com/pbvote/cstv/numeric"
	"github.com/pbvote/cstv/selection"
	"github.com/pbvote/cstv/tiebreak"
)

// EliminationWithTransfer removes the single worst-scoring remaining
// candidate under metric, hands its entire support back to its donors'
// other projects, and appends it to eliminated. candidates is mutated in
// place. It reports whether a project was actually eliminated; it returns
// false once candidates has been emptied.
func EliminationWithTransfer(
	candidates *[]ballot.ProjectID,
	donations []*ballot.Donation,
	eliminated *[]ballot.ProjectID,
	instance *ballot.Instance,
	metric selection.Metric,
	tb tiebreak.TieBreaker,
) bool {
	if len(*candidates) == 0 {
		return false
	}

	worst := selection.Select(*candidates, donations, instance, metric, false)
	p := worst[0]
	if len(worst) > 1 {
		p = tb.Break(*candidates, donations, instance, worst)
	}

	distributeSupport(donations, p)
	removeID(candidates, p)
	*eliminated = append(*eliminated, p)
	return true
}

// distributeSupport hands donor d's entire entry for p back across d's
// remaining projects, in proportion to their current shares, then drops p
// from d's vector.
func distributeSupport(donations []*ballot.Donation, p ballot.ProjectID) {
	for _, d := range donations {
		c := d.Remove(p)
		total := d.Total()
		if total.IsZero() {
			continue
		}
		for _, q := range d.SortedIDs() {
			share := d.Get(q)
			part := numeric.Div(share, total)
			d.Set(q, numeric.Add(share, numeric.Mul(c, part)))
		}
	}
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
