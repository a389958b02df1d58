package redistribute

import (
	"github.com/pbvote/cstv/ballot"
	"github.com/pbvote/cstv/numeric"
	"github.com/pbvote/cstv/selection"
)

// ExcessRedistribution hands back the portion of p's support that exceeded
// its cost, splitting it proportionally across each donor's remaining
// projects before removing p from every donor's vector.
//
// gamma is accepted for parity with the funding step that calls this (the
// same shape as the other transfer procedures), but is only a fallback: if
// p's adjusted cost and adjusted support are both positive, gamma is
// recomputed from them internally. A donor whose entire contribution to p
// is "trapped" — they donated to nothing else — does not participate in
// that recomputation, since refunding them would have nowhere to land.
func ExcessRedistribution(donations []*ballot.Donation, instance *ballot.Instance, p ballot.ProjectID, gamma numeric.Number) {
	projectSupport := selection.Support(donations, instance, p)
	cost := instance.ByID(p).Cost

	contributions := make([]numeric.Number, len(donations))
	for i, d := range donations {
		c := d.Get(p)
		contributions[i] = c
		totalOther := numeric.Sub(d.Total(), c)
		if totalOther.IsZero() {
			projectSupport = numeric.Sub(projectSupport, c)
			cost = numeric.Sub(cost, c)
		}
	}

	if cost.IsPositive() && projectSupport.IsPositive() {
		gamma = numeric.Div(cost, projectSupport)
	}

	for i, d := range donations {
		c := contributions[i]
		d.Remove(p)
		total := d.Total()
		if total.IsZero() {
			continue
		}
		toDistribute := numeric.Mul(c, numeric.Sub(numeric.NewInt(1), gamma))
		for _, q := range d.SortedIDs() {
			share := d.Get(q)
			part := numeric.Div(share, total)
			d.Set(q, numeric.Add(share, numeric.Mul(toDistribute, part)))
		}
	}
}
