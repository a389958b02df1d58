package ballot

import (
	"fmt"

	"github.com/pbvote/cstv/numeric"
)

// Ballot is one voter's raw, name-keyed donation, as a caller would supply
// it: project name -> nonnegative cumulative donation, plus a multiplicity
// (how many real voters this single ballot represents).
type Ballot struct {
	Values       map[string]numeric.Number
	Multiplicity int
}

// Profile is the ordered list of ballots cast in one election. It is
// treated as read-only by the engine: Materialize copies every entry into a
// fresh, owned Donation slice rather than aliasing Profile's maps.
type Profile []Ballot

// Materialize builds one Donation per ballot, keyed by the interned
// ProjectID space of inst, folding each ballot's multiplicity into its
// entries (entry = raw * multiplicity), exactly as spec.md §3 describes.
// It fails with ErrUnknownProject if a ballot names a project absent from
// inst, and with ErrNegativeDonation if any entry is negative.
func Materialize(inst *Instance, profile Profile) ([]*Donation, error) {
	out := make([]*Donation, len(profile))
	for i, ballot := range profile {
		mult := ballot.Multiplicity
		if mult == 0 {
			mult = 1
		}
		multN := numeric.NewInt(int64(mult))
		values := make(map[ProjectID]numeric.Number, len(ballot.Values))
		for name, raw := range ballot.Values {
			if raw.IsNegative() {
				return nil, fmt.Errorf("ballot %d, project %q: %w", i, name, ErrNegativeDonation)
			}
			proj, ok := inst.ByName(name)
			if !ok {
				return nil, fmt.Errorf("ballot %d: project %q: %w", i, name, ErrUnknownProject)
			}
			values[proj.ID] = numeric.Mul(raw, multN)
		}
		out[i] = NewDonation(values)
	}
	return out, nil
}
