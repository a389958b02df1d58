package ballot

import (
	"sort"

	"github.com/pbvote/cstv/numeric"
)

// Donation is one voter's mutable donation vector: ProjectID -> nonnegative
// amount. The engine rewrites entries during redistribution; callers that
// need to preserve an original profile should Clone before mutating.
type Donation struct {
	values map[ProjectID]numeric.Number
}

// NewDonation wraps a ProjectID-keyed map as a Donation. The map is taken
// by reference, not copied.
func NewDonation(values map[ProjectID]numeric.Number) *Donation {
	if values == nil {
		values = make(map[ProjectID]numeric.Number)
	}
	return &Donation{values: values}
}

// Get returns the donor's entry for id, or numeric.Zero if absent.
func (d *Donation) Get(id ProjectID) numeric.Number {
	if v, ok := d.values[id]; ok {
		return v
	}
	return numeric.Zero
}

// Has reports whether the donor currently has an entry for id at all
// (distinct from Get == 0: an entry can be present and zero).
func (d *Donation) Has(id ProjectID) bool {
	_, ok := d.values[id]
	return ok
}

// Set assigns the donor's entry for id.
func (d *Donation) Set(id ProjectID, v numeric.Number) {
	d.values[id] = v
}

// Remove deletes the donor's entry for id and returns its prior value.
func (d *Donation) Remove(id ProjectID) numeric.Number {
	v := d.Get(id)
	delete(d.values, id)
	return v
}

// Total sums every entry currently present in the donor's vector.
func (d *Donation) Total() numeric.Number {
	total := numeric.Zero
	for _, v := range d.values {
		total = numeric.Add(total, v)
	}
	return total
}

// SortedIDs returns every ProjectID currently present in the donor's
// vector, in ascending order. Iterating in this order, rather than Go's
// randomized map order, keeps redistribution deterministic and therefore
// keeps CSTV a pure function of its inputs (spec.md §8, property 8).
func (d *Donation) SortedIDs() []ProjectID {
	ids := make([]ProjectID, 0, len(d.values))
	for id := range d.values {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Clone returns a deep copy of d.
func (d *Donation) Clone() *Donation {
	cp := make(map[ProjectID]numeric.Number, len(d.values))
	for k, v := range d.values {
		cp[k] = v
	}
	return &Donation{values: cp}
}

// CloneAll deep-copies a slice of donor vectors.
func CloneAll(donations []*Donation) []*Donation {
	out := make([]*Donation, len(donations))
	for i, d := range donations {
		out[i] = d.Clone()
	}
	return out
}
