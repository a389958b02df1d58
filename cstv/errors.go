package cstv

import "errors"

var (
	// ErrInvalidConfiguration is returned when neither a Combination nor a
	// full set of explicit procedures (WithSelect, WithEligible,
	// WithNoEligible, WithPostprocess) was supplied.
	ErrInvalidConfiguration = errors.New("cstv: incomplete configuration: pass a Combination or every procedure option")

	// ErrInvalidCombination is returned by ParseCombination for a name
	// outside the six named combinations. WithCombination cannot return an
	// error: given an unknown Combination value it leaves the procedures
	// unset, so Cstv then fails with ErrInvalidConfiguration instead.
	ErrInvalidCombination = errors.New("cstv: invalid combination")

	// ErrUnequalEndowments is returned when donor ballots, once
	// materialized, do not all sum to the same total within
	// numeric.EpsilonEndowment.
	ErrUnequalEndowments = errors.New("cstv: donor endowments are not equal; adjust the profile and try again")

	// ErrUnsupported is returned by WithResoluteness(false): irresolute
	// outcomes (returning every tied allocation) are not implemented.
	ErrUnsupported = errors.New("cstv: irresolute outcomes are not supported")
)
