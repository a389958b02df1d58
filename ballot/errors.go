package ballot

import "errors"

// Sentinel errors for the ballot package. Callers should use errors.Is to
// branch on semantics; messages are not part of the contract.
var (
	// ErrEmptyName indicates a Project was constructed with an empty name.
	ErrEmptyName = errors.New("ballot: project name is empty")

	// ErrNonPositiveCost indicates a Project's cost is not strictly positive.
	ErrNonPositiveCost = errors.New("ballot: project cost must be positive")

	// ErrDuplicateName indicates two projects in the same Instance share a name.
	ErrDuplicateName = errors.New("ballot: duplicate project name")

	// ErrUnknownProject indicates a ballot entry references a project that
	// is not a member of the Instance it is being materialized against.
	ErrUnknownProject = errors.New("ballot: donation references unknown project")

	// ErrNegativeDonation indicates a ballot entry is negative, violating
	// the nonnegativity invariant before an election has even begun.
	ErrNegativeDonation = errors.New("ballot: donation is negative")
)
