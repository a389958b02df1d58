// Package ballot defines the data model shared by every CSTV component:
// Project (a funding candidate), Instance (the project set plus a global
// budget), Donation (one voter's mutable donation vector), and Profile (the
// raw, caller-supplied ballots a Donation set is materialized from).
//
// Donor maps are keyed by ProjectID throughout the codebase — an integer
// interned by Instance at construction time — rather than by Project value
// or by name. This resolves, deliberately, the name-vs-object keying
// inconsistency flagged as an open question in the algorithm's original
// Python source: there is exactly one key type for donor entries, and it is
// used uniformly by the driver, the redistribution procedures, and the
// post-processors. Project.Name exists purely for display and tie-breaking.
package ballot
