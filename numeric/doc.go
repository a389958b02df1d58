// Package numeric provides the rational-number backend shared by every
// CSTV component: support totals, costs, ratios, and tolerances all flow
// through Number rather than raw float64, so that the exact-rational and
// IEEE-754-double modes required by the algorithm (division is the one
// operation where the two genuinely disagree) are interchangeable behind
// a single type.
//
// The active Mode is a process-wide switch (SetMode), mirroring the
// upstream algorithm's own global fraction-mode knob: SetMode(ModeFloat)
// makes every subsequent Div behave like ordinary float64 division;
// SetMode(ModeExact) (the default) keeps Div exact via math/big.Rat.
// Addition, subtraction, multiplication, and comparison are exact in both
// modes — only division can lose precision, and only in ModeFloat.
//
// Tolerances used by the CSTV algorithm (equal-endowment epsilon,
// eligibility slack, the excess threshold, minimal-transfer convergence
// and quantization) are fixed constants independent of Mode; see Epsilon*
// below.
package numeric
